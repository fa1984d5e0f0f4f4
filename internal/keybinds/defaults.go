package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerFormBindings(r)
	registerResultsBindings(r)
	registerModalBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all contexts.
// f1..f5 select tabs directly through each tab's trigger.
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+right", ActionNextTab)
	r.Register(ContextGlobal, "ctrl+left", ActionPrevTab)
	r.Register(ContextGlobal, "ctrl+s", ActionOpenStats)
	r.Register(ContextGlobal, "tab", ActionNextField)
	r.Register(ContextGlobal, "shift+tab", ActionPrevField)
}

// registerFormBindings leaves printable keys to the text inputs
func registerFormBindings(r *Registry) {
	r.Register(ContextForm, "enter", ActionSubmit)
	r.Register(ContextForm, "ctrl+l", ActionCycleLevel)
}

func registerResultsBindings(r *Registry) {
	r.Register(ContextResults, "q", ActionQuit)
	r.Register(ContextResults, "?", ActionOpenHelp)
	r.RegisterMultiple(ContextResults, []string{"up", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextResults, []string{"down", "j"}, ActionScrollDown)
	r.Register(ContextResults, "pgup", ActionPageUp)
	r.Register(ContextResults, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextResults, []string{"gg", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextResults, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ContextResults, "y", ActionCopy)
	r.RegisterMultiple(ContextResults, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, ActionOpenDetails)
	r.RegisterMultiple(ContextResults, []string{"esc", "i"}, ActionFocusForm)
	r.Register(ContextResults, "enter", ActionSubmit)
}

func registerModalBindings(r *Registry) {
	r.RegisterMultiple(ContextModal, []string{"esc", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextModal, []string{"up", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextModal, []string{"down", "j"}, ActionScrollDown)
	r.Register(ContextModal, "pgup", ActionPageUp)
	r.Register(ContextModal, "pgdown", ActionPageDown)
	r.Register(ContextModal, "y", ActionCopy)
	r.Register(ContextModal, "C", ActionClearLog)
	// tab cycling stays inside the modal
	r.Register(ContextModal, "tab", ActionScrollDown)
	r.Register(ContextModal, "shift+tab", ActionScrollUp)
}
