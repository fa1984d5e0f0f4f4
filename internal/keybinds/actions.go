package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal  Context = "global"  // Available everywhere
	ContextForm    Context = "form"    // A form field has focus
	ContextResults Context = "results" // The active tab's result region has focus
	ContextModal   Context = "modal"   // Details, call log or help modal
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)
	ActionNextTab   Action = "next_tab"   // Activate the following tab
	ActionPrevTab   Action = "prev_tab"   // Activate the preceding tab
	ActionOpenStats Action = "open_stats" // Session call log
	ActionOpenHelp  Action = "open_help"  // Key reference

	// Focus
	ActionNextField Action = "next_field" // Next form field, then the result region
	ActionPrevField Action = "prev_field" // Previous form field

	// Form actions
	ActionSubmit     Action = "submit"      // Submit the active tab's form
	ActionCycleLevel Action = "cycle_level" // Rotate the career level selector

	// Result region actions
	ActionScrollUp    Action = "scroll_up"
	ActionScrollDown  Action = "scroll_down"
	ActionPageUp      Action = "page_up"
	ActionPageDown    Action = "page_down"
	ActionGoToTop     Action = "go_to_top"
	ActionGoToBottom  Action = "go_to_bottom"
	ActionCopy        Action = "copy_to_clipboard" // Copy the region as plain text
	ActionOpenDetails Action = "open_details"      // Details of the Nth search card
	ActionFocusForm   Action = "focus_form"        // Back to the first form field

	// Modal actions
	ActionCloseModal Action = "close_modal"
	ActionClearLog   Action = "clear_call_log"
)

// knownActions is the set user configuration may bind
var knownActions = map[Action]bool{
	ActionQuit: true, ActionQuitForce: true, ActionNextTab: true, ActionPrevTab: true,
	ActionOpenStats: true, ActionOpenHelp: true, ActionNextField: true, ActionPrevField: true,
	ActionSubmit: true, ActionCycleLevel: true, ActionScrollUp: true, ActionScrollDown: true,
	ActionPageUp: true, ActionPageDown: true, ActionGoToTop: true, ActionGoToBottom: true,
	ActionCopy: true, ActionOpenDetails: true, ActionFocusForm: true, ActionCloseModal: true,
	ActionClearLog: true,
}

// IsKnown reports whether a is an action the TUI handles
func (a Action) IsKnown() bool {
	return knownActions[a]
}
