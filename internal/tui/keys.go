package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/careerguide/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode and focus
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if action, ok := m.keys.Match(keybinds.ContextGlobal, key); ok && action == keybinds.ActionQuitForce {
		return tea.Quit
	}

	switch m.mode {
	case ModeDetails, ModeStats, ModeHelp:
		return m.handleModalKeys(msg)
	}

	// f1..f5 jump straight to a tab
	if m.tabs.ActivateTrigger(key) {
		m.updateViewport()
		return nil
	}

	if m.activePanel().resultsFocused() {
		return m.handleResultsKeys(msg)
	}
	return m.handleFormKeys(msg)
}

// handleGlobalAction handles actions shared by the form and results contexts
func (m *Model) handleGlobalAction(action keybinds.Action) (tea.Cmd, bool) {
	p := m.activePanel()
	switch action {
	case keybinds.ActionNextTab:
		m.tabs.Next()
		m.updateViewport()
	case keybinds.ActionPrevTab:
		m.tabs.Prev()
		m.updateViewport()
	case keybinds.ActionNextField:
		p.setFocus(p.focus + 1)
	case keybinds.ActionPrevField:
		p.setFocus(p.focus - 1)
	case keybinds.ActionOpenStats:
		return m.openStats(), true
	case keybinds.ActionSubmit:
		return m.submitActive(), true
	default:
		return nil, false
	}
	return nil, true
}

// handleFormKeys handles keys while a form field has focus. Unbound keys
// are typed into the field.
func (m *Model) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	p := m.activePanel()

	if action, ok := m.keys.Match(keybinds.ContextForm, msg.String()); ok {
		if action == keybinds.ActionCycleLevel {
			if p.hasLevel {
				p.cycleLevel()
			}
			return nil
		}
		if cmd, handled := m.handleGlobalAction(action); handled {
			return cmd
		}
	}

	var cmd tea.Cmd
	p.fields[p.focus].input, cmd = p.fields[p.focus].input.Update(msg)
	return cmd
}

// handleResultsKeys handles keys while the result region has focus
func (m *Model) handleResultsKeys(msg tea.KeyMsg) tea.Cmd {
	p := m.activePanel()
	key := msg.String()

	action, ok, pending := m.keys.MatchMultiKey(keybinds.ContextResults, key)
	if pending || !ok {
		return nil
	}

	if cmd, handled := m.handleGlobalAction(action); handled {
		return cmd
	}

	vp := &p.region.viewport
	switch action {
	case keybinds.ActionQuit:
		return tea.Quit
	case keybinds.ActionOpenHelp:
		m.mode = ModeHelp
		m.updateHelpView()
	case keybinds.ActionScrollUp:
		vp.ScrollUp(1)
	case keybinds.ActionScrollDown:
		vp.ScrollDown(1)
	case keybinds.ActionPageUp:
		vp.PageUp()
	case keybinds.ActionPageDown:
		vp.PageDown()
	case keybinds.ActionGoToTop:
		vp.GotoTop()
	case keybinds.ActionGoToBottom:
		vp.GotoBottom()
	case keybinds.ActionCopy:
		return m.copyToClipboard(p.region)
	case keybinds.ActionFocusForm:
		p.setFocus(0)
	case keybinds.ActionOpenDetails:
		if n, err := strconv.Atoi(key); err == nil {
			return m.openDetails(n)
		}
	}
	return nil
}

// handleModalKeys handles the details, call log and help modals
func (m *Model) handleModalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Match(keybinds.ContextModal, msg.String())
	if !ok {
		return nil
	}

	vp := &m.modalView
	if m.mode == ModeDetails {
		vp = &m.detailsView.viewport
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
		m.updateViewport()
	case keybinds.ActionScrollUp:
		vp.ScrollUp(1)
	case keybinds.ActionScrollDown:
		vp.ScrollDown(1)
	case keybinds.ActionPageUp:
		vp.PageUp()
	case keybinds.ActionPageDown:
		vp.PageDown()
	case keybinds.ActionCopy:
		if m.mode == ModeDetails {
			return m.copyToClipboard(m.detailsView)
		}
	case keybinds.ActionClearLog:
		if m.mode == ModeStats {
			return m.clearStats()
		}
	case keybinds.ActionOpenStats:
		if m.mode != ModeStats {
			return m.openStats()
		}
	}
	return nil
}
