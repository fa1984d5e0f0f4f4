package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/careerguide/internal/keybinds"
)

// renderModal renders a modal dialog around an already sized viewport
func (m *Model) renderModal(title, content, footer string) string {
	width := m.width - ModalWidthMargin
	height := m.height - ModalHeightMargin
	if width < 30 && m.width >= 30 {
		width = 30
	}
	if height < 8 && m.height >= 8 {
		height = 8
	}

	fullContent := styleTitle.Render(title) + "\n\n" + content
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	modalBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	if width >= m.width-2 || height >= m.height-1 {
		return modalBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}

// renderDetails renders the career details modal
func (m *Model) renderDetails() string {
	footer := fmt.Sprintf("↑/↓ j/k: Scroll | %s: Copy | %s: Close",
		m.keys.KeysString(keybinds.ContextModal, keybinds.ActionCopy),
		m.keys.KeysString(keybinds.ContextModal, keybinds.ActionCloseModal))
	return m.renderModal("Career Details", m.detailsView.viewport.View(), footer)
}

// renderHelp renders the key reference
func (m *Model) renderHelp() string {
	footer := fmt.Sprintf("↑/↓ j/k: Scroll | %s: Close",
		m.keys.KeysString(keybinds.ContextModal, keybinds.ActionCloseModal))
	return m.renderModal("Keys", m.modalView.View(), footer)
}

// updateHelpView lists the bindings of every context
func (m *Model) updateHelpView() {
	var b strings.Builder
	sections := []struct {
		title   string
		context keybinds.Context
	}{
		{"Everywhere", keybinds.ContextGlobal},
		{"Form", keybinds.ContextForm},
		{"Results", keybinds.ContextResults},
		{"Modals", keybinds.ContextModal},
	}

	b.WriteString(styleTitle.Render("Tabs") + "\n")
	for _, t := range m.tabs.Tabs() {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", t.Trigger, t.Title))
	}

	for _, s := range sections {
		b.WriteString("\n" + styleTitle.Render(s.title) + "\n")
		byAction := map[keybinds.Action][]string{}
		for _, binding := range m.keys.ListBindings(s.context) {
			if binding.Context != s.context {
				continue
			}
			byAction[binding.Action] = append(byAction[binding.Action], binding.Key)
		}
		actions := make([]string, 0, len(byAction))
		for a := range byAction {
			actions = append(actions, string(a))
		}
		sort.Strings(actions)
		for _, a := range actions {
			keys := byAction[keybinds.Action(a)]
			b.WriteString(fmt.Sprintf("  %-12s %s\n", strings.Join(keys, "/"), strings.ReplaceAll(a, "_", " ")))
		}
	}

	m.modalView.SetContent(b.String())
}
