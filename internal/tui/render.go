package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/careerguide/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)

	styleTitleUnfocused = lipgloss.NewStyle().
				Foreground(colorGray)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleTab = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorGray)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the tab bar, the active form and its result region
func (m *Model) renderMain() string {
	p := m.activePanel()

	var b strings.Builder
	b.WriteString(styleTitle.Render("🎯 Career Guide"))
	if m.aiStatus != "" {
		style := styleSuccess
		if strings.HasPrefix(m.aiStatus, "⚠") {
			style = styleWarning
		}
		b.WriteString("  " + style.Render(m.aiStatus))
	}
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderForm(p))
	b.WriteString("\n")

	borderColor := colorGray
	if p.resultsFocused() {
		borderColor = colorGreen
	}
	results := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(m.width - ViewportBorderWidth).
		Render(p.region.viewport.View())
	b.WriteString(results)
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m *Model) renderTabBar() string {
	var parts []string
	for _, t := range m.tabs.Tabs() {
		label := fmt.Sprintf("%s %s", strings.ToUpper(t.Trigger), t.Title)
		if m.tabs.IsActive(t.ID) {
			parts = append(parts, styleTabActive.Render(label))
		} else {
			parts = append(parts, styleTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderForm(p *panel) string {
	var b strings.Builder
	for i, f := range p.fields {
		label := styleSubtle.Render(f.label + ":")
		if i == p.focus {
			label = styleTitleFocused.Render(f.label + ":")
		}
		b.WriteString(label + " " + f.input.View() + "\n")
	}
	if p.hasLevel {
		keys := m.keys.KeysString(keybinds.ContextForm, keybinds.ActionCycleLevel)
		b.WriteString(styleSubtle.Render("Level:") + " " + styleTitle.Render(p.levelName()) +
			styleSubtle.Render(fmt.Sprintf("  (%s to change)", keys)) + "\n")
	}
	return b.String()
}

// formHeight is the number of lines renderForm produces for p
func formHeight(p *panel) int {
	h := len(p.fields)
	if p.hasLevel {
		h++
	}
	return h
}

// renderStatusBar renders the status bar at the bottom
func (m *Model) renderStatusBar() string {
	p := m.activePanel()

	left := m.tabs.Active().Title

	right := ""
	if m.errorMsg != "" {
		right = styleError.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		right = styleSuccess.Render(m.statusMsg)
	} else if p.resultsFocused() {
		right = styleSubtle.Render(fmt.Sprintf("%s scroll | %s copy | %s help | %s quit",
			m.keys.KeysString(keybinds.ContextResults, keybinds.ActionScrollDown),
			m.keys.KeysString(keybinds.ContextResults, keybinds.ActionCopy),
			m.keys.KeysString(keybinds.ContextResults, keybinds.ActionOpenHelp),
			m.keys.KeysString(keybinds.ContextResults, keybinds.ActionQuit)))
	} else {
		right = styleSubtle.Render(fmt.Sprintf("%s submit | %s next field | F1-F5 tabs | %s call log",
			m.keys.KeysString(keybinds.ContextForm, keybinds.ActionSubmit),
			m.keys.KeysString(keybinds.ContextForm, keybinds.ActionNextField),
			m.keys.KeysString(keybinds.ContextForm, keybinds.ActionOpenStats)))
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// updateViewport sizes every result region for the current window
func (m *Model) updateViewport() {
	if m.width == 0 {
		return
	}
	width := m.width - ViewportBorderWidth - 2
	for _, p := range m.panels {
		height := m.height - MainChromeLines - formHeight(p) - ViewportBorderWidth
		p.region.resize(width, height)
		for i := range p.fields {
			p.fields[i].input.Width = width - len(p.fields[i].label) - 4
		}
	}

	modalWidth := m.width - ModalWidthMargin
	modalHeight := m.height - ModalHeightMargin
	m.detailsView.resize(modalWidth-ViewportPaddingHorizontal-2, modalHeight-ModalOverheadLines-ModalFooterLines)
	m.modalView.Width = modalWidth - ViewportPaddingHorizontal - 2
	m.modalView.Height = modalHeight - ModalOverheadLines - ModalFooterLines

	switch m.mode {
	case ModeStats:
		m.updateStatsView()
	case ModeHelp:
		m.updateHelpView()
	}
}
