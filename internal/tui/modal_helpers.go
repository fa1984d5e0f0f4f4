package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// SplitPaneConfig defines a two-pane modal
type SplitPaneConfig struct {
	ModalWidth  int
	ModalHeight int

	// IsSplitView false shows only the left pane at full width
	IsSplitView bool

	LeftTitle       string
	LeftContent     string
	LeftBorderColor lipgloss.AdaptiveColor
	LeftIsFocused   bool

	RightTitle       string
	RightContent     string
	RightBorderColor lipgloss.AdaptiveColor
	RightIsFocused   bool

	Footer string

	// LeftWidthRatio is the left pane's share of the width, 0.5 when out of (0, 1)
	LeftWidthRatio float64
}

func paneTitleStyle(focused bool) lipgloss.Style {
	if focused {
		return styleTitleFocused
	}
	return styleTitleUnfocused
}

func renderPane(title, content string, border lipgloss.AdaptiveColor, focused bool, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Height(height).
		Padding(0, 1).
		Render(paneTitleStyle(focused).Render(title) + "\n" + content)
}

// renderSplitPaneModal renders a split-pane modal centered in the window
func renderSplitPaneModal(cfg SplitPaneConfig, totalWidth, totalHeight int) string {
	paneHeight := cfg.ModalHeight - 4

	var mainView string
	if cfg.IsSplitView {
		ratio := cfg.LeftWidthRatio
		if ratio <= 0 || ratio >= 1 {
			ratio = SplitViewEqual
		}
		leftWidth := int(float64(cfg.ModalWidth-SplitPaneBorderWidth) * ratio)
		rightWidth := cfg.ModalWidth - leftWidth - SplitPaneBorderWidth

		mainView = lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderPane(cfg.LeftTitle, cfg.LeftContent, cfg.LeftBorderColor, cfg.LeftIsFocused, leftWidth, paneHeight),
			renderPane(cfg.RightTitle, cfg.RightContent, cfg.RightBorderColor, cfg.RightIsFocused, rightWidth, paneHeight),
		)
	} else {
		mainView = renderPane(cfg.LeftTitle, cfg.LeftContent, cfg.LeftBorderColor, cfg.LeftIsFocused, cfg.ModalWidth, paneHeight)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		"\n"+styleSubtle.Render(cfg.Footer),
	)

	return lipgloss.Place(
		totalWidth,
		totalHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
