package tui

import (
	"fmt"
	"strings"

	"github.com/studiowebux/careerguide/internal/analytics"
	"github.com/studiowebux/careerguide/internal/keybinds"
)

// renderStats renders the session call log as a split view: per-endpoint
// aggregates on the left, the most recent calls on the right
func (m *Model) renderStats() string {
	modalWidth := m.width - ModalWidthMargin
	modalHeight := m.height - ModalHeightMargin

	footer := fmt.Sprintf("↑/↓ j/k: Scroll | %s: Clear | %s: Close",
		m.keys.KeysString(keybinds.ContextModal, keybinds.ActionClearLog),
		m.keys.KeysString(keybinds.ContextModal, keybinds.ActionCloseModal))

	cfg := SplitPaneConfig{
		ModalWidth:       modalWidth,
		ModalHeight:      modalHeight,
		IsSplitView:      modalWidth >= 80,
		LeftTitle:        "Endpoints",
		LeftContent:      m.modalView.View(),
		LeftBorderColor:  colorCyan,
		LeftIsFocused:    true,
		RightTitle:       "Recent calls",
		RightContent:     formatRecent(m.recent),
		RightBorderColor: colorGray,
		Footer:           footer,
		LeftWidthRatio:   SplitViewEqual,
	}

	return renderSplitPaneModal(cfg, m.width, m.height)
}

// updateStatsView refreshes the endpoint list of the stats modal
func (m *Model) updateStatsView() {
	m.modalView.SetContent(formatStats(m.stats))
}

func formatStats(stats []analytics.Stats) string {
	if len(stats) == 0 {
		return "No calls recorded yet.\n\nSubmit a form to start the call log."
	}

	var b strings.Builder
	for _, s := range stats {
		successRate := 0.0
		if s.TotalCalls > 0 {
			successRate = float64(s.SuccessCount) / float64(s.TotalCalls) * 100
		}
		b.WriteString(styleTitle.Render(fmt.Sprintf("%s %s", s.Method, s.Endpoint)) + "\n")
		b.WriteString(fmt.Sprintf("  Calls: %d | Success: %.1f%%\n", s.TotalCalls, successRate))
		if s.TransportErrors > 0 || s.NetworkErrors > 0 {
			b.WriteString(styleError.Render(fmt.Sprintf("  Transport errors: %d | Network errors: %d",
				s.TransportErrors, s.NetworkErrors)) + "\n")
		}
		b.WriteString(fmt.Sprintf("  Avg: %.0fms | Min: %dms | Max: %dms\n", s.AvgDurationMs, s.MinDurationMs, s.MaxDurationMs))
		b.WriteString(styleSubtle.Render("  Last: "+s.LastCalled.Local().Format("15:04:05")) + "\n\n")
	}
	return b.String()
}

func formatRecent(entries []analytics.Entry) string {
	if len(entries) == 0 {
		return styleSubtle.Render("No calls")
	}

	var b strings.Builder
	for _, e := range entries {
		status := "---"
		if e.StatusCode > 0 {
			status = fmt.Sprintf("%d", e.StatusCode)
		}
		line := fmt.Sprintf("%s %s %-6s %s %dms",
			e.Timestamp.Local().Format("15:04:05"), status, e.Method, e.Endpoint, e.DurationMs)
		if e.Outcome == analytics.OutcomeSuccess {
			b.WriteString(line + "\n")
		} else {
			b.WriteString(styleError.Render(line) + "\n")
		}
	}
	return b.String()
}
