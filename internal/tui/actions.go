package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/careerguide/internal/tabs"
	"github.com/studiowebux/careerguide/internal/types"
	"github.com/studiowebux/careerguide/internal/view"
)

// runTask runs a submit's network half off the UI goroutine. A nil task
// was settled locally by Submit and needs no command.
func (m *Model) runTask(task view.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return settledMsg{settlement: task(ctx)}
	}
}

// submitActive submits the active tab's form
func (m *Model) submitActive() tea.Cmd {
	p := m.activePanel()
	m.statusMsg = ""
	m.errorMsg = ""
	return m.runTask(p.submit(p))
}

func (m *Model) loadAIStatus() tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		status, err := backend.AIStatus(ctx)
		return aiStatusMsg{status: status, err: err}
	}
}

// searchResult returns the name of the nth (1-based) card of the current
// browse results
func (m *Model) searchResult(n int) (string, bool) {
	state := m.browse.State()
	if state.Phase != view.Success {
		return "", false
	}
	results, ok := state.Payload.(*types.SearchResults)
	if !ok || n < 1 || n > len(results.Results) {
		return "", false
	}
	return results.Results[n-1].Name, true
}

// openDetails opens the details modal for the nth search card
func (m *Model) openDetails(n int) tea.Cmd {
	if !m.tabs.IsActive(tabs.Browse) {
		return nil
	}
	name, ok := m.searchResult(n)
	if !ok {
		m.setErrorMessage(fmt.Sprintf("No search result #%d", n))
		return nil
	}
	m.mode = ModeDetails
	m.updateViewport()
	return m.runTask(m.details.Submit(name))
}

// openStats opens the call log modal and loads it
func (m *Model) openStats() tea.Cmd {
	if m.analytics == nil {
		m.setErrorMessage("Call log disabled (analytics: false)")
		return nil
	}
	m.mode = ModeStats
	m.stats, m.recent = nil, nil
	m.updateStatsView()
	return m.loadStats()
}

func (m *Model) loadStats() tea.Cmd {
	mgr := m.analytics
	return func() tea.Msg {
		stats, err := mgr.Stats()
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to load call log: %v", err))
		}
		recent, err := mgr.Recent(RecentCallsLimit)
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to load call log: %v", err))
		}
		return statsLoadedMsg{stats: stats, recent: recent}
	}
}

// clearStats empties the call log and reloads the modal
func (m *Model) clearStats() tea.Cmd {
	if m.analytics == nil {
		return nil
	}
	if err := m.analytics.Clear(); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to clear call log: %v", err))
		return nil
	}
	m.setStatusMessage("Call log cleared")
	return m.loadStats()
}

// copyToClipboard copies the plain text of a result region
func (m *Model) copyToClipboard(r *region) tea.Cmd {
	text := r.plain()
	return func() tea.Msg {
		if text == "" {
			return errorMsg("Nothing to copy")
		}
		if err := clipboard.WriteAll(text); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusMsg("Result copied to clipboard")
	}
}
