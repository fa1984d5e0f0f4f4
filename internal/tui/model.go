package tui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/careerguide/internal/analytics"
	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/keybinds"
	"github.com/studiowebux/careerguide/internal/render"
	"github.com/studiowebux/careerguide/internal/tabs"
	"github.com/studiowebux/careerguide/internal/types"
	"github.com/studiowebux/careerguide/internal/view"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeDetails
	ModeStats
	ModeHelp
)

// Backend is what the TUI needs from the API client
type Backend interface {
	view.Backend
	AIStatus(ctx context.Context) (types.AIStatus, error)
}

// Model represents the TUI state
type Model struct {
	backend   Backend
	analytics *analytics.Manager // nil when the call log is disabled
	keys      *keybinds.Registry
	policy    view.Policy

	ctx    context.Context
	cancel context.CancelFunc

	mode   Mode
	tabs   *tabs.Controller
	panels map[tabs.ID]*panel

	// browse is kept to read the current search results for details
	browse *view.BrowseView

	// Details modal
	details     *view.StatisticsView
	detailsView *region

	// Stats and help modals
	stats     []analytics.Stats
	recent    []analytics.Entry
	modalView viewport.Model

	// UI state
	width     int
	height    int
	aiStatus  string
	statusMsg string
	errorMsg  string
}

// Init fetches the AI status line
func (m *Model) Init() tea.Cmd {
	return m.loadAIStatus()
}

// Cleanup cancels in-flight requests. The call log belongs to the caller.
func (m *Model) Cleanup() {
	m.cancel()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()

	case settledMsg:
		msg.settlement.Apply()

	case aiStatusMsg:
		if msg.err != nil {
			log.Printf("ai status unavailable: %v", msg.err)
			break
		}
		m.aiStatus = fragment.PlainText(render.AIStatus(msg.status))

	case statsLoadedMsg:
		m.stats = msg.stats
		m.recent = msg.recent
		m.updateStatsView()

	case statusMsg:
		m.setStatusMessage(string(msg))

	case errorMsg:
		m.setErrorMessage(string(msg))
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeDetails:
		return m.renderDetails()
	case ModeStats:
		return m.renderStats()
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// activePanel returns the panel of the active tab
func (m *Model) activePanel() *panel {
	return m.panels[m.tabs.Active().ID]
}

// Custom message types
type settledMsg struct {
	settlement view.Settlement
}

type aiStatusMsg struct {
	status types.AIStatus
	err    error
}

type statsLoadedMsg struct {
	stats  []analytics.Stats
	recent []analytics.Entry
}

type statusMsg string
type errorMsg string

func (m *Model) setStatusMessage(msg string) {
	m.errorMsg = ""
	m.statusMsg = truncate(msg, StatusMaxWidth)
}

func (m *Model) setErrorMessage(msg string) {
	m.errorMsg = truncate(msg, StatusMaxWidth)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
