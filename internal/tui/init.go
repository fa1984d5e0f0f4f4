package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/careerguide/internal/analytics"
	"github.com/studiowebux/careerguide/internal/keybinds"
	"github.com/studiowebux/careerguide/internal/tabs"
	"github.com/studiowebux/careerguide/internal/view"
)

// Options configures a Model. Zero values select the defaults.
type Options struct {
	Analytics *analytics.Manager
	Keybinds  *keybinds.Registry
	Policy    view.Policy
}

// New creates a new TUI model talking to backend
func New(backend Backend, opts Options) *Model {
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Policy == "" {
		opts.Policy = view.PolicyLatest
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		backend:     backend,
		analytics:   opts.Analytics,
		keys:        opts.Keybinds,
		policy:      opts.Policy,
		ctx:         ctx,
		cancel:      cancel,
		mode:        ModeNormal,
		tabs:        tabs.NewController(tabs.Default()),
		detailsView: newRegion(),
		modalView:   viewport.New(80, 20),
	}
	m.panels = m.newPanels()
	m.details = view.NewStatisticsView(backend, m.detailsView, view.WithPolicy(opts.Policy))
	return m
}

// Run starts the TUI and blocks until the user quits
func Run(backend Backend, opts Options) error {
	m := New(backend, opts)
	defer m.Cleanup()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
