package tui

import (
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/careerguide/internal/analytics"
	"github.com/studiowebux/careerguide/internal/api"
	"github.com/studiowebux/careerguide/internal/mock"
)

// CreateTestModel creates a sized Model talking to the built-in fixture
// backend, with the call log enabled
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	mgr, err := analytics.NewManager()
	if err != nil {
		t.Fatalf("Failed to open call log: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	return createModel(t, Options{Analytics: mgr})
}

// CreateTestModelWithOptions creates a sized Model with explicit options
func CreateTestModelWithOptions(t *testing.T, opts Options) *Model {
	t.Helper()
	return createModel(t, opts)
}

func createModel(t *testing.T, opts Options) *Model {
	t.Helper()

	config, err := mock.DefaultConfig()
	if err != nil {
		t.Fatalf("Failed to load fixtures: %v", err)
	}
	config.Logging = false
	ts := httptest.NewServer(mock.NewServer(config, t.TempDir()).Handler())
	t.Cleanup(ts.Close)

	var clientOpts []api.Option
	clientOpts = append(clientOpts, api.WithHTTPClient(ts.Client()))
	if opts.Analytics != nil {
		clientOpts = append(clientOpts, api.WithRecorder(opts.Analytics))
	}

	m := New(api.New(ts.URL, clientOpts...), opts)
	t.Cleanup(m.Cleanup)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// keyMsg builds the key message whose String() is key
func keyMsg(key string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":      tea.KeyEnter,
		"tab":        tea.KeyTab,
		"shift+tab":  tea.KeyShiftTab,
		"esc":        tea.KeyEsc,
		"ctrl+c":     tea.KeyCtrlC,
		"ctrl+s":     tea.KeyCtrlS,
		"ctrl+l":     tea.KeyCtrlL,
		"ctrl+right": tea.KeyCtrlRight,
		"ctrl+left":  tea.KeyCtrlLeft,
		"f1":         tea.KeyF1,
		"f2":         tea.KeyF2,
		"f3":         tea.KeyF3,
		"f4":         tea.KeyF4,
		"f5":         tea.KeyF5,
	}
	if kt, ok := special[key]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Press sends one key to the model and returns the resulting command
func Press(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyMsg(key))
	return cmd
}

// RunCmd executes cmd and feeds its message back into the model, the way
// the Bubble Tea runtime would
func RunCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	m.Update(cmd())
}

// Fill sets the value of field i of the active panel
func Fill(m *Model, i int, value string) {
	m.activePanel().fields[i].input.SetValue(value)
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
