package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/studiowebux/careerguide/internal/api"
	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/mock"
	"gopkg.in/yaml.v3"
)

func newTestRunner(t *testing.T, format string) (*Runner, *bytes.Buffer) {
	t.Helper()
	config, err := mock.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig() error = %v", err)
	}
	config.Logging = false
	ts := httptest.NewServer(mock.NewServer(config, t.TempDir()).Handler())
	t.Cleanup(ts.Close)

	var out bytes.Buffer
	client := api.New(ts.URL, api.WithHTTPClient(ts.Client()))
	return NewRunner(client, &out, format, 0), &out
}

func TestCareer_JSON(t *testing.T) {
	r, out := newTestRunner(t, "json")

	if err := r.Career(context.Background(), "Data Scientist", "fresher"); err != nil {
		t.Fatalf("Career() error = %v", err)
	}

	var node fragment.Node
	if err := json.Unmarshal(out.Bytes(), &node); err != nil {
		t.Fatalf("output is not a fragment: %v\n%s", err, out.String())
	}
	if !node.HasClass("guidance-card") {
		t.Errorf("root class = %q, want guidance-card", node.Class)
	}
}

func TestSearch_HTML(t *testing.T) {
	r, out := newTestRunner(t, "html")

	if err := r.Search(context.Background(), "data"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out.String()))
	if err != nil {
		t.Fatal(err)
	}
	if n := doc.Find(".career-card").Length(); n != 3 {
		t.Errorf("career cards = %d, want 3", n)
	}
}

func TestDetails_YAML(t *testing.T) {
	r, out := newTestRunner(t, "yaml")

	if err := r.Details(context.Background(), "Data Scientist"); err != nil {
		t.Fatalf("Details() error = %v", err)
	}

	var node fragment.Node
	if err := yaml.Unmarshal(out.Bytes(), &node); err != nil {
		t.Fatalf("output is not a fragment: %v", err)
	}
	if !node.HasClass("detail-card") {
		t.Errorf("root class = %q, want detail-card", node.Class)
	}
}

func TestFailureExitsNonZero(t *testing.T) {
	tests := []struct {
		name string
		run  func(r *Runner) error
		want string
	}{
		{
			name: "compare with no careers",
			run:  func(r *Runner) error { return r.Compare(context.Background(), nil) },
			want: "❌ Error comparing careers",
		},
		{
			name: "recommend without skills",
			run:  func(r *Runner) error { return r.Recommend(context.Background(), " , ") },
			want: "❌ Please enter at least one skill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRunner(t, "text")
			err := tt.run(r)
			if !errors.Is(err, ErrFailed) {
				t.Fatalf("error = %v, want ErrFailed", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRejectionIsNotFailure(t *testing.T) {
	r, out := newTestRunner(t, "text")

	// the backend answered; an unknown career is a rendered result
	if err := r.SkillGap(context.Background(), "wizard", "python"); err != nil {
		t.Fatalf("SkillGap() error = %v", err)
	}
	if !strings.Contains(out.String(), "❌") {
		t.Errorf("rejection not rendered: %q", out.String())
	}
}

func TestBlankSearchPrintsHint(t *testing.T) {
	r, out := newTestRunner(t, "text")

	if err := r.Search(context.Background(), "  "); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !strings.Contains(out.String(), "💡") {
		t.Errorf("hint not rendered: %q", out.String())
	}
}

func TestCompare_TooMany(t *testing.T) {
	r, out := newTestRunner(t, "text")

	err := r.Compare(context.Background(), []string{"a", "b", "c", "d"})
	if err == nil || errors.Is(err, ErrFailed) {
		t.Fatalf("error = %v, want argument error", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written, got %q", out.String())
	}
}

func TestCompare_BlankArgsDoNotCount(t *testing.T) {
	r, out := newTestRunner(t, "json")

	err := r.Compare(context.Background(), []string{"Data Scientist", " ", "Web Developer", ""})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	var node fragment.Node
	if err := json.Unmarshal(out.Bytes(), &node); err != nil {
		t.Fatalf("output is not a fragment: %v", err)
	}
	if !node.HasClass("comparison-container") {
		t.Errorf("root class = %q, want comparison-container", node.Class)
	}
}

func TestStatus(t *testing.T) {
	r, out := newTestRunner(t, "text")

	if err := r.Status(context.Background()); err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !strings.Contains(out.String(), "AI Features Active (Gemini + OpenAI)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestStatus_Unreachable(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(api.New("http://127.0.0.1:1"), &out, "text", 0)

	if err := r.Status(context.Background()); err == nil {
		t.Error("expected an error for an unreachable backend")
	}
}

func TestUnknownFormat(t *testing.T) {
	r, _ := newTestRunner(t, "xml")

	err := r.Career(context.Background(), "Data Scientist", "fresher")
	if err == nil || !strings.Contains(err.Error(), `unknown output format "xml"`) {
		t.Errorf("error = %v", err)
	}
}
