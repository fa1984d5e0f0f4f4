package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/studiowebux/careerguide/internal/api"
	"github.com/studiowebux/careerguide/internal/config"
	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/render"
	"github.com/studiowebux/careerguide/internal/types"
	"github.com/studiowebux/careerguide/internal/view"
	"gopkg.in/yaml.v3"
)

// ErrFailed is returned when a view ends in the failure state. The fragment
// describing the failure has already been written.
var ErrFailed = errors.New("request failed")

// Backend is what headless commands need from the API client
type Backend interface {
	view.Backend
	AIStatus(ctx context.Context) (types.AIStatus, error)
}

// Runner runs one view headless and writes its final fragment
type Runner struct {
	backend Backend
	out     io.Writer
	format  string
	width   int
}

// NewRunner creates a runner writing format (text, html, json, yaml) to out.
// width wraps text output; zero disables wrapping.
func NewRunner(backend Backend, out io.Writer, format string, width int) *Runner {
	return &Runner{backend: backend, out: out, format: format, width: width}
}

// capture is a sink that keeps the last fragment it was given
type capture struct {
	node fragment.Node
}

func (c *capture) Replace(n fragment.Node) { c.node = n }

// run submits input to a fresh view, waits for it to settle and writes
// the result region
func run[I, R, T any](ctx context.Context, r *Runner, build func(view.Backend, view.Sink, ...view.Option) *view.Controller[I, R, T], input I) error {
	sink := &capture{}
	c := build(r.backend, sink)
	view.Run(ctx, c.Submit(input))

	if err := r.write(sink.node); err != nil {
		return err
	}
	if c.State().Phase == view.Failure {
		return ErrFailed
	}
	return nil
}

// Career looks up guidance for one career
func (r *Runner) Career(ctx context.Context, career, level string) error {
	return run(ctx, r, view.NewCareerView, view.CareerForm{Career: career, Level: level})
}

// Recommend ranks careers for a comma-delimited skill list
func (r *Runner) Recommend(ctx context.Context, skills string) error {
	return run(ctx, r, view.NewRecommendView, view.RecommendForm{Skills: skills})
}

// SkillGap compares a comma-delimited skill list against a career
func (r *Runner) SkillGap(ctx context.Context, career, skills string) error {
	return run(ctx, r, view.NewSkillGapView, view.SkillGapForm{Career: career, Skills: skills})
}

// Compare compares up to three careers. Blank names are dropped first.
func (r *Runner) Compare(ctx context.Context, careers []string) error {
	req := types.CompareRequest{Careers: view.CompareCareers(careers)}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("compare takes at most 3 careers, got %d: %w", len(req.Careers), err)
	}
	var form view.CompareForm
	copy(form[:], req.Careers)
	return run(ctx, r, view.NewCompareView, form)
}

// Search searches the career catalog
func (r *Runner) Search(ctx context.Context, keyword string) error {
	return run(ctx, r, view.NewBrowseView, view.SearchForm{Keyword: keyword})
}

// Details shows the catalog details of one career
func (r *Runner) Details(ctx context.Context, name string) error {
	return run(ctx, r, view.NewStatisticsView, name)
}

// Status prints the AI feature status line
func (r *Runner) Status(ctx context.Context) error {
	status, err := r.backend.AIStatus(ctx)
	if err != nil {
		return fmt.Errorf("ai status: %s", api.Describe(err))
	}
	return r.write(render.AIStatus(status))
}

func (r *Runner) write(n fragment.Node) error {
	output, err := formatOutput(n, r.format, r.width)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = io.WriteString(r.out, output)
	return err
}

// formatOutput renders the fragment in the requested format
func formatOutput(n fragment.Node, format string, width int) (string, error) {
	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case config.OutputYAML:
		data, err := yaml.Marshal(n)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case config.OutputHTML:
		return fragment.HTML(n) + "\n", nil

	case config.OutputText, "":
		return fragment.Terminal(n, width) + "\n", nil

	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}
