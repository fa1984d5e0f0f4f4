package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/tabs"
	"github.com/studiowebux/careerguide/internal/types"
	"github.com/studiowebux/careerguide/internal/view"
)

// region is a view's result area: the last fragment its controller
// rendered, shown through a scrollable viewport. It implements view.Sink.
type region struct {
	node     fragment.Node
	viewport viewport.Model
	width    int
}

func newRegion() *region {
	return &region{viewport: viewport.New(80, 10), width: 80}
}

// Replace swaps the shown fragment and scrolls back to the top
func (r *region) Replace(n fragment.Node) {
	r.node = n
	r.refresh()
	r.viewport.GotoTop()
}

func (r *region) resize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 1 {
		height = 1
	}
	r.width = width
	r.viewport.Width = width
	r.viewport.Height = height
	r.refresh()
}

func (r *region) refresh() {
	if r.node.IsEmpty() {
		r.viewport.SetContent("")
		return
	}
	r.viewport.SetContent(fragment.Terminal(r.node, r.width))
}

// plain is the region's clipboard text
func (r *region) plain() string {
	if r.node.IsEmpty() {
		return ""
	}
	return fragment.PlainText(r.node)
}

// field is one labelled text input of a form
type field struct {
	label string
	input textinput.Model
}

func newField(label, placeholder string) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "› "
	in.CharLimit = 120
	return field{label: label, input: in}
}

// panel is the form and result region of one tab. focus indexes fields;
// focus == len(fields) means the result region has focus.
type panel struct {
	tab    tabs.ID
	fields []field
	focus  int
	// level indexes types.Levels; only the career panel shows it
	level    int
	hasLevel bool
	region   *region
	submit   func(p *panel) view.Task
}

func (p *panel) value(i int) string {
	return p.fields[i].input.Value()
}

func (p *panel) resultsFocused() bool {
	return p.focus >= len(p.fields)
}

// setFocus moves focus to index i, wrapping over fields plus the region
func (p *panel) setFocus(i int) {
	n := len(p.fields) + 1
	p.focus = ((i % n) + n) % n
	for j := range p.fields {
		if j == p.focus {
			p.fields[j].input.Focus()
		} else {
			p.fields[j].input.Blur()
		}
	}
}

func (p *panel) cycleLevel() {
	p.level = (p.level + 1) % len(types.Levels)
}

func (p *panel) levelName() string {
	return types.Levels[p.level]
}

// newPanels builds one panel per tab, each wired to the controller that
// owns the same region
func (m *Model) newPanels() map[tabs.ID]*panel {
	career := &panel{
		tab:      tabs.Career,
		fields:   []field{newField("Career", "e.g. Data Scientist")},
		hasLevel: true,
		level:    indexOf(types.Levels, types.LevelFresher),
		region:   newRegion(),
	}
	recommend := &panel{
		tab:    tabs.Recommend,
		fields: []field{newField("Your skills", "python, sql, statistics")},
		region: newRegion(),
	}
	gap := &panel{
		tab: tabs.SkillGap,
		fields: []field{
			newField("Target career", "e.g. Software Engineer"),
			newField("Your skills", "comma separated"),
		},
		region: newRegion(),
	}
	compare := &panel{
		tab: tabs.Compare,
		fields: []field{
			newField("Career 1", "e.g. Data Scientist"),
			newField("Career 2", "e.g. Software Engineer"),
			newField("Career 3", "optional"),
		},
		region: newRegion(),
	}
	browse := &panel{
		tab:    tabs.Browse,
		fields: []field{newField("Search", "engineer, data, design...")},
		region: newRegion(),
	}

	opts := []view.Option{view.WithPolicy(m.policy)}
	careerView := view.NewCareerView(m.backend, career.region, opts...)
	recommendView := view.NewRecommendView(m.backend, recommend.region, opts...)
	gapView := view.NewSkillGapView(m.backend, gap.region, opts...)
	compareView := view.NewCompareView(m.backend, compare.region, opts...)
	m.browse = view.NewBrowseView(m.backend, browse.region, opts...)

	career.submit = func(p *panel) view.Task {
		return careerView.Submit(view.CareerForm{Career: p.value(0), Level: p.levelName()})
	}
	recommend.submit = func(p *panel) view.Task {
		return recommendView.Submit(view.RecommendForm{Skills: p.value(0)})
	}
	gap.submit = func(p *panel) view.Task {
		return gapView.Submit(view.SkillGapForm{Career: p.value(0), Skills: p.value(1)})
	}
	compare.submit = func(p *panel) view.Task {
		return compareView.Submit(view.CompareForm{p.value(0), p.value(1), p.value(2)})
	}
	browse.submit = func(p *panel) view.Task {
		return m.browse.Submit(view.SearchForm{Keyword: p.value(0)})
	}

	panels := map[tabs.ID]*panel{
		tabs.Career:    career,
		tabs.Recommend: recommend,
		tabs.SkillGap:  gap,
		tabs.Compare:   compare,
		tabs.Browse:    browse,
	}
	for _, p := range panels {
		p.setFocus(0)
	}
	return panels
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return 0
}
