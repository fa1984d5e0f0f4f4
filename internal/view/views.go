package view

import (
	"context"
	"strings"

	"github.com/studiowebux/careerguide/internal/render"
	"github.com/studiowebux/careerguide/internal/types"
)

// Backend is the part of api.Client the views call
type Backend interface {
	Career(ctx context.Context, req types.CareerRequest) (types.CareerResult, error)
	Recommend(ctx context.Context, req types.RecommendRequest) (types.RecommendResult, error)
	SkillGap(ctx context.Context, req types.SkillGapRequest) (types.SkillGapResult, error)
	Compare(ctx context.Context, req types.CompareRequest) (types.CompareResult, error)
	Search(ctx context.Context, req types.SearchRequest) (types.SearchResult, error)
	Statistics(ctx context.Context, name string) (types.StatisticsResult, error)
}

// View names
const (
	NameCareer     = "career"
	NameRecommend  = "recommend"
	NameSkillGap   = "gap"
	NameCompare    = "compare"
	NameBrowse     = "browse"
	NameStatistics = "statistics"
)

const (
	// MsgNoSkills is shown when the recommend view gets no usable skill
	MsgNoSkills = "❌ Please enter at least one skill"
	// MsgSearchHint is shown for an empty search
	MsgSearchHint = "💡 Try searching for: engineer, data, design, cloud, mobile, ai, or any role name"
)

// CareerForm is the career lookup form
type CareerForm struct {
	Career string
	Level  string
}

// RecommendForm holds a comma-delimited skill list
type RecommendForm struct {
	Skills string
}

// SkillGapForm holds a target career and a comma-delimited skill list
type SkillGapForm struct {
	Career string
	Skills string
}

// CompareForm holds up to three optional career names
type CompareForm [3]string

// SearchForm holds the free-text catalog query
type SearchForm struct {
	Keyword string
}

type (
	CareerView     = Controller[CareerForm, types.CareerRequest, types.CareerResult]
	RecommendView  = Controller[RecommendForm, types.RecommendRequest, types.RecommendResult]
	SkillGapView   = Controller[SkillGapForm, types.SkillGapRequest, types.SkillGapResult]
	CompareView    = Controller[CompareForm, types.CompareRequest, types.CompareResult]
	BrowseView     = Controller[SearchForm, types.SearchRequest, types.SearchResult]
	StatisticsView = Controller[string, string, types.StatisticsResult]
)

// SplitSkills splits a comma-delimited field into trimmed, non-empty entries.
// The result is never nil so it encodes as a JSON array.
func SplitSkills(s string) []string {
	skills := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// CompareCareers trims the compare fields and drops the blank ones,
// keeping field order
func CompareCareers(fields []string) []string {
	careers := make([]string, 0, len(fields))
	for _, c := range fields {
		if c = strings.TrimSpace(c); c != "" {
			careers = append(careers, c)
		}
	}
	return careers
}

// NewCareerView looks up guidance for one career. Input is sent as typed.
func NewCareerView(b Backend, sink Sink, opts ...Option) *CareerView {
	return New(Definition[CareerForm, types.CareerRequest, types.CareerResult]{
		Name: NameCareer,
		Messages: Messages{
			Loading:   "⏳ Analyzing career path...",
			Transport: render.CareerLookupError,
			Network:   "❌ Error: Could not connect to the server.",
		},
		Prepare: func(f CareerForm) (types.CareerRequest, error) {
			return types.CareerRequest{Career: f.Career, Level: f.Level}, nil
		},
		Fetch:  b.Career,
		Render: render.Career,
	}, sink, opts...)
}

// NewRecommendView ranks careers for the entered skills. An empty skill
// set fails validation without a call.
func NewRecommendView(b Backend, sink Sink, opts ...Option) *RecommendView {
	return New(Definition[RecommendForm, types.RecommendRequest, types.RecommendResult]{
		Name: NameRecommend,
		Messages: Messages{
			Loading:   "⏳ Finding matching careers...",
			Transport: "❌ Error getting recommendations",
			Network:   "❌ Error: Could not connect to server",
		},
		Prepare: func(f RecommendForm) (types.RecommendRequest, error) {
			req := types.RecommendRequest{Skills: SplitSkills(f.Skills)}
			if err := req.Validate(); err != nil {
				return req, &ValidationError{Message: MsgNoSkills}
			}
			return req, nil
		},
		Fetch:  b.Recommend,
		Render: render.Recommendations,
	}, sink, opts...)
}

// NewSkillGapView compares held skills against a career. An empty skill
// set is allowed.
func NewSkillGapView(b Backend, sink Sink, opts ...Option) *SkillGapView {
	return New(Definition[SkillGapForm, types.SkillGapRequest, types.SkillGapResult]{
		Name: NameSkillGap,
		Messages: Messages{
			Loading:   "⏳ Analyzing skill gap...",
			Transport: "❌ Error analyzing skill gap",
			Network:   "❌ Error: Could not connect to server",
		},
		Prepare: func(f SkillGapForm) (types.SkillGapRequest, error) {
			req := types.SkillGapRequest{Career: f.Career, Skills: SplitSkills(f.Skills)}
			if err := req.Validate(); err != nil {
				return req, &ValidationError{Message: "❌ Error analyzing skill gap"}
			}
			return req, nil
		},
		Fetch:  b.SkillGap,
		Render: render.SkillGap,
	}, sink, opts...)
}

// NewCompareView compares the filled career fields in field order. Fields
// are trimmed and blank ones dropped; the backend decides what too few
// careers means.
func NewCompareView(b Backend, sink Sink, opts ...Option) *CompareView {
	return New(Definition[CompareForm, types.CompareRequest, types.CompareResult]{
		Name: NameCompare,
		Messages: Messages{
			Loading:   "⏳ Comparing careers...",
			Transport: "❌ Error comparing careers",
			Network:   "❌ Could not connect to server",
		},
		Prepare: func(f CompareForm) (types.CompareRequest, error) {
			req := types.CompareRequest{Careers: CompareCareers(f[:])}
			if err := req.Validate(); err != nil {
				return req, &ValidationError{Message: "❌ Error comparing careers"}
			}
			return req, nil
		},
		Fetch:  b.Compare,
		Render: render.Comparison,
	}, sink, opts...)
}

// NewBrowseView searches the career catalog. A blank query shows a hint
// instead of searching; otherwise the query is sent untrimmed.
func NewBrowseView(b Backend, sink Sink, opts ...Option) *BrowseView {
	return New(Definition[SearchForm, types.SearchRequest, types.SearchResult]{
		Name: NameBrowse,
		Messages: Messages{
			Loading:   "🔍 Searching... (finding semantic matches)",
			Transport: "❌ Error searching careers. Please try again.",
			Network:   "❌ Error: Could not connect to server",
		},
		Prepare: func(f SearchForm) (types.SearchRequest, error) {
			trimmed := types.SearchRequest{Keyword: strings.TrimSpace(f.Keyword)}
			if err := trimmed.Validate(); err != nil {
				return trimmed, &Hint{Message: MsgSearchHint}
			}
			return types.SearchRequest{Keyword: f.Keyword}, nil
		},
		Fetch:  b.Search,
		Render: render.Search,
	}, sink, opts...)
}

// NewStatisticsView loads the detail card of one catalog career by name
func NewStatisticsView(b Backend, sink Sink, opts ...Option) *StatisticsView {
	return New(Definition[string, string, types.StatisticsResult]{
		Name: NameStatistics,
		Messages: Messages{
			Loading:   "⏳ Loading career details...",
			Transport: "❌ Error loading career details",
			Network:   "❌ Error: Could not connect to server",
		},
		Prepare: func(name string) (string, error) { return name, nil },
		Fetch:   b.Statistics,
		Render:  render.Statistics,
	}, sink, opts...)
}
