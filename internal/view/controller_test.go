package view

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/studiowebux/careerguide/internal/api"
	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/types"
)

// recordingSink keeps every fragment it was given
type recordingSink struct {
	mu    sync.Mutex
	nodes []fragment.Node
}

func (s *recordingSink) Replace(n fragment.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = append(s.nodes, n)
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}

func (s *recordingSink) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.nodes) == 0 {
		return ""
	}
	return fragment.PlainText(s.nodes[len(s.nodes)-1])
}

// fakeBackend records requests and answers from per-endpoint functions
type fakeBackend struct {
	mu       sync.Mutex
	calls    int
	requests []any

	career     func(types.CareerRequest) (types.CareerResult, error)
	recommend  func(types.RecommendRequest) (types.RecommendResult, error)
	skillGap   func(types.SkillGapRequest) (types.SkillGapResult, error)
	compare    func(types.CompareRequest) (types.CompareResult, error)
	search     func(types.SearchRequest) (types.SearchResult, error)
	statistics func(string) (types.StatisticsResult, error)
}

func (b *fakeBackend) record(req any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	b.requests = append(b.requests, req)
}

func (b *fakeBackend) Career(_ context.Context, req types.CareerRequest) (types.CareerResult, error) {
	b.record(req)
	return b.career(req)
}

func (b *fakeBackend) Recommend(_ context.Context, req types.RecommendRequest) (types.RecommendResult, error) {
	b.record(req)
	return b.recommend(req)
}

func (b *fakeBackend) SkillGap(_ context.Context, req types.SkillGapRequest) (types.SkillGapResult, error) {
	b.record(req)
	return b.skillGap(req)
}

func (b *fakeBackend) Compare(_ context.Context, req types.CompareRequest) (types.CompareResult, error) {
	b.record(req)
	return b.compare(req)
}

func (b *fakeBackend) Search(_ context.Context, req types.SearchRequest) (types.SearchResult, error) {
	b.record(req)
	return b.search(req)
}

func (b *fakeBackend) Statistics(_ context.Context, name string) (types.StatisticsResult, error) {
	b.record(name)
	return b.statistics(name)
}

func guidanceFor(req types.CareerRequest) (types.CareerResult, error) {
	return &types.CareerGuidance{Career: req.Career, Level: req.Level}, nil
}

func TestSubmit_StateTransitions(t *testing.T) {
	b := &fakeBackend{career: guidanceFor}
	sink := &recordingSink{}
	v := NewCareerView(b, sink)

	if v.State().Phase != Idle {
		t.Fatalf("initial phase = %s, want idle", v.State().Phase)
	}

	task := v.Submit(CareerForm{Career: "Nurse", Level: types.LevelStudent})
	if task == nil {
		t.Fatal("Submit() returned nil task")
	}
	if v.State().Phase != Loading {
		t.Errorf("phase after submit = %s, want loading", v.State().Phase)
	}
	if sink.last() != "⏳ Analyzing career path..." {
		t.Errorf("loading fragment = %q", sink.last())
	}
	if b.calls != 0 {
		t.Error("fetch ran before the task")
	}

	if !task(context.Background()).Apply() {
		t.Fatal("Apply() = false")
	}
	st := v.State()
	if st.Phase != Success {
		t.Fatalf("phase = %s, want success", st.Phase)
	}
	if g := st.Payload.(*types.CareerGuidance); g.Career != "Nurse" {
		t.Errorf("payload career = %q", g.Career)
	}
	if b.calls != 1 {
		t.Errorf("calls = %d, want 1", b.calls)
	}
	if sink.count() != 2 {
		t.Errorf("sink replaced %d times, want 2", sink.count())
	}
	if !strings.HasPrefix(sink.last(), "Nurse") {
		t.Errorf("rendered = %q", sink.last())
	}
}

func TestSubmit_CareerInputSentAsTyped(t *testing.T) {
	b := &fakeBackend{career: guidanceFor}
	v := NewCareerView(b, &recordingSink{})

	Run(context.Background(), v.Submit(CareerForm{Career: "  data scientist ", Level: "wizard"}))

	want := types.CareerRequest{Career: "  data scientist ", Level: "wizard"}
	if !reflect.DeepEqual(b.requests[0], want) {
		t.Errorf("request = %+v, want %+v", b.requests[0], want)
	}
}

func TestSubmit_FailureMessages(t *testing.T) {
	transport := &api.TransportError{Endpoint: "/x", StatusCode: http.StatusInternalServerError}
	network := &api.NetworkError{Endpoint: "/x", Err: errors.New("connection refused")}

	tests := []struct {
		name string
		err  error
		run  func(*fakeBackend, Sink) Task
		want string
	}{
		{"career transport", transport, func(b *fakeBackend, s Sink) Task {
			return NewCareerView(b, s).Submit(CareerForm{Career: "x"})
		}, "❌ Error: Unable to get guidance. Please try again."},
		{"career network", network, func(b *fakeBackend, s Sink) Task {
			return NewCareerView(b, s).Submit(CareerForm{Career: "x"})
		}, "❌ Error: Could not connect to the server."},
		{"recommend transport", transport, func(b *fakeBackend, s Sink) Task {
			return NewRecommendView(b, s).Submit(RecommendForm{Skills: "go"})
		}, "❌ Error getting recommendations"},
		{"gap network", network, func(b *fakeBackend, s Sink) Task {
			return NewSkillGapView(b, s).Submit(SkillGapForm{Career: "x"})
		}, "❌ Error: Could not connect to server"},
		{"compare network", network, func(b *fakeBackend, s Sink) Task {
			return NewCompareView(b, s).Submit(CompareForm{"a"})
		}, "❌ Could not connect to server"},
		{"browse transport", transport, func(b *fakeBackend, s Sink) Task {
			return NewBrowseView(b, s).Submit(SearchForm{Keyword: "data"})
		}, "❌ Error searching careers. Please try again."},
		{"statistics transport", transport, func(b *fakeBackend, s Sink) Task {
			return NewStatisticsView(b, s).Submit("Nurse")
		}, "❌ Error loading career details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBackend{
				career:     func(types.CareerRequest) (types.CareerResult, error) { return nil, tt.err },
				recommend:  func(types.RecommendRequest) (types.RecommendResult, error) { return nil, tt.err },
				skillGap:   func(types.SkillGapRequest) (types.SkillGapResult, error) { return nil, tt.err },
				compare:    func(types.CompareRequest) (types.CompareResult, error) { return nil, tt.err },
				search:     func(types.SearchRequest) (types.SearchResult, error) { return nil, tt.err },
				statistics: func(string) (types.StatisticsResult, error) { return nil, tt.err },
			}
			sink := &recordingSink{}
			Run(context.Background(), tt.run(b, sink))

			if got := sink.last(); got != tt.want {
				t.Errorf("rendered = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecommend_EmptySkillsNeverCallsBackend(t *testing.T) {
	for _, input := range []string{"", "   ", ",", " , ,  ,"} {
		t.Run(input, func(t *testing.T) {
			b := &fakeBackend{}
			sink := &recordingSink{}
			v := NewRecommendView(b, sink)

			if task := v.Submit(RecommendForm{Skills: input}); task != nil {
				t.Fatal("Submit() returned a task for an empty skill set")
			}
			if b.calls != 0 {
				t.Errorf("calls = %d, want 0", b.calls)
			}
			if v.State().Phase != Failure {
				t.Errorf("phase = %s, want failure", v.State().Phase)
			}
			if sink.count() != 1 || sink.last() != MsgNoSkills {
				t.Errorf("rendered %d times, last = %q", sink.count(), sink.last())
			}
		})
	}
}

func TestRecommend_SplitsSkills(t *testing.T) {
	b := &fakeBackend{recommend: func(types.RecommendRequest) (types.RecommendResult, error) {
		return &types.Recommendations{}, nil
	}}
	v := NewRecommendView(b, &recordingSink{})

	Run(context.Background(), v.Submit(RecommendForm{Skills: " python, ,SQL ,, machine learning "}))

	want := types.RecommendRequest{Skills: []string{"python", "SQL", "machine learning"}}
	if !reflect.DeepEqual(b.requests[0], want) {
		t.Errorf("request = %+v, want %+v", b.requests[0], want)
	}
}

func TestSkillGap_EmptySkillsAllowed(t *testing.T) {
	b := &fakeBackend{skillGap: func(types.SkillGapRequest) (types.SkillGapResult, error) {
		return &types.SkillGap{Career: "x"}, nil
	}}
	v := NewSkillGapView(b, &recordingSink{})

	if !Run(context.Background(), v.Submit(SkillGapForm{Career: "Data Scientist"})) {
		t.Fatal("Run() = false")
	}
	req := b.requests[0].(types.SkillGapRequest)
	if req.Skills == nil || len(req.Skills) != 0 {
		t.Errorf("Skills = %#v, want empty non-nil slice", req.Skills)
	}
}

func TestCompare_DropsBlankFields(t *testing.T) {
	tests := []struct {
		name string
		form CompareForm
		want []string
	}{
		{"first and third", CompareForm{"a", "", "c"}, []string{"a", "c"}},
		{"whitespace only", CompareForm{" ", "b", ""}, []string{"b"}},
		{"kept fields trimmed", CompareForm{" a ", "", "c\t"}, []string{"a", "c"}},
		{"all three", CompareForm{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"none still calls", CompareForm{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBackend{compare: func(types.CompareRequest) (types.CompareResult, error) {
				return &types.Comparison{}, nil
			}}
			Run(context.Background(), NewCompareView(b, &recordingSink{}).Submit(tt.form))

			if b.calls != 1 {
				t.Fatalf("calls = %d, want 1", b.calls)
			}
			got := b.requests[0].(types.CompareRequest).Careers
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Careers = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCompareCareers(t *testing.T) {
	got := CompareCareers([]string{" a", "", "  ", "b ", "c", "d"})
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompareCareers() = %#v, want %#v", got, want)
	}
	if err := (&types.CompareRequest{Careers: got}).Validate(); err == nil {
		t.Error("four careers should fail request validation")
	}
	if err := (&types.CompareRequest{Careers: got[:3]}).Validate(); err != nil {
		t.Errorf("three careers: %v", err)
	}
}

func TestBrowse_BlankQueryShowsHint(t *testing.T) {
	b := &fakeBackend{}
	sink := &recordingSink{}
	v := NewBrowseView(b, sink)

	for _, q := range []string{"", " \t "} {
		if task := v.Submit(SearchForm{Keyword: q}); task != nil {
			t.Errorf("Submit(%q) returned a task", q)
		}
	}
	if b.calls != 0 {
		t.Errorf("calls = %d, want 0", b.calls)
	}
	if v.State().Phase != Idle {
		t.Errorf("phase = %s, want idle", v.State().Phase)
	}
	if sink.last() != MsgSearchHint {
		t.Errorf("rendered = %q", sink.last())
	}
}

func TestBrowse_QuerySentUntrimmed(t *testing.T) {
	b := &fakeBackend{search: func(req types.SearchRequest) (types.SearchResult, error) {
		return &types.SearchResults{Keyword: req.Keyword}, nil
	}}
	sink := &recordingSink{}
	Run(context.Background(), NewBrowseView(b, sink).Submit(SearchForm{Keyword: " astronaut "}))

	if got := b.requests[0].(types.SearchRequest).Keyword; got != " astronaut " {
		t.Errorf("Keyword = %q", got)
	}
	if !strings.Contains(sink.last(), `" astronaut "`) {
		t.Errorf("no-results message = %q", sink.last())
	}
}

// racePair submits twice and settles the second call before the first
func racePair(t *testing.T, opts ...Option) (*CareerView, *recordingSink, []bool) {
	t.Helper()
	b := &fakeBackend{career: guidanceFor}
	sink := &recordingSink{}
	v := NewCareerView(b, sink, opts...)

	first := v.Submit(CareerForm{Career: "First"})
	second := v.Submit(CareerForm{Career: "Second"})

	ctx := context.Background()
	s1 := first(ctx)
	s2 := second(ctx)

	applied := []bool{s2.Apply(), s1.Apply()}
	return v, sink, applied
}

func TestRace_LastSettledWins(t *testing.T) {
	v, sink, applied := racePair(t, LastSettledWins())

	if !applied[0] || !applied[1] {
		t.Errorf("applied = %v, want both", applied)
	}
	if !strings.HasPrefix(sink.last(), "First") {
		t.Errorf("region shows %q, want the later-settling First", sink.last())
	}
	if g := v.State().Payload.(*types.CareerGuidance); g.Career != "First" {
		t.Errorf("state payload = %q, want First", g.Career)
	}
}

func TestRace_LatestSubmitWins(t *testing.T) {
	v, sink, applied := racePair(t)

	if !applied[0] || applied[1] {
		t.Errorf("applied = %v, want [true false]", applied)
	}
	if !strings.HasPrefix(sink.last(), "Second") {
		t.Errorf("region shows %q, want Second", sink.last())
	}
	if g := v.State().Payload.(*types.CareerGuidance); g.Career != "Second" {
		t.Errorf("state payload = %q, want Second", g.Career)
	}
}

func TestRace_StaleResponseCannotOverwriteValidationError(t *testing.T) {
	b := &fakeBackend{recommend: func(types.RecommendRequest) (types.RecommendResult, error) {
		return &types.Recommendations{InputSkills: []string{"go"}}, nil
	}}
	sink := &recordingSink{}
	v := NewRecommendView(b, sink)

	pending := v.Submit(RecommendForm{Skills: "go"})
	v.Submit(RecommendForm{Skills: ""})

	if pending(context.Background()).Apply() {
		t.Error("stale response applied over a validation failure")
	}
	if sink.last() != MsgNoSkills || v.State().Phase != Failure {
		t.Errorf("region = %q, phase = %s", sink.last(), v.State().Phase)
	}
}

func TestViews_AreIndependent(t *testing.T) {
	b := &fakeBackend{
		career: func(types.CareerRequest) (types.CareerResult, error) {
			return nil, &api.NetworkError{Endpoint: "/career", Err: errors.New("down")}
		},
		search: func(types.SearchRequest) (types.SearchResult, error) {
			return &types.SearchResults{Total: 1, Results: []types.SearchResultItem{{Name: "X"}}}, nil
		},
	}
	careerSink, browseSink := &recordingSink{}, &recordingSink{}
	career := NewCareerView(b, careerSink)
	browse := NewBrowseView(b, browseSink)

	Run(context.Background(), career.Submit(CareerForm{Career: "x"}))
	Run(context.Background(), browse.Submit(SearchForm{Keyword: "x"}))

	if career.State().Phase != Failure || browse.State().Phase != Success {
		t.Errorf("phases = %s / %s", career.State().Phase, browse.State().Phase)
	}
	if careerSink.count() != 2 || browseSink.count() != 2 {
		t.Errorf("sink counts = %d / %d, want 2 / 2", careerSink.count(), browseSink.count())
	}
}

func TestStatisticsView(t *testing.T) {
	b := &fakeBackend{statistics: func(name string) (types.StatisticsResult, error) {
		return &types.CareerStatistics{Career: name, JobOutlook: "Bright"}, nil
	}}
	sink := &recordingSink{}
	v := NewStatisticsView(b, sink)

	task := v.Submit("Nurse")
	if sink.last() != "⏳ Loading career details..." {
		t.Errorf("loading = %q", sink.last())
	}
	Run(context.Background(), task)
	if !strings.HasPrefix(sink.last(), "Nurse") {
		t.Errorf("rendered = %q", sink.last())
	}
}

func TestSettlement_ZeroValue(t *testing.T) {
	if (Settlement{}).Apply() {
		t.Error("zero Settlement applied")
	}
	if Run(context.Background(), nil) {
		t.Error("Run(nil) = true")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyLatest, false},
		{"latest", PolicyLatest, false},
		{"last-settled", PolicyLastSettled, false},
		{"random", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestSplitSkills(t *testing.T) {
	tests := map[string][]string{
		"":              {},
		"go":            {"go"},
		" a , b ,, c ":  {"a", "b", "c"},
		"Go, go":        {"Go", "go"},
		" , ":           {},
	}
	for in, want := range tests {
		if got := SplitSkills(in); !reflect.DeepEqual(got, want) {
			t.Errorf("SplitSkills(%q) = %#v, want %#v", in, got, want)
		}
	}
}
