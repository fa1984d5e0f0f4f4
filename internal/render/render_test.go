package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/types"
)

func doc(t *testing.T, n fragment.Node) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment.HTML(n)))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return d
}

func floatPtr(v float64) *float64 { return &v }

func sampleGuidance() *types.CareerGuidance {
	return &types.CareerGuidance{
		Career:          "Data Scientist",
		Level:           types.LevelStudent,
		MatchConfidence: floatPtr(87),
		Focus:           "Statistics and programming",
		Roadmap:         []string{"Learn Python", "Learn SQL", "Build projects"},
		Skills:          []string{"Python", "SQL"},
		Market:          "Strong demand",
		Future:          "Growing",
		Resources: []types.Resource{
			types.PlainResource("Read a book"),
			types.LinkedResource("MDN", "https://developer.mozilla.org"),
		},
		Tips:           []string{"Practice daily"},
		AIGuidance:     "Line one\nLine two",
		SimilarCareers: []types.SimilarCareer{{Career: "ML Engineer", Similarity: "87.0%"}},
	}
}

func TestGuidance_Sections(t *testing.T) {
	d := doc(t, Career(sampleGuidance()))

	if got := d.Find("h2").First().Text(); got != "Data Scientist" {
		t.Errorf("h2 = %q, want Data Scientist", got)
	}
	if got := d.Find("small").First().Text(); got != "✓ Match confidence: 87%" {
		t.Errorf("confidence = %q", got)
	}
	if n := d.Find("ol.roadmap-list li").Length(); n != 3 {
		t.Errorf("roadmap items = %d, want 3", n)
	}
	if n := d.Find(".skills-section .skill-tag").Length(); n != 2 {
		t.Errorf("skill tags = %d, want 2", n)
	}
	if n := d.Find(".ai-content br").Length(); n != 1 {
		t.Errorf("ai line breaks = %d, want 1", n)
	}
	if got := d.Find(".tips-section strong").Text(); got != "💡 Tips for students:" {
		t.Errorf("tips label = %q", got)
	}
	if got := d.Find(".similar-career-card small").Text(); got != "87.0% similar" {
		t.Errorf("similarity = %q", got)
	}
}

func TestGuidance_ConfidenceHidden(t *testing.T) {
	tests := []struct {
		name       string
		confidence *float64
	}{
		{"missing", nil},
		{"exact match", floatPtr(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := sampleGuidance()
			g.MatchConfidence = tt.confidence
			if n := doc(t, Guidance(g)).Find(".career-header small").Length(); n != 0 {
				t.Errorf("confidence rendered %d times, want 0", n)
			}
		})
	}
}

func TestGuidance_FractionalConfidence(t *testing.T) {
	g := sampleGuidance()
	g.MatchConfidence = floatPtr(87.3)

	if got := doc(t, Guidance(g)).Find("small").First().Text(); got != "✓ Match confidence: 87.3%" {
		t.Errorf("confidence = %q", got)
	}
}

func TestGuidance_OptionalBlocksOmitted(t *testing.T) {
	g := sampleGuidance()
	g.AIGuidance = ""
	g.SimilarCareers = nil

	d := doc(t, Guidance(g))
	if d.Find(".ai-section").Length() != 0 {
		t.Error("ai section rendered without guidance text")
	}
	if d.Find(".similar-careers-section").Length() != 0 {
		t.Error("similar careers rendered without entries")
	}
}

func TestResource_LinkOnlyWithURL(t *testing.T) {
	d := doc(t, Guidance(sampleGuidance()))
	items := d.Find(".resources-list li")
	if items.Length() != 2 {
		t.Fatalf("resources = %d, want 2", items.Length())
	}

	plain := items.Eq(0)
	if plain.Find("a").Length() != 0 || plain.Text() != "Read a book" {
		t.Errorf("plain resource = %q, links = %d", plain.Text(), plain.Find("a").Length())
	}

	link := items.Eq(1).Find("a")
	href, _ := link.Attr("href")
	if link.Text() != "MDN" || href != "https://developer.mozilla.org" {
		t.Errorf("linked resource = %q -> %q", link.Text(), href)
	}
	if target, _ := link.Attr("target"); target != "_blank" {
		t.Errorf("target = %q, want _blank", target)
	}
}

func TestCareer_UnknownAndRejection(t *testing.T) {
	unknown := &types.UnknownCareer{
		Career:     "Wizard",
		Message:    "No data",
		Suggestion: "Try a related role",
		Tips:       []string{"Search the catalog", "Ask a mentor"},
	}
	d := doc(t, Career(unknown))
	if got := d.Find("h2").Text(); got != "🤔 Wizard" {
		t.Errorf("unknown heading = %q", got)
	}
	if n := d.Find(".tips-list li").Length(); n != 2 {
		t.Errorf("unknown tips = %d, want 2", n)
	}
	if d.Find("p.error").Length() != 0 {
		t.Error("unknown career rendered as an error")
	}

	tests := []struct {
		name string
		in   *types.Rejection
		want string
	}{
		{"with message", &types.Rejection{Status: "error", Message: "Backend down"}, "❌ Backend down"},
		{"without message", &types.Rejection{Status: "weird"}, CareerLookupError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc(t, Career(tt.in)).Find("p.error").Text(); got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	rec := &types.Recommendations{
		InputSkills: []string{"python", "sql"},
		Recommendations: []types.SkillRecommendation{
			{Career: "Data Analyst", MatchScore: "80%", MatchingSkills: []string{"python", "sql"}, SkillsToLearn: 1},
			{Career: "Web Developer", MatchScore: "20%", SkillsToLearn: 4},
		},
	}
	d := doc(t, Recommendations(rec))

	if got := d.Find(".intro strong").Text(); got != "python, sql" {
		t.Errorf("input skills = %q", got)
	}
	items := d.Find(".recommendation-item")
	if items.Length() != 2 {
		t.Fatalf("items = %d, want 2", items.Length())
	}
	if got := items.Eq(0).Find("h4").Text(); got != "1. Data Analyst" {
		t.Errorf("first item = %q", got)
	}
	if got := items.Eq(0).Find(".match-badge").Text(); got != "80% Match" {
		t.Errorf("badge = %q", got)
	}
	if !strings.Contains(items.Eq(0).Text(), "1 additional skill") || strings.Contains(items.Eq(0).Text(), "1 additional skills") {
		t.Errorf("singular skill count wrong: %q", items.Eq(0).Text())
	}
	if !strings.Contains(items.Eq(1).Text(), "4 additional skills") {
		t.Errorf("plural skill count wrong: %q", items.Eq(1).Text())
	}
	if strings.Contains(items.Eq(1).Text(), "Your Matching Skills") {
		t.Error("matching skills rendered for an item without any")
	}
}

func TestSkillGap(t *testing.T) {
	gap := &types.SkillGap{
		Career:               "Cloud Architect",
		SkillMatchPercentage: 66.7,
		AnalysisSummary:      "You have 2 of 3 skills",
		MatchingSkills:       []string{"aws", "linux"},
	}
	d := doc(t, SkillGap(gap))

	style, _ := d.Find(".progress-fill").Attr("style")
	if style != "width: 66.7%" {
		t.Errorf("progress style = %q", style)
	}
	if got := d.Find(".progress-text").Text(); got != "66.7% Complete" {
		t.Errorf("progress text = %q", got)
	}
	if n := d.Find(".skill-tag.green").Length(); n != 2 {
		t.Errorf("held skills = %d, want 2", n)
	}
	if d.Find(".missing-skills").Length() != 0 {
		t.Error("missing group rendered while empty")
	}

	rej := doc(t, SkillGap(&types.Rejection{Status: "unknown", Message: "Career not found"}))
	if got := rej.Find("p.error").Text(); got != "❌ Career not found" {
		t.Errorf("rejection = %q", got)
	}
}

func TestSkillGap_ProgressNotClamped(t *testing.T) {
	style, _ := doc(t, SkillGap(&types.SkillGap{Career: "X", SkillMatchPercentage: 130})).Find(".progress-fill").Attr("style")
	if style != "width: 130%" {
		t.Errorf("progress style = %q, want raw value", style)
	}
}

func TestComparison(t *testing.T) {
	cmp := &types.Comparison{Careers: []types.ComparedCareer{
		{Name: "Data Scientist", Salary: types.Salary{Entry: 85000, Mid: 120000, Senior: 160000},
			Skills: []string{"a", "b", "c", "d", "e", "f"}, JobOutlook: "Much faster than average"},
		{Name: "Web Developer", Salary: types.Salary{Entry: 60000}, JobOutlook: "Average"},
	}}
	d := doc(t, Comparison(cmp))

	if n := d.Find(".comparison-section").Length(); n != 3 {
		t.Fatalf("sections = %d, want 3", n)
	}
	salary := d.Find(".comparison-section").Eq(0)
	if !strings.Contains(salary.Text(), "Entry: $85,000") || !strings.Contains(salary.Text(), "Senior: $160,000") {
		t.Errorf("salary grid = %q", salary.Text())
	}
	if !strings.Contains(salary.Find(".comparison-item").Eq(1).Text(), "Mid: $0") {
		t.Errorf("missing salary not shown as $0: %q", salary.Find(".comparison-item").Eq(1).Text())
	}
	skills := d.Find(".comparison-section").Eq(1).Find(".comparison-item").Eq(0).Find(".skill-tag")
	if skills.Length() != compareSkillLimit {
		t.Errorf("skills = %d, want %d", skills.Length(), compareSkillLimit)
	}
	names := d.Find(".comparison-section").Eq(2).Find("h4").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	if !reflect.DeepEqual(names, []string{"Data Scientist", "Web Developer"}) {
		t.Errorf("column order = %v", names)
	}
}

func TestSearch_NoResults(t *testing.T) {
	n := Search(&types.SearchResults{Keyword: "astronaut", Total: 0})
	d := doc(t, n)

	if !strings.Contains(d.Text(), `"astronaut"`) {
		t.Errorf("query missing from %q", d.Text())
	}
	if d.Find(".career-card").Length() != 0 {
		t.Error("cards rendered for zero results")
	}
}

func TestSearch_CardsFollowResultsOrder(t *testing.T) {
	res := &types.SearchResults{Keyword: "data", Total: 3, Results: []types.SearchResultItem{
		{Name: "Data Scientist", MatchScore: "92%", SalaryEntry: 85000, JobOutlook: "Growing", Skills: []string{"a", "b", "c", "d"}},
		{Name: "Data Analyst", Description: "Analyzes"},
		{Name: "Database Administrator"},
	}}
	d := doc(t, Search(res))

	cards := d.Find(".career-card")
	if cards.Length() != 3 {
		t.Fatalf("cards = %d, want 3", cards.Length())
	}
	want := []string{"Data Scientist", "Data Analyst", "Database Administrator"}
	got := cards.Find("h4").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if got := d.Find(".search-results-header").Text(); got != `Found 3 matching careers for "data"` {
		t.Errorf("header = %q", got)
	}

	first := cards.Eq(0)
	if got := first.Find(".match-badge").Text(); got != "92% match" {
		t.Errorf("badge = %q", got)
	}
	if got := first.Find(".salary").Text(); got != "💰 From $85,000" {
		t.Errorf("salary = %q", got)
	}
	if n := first.Find(".skill-tag-small").Length(); n != cardSkillLimit {
		t.Errorf("skills = %d, want %d", n, cardSkillLimit)
	}

	second := cards.Eq(1)
	if second.Find(".match-badge").Length() != 0 || second.Find(".outlook").Length() != 0 {
		t.Error("optional badge or outlook rendered without data")
	}
	if got := second.Find(".salary").Text(); got != "💰 From $0" {
		t.Errorf("missing salary = %q", got)
	}
}

func TestSearch_SingularHeader(t *testing.T) {
	res := &types.SearchResults{Keyword: "pilot", Total: 1, Results: []types.SearchResultItem{{Name: "Airline Pilot"}}}
	if got := doc(t, Search(res)).Find(".search-results-header").Text(); got != `Found 1 matching career for "pilot"` {
		t.Errorf("header = %q", got)
	}
}

func TestStatistics(t *testing.T) {
	st := &types.CareerStatistics{
		Career:     "Nurse",
		JobOutlook: "Faster than average",
		Salary:     types.Salary{Entry: 60000, Senior: 95000},
		Skills:     []string{"care"},
	}
	d := doc(t, Statistics(st))

	if n := d.Find(".salary-list li").Length(); n != 2 {
		t.Errorf("salary levels = %d, want 2 (zero levels skipped)", n)
	}
	if d.Find(".keywords-section").Length() != 0 {
		t.Error("keywords rendered while empty")
	}
}

func TestRenderers_Idempotent(t *testing.T) {
	g := sampleGuidance()
	before := *g
	first := fragment.HTML(Career(g))
	second := fragment.HTML(Career(g))

	if first != second {
		t.Error("Career() is not byte-identical across calls")
	}
	if !reflect.DeepEqual(before, *g) {
		t.Error("Career() mutated its payload")
	}

	res := &types.SearchResults{Keyword: "x", Total: 1, Results: []types.SearchResultItem{{Name: "X"}}}
	if !reflect.DeepEqual(Search(res), Search(res)) {
		t.Error("Search() is not deterministic")
	}
}

func TestDollarsAndPlural(t *testing.T) {
	dollars := map[int]string{0: "$0", 950: "$950", 85000: "$85,000", 1250000: "$1,250,000"}
	for in, want := range dollars {
		if got := Dollars(in); got != want {
			t.Errorf("Dollars(%d) = %q, want %q", in, got, want)
		}
	}

	plural := map[int]string{0: "skills", 1: "skill", 2: "skills"}
	for in, want := range plural {
		if got := Plural(in, "skill"); got != want {
			t.Errorf("Plural(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestAIStatus(t *testing.T) {
	active := fragment.PlainText(AIStatus(types.AIStatus{Providers: []string{"Gemini", "OpenAI"}}))
	if active != "✅ AI Features Active (Gemini + OpenAI)" {
		t.Errorf("active = %q", active)
	}
	inactive := AIStatus(types.AIStatus{})
	if !inactive.HasClass("ai-inactive") {
		t.Errorf("inactive class = %q", inactive.Class)
	}
}
