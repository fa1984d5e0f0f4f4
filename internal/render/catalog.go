package render

import (
	"fmt"

	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/types"
)

const (
	compareSkillLimit = 5
	cardSkillLimit    = 3
)

// Comparison renders the salary, skills and outlook grids with one column
// per career, in the order the backend returned them
func Comparison(result types.CompareResult) fragment.Node {
	cmp, ok := result.(*types.Comparison)
	if !ok {
		return rejection(result)
	}

	grid := func(title string, column func(types.ComparedCareer) []fragment.Node) fragment.Node {
		cols := fragment.Each(cmp.Careers, func(_ int, c types.ComparedCareer) fragment.Node {
			children := append([]fragment.Node{fragment.Heading(4, c.Name)}, column(c)...)
			return fragment.Block("comparison-item", children...)
		})
		return fragment.Block("comparison-section",
			fragment.Heading(3, title),
			fragment.Block("comparison-grid", cols...),
		)
	}

	return fragment.Block("comparison-container",
		grid("💰 Salary Ranges", func(c types.ComparedCareer) []fragment.Node {
			return []fragment.Node{
				fragment.Para("", fragment.Text("Entry: "+Dollars(c.Salary.Entry))),
				fragment.Para("", fragment.Text("Mid: "+Dollars(c.Salary.Mid))),
				fragment.Para("", fragment.Text("Senior: "+Dollars(c.Salary.Senior))),
			}
		}),
		grid("🛠️ Key Skills", func(c types.ComparedCareer) []fragment.Node {
			return []fragment.Node{fragment.Block("skills-tags", tags("skill-tag", firstN(c.Skills, compareSkillLimit))...)}
		}),
		grid("📊 Job Outlook", func(c types.ComparedCareer) []fragment.Node {
			return []fragment.Node{fragment.Para("", fragment.Text(c.JobOutlook))}
		}),
	)
}

// Search renders catalog search results. Cards mirror the backend's
// results sequence exactly: no sorting, filtering or deduplication.
func Search(result types.SearchResult) fragment.Node {
	res, ok := result.(*types.SearchResults)
	if !ok {
		return rejection(result)
	}

	if res.Total == 0 {
		return InlineError(fmt.Sprintf(`❌ No careers found for "%s". Try: engineer, data, design, manager, developer`, res.Keyword))
	}

	cards := fragment.Each(res.Results, func(_ int, item types.SearchResultItem) fragment.Node {
		return searchCard(item)
	})

	return fragment.Block("search-results",
		fragment.Block("search-results-header",
			fragment.Para("",
				fragment.Text("Found "),
				fragment.Strong(fmt.Sprint(res.Total)),
				fragment.Text(fmt.Sprintf(" matching %s for \"", Plural(res.Total, "career"))),
				fragment.Strong(res.Keyword),
				fragment.Text(`"`),
			),
		),
		fragment.Block("careers-grid", cards...),
	)
}

func searchCard(item types.SearchResultItem) fragment.Node {
	return fragment.Block("career-card",
		fragment.Block("card-header",
			fragment.Heading(4, item.Name),
			fragment.When(item.MatchScore != "", func() fragment.Node {
				return fragment.Tag("match-badge", item.MatchScore+" match")
			}),
		),
		fragment.Para("description", fragment.Text(item.Description)),
		fragment.Block("card-footer",
			fragment.Tag("salary", "💰 From "+Dollars(item.SalaryEntry)),
			fragment.When(item.JobOutlook != "", func() fragment.Node {
				return fragment.Tag("outlook", "📊 "+item.JobOutlook)
			}),
		),
		fragment.When(len(item.Skills) > 0, func() fragment.Node {
			return fragment.Block("skills-inline", tags("skill-tag-small", firstN(item.Skills, cardSkillLimit))...)
		}),
	)
}

// Statistics renders the labor statistics detail card for one career
func Statistics(result types.StatisticsResult) fragment.Node {
	st, ok := result.(*types.CareerStatistics)
	if !ok {
		return rejection(result)
	}

	var salary []fragment.Node
	for _, level := range []struct {
		label  string
		amount int
	}{{"Entry", st.Salary.Entry}, {"Mid", st.Salary.Mid}, {"Senior", st.Salary.Senior}} {
		if level.amount > 0 {
			salary = append(salary, fragment.Item(fragment.Text(level.label+": "+Dollars(level.amount))))
		}
	}

	return fragment.Block("detail-card",
		fragment.Heading(2, st.Career),
		fragment.When(st.Description != "", func() fragment.Node {
			return fragment.Para("description", fragment.Text(st.Description))
		}),
		section("outlook-section", "📊 Job Outlook:", fragment.Para("", fragment.Text(st.JobOutlook))),
		fragment.When(len(salary) > 0, func() fragment.Node {
			return section("salary-section", "💰 Salary:", fragment.List("salary-list", salary...))
		}),
		fragment.When(len(st.Skills) > 0, func() fragment.Node {
			return section("skills-section", "🛠️ Skills:", fragment.Block("skills-tags", tags("skill-tag", st.Skills)...))
		}),
		fragment.When(len(st.Keywords) > 0, func() fragment.Node {
			return section("keywords-section", "🔑 Keywords:", fragment.Block("skills-tags", tags("skill-tag-small", st.Keywords)...))
		}),
	)
}
