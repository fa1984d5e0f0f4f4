package render

import (
	"fmt"
	"strings"

	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/types"
)

// Recommendations renders the ranked careers for a set of skills
func Recommendations(result types.RecommendResult) fragment.Node {
	rec, ok := result.(*types.Recommendations)
	if !ok {
		return rejection(result)
	}

	items := fragment.Each(rec.Recommendations, func(i int, r types.SkillRecommendation) fragment.Node {
		return fragment.Block("recommendation-item",
			fragment.Block("rec-header",
				fragment.Heading(4, fmt.Sprintf("%d. %s", i+1, r.Career)),
				fragment.Tag("match-badge", r.MatchScore+" Match"),
			),
			fragment.When(len(r.MatchingSkills) > 0, func() fragment.Node {
				return fragment.Para("", fragment.Strong("Your Matching Skills:"),
					fragment.Text(" "+strings.Join(r.MatchingSkills, ", ")))
			}),
			fragment.Para("", fragment.Strong("Skills to Learn:"),
				fragment.Text(fmt.Sprintf(" %d additional %s", r.SkillsToLearn, Plural(r.SkillsToLearn, "skill")))),
		)
	})

	return fragment.Block("recommendation-card",
		fragment.Heading(3, "🎯 Careers Matching Your Skills"),
		fragment.Para("intro", fragment.Text("Based on your skills: "), fragment.Strong(strings.Join(rec.InputSkills, ", "))),
		fragment.Block("recommendations-list", items...),
	)
}

// SkillGap renders the match progress and the held/missing skill groups
func SkillGap(result types.SkillGapResult) fragment.Node {
	gap, ok := result.(*types.SkillGap)
	if !ok {
		return rejection(result)
	}

	pct := fragment.FormatNumber(gap.SkillMatchPercentage)
	return fragment.Block("gap-card",
		fragment.Block("gap-header",
			fragment.Heading(3, gap.Career),
			fragment.Block("progress-container",
				fragment.Progress("", gap.SkillMatchPercentage),
				fragment.Tag("progress-text", pct+"% Complete"),
			),
		),
		fragment.Para("gap-summary", fragment.Text(gap.AnalysisSummary)),
		fragment.When(len(gap.MatchingSkills) > 0, func() fragment.Node {
			return section("matching-skills", "✅ Skills You Have:",
				fragment.Block("skills-tags", tags("skill-tag green", gap.MatchingSkills)...))
		}),
		fragment.When(len(gap.MissingSkills) > 0, func() fragment.Node {
			return section("missing-skills", "📚 Skills to Learn:",
				fragment.Block("skills-tags", tags("skill-tag red", gap.MissingSkills)...))
		}),
	)
}

// rejection renders the Rejection arm of any result variant
func rejection(result any) fragment.Node {
	if r, ok := result.(*types.Rejection); ok && r != nil {
		return Rejection(r)
	}
	return InlineError("❌ Unexpected response")
}
