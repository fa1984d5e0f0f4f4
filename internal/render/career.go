package render

import (
	"fmt"

	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/types"
)

// CareerLookupError is shown when /career answers with a status other than
// success or unknown and no message
const CareerLookupError = "❌ Error: Unable to get guidance. Please try again."

// Career renders the result of a career lookup
func Career(result types.CareerResult) fragment.Node {
	switch r := result.(type) {
	case *types.CareerGuidance:
		return Guidance(r)
	case *types.UnknownCareer:
		return UnknownCareer(r)
	case *types.Rejection:
		if r.Message == "" {
			return InlineError(CareerLookupError)
		}
		return Rejection(r)
	}
	return InlineError(CareerLookupError)
}

// Guidance renders the full guidance card for a known career
func Guidance(g *types.CareerGuidance) fragment.Node {
	return fragment.Block("guidance-card",
		fragment.Block("career-header",
			fragment.Heading(2, g.Career),
			fragment.When(g.MatchConfidence != nil && *g.MatchConfidence < 100, func() fragment.Node {
				return fragment.Small(fmt.Sprintf("✓ Match confidence: %s%%", fragment.FormatNumber(*g.MatchConfidence)))
			}),
			fragment.Tag("level-badge", g.Level),
		),
		section("focus-section", "📌 Your Focus:", fragment.Para("", fragment.Text(g.Focus))),
		section("roadmap-section", "🗺️ Learning Roadmap:", fragment.Ordered("roadmap-list", textItems(g.Roadmap)...)),
		section("skills-section", "🛠️ Key Skills to Develop:", fragment.Block("skills-tags", tags("skill-tag", g.Skills)...)),
		section("market-section", "💼 Market Insights:", fragment.Para("", fragment.Text(g.Market))),
		section("future-section", "🚀 Future Outlook:", fragment.Para("", fragment.Text(g.Future))),
		section("resources-section", "📚 Recommended Resources:", fragment.List("resources-list", resourceItems(g.Resources)...)),
		section("tips-section", fmt.Sprintf("💡 Tips for %ss:", g.Level), fragment.List("tips-list", textItems(g.Tips)...)),
		fragment.When(g.AIGuidance != "", func() fragment.Node {
			return section("ai-section", "🤖 AI-Powered Personalized Guidance:",
				fragment.Block("ai-content", multiline(g.AIGuidance)...))
		}),
		fragment.When(len(g.SimilarCareers) > 0, func() fragment.Node {
			return section("similar-careers-section", "🔗 Similar Careers You Might Like:",
				fragment.Block("similar-careers", fragment.Each(g.SimilarCareers, func(_ int, c types.SimilarCareer) fragment.Node {
					return fragment.Block("similar-career-card",
						fragment.Para("", fragment.Text(c.Career)),
						fragment.Small(c.Similarity+" similar"),
					)
				})...))
		}),
	)
}

// Resource renders a learning resource: a hyperlink iff it carries a url
func Resource(r types.Resource) fragment.Node {
	if r.IsLink() {
		return fragment.Link(r.Label(), r.URL)
	}
	return fragment.Text(r.Label())
}

func resourceItems(resources []types.Resource) []fragment.Node {
	return fragment.Each(resources, func(_ int, r types.Resource) fragment.Node {
		return fragment.Item(Resource(r))
	})
}

// UnknownCareer renders the informative fragment for a career the backend does not know
func UnknownCareer(u *types.UnknownCareer) fragment.Node {
	return fragment.Block("guidance-card unknown-career",
		fragment.Heading(2, "🤔 "+u.Career),
		fragment.Para("message", fragment.Text(u.Message)),
		fragment.Para("suggestion", fragment.Strong("Suggestion:"), fragment.Text(" "+u.Suggestion)),
		section("tips-section", "💡 How to Explore:", fragment.List("tips-list", textItems(u.Tips)...)),
	)
}
