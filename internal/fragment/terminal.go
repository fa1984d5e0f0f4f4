package fragment

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5f5f"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
	colorTagBg  = lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleStrong  = lipgloss.NewStyle().Bold(true)
	styleSubtle  = lipgloss.NewStyle().Foreground(colorGray)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleLoading = lipgloss.NewStyle().Foreground(colorYellow)
	styleInfo    = lipgloss.NewStyle().Foreground(colorBlue)
	styleLink    = lipgloss.NewStyle().Underline(true).Foreground(colorBlue)
	styleTag     = lipgloss.NewStyle().Background(colorTagBg).Padding(0, 1)
	styleTagHave = lipgloss.NewStyle().Background(colorGreen).Foreground(lipgloss.Color("#000000")).Padding(0, 1)
	styleTagMiss = lipgloss.NewStyle().Background(colorRed).Foreground(lipgloss.Color("#000000")).Padding(0, 1)
	styleBadge   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleCard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorGray).Padding(0, 1)
	styleBarFill = lipgloss.NewStyle().Foreground(colorGreen)
	styleBarRest = lipgloss.NewStyle().Foreground(colorGray)
)

// progressCells is the width of the terminal progress bar
const progressCells = 20

// cardClasses get a rounded border in the terminal
var cardClasses = []string{
	"guidance-card", "career-card", "recommendation-item", "comparison-item",
	"similar-career-card", "gap-card", "recommendation-card", "detail-card",
}

// Terminal renders the fragment for a terminal of the given width.
// A width of zero or less disables wrapping.
func Terminal(n Node, width int) string {
	return renderBlock(n, width)
}

func renderBlock(n Node, width int) string {
	switch n.Kind {
	case KindHeading:
		return wrap(styleTitle.Render(n.Text), width)
	case KindParagraph:
		line := n.Text + renderInline(n.Children)
		return wrap(paragraphStyle(n).Render(line), width)
	case KindList, KindOrdered:
		return renderList(n, width)
	case KindProgress:
		return renderProgress(n.Value)
	case KindBlock:
		return renderContainer(n, width)
	case KindItem:
		return wrap(renderInline(n.Children), width)
	}
	if isInline(n) {
		return wrap(renderInline([]Node{n}), width)
	}
	return ""
}

func renderContainer(n Node, width int) string {
	inner := width
	card := isCard(n)
	if card && width > 0 {
		inner = width - styleCard.GetHorizontalFrameSize()
	}

	var body string
	if n.HasClass("comparison-grid") || n.HasClass("similar-careers") {
		body = renderGrid(n.Children, inner)
	} else {
		body = renderChildren(n.Children, inner)
	}

	if card {
		style := styleCard
		if width > 0 {
			style = style.Width(inner)
		}
		return style.Render(body)
	}
	return body
}

// renderChildren stacks block children vertically and flows runs of
// inline children into a single wrapped line
func renderChildren(children []Node, width int) string {
	var parts []string
	var run []Node
	flush := func() {
		if len(run) > 0 {
			parts = append(parts, wrap(renderInline(run), width))
			run = nil
		}
	}
	for _, c := range children {
		if isInline(c) {
			run = append(run, c)
			continue
		}
		flush()
		parts = append(parts, renderBlock(c, width))
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderGrid(children []Node, width int) string {
	if len(children) == 0 {
		return ""
	}
	colWidth := 0
	if width > 0 {
		colWidth = width / len(children)
	}
	cols := make([]string, 0, len(children))
	for _, c := range children {
		col := renderBlock(c, colWidth)
		if colWidth > 0 {
			col = lipgloss.NewStyle().Width(colWidth).Render(col)
		}
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderList(n Node, width int) string {
	lines := make([]string, 0, len(n.Children))
	for i, item := range n.Children {
		prefix := "• "
		if n.Kind == KindOrdered {
			prefix = strconv.Itoa(i+1) + ". "
		}
		itemWidth := width
		if width > 0 {
			itemWidth = width - len(prefix)
		}
		body := renderChildren(item.Children, itemWidth)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, prefix, body))
	}
	return strings.Join(lines, "\n")
}

func renderProgress(percent float64) string {
	filled := int(percent / 100 * progressCells)
	if filled < 0 {
		filled = 0
	}
	if filled > progressCells {
		filled = progressCells
	}
	return styleBarFill.Render(strings.Repeat("█", filled)) +
		styleBarRest.Render(strings.Repeat("░", progressCells-filled))
}

func renderInline(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			sb.WriteString(n.Text)
		case KindStrong:
			sb.WriteString(styleStrong.Render(n.Text))
		case KindSmall:
			sb.WriteString(styleSubtle.Render(n.Text))
		case KindLink:
			sb.WriteString(styleLink.Render(termenv.Hyperlink(n.Href, n.Text)))
		case KindTag:
			sb.WriteString(tagStyle(n).Render(n.Text) + " ")
		case KindBreak:
			sb.WriteString("\n")
		default:
			sb.WriteString(renderBlock(n, 0))
		}
	}
	return sb.String()
}

func paragraphStyle(n Node) lipgloss.Style {
	switch {
	case n.HasClass("error"):
		return styleError
	case n.HasClass("loading"):
		return styleLoading
	case n.HasClass("info"):
		return styleInfo
	default:
		return lipgloss.NewStyle()
	}
}

func tagStyle(n Node) lipgloss.Style {
	switch {
	case n.HasClass("green"):
		return styleTagHave
	case n.HasClass("red"):
		return styleTagMiss
	case n.HasClass("match-badge") || n.HasClass("level-badge"):
		return styleBadge
	default:
		return styleTag
	}
}

func isCard(n Node) bool {
	for _, c := range cardClasses {
		if n.HasClass(c) {
			return true
		}
	}
	return false
}

func isInline(n Node) bool {
	switch n.Kind {
	case KindText, KindStrong, KindSmall, KindLink, KindTag, KindBreak:
		return true
	}
	return false
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
