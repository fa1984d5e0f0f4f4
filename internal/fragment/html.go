package fragment

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// HTML writes the fragment as an HTML snippet using the same class names
// as the web front end. All text and attributes are escaped.
func HTML(n Node) string {
	var sb strings.Builder
	writeHTML(&sb, n)
	return sb.String()
}

func writeHTML(sb *strings.Builder, n Node) {
	switch n.Kind {
	case KindBlock:
		writeElement(sb, "div", n)
	case KindHeading:
		level := n.Level
		if level < 1 || level > 6 {
			level = 3
		}
		tag := "h" + strconv.Itoa(level)
		openTag(sb, tag, n.Class)
		sb.WriteString(html.EscapeString(n.Text))
		closeTag(sb, tag)
	case KindParagraph:
		writeElement(sb, "p", n)
	case KindText:
		sb.WriteString(html.EscapeString(n.Text))
	case KindStrong:
		sb.WriteString("<strong>" + html.EscapeString(n.Text) + "</strong>")
	case KindSmall:
		sb.WriteString("<small>" + html.EscapeString(n.Text) + "</small>")
	case KindList:
		writeElement(sb, "ul", n)
	case KindOrdered:
		writeElement(sb, "ol", n)
	case KindItem:
		writeElement(sb, "li", n)
	case KindLink:
		fmt.Fprintf(sb, `<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			html.EscapeString(n.Href), html.EscapeString(n.Text))
	case KindTag:
		openTag(sb, "span", n.Class)
		sb.WriteString(html.EscapeString(n.Text))
		closeTag(sb, "span")
	case KindProgress:
		openTag(sb, "div", joinClass("progress-bar", n.Class))
		fmt.Fprintf(sb, `<div class="progress-fill" style="width: %s%%"></div>`, FormatNumber(n.Value))
		closeTag(sb, "div")
	case KindBreak:
		sb.WriteString("<br>")
	}
}

func writeElement(sb *strings.Builder, tag string, n Node) {
	openTag(sb, tag, n.Class)
	if n.Text != "" {
		sb.WriteString(html.EscapeString(n.Text))
	}
	for _, c := range n.Children {
		writeHTML(sb, c)
	}
	closeTag(sb, tag)
}

func openTag(sb *strings.Builder, tag, class string) {
	if class == "" {
		sb.WriteString("<" + tag + ">")
		return
	}
	fmt.Fprintf(sb, `<%s class="%s">`, tag, html.EscapeString(class))
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</" + tag + ">")
}

func joinClass(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}

// FormatNumber prints a float in its shortest exact decimal form (66.7, 100)
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
