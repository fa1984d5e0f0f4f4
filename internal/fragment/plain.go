package fragment

import (
	"strconv"
	"strings"
)

// PlainText flattens the fragment to unstyled text, one block per line.
// Used for the clipboard and for assertions on visible text.
func PlainText(n Node) string {
	var sb strings.Builder
	writePlain(&sb, n)
	return strings.TrimSpace(collapseBlankLines(sb.String()))
}

func writePlain(sb *strings.Builder, n Node) {
	switch n.Kind {
	case KindBlock:
		for _, c := range n.Children {
			writePlain(sb, c)
		}
	case KindHeading:
		sb.WriteString(n.Text + "\n")
	case KindParagraph:
		sb.WriteString(n.Text)
		for _, c := range n.Children {
			writePlain(sb, c)
		}
		sb.WriteString("\n")
	case KindText, KindStrong, KindSmall:
		sb.WriteString(n.Text)
	case KindTag:
		sb.WriteString("[" + n.Text + "] ")
	case KindLink:
		sb.WriteString(n.Text + " <" + n.Href + ">")
	case KindBreak:
		sb.WriteString("\n")
	case KindList, KindOrdered:
		for i, c := range n.Children {
			if n.Kind == KindOrdered {
				sb.WriteString(strconv.Itoa(i+1) + ". ")
			} else {
				sb.WriteString("- ")
			}
			writePlain(sb, c)
			sb.WriteString("\n")
		}
	case KindItem:
		for _, c := range n.Children {
			writePlain(sb, c)
		}
	case KindProgress:
		sb.WriteString(FormatNumber(n.Value) + "%\n")
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := false
	for _, l := range lines {
		l = strings.TrimRight(l, " ")
		if l == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
