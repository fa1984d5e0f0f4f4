// Package render turns decoded backend payloads into UI fragments.
//
// Every function here is pure: it reads its argument, never mutates it,
// performs no I/O and returns an identical tree for an identical payload.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/types"
)

var money = message.NewPrinter(language.English)

// Loading is the transient fragment shown while a request is in flight
func Loading(msg string) fragment.Node {
	return fragment.Para("loading", fragment.Text(msg))
}

// InlineError is a one-line error message
func InlineError(msg string) fragment.Node {
	return fragment.Para("error", fragment.Text(msg))
}

// Hint is a one-line informational message
func Hint(msg string) fragment.Node {
	return fragment.Para("info", fragment.Text(msg))
}

// Rejection renders a backend non-success status with its message
func Rejection(r *types.Rejection) fragment.Node {
	return InlineError("❌ " + r.Message)
}

// Dollars formats a yearly salary with thousands separators ($85,000)
func Dollars(amount int) string {
	return money.Sprintf("$%d", amount)
}

// Plural appends "s" to word unless n is exactly one
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func tags(class string, values []string) []fragment.Node {
	return fragment.Each(values, func(_ int, v string) fragment.Node {
		return fragment.Tag(class, v)
	})
}

func textItems(values []string) []fragment.Node {
	return fragment.Each(values, func(_ int, v string) fragment.Node {
		return fragment.Item(fragment.Text(v))
	})
}

// section is a labeled block: a strong label followed by content
func section(class, label string, content ...fragment.Node) fragment.Node {
	children := append([]fragment.Node{fragment.Strong(label)}, content...)
	return fragment.Block(class, children...)
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

// multiline splits text on newlines and joins the lines with line breaks
func multiline(s string) []fragment.Node {
	lines := strings.Split(s, "\n")
	nodes := make([]fragment.Node, 0, len(lines)*2)
	for i, l := range lines {
		if i > 0 {
			nodes = append(nodes, fragment.Break())
		}
		if l != "" {
			nodes = append(nodes, fragment.Text(l))
		}
	}
	return nodes
}

// AIStatus renders the AI feature status line
func AIStatus(s types.AIStatus) fragment.Node {
	if s.Active() {
		return fragment.Para("ai-status ai-active",
			fragment.Text(fmt.Sprintf("✅ AI Features Active (%s)", strings.Join(s.Providers, " + "))))
	}
	return fragment.Para("ai-status ai-inactive",
		fragment.Text("⚠️ AI Features: Set GEMINI_API_KEY or OPENAI_API_KEY to enable guidance"))
}
