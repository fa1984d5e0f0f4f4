// Package fragment models renderable UI subtrees and writes them out as
// terminal text, HTML or plain text.
package fragment

import "strings"

// Kind identifies what a Node represents
type Kind string

const (
	KindBlock     Kind = "block"
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindText      Kind = "text"
	KindStrong    Kind = "strong"
	KindSmall     Kind = "small"
	KindList      Kind = "list"
	KindOrdered   Kind = "ordered"
	KindItem      Kind = "item"
	KindLink      Kind = "link"
	KindTag       Kind = "tag"
	KindProgress  Kind = "progress"
	KindBreak     Kind = "break"
)

// Node is one element of a fragment tree. Nodes are values; builders
// never share child slices between trees.
type Node struct {
	Kind     Kind    `json:"kind" yaml:"kind"`
	Class    string  `json:"class,omitempty" yaml:"class,omitempty"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Href     string  `json:"href,omitempty" yaml:"href,omitempty"`
	Level    int     `json:"level,omitempty" yaml:"level,omitempty"`
	Value    float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Children []Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// Block groups children under a class, like a div
func Block(class string, children ...Node) Node {
	return Node{Kind: KindBlock, Class: class, Children: compact(children)}
}

// Heading is a title line; level 2 is a card title, 3 a section, 4 an item
func Heading(level int, text string) Node {
	return Node{Kind: KindHeading, Level: level, Text: text}
}

// Para is a paragraph of inline children
func Para(class string, children ...Node) Node {
	return Node{Kind: KindParagraph, Class: class, Children: compact(children)}
}

// Text is a run of plain text
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Strong is emphasized inline text
func Strong(s string) Node {
	return Node{Kind: KindStrong, Text: s}
}

// Small is de-emphasized inline text
func Small(s string) Node {
	return Node{Kind: KindSmall, Text: s}
}

// List is a bulleted list of items
func List(class string, items ...Node) Node {
	return Node{Kind: KindList, Class: class, Children: compact(items)}
}

// Ordered is a numbered list of items
func Ordered(class string, items ...Node) Node {
	return Node{Kind: KindOrdered, Class: class, Children: compact(items)}
}

// Item is a list entry
func Item(children ...Node) Node {
	return Node{Kind: KindItem, Children: compact(children)}
}

// Link is a hyperlink labeled text
func Link(text, href string) Node {
	return Node{Kind: KindLink, Text: text, Href: href}
}

// Tag is a short pill-styled label (skill tags, badges)
func Tag(class, text string) Node {
	return Node{Kind: KindTag, Class: class, Text: text}
}

// Progress is a percentage bar. The value is not clamped.
func Progress(class string, percent float64) Node {
	return Node{Kind: KindProgress, Class: class, Value: percent}
}

// Break is a line break inside inline content
func Break() Node {
	return Node{Kind: KindBreak}
}

// Empty is a placeholder dropped by every builder; use it for optional sections
func Empty() Node {
	return Node{}
}

// IsEmpty reports whether n is the Empty placeholder
func (n Node) IsEmpty() bool {
	return n.Kind == ""
}

// When returns n if cond holds, Empty otherwise
func When(cond bool, n func() Node) Node {
	if !cond {
		return Empty()
	}
	return n()
}

// Each maps items to nodes
func Each[T any](items []T, fn func(int, T) Node) []Node {
	nodes := make([]Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return nodes
}

func compact(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsEmpty() {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// HasClass reports whether the space separated class list contains class
func (n Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// FindAll returns every node in the tree (n included) carrying class, in document order
func (n Node) FindAll(class string) []Node {
	var found []Node
	n.Walk(func(node Node) {
		if node.HasClass(class) {
			found = append(found, node)
		}
	})
	return found
}

// FindKind returns every node of the given kind, in document order
func (n Node) FindKind(kind Kind) []Node {
	var found []Node
	n.Walk(func(node Node) {
		if node.Kind == kind {
			found = append(found, node)
		}
	})
	return found
}

// Walk visits n and its descendants depth-first
func (n Node) Walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
