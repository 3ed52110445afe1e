package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// IsElement is a predicate to match element nodes of a DOM.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsAncestorOf is true if a is n or an ancestor of n.
func IsAncestorOf(a, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == a {
			return true
		}
	}
	return false
}

// NodeName returns a W3C-style node name: the tag for elements, "#text" for
// text nodes, and so on.
func NodeName(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return n.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#unknown"
}

// Attr returns the value of an attribute of n, or the empty string.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Label is a short, selector-like description of a node, e.g.
// "div#main.card.large". Labels are used for tracing and debugging output.
func Label(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	if !IsElement(n) {
		return NodeName(n)
	}
	var b strings.Builder
	b.WriteString(n.Data)
	if id := Attr(n, "id"); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, cl := range strings.Fields(Attr(n, "class")) {
		b.WriteString(".")
		b.WriteString(cl)
	}
	return b.String()
}
