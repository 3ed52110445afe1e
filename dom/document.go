package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/net/html"
)

// ErrHierarchy is returned for insertions which would break the tree
// structure, i.e. inserting an element into one of its own descendents.
var ErrHierarchy = errors.New("hierarchy request error")

// ErrNotAChild is returned if an anchor node is not a child of the parent
// an element should be inserted into.
var ErrNotAChild = errors.New("anchor is not a child of parent")

// DefaultSelectorCacheSize is the number of compiled selectors a document
// keeps.
const DefaultSelectorCacheSize = 256

// Document is an HTML parse tree prepared for re-arrangement.
type Document struct {
	root      *html.Node
	selectors *lru.Cache[string, cascadia.Matcher] // nil entry for invalid selector
}

// NewDocument wraps the root of an HTML parse tree.
func NewDocument(root *html.Node) *Document {
	cache, err := lru.New[string, cascadia.Matcher](DefaultSelectorCacheSize)
	if err != nil { // only for size <= 0
		panic(err)
	}
	return &Document{root: root, selectors: cache}
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML: %w", err)
	}
	return NewDocument(root), nil
}

// Root returns the root node of the document.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

// Query returns all elements below the root matching a CSS selector, in
// document order. Invalid selectors produce an empty result.
func (doc *Document) Query(selector string) []*html.Node {
	m := doc.compile(selector)
	if m == nil {
		return nil
	}
	return cascadia.QueryAll(doc.root, m)
}

// QueryFirst returns the first element matching a CSS selector, if any.
func (doc *Document) QueryFirst(selector string) (*html.Node, bool) {
	m := doc.compile(selector)
	if m == nil {
		return nil, false
	}
	n := cascadia.Query(doc.root, m)
	return n, n != nil
}

func (doc *Document) compile(selector string) cascadia.Matcher {
	if m, ok := doc.selectors.Get(selector); ok {
		return m
	}
	var m cascadia.Matcher
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Infof("invalid selector %q: %v", selector, err)
	} else {
		m = sel
	}
	doc.selectors.Add(selector, m)
	return m
}

// ParentOf returns the parent node of n.
func (doc *Document) ParentOf(n *html.Node) (*html.Node, bool) {
	if n == nil || n.Parent == nil {
		return nil, false
	}
	return n.Parent, true
}

// ChildrenOf returns the element children of parent.
func (doc *Document) ChildrenOf(parent *html.Node) []*html.Node {
	if parent == nil {
		return nil
	}
	var children []*html.Node
	for ch := parent.FirstChild; ch != nil; ch = ch.NextSibling {
		if IsElement(ch) {
			children = append(children, ch)
		}
	}
	return children
}

// InsertBefore moves child to parent, immediately in front of anchor.
// A nil anchor appends child.
func (doc *Document) InsertBefore(parent, child, anchor *html.Node) error {
	if parent == nil || child == nil {
		return fmt.Errorf("%w: cannot insert nil node", ErrHierarchy)
	}
	if IsAncestorOf(child, parent) {
		return fmt.Errorf("%w: %s contains %s", ErrHierarchy, Label(child), Label(parent))
	}
	if anchor != nil && anchor.Parent != parent {
		return fmt.Errorf("%w: %s", ErrNotAChild, Label(anchor))
	}
	if child == anchor {
		return nil
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.InsertBefore(child, anchor)
	tracer().Debugf("moved %s into %s", Label(child), Label(parent))
	return nil
}
