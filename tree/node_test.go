package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func payloads(nodes []*Node[string]) string {
	var s []string
	for _, n := range nodes {
		s = append(s, n.Payload)
	}
	return strings.Join(s, " ")
}

func TestNodeInsertAndIsolate(t *testing.T) {
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c)
	root.InsertChildAt(1, b)
	if p := payloads(root.Children()); p != "a b c" {
		t.Errorf("expected children 'a b c', have %q", p)
	}
	b.Isolate()
	if p := payloads(root.Children()); p != "a c" {
		t.Errorf("expected children 'a c' after isolating b, have %q", p)
	}
	if b.Parent() != nil {
		t.Errorf("expected isolated node to have no parent, has")
	}
	if !root.InsertChildBefore(b, a) {
		t.Fatalf("expected insert before a to succeed, didn't")
	}
	if p := payloads(root.Children()); p != "b a c" {
		t.Errorf("expected children 'b a c', have %q", p)
	}
	if !root.InsertChildBefore(c, b) { // move within the same parent
		t.Fatalf("expected insert before b to succeed, didn't")
	}
	if p := payloads(root.Children()); p != "c b a" {
		t.Errorf("expected children 'c b a', have %q", p)
	}
	if root.InsertChildBefore(a, root) {
		t.Errorf("expected insert before non-child to fail, didn't")
	}
}

func TestNodeReparent(t *testing.T) {
	root := NewNode("root")
	x, y := NewNode("x"), NewNode("y")
	root.AddChild(x).AddChild(y)
	z := NewNode("z")
	x.AddChild(z)
	y.AddChild(z)
	if x.ChildCount() != 0 || y.ChildCount() != 1 || z.Parent() != y {
		t.Errorf("expected z to be moved from x to y, isn't")
	}
	if !root.IsAncestorOf(z) || z.IsAncestorOf(root) {
		t.Errorf("expected root to be ancestor of z and not vice versa")
	}
}

func TestDocumentQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domino.tree")
	defer teardown()
	//
	root := NewNode("x")
	a := NewNode("x")
	root.AddChild(a).AddChild(NewNode("y"))
	a.AddChild(NewNode("x"))
	doc := NewDocument(root, func(sel string, p string) bool { return sel == p })
	if n := len(doc.Query("x")); n != 2 {
		t.Errorf("expected 2 matches for 'x' (root excluded), have %d", n)
	}
	if n := len(doc.Query("z")); n != 0 {
		t.Errorf("expected no matches for 'z', have %d", n)
	}
}

func TestDocumentInsertBefore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domino.tree")
	defer teardown()
	//
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	doc := NewDocument[string](root, nil)
	if err := doc.InsertBefore(root, b, a); err != nil {
		t.Fatal(err)
	}
	if p := payloads(doc.ChildrenOf(root)); p != "b a" {
		t.Errorf("expected children 'b a', have %q", p)
	}
	if err := doc.InsertBefore(a, root, nil); !errors.Is(err, ErrHierarchy) {
		t.Errorf("expected hierarchy error for inserting root into a, have %v", err)
	}
	if err := doc.InsertBefore(a, b, root); !errors.Is(err, ErrNotAChild) {
		t.Errorf("expected not-a-child error, have %v", err)
	}
	if _, ok := doc.ParentOf(root); ok {
		t.Errorf("expected root to have no parent, has")
	}
}
