package tree

import (
	"errors"
	"fmt"
)

// ErrHierarchy is returned for insertions which would break the tree
// structure, i.e. inserting a node into one of its own descendents.
var ErrHierarchy = errors.New("hierarchy request error")

// ErrNotAChild is returned if an anchor node is not a child of the parent
// a node should be inserted into.
var ErrNotAChild = errors.New("anchor is not a child of parent")

// Selector is a predicate deciding whether a node payload matches a selector.
type Selector[T comparable] func(selector string, payload T) bool

// Document makes a tree of nodes available to package reorder. Nodes are
// selected by a client-supplied predicate on payloads.
type Document[T comparable] struct {
	Root   *Node[T]
	Select Selector[T]
}

// NewDocument wraps a tree.
func NewDocument[T comparable](root *Node[T], sel Selector[T]) *Document[T] {
	return &Document[T]{Root: root, Select: sel}
}

// Query returns all descendents of the root matching selector, in document
// order. The root itself is never included.
func (doc *Document[T]) Query(selector string) []*Node[T] {
	if doc.Root == nil || doc.Select == nil {
		return nil
	}
	var nodes []*Node[T]
	doc.Root.Walk(func(n *Node[T]) bool {
		if n != doc.Root && doc.Select(selector, n.Payload) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// ParentOf returns the parent of n.
func (doc *Document[T]) ParentOf(n *Node[T]) (*Node[T], bool) {
	if n == nil || n.Parent() == nil {
		return nil, false
	}
	return n.Parent(), true
}

// ChildrenOf returns the children of parent.
func (doc *Document[T]) ChildrenOf(parent *Node[T]) []*Node[T] {
	if parent == nil {
		return nil
	}
	return parent.Children()
}

// InsertBefore moves child to parent, immediately in front of anchor.
// A nil anchor appends child.
func (doc *Document[T]) InsertBefore(parent, child, anchor *Node[T]) error {
	if parent == nil || child == nil {
		return fmt.Errorf("%w: cannot insert nil node", ErrHierarchy)
	}
	if child.IsAncestorOf(parent) {
		return fmt.Errorf("%w: %v is an ancestor of %v", ErrHierarchy, child, parent)
	}
	if !parent.InsertChildBefore(child, anchor) {
		return fmt.Errorf("%w: %v", ErrNotAChild, anchor)
	}
	tracer().Debugf("inserted %v into %v", child.Payload, parent.Payload)
	return nil
}
