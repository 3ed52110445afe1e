package reorder

import (
	"fmt"
	"math"

	"github.com/npillmayer/domino/maybe"
)

// Last is the rank of nodes which are placed by a container rule only. They
// go after every node carrying an explicit order.
var Last = math.Inf(1)

// Entry is a managed child within a Context.
type Entry[N comparable] struct {
	Order float64 // rank, ascending
	Node  N
}

// Context holds the target children of a single parent node, sorted by rank.
type Context[N comparable] struct {
	Parent   N
	Children []Entry[N]
	token    Token // token of Parent
}

// Nodes returns the target children of a context in order.
func (ctx *Context[N]) Nodes() []N {
	nodes := make([]N, len(ctx.Children))
	for i, e := range ctx.Children {
		nodes[i] = e.Node
	}
	return nodes
}

func (ctx *Context[N]) String() string {
	return fmt.Sprintf("(context %s #ch=%d)", ctx.token, len(ctx.Children))
}

// insert places a node at the position given by its rank: in front of the
// first entry with a strictly greater rank, or at the end.
func (ctx *Context[N]) insert(node N, order float64) {
	at := len(ctx.Children)
	for i, e := range ctx.Children {
		if order < e.Order {
			at = i
			break
		}
	}
	ctx.Children = append(ctx.Children, Entry[N]{})
	copy(ctx.Children[at+1:], ctx.Children[at:])
	ctx.Children[at] = Entry[N]{Order: order, Node: node}
}

func (ctx *Context[N]) remove(node N) bool {
	for i, e := range ctx.Children {
		if e.Node == node {
			ctx.Children = append(ctx.Children[:i], ctx.Children[i+1:]...)
			return true
		}
	}
	return false
}

// --- Forest ----------------------------------------------------------------

// Forest is the context store: a set of contexts, one per target parent.
// Contexts are kept in order of creation.
//
// Every node is owned by at most one context. Adding a node which is already
// owned by a context will first remove it from there ("last rule wins").
type Forest[N comparable] struct {
	reg      *Registry[N]
	contexts []*Context[N]
	byParent map[Token]*Context[N] // parent token -> context
	owner    map[Token]*Context[N] // child token -> owning context
}

// NewForest creates an empty forest, drawing node identities from reg.
func NewForest[N comparable](reg *Registry[N]) *Forest[N] {
	if reg == nil {
		reg = NewRegistry[N]()
	}
	return &Forest[N]{
		reg:      reg,
		byParent: make(map[Token]*Context[N]),
		owner:    make(map[Token]*Context[N]),
	}
}

// AddNode puts node into the context of parent, at the position given by
// order. Any earlier entry for node, wherever it lives in the forest, is
// removed first.
func (f *Forest[N]) AddNode(parent, node N, order float64) {
	ptoken, ntoken := f.reg.Token(parent), f.reg.Token(node)
	tracer().P("node", ntoken).Debugf("add node to context %s with order %v", ptoken, order)
	if prev, ok := f.owner[ntoken]; ok {
		prev.remove(node)
		if len(prev.Children) == 0 && prev.token != ptoken {
			f.drop(prev)
		}
	}
	ctx, ok := f.byParent[ptoken]
	if !ok {
		ctx = &Context[N]{Parent: parent, token: ptoken}
		f.byParent[ptoken] = ctx
		f.contexts = append(f.contexts, ctx)
	}
	ctx.insert(node, order)
	f.owner[ntoken] = ctx
}

// drop removes an empty context from the forest.
func (f *Forest[N]) drop(ctx *Context[N]) {
	delete(f.byParent, ctx.token)
	for i, c := range f.contexts {
		if c == ctx {
			f.contexts = append(f.contexts[:i], f.contexts[i+1:]...)
			break
		}
	}
}

// ParentOf returns the parent a node has been assigned to, if any.
func (f *Forest[N]) ParentOf(node N) maybe.Maybe[N] {
	t, ok := f.reg.Lookup(node)
	if !ok {
		return maybe.Nothing[N]()
	}
	if ctx, ok := f.owner[t]; ok {
		return maybe.Just(ctx.Parent)
	}
	return maybe.Nothing[N]()
}

// Context returns the context for a parent node, if present.
func (f *Forest[N]) Context(parent N) (*Context[N], bool) {
	t, ok := f.reg.Lookup(parent)
	if !ok {
		return nil, false
	}
	ctx, ok := f.byParent[t]
	return ctx, ok
}

// Contexts returns all contexts in order of creation.
func (f *Forest[N]) Contexts() []*Context[N] {
	return f.contexts
}

// Len returns the number of contexts.
func (f *Forest[N]) Len() int {
	return len(f.contexts)
}

// Managed returns the number of nodes claimed by any context.
func (f *Forest[N]) Managed() int {
	return len(f.owner)
}
