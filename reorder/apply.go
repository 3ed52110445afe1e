package reorder

import (
	"fmt"
	"sort"
)

// Applier executes the moves for a context against the live tree.
type Applier[N comparable] struct {
	tree Tree[N]
	reg  *Registry[N]
}

// NewApplier creates an applier for a tree. Node identities are drawn from
// reg, which should be the registry of the forest to apply.
func NewApplier[N comparable](tree Tree[N], reg *Registry[N]) *Applier[N] {
	if reg == nil {
		reg = NewRegistry[N]()
	}
	return &Applier[N]{tree: tree, reg: reg}
}

// Apply re-arranges the children of ctx.Parent to match the target order of
// ctx. It returns the number of tree writes performed, which is zero if the
// tree already conforms to ctx.
//
// Moves are executed from the highest target index down, each one inserting
// its element in front of its successor in the target order. If the
// successor is itself still waiting to be moved, its own successor is
// taken, and so on.
func (a *Applier[N]) Apply(ctx *Context[N]) (int, error) {
	target := ctx.Nodes()
	observed := a.reg.tokensOf(a.tree.ChildrenOf(ctx.Parent))
	tokens := a.reg.tokensOf(target)
	if sameOrder(observed, tokens) {
		return 0, nil
	}
	moves := Diff(observed, tokens)
	if len(moves) == 0 {
		return 0, nil
	}
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].Index > moves[j].Index
	})
	pending := make(map[Token]int, len(moves))
	for _, m := range moves {
		pending[m.Element] = m.Index
	}
	tracer().P("context", ctx.token).Debugf("applying %d moves", len(moves))
	var zero N
	writes := 0
	for _, m := range moves {
		j := m.Index + 1
		for j < len(tokens) {
			i, ok := pending[tokens[j]]
			if !ok {
				break
			}
			j = i + 1
		}
		anchor := zero
		if j < len(tokens) {
			anchor = target[j]
		}
		if err := a.tree.InsertBefore(ctx.Parent, target[m.Index], anchor); err != nil {
			return writes, fmt.Errorf("cannot move node %s to position %d: %w", m.Element, m.Index, err)
		}
		delete(pending, m.Element)
		writes++
	}
	return writes, nil
}

// sameOrder is true if the managed elements of observed appear in exactly the
// order of target, and no target element is missing.
func sameOrder(observed, target []Token) bool {
	managed := make(map[Token]struct{}, len(target))
	for _, t := range target {
		managed[t] = struct{}{}
	}
	i := 0
	for _, t := range observed {
		if _, ok := managed[t]; !ok {
			continue
		}
		if i >= len(target) || target[i] != t {
			return false
		}
		i++
	}
	return i == len(target)
}
