package reorder

import (
	"github.com/npillmayer/domino/rules"
)

// Resolver turns rule sets into a Forest. It never mutates the tree.
//
// Query results are memoized for the lifetime of a resolver, which should
// therefore not outlive a single invocation of the engine.
type Resolver[N comparable] struct {
	tree    Tree[N]
	matcher Matcher[N]
	forest  *Forest[N]
	cache   map[string][]N // selector -> query result
}

// NewResolver creates a resolver populating forest. If forest is nil, a fresh
// forest with a private registry is created.
func NewResolver[N comparable](tree Tree[N], matcher Matcher[N], forest *Forest[N]) *Resolver[N] {
	if forest == nil {
		forest = NewForest[N](nil)
	}
	return &Resolver[N]{
		tree:    tree,
		matcher: matcher,
		forest:  forest,
		cache:   make(map[string][]N),
	}
}

// Forest returns the forest populated so far.
func (r *Resolver[N]) Forest() *Forest[N] {
	return r.forest
}

func (r *Resolver[N]) find(selector string) []N {
	if nodes, ok := r.cache[selector]; ok {
		return nodes
	}
	nodes := r.matcher.Query(selector)
	r.cache[selector] = nodes
	return nodes
}

// Resolve adds a layer of rules to the forest. Container rules are resolved
// before order rules, so that ordering happens within the final parent.
func (r *Resolver[N]) Resolve(rs rules.RuleSet) *Forest[N] {
	for _, rule := range rs.Container {
		targets := r.find(rule.Container)
		if len(targets) == 0 {
			tracer().P("selector", rule.Selector).Debugf("no container matches %q, skipping rule", rule.Container)
			continue
		}
		parent := targets[0]
		for _, node := range r.find(rule.Selector) {
			r.forest.AddNode(parent, node, Last)
		}
	}
	for _, rule := range rs.Order {
		for _, node := range r.find(rule.Selector) {
			parent, ok := r.effectiveParent(node)
			if !ok {
				tracer().P("selector", rule.Selector).Debugf("node without parent, skipping")
				continue
			}
			r.forest.AddNode(parent, node, float64(rule.Order))
		}
	}
	return r.forest
}

// ResolveStylesheet resolves the base rules of ss, followed by every media
// layer whose directive matches, in declaration order. Each directive is
// presented to media exactly once. A nil media matcher matches nothing.
func (r *Resolver[N]) ResolveStylesheet(ss *rules.Stylesheet, media MediaMatcher) *Forest[N] {
	if ss == nil {
		return r.forest
	}
	if media == nil {
		media = NoMedia
	}
	r.Resolve(ss.Rules)
	for _, layer := range ss.MediaQueries {
		if media.Matches(layer.Directive) {
			tracer().Debugf("media layer %q matches", layer.Directive)
			r.Resolve(layer.Rules)
		}
	}
	return r.forest
}

// effectiveParent is the parent assigned to node by the forest so far, or
// else its current parent in the tree.
func (r *Resolver[N]) effectiveParent(node N) (N, bool) {
	if p, ok := r.forest.ParentOf(node).Get(); ok {
		return p, true
	}
	return r.tree.ParentOf(node)
}
