package reorder

import (
	"fmt"

	"github.com/npillmayer/domino/rules"
)

// Report summarizes an invocation of Engine.Apply.
type Report struct {
	Contexts int // number of contexts resolved
	Parents  int // number of parents whose children had to be re-arranged
	Writes   int // number of tree writes performed
}

func (r Report) String() string {
	return fmt.Sprintf("%d contexts, %d parents changed, %d tree writes", r.Contexts, r.Parents, r.Writes)
}

// Engine applies stylesheets to a tree.
//
// The registry of node identities lives as long as the engine. Everything
// else is rebuilt for every invocation of Apply.
type Engine[N comparable] struct {
	tree    Tree[N]
	matcher Matcher[N]
	reg     *Registry[N]
}

// New creates an engine for a tree and a selector matcher over this tree.
func New[N comparable](tree Tree[N], matcher Matcher[N]) *Engine[N] {
	return &Engine[N]{
		tree:    tree,
		matcher: matcher,
		reg:     NewRegistry[N](),
	}
}

// Registry returns the node identity registry of the engine.
func (e *Engine[N]) Registry() *Registry[N] {
	return e.reg
}

// Resolve builds a fresh forest for ss: base rules first, then every media
// layer whose directive is matched by media. The tree is not touched.
func (e *Engine[N]) Resolve(ss *rules.Stylesheet, media MediaMatcher) *Forest[N] {
	r := NewResolver(e.tree, e.matcher, NewForest(e.reg))
	return r.ResolveStylesheet(ss, media)
}

// Apply resolves ss and re-arranges the tree accordingly, one context after
// the other, in order of creation. Apply stops at the first failing tree
// write; the tree may be partially re-arranged in this case.
//
// Applying an unchanged stylesheet to an unchanged tree performs no writes.
func (e *Engine[N]) Apply(ss *rules.Stylesheet, media MediaMatcher) (Report, error) {
	forest := e.Resolve(ss, media)
	report := Report{Contexts: forest.Len()}
	applier := NewApplier(e.tree, e.reg)
	for _, ctx := range forest.Contexts() {
		n, err := applier.Apply(ctx)
		report.Writes += n
		if n > 0 {
			report.Parents++
		}
		if err != nil {
			tracer().Errorf("applying rules: %v", err)
			return report, err
		}
	}
	tracer().Infof("applied rules: %s", report)
	return report, nil
}
