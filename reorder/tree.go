package reorder

// Tree is the live document tree the engine reconciles. Node type N must be
// comparable; its zero value means "no node".
type Tree[N comparable] interface {
	// ParentOf returns the current parent of n, if n has one.
	ParentOf(n N) (N, bool)
	// ChildrenOf returns the current children of parent in document order.
	// Implementations may leave out children which can never be managed,
	// such as text nodes of an HTML tree.
	ChildrenOf(parent N) []N
	// InsertBefore detaches child from its current parent (if any) and
	// inserts it into parent, immediately before anchor. If anchor is the
	// zero value, child is appended.
	InsertBefore(parent, child, anchor N) error
}

// Matcher selects nodes of a tree. Query returns all nodes matching a
// selector in document order. It returns an empty result, never an error,
// for selectors which do not match or cannot be understood.
type Matcher[N comparable] interface {
	Query(selector string) []N
}

// MediaMatcher decides whether a media directive currently applies, e.g.
// "only screen and (min-width: 480px)".
type MediaMatcher interface {
	Matches(directive string) bool
}

// MediaFunc is an adapter to use an ordinary function as a MediaMatcher.
type MediaFunc func(directive string) bool

// Matches calls f(directive).
func (f MediaFunc) Matches(directive string) bool {
	return f(directive)
}

// NoMedia is a MediaMatcher which never matches.
var NoMedia MediaMatcher = MediaFunc(func(string) bool { return false })

// AllMedia is a MediaMatcher which matches every directive.
var AllMedia MediaMatcher = MediaFunc(func(string) bool { return true })
