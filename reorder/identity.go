package reorder

import (
	"fmt"
	"sync"
)

// Token identifies a node of a tree. Tokens are handed out by a Registry,
// starting at 1. The zero token denotes "no node".
type Token uint64

func (t Token) String() string {
	return fmt.Sprintf("#%d", uint64(t))
}

// Registry assigns tokens to nodes. A token is created the first time a node
// is presented to the registry and will never change afterwards.
//
// A Registry is safe for concurrent use.
type Registry[N comparable] struct {
	mx     sync.RWMutex
	tokens map[N]Token
	last   Token
}

// NewRegistry creates an empty identity registry.
func NewRegistry[N comparable]() *Registry[N] {
	return &Registry[N]{tokens: make(map[N]Token)}
}

// Token returns the identity token of node n, creating it if n has not been
// seen before.
func (reg *Registry[N]) Token(n N) Token {
	reg.mx.RLock()
	t, ok := reg.tokens[n]
	reg.mx.RUnlock()
	if ok {
		return t
	}
	reg.mx.Lock()
	defer reg.mx.Unlock()
	if t, ok = reg.tokens[n]; ok { // somebody else has been faster
		return t
	}
	reg.last++
	reg.tokens[n] = reg.last
	return reg.last
}

// Lookup returns the token of n, if n already owns one. It will not create a
// new token.
func (reg *Registry[N]) Lookup(n N) (Token, bool) {
	reg.mx.RLock()
	defer reg.mx.RUnlock()
	t, ok := reg.tokens[n]
	return t, ok
}

// Forget drops the token of n. Clients call this for nodes which have been
// removed from the tree for good. If n is presented again later, it will
// receive a fresh token.
func (reg *Registry[N]) Forget(n N) {
	reg.mx.Lock()
	defer reg.mx.Unlock()
	delete(reg.tokens, n)
}

// Len returns the number of nodes known to the registry.
func (reg *Registry[N]) Len() int {
	reg.mx.RLock()
	defer reg.mx.RUnlock()
	return len(reg.tokens)
}

// tokensOf maps a slice of nodes to their tokens.
func (reg *Registry[N]) tokensOf(nodes []N) []Token {
	tt := make([]Token, len(nodes))
	for i, n := range nodes {
		tt[i] = reg.Token(n)
	}
	return tt
}
