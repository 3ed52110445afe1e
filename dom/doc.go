/*
Package dom makes HTML documents available for CSS-driven re-arrangement.

Status

Early draft, API may change frequently.

Overview

We operate on parse trees of golang.org/x/net/html. Type Document wraps the
root of a parse tree and implements the interfaces package reorder needs:
selecting elements by CSS selector (see package cascadia) and moving
elements around.

Only element nodes take part in re-arrangement. Text nodes, comments and
the like stay where they are, relative to their siblings.

Compiled selectors are kept in an LRU cache per document, as rules are
re-applied frequently (e.g., on every change of the viewport) with the same
set of selectors.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domino.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domino.dom")
}
