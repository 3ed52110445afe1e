/*
Package reorder re-parents and re-orders nodes of a live document tree,
driven by container and order rules taken from stylesheets.

Overview

Stylesheets may declare

   .cta    { -domino-container: .card; }
   .price  { -domino-order: 10; }

meaning: move every element matching `.cta` into the first element matching
`.card`, and place `.price` elements among their siblings according to rank 10.
Package reorder does not read stylesheets itself; it receives rules already
parsed (see package rules) and talks to the document through two small
interfaces, Tree and Matcher. It is generic over the node type, so it works
for HTML parse trees (package dom) as well as for the general purpose tree of
package tree.

Every call to Engine.Apply works in two phases:

   1. A Resolver turns rules into a Forest: for every target parent an ordered
      list of target children. No tree mutation happens here. Base rules are
      resolved first, then every media layer whose directive matches.
   2. An Applier visits every Context of the forest, compares the parent's
      current children with the target children and executes the moves
      computed by Diff.

Node Identity

Nodes are keyed by Tokens handed out lazily by a Registry. A token is stable
for the lifetime of the engine, whereas a Forest is thrown away after every
invocation. Re-applying rules is therefore never incremental with respect to
an earlier invocation; only the live tree is.

Concurrency

Apply runs to completion without suspension. Diff runs its three scans
concurrently, but they share no mutable state. Clients must not call Apply
concurrently for the same tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reorder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domino.reorder'.
func tracer() tracing.Trace {
	return tracing.Select("domino.reorder")
}
