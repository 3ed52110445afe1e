package reorder

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Move tells that Element has to go to position Index of the target order.
// Elements not present in the observed order at all are moved in, too.
type Move[K comparable] struct {
	Element K
	Index   int
}

func (m Move[K]) String() string {
	return fmt.Sprintf("%v→%d", m.Element, m.Index)
}

// Diff computes the moves which transform the observed order of a parent's
// children into the target order. Observed elements not contained in target
// are not managed: they will not move and keep their relative position.
// Elements of target must be unique.
//
// Diff runs three scans concurrently, each specialized to one shape of
// re-arrangement:
//
//   down: elements moved forward (towards the end)
//   up:   elements moved backward (towards the start)
//   swap: transpositions
//
// Each scan counts the loop iterations it needs to exhaust both lists.
// For down and up this number grows with every element which has to move,
// so the faster one wins. If both tie and target is a permutation of the
// managed observed elements, the swap-scan is used.
//
// Elements which are not moved always form a common subsequence of observed
// and target.
func Diff[K comparable](observed, target []K) []Move[K] {
	if len(target) == 0 {
		return nil
	}
	d := newDiffer(observed, target)
	var down, up, swap scanResult[K]
	var g errgroup.Group
	g.Go(func() error { down = d.downScan(); return nil })
	g.Go(func() error { up = d.upScan(); return nil })
	g.Go(func() error { swap = d.swapScan(); return nil })
	_ = g.Wait() // scans never fail
	tracer().Debugf("diff steps: down=%d, up=%d, swap=%d", down.steps, up.steps, swap.steps)
	switch {
	case down.steps < up.steps:
		return down.moves
	case up.steps < down.steps:
		return up.moves
	case swap.permutation:
		return swap.moves
	}
	return down.moves
}

type scanResult[K comparable] struct {
	moves       []Move[K]
	steps       int
	permutation bool // set by swap-scan: no element has to be inserted
}

func (sr *scanResult[K]) move(k K, index int) {
	sr.moves = append(sr.moves, Move[K]{Element: k, Index: index})
}

// differ holds the read-only input shared between scans.
type differ[K comparable] struct {
	o, n     []K
	inTarget map[K]int      // element -> index in target
	observed map[K]struct{} // elements of o
}

func newDiffer[K comparable](o, n []K) *differ[K] {
	d := &differ[K]{
		o:        o,
		n:        n,
		inTarget: make(map[K]int, len(n)),
		observed: make(map[K]struct{}, len(o)),
	}
	for i, k := range n {
		d.inTarget[k] = i
	}
	for _, k := range o {
		d.observed[k] = struct{}{}
	}
	return d
}

func (d *differ[K]) managed(k K) bool {
	_, ok := d.inTarget[k]
	return ok
}

func (d *differ[K]) present(k K) bool {
	_, ok := d.observed[k]
	return ok
}

// downScan advances over observed elements which do not match, remembering
// them as missing. A missing element is moved when it is met in the target.
func (d *differ[K]) downScan() (sr scanResult[K]) {
	missing := make(map[K]struct{})
	o, n := 0, 0
	for o < len(d.o) || n < len(d.n) {
		sr.steps++
		if o < len(d.o) && !d.managed(d.o[o]) {
			o++
			continue
		}
		if n < len(d.n) {
			k := d.n[n]
			if !d.present(k) { // insert
				sr.move(k, n)
				n++
				continue
			}
			if _, ok := missing[k]; ok {
				sr.move(k, n)
				n++
				continue
			}
			if o < len(d.o) && d.o[o] == k {
				o++
				n++
				continue
			}
		}
		if o < len(d.o) {
			missing[d.o[o]] = struct{}{}
			o++
			continue
		}
		sr.move(d.n[n], n) // not reached for unique targets
		n++
	}
	return
}

// upScan advances over target elements which do not match, remembering their
// target index. A missing element is moved when it is met in observed.
func (d *differ[K]) upScan() (sr scanResult[K]) {
	missing := make(map[K]int)
	o, n := 0, 0
	for o < len(d.o) || n < len(d.n) {
		sr.steps++
		if o < len(d.o) {
			k := d.o[o]
			if !d.managed(k) {
				o++
				continue
			}
			if i, ok := missing[k]; ok {
				sr.move(k, i)
				o++
				continue
			}
		}
		if n < len(d.n) {
			k := d.n[n]
			switch {
			case !d.present(k): // insert
				sr.move(k, n)
			case o < len(d.o) && d.o[o] == k:
				o++
			default:
				missing[k] = n
			}
			n++
			continue
		}
		o++ // not reached for unique targets
	}
	return
}

// swapScan compares managed observed elements and target elements
// position by position.
func (d *differ[K]) swapScan() (sr scanResult[K]) {
	managed := make([]K, 0, len(d.n))
	for _, k := range d.o {
		if d.managed(k) {
			managed = append(managed, k)
		}
	}
	sr.permutation = len(managed) == len(d.n)
	for i := 0; i < len(managed) || i < len(d.n); i++ {
		sr.steps++
		if i < len(d.n) && (i >= len(managed) || managed[i] != d.n[i]) {
			sr.move(d.n[i], i)
		}
	}
	return
}
