package maybe_test

import (
	"testing"

	. "github.com/npillmayer/domino/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeOf(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if x, found := Of(v, ok).Get(); !found || x != 1 {
		t.Errorf("expected Of(1, true) to be Just(1), is (%d, %v)", x, found)
	}
	v, ok = m["b"]
	if _, found := Of(v, ok).Get(); found {
		t.Errorf("expected Of(0, false) to be Nothing, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	xx := Just(7).Map(func(n int) int {
		return n * 2
	})
	var v int
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}

	yy := Nothing[int]().Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Errorf("expected Nothing.Map(…) to stay Nothing, is %d", w)
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	var isGreater bool
	switch m := AndThen(gt0, Just(7)).Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if _, ok := AndThen(gt0, Just(-1)).Get(); ok {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}
