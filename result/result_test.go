package result_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/npillmayer/domino/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultOf(t *testing.T) {
	errBoom := errors.New("boom")
	r := Of(0, errBoom)
	if r.IsOk() {
		t.Errorf("expected result to be an error, isn't")
	}
	if r.WithDefault(42) != 42 {
		t.Errorf("expected default value for failed result")
	}
	w := MapError(func(err error) error { return fmt.Errorf("wrapped: %w", err) }, r)
	if _, err := w.Get(); !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped error to be boom, is %v", err)
	}
}

func TestResultAndThen(t *testing.T) {
	half := func(x int) Result[int] {
		if x%2 != 0 {
			return Err[int](fmt.Errorf("%d is odd", x))
		}
		return Ok(x / 2)
	}
	if v, err := AndThen(half, Ok(8)).Get(); err != nil || v != 4 {
		t.Errorf("expected 8/2 = 4, is %d (%v)", v, err)
	}
	if _, err := AndThen(half, AndThen(half, Ok(6))).Get(); err == nil {
		t.Errorf("expected 3 to be rejected as odd")
	}
}
