/*
Package result implements results of computations which may fail, in
the manner of Elm:

   type Result error value
       = Ok value
       | Err error

Results are consumed by pattern matching:

   switch m := r.Match(); m {
   case m.Ok(&v):
       …
   case m.Err(&err):
       …
   }

or, more conventionally for Go, with Get.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is the result of a computation which may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error) // value and nil, or zero value and error
	IsOk() bool      // does the result carry a value?
	WithDefault(T) T // value or default in case of an error
}

type result[T any] struct {
	value T
	err   error
}

// Ok creates a successful result.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err creates a failed result. err should not be nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of creates a result from a conventional Go (value, error) pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// AndThen chains a computation which may fail onto a result.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// MapError transforms the error of a failed result, e.g. to wrap it.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	v, err := r.Get()
	if err != nil {
		return Err[T](f(err))
	}
	return Ok(v)
}

// --- Matching --------------------------------------------------------------

// Matcher is used to pattern-match a result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
