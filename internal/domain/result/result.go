// Package result carries success values and typed failures through the
// domain and use case layers without using errors for control flow.
package result

import "fmt"

// Result holds either a value of type T or a failure.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail builds a failed Result. A nil error is a programming mistake.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value panics when the result failed. Callers branch on IsOk first.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Value called on failure: %v", r.err))
	}
	return r.value
}

// Error panics when the result succeeded.
func (r Result[T]) Error() error {
	if r.ok {
		panic("result: Error called on success")
	}
	return r.err
}

// Outcome is the untyped view of a Result used by Combine.
type Outcome interface {
	IsFailure() bool
	Error() error
}

// Combine returns the first failure in argument order, or success when
// every outcome succeeded.
func Combine(outcomes ...Outcome) Result[struct{}] {
	for _, o := range outcomes {
		if o.IsFailure() {
			return Fail[struct{}](o.Error())
		}
	}
	return Ok(struct{}{})
}

// Map transforms a successful value and passes failures through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}
