// Package specification holds composable boolean rules evaluated against a
// candidate value, usually the identity of the member acting on an aggregate.
package specification

type Specification[T any] interface {
	SatisfiedBy(candidate T) bool
}

// Func adapts a plain predicate into a Specification.
type Func[T any] func(candidate T) bool

func (f Func[T]) SatisfiedBy(candidate T) bool {
	return f(candidate)
}

type and[T any] struct {
	left, right Specification[T]
}

func And[T any](left, right Specification[T]) Specification[T] {
	return and[T]{left: left, right: right}
}

func (s and[T]) SatisfiedBy(candidate T) bool {
	return s.left.SatisfiedBy(candidate) && s.right.SatisfiedBy(candidate)
}

type or[T any] struct {
	left, right Specification[T]
}

func Or[T any](left, right Specification[T]) Specification[T] {
	return or[T]{left: left, right: right}
}

func (s or[T]) SatisfiedBy(candidate T) bool {
	return s.left.SatisfiedBy(candidate) || s.right.SatisfiedBy(candidate)
}

type not[T any] struct {
	inner Specification[T]
}

func Not[T any](inner Specification[T]) Specification[T] {
	return not[T]{inner: inner}
}

func (s not[T]) SatisfiedBy(candidate T) bool {
	return !s.inner.SatisfiedBy(candidate)
}

type adapted[T, U any] struct {
	inner   Specification[U]
	convert func(T) U
}

// Adapt evaluates inner against convert(candidate). It lets rules written
// for different identity kinds be combined over a common candidate type.
func Adapt[T, U any](inner Specification[U], convert func(T) U) Specification[T] {
	return adapted[T, U]{inner: inner, convert: convert}
}

func (s adapted[T, U]) SatisfiedBy(candidate T) bool {
	return s.inner.SatisfiedBy(s.convert(candidate))
}
