package result

import "fmt"

// Either is used for use case responses where the left side is a rich
// domain error and the right side the successful payload.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue panics on a Right.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("either: LeftValue called on Right")
	}
	return e.left
}

// RightValue panics on a Left.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic(fmt.Sprintf("either: RightValue called on Left: %v", e.left))
	}
	return e.right
}

// Fold runs exactly one of the two branches.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
