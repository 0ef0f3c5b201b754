package errors

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure branch of every use case outcome.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "unexpected"
	}
}

// Exception is the single typed error travelling through results and
// use case responses. Cause is only set for unexpected failures and is
// never shown to callers.
type Exception struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Exception) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Cause
}

// Is matches on kind and message so sentinel exceptions work with errors.Is.
func (e *Exception) Is(target error) bool {
	var other *Exception
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind && e.Message == other.Message
}

// KindOf reports the kind of err, treating anything that is not an
// Exception as unexpected.
func KindOf(err error) Kind {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc.Kind
	}
	return KindUnexpected
}

// As is a shortcut for errors.As into an *Exception.
func As(err error) (*Exception, bool) {
	var exc *Exception
	ok := errors.As(err, &exc)
	return exc, ok
}
