package errors

import "fmt"

func Forbidden(format string, args ...any) *Exception {
	return &Exception{
		Kind:    KindForbidden,
		Message: fmt.Sprintf(format, args...),
	}
}
