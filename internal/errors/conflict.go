package errors

import "fmt"

func Conflict(format string, args ...any) *Exception {
	return &Exception{
		Kind:    KindConflict,
		Message: fmt.Sprintf(format, args...),
	}
}
