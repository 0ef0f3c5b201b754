package errors

import "fmt"

func Validation(format string, args ...any) *Exception {
	return &Exception{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
	}
}
