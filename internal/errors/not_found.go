package errors

import "fmt"

// NotFound names the aggregate kind and the identifier that was looked up.
func NotFound(entity, id string) *Exception {
	return &Exception{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}
