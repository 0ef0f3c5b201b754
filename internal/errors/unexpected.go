package errors

const UnexpectedMessage = "an unexpected error occurred"

// Unexpected wraps an infrastructure failure. The message is deliberately
// opaque; the cause is kept for logging.
func Unexpected(cause error) *Exception {
	return &Exception{
		Kind:    KindUnexpected,
		Message: UnexpectedMessage,
		Cause:   cause,
	}
}
