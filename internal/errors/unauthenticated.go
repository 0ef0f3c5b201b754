package errors

var ErrInvalidCredentials = &Exception{
	Kind:    KindUnauthenticated,
	Message: "invalid email or password",
}

var ErrInvalidToken = &Exception{
	Kind:    KindUnauthenticated,
	Message: "invalid or expired token",
}

func Unauthenticated(message string) *Exception {
	return &Exception{
		Kind:    KindUnauthenticated,
		Message: message,
	}
}
