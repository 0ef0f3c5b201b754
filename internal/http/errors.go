package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-collab.com/task-collab/internal/domain/result"
	apperr "task-collab.com/task-collab/internal/errors"
	"task-collab.com/task-collab/internal/services"
)

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusUnprocessableEntity
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindUnexpected:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// toHTTPError renders any error as an echo error. Only exceptions keep their
// message; everything else is reported opaquely.
func toHTTPError(err error) *echo.HTTPError {
	exc, ok := apperr.As(err)
	if !ok {
		exc = apperr.Unexpected(err)
	}
	return echo.NewHTTPError(statusOf(exc.Kind), exc.Message)
}

// respond writes the right side of resp with status, or the mapped failure.
func respond[T any](c echo.Context, status int, resp services.Response[T], present func(T) any) error {
	return result.Fold(resp,
		func(exc *apperr.Exception) error { return toHTTPError(exc) },
		func(value T) error { return c.JSON(status, present(value)) },
	)
}
