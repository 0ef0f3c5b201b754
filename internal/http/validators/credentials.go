package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-collab.com/task-collab/internal/data_models"
)

func ValidateCredentialsRequest(r *dto.CredentialsRequest) error {
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}
