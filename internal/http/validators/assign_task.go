package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-collab.com/task-collab/internal/data_models"
)

func ValidateAssignTaskRequest(r *dto.AssignTaskRequest) error {
	if r.AssigneeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "assignee_id is required")
	}
	return nil
}
