package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"task-collab.com/task-collab/internal/auth"
	dto "task-collab.com/task-collab/internal/data_models"
	"task-collab.com/task-collab/internal/domain/comment"
	"task-collab.com/task-collab/internal/domain/task"
	apperr "task-collab.com/task-collab/internal/errors"
	middleware "task-collab.com/task-collab/internal/http/middlewares"
	"task-collab.com/task-collab/internal/http/validators"
	"task-collab.com/task-collab/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	authService *auth.Service
}

func NewHandler(taskService *services.TaskService, authService *auth.Service) *Handler {
	return &Handler{
		taskService: taskService,
		authService: authService,
	}
}

func presentTask(t *task.Task) any              { return dto.FromTask(t) }
func presentTasks(ts []*task.Task) any          { return dto.FromTasks(ts) }
func presentComment(c *comment.Comment) any     { return dto.FromComment(c) }
func presentComments(cs []*comment.Comment) any { return dto.FromComments(cs) }

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	return nil
}

func (h *Handler) SignUp(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCredentialsRequest(&req); err != nil {
		return err
	}

	account, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnexpected {
			log.Errorf("sign up: %v", err)
		}
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, account)
}

func (h *Handler) LogIn(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCredentialsRequest(&req); err != nil {
		return err
	}

	tokens, err := h.authService.LogIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnexpected {
			log.Errorf("log in: %v", err)
		}
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, tokens)
}

func (h *Handler) NoteTask(c echo.Context) error {
	var req dto.NoteTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp := h.taskService.NoteTask.Execute(c.Request().Context(), services.NoteTaskRequest{
		UserID:      middleware.UserID(c),
		Description: req.Description,
	})
	return respond(c, http.StatusCreated, resp, presentTask)
}

func (h *Handler) GetActiveTasks(c echo.Context) error {
	resp := h.taskService.GetActiveTasks.Execute(c.Request().Context(), services.GetTasksRequest{
		UserID: middleware.UserID(c),
	})
	return respond(c, http.StatusOK, resp, presentTasks)
}

func (h *Handler) GetArchivedTasks(c echo.Context) error {
	resp := h.taskService.GetArchivedTasks.Execute(c.Request().Context(), services.GetTasksRequest{
		UserID: middleware.UserID(c),
	})
	return respond(c, http.StatusOK, resp, presentTasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	resp := h.taskService.GetTask.Execute(c.Request().Context(), taskAction(c))
	return respond(c, http.StatusOK, resp, presentTask)
}

func (h *Handler) EditTask(c echo.Context) error {
	var req dto.EditTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp := h.taskService.EditTask.Execute(c.Request().Context(), services.EditTaskRequest{
		UserID:      middleware.UserID(c),
		TaskID:      c.Param("id"),
		Description: req.Description,
	})
	return respond(c, http.StatusOK, resp, presentTask)
}

func (h *Handler) TickOffTask(c echo.Context) error {
	resp := h.taskService.TickOffTask.Execute(c.Request().Context(), taskAction(c))
	return respond(c, http.StatusOK, resp, presentTask)
}

func (h *Handler) ResumeTask(c echo.Context) error {
	resp := h.taskService.ResumeTask.Execute(c.Request().Context(), taskAction(c))
	return respond(c, http.StatusOK, resp, presentTask)
}

func (h *Handler) ArchiveTask(c echo.Context) error {
	resp := h.taskService.ArchiveTask.Execute(c.Request().Context(), taskAction(c))
	return respond(c, http.StatusOK, resp, presentTask)
}

func (h *Handler) DiscardTask(c echo.Context) error {
	resp := h.taskService.DiscardTask.Execute(c.Request().Context(), taskAction(c))
	return respond(c, http.StatusOK, resp, presentTask)
}

func (h *Handler) AssignTask(c echo.Context) error {
	var req dto.AssignTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateAssignTaskRequest(&req); err != nil {
		return err
	}

	resp := h.taskService.AssignTask.Execute(c.Request().Context(), services.AssignTaskRequest{
		UserID:     middleware.UserID(c),
		TaskID:     c.Param("id"),
		AssigneeID: req.AssigneeID,
	})
	return respond(c, http.StatusOK, resp, presentTask)
}

func (h *Handler) WriteComment(c echo.Context) error {
	var req dto.WriteCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp := h.taskService.WriteComment.Execute(c.Request().Context(), services.WriteCommentRequest{
		UserID: middleware.UserID(c),
		TaskID: c.Param("id"),
		Text:   req.Text,
	})
	return respond(c, http.StatusCreated, resp, presentComment)
}

func (h *Handler) GetTaskComments(c echo.Context) error {
	resp := h.taskService.GetTaskComments.Execute(c.Request().Context(), taskAction(c))
	return respond(c, http.StatusOK, resp, presentComments)
}

func taskAction(c echo.Context) services.TaskActionRequest {
	return services.TaskActionRequest{
		UserID: middleware.UserID(c),
		TaskID: c.Param("id"),
	}
}
