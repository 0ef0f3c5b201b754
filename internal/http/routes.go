package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-collab.com/task-collab/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, authenticator middleware.Authenticator, rateLimitPerMinute int) {
	e.Use(middleware.RequestLogger())

	public := e.Group("/auth", middleware.RateLimiter(rateLimitPerMinute, time.Minute, middleware.ByRealIP))
	public.POST("/signup", h.SignUp)
	public.POST("/login", h.LogIn)

	tasks := e.Group("/tasks",
		middleware.Authenticate(authenticator),
		middleware.RateLimiter(rateLimitPerMinute, time.Minute, middleware.ByUserOrIP),
	)
	tasks.POST("", h.NoteTask)
	tasks.GET("/active", h.GetActiveTasks)
	tasks.GET("/archived", h.GetArchivedTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PATCH("/:id/description", h.EditTask)
	tasks.POST("/:id/tick-off", h.TickOffTask)
	tasks.POST("/:id/resume", h.ResumeTask)
	tasks.POST("/:id/archive", h.ArchiveTask)
	tasks.POST("/:id/discard", h.DiscardTask)
	tasks.POST("/:id/assign", h.AssignTask)
	tasks.POST("/:id/comments", h.WriteComment)
	tasks.GET("/:id/comments", h.GetTaskComments)
}
