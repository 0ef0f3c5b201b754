package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"task-collab.com/task-collab/internal/auth"
	config "task-collab.com/task-collab/internal/configs"
	httpapi "task-collab.com/task-collab/internal/http"
	"task-collab.com/task-collab/internal/queue"
	repository "task-collab.com/task-collab/internal/repositories"
	"task-collab.com/task-collab/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task HTTP API and the event dispatcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		database := config.NewDatabaseClient(cfg.DatabaseDSN, config.GormLogLevel(cfg.LogLevel))

		var sink queue.Sink = queue.LogSink{}
		if !cfg.RedisDisabled {
			redisClient, err := config.OpenRedis(cmd.Context(), cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisClient.Close()
			sink = queue.NewRedisStreamSink(redisClient, cfg.EventStreamKey)
		}
		dispatcher := queue.NewDispatcher(sink, cfg.EventWorkers, cfg.EventQueueSize)

		taskService := services.NewTaskService(
			repository.NewTaskRepository(database),
			repository.NewMemberRepository(database),
			repository.NewCommentRepository(database),
			dispatcher,
		)

		authService := auth.NewService(
			repository.NewUserRepository(database),
			taskService.RegisterMember,
			auth.NewPasswordHasher(auth.DefaultBcryptCost),
			auth.NewJWTManager(auth.JWTConfig{
				SecretKey:           cfg.JWTSecret,
				Issuer:              cfg.JWTIssuer,
				AccessTokenDuration: cfg.AccessTokenDuration,
			}),
		)

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewHandler(taskService, authService), authService, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			log.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
			defer cancel()

			err := e.Shutdown(shutdownCtx)
			dispatcher.Shutdown(shutdownCtx)
			log.Infof("events written: %d, failed: %d", dispatcher.Written(), dispatcher.Failed())
			return err
		})

		if err := g.Wait(); err != nil {
			return err
		}

		log.Info("HTTP server and event dispatcher shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
