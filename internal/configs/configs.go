package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/labstack/gommon/log"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	RedisDisabled          bool
	EventStreamKey         string
	EventWorkers           int
	EventQueueSize         int
	JWTSecret              string
	JWTIssuer              string
	AccessTokenDuration    time.Duration
	ShutdownTimeoutSeconds int
	LogLevel               string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisDisabled:          getEnvAsBool("REDIS_DISABLED", false),
		EventStreamKey:         getEnv("EVENT_STREAM_KEY", "task_collab_events"),
		EventWorkers:           getEnvAsInt("EVENT_WORKERS", 2),
		EventQueueSize:         getEnvAsInt("EVENT_QUEUE_SIZE", 256),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTIssuer:              getEnv("JWT_ISSUER", "task-collab"),
		AccessTokenDuration:    time.Duration(getEnvAsInt("ACCESS_TOKEN_MINUTES", 15)) * time.Minute,
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (cfg Config) Validate() error {
	switch {
	case cfg.DatabaseDSN == "":
		return fmt.Errorf("DATABASE_DSN must not be empty")
	case cfg.RateLimit <= 0:
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	case cfg.EventWorkers <= 0:
		return fmt.Errorf("EVENT_WORKERS must be greater than 0")
	case cfg.EventQueueSize <= 0:
		return fmt.Errorf("EVENT_QUEUE_SIZE must be greater than 0")
	case cfg.EventStreamKey == "":
		return fmt.Errorf("EVENT_STREAM_KEY must not be empty")
	case cfg.JWTSecret == "":
		return fmt.Errorf("JWT_SECRET must not be empty")
	case cfg.AccessTokenDuration <= 0:
		return fmt.Errorf("ACCESS_TOKEN_MINUTES must be greater than 0")
	case cfg.ShutdownTimeoutSeconds <= 0:
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

func (cfg Config) ShutdownTimeout() time.Duration {
	return time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
