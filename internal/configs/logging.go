package config

import (
	"strings"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm/logger"
)

func parseLevel(raw string) (log.Lvl, bool) {
	switch strings.ToLower(raw) {
	case "debug":
		return log.DEBUG, true
	case "info":
		return log.INFO, true
	case "warn":
		return log.WARN, true
	case "error":
		return log.ERROR, true
	}
	return log.INFO, false
}

// SetupLogging configures the global gommon logger used across the app.
func SetupLogging(level string) {
	lvl, _ := parseLevel(level)
	log.SetPrefix("task-collab")
	log.SetLevel(lvl)
}

// GormLogLevel keeps SQL tracing out of the logs unless debugging.
func GormLogLevel(level string) logger.LogLevel {
	lvl, _ := parseLevel(level)
	if lvl == log.DEBUG {
		return logger.Info
	}
	return logger.Warn
}
