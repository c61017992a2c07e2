package main

import (
	"log"
	"log/slog"

	"github.com/user/taskboard-go/logging"
)

// slogErrorLog routes net/http's internal error messages through the structured logger.
func slogErrorLog(l *logging.SlogLogger) *log.Logger {
	return slog.NewLogLogger(l.Slog().Handler(), slog.LevelError)
}
