package logging

import (
	"log/slog"
	"os"
)

// Logger is the application-wide structured logger instance.
var Logger *slog.Logger = slog.Default()

// Init initializes the global logger with the given level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "text")
func Init(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// WithUser returns a logger with the user_id field attached.
func WithUser(userID int64) *slog.Logger {
	return Logger.With("user_id", userID)
}

// WithMedication returns a logger with the medication_id field attached.
func WithMedication(id int64) *slog.Logger {
	return Logger.With("medication_id", id)
}

// WithRequest returns a logger with the request_id field attached.
func WithRequest(requestID string) *slog.Logger {
	return Logger.With("request_id", requestID)
}
