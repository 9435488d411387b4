package common

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Logger is the logging port used by application code
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}

// LoggingMiddleware logs every request dispatched through the mediator with its duration
func LoggingMiddleware(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
	logger := LoggerFromContext(ctx)
	name := reflect.TypeOf(request).String()
	started := time.Now()

	response, err := next(ctx, request)

	metadata := map[string]interface{}{
		"request":     name,
		"duration_ms": time.Since(started).Milliseconds(),
	}
	if err != nil {
		metadata["error"] = err.Error()
		logger.Log("ERROR", fmt.Sprintf("[Mediator] %s failed", name), metadata)
		return nil, err
	}
	logger.Log("DEBUG", fmt.Sprintf("[Mediator] %s handled", name), metadata)
	return response, nil
}
