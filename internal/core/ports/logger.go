package ports

import "io"

// Logger defines the logging interface used across the application.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, rendering its cause chain.
	Error(err error)

	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)
}
