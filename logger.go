package dotmatrix

import "log/slog"

import "github.com/tinne26/dotmatrix/internal"

// Sets the logger used by dotmatrix and all its subpackages. By
// default nothing is logged. A nil logger restores the default.
//
// Warnings are logged for clamped values (e.g. non-positive speeds),
// errors for rejected calls (e.g. content size mismatches) and debug
// messages for the controller's operation lifecycle.
func SetLogger(logger *slog.Logger) {
	internal.SetLogger(logger)
}

// Returns the logger used by dotmatrix. Never nil.
func Logger() *slog.Logger {
	return internal.Logger()
}
