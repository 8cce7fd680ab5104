package internal

import "context"
import "log/slog"
import "sync/atomic"

// Handler that drops everything. Enabled() returns false, so callers
// skip formatting entirely and disabled logging costs almost nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger shared by dotmatrix and all its subpackages.
// A nil logger restores the default silent behavior.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current shared logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
