package logging

import (
	"log/slog"
	"os"
)

// Logger is the storefront's logging surface: a message plus alternating
// key-value args, slog style.
type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

// StdoutLogger is the default sink for the store binary and its tests.
var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))
