package logging

import (
	"log/slog"
)

// WithSource creates a logger tagged with the name of the input being
// scanned (a file path, "stdin", or "repl").
//
// Example:
//
//	log := logging.WithSource(path)
//	log.Debug("scanned", "tokens", len(toks))
func WithSource(name string) *slog.Logger {
	return GetLogger().With("source", name)
}

// WithCommand creates a logger tagged with the running subcommand.
func WithCommand(cmd string) *slog.Logger {
	return GetLogger().With("cmd", cmd)
}
