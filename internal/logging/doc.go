// Package logging provides a process-wide structured logger for the pure
// command.
//
// The package wraps [log/slog] and exposes a single global logger that is
// initialized once and then retrieved via GetLogger. Level, format and
// destination are controlled from one place.
//
// # Initialisation
//
// Call Init (or InitDefault) once at program startup, before any goroutines
// that might call GetLogger are spawned:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, Format: "json"}); err != nil {
//	    return err
//	}
//	defer logging.Close()
//
// If GetLogger is called before Init, a default stderr logger is created
// lazily (via sync.Once).
//
// The scanner package does not log; only the command does. Logs go to
// stderr by default because stdout carries token output.
package logging
