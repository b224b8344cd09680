package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	pure "github.com/tmazeika/pure"
	"github.com/tmazeika/pure/internal/logging"
)

const (
	appName     = "pure"
	historyFile = ".pure_history"
	promptMain  = "pure> "
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "version":
		fmt.Printf("%s %s (built %s)\n", appName, pure.Version, pure.BuildDate)
		return
	case "-h", "--help", "help":
		usage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Pure %s (built %s)

Usage:
  %s repl [-spans]                              Tokenize lines interactively.
  %s lex [-json] [-gaps] [-j N] [-fail-fast] [file ...]
                                                Tokenize files ("-" or none reads stdin).
  %s version                                    Print the compiled version

Every command also accepts -log-level, -log-format and -log-file
(defaults from PURE_LOG_LEVEL and PURE_LOG_FORMAT; logs go to stderr).
`, pure.Version, pure.BuildDate, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// logging flags
// -----------------------------------------------------------------------------

type logFlags struct {
	level  *string
	format *string
	file   *string
}

func addLogFlags(fs *flag.FlagSet) *logFlags {
	return &logFlags{
		level:  fs.String("log-level", envOr("PURE_LOG_LEVEL", "info"), "log level: debug, info, warn, error"),
		format: fs.String("log-format", envOr("PURE_LOG_FORMAT", "text"), "log format: text or json"),
		file:   fs.String("log-file", "", "append logs to this file instead of stderr"),
	}
}

// init installs the process logger. The caller must logging.Close it.
func (lf *logFlags) init() error {
	lvl, err := logging.ParseLevel(*lf.level)
	if err != nil {
		return err
	}
	return logging.Init(logging.Config{
		Level:      lvl,
		Format:     *lf.format,
		OutputPath: *lf.file,
	})
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
