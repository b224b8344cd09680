package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	pure "github.com/tmazeika/pure"
	"github.com/tmazeika/pure/internal/logging"
)

var (
	banner   = fmt.Sprintf("Pure %s token REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.", pure.Version)
	helpText = `REPL commands:
  :spans   Toggle [start,end) offsets after each lexeme
  :help    Show this help
  :quit    Exit the REPL`
)

func cmdRepl(args []string) (ret int) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	spans := fs.Bool("spans", false, "print [start,end) offsets after each lexeme")
	lf := addLogFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := lf.init(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 2
	}
	defer logging.Close()
	log := logging.WithCommand("repl")

	fmt.Println(banner)

	histPath := envOr("PURE_HISTORY", "")
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			log.Warn("cannot save history", "path", histPath, "err", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := newRepl(os.Stdout, os.Stderr, *spans)
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			log.Error("prompt failed", "err", err)
			return 1
		}

		if r.handle(line) {
			return 0
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}

// repl evaluates one input line at a time. Each line is an independent
// source text; nothing carries over between lines except settings.
type repl struct {
	out, errOut io.Writer
	pal, errPal palette
	spans       bool
}

func newRepl(out, errOut io.Writer, spans bool) *repl {
	return &repl{
		out:    out,
		errOut: errOut,
		pal:    newPalette(out),
		errPal: newPalette(errOut),
		spans:  spans,
	}
}

// handle processes a line and reports whether the REPL should exit.
func (r *repl) handle(line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case ":quit":
			return true
		case ":help":
			fmt.Fprintln(r.out, helpText)
		case ":spans":
			r.spans = !r.spans
			fmt.Fprintf(r.out, "spans %s\n", map[bool]string{true: "on", false: "off"}[r.spans])
		default:
			fmt.Fprintln(r.out, "unknown command. Type :help for commands.")
		}
		return false
	}
	if trimmed == "" {
		return false
	}

	toks, err := pure.Tokenize(line)
	if err != nil {
		logging.WithSource("repl").Debug("scan failed", "err", err)
		fmt.Fprintln(r.errOut, r.errPal.failure(pure.WrapErrorWithSource(err, line)))
		return false
	}
	fmt.Fprintln(r.out, r.pal.lexemeList(toks, r.spans))
	return false
}
