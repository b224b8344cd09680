package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	pure "github.com/tmazeika/pure"
	"github.com/tmazeika/pure/internal/logging"
)

type lexOptions struct {
	JSON     bool
	Gaps     bool
	Jobs     int
	FailFast bool
}

type lexResult struct {
	name string
	src  string
	toks []pure.Token
	err  error
}

func cmdLex(args []string) int {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	var opts lexOptions
	fs.BoolVar(&opts.JSON, "json", false, "emit NDJSON: one JSON object per token")
	fs.BoolVar(&opts.Gaps, "gaps", false, "also print skipped whitespace and comments (text mode)")
	fs.IntVar(&opts.Jobs, "j", runtime.GOMAXPROCS(0), "number of files scanned concurrently")
	fs.BoolVar(&opts.FailFast, "fail-fast", false, "stop scanning remaining files after the first error")
	lf := addLogFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := lf.init(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 2
	}
	defer logging.Close()

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	return runLex(context.Background(), opts, paths, os.Stdin, os.Stdout, os.Stderr)
}

// runLex scans every path and prints the results in argument order. It
// returns the process exit code.
func runLex(ctx context.Context, opts lexOptions, paths []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logging.WithCommand("lex")
	results, firstErr := lexAll(ctx, opts, paths, stdin)

	out, errOut := newPalette(stdout), newPalette(stderr)
	enc := json.NewEncoder(stdout)
	exit := 0
	for _, res := range results {
		if res.err != nil {
			exit = 1
			if opts.FailFast && firstErr != nil && res.err != firstErr && errors.Is(res.err, context.Canceled) {
				log.Debug("skipped after failure", "source", res.name)
				continue
			}
			fmt.Fprintln(stderr, errOut.failure(pure.WrapErrorWithName(res.err, res.name, res.src)))
			continue
		}
		if opts.JSON {
			for _, t := range res.toks {
				if err := enc.Encode(toOutToken(res.name, t)); err != nil {
					log.Error("encode json", "err", err)
					return 1
				}
			}
			continue
		}
		writeText(stdout, out, res, opts.Gaps)
	}
	return exit
}

// lexAll scans the inputs concurrently, at most opts.Jobs at a time. Every
// scan is independent; results keep the order of paths. With FailFast the
// first failure cancels the scans still running and is also returned.
func lexAll(ctx context.Context, opts lexOptions, paths []string, stdin io.Reader) ([]lexResult, error) {
	results := make([]lexResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = lexOne(gctx, path, stdin)
			if opts.FailFast {
				return results[i].err
			}
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func lexOne(ctx context.Context, path string, stdin io.Reader) lexResult {
	name := path
	if path == "-" {
		name = "stdin"
	}
	log := logging.WithSource(name)
	res := lexResult{name: name}

	if err := ctx.Err(); err != nil {
		res.err = err
		return res
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		res.err = fmt.Errorf("read %s: %w", name, err)
		log.Error("read failed", "err", err)
		return res
	}
	res.src = string(data)

	start := time.Now()
	res.toks, res.err = pure.TokenizeContext(ctx, res.src)
	if res.err != nil {
		log.Debug("scan failed", "err", res.err)
		return res
	}
	log.Debug("scanned", "bytes", len(res.src), "tokens", len(res.toks), "elapsed", time.Since(start))
	return res
}
