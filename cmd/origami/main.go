// Command origami solves the folds of a scenario file and reports the
// creases, optionally writing a PNG preview of each fold.
//
// Usage:
//
//	origami [flags] scenario.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/origami"
	"github.com/gogpu/origami/internal/batch"
	"github.com/gogpu/origami/internal/scenario"
	"github.com/gogpu/origami/preview"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("origami: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("origami", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		workers = fs.Int("workers", 0, "concurrent solvers (0 = GOMAXPROCS)")
		outDir  = fs.String("out", "", "directory for PNG previews (empty = none)")
		size    = fs.Int("size", 512, "preview size in pixels")
		lang    = fs.String("lang", "en", "report language tag")
		verbose = fs.Bool("v", false, "log solver diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one scenario file, got %d arguments", fs.NArg())
	}

	if *verbose {
		origami.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer origami.SetLogger(nil)
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("bad -lang: %w", err)
	}
	p := message.NewPrinter(tag)

	sc, err := scenario.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	jobs := make([]batch.Job, len(sc.Folds))
	for i, f := range sc.Folds {
		jobs[i] = batch.Job{Request: f.Request, Candidates: f.Candidates}
	}
	runner := batch.New(sc.Paper, batch.WithWorkers(*workers))
	results, err := runner.Run(ctx, jobs)
	if err != nil {
		return err
	}
	origami.Logger().Info("origami: batch done", "folds", len(results), "distinct", runner.Memoized())

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return fmt.Errorf("create -out: %w", err)
		}
	}

	failed := 0
	for i, res := range results {
		name := sc.Folds[i].Name
		if res.Err != nil {
			failed++
			p.Fprintf(stdout, "%s (axiom %d): %v\n", name, res.Job.Request.Axiom, errors.Unwrap(res.Err))
			continue
		}
		for j, c := range res.Creases {
			p.Fprintf(stdout, "%s (axiom %d) crease %d: %.4f x + %.4f y + %.4f = 0\n",
				name, res.Job.Request.Axiom, j+1, c.A, c.B, c.C)
		}
		p.Fprintf(stdout, "  %d points stay, %d points fold over\n", len(res.Fold.Positive), len(res.Fold.Negative))

		if *outDir != "" {
			img := preview.Render(res.Fold, preview.WithSize(*size, *size), preview.WithLabel(name))
			path := filepath.Join(*outDir, fileName(i, name))
			if err := preview.SavePNG(path, img); err != nil {
				return err
			}
			p.Fprintf(stdout, "  preview %s\n", path)
		}
	}
	p.Fprintf(stdout, "%d folds, %d solved, %d failed\n", len(results), len(results)-failed, failed)
	return nil
}

// fileName returns a file system friendly preview name.
func fileName(i int, name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	return fmt.Sprintf("%02d-%s.png", i+1, clean)
}
