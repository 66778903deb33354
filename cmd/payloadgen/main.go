package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	gen "github.com/reoring/botschema/internal/gen"
	"github.com/reoring/botschema/internal/ir"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(fs.Output(), "payloadgen\n\nUsage:\n  payloadgen -schema schema.yaml -o ./methods [-check] [-v]\n\nFlags:")
		fs.PrintDefaults()
	}
}

// run returns the process exit code: 0 on success, 1 on generation failure or
// drift (with -check), 2 on bad usage.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("payloadgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		schema  string
		out     string
		check   bool
		verbose bool
	)
	fs.StringVar(&schema, "schema", "schema.yaml", "method catalog to read")
	fs.StringVar(&out, "o", ".", "output directory")
	fs.BoolVar(&check, "check", false, "report files that differ from the catalog instead of writing them")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	fs.Usage = usage(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if schema == "" || out == "" {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cat, err := ir.Load(schema)
	if err != nil {
		logger.Error("load catalog failed", slog.String("schema", schema), slog.Any("error", err))
		return 1
	}
	logger.Debug("catalog loaded", slog.String("schema", schema), slog.Int("methods", len(cat.Methods)))

	files, err := gen.Render(cat, filepath.Base(schema))
	if err != nil {
		logger.Error("generate failed", slog.Any("error", err))
		return 1
	}

	if check {
		stale := 0
		for _, f := range files {
			path := filepath.Join(out, f.Name)
			cur, err := os.ReadFile(path)
			if err != nil || !bytes.Equal(cur, f.Source) {
				logger.Error("generated file is stale", slog.String("file", path))
				stale++
			}
		}
		if stale > 0 {
			return 1
		}
		return 0
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		logger.Error("creating output dir failed", slog.Any("error", err))
		return 1
	}
	for _, f := range files {
		path := filepath.Join(out, f.Name)
		if err := os.WriteFile(path, f.Source, 0o644); err != nil {
			logger.Error("writing output failed", slog.String("file", path), slog.Any("error", err))
			return 1
		}
		logger.Debug("wrote file", slog.String("file", path))
	}
	return 0
}
