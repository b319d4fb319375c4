// Command spmvbench compares a dense matrix-vector product against the CSR
// sparse kernel on a random matrix of configurable size and density.
//
// Usage:
//
//	spmvbench [flags] [size [density]]
//
// Positional size and density override -n and -density.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/katalvlaran/lvspmv/csrfile"
	"github.com/katalvlaran/lvspmv/internal/bench"
)

// options is everything the command line controls.
type options struct {
	cfg       bench.Config
	logFormat string
	verbose   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code: 0 when every
// product is correct, 1 on bad arguments, failures or wrong results.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "spmvbench:", err)
		return 1
	}

	rep, err := bench.Run(ctx, opts.cfg, newLogger(opts, stderr))
	if err != nil {
		fmt.Fprintln(stderr, "spmvbench:", err)
		return 1
	}
	if err = rep.WriteText(stdout); err != nil {
		fmt.Fprintln(stderr, "spmvbench:", err)
		return 1
	}
	if !rep.OK() {
		return 1
	}

	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{cfg: bench.DefaultConfig()}
	cfg := &opts.cfg

	fs := flag.NewFlagSet("spmvbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Size, "n", cfg.Size, "matrix dimension (n x n)")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "probability that a cell is non-zero, in [0,1]")
	fs.Int64Var(&cfg.MatrixSeed, "seed", cfg.MatrixSeed, "matrix generator seed")
	fs.Int64Var(&cfg.VectorSeed, "vseed", cfg.VectorSeed, "vector generator seed")
	fs.Float64Var(&cfg.Tolerance, "eps", cfg.Tolerance, "relative tolerance for result checks")
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "runs per product; the best time is reported")
	fs.BoolVar(&cfg.Debug, "validate", false, "enable CSR structure validation (debug mode)")
	fs.StringVar(&cfg.SnapshotPath, "snapshot", "", "write the CSR to this file and verify it reads back")
	compress := fs.String("compress", "none", "snapshot compression: none, zstd or lz4")
	fs.StringVar(&opts.logFormat, "log", "text", "log format: text or json")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: spmvbench [flags] [size [density]]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return opts, fmt.Errorf("too many arguments: %q", rest[2:])
	}
	if len(rest) >= 1 {
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return opts, fmt.Errorf("size %q: %w", rest[0], bench.ErrInvalidConfig)
		}
		cfg.Size = n
	}
	if len(rest) == 2 {
		d, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return opts, fmt.Errorf("density %q: %w", rest[1], bench.ErrInvalidConfig)
		}
		cfg.Density = d
	}

	comp, err := csrfile.ParseCompression(*compress)
	if err != nil {
		return opts, err
	}
	cfg.Compression = comp

	if opts.logFormat != "text" && opts.logFormat != "json" {
		return opts, fmt.Errorf("log format %q: %w", opts.logFormat, bench.ErrInvalidConfig)
	}

	return opts, cfg.Validate()
}

func newLogger(opts options, w io.Writer) *bench.Logger {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	if opts.logFormat == "json" {
		return bench.NewJSONLogger(w, level)
	}

	return bench.NewTextLogger(w, level)
}
