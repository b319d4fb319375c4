// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/katalvlaran/lvspmv/check"
	"github.com/katalvlaran/lvspmv/csrfile"
	"github.com/katalvlaran/lvspmv/gen"
	"github.com/katalvlaran/lvspmv/matrix"
	"github.com/katalvlaran/lvspmv/sparse"
)

// Run executes one benchmark described by cfg.
//
// Phases run strictly one after another; ctx is checked between phases so a
// cancelled run stops at the next boundary. A nil logger disables logging.
//
// Errors:
//   - ErrInvalidConfig for a bad cfg.
//   - ctx.Err() after cancellation.
//   - ErrSnapshotMismatch or wrapped csrfile errors for the snapshot phase.
//   - wrapped gen/matrix/sparse/check errors (unexpected for a valid cfg).
//
// A wrong product is not an error; see Report.OK.
func Run(ctx context.Context, cfg Config, logger *Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if logger == nil {
		logger = NoopLogger()
	}
	log := logger.WithRun(cfg)
	n := cfg.Size

	rep := &Report{
		Size:    n,
		Density: cfg.Density,
		Repeat:  cfg.Repeat,
		CPU:     DetectCPU(),
	}

	// Phase 1: inputs.
	start := time.Now()
	a, generated, err := gen.SparseMatrix(n, cfg.Density, gen.WithSeed(cfg.MatrixSeed))
	if err != nil {
		log.LogGenerate(ctx, 0, 0, err)
		return nil, fmt.Errorf("Run: %w", err)
	}
	x, err := gen.Vector(n, gen.WithSeed(cfg.VectorSeed))
	if err != nil {
		log.LogGenerate(ctx, 0, 0, err)
		return nil, fmt.Errorf("Run: %w", err)
	}
	rep.Generate = time.Since(start)
	rep.Generated = generated
	log.LogGenerate(ctx, generated, rep.Generate, nil)

	if err = run(ctx, cfg, log, rep, a, x); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return rep, nil
}

func run(ctx context.Context, cfg Config, log *Logger, rep *Report, a, x []float64) error {
	n := cfg.Size
	if err := ctx.Err(); err != nil {
		return err
	}

	// Phase 2: BLAS reference.
	ref := make([]float64, n)
	best, err := bestOf(cfg.Repeat, func() error {
		if n > 0 {
			denseBLASTo(n, a, x, ref)
		}
		return nil
	})
	if err != nil {
		return err
	}
	rep.Reference = best
	log.LogKernel(ctx, ProductBLAS, best, cfg.Repeat, nil)
	if err = ctx.Err(); err != nil {
		return err
	}

	// Phase 3: own dense product.
	dense, err := matrix.NewDenseFrom(n, n, a)
	if err != nil {
		return err
	}
	y := make([]float64, n)
	if err = timeProduct(ctx, cfg, log, rep, ProductDense, ref, y, func() error {
		return matrix.MatVecTo(y, dense, x)
	}); err != nil {
		return err
	}

	// Phase 4: CSR conversion.
	start := time.Now()
	c, err := sparse.FromDense(n, a, sparse.WithValidation(cfg.Debug))
	rep.Build = time.Since(start)
	if err != nil {
		log.LogBuild(ctx, 0, 0, err)
		return err
	}
	defer c.Release()
	rep.NNZ = c.NNZ()
	rep.Fingerprint = c.Fingerprint()
	log.LogBuild(ctx, rep.NNZ, rep.Build, nil)
	if err = ctx.Err(); err != nil {
		return err
	}

	// Phase 5: optional snapshot round trip; later products use the copy
	// read back from disk.
	if cfg.SnapshotPath != "" {
		back, snap, err := snapshot(cfg, c)
		log.LogSnapshot(ctx, cfg.SnapshotPath, sizeOf(snap), tookOf(snap), err)
		if err != nil {
			return err
		}
		defer back.Release()
		rep.Snapshot = snap
		c = back
		if err = ctx.Err(); err != nil {
			return err
		}
	}

	// Phase 6: gonum over the CSR.
	if err = timeProduct(ctx, cfg, log, rep, ProductExternal, ref, y, func() error {
		if n > 0 {
			sparseExternalTo(c, x, y)
		}
		return nil
	}); err != nil {
		return err
	}

	// Phase 7: CSR kernel.
	return timeProduct(ctx, cfg, log, rep, ProductSparse, ref, y, func() error {
		return c.MulVecTo(y, x)
	})
}

// timeProduct times fn into y, checks y against ref and records the result.
// y is filled with NaN first so a kernel that skips writes cannot pass on a
// previous product's output.
func timeProduct(ctx context.Context, cfg Config, log *Logger, rep *Report,
	name string, ref, y []float64, fn func() error) error {
	for i := range y {
		y[i] = math.NaN()
	}
	best, err := bestOf(cfg.Repeat, fn)
	log.LogKernel(ctx, name, best, cfg.Repeat, err)
	if err != nil {
		return err
	}
	res, err := check.Vectors(ref, y, cfg.Tolerance)
	if err != nil {
		return err
	}
	log.LogCheck(ctx, name, res.OK, res.Mismatches, res.MaxRelError)
	rep.Products = append(rep.Products, ProductResult{Name: name, Best: best, Check: res})

	return ctx.Err()
}

func snapshot(cfg Config, c *sparse.CSR) (*sparse.CSR, *Snapshot, error) {
	start := time.Now()
	if err := csrfile.WriteFile(cfg.SnapshotPath, c, cfg.Compression); err != nil {
		return nil, nil, err
	}
	back, err := csrfile.ReadFile(cfg.SnapshotPath, sparse.WithValidation(cfg.Debug))
	if err != nil {
		return nil, nil, err
	}
	took := time.Since(start)
	if back.Fingerprint() != c.Fingerprint() {
		back.Release()
		return nil, nil, fmt.Errorf("%s: %016x != %016x: %w",
			cfg.SnapshotPath, back.Fingerprint(), c.Fingerprint(), ErrSnapshotMismatch)
	}
	snap := &Snapshot{Path: cfg.SnapshotPath, Compression: cfg.Compression.String(), Took: took}
	if fi, err := os.Stat(cfg.SnapshotPath); err == nil {
		snap.Bytes = fi.Size()
	}

	return back, snap, nil
}

func sizeOf(s *Snapshot) int64 {
	if s == nil {
		return 0
	}
	return s.Bytes
}

func tookOf(s *Snapshot) time.Duration {
	if s == nil {
		return 0
	}
	return s.Took
}
