// SPDX-License-Identifier: MIT

package bench

import (
	"math"

	"github.com/katalvlaran/lvspmv/check"
	"github.com/katalvlaran/lvspmv/csrfile"
)

// Defaults reproduce the classic benchmark setup.
const (
	DefaultSize       = 2048
	DefaultDensity    = 0.30
	DefaultMatrixSeed = 1
	DefaultVectorSeed = 2
	DefaultRepeat     = 1
)

// Config describes one benchmark run.
type Config struct {
	Size       int     // matrix dimension n (n×n), >= 0
	Density    float64 // probability that a cell is non-zero, in [0,1]
	MatrixSeed int64   // seed for the matrix generator
	VectorSeed int64   // seed for the vector generator
	Tolerance  float64 // relative tolerance for result checks

	// Repeat is how many times each product kernel runs; the best time wins.
	Repeat int

	// Debug turns on CSR debug validation for the build and the kernel.
	Debug bool

	// SnapshotPath, when set, makes the run write the CSR there and read it
	// back before the sparse products.
	SnapshotPath string
	Compression  csrfile.Compression
}

// DefaultConfig returns the standard 2048×2048, 30 % density run.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Density:    DefaultDensity,
		MatrixSeed: DefaultMatrixSeed,
		VectorSeed: DefaultVectorSeed,
		Tolerance:  check.DefaultEpsilon,
		Repeat:     DefaultRepeat,
	}
}

// Validate reports the first field that cannot drive a run.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return configErrorf("size", c.Size)
	case c.Size > 0 && c.Size > math.MaxInt/c.Size:
		return configErrorf("size", c.Size)
	case math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1:
		return configErrorf("density", c.Density)
	case math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0:
		return configErrorf("tolerance", c.Tolerance)
	case c.Repeat < 1:
		return configErrorf("repeat", c.Repeat)
	case c.Compression > csrfile.CompressionLZ4:
		return configErrorf("compression", c.Compression)
	}

	return nil
}
