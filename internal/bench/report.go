// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lvspmv/check"
)

// Product names as they appear in reports and logs.
const (
	ProductBLAS     = "blas"
	ProductDense    = "dense"
	ProductExternal = "gonum-csr"
	ProductSparse   = "csr"
)

// ProductResult is one timed and checked matrix-vector product.
type ProductResult struct {
	Name  string
	Best  time.Duration
	Check check.Result
}

// Snapshot describes a verified write/read round trip of the CSR.
type Snapshot struct {
	Path        string
	Compression string
	Bytes       int64
	Took        time.Duration
}

// Report holds everything a run measured.
type Report struct {
	Size        int
	Density     float64
	Generated   int // cells the generator selected as non-zero
	NNZ         int // stored entries in the CSR
	Repeat      int
	CPU         CPUInfo
	Fingerprint uint64

	Generate  time.Duration
	Reference time.Duration // the BLAS product, best of Repeat
	Build     time.Duration
	Products  []ProductResult
	Snapshot  *Snapshot
}

// OK reports whether every checked product matched the reference.
func (r *Report) OK() bool {
	for _, p := range r.Products {
		if !p.Check.OK {
			return false
		}
	}

	return true
}

// Product returns the named result, if present.
func (r *Report) Product(name string) (ProductResult, bool) {
	for _, p := range r.Products {
		if p.Name == name {
			return p, true
		}
	}

	return ProductResult{}, false
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

func verdict(ok bool) string {
	if ok {
		return "Result is ok!"
	}

	return "Result is wrong!"
}

// WriteText prints the human-readable summary: sizes, timings in ms and one
// verdict line per checked product.
func (r *Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}

	cells := r.Size * r.Size
	pct := 0.0
	if cells > 0 {
		pct = float64(r.NNZ) / float64(cells) * 100
	}
	ew.printf("Host: %s\n", r.CPU)
	ew.printf("Matrix size: %d x %d (%d elements)\n", r.Size, r.Size, cells)
	ew.printf("%d non-zero elements (%.2f%%)\n", r.NNZ, pct)
	ew.printf("Fingerprint: %016x\n\n", r.Fingerprint)

	ew.printf("Dense computation\n-----------------\n")
	ew.printf("Time taken by BLAS dense product: %.3f ms\n", millis(r.Reference))
	if p, ok := r.Product(ProductDense); ok {
		ew.printf("Time taken by own dense product: %.3f ms\n", millis(p.Best))
		ew.printf("%s\n", verdict(p.Check.OK))
	}

	ew.printf("\nSparse computation\n------------------\n")
	ew.printf("Time taken by CSR conversion: %.3f ms\n", millis(r.Build))
	if r.Snapshot != nil {
		ew.printf("Snapshot %s (%s, %d bytes) verified in %.3f ms\n",
			r.Snapshot.Path, r.Snapshot.Compression, r.Snapshot.Bytes, millis(r.Snapshot.Took))
	}
	if p, ok := r.Product(ProductExternal); ok {
		ew.printf("Time taken by gonum sparse product: %.3f ms\n", millis(p.Best))
		ew.printf("%s\n", verdict(p.Check.OK))
	}
	if p, ok := r.Product(ProductSparse); ok {
		ew.printf("Time taken by CSR sparse product: %.3f ms\n", millis(p.Best))
		ew.printf("%s\n", verdict(p.Check.OK))
	}
	if r.Repeat > 1 {
		ew.printf("\n(product timings are the best of %d runs)\n", r.Repeat)
	}

	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
