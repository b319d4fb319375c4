// Package gen provides deterministic random fixtures for SpMV benchmarking:
// square row-major matrices with a target density of non-zero cells, and
// dense vectors.
//
// The package offers the following key components:
//
//   - Generators:
//     – SparseMatrix(n, density): n×n buffer, each cell non-zero with
//     probability ≈ density (percent-granular trial), plus the count of
//     generated non-zero cells.
//     – Vector(n): n values drawn from the same value law.
//   - Value law: magnitude = k + u with k uniform in [0, MaxMagnitude) and
//     u uniform in [0,1), random sign; with the default MaxMagnitude=10 this
//     spans (−10, 10).
//   - Configuration primitives (functional options):
//     – WithSeed:         reproducible stream (seed 0 ⇒ DefaultSeed).
//     – WithRand:         caller-supplied *rand.Rand.
//     – WithMaxMagnitude: integer part bound of generated values.
//
// Guarantees:
//
//   - Determinism: a fixed seed and options yield identical output across runs.
//     Cells are visited in row-major order, one Bernoulli trial each.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid generator arguments return sentinel errors.
package gen
