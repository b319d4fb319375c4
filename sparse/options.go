// SPDX-License-Identifier: MIT

// Package sparse: functional configuration.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - The default is the fast path; debug checks are strictly opt-in.

package sparse

// DefaultValidation leaves structural validation off: the builder produces
// valid structure by construction and the kernel does not re-check it.
const DefaultValidation = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	validate bool // DefaultValidation
}

// WithValidation toggles debug mode.
//
// When enabled:
//   - FromDense checks n and len(mat) >= n*n before scanning
//     (ErrDimensionMismatch instead of a runtime panic).
//   - the built CSR runs Validate after construction and before every
//     MulVec/MulVecTo, surfacing ErrMalformed.
//
// Complexity: adds O(n + nnz) per product when enabled.
func WithValidation(enabled bool) Option {
	return func(o *options) { o.validate = enabled }
}

// gatherOptions resolves defaults and applies opts in order (later wins).
func gatherOptions(opts ...Option) options {
	o := options{validate: DefaultValidation}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
