// SPDX-License-Identifier: MIT
// Package: lvspmv/gen
//
// errors.go: sentinel errors for the gen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w; sentinels stay unformatted.
//   • Generators never panic at runtime; panics are confined to WithX
//     option constructors.

package gen

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a negative dimension or one whose square
// overflows the addressable range.
var ErrInvalidSize = errors.New("gen: invalid size")

// ErrInvalidDensity indicates a density outside the closed interval [0,1]
// (or NaN).
var ErrInvalidDensity = errors.New("gen: density out of range")

// genErrorf attaches method context to a sentinel.
func genErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
