// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a Config rejected by Validate.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrSnapshotMismatch indicates a snapshot that did not read back as the
	// matrix that was written.
	ErrSnapshotMismatch = errors.New("bench: snapshot mismatch")
)

func configErrorf(field string, v any) error {
	return fmt.Errorf("%s=%v: %w", field, v, ErrInvalidConfig)
}
