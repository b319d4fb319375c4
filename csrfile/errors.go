package csrfile

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates a stream that is not a CSR snapshot or whose header
	// or section table is inconsistent.
	ErrFormat = errors.New("csrfile: invalid format")

	// ErrChecksum indicates a section whose xxh3 checksum does not match.
	ErrChecksum = errors.New("csrfile: checksum mismatch")

	// ErrCompression indicates an unknown compression identifier.
	ErrCompression = errors.New("csrfile: unknown compression")
)

// fileErrorf wraps err with an operation tag, preserving it via %w.
func fileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
