package csrfile

import (
	"fmt"
	"strings"
)

// Version is the current on-disk format version.
const Version uint32 = 1

var magic = [8]byte{'L', 'V', 'C', 'S', 'R', 0, 0, 0}

// Section kinds, written in this order.
const (
	kindRowPtr uint32 = 1
	kindColInd uint32 = 2
	kindValues uint32 = 3
)

// wordSize is the encoded size of every element (int64 / float64 bits).
const wordSize = 8

type fileHeader struct {
	Version     uint32
	Compression uint32
	N           uint64
	NNZ         uint64
}

type sectionHeader struct {
	Kind      uint32
	Reserved  uint32
	RawLen    uint64
	StoredLen uint64
	Checksum  uint64
}

// Compression selects how section payloads are stored.
type Compression uint32

const (
	// CompressionNone stores payloads verbatim.
	CompressionNone Compression = iota
	// CompressionZSTD stores payloads zstd-compressed (better ratio).
	CompressionZSTD
	// CompressionLZ4 stores payloads lz4-compressed (faster decode).
	CompressionLZ4
)

// String returns the flag spelling: "none", "zstd" or "lz4".
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint32(c))
	}
}

// ParseCompression maps "none", "zstd" or "lz4" (case-insensitive; "" means
// none) to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZSTD, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrCompression)
	}
}

func (c Compression) valid() bool { return c <= CompressionLZ4 }
