package csrfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvspmv/sparse"
	"github.com/zeebo/xxh3"
)

const (
	opRead     = "Read"
	opReadFile = "ReadFile"
)

// maxStoredOverhead bounds how much a compressed payload may exceed its raw
// size before the section is considered corrupt.
const maxStoredOverhead = 1 << 16

// Read decodes a snapshot written by Write. opts are forwarded to
// sparse.FromParts (e.g. sparse.WithValidation for later products); the
// structure itself is always validated.
//
// Errors:
//   - ErrFormat for bad magic, version, sizes or section order.
//   - ErrCompression for an unknown compression id.
//   - ErrChecksum for corrupted payloads.
//   - sparse.ErrMalformed when the decoded arrays violate CSR invariants.
func Read(r io.Reader, opts ...sparse.Option) (*sparse.CSR, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fileErrorf(opRead, fmt.Errorf("magic: %v: %w", err, ErrFormat))
	}
	if !bytes.Equal(head[:], magic[:]) {
		return nil, fileErrorf(opRead, fmt.Errorf("bad magic %q: %w", head[:], ErrFormat))
	}

	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fileErrorf(opRead, fmt.Errorf("header: %v: %w", err, ErrFormat))
	}
	if hdr.Version != Version {
		return nil, fileErrorf(opRead, fmt.Errorf("version %d: %w", hdr.Version, ErrFormat))
	}
	comp := Compression(hdr.Compression)
	if !comp.valid() {
		return nil, fileErrorf(opRead, fmt.Errorf("%d: %w", hdr.Compression, ErrCompression))
	}
	// n+1 and nnz words must be addressable; nnz cannot exceed n².
	const maxWords = math.MaxInt / wordSize
	if hdr.N >= maxWords || hdr.NNZ >= maxWords || (hdr.N > 0 && hdr.NNZ/hdr.N > hdr.N) || (hdr.N == 0 && hdr.NNZ != 0) {
		return nil, fileErrorf(opRead, fmt.Errorf("n=%d nnz=%d: %w", hdr.N, hdr.NNZ, ErrFormat))
	}
	n, nnz := int(hdr.N), int(hdr.NNZ)

	rawRowPtr, err := readSection(r, comp, kindRowPtr, (n+1)*wordSize)
	if err != nil {
		return nil, fileErrorf(opRead, err)
	}
	rawColInd, err := readSection(r, comp, kindColInd, nnz*wordSize)
	if err != nil {
		return nil, fileErrorf(opRead, err)
	}
	rawValues, err := readSection(r, comp, kindValues, nnz*wordSize)
	if err != nil {
		return nil, fileErrorf(opRead, err)
	}

	c, err := sparse.FromParts(n, decodeInts(rawRowPtr), decodeInts(rawColInd), decodeFloats(rawValues), opts...)
	if err != nil {
		return nil, fileErrorf(opRead, err)
	}

	return c, nil
}

// ReadFile reads a snapshot from path.
func ReadFile(path string, opts ...sparse.Option) (*sparse.CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileErrorf(opReadFile, err)
	}
	defer f.Close()

	c, err := Read(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, fileErrorf(opReadFile, err)
	}

	return c, nil
}

func readSection(r io.Reader, comp Compression, kind uint32, rawLen int) ([]byte, error) {
	var sh sectionHeader
	if err := binary.Read(r, binary.LittleEndian, &sh); err != nil {
		return nil, fmt.Errorf("section %d header: %v: %w", kind, err, ErrFormat)
	}
	if sh.Kind != kind {
		return nil, fmt.Errorf("section kind %d, want %d: %w", sh.Kind, kind, ErrFormat)
	}
	if sh.RawLen != uint64(rawLen) {
		return nil, fmt.Errorf("section %d raw length %d, want %d: %w", kind, sh.RawLen, rawLen, ErrFormat)
	}
	if sh.StoredLen > uint64(rawLen)+maxStoredOverhead {
		return nil, fmt.Errorf("section %d stored length %d: %w", kind, sh.StoredLen, ErrFormat)
	}

	// The buffer grows with the bytes that are really there, not with the
	// claimed length.
	var stored bytes.Buffer
	if _, err := io.CopyN(&stored, r, int64(sh.StoredLen)); err != nil {
		return nil, fmt.Errorf("section %d payload: %v: %w", kind, err, ErrFormat)
	}
	raw, err := decode(comp, stored.Bytes(), rawLen)
	if err != nil {
		return nil, fmt.Errorf("section %d decode: %v: %w", kind, err, ErrChecksum)
	}
	if len(raw) != rawLen {
		return nil, fmt.Errorf("section %d decoded %d bytes, want %d: %w", kind, len(raw), rawLen, ErrFormat)
	}
	if xxh3.Hash(raw) != sh.Checksum {
		return nil, fmt.Errorf("section %d: %w", kind, ErrChecksum)
	}

	return raw, nil
}

func decodeInts(b []byte) []int {
	out := make([]int, len(b)/wordSize)
	for i := range out {
		out[i] = int(int64(binary.LittleEndian.Uint64(b[i*wordSize:])))
	}

	return out
}

func decodeFloats(b []byte) []float64 {
	out := make([]float64, len(b)/wordSize)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*wordSize:]))
	}

	return out
}
