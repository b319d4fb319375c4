package csrfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvspmv/sparse"
	"github.com/zeebo/xxh3"
)

const (
	opWrite     = "Write"
	opWriteFile = "WriteFile"
)

// Write serializes c to w using the given payload compression.
//
// Errors:
//   - sparse.ErrReleased for a released matrix; ErrCompression for an
//     unknown comp; I/O and compressor errors are wrapped as-is.
//
// Complexity: O(n + nnz) time and one raw payload buffer at a time.
func Write(w io.Writer, c *sparse.CSR, comp Compression) error {
	if c == nil || c.Released() {
		return fileErrorf(opWrite, sparse.ErrReleased)
	}
	if !comp.valid() {
		return fileErrorf(opWrite, fmt.Errorf("%d: %w", uint32(comp), ErrCompression))
	}

	if _, err := w.Write(magic[:]); err != nil {
		return fileErrorf(opWrite, err)
	}
	hdr := fileHeader{
		Version:     Version,
		Compression: uint32(comp),
		N:           uint64(c.Dim()),
		NNZ:         uint64(c.NNZ()),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fileErrorf(opWrite, err)
	}

	if err := writeSection(w, comp, kindRowPtr, encodeInts(c.RowPtr())); err != nil {
		return fileErrorf(opWrite, err)
	}
	if err := writeSection(w, comp, kindColInd, encodeInts(c.ColInd())); err != nil {
		return fileErrorf(opWrite, err)
	}
	if err := writeSection(w, comp, kindValues, encodeFloats(c.Values())); err != nil {
		return fileErrorf(opWrite, err)
	}

	return nil
}

// WriteFile writes c to path, creating or truncating it.
func WriteFile(path string, c *sparse.CSR, comp Compression) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fileErrorf(opWriteFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileErrorf(opWriteFile, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = Write(bw, c, comp); err != nil {
		return fileErrorf(opWriteFile, err)
	}
	if err = bw.Flush(); err != nil {
		return fileErrorf(opWriteFile, err)
	}

	return nil
}

func writeSection(w io.Writer, comp Compression, kind uint32, raw []byte) error {
	stored, err := encode(comp, raw)
	if err != nil {
		return fmt.Errorf("section %d: %w", kind, err)
	}
	sh := sectionHeader{
		Kind:      kind,
		RawLen:    uint64(len(raw)),
		StoredLen: uint64(len(stored)),
		Checksum:  xxh3.Hash(raw),
	}
	if err = binary.Write(w, binary.LittleEndian, &sh); err != nil {
		return err
	}
	_, err = w.Write(stored)

	return err
}

func encodeInts(v []int) []byte {
	out := make([]byte, 0, len(v)*wordSize)
	for _, x := range v {
		out = binary.LittleEndian.AppendUint64(out, uint64(int64(x)))
	}

	return out
}

func encodeFloats(v []float64) []byte {
	out := make([]byte, 0, len(v)*wordSize)
	for _, x := range v {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(x))
	}

	return out
}
