package csrfile_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvspmv/csrfile"
	"github.com/katalvlaran/lvspmv/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func fixture(t *testing.T, n int, density float64) *sparse.CSR {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	mat := make([]float64, n*n)
	for i := range mat {
		if rng.Float64() < density {
			mat[i] = rng.Float64()*20 - 10
		}
	}
	c, err := sparse.FromDense(n, mat)
	require.NoError(t, err)

	return c
}

func TestRoundTripAllCompressions(t *testing.T) {
	src := fixture(t, 64, 0.2)
	for _, comp := range []csrfile.Compression{csrfile.CompressionNone, csrfile.CompressionZSTD, csrfile.CompressionLZ4} {
		t.Run(comp.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, csrfile.Write(&buf, src, comp))

			got, err := csrfile.Read(&buf)
			require.NoError(t, err)
			assert.True(t, src.Equal(got))
			assert.Equal(t, src.Fingerprint(), got.Fingerprint())
		})
	}
}

func TestRoundTripEmptyAndZero(t *testing.T) {
	empty, err := sparse.FromDense(0, nil)
	require.NoError(t, err)
	zero, err := sparse.FromDense(3, make([]float64, 9))
	require.NoError(t, err)

	for _, c := range []*sparse.CSR{empty, zero} {
		for _, comp := range []csrfile.Compression{csrfile.CompressionNone, csrfile.CompressionZSTD, csrfile.CompressionLZ4} {
			var buf bytes.Buffer
			require.NoError(t, csrfile.Write(&buf, c, comp))
			got, err := csrfile.Read(&buf)
			require.NoError(t, err, "n=%d comp=%s", c.Dim(), comp)
			assert.True(t, c.Equal(got))
		}
	}
}

func TestRoundTripSmallSections(t *testing.T) {
	// Row pointer sections of 16, 1024 and 1032 bytes straddle the
	// encoder's single-segment threshold.
	for _, n := range []int{1, 127, 128} {
		src := fixture(t, n, 0.05)
		for _, comp := range []csrfile.Compression{csrfile.CompressionZSTD, csrfile.CompressionLZ4} {
			var buf bytes.Buffer
			require.NoError(t, csrfile.Write(&buf, src, comp))
			got, err := csrfile.Read(&buf)
			require.NoError(t, err, "n=%d comp=%s", n, comp)
			assert.True(t, src.Equal(got))
		}
	}
}

func TestReadForwardsOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csrfile.Write(&buf, fixture(t, 8, 0.5), csrfile.CompressionNone))

	got, err := csrfile.Read(&buf, sparse.WithValidation(true))
	require.NoError(t, err)
	assert.True(t, got.Validating())
}

func TestWriteFileReadFile(t *testing.T) {
	src := fixture(t, 32, 0.3)
	path := filepath.Join(t.TempDir(), "m.csr")

	require.NoError(t, csrfile.WriteFile(path, src, csrfile.CompressionZSTD))
	got, err := csrfile.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, src.Equal(got))

	_, err = csrfile.ReadFile(filepath.Join(t.TempDir(), "missing.csr"))
	assert.Error(t, err)
}

func TestWriteErrors(t *testing.T) {
	c := fixture(t, 4, 0.5)
	var buf bytes.Buffer

	err := csrfile.Write(&buf, c, csrfile.Compression(9))
	assert.ErrorIs(t, err, csrfile.ErrCompression)

	c.Release()
	err = csrfile.Write(&buf, c, csrfile.CompressionNone)
	assert.ErrorIs(t, err, sparse.ErrReleased)
}

func TestReadCorruption(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csrfile.Write(&buf, fixture(t, 16, 0.4), csrfile.CompressionNone))
	good := buf.Bytes()

	t.Run("magic", func(t *testing.T) {
		b := bytes.Clone(good)
		b[0] = 'X'
		_, err := csrfile.Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, csrfile.ErrFormat)
	})
	t.Run("version", func(t *testing.T) {
		b := bytes.Clone(good)
		binary.LittleEndian.PutUint32(b[8:], 99)
		_, err := csrfile.Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, csrfile.ErrFormat)
	})
	t.Run("compression", func(t *testing.T) {
		b := bytes.Clone(good)
		binary.LittleEndian.PutUint32(b[12:], 42)
		_, err := csrfile.Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, csrfile.ErrCompression)
	})
	t.Run("checksum", func(t *testing.T) {
		b := bytes.Clone(good)
		b[len(b)-1] ^= 0xFF
		_, err := csrfile.Read(bytes.NewReader(b))
		assert.ErrorIs(t, err, csrfile.ErrChecksum)
	})
	t.Run("truncated", func(t *testing.T) {
		_, err := csrfile.Read(bytes.NewReader(good[:len(good)-3]))
		assert.ErrorIs(t, err, csrfile.ErrFormat)
	})
	t.Run("oversized header", func(t *testing.T) {
		const n = uint64(1) << 40
		for _, comp := range []csrfile.Compression{csrfile.CompressionNone, csrfile.CompressionZSTD, csrfile.CompressionLZ4} {
			for _, stored := range []uint64{4, (n + 1) * 8} {
				b := []byte("LVCSR\x00\x00\x00")
				b = binary.LittleEndian.AppendUint32(b, csrfile.Version)
				b = binary.LittleEndian.AppendUint32(b, uint32(comp))
				b = binary.LittleEndian.AppendUint64(b, n)
				b = binary.LittleEndian.AppendUint64(b, 0)
				b = binary.LittleEndian.AppendUint32(b, 1)
				b = binary.LittleEndian.AppendUint32(b, 0)
				b = binary.LittleEndian.AppendUint64(b, (n+1)*8)
				b = binary.LittleEndian.AppendUint64(b, stored)
				b = binary.LittleEndian.AppendUint64(b, 0)
				b = append(b, 0xde, 0xad, 0xbe, 0xef)

				_, err := csrfile.Read(bytes.NewReader(b))
				require.Error(t, err, "comp=%s stored=%d", comp, stored)
				assert.True(t, errors.Is(err, csrfile.ErrFormat) || errors.Is(err, csrfile.ErrChecksum),
					"comp=%s stored=%d: %v", comp, stored, err)
			}
		}
	})
	t.Run("empty", func(t *testing.T) {
		_, err := csrfile.Read(bytes.NewReader(nil))
		assert.ErrorIs(t, err, csrfile.ErrFormat)
	})
}

// rawSnapshot hand-assembles an uncompressed snapshot without going through
// the CSR constructors, so structurally invalid arrays can be encoded.
func rawSnapshot(n int, rowPtr, colInd []int, values []float64) []byte {
	out := []byte("LVCSR\x00\x00\x00")
	out = binary.LittleEndian.AppendUint32(out, csrfile.Version)
	out = binary.LittleEndian.AppendUint32(out, uint32(csrfile.CompressionNone))
	out = binary.LittleEndian.AppendUint64(out, uint64(n))
	out = binary.LittleEndian.AppendUint64(out, uint64(len(values)))

	section := func(kind uint32, words []uint64) {
		var raw []byte
		for _, w := range words {
			raw = binary.LittleEndian.AppendUint64(raw, w)
		}
		out = binary.LittleEndian.AppendUint32(out, kind)
		out = binary.LittleEndian.AppendUint32(out, 0)
		out = binary.LittleEndian.AppendUint64(out, uint64(len(raw)))
		out = binary.LittleEndian.AppendUint64(out, uint64(len(raw)))
		out = binary.LittleEndian.AppendUint64(out, xxh3.Hash(raw))
		out = append(out, raw...)
	}
	ints := func(v []int) []uint64 {
		w := make([]uint64, len(v))
		for i, x := range v {
			w[i] = uint64(int64(x))
		}
		return w
	}
	floats := make([]uint64, len(values))
	for i, v := range values {
		floats[i] = math.Float64bits(v)
	}
	section(1, ints(rowPtr))
	section(2, ints(colInd))
	section(3, floats)

	return out
}

func TestReadHandAssembled(t *testing.T) {
	ok := rawSnapshot(2, []int{0, 1, 2}, []int{1, 0}, []float64{3, 4})
	c, err := csrfile.Read(bytes.NewReader(ok))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, c.RowPtr())
	assert.Equal(t, []int{1, 0}, c.ColInd())
	assert.Equal(t, []float64{3, 4}, c.Values())

	bad := rawSnapshot(2, []int{0, 1, 2}, []int{2, 0}, []float64{3, 4})
	_, err = csrfile.Read(bytes.NewReader(bad))
	assert.ErrorIs(t, err, sparse.ErrMalformed)

	tooMany := rawSnapshot(1, []int{0, 2}, []int{0, 0}, []float64{1, 1})
	_, err = csrfile.Read(bytes.NewReader(tooMany))
	assert.ErrorIs(t, err, csrfile.ErrFormat)
}

func TestParseCompression(t *testing.T) {
	cases := map[string]csrfile.Compression{
		"":     csrfile.CompressionNone,
		"none": csrfile.CompressionNone,
		"ZSTD": csrfile.CompressionZSTD,
		" lz4": csrfile.CompressionLZ4,
	}
	for in, want := range cases {
		got, err := csrfile.ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" {
			assert.Equal(t, want.String(), got.String())
		}
	}

	_, err := csrfile.ParseCompression("gzip")
	assert.ErrorIs(t, err, csrfile.ErrCompression)
	assert.Equal(t, "Compression(7)", csrfile.Compression(7).String())
}
