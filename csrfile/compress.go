package csrfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	lz4 "github.com/pierrec/lz4/v4"
)

const (
	// zstdWindow is the encoder window; decoders refuse larger frames.
	zstdWindow = 1 << 23

	// zstdMemoryFloor keeps tiny sections decodable: zstd raises small
	// windows to 1 KiB and checks them against the memory limit.
	zstdMemoryFloor = 1 << 16
)

// encode compresses raw according to comp.
// Empty payloads are stored empty whatever the compression.
func encode(comp Compression, raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	switch comp {
	case CompressionNone:
		return raw, nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithWindowSize(zstdWindow))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%d: %w", uint32(comp), ErrCompression)
	}
}

// decode reverses encode. rawLen comes from an untrusted header, so it only
// bounds the output: buffers grow with the bytes actually decoded and at most
// rawLen+1 bytes are produced. The caller checks the exact length.
func decode(comp Compression, stored []byte, rawLen int) ([]byte, error) {
	if len(stored) == 0 {
		return stored, nil
	}

	var src io.Reader
	switch comp {
	case CompressionNone:
		return stored, nil
	case CompressionZSTD:
		limit := uint64(rawLen) + 1
		if limit < zstdMemoryFloor {
			limit = zstdMemoryFloor
		}
		dec, err := zstd.NewReader(bytes.NewReader(stored),
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
			zstd.WithDecoderMaxWindow(zstdWindow),
			zstd.WithDecoderMaxMemory(limit),
		)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		src = dec
	case CompressionLZ4:
		src = lz4.NewReader(bytes.NewReader(stored))
	default:
		return nil, fmt.Errorf("%d: %w", uint32(comp), ErrCompression)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(src, int64(rawLen)+1)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
