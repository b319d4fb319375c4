// SPDX-License-Identifier: MIT

package sparse

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// fingerprintChunk is the number of 8-byte words staged per hasher write.
const fingerprintChunk = 512

// Fingerprint returns an xxh3 hash of n, RowPtr, ColInd and the bit patterns
// of Values. Equal matrices (see Equal) have equal fingerprints, which lets
// reports and snapshot files identify a structure without comparing arrays.
// A released matrix hashes as n=0 with no arrays.
// Complexity: O(n + nnz).
func (c *CSR) Fingerprint() uint64 {
	h := xxh3.New()
	buf := make([]byte, 0, 8*fingerprintChunk)

	flush := func() {
		_, _ = h.Write(buf) // hash.Hash never returns an error
		buf = buf[:0]
	}
	put := func(w uint64) {
		buf = binary.LittleEndian.AppendUint64(buf, w)
		if len(buf) == cap(buf) {
			flush()
		}
	}

	put(uint64(c.n))
	for _, p := range c.rowPtr {
		put(uint64(p))
	}
	for _, j := range c.colInd {
		put(uint64(j))
	}
	for _, v := range c.values {
		put(math.Float64bits(v))
	}
	flush()

	return h.Sum64()
}
