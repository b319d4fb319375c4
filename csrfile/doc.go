// Package csrfile persists CSR matrices so benchmark inputs can be reused
// across runs without regenerating and reconverting the dense source.
//
// Layout (little-endian):
//
//	magic    [8]byte  "LVCSR\0\0\0"
//	header   {Version u32, Compression u32, N u64, NNZ u64}
//	section  ×3 in order RowPtr, ColInd, Values:
//	         {Kind u32, Reserved u32, RawLen u64, StoredLen u64, Checksum u64}
//	         StoredLen bytes of payload
//
// RowPtr and ColInd are encoded as int64, Values as IEEE-754 bit patterns.
// Checksum is xxh3-64 of the raw (uncompressed) payload. Payloads are stored
// as-is or compressed with zstd or lz4 according to the header.
//
// Reading always re-validates the structure through sparse.FromParts, so a
// file that decodes cleanly but violates CSR invariants is rejected with
// sparse.ErrMalformed.
package csrfile
