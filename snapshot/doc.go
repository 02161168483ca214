// Package snapshot persists an indexed corpus to a byte stream and reads it
// back.
//
// Only documents are stored; postings are rebuilt by re-indexing on
// restore, which keeps the format independent of index internals.
//
// # Format
//
//	magic       [4]byte "LXSN"
//	version     uint8   (1)
//	compression uint8   (0 none, 1 lz4, 2 zstd)
//	codecLen    uint8
//	codec       [codecLen]byte, e.g. "go-json"
//	body        codec-encoded {"documents": [...]}, compressed as declared
//
// The header is self-describing, so Read needs no options.
package snapshot
