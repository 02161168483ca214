// Package mmap maps input files read-only into memory so large corpora and
// snapshots are decoded without first being copied onto the Go heap.
//
//	err := mmap.View("statutes.lxsn", mmap.Sequential, func(b []byte) error {
//		docs, err := snapshot.Read(bytes.NewReader(b))
//		...
//	})
//
// Unix uses mmap(2) and madvise(2). Windows uses a file mapping view, where
// hints are ignored.
package mmap
