// Package fs writes snapshot files atomically and lets tests break that
// path on purpose.
//
// WriteAtomic stages output in a sibling file, syncs it and renames it over
// the destination. FaultyFS wraps a FileSystem and fails chosen operations:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.FailWritesAfter(".tmp", 1024, nil)
//	err := fs.WriteAtomic(ffs, path, 0o644, write)
package fs
