package fs

import (
	"io"
	"os"
	"path/filepath"
)

// File is the subset of *os.File that WriteAtomic needs.
type File interface {
	io.WriteCloser
	Sync() error
}

// FileSystem is the set of operations WriteAtomic performs.
type FileSystem interface {
	Create(name string, perm os.FileMode) (File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	MkdirAll(path string, perm os.FileMode) error
}

// LocalFS is the operating system's file system.
type LocalFS struct{}

// Create truncates or creates name for writing.
func (LocalFS) Create(name string, perm os.FileMode) (File, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
}

func (LocalFS) Remove(name string) error                     { return os.Remove(name) }
func (LocalFS) Rename(oldpath, newpath string) error         { return os.Rename(oldpath, newpath) }
func (LocalFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

// Default is used when WriteAtomic gets a nil FileSystem.
var Default FileSystem = LocalFS{}

// TempName is the sibling WriteAtomic stages path in.
func TempName(path string) string { return path + ".tmp" }

// WriteAtomic replaces path with whatever write produces. The data goes to
// TempName(path) first and is renamed over path only after it has been
// synced and closed, so readers see either the old or the new file. On
// failure the staging file is removed.
func WriteAtomic(fsys FileSystem, path string, perm os.FileMode, write func(io.Writer) error) error {
	if fsys == nil {
		fsys = Default
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := TempName(path)
	f, err := fsys.Create(tmp, perm)
	if err != nil {
		return err
	}

	if err := stage(f, write); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}

// stage writes, syncs and closes f. f is closed on every path.
func stage(f File, write func(io.Writer) error) error {
	err := write(f)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
