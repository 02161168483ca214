package mmap

import (
	"errors"
	"math"
	"os"
	"sync"
)

var (
	// ErrUnmapped is returned by File methods after Close.
	ErrUnmapped = errors.New("mmap: file already unmapped")
	// ErrTooLarge is returned for files that do not fit the address space.
	ErrTooLarge = errors.New("mmap: file too large to map")
)

// Hint tells the kernel how mapped pages will be read.
type Hint uint8

const (
	Normal Hint = iota
	// Sequential pages are read once, front to back.
	Sequential
	// WillNeed pages are prefetched.
	WillNeed
)

// File is a read-only view of a whole file.
type File struct {
	mu      sync.Mutex
	data    []byte
	release func() error // nil for empty files and after Close
	done    bool
}

// Open maps path. An empty file yields a File with no data.
func Open(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > math.MaxInt {
		return nil, ErrTooLarge
	}
	if info.Size() == 0 {
		return &File{}, nil
	}

	data, release, err := mapFile(fd, int(info.Size()))
	if err != nil {
		return nil, err
	}
	return &File{data: data, release: release}, nil
}

// View maps path, applies hint and hands the contents to fn. The mapping is
// released when fn returns, so fn must copy anything it keeps.
func View(path string, hint Hint, fn func([]byte) error) (err error) {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_ = f.Advise(hint)

	return fn(f.data)
}

// Data returns the mapped bytes. The slice is invalid after Close.
func (f *File) Data() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return nil
	}
	return f.data
}

// Len reports the mapped length.
func (f *File) Len() int { return len(f.data) }

// Advise passes hint to the kernel.
func (f *File) Advise(hint Hint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return ErrUnmapped
	}
	if len(f.data) == 0 {
		return nil
	}
	return advise(f.data, hint)
}

// Close releases the mapping. Calling it again is a no-op.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return nil
	}
	f.done = true
	release := f.release
	f.release = nil
	if release == nil {
		return nil
	}
	return release()
}
