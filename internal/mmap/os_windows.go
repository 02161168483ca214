//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func mapFile(fd *os.File, n int) ([]byte, func() error, error) {
	handle, err := windows.CreateFileMapping(windows.Handle(fd.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, nil, err
	}
	// The view holds its own reference to the mapping object.
	defer windows.CloseHandle(handle)

	view, err := windows.MapViewOfFile(handle, windows.FILE_MAP_READ, 0, 0, uintptr(n))
	if err != nil {
		return nil, nil, err
	}

	b := unsafe.Slice((*byte)(unsafe.Pointer(view)), n)
	return b, func() error { return windows.UnmapViewOfFile(view) }, nil
}

func advise([]byte, Hint) error { return nil }
