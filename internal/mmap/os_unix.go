//go:build unix

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(fd *os.File, n int) ([]byte, func() error, error) {
	b, err := unix.Mmap(int(fd.Fd()), 0, n, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return b, func() error { return unix.Munmap(b) }, nil
}

var madvice = [...]int{
	Normal:     unix.MADV_NORMAL,
	Sequential: unix.MADV_SEQUENTIAL,
	WillNeed:   unix.MADV_WILLNEED,
}

func advise(b []byte, hint Hint) error {
	flag := unix.MADV_NORMAL
	if int(hint) < len(madvice) {
		flag = madvice[hint]
	}
	// EINVAL only means the kernel rejected the range; reading still works.
	if err := unix.Madvise(b, flag); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
