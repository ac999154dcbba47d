// pkg/buffer/mmap_unix.go

//go:build unix

package buffer

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Map maps the whole file read-only. Empty files yield an empty heap buffer
// because a zero-length mapping is invalid.
func Map(f *os.File) (*Buffer, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return New(nil), nil
	}
	if int64(int(size)) != size {
		return nil, errors.Errorf("%s is too large to map: %d bytes", f.Name(), size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %s", f.Name())
	}
	if err = unix.Madvise(data, unix.MADV_SEQUENTIAL); err != nil {
		logger.Debugf("madvise %s: %s", f.Name(), err)
	}
	return newMapped(data), nil
}

func unmap(data []byte) error {
	return unix.Munmap(data)
}
