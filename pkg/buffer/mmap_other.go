// pkg/buffer/mmap_other.go

//go:build !unix

package buffer

import (
	"io"
	"os"
)

// Map reads the whole file into memory on platforms without mmap support.
func Map(f *os.File) (*Buffer, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return New(data), nil
}

func unmap(data []byte) error {
	return nil
}
