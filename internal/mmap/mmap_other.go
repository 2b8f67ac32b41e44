//go:build !unix

package mmap

import (
	"io"
	"os"
)

// Fallback for platforms without mmap: read the whole file into memory.
func mapFile(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func unmapFile([]byte) error {
	return nil
}
