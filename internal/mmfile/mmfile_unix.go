//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its contents. A positive
// maxBytes rejects larger files before mapping them.
func Map(path string, maxBytes int64) ([]byte, Release, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, noRelease, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, noRelease, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, noRelease, nil
	}
	if maxBytes > 0 && size > maxBytes {
		return nil, noRelease, fmt.Errorf("%s: %d bytes exceeds %d: %w", path, size, maxBytes, ErrTooLarge)
	}
	if size > int64(^uint(0)>>1) {
		return nil, noRelease, fmt.Errorf("%s: %d bytes: %w", path, size, ErrTooLarge)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, noRelease, fmt.Errorf("mmap %s: %w", path, err)
	}
	// Decoding walks the blob front to back.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return data, release, nil
}
