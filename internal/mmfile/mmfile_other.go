//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file where mmap is not available.
func Map(path string, maxBytes int64) ([]byte, Release, error) {
	if maxBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, noRelease, err
		}
		if info.Size() > maxBytes {
			return nil, noRelease, fmt.Errorf("%s: %d bytes exceeds %d: %w", path, info.Size(), maxBytes, ErrTooLarge)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noRelease, err
	}
	return data, noRelease, nil
}
