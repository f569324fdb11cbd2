// Package mmfile maps index files into memory for decoding.
package mmfile

import "errors"

// ErrTooLarge is returned when a file exceeds the caller's size bound.
var ErrTooLarge = errors.New("mmfile: file too large")

// Release unmaps data returned by Map. It is safe to call more than once.
type Release func() error

func noRelease() error { return nil }
