package format

import "errors"

var (
	// ErrBadMagic indicates the blob did not start with Magic.
	ErrBadMagic = errors.New("format: bad magic")
	// ErrUnsupportedVersion indicates a version byte no decoder handles.
	ErrUnsupportedVersion = errors.New("format: unsupported version")
	// ErrInvalidTag indicates an unknown value, target, or type tag.
	ErrInvalidTag = errors.New("format: invalid tag")
	// ErrBadReference indicates a table reference outside the decoded table.
	ErrBadReference = errors.New("format: reference out of range")
	// ErrPackedOverflow indicates a packed integer above 2^31-1 or longer than 5 bytes.
	ErrPackedOverflow = errors.New("format: packed integer overflow")
	// ErrLimitExceeded indicates a table or string larger than the configured limits.
	ErrLimitExceeded = errors.New("format: limit exceeded")
	// ErrTooDeep indicates annotation values nested beyond the configured depth.
	ErrTooDeep = errors.New("format: annotation values nested too deep")
)
