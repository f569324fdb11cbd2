package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat ErrKind = iota // bad magic, version, tag, reference, or name
	ErrKindIO                    // read failure or truncated stream
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsFormat reports whether err is a format error.
func IsFormat(err error) bool {
	k, ok := KindOf(err)
	return ok && k == ErrKindFormat
}

// IsIO reports whether err is an I/O error.
func IsIO(err error) bool {
	k, ok := KindOf(err)
	return ok && k == ErrKindIO
}
