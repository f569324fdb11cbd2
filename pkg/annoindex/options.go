package annoindex

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/joshuapare/annoindex/pkg/dotname"
	"github.com/joshuapare/annoindex/pkg/types"
)

// Index is the decoded, read-only mapping from class name to record.
type Index = types.Index

// ClassRecord is the annotation summary of one class.
type ClassRecord = types.ClassRecord

// Limits bounds allocations made while decoding.
type Limits = types.Limits

// Name is a qualified class name.
type Name = dotname.Name

// Option configures Read, ReadBytes, Open and OpenAll.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	limits      Limits
	concurrency int
}

func newOptions(opts []Option) options {
	o := options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		limits:      types.DefaultLimits(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sends debug records about each decode to l. By default nothing
// is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLimits replaces DefaultLimits.
func WithLimits(l Limits) Option {
	return func(o *options) { o.limits = l }
}

// WithConcurrency bounds the number of files OpenAll decodes at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
