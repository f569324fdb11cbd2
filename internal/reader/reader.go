// Package reader decodes annotation index blobs into a types.Index. The
// exported entry points are used by the public annoindex package and the CLI
// without exposing the table machinery directly.
//
// Every decode owns its stream, its tables, and its memoization caches, so
// independent blobs can be decoded concurrently while a single blob is always
// read strictly in order.
package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/packed"
	"github.com/joshuapare/annoindex/pkg/dotname"
	"github.com/joshuapare/annoindex/pkg/types"
)

// Stats describes the tables of a decoded blob.
type Stats struct {
	Version     int
	Classes     int
	Names       int
	Strings     int
	Bytes       int
	Types       int
	TypeLists   int
	Methods     int
	Fields      int
	Annotations int
	Consumed    int64
}

// Decode reads a complete blob from r: magic, version, then the tables of
// that version. Any failure aborts the decode; no partial index is returned.
func Decode(r io.Reader, limits types.Limits) (*types.Index, Stats, error) {
	return DecodeStream(packed.NewStream(r), limits)
}

// DecodeStream is Decode over an existing stream positioned at byte 0.
func DecodeStream(s *packed.Stream, limits types.Limits) (*types.Index, Stats, error) {
	version, err := readHeader(s)
	if err != nil {
		return nil, Stats{}, classify(err)
	}
	idx, stats, err := DecodeTables(s, version, limits)
	if err != nil {
		return nil, Stats{}, err
	}
	return idx, stats, nil
}

// DecodeTables decodes the tables of the given version from s, which must be
// positioned immediately after the magic and version byte.
func DecodeTables(s *packed.Stream, version int, limits types.Limits) (*types.Index, Stats, error) {
	var (
		records []*types.ClassRecord
		stats   Stats
		err     error
	)
	switch {
	case version >= format.MinLegacyVersion && version <= format.MaxLegacyVersion:
		d := newLegacyDecoder(s, version, limits)
		records, err = d.decode()
		stats = d.stats
	case version == format.CurrentVersion:
		d := newCurrentDecoder(s, limits)
		records, err = d.decode()
		stats = d.stats
	default:
		err = fmt.Errorf("version %d: %w", version, format.ErrUnsupportedVersion)
	}
	if err != nil {
		return nil, Stats{}, classify(err)
	}
	stats.Version = version
	stats.Classes = len(records)
	stats.Consumed = s.Offset()
	return types.NewIndex(version, records), stats, nil
}

func readHeader(s *packed.Stream) (int, error) {
	magic, err := s.ReadU32()
	if err != nil {
		return 0, fmt.Errorf("magic: %w", err)
	}
	if magic != format.Magic {
		return 0, fmt.Errorf("magic 0x%08X: %w", magic, format.ErrBadMagic)
	}
	version, err := s.ReadU8()
	if err != nil {
		return 0, fmt.Errorf("version: %w", err)
	}
	return int(version), nil
}

var formatErrors = []error{
	format.ErrBadMagic,
	format.ErrUnsupportedVersion,
	format.ErrInvalidTag,
	format.ErrBadReference,
	format.ErrPackedOverflow,
	format.ErrLimitExceeded,
	format.ErrTooDeep,
	dotname.ErrInvalidName,
}

// classify wraps err in a *types.Error carrying its category.
func classify(err error) error {
	var te *types.Error
	if errors.As(err, &te) {
		return err
	}
	for _, target := range formatErrors {
		if errors.Is(err, target) {
			return &types.Error{Kind: types.ErrKindFormat, Msg: "decode index", Err: err}
		}
	}
	return &types.Error{Kind: types.ErrKindIO, Msg: "read index", Err: err}
}

// ref returns table[idx] or a format.ErrBadReference naming the table.
func ref[T any](table []T, idx uint32, what string) (T, error) {
	if int64(idx) >= int64(len(table)) {
		var zero T
		return zero, fmt.Errorf("%s %d (table has %d slots): %w", what, idx, len(table), format.ErrBadReference)
	}
	return table[idx], nil
}

// orPlaceholder maps the nil of a reserved slot to the placeholder name.
func orPlaceholder(n *dotname.Name) *dotname.Name {
	if n == nil {
		return dotname.Placeholder()
	}
	return n
}
