package annoindex

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/joshuapare/annoindex/internal/format"
	"github.com/joshuapare/annoindex/internal/reader"
	"github.com/joshuapare/annoindex/pkg/dotname"
	"github.com/joshuapare/annoindex/pkg/types"
)

// Read decodes one uncompressed index from r. When r implements
// io.ByteReader it is left positioned just past the index. Any other reader
// is buffered, so bytes after the index may be consumed as well.
func Read(r io.Reader, opts ...Option) (*Index, error) {
	o := newOptions(opts)
	idx, stats, err := reader.Decode(r, o.limits)
	if err != nil {
		return nil, err
	}
	logStats(o.logger, "", stats)
	return idx, nil
}

// ReadBytes decodes one uncompressed index held in memory.
func ReadBytes(b []byte, opts ...Option) (*Index, error) {
	return Read(bytes.NewReader(b), opts...)
}

// Names returns the display strings of names.
func Names(names []*dotname.Name) []string {
	return types.Strings(names)
}

func logStats(l *slog.Logger, path string, s reader.Stats) {
	attrs := []any{
		slog.Int("version", s.Version),
		slog.Int("classes", s.Classes),
		slog.Int("names", s.Names),
		slog.Int("strings", s.Strings),
		slog.Int("annotations", s.Annotations),
		slog.Int64("bytes", s.Consumed),
	}
	if s.Version == format.CurrentVersion {
		attrs = append(attrs,
			slog.Int("types", s.Types),
			slog.Int("type_lists", s.TypeLists),
			slog.Int("methods", s.Methods),
			slog.Int("fields", s.Fields),
		)
	}
	if path != "" {
		attrs = append([]any{slog.String("path", path)}, attrs...)
	}
	l.Debug("decoded index", attrs...)
}
