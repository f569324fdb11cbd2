package annoindex

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/annoindex/internal/blobcodec"
	"github.com/joshuapare/annoindex/internal/mmfile"
	"github.com/joshuapare/annoindex/internal/reader"
)

// File is an index loaded from disk.
type File struct {
	// Path is the path the file was opened from.
	Path string
	// Digest is the sha256 digest of the file as stored, before any
	// decompression.
	Digest digest.Digest
	// Size is the stored size in bytes.
	Size int64
	// Codec is the compression found around the index.
	Codec string
	// Index is the decoded content.
	Index *Index
}

// Open maps the file at path, removes any gzip or zstd wrapper, and decodes
// the index. The mapping is released before Open returns.
func Open(path string, opts ...Option) (*File, error) {
	o := newOptions(opts)
	return open(path, o)
}

func open(path string, o options) (*File, error) {
	data, release, err := mmfile.Map(path, o.limits.MaxIndexBytes)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	defer func() {
		if err := release(); err != nil {
			o.logger.Warn("unmap index", slog.String("path", path), slog.Any("error", err))
		}
	}()

	f := &File{
		Path:   path,
		Digest: digest.FromBytes(data),
		Size:   int64(len(data)),
	}
	blob, codec, err := blobcodec.Unwrap(data, o.limits.MaxIndexBytes)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	f.Codec = codec.String()

	idx, stats, err := reader.Decode(bytes.NewReader(blob), o.limits)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	f.Index = idx
	o.logger.Debug("opened index",
		slog.String("path", path),
		slog.String("digest", f.Digest.String()),
		slog.String("codec", f.Codec),
		slog.Int64("size", f.Size),
	)
	logStats(o.logger, path, stats)
	return f, nil
}

// OpenAll opens every path concurrently and returns the files in the order
// of paths. The first failure cancels the files not yet started and is
// returned alone.
func OpenAll(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	o := newOptions(opts)
	files := make([]*File, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := open(path, o)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return files, nil
}
