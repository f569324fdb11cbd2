/*
Package annoindex reads annotation index files: the compact binary summary of
which classes, fields and methods in a set of compiled classes carry which
annotations.

# Quick Start

Open an index file and look up a class:

	f, err := annoindex.Open("META-INF/annotations.idx")
	if err != nil {
	    log.Fatal(err)
	}
	rec, ok := f.Index.Get("com.example.Service")
	if ok {
	    fmt.Println(annoindex.Names(rec.ClassAnnotations()))
	}

Find every class carrying a class-level annotation:

	for _, rec := range f.Index.AnnotatedWith("javax.inject.Singleton") {
	    fmt.Println(rec.Name())
	}

# Formats

Index versions 2 and 3 (legacy flat layout) and 6 (cross-referenced tables)
are supported. Files may be stored plain or wrapped in gzip or zstd; Open
detects the wrapper from its magic bytes.

# Loading many files

OpenAll decodes independent files concurrently:

	files, err := annoindex.OpenAll(ctx, paths, annoindex.WithConcurrency(4))

# Error Handling

Decode failures are *types.Error values. Use types.IsFormat for malformed
content (bad magic, unsupported version, invalid tag, bad reference, limit
exceeded) and types.IsIO for truncated or unreadable input. A failed decode
never returns a partial index.

# Limits

Counts come straight off the wire, so every allocation is bounded by a
Limits value. DefaultLimits accepts every realistic index; use StrictLimits
for untrusted input:

	idx, err := annoindex.ReadBytes(data, annoindex.WithLimits(types.StrictLimits()))
*/
package annoindex
