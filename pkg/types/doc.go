// Package types defines the immutable result of decoding an annotation index
// and the typed errors and limits shared by the decoders.
//
// Design goals:
//   - Immutable results: records are fully built before an Index exists.
//   - Empty, never nil: absent annotation data reads as an empty slice.
//   - Typed errors with stable categories (format/io).
//   - Paranoid limits; never allocate from an unchecked count.
package types
