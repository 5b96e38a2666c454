// Package errs defines the sentinel errors shared across the microdots
// packages.
//
// Errors fall into three tiers:
//
//   - Configuration errors surface when a Codec, Sequence or LookupTable is
//     constructed. They indicate an invalid embodiment and are never
//     deferred to a decode call.
//   - Decode errors surface per call and are always recoverable by the
//     caller, typically by retrying with a larger or cleaner capture.
//   - Pattern file errors surface when reading or writing persisted
//     patterns.
//
// All errors are plain sentinels; callers match them with errors.Is after
// unwrapping any contextual wrapping added at the call site.
package errs

import "errors"

// Configuration errors, reported at construction time.
var (
	// ErrDuplicateWindow indicates that a sequence contains the same
	// order-length cyclic window more than once, violating the
	// quasi-De-Bruijn property required for unambiguous decoding.
	ErrDuplicateWindow = errors.New("duplicate window in sequence")

	// ErrUnsupportedOrder indicates that no feedback polynomial is known
	// for the requested sequence order.
	ErrUnsupportedOrder = errors.New("unsupported sequence order")

	// ErrNotCoprime indicates that the secondary sequence lengths are not
	// pairwise coprime, so the Chinese Remainder solver cannot be built.
	ErrNotCoprime = errors.New("sequence lengths are not pairwise coprime")

	// ErrInvalidConfig indicates an inconsistent codec configuration, such
	// as mismatched sequence orders or a delta range that does not match
	// the prime factor basis.
	ErrInvalidConfig = errors.New("invalid codec configuration")

	// ErrSectionRange indicates a section coordinate outside the
	// representable address range of the codec.
	ErrSectionRange = errors.New("section coordinate out of range")
)

// Decode errors, reported per decode call.
var (
	// ErrTooSmall indicates that the bit matrix is smaller than the
	// minimum size required by the decode operation.
	ErrTooSmall = errors.New("bit matrix too small")

	// ErrInvalidWindow indicates that an observed window was not found in
	// the sequence lookup table, implying a corrupted or non-codeword
	// region.
	ErrInvalidWindow = errors.New("window not found in sequence")

	// ErrDeltaOutOfRange indicates that a difference between consecutive
	// sequence positions fell outside the configured delta range.
	ErrDeltaOutOfRange = errors.New("delta value out of range")

	// ErrChecksumMismatch indicates that the section address bits failed
	// consistency validation against the supplied position.
	ErrChecksumMismatch = errors.New("section checksum mismatch")

	// ErrAmbiguousOrientation indicates that zero or more than one of the
	// four candidate rotations decoded successfully.
	ErrAmbiguousOrientation = errors.New("ambiguous pattern orientation")
)

// Pattern file errors, reported by the persist package.
var (
	// ErrInvalidMagic indicates that the data does not start with the
	// pattern file magic number.
	ErrInvalidMagic = errors.New("invalid pattern file magic number")

	// ErrInvalidHeaderSize indicates a truncated pattern file header.
	ErrInvalidHeaderSize = errors.New("invalid pattern file header size")

	// ErrUnsupportedVersion indicates a pattern file version this library
	// cannot read.
	ErrUnsupportedVersion = errors.New("unsupported pattern file version")

	// ErrInvalidCompression indicates an unknown compression type tag.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrDigestMismatch indicates that the payload digest check failed,
	// implying a corrupted pattern file.
	ErrDigestMismatch = errors.New("payload digest mismatch")

	// ErrInvalidPayload indicates a payload whose size does not match the
	// dimensions recorded in the header.
	ErrInvalidPayload = errors.New("payload size does not match header")

	// ErrOutOfBounds indicates a sub-matrix region outside the source
	// matrix.
	ErrOutOfBounds = errors.New("region out of bounds")
)
