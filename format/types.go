// Package format defines the shared constants and type tags of the pattern
// file format.
package format

// CompressionType identifies the compression applied to a pattern file
// payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsValid reports whether the compression type is a known tag.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Pattern file framing constants.
const (
	// MagicNumber marks the start of a binary pattern file ("MDOT" in
	// little-endian byte order).
	MagicNumber uint32 = 0x544F444D

	// Version is the current pattern file format version.
	Version uint8 = 1

	// HeaderSize is the fixed size of the pattern file header in bytes.
	HeaderSize = 32
)
