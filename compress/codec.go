package compress

import (
	"fmt"

	"github.com/arloliu/microdots/errs"
	"github.com/arloliu/microdots/format"
)

// Compressor compresses a pattern payload.
//
// The returned slice is newly allocated and owned by the caller; the input
// slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a pattern payload compressed by the matching
// Compressor. It returns an error for corrupted or incompatible data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// ForType returns the codec for the given compression type tag.
func ForType(t format.CompressionType) (Codec, error) {
	switch t {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("compression type %d: %w", t, errs.ErrInvalidCompression)
	}
}
