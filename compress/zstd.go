package compress

// ZstdCodec compresses payloads with Zstandard, the best-ratio option for
// archived patterns.
//
// The implementation is selected at build time: cgo builds use the
// libzstd-backed valyala/gozstd, pure Go builds use klauspost/compress.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
