package persist

import (
	"fmt"
	"io"

	"github.com/arloliu/microdots/bitmatrix"
	"github.com/arloliu/microdots/compress"
	"github.com/arloliu/microdots/errs"
	"github.com/arloliu/microdots/format"
	"github.com/arloliu/microdots/internal/hash"
	"github.com/arloliu/microdots/internal/options"
	"github.com/arloliu/microdots/internal/pool"
)

type marshalConfig struct {
	compression format.CompressionType
}

// Option configures pattern file marshalling.
type Option = options.Option[*marshalConfig]

// WithCompression selects the payload compression. The default is
// format.CompressionNone.
func WithCompression(t format.CompressionType) Option {
	return options.New(func(cfg *marshalConfig) error {
		if !t.IsValid() {
			return fmt.Errorf("compression type %d: %w", t, errs.ErrInvalidCompression)
		}
		cfg.compression = t

		return nil
	})
}

// Marshal serializes the matrix into the binary pattern file format.
func Marshal(m *bitmatrix.BitMatrix, opts ...Option) ([]byte, error) {
	cfg := &marshalConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.ForType(cfg.compression)
	if err != nil {
		return nil, err
	}

	packed := pool.GetBuffer()
	defer pool.PutBuffer(packed)
	packCells(m, packed)

	payload, err := codec.Compress(packed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	h := Header{
		Rows:        uint32(m.Rows()),
		Cols:        uint32(m.Cols()),
		Compression: cfg.compression,
		PayloadLen:  uint32(len(payload)),
		Digest:      hash.Digest(packed.Bytes()),
	}

	out := make([]byte, 0, format.HeaderSize+len(payload))
	out = h.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// Unmarshal deserializes a binary pattern file into a matrix.
func Unmarshal(data []byte) (*bitmatrix.BitMatrix, error) {
	if len(data) < format.HeaderSize {
		return nil, fmt.Errorf("got %d bytes: %w", len(data), errs.ErrInvalidHeaderSize)
	}

	var h Header
	if err := h.Parse(data[:format.HeaderSize]); err != nil {
		return nil, err
	}

	payload := data[format.HeaderSize:]
	if len(payload) != int(h.PayloadLen) {
		return nil, fmt.Errorf("payload is %d bytes, header records %d: %w",
			len(payload), h.PayloadLen, errs.ErrInvalidPayload)
	}

	codec, err := compress.ForType(h.Compression)
	if err != nil {
		return nil, err
	}

	packed, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	cells := int(h.Rows) * int(h.Cols)
	if len(packed) != packedLen(cells) {
		return nil, fmt.Errorf("packed payload is %d bytes for %d cells: %w",
			len(packed), cells, errs.ErrInvalidPayload)
	}
	if hash.Digest(packed) != h.Digest {
		return nil, errs.ErrDigestMismatch
	}

	return unpackCells(int(h.Rows), int(h.Cols), packed), nil
}

// Save writes the matrix to w in the binary pattern file format.
func Save(w io.Writer, m *bitmatrix.BitMatrix, opts ...Option) error {
	data, err := Marshal(m, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write pattern file: %w", err)
	}

	return nil
}

// Load reads a binary pattern file from r.
func Load(r io.Reader) (*bitmatrix.BitMatrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}

	return Unmarshal(data)
}

func packedLen(cells int) int {
	return (cells + 3) / 4
}

// packCells appends the matrix cells to buf, four 2-bit cells per byte in
// row-major order, least significant pair first.
func packCells(m *bitmatrix.BitMatrix, buf *pool.ByteBuffer) {
	var cur byte
	var n int
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			cur |= m.Cell(y, x) << (2 * (n % 4))
			n++
			if n%4 == 0 {
				_ = buf.WriteByte(cur)
				cur = 0
			}
		}
	}
	if n%4 != 0 {
		_ = buf.WriteByte(cur)
	}
}

func unpackCells(rows, cols int, packed []byte) *bitmatrix.BitMatrix {
	m := bitmatrix.New(rows, cols)
	var n int
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.SetCell(y, x, packed[n/4]>>(2*(n%4))&3)
			n++
		}
	}

	return m
}
