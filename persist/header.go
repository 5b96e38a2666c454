package persist

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/microdots/errs"
	"github.com/arloliu/microdots/format"
)

// Header is the fixed-size section at the start of a binary pattern file.
//
// Byte layout (little-endian):
//
//	 0:4   magic number "MDOT"
//	 4     format version
//	 5     compression type
//	 6:8   reserved
//	 8:12  rows
//	12:16  cols
//	16:20  stored payload length in bytes
//	20:24  reserved
//	24:32  xxHash64 digest of the packed, uncompressed payload
type Header struct {
	Rows        uint32
	Cols        uint32
	Compression format.CompressionType
	PayloadLen  uint32
	Digest      uint64
}

// AppendTo appends the marshalled header to buf and returns the extended
// slice.
func (h *Header) AppendTo(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, format.MagicNumber)
	buf = append(buf, format.Version, byte(h.Compression), 0, 0)
	buf = binary.LittleEndian.AppendUint32(buf, h.Rows)
	buf = binary.LittleEndian.AppendUint32(buf, h.Cols)
	buf = binary.LittleEndian.AppendUint32(buf, h.PayloadLen)
	buf = append(buf, 0, 0, 0, 0)
	buf = binary.LittleEndian.AppendUint64(buf, h.Digest)

	return buf
}

// Parse decodes the header from data, which must be exactly
// format.HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != format.HeaderSize {
		return fmt.Errorf("got %d bytes, want %d: %w", len(data), format.HeaderSize, errs.ErrInvalidHeaderSize)
	}
	if binary.LittleEndian.Uint32(data[0:4]) != format.MagicNumber {
		return errs.ErrInvalidMagic
	}
	if data[4] != format.Version {
		return fmt.Errorf("version %d: %w", data[4], errs.ErrUnsupportedVersion)
	}

	h.Compression = format.CompressionType(data[5])
	if !h.Compression.IsValid() {
		return fmt.Errorf("compression tag %d: %w", data[5], errs.ErrInvalidCompression)
	}

	h.Rows = binary.LittleEndian.Uint32(data[8:12])
	h.Cols = binary.LittleEndian.Uint32(data[12:16])
	h.PayloadLen = binary.LittleEndian.Uint32(data[16:20])
	h.Digest = binary.LittleEndian.Uint64(data[24:32])

	return nil
}
