// Package microdots encodes and decodes 2-D positions with the Anoto
// microdot scheme.
//
// A printed surface carries a regular grid of dots, each displaced in one
// of four directions around its nominal position. Any photographed patch of
// at least 6×6 dots decodes back into an absolute position, the address of
// the enclosing section tile, and the orientation of the capture.
//
// # Basic Usage
//
// Encoding a pattern and decoding a captured patch:
//
//	cdc, _ := microdots.NewAnoto6x6()
//
//	// Generate an 11×16 bit matrix for section (10, 2).
//	g, _ := cdc.EncodeBitMatrix(11, 16, microdots.Section{X: 10, Y: 2})
//
//	// Decode a 6×6 patch whose corner is at (7, 3).
//	sub, _ := g.Sub(3, 7, 6, 6)
//	pos, _ := cdc.DecodePosition(sub) // (7, 3)
//	sec, _ := cdc.DecodeSection(sub, pos) // (10, 2)
//
//	// A larger patch also reveals the capture orientation.
//	r, _ := g.Sub(3, 7, 8, 8)
//	rot, _ := cdc.DecodeRotation(r) // 0°
//
// Persisting patterns:
//
//	data, _ := microdots.Marshal(g, persist.WithCompression(format.CompressionZstd))
//	g2, _ := microdots.Unmarshal(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// persist packages. For fine-grained control (custom sequences, generated
// embodiments, JSON interchange) use the codec, sequence and persist
// packages directly.
package microdots

import (
	"github.com/arloliu/microdots/bitmatrix"
	"github.com/arloliu/microdots/codec"
	"github.com/arloliu/microdots/persist"
	"github.com/arloliu/microdots/sequence"
)

type (
	// Codec encodes and decodes microdot patterns for one embodiment.
	Codec = codec.Codec
	// Position is an offset within a section, in grid cells.
	Position = codec.Position
	// Section identifies a tile of the infinite dot plane.
	Section = codec.Section
	// Rotation is a pattern orientation in 90° counterclockwise steps.
	Rotation = codec.Rotation
	// BitMatrix is a grid of 2-bit dot cells.
	BitMatrix = bitmatrix.BitMatrix
)

// NewAnoto6x6 creates the reference Anoto 6x6 embodiment.
func NewAnoto6x6() (*Codec, error) {
	return codec.NewAnoto6x6()
}

// GenerateSequence produces a deterministic binary maximal-length sequence
// of the given order for custom embodiments.
func GenerateSequence(order int) (*sequence.Sequence, error) {
	return sequence.Generate(order)
}

// Marshal serializes a bit matrix into the binary pattern file format.
func Marshal(m *BitMatrix, opts ...persist.Option) ([]byte, error) {
	return persist.Marshal(m, opts...)
}

// Unmarshal deserializes a binary pattern file into a bit matrix.
func Unmarshal(data []byte) (*BitMatrix, error) {
	return persist.Unmarshal(data)
}
