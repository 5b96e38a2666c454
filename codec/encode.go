package codec

import (
	"fmt"

	"github.com/arloliu/microdots/bitmatrix"
	"github.com/arloliu/microdots/errs"
)

// EncodeBitMatrix generates the rows×cols bit matrix of the pattern whose
// top-left corner sits at position (0,0) of the given section.
//
// Channel A of column x carries the MNS rolled by an offset that starts at
// the section x coordinate and advances by the delta code between adjacent
// columns; channel B mirrors the construction across rows with the section
// y coordinate. Any non-negative shape is valid; a section outside
// [0, SectionExtent())² returns errs.ErrSectionRange.
func (c *Codec) EncodeBitMatrix(rows, cols int, section Section) (*bitmatrix.BitMatrix, error) {
	extent := c.SectionExtent()
	if section.X < 0 || section.X >= extent || section.Y < 0 || section.Y >= extent {
		return nil, fmt.Errorf("section %s outside [0,%d)x[0,%d): %w",
			section, extent, extent, errs.ErrSectionRange)
	}

	m := bitmatrix.New(rows, cols)

	// x direction: one MNS roll per column on channel A.
	roll := section.X
	for x := 0; x < cols; x++ {
		if x > 0 {
			roll = (roll + int(c.delta(int64(x-1)))) % extent
		}
		for y := 0; y < rows; y++ {
			m.SetBits(y, x, c.mns.At(y+roll), 0)
		}
	}

	// y direction: one MNS roll per row on channel B.
	roll = section.Y
	for y := 0; y < rows; y++ {
		if y > 0 {
			roll = (roll + int(c.delta(int64(y-1)))) % extent
		}
		for x := 0; x < cols; x++ {
			a, _ := m.Bits(y, x)
			m.SetBits(y, x, a, c.mns.At(x+roll))
		}
	}

	return m, nil
}
