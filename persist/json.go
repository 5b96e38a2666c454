package persist

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/microdots/bitmatrix"
	"github.com/arloliu/microdots/errs"
)

// patternJSON is the interchange form of a bit matrix: one [bitA, bitB]
// pair per cell in row-major order.
type patternJSON struct {
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
	Cells [][][2]uint8 `json:"cells"`
}

// MarshalJSON serializes the matrix into the JSON interchange form.
func MarshalJSON(m *bitmatrix.BitMatrix) ([]byte, error) {
	p := patternJSON{
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Cells: make([][][2]uint8, m.Rows()),
	}
	for y := 0; y < m.Rows(); y++ {
		row := make([][2]uint8, m.Cols())
		for x := 0; x < m.Cols(); x++ {
			a, b := m.Bits(y, x)
			row[x] = [2]uint8{a, b}
		}
		p.Cells[y] = row
	}

	return json.MarshalIndent(p, "", "  ")
}

// UnmarshalJSON deserializes the JSON interchange form into a matrix.
func UnmarshalJSON(data []byte) (*bitmatrix.BitMatrix, error) {
	var p patternJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pattern JSON: %w", err)
	}
	if p.Rows < 0 || p.Cols < 0 || len(p.Cells) != p.Rows {
		return nil, fmt.Errorf("cell rows %d for shape %dx%d: %w",
			len(p.Cells), p.Rows, p.Cols, errs.ErrInvalidPayload)
	}

	m := bitmatrix.New(p.Rows, p.Cols)
	for y, row := range p.Cells {
		if len(row) != p.Cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w",
				y, len(row), p.Cols, errs.ErrInvalidPayload)
		}
		for x, cell := range row {
			if cell[0] > 1 || cell[1] > 1 {
				return nil, fmt.Errorf("cell (%d,%d) bits [%d,%d]: %w",
					y, x, cell[0], cell[1], errs.ErrInvalidPayload)
			}
			m.SetBits(y, x, cell[0], cell[1])
		}
	}

	return m, nil
}
