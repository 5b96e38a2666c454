package bitmatrix

import (
	"fmt"

	"github.com/arloliu/microdots/errs"
)

// Direction is the physical displacement of a dot from its nominal grid
// position. The ordering is chosen so that a 90° counterclockwise rotation
// of the paper decrements a dot's direction by one (mod 4).
type Direction uint8

const (
	DirectionUp    Direction = 0
	DirectionLeft  Direction = 1
	DirectionDown  Direction = 2
	DirectionRight Direction = 3
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionLeft:
		return "Left"
	case DirectionDown:
		return "Down"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// num2dir maps a 2-bit cell value (bitA | bitB<<1) to its displacement
// direction; dir2num is its inverse.
var (
	num2dir = [4]Direction{DirectionUp, DirectionRight, DirectionLeft, DirectionDown}
	dir2num = [4]uint8{0, 2, 3, 1}
)

// BitMatrix is a rows×cols grid of dot cells, each holding two bits:
// channel A (bit 0) from the column sequence and channel B (bit 1) from the
// row sequence.
type BitMatrix struct {
	rows  int
	cols  int
	cells []uint8
}

// New creates a zeroed BitMatrix of the given shape. Negative dimensions
// are treated as zero.
func New(rows, cols int) *BitMatrix {
	rows = max(rows, 0)
	cols = max(cols, 0)

	return &BitMatrix{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *BitMatrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *BitMatrix) Cols() int {
	return m.cols
}

// Cell returns the packed 2-bit value of the cell at row y, column x.
func (m *BitMatrix) Cell(y, x int) uint8 {
	return m.cells[y*m.cols+x]
}

// SetCell stores a packed 2-bit value at row y, column x. Values above 3
// are truncated to their low two bits.
func (m *BitMatrix) SetCell(y, x int, v uint8) {
	m.cells[y*m.cols+x] = v & 3
}

// Bits returns the two channel bits of the cell at row y, column x.
func (m *BitMatrix) Bits(y, x int) (a, b uint8) {
	v := m.cells[y*m.cols+x]
	return v & 1, v >> 1
}

// SetBits stores the two channel bits of the cell at row y, column x.
func (m *BitMatrix) SetBits(y, x int, a, b uint8) {
	m.cells[y*m.cols+x] = a&1 | (b&1)<<1
}

// Direction returns the physical dot displacement of the cell at row y,
// column x.
func (m *BitMatrix) Direction(y, x int) Direction {
	return num2dir[m.cells[y*m.cols+x]]
}

// Sub returns a copy of the rows×cols region whose top-left corner is at
// row y0, column x0. Returns errs.ErrOutOfBounds if the region does not lie
// within the matrix.
func (m *BitMatrix) Sub(y0, x0, rows, cols int) (*BitMatrix, error) {
	if y0 < 0 || x0 < 0 || rows < 0 || cols < 0 || y0+rows > m.rows || x0+cols > m.cols {
		return nil, fmt.Errorf("region (%d,%d)+%dx%d of %dx%d matrix: %w",
			y0, x0, rows, cols, m.rows, m.cols, errs.ErrOutOfBounds)
	}

	sub := New(rows, cols)
	for y := 0; y < rows; y++ {
		copy(sub.cells[y*cols:(y+1)*cols], m.cells[(y0+y)*m.cols+x0:(y0+y)*m.cols+x0+cols])
	}

	return sub, nil
}

// Clone returns a deep copy of the matrix.
func (m *BitMatrix) Clone() *BitMatrix {
	c := &BitMatrix{rows: m.rows, cols: m.cols}
	c.cells = append([]uint8(nil), m.cells...)

	return c
}

// Equal reports whether two matrices have the same shape and cells.
func (m *BitMatrix) Equal(o *BitMatrix) bool {
	if o == nil || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.cells {
		if v != o.cells[i] {
			return false
		}
	}

	return true
}
