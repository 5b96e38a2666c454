package codec

import (
	"fmt"

	"github.com/arloliu/microdots/bitmatrix"
	"github.com/arloliu/microdots/errs"
)

// DecodePosition decodes the location of the matrix's top-left corner
// within its section.
//
// Both dimensions must be at least Order(); otherwise errs.ErrTooSmall is
// returned. The order×order corner is decoded per axis: each column's
// channel-A window (and each row's channel-B window) is located in the MNS,
// the differences between adjacent locations are validated against the
// delta range and split into secondary sequence windows, and the Chinese
// Remainder solver combines the secondary locations into the axis
// coordinate.
func (c *Codec) DecodePosition(m *bitmatrix.BitMatrix) (Position, error) {
	if err := c.checkSize(m); err != nil {
		return Position{}, err
	}

	x, err := c.decodeAxis(m, c.columnWindow)
	if err != nil {
		return Position{}, fmt.Errorf("x axis: %w", err)
	}

	y, err := c.decodeAxis(m, c.rowWindow)
	if err != nil {
		return Position{}, fmt.Errorf("y axis: %w", err)
	}

	return Position{X: x, Y: y}, nil
}

// DecodeSection decodes the section address of the matrix, given the
// position previously decoded from it.
//
// The supplied position is validated by re-deriving it from the matrix;
// errs.ErrChecksumMismatch is returned if the two disagree. Size and window
// requirements match DecodePosition.
func (c *Codec) DecodeSection(m *bitmatrix.BitMatrix, pos Position) (Section, error) {
	if err := c.checkSize(m); err != nil {
		return Section{}, err
	}

	derived, err := c.DecodePosition(m)
	if err != nil {
		return Section{}, err
	}
	if derived != pos {
		return Section{}, fmt.Errorf("supplied position %s does not match pattern position %s: %w",
			pos, derived, errs.ErrChecksumMismatch)
	}

	pxIdx, ok := c.mnsLookup.Find(c.columnWindow(m, 0))
	if !ok {
		return Section{}, fmt.Errorf("first column: %w", errs.ErrInvalidWindow)
	}
	pyIdx, ok := c.mnsLookup.Find(c.rowWindow(m, 0))
	if !ok {
		return Section{}, fmt.Errorf("first row: %w", errs.ErrInvalidWindow)
	}

	// The first-column MNS offset is the section roll plus the integrated
	// delta rolls up to pos.X plus the vertical offset pos.Y; undo the
	// latter two. Symmetric for rows.
	length := int64(c.mns.Len())
	u := (int64(pxIdx) - int64(pos.Y) - c.rollAt(pos.X)) % length
	v := (int64(pyIdx) - int64(pos.X) - c.rollAt(pos.Y)) % length

	return Section{
		X: int((u + length) % length),
		Y: int((v + length) % length),
	}, nil
}

// DecodeRotation determines the orientation of the matrix in 90°
// counterclockwise steps, where 0 means canonical orientation.
//
// The four candidate rotations of the largest square corner are tried in
// turn; a candidate validates when at least half of its full-height
// channel-A columns and half of its full-width channel-B rows occur in the
// MNS. Exactly one candidate must validate, otherwise
// errs.ErrAmbiguousOrientation is returned.
func (c *Codec) DecodeRotation(m *bitmatrix.BitMatrix) (Rotation, error) {
	size := min(m.Rows(), m.Cols())
	if size < c.order {
		return 0, fmt.Errorf("matrix %dx%d below %dx%d: %w",
			m.Rows(), m.Cols(), c.order, c.order, errs.ErrTooSmall)
	}

	square, err := m.Sub(0, 0, size, size)
	if err != nil {
		return 0, err
	}

	matched := -1
	for k := 0; k < 4; k++ {
		if !c.orientationValid(square.Rot90(k)) {
			continue
		}
		if matched >= 0 {
			return 0, fmt.Errorf("rotations %d and %d both decode: %w",
				(4-matched)%4, (4-k)%4, errs.ErrAmbiguousOrientation)
		}
		matched = k
	}
	if matched < 0 {
		return 0, fmt.Errorf("no rotation decodes: %w", errs.ErrAmbiguousOrientation)
	}

	return Rotation((4 - matched) % 4), nil
}

// orientationValid counts how many full-length channel-A columns and
// channel-B rows of the square matrix occur in the MNS.
func (c *Codec) orientationValid(m *bitmatrix.BitMatrix) bool {
	size := m.Rows()
	column := make([]uint8, size)
	row := make([]uint8, size)

	var colsOK, rowsOK int
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a, _ := m.Bits(j, i)
			column[j] = a
			_, b := m.Bits(i, j)
			row[j] = b
		}
		if _, ok := c.mnsLookup.Find(column); ok {
			colsOK++
		}
		if _, ok := c.mnsLookup.Find(row); ok {
			rowsOK++
		}
	}

	return colsOK >= size/2 && rowsOK >= size/2
}

// decodeAxis decodes one coordinate from the order×order corner, reading
// windows through the given extractor.
func (c *Codec) decodeAxis(m *bitmatrix.BitMatrix, window func(*bitmatrix.BitMatrix, int) []uint8) (int, error) {
	length := int64(c.mns.Len())

	locs := make([]int64, c.order)
	for i := 0; i < c.order; i++ {
		loc, ok := c.mnsLookup.Find(window(m, i))
		if !ok {
			return 0, fmt.Errorf("window %d: %w", i, errs.ErrInvalidWindow)
		}
		locs[i] = int64(loc)
	}

	digits := make([][]uint8, c.snsOrder)
	for i := 0; i < c.snsOrder; i++ {
		d := ((locs[i+1]-locs[i])%length + length) % length
		if d < c.deltaMin || d > c.deltaMax {
			return 0, fmt.Errorf("delta %d at window %d outside [%d, %d]: %w",
				d, i, c.deltaMin, c.deltaMax, errs.ErrDeltaOutOfRange)
		}
		digits[i] = c.basis.Project(d - c.deltaMin)
	}

	remainders := make([]int64, len(c.sns))
	snsWindow := make([]uint8, c.snsOrder)
	for j := range c.sns {
		for i := 0; i < c.snsOrder; i++ {
			snsWindow[i] = digits[i][j]
		}
		p, ok := c.snsLookup[j].Find(snsWindow)
		if !ok {
			return 0, fmt.Errorf("secondary sequence %d: %w", j+1, errs.ErrInvalidWindow)
		}
		remainders[j] = int64(p)
	}

	return int(c.crt.Solve(remainders)), nil
}

// columnWindow extracts the order-length channel-A window running down
// column x.
func (c *Codec) columnWindow(m *bitmatrix.BitMatrix, x int) []uint8 {
	w := make([]uint8, c.order)
	for y := 0; y < c.order; y++ {
		a, _ := m.Bits(y, x)
		w[y] = a
	}

	return w
}

// rowWindow extracts the order-length channel-B window running along row
// y.
func (c *Codec) rowWindow(m *bitmatrix.BitMatrix, y int) []uint8 {
	w := make([]uint8, c.order)
	for x := 0; x < c.order; x++ {
		_, b := m.Bits(y, x)
		w[x] = b
	}

	return w
}

func (c *Codec) checkSize(m *bitmatrix.BitMatrix) error {
	if m.Rows() < c.order || m.Cols() < c.order {
		return fmt.Errorf("matrix %dx%d below %dx%d: %w",
			m.Rows(), m.Cols(), c.order, c.order, errs.ErrTooSmall)
	}

	return nil
}
