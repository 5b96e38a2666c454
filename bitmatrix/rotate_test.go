package bitmatrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A quarter turn moves cells counterclockwise and remaps each cell's dot
// displacement one direction step back.
func TestRot90SingleTurn(t *testing.T) {
	m := New(2, 2)
	m.SetCell(0, 0, 0)
	m.SetCell(0, 1, 1)
	m.SetCell(1, 0, 2)
	m.SetCell(1, 1, 3)

	r := m.Rot90(1)
	require.Equal(t, uint8(3), r.Cell(0, 0))
	require.Equal(t, uint8(2), r.Cell(0, 1))
	require.Equal(t, uint8(1), r.Cell(1, 0))
	require.Equal(t, uint8(0), r.Cell(1, 1))
}

func TestRot90Identity(t *testing.T) {
	m := testPattern(3, 5)

	require.True(t, m.Equal(m.Rot90(0)))
	require.True(t, m.Equal(m.Rot90(4)))
	require.True(t, m.Equal(m.Rot90(1).Rot90(1).Rot90(1).Rot90(1)))
}

func TestRot90Composition(t *testing.T) {
	m := testPattern(4, 7)

	require.True(t, m.Rot90(2).Equal(m.Rot90(1).Rot90(1)))
	require.True(t, m.Rot90(3).Equal(m.Rot90(-1)))
	for k := 0; k < 4; k++ {
		require.True(t, m.Equal(m.Rot90(k).Rot90(4-k)), "k=%d", k)
	}
}

func TestRot90Shape(t *testing.T) {
	m := New(3, 7)

	r := m.Rot90(1)
	require.Equal(t, 7, r.Rows())
	require.Equal(t, 3, r.Cols())

	r = m.Rot90(2)
	require.Equal(t, 3, r.Rows())
	require.Equal(t, 7, r.Cols())
}

func testPattern(rows, cols int) *BitMatrix {
	m := New(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.SetCell(y, x, uint8((y*cols+x*3+1)&3))
		}
	}

	return m
}
