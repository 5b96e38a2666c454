package bitmatrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microdots/errs"
)

func TestNewShape(t *testing.T) {
	m := New(3, 5)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 5, m.Cols())

	m = New(-1, -4)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestBitsRoundTrip(t *testing.T) {
	m := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a := uint8((y + x) & 1)
			b := uint8(y & 1)
			m.SetBits(y, x, a, b)

			gotA, gotB := m.Bits(y, x)
			require.Equal(t, a, gotA)
			require.Equal(t, b, gotB)
			require.Equal(t, a|b<<1, m.Cell(y, x))
		}
	}
}

func TestSetCellTruncates(t *testing.T) {
	m := New(1, 1)
	m.SetCell(0, 0, 7)
	require.Equal(t, uint8(3), m.Cell(0, 0))
}

func TestDirectionMapping(t *testing.T) {
	m := New(1, 4)
	for x, want := range []Direction{DirectionUp, DirectionRight, DirectionLeft, DirectionDown} {
		m.SetCell(0, x, uint8(x))
		require.Equal(t, want, m.Direction(0, x))
	}
}

func TestSub(t *testing.T) {
	m := New(4, 6)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			m.SetCell(y, x, uint8((y*6+x)&3))
		}
	}

	sub, err := m.Sub(1, 2, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 3, sub.Cols())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, m.Cell(y+1, x+2), sub.Cell(y, x))
		}
	}

	// Sub copies; writes must not leak back.
	sub.SetCell(0, 0, sub.Cell(0, 0)^3)
	require.NotEqual(t, m.Cell(1, 2), sub.Cell(0, 0))
}

func TestSubOutOfBounds(t *testing.T) {
	m := New(4, 4)
	for _, args := range [][4]int{
		{-1, 0, 2, 2},
		{0, -1, 2, 2},
		{3, 0, 2, 4},
		{0, 3, 4, 2},
		{0, 0, 5, 1},
	} {
		_, err := m.Sub(args[0], args[1], args[2], args[3])
		require.ErrorIs(t, err, errs.ErrOutOfBounds, "args %v", args)
	}
}

func TestCloneAndEqual(t *testing.T) {
	m := New(2, 3)
	m.SetCell(1, 2, 3)

	c := m.Clone()
	require.True(t, m.Equal(c))

	c.SetCell(0, 0, 1)
	require.False(t, m.Equal(c))
	require.Equal(t, uint8(0), m.Cell(0, 0))

	require.False(t, m.Equal(nil))
	require.False(t, m.Equal(New(3, 2)))
}
