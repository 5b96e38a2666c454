package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microdots/bitmatrix"
	"github.com/arloliu/microdots/errs"
)

func TestDecodeReferenceScenario(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	g, err := cdc.EncodeBitMatrix(9, 16, Section{X: 10, Y: 2})
	require.NoError(t, err)

	sub, err := g.Sub(3, 7, 6, 6)
	require.NoError(t, err)

	pos, err := cdc.DecodePosition(sub)
	require.NoError(t, err)
	require.Equal(t, Position{X: 7, Y: 3}, pos)

	sec, err := cdc.DecodeSection(sub, pos)
	require.NoError(t, err)
	require.Equal(t, Section{X: 10, Y: 2}, sec)

	// The rotation patch spans rows 3..11, so it comes from a taller
	// encoding of the same section; the overlapping cells are identical.
	tall, err := cdc.EncodeBitMatrix(11, 16, Section{X: 10, Y: 2})
	require.NoError(t, err)
	patch, err := tall.Sub(3, 7, 8, 8)
	require.NoError(t, err)

	rot, err := cdc.DecodeRotation(patch)
	require.NoError(t, err)
	require.Equal(t, Rotation0, rot)
}

func TestDecodePositionRoundTrip(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	m, err := cdc.EncodeBitMatrix(100, 100, Section{X: 5, Y: 10})
	require.NoError(t, err)

	for y := 0; y <= 90; y += 10 {
		for x := 0; x <= 90; x += 10 {
			sub, err := m.Sub(y, x, 6, 6)
			require.NoError(t, err)

			pos, err := cdc.DecodePosition(sub)
			require.NoError(t, err)
			require.Equal(t, Position{X: x, Y: y}, pos)
		}
	}
}

func TestDecodeSectionRoundTrip(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	sections := []Section{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 10, Y: 5},
		{X: 62, Y: 30},
	}
	for _, section := range sections {
		m, err := cdc.EncodeBitMatrix(50, 50, section)
		require.NoError(t, err)

		for _, corner := range []Position{{X: 5, Y: 15}, {X: 25, Y: 5}, {X: 40, Y: 40}} {
			sub, err := m.Sub(corner.Y, corner.X, 6, 6)
			require.NoError(t, err)

			pos, err := cdc.DecodePosition(sub)
			require.NoError(t, err)
			require.Equal(t, corner, pos)

			sec, err := cdc.DecodeSection(sub, pos)
			require.NoError(t, err)
			require.Equal(t, section, sec, "corner %s", corner)
		}
	}
}

func TestDecodeSectionChecksumMismatch(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	g, err := cdc.EncodeBitMatrix(9, 16, Section{X: 10, Y: 2})
	require.NoError(t, err)
	sub, err := g.Sub(3, 7, 6, 6)
	require.NoError(t, err)

	_, err = cdc.DecodeSection(sub, Position{X: 8, Y: 3})
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecodeRotationRecovery(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	m, err := cdc.EncodeBitMatrix(30, 30, Section{X: 7, Y: 3})
	require.NoError(t, err)
	sample, err := m.Sub(5, 5, 8, 8)
	require.NoError(t, err)

	for k := 0; k < 4; k++ {
		rot, err := cdc.DecodeRotation(sample.Rot90(k))
		require.NoError(t, err, "k=%d", k)
		require.Equal(t, Rotation(k), rot)
	}
}

// Decoding a physically rotated capture after rotating it back must agree
// with decoding the canonical patch.
func TestDecodeRotatedCapture(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	m, err := cdc.EncodeBitMatrix(30, 30, Section{X: 7, Y: 3})
	require.NoError(t, err)
	sample, err := m.Sub(5, 5, 8, 8)
	require.NoError(t, err)

	captured := sample.Rot90(3)
	rot, err := cdc.DecodeRotation(captured)
	require.NoError(t, err)
	require.Equal(t, Rotation270, rot)

	restored := captured.Rot90(-int(rot))
	require.True(t, sample.Equal(restored))

	pos, err := cdc.DecodePosition(restored)
	require.NoError(t, err)
	require.Equal(t, Position{X: 5, Y: 5}, pos)
}

func TestDecodePositionTooSmall(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	for _, shape := range [][2]int{{5, 8}, {8, 5}, {0, 0}} {
		_, err := cdc.DecodePosition(bitmatrix.New(shape[0], shape[1]))
		require.ErrorIs(t, err, errs.ErrTooSmall, "shape %v", shape)
	}

	_, err = cdc.DecodeSection(bitmatrix.New(4, 9), Position{})
	require.ErrorIs(t, err, errs.ErrTooSmall)

	_, err = cdc.DecodeRotation(bitmatrix.New(5, 9))
	require.ErrorIs(t, err, errs.ErrTooSmall)
}

func TestDecodePositionInvalidWindow(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	// All-ones channel A never occurs in the MNS.
	m := bitmatrix.New(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			m.SetBits(y, x, 1, 0)
		}
	}

	_, err = cdc.DecodePosition(m)
	require.ErrorIs(t, err, errs.ErrInvalidWindow)
}

func TestDecodePositionDeltaOutOfRange(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	// All-zero columns all locate at MNS index 0, so every adjacent
	// difference is zero, below the legal delta range.
	_, err = cdc.DecodePosition(bitmatrix.New(6, 6))
	require.ErrorIs(t, err, errs.ErrDeltaOutOfRange)
}

func TestDecodeRotationAmbiguous(t *testing.T) {
	cdc, err := NewAnoto6x6()
	require.NoError(t, err)

	_, err = cdc.DecodeRotation(bitmatrix.New(8, 8))
	require.ErrorIs(t, err, errs.ErrAmbiguousOrientation)
}
