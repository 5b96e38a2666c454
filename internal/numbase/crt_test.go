package numbase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microdots/errs"
)

func TestCRTSolve(t *testing.T) {
	moduli := []int64{236, 233, 31, 241}
	crt, err := NewCRT(moduli)
	require.NoError(t, err)
	require.Equal(t, int64(410815348), crt.Modulus())

	for _, x := range []int64{0, 1, 97, 54987, 1704627, 410815347} {
		remainders := make([]int64, len(moduli))
		for i, m := range moduli {
			remainders[i] = x % m
		}
		require.Equal(t, x, crt.Solve(remainders), "x=%d", x)
	}
}

func TestCRTSmallModuli(t *testing.T) {
	crt, err := NewCRT([]int64{3, 5, 7})
	require.NoError(t, err)
	require.Equal(t, int64(105), crt.Modulus())
	require.Equal(t, int64(23), crt.Solve([]int64{2, 3, 2}))
}

func TestCRTRejectsNonCoprimeModuli(t *testing.T) {
	_, err := NewCRT([]int64{4, 6})
	require.ErrorIs(t, err, errs.ErrNotCoprime)

	_, err = NewCRT([]int64{236, 233, 31, 236})
	require.ErrorIs(t, err, errs.ErrNotCoprime)
}
