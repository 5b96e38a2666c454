package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microdots/errs"
)

func TestNewBuiltinSequences(t *testing.T) {
	tests := []struct {
		name    string
		symbols []uint8
		order   int
		length  int
	}{
		{"MNS", MNS, 6, 63},
		{"A1", A1, 5, 236},
		{"A2", A2, 5, 233},
		{"A3", A3, 5, 31},
		{"A4Fixed", A4Fixed, 5, 241},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.symbols, tt.order)
			require.NoError(t, err)
			require.Equal(t, tt.length, s.Len())
			require.Equal(t, tt.order, s.Order())
		})
	}
}

// The historical A4 sequence contains duplicate order-5 windows and must be
// rejected at construction time, not during decoding.
func TestNewRejectsHistoricalA4(t *testing.T) {
	_, err := New(A4, 5)
	require.ErrorIs(t, err, errs.ErrDuplicateWindow)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		symbols []uint8
		order   int
		want    error
	}{
		{"order below 2", []uint8{0, 1}, 1, errs.ErrInvalidConfig},
		{"order above max", make([]uint8, 20), 17, errs.ErrInvalidConfig},
		{"shorter than order", []uint8{0, 1, 0}, 4, errs.ErrInvalidConfig},
		{"symbol out of alphabet", []uint8{0, 1, 4, 2}, 2, errs.ErrInvalidConfig},
		{"duplicate windows", []uint8{0, 1, 0, 1}, 2, errs.ErrDuplicateWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.symbols, tt.order)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

// Every cyclic window of a generated sequence must be pairwise distinct;
// this is the property every decode lookup relies on.
func TestWindowsPairwiseDistinct(t *testing.T) {
	s, err := New(MNS, 6)
	require.NoError(t, err)

	seen := make(map[string]int, s.Len())
	for i := 0; i < s.Len(); i++ {
		w := string(s.Window(i))
		prev, dup := seen[w]
		require.False(t, dup, "windows %d and %d are equal", prev, i)
		seen[w] = i
	}
	require.Len(t, seen, s.Len())
}

func TestAtWrapsCyclically(t *testing.T) {
	s, err := New(MNS, 6)
	require.NoError(t, err)

	for i := 0; i < s.Len(); i++ {
		require.Equal(t, s.At(i), s.At(i+s.Len()))
		require.Equal(t, s.At(i), s.At(i+3*s.Len()))
	}
}

func TestSymbolsReturnsCopy(t *testing.T) {
	s, err := New(MNS, 6)
	require.NoError(t, err)

	symbols := s.Symbols()
	symbols[0] ^= 1
	require.Equal(t, MNS[0], s.At(0))
}
