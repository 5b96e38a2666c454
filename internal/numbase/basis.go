// Package numbase provides the mixed-radix number basis and Chinese
// Remainder solver used to turn roll differences into secondary sequence
// coefficients and back.
package numbase

// Basis represents integers in a mixed-radix basis defined by a list of
// factors. Given factors p1,...,pn, every integer in [0, p1*...*pn) has a
// unique coefficient vector, one digit per factor.
type Basis struct {
	factors []int64
	bases   []int64
	upper   int64
}

// NewBasis creates a basis from the given factors. Factors must be >= 2.
func NewBasis(factors []int64) *Basis {
	bases := make([]int64, len(factors))
	upper := int64(1)
	for i, f := range factors {
		bases[i] = upper
		upper *= f
	}

	return &Basis{
		factors: append([]int64(nil), factors...),
		bases:   bases,
		upper:   upper,
	}
}

// Size returns the number of factors.
func (b *Basis) Size() int {
	return len(b.factors)
}

// Upper returns the exclusive upper bound of representable values.
func (b *Basis) Upper() int64 {
	return b.upper
}

// Project decomposes n into its mixed-radix digits, least significant
// first. n must be in [0, Upper()).
func (b *Basis) Project(n int64) []uint8 {
	digits := make([]uint8, len(b.factors))
	for i, f := range b.factors {
		digits[i] = uint8(n % f)
		n /= f
	}

	return digits
}

// Reconstruct recombines mixed-radix digits into the integer they
// represent.
func (b *Basis) Reconstruct(digits []uint8) int64 {
	var n int64
	for i, d := range digits {
		n += int64(d) * b.bases[i]
	}

	return n
}
