package numbase

import (
	"fmt"

	"github.com/arloliu/microdots/errs"
)

// CRT solves simultaneous congruences over pairwise-coprime moduli using
// the Chinese Remainder Theorem.
type CRT struct {
	moduli []int64
	l      int64
	es     []int64
}

// NewCRT creates a solver for the given moduli. Returns errs.ErrNotCoprime
// if the moduli are not pairwise coprime.
func NewCRT(moduli []int64) (*CRT, error) {
	l := int64(1)
	for _, m := range moduli {
		l *= m
	}

	es := make([]int64, len(moduli))
	for i, m := range moduli {
		rest := l / m
		gcd, _, s := extendedGCD(m, rest)
		if gcd != 1 {
			return nil, fmt.Errorf("modulus %d: %w", m, errs.ErrNotCoprime)
		}
		q := ((s % m) + m) % m
		es[i] = q * rest
	}

	return &CRT{
		moduli: append([]int64(nil), moduli...),
		l:      l,
		es:     es,
	}, nil
}

// Modulus returns the product of all moduli, the exclusive upper bound of
// solvable values.
func (c *CRT) Modulus() int64 {
	return c.l
}

// Solve returns the smallest non-negative x such that x mod moduli[i] ==
// remainders[i] for all i.
func (c *CRT) Solve(remainders []int64) int64 {
	var sum int64
	for i, r := range remainders {
		sum = (sum + (r*c.es[i])%c.l) % c.l
	}

	return sum
}

// extendedGCD returns (gcd, x, y) such that gcd = x*a + y*b.
func extendedGCD(a, b int64) (int64, int64, int64) {
	if a == 0 {
		return b, 0, 1
	}

	gcd, x1, y1 := extendedGCD(b%a, a)

	return gcd, y1 - (b/a)*x1, x1
}
