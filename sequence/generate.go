package sequence

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/microdots/errs"
)

// lfsrTaps maps a sequence order to the feedback tap mask of a primitive
// polynomial. The register below shifts right and feeds back into bit
// order-1, so polynomial tap t selects state bit order-t; the output bit 0
// is always tapped. The tap sets are the standard maximal-length LFSR
// configurations for each register width.
var lfsrTaps = map[int]uint32{
	2:  tapMask(2, 2, 1),
	3:  tapMask(3, 3, 2),
	4:  tapMask(4, 4, 3),
	5:  tapMask(5, 5, 3),
	6:  tapMask(6, 6, 5),
	7:  tapMask(7, 7, 6),
	8:  tapMask(8, 8, 6, 5, 4),
	9:  tapMask(9, 9, 5),
	10: tapMask(10, 10, 7),
	11: tapMask(11, 11, 9),
	12: tapMask(12, 12, 11, 10, 4),
	13: tapMask(13, 13, 12, 11, 8),
	14: tapMask(14, 14, 13, 12, 2),
	15: tapMask(15, 15, 14),
	16: tapMask(16, 16, 15, 13, 4),
}

func tapMask(order int, taps ...int) uint32 {
	var mask uint32
	for _, t := range taps {
		mask |= 1 << (order - t)
	}

	return mask
}

// Generate produces a binary maximal-length sequence of the given order and
// length 2^order-1 using a Fibonacci LFSR over a primitive feedback
// polynomial.
//
// The register is seeded with a fixed all-ones state, so the result is
// reproducible across runs and platforms. The generated sequence passes
// through the same window uniqueness verification as New, so a
// misconfigured polynomial surfaces as a construction error rather than a
// decode failure.
//
// Returns errs.ErrUnsupportedOrder when no polynomial is known for the
// order.
func Generate(order int) (*Sequence, error) {
	taps, ok := lfsrTaps[order]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", order, errs.ErrUnsupportedOrder)
	}

	length := 1<<order - 1
	state := uint32(1)<<order - 1
	out := make([]uint8, length)

	for i := range out {
		out[i] = uint8(state & 1)
		feedback := uint32(bits.OnesCount32(state&taps) & 1)
		state = state>>1 | feedback<<(order-1)
	}

	return New(out, order)
}
