package sequence

import (
	"fmt"

	"github.com/arloliu/microdots/errs"
)

// maxAlphabet is the exclusive upper bound on symbol values. Symbols are
// packed two bits each when forming window keys.
const maxAlphabet = 4

// maxOrder bounds the window key to 32 bits.
const maxOrder = 16

// Sequence is an immutable cyclic symbol sequence with an associated window
// order. Every cyclic window of order consecutive symbols occurs at most
// once across the whole sequence.
//
// A Sequence is safe for concurrent use; it is never mutated after New
// returns.
type Sequence struct {
	symbols []uint8
	order   int
}

// New creates a Sequence from the given symbols and verifies the
// quasi-De-Bruijn property for the given order.
//
// The symbols slice is copied. Symbol values must be below 4 so windows can
// be packed into integer keys.
//
// Returns errs.ErrDuplicateWindow if any order-length cyclic window occurs
// twice, and errs.ErrInvalidConfig for an unusable order, alphabet or
// length.
func New(symbols []uint8, order int) (*Sequence, error) {
	if order < 2 || order > maxOrder {
		return nil, fmt.Errorf("order %d outside [2, %d]: %w", order, maxOrder, errs.ErrInvalidConfig)
	}
	if len(symbols) < order {
		return nil, fmt.Errorf("sequence length %d below order %d: %w", len(symbols), order, errs.ErrInvalidConfig)
	}
	for i, sym := range symbols {
		if sym >= maxAlphabet {
			return nil, fmt.Errorf("symbol %d at index %d exceeds alphabet: %w", sym, i, errs.ErrInvalidConfig)
		}
	}

	s := &Sequence{
		symbols: append([]uint8(nil), symbols...),
		order:   order,
	}

	if _, err := buildIndex(s); err != nil {
		return nil, err
	}

	return s, nil
}

// Len returns the cyclic length of the sequence.
func (s *Sequence) Len() int {
	return len(s.symbols)
}

// Order returns the window order of the sequence.
func (s *Sequence) Order() int {
	return s.order
}

// At returns the symbol at cyclic index i. Negative indices are not
// supported; i may exceed the sequence length and wraps around.
func (s *Sequence) At(i int) uint8 {
	return s.symbols[i%len(s.symbols)]
}

// Symbols returns a copy of the underlying symbols.
func (s *Sequence) Symbols() []uint8 {
	return append([]uint8(nil), s.symbols...)
}

// Window returns the cyclic window of order symbols starting at index i.
func (s *Sequence) Window(i int) []uint8 {
	w := make([]uint8, s.order)
	for j := range w {
		w[j] = s.At(i + j)
	}

	return w
}

// buildIndex maps every packed order-length window to its start index,
// failing on the first collision.
func buildIndex(s *Sequence) (map[uint32]int, error) {
	index := make(map[uint32]int, s.Len())
	for i := 0; i < s.Len(); i++ {
		key := packKey(s, i)
		if prev, exists := index[key]; exists {
			return nil, fmt.Errorf("windows at %d and %d collide: %w", prev, i, errs.ErrDuplicateWindow)
		}
		index[key] = i
	}

	return index, nil
}

// packKey packs the order-length window starting at cyclic index i into an
// integer key, two bits per symbol.
func packKey(s *Sequence, i int) uint32 {
	var key uint32
	for j := 0; j < s.order; j++ {
		key |= uint32(s.At(i+j)) << (2 * j)
	}

	return key
}

// packWindow packs an order-length symbol slice the same way packKey does.
func packWindow(window []uint8) uint32 {
	var key uint32
	for j, sym := range window {
		key |= uint32(sym) << (2 * j)
	}

	return key
}
