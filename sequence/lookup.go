package sequence

import "fmt"

// LookupTable maps every order-length window of a Sequence to the index of
// its occurrence. It is built once per Sequence and shared read-only by all
// decode calls.
type LookupTable struct {
	seq   *Sequence
	index map[uint32]int
}

// BuildLookup constructs the window lookup table for seq. Returns
// errs.ErrDuplicateWindow if the sequence windows collide.
func BuildLookup(seq *Sequence) (*LookupTable, error) {
	index, err := buildIndex(seq)
	if err != nil {
		return nil, fmt.Errorf("build lookup: %w", err)
	}

	return &LookupTable{seq: seq, index: index}, nil
}

// Sequence returns the sequence the table was built from.
func (t *LookupTable) Sequence() *Sequence {
	return t.seq
}

// Find returns the start index of the given window in the sequence.
//
// The window must be at least order symbols long. Windows longer than the
// order are located through their order-length prefix and verified against
// the continuation of the sequence; they must fit within one cyclic pass,
// so a window of length w is only locatable at indices up to
// Len()+Order()-1-w.
func (t *LookupTable) Find(window []uint8) (int, bool) {
	order := t.seq.Order()
	if len(window) < order {
		return 0, false
	}

	loc, ok := t.index[packWindow(window[:order])]
	if !ok {
		return 0, false
	}

	if len(window) > order {
		if loc+len(window) > t.seq.Len()+order-1 {
			return 0, false
		}
		for j := order; j < len(window); j++ {
			if t.seq.At(loc+j) != window[j] {
				return 0, false
			}
		}
	}

	return loc, true
}
