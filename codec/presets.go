package codec

import (
	"fmt"

	"github.com/arloliu/microdots/sequence"
)

// NewAnoto6x6 creates the reference Anoto 6x6 embodiment: order-6 MNS,
// secondary sequences A1/A2/A3/A4Fixed, prime factors 3·3·2·3 and delta
// range [5, 58].
//
// The historical A4 secondary sequence is not used because it violates the
// window uniqueness property; A4Fixed is the corrected replacement.
func NewAnoto6x6() (*Codec, error) {
	mns, err := sequence.New(sequence.MNS, 6)
	if err != nil {
		return nil, fmt.Errorf("anoto 6x6 MNS: %w", err)
	}

	return New(mns)
}

// defaultSecondary builds the Anoto secondary sequence set.
func defaultSecondary() ([]*sequence.Sequence, error) {
	raw := [][]uint8{sequence.A1, sequence.A2, sequence.A3, sequence.A4Fixed}
	sns := make([]*sequence.Sequence, len(raw))
	for i, symbols := range raw {
		s, err := sequence.New(symbols, 5)
		if err != nil {
			return nil, fmt.Errorf("anoto secondary sequence %d: %w", i+1, err)
		}
		sns[i] = s
	}

	return sns, nil
}
