package codec

import (
	"fmt"

	"github.com/arloliu/microdots/errs"
	"github.com/arloliu/microdots/internal/numbase"
	"github.com/arloliu/microdots/internal/options"
	"github.com/arloliu/microdots/sequence"
)

// Codec encodes and decodes microdot position patterns for one embodiment.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	mns       *sequence.Sequence
	mnsLookup *sequence.LookupTable
	sns       []*sequence.Sequence
	snsLookup []*sequence.LookupTable
	basis     *numbase.Basis
	crt       *numbase.CRT

	order    int
	snsOrder int
	deltaMin int64
	deltaMax int64
}

type config struct {
	sns      []*sequence.Sequence
	pfactors []int64
	deltaMin int64
	deltaMax int64
}

// Option configures a Codec under construction.
type Option = options.Option[*config]

// WithSecondary sets the secondary number sequences used for the delta
// code. Their order must be one below the MNS order. The default is the
// Anoto set A1, A2, A3, A4Fixed.
func WithSecondary(seqs ...*sequence.Sequence) Option {
	return options.NoError(func(cfg *config) {
		// Non-nil even when empty, so an explicit empty set is validated
		// instead of falling back to the defaults.
		cfg.sns = append([]*sequence.Sequence{}, seqs...)
	})
}

// WithPrimeFactors sets the mixed-radix factors used to split a delta value
// into one digit per secondary sequence. The default is 3, 3, 2, 3.
func WithPrimeFactors(factors ...int64) Option {
	return options.NoError(func(cfg *config) {
		cfg.pfactors = factors
	})
}

// WithDeltaRange sets the inclusive range of legal roll differences between
// adjacent columns and rows. The default is [5, 58].
func WithDeltaRange(lo, hi int64) Option {
	return options.NoError(func(cfg *config) {
		cfg.deltaMin = lo
		cfg.deltaMax = hi
	})
}

// New creates a Codec around the given main number sequence.
//
// Without options, the secondary sequences, prime factors and delta range
// default to the reference Anoto 6x6 embodiment, which requires an MNS of
// order 6. All configuration is validated here; an inconsistent embodiment
// is reported immediately and never surfaces as a decode failure.
func New(mns *sequence.Sequence, opts ...Option) (*Codec, error) {
	if mns == nil {
		return nil, fmt.Errorf("nil main number sequence: %w", errs.ErrInvalidConfig)
	}

	cfg := &config{
		pfactors: []int64{3, 3, 2, 3},
		deltaMin: 5,
		deltaMax: 58,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.sns == nil {
		sns, err := defaultSecondary()
		if err != nil {
			return nil, err
		}
		cfg.sns = sns
	}

	if err := validate(mns, cfg); err != nil {
		return nil, err
	}

	mnsLookup, err := sequence.BuildLookup(mns)
	if err != nil {
		return nil, err
	}

	snsLookup := make([]*sequence.LookupTable, len(cfg.sns))
	lengths := make([]int64, len(cfg.sns))
	for i, s := range cfg.sns {
		if snsLookup[i], err = sequence.BuildLookup(s); err != nil {
			return nil, err
		}
		lengths[i] = int64(s.Len())
	}

	crt, err := numbase.NewCRT(lengths)
	if err != nil {
		return nil, err
	}

	return &Codec{
		mns:       mns,
		mnsLookup: mnsLookup,
		sns:       cfg.sns,
		snsLookup: snsLookup,
		basis:     numbase.NewBasis(cfg.pfactors),
		crt:       crt,
		order:     mns.Order(),
		snsOrder:  mns.Order() - 1,
		deltaMin:  cfg.deltaMin,
		deltaMax:  cfg.deltaMax,
	}, nil
}

func validate(mns *sequence.Sequence, cfg *config) error {
	if len(cfg.sns) == 0 {
		return fmt.Errorf("no secondary sequences: %w", errs.ErrInvalidConfig)
	}
	if len(cfg.pfactors) != len(cfg.sns) {
		return fmt.Errorf("%d prime factors for %d secondary sequences: %w",
			len(cfg.pfactors), len(cfg.sns), errs.ErrInvalidConfig)
	}
	for i, s := range cfg.sns {
		if s.Order() != mns.Order()-1 {
			return fmt.Errorf("secondary sequence %d has order %d, want %d: %w",
				i, s.Order(), mns.Order()-1, errs.ErrInvalidConfig)
		}
	}
	for _, f := range cfg.pfactors {
		if f < 2 {
			return fmt.Errorf("prime factor %d below 2: %w", f, errs.ErrInvalidConfig)
		}
	}
	if cfg.deltaMin < 0 || cfg.deltaMax < cfg.deltaMin || cfg.deltaMax >= int64(mns.Len()) {
		return fmt.Errorf("delta range [%d, %d] outside [0, %d): %w",
			cfg.deltaMin, cfg.deltaMax, mns.Len(), errs.ErrInvalidConfig)
	}

	span := cfg.deltaMax - cfg.deltaMin + 1
	upper := int64(1)
	for _, f := range cfg.pfactors {
		upper *= f
	}
	if upper != span {
		return fmt.Errorf("prime factor product %d does not cover delta span %d: %w",
			upper, span, errs.ErrInvalidConfig)
	}

	return nil
}

// Order returns the MNS order, the minimum matrix dimension for decoding.
func (c *Codec) Order() int {
	return c.order
}

// SectionExtent returns the exclusive upper bound of section coordinates
// per axis.
func (c *Codec) SectionExtent() int {
	return c.mns.Len()
}

// PositionExtent returns the exclusive upper bound of position coordinates
// per axis, the period of the delta code.
func (c *Codec) PositionExtent() int64 {
	return c.crt.Modulus()
}

// delta returns the roll difference between columns (or rows) p and p+1.
// Its mixed-radix digits are the secondary sequence symbols at p modulo
// each sequence length.
func (c *Codec) delta(p int64) int64 {
	digits := make([]uint8, len(c.sns))
	for i, s := range c.sns {
		digits[i] = s.At(int(p % int64(s.Len())))
	}

	return c.basis.Reconstruct(digits) + c.deltaMin
}

// rollAt integrates the delta code from zero up to position p, yielding the
// accumulated MNS roll modulo the sequence length.
func (c *Codec) rollAt(p int) int64 {
	length := int64(c.mns.Len())
	var r int64
	for i := 0; i < p; i++ {
		r = (r + c.delta(int64(i))) % length
	}

	return r
}
