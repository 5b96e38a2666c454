// Package codec implements encoding and decoding of microdot position
// patterns.
//
// A Codec composes a binary main number sequence (MNS) with a set of
// secondary number sequences. Each column of the encoded grid carries the
// MNS cyclically rolled by an offset; the differences between the offsets
// of adjacent columns follow a delta code whose mixed-radix digits are
// sampled from the secondary sequences, and the initial offset embeds the
// section address. Rows carry the same construction in the other direction
// on the second bit channel.
//
// Given any captured sub-grid of at least order×order cells, the Codec
// recovers:
//
//   - the (x, y) position of the sub-grid within its section,
//   - the (x, y) address of the section itself, and
//   - the orientation of the capture in quarter turns.
//
// All sequences and lookup tables are built once when the Codec is
// constructed and never mutated, so a single Codec may be shared across
// goroutines without locking. Configuration problems surface as errors from
// New or NewAnoto6x6, never from a decode call.
package codec
