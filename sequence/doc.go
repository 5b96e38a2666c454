// Package sequence provides the cyclic number sequences underlying the
// microdot position code, together with the window lookup tables used to
// decode them.
//
// # Sequences
//
// A Sequence is an immutable, cyclic run of small integer symbols with an
// associated order n. Every cyclic window of n consecutive symbols occurs at
// most once, which makes any observed window locatable at a unique absolute
// index. This quasi-De-Bruijn property is verified when the Sequence is
// constructed; sequences violating it are rejected with
// errs.ErrDuplicateWindow.
//
// The package ships the sequences used by the reference embodiment: the
// binary main number sequence MNS (order 6, length 63) and the ternary
// secondary sequences A1..A4 (order 5). The historical A4 sequence contains
// duplicate windows and cannot be turned into a Sequence; A4Fixed is the
// corrected replacement used by the shipped codec preset.
//
// # Lookup tables
//
// A LookupTable maps every order-length window of a Sequence to the index of
// its occurrence. Lookups are O(1) and total: a hit is guaranteed for any
// genuine window drawn from the sequence. Windows longer than the order are
// resolved by extending the order-length prefix along the sequence.
//
// # Generation
//
// Generate produces a deterministic binary maximal-length sequence of a
// given order from a linear feedback shift register over a primitive
// feedback polynomial, for embodiments that do not reuse the built-in
// sequences.
package sequence
