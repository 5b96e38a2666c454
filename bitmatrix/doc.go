// Package bitmatrix provides the in-memory dot grid value object consumed
// and produced by the codec.
//
// A BitMatrix holds two bits per grid cell: channel A carries the
// column-direction (x) sequence bit and channel B the row-direction (y)
// sequence bit. Together the two bits select one of four physical dot
// displacements around the nominal grid position.
//
// Matrices are plain value data with no shared ownership: Sub, Clone and
// Rot90 return fresh copies, and the codec never retains references into a
// caller-supplied matrix beyond the call.
package bitmatrix
