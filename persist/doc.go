// Package persist reads and writes pattern files.
//
// The binary format is a fixed 32-byte little-endian header followed by the
// cell payload, two bits per cell packed four cells to the byte, optionally
// compressed. The header records the matrix shape, the compression type and
// an xxHash64 digest of the packed payload so corruption is detected before
// a matrix reaches the codec.
//
// A JSON form is also provided for interchange with external tooling; it is
// self-describing and uncompressed.
package persist
