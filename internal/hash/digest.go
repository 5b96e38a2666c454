// Package hash provides the payload digest used to verify pattern file
// integrity.
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 digest of the given payload.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
