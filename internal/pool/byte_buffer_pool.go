// Package pool provides pooled byte buffers for pattern file staging.
package pool

import "sync"

const (
	// BufferDefaultSize is the initial capacity of a pooled buffer. A
	// packed A4-page pattern is a few tens of kilobytes.
	BufferDefaultSize = 16 * 1024

	// BufferMaxThreshold is the largest buffer returned to the pool;
	// bigger ones are dropped to keep the pool lean.
	BufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a reusable byte slice wrapper obtained from the pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, BufferDefaultSize)}
	},
}

// GetBuffer obtains an empty ByteBuffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a ByteBuffer to the pool. Oversized buffers are
// discarded.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > BufferMaxThreshold {
		return
	}
	bufferPool.Put(bb)
}
