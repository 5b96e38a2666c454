package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWrite(t *testing.T) {
	bb := GetBuffer()
	defer PutBuffer(bb)

	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte{1, 2, 3})
	require.NoError(t, bb.WriteByte(4))
	require.Equal(t, 4, bb.Len())
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestGetBufferIsEmpty(t *testing.T) {
	bb := GetBuffer()
	bb.MustWrite([]byte("leftover"))
	PutBuffer(bb)

	again := GetBuffer()
	defer PutBuffer(again)
	require.Equal(t, 0, again.Len())
}

func TestPutBufferDropsOversized(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, BufferMaxThreshold+1)}
	PutBuffer(bb)
	PutBuffer(nil)
}
