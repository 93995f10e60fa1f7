package tourqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitBufferMSBFirst(t *testing.T) {
	b := newBitBuffer(16)
	b.appendUint32(0x4, 4)
	b.appendUint32(0x0b, 8)
	b.appendBit(true)

	assert.Equal(t, 13, b.Len())
	assert.Equal(t, []byte{0x40, 0xb8}, b.Bytes())

	expected := []bool{false, true, false, false, false, false, false, false, true, false, true, true, true}
	for i, want := range expected {
		assert.Equal(t, want, b.At(i), "bit %d", i)
	}
}

func TestBitBufferAppendBytes(t *testing.T) {
	b := newBitBuffer(0)
	b.appendBytes([]byte("Hi"))
	b.appendNumBits(3, true)

	assert.Equal(t, 19, b.Len())
	assert.Equal(t, []byte{'H', 'i', 0xe0}, b.Bytes())
}

func TestBitBufferAtOutOfRangePanics(t *testing.T) {
	b := newBitBuffer(8)
	b.appendBit(true)
	assert.Panics(t, func() { b.At(1) })
	assert.Panics(t, func() { b.At(-1) })
}
