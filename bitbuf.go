// [paepcke.de/tourqr]
// [forked|inspired] by [github.com/skip2/go-qrcode] MIT
//
// WARNING:
// THIS IS AN HEAVYLY [MODIFIED|OPTIMIZED|MINIMAL] NOT API/RESULT COMPATIBLE FORK!
// DO NOT USE THIS FORK OUTSIDE THIS PACKAGE! ALL CREDITS GOES TO THE ORIGINAL AUTHOR(S)!
//
// PLEASE ALWAYS USE THE ORIGINAL SOURCE!
//
// ALL CREDIT GOES TO THE AUTHOR(S)!
//
// [github.com/skip2/go-qrcode] MIT LICENSE
//
// # Copyright (c) 2014 Tom Harwood
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tourqr

//
// MSB FIRST BIT BUFFER
//

type bitBuffer struct {
	numBits int
	bits    []byte
}

func newBitBuffer(capacityBits int) *bitBuffer {
	return &bitBuffer{bits: make([]byte, 0, (capacityBits+7)/8)}
}

// appendUint32 appends the low numBits of value, most significant first.
func (b *bitBuffer) appendUint32(value uint32, numBits int) {
	if numBits > 32 {
		invariant("appendUint32: %d bits", numBits)
	}
	for i := numBits - 1; i >= 0; i-- {
		b.appendBit(value&(1<<uint(i)) != 0)
	}
}

func (b *bitBuffer) appendBytes(data []byte) {
	for _, d := range data {
		b.appendUint32(uint32(d), 8)
	}
}

func (b *bitBuffer) appendBit(v bool) {
	if b.numBits%8 == 0 {
		b.bits = append(b.bits, 0)
	}
	if v {
		b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
	}
	b.numBits++
}

func (b *bitBuffer) appendNumBits(num int, value bool) {
	for i := 0; i < num; i++ {
		b.appendBit(value)
	}
}

// Len returns the number of bits written.
func (b *bitBuffer) Len() int {
	return b.numBits
}

// At returns bit index, counted from the first bit written.
func (b *bitBuffer) At(index int) bool {
	if index < 0 || index >= b.numBits {
		invariant("bit index %d of %d", index, b.numBits)
	}
	return (b.bits[index/8] & (0x80 >> uint(index%8))) != 0
}

// Bytes returns the buffer content; a trailing partial byte is zero filled.
func (b *bitBuffer) Bytes() []byte {
	out := make([]byte, len(b.bits))
	copy(out, b.bits)
	return out
}
