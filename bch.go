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
// FORMAT AND VERSION INFORMATION
//

const (
	formatInfoLengthBits  = 15
	versionInfoLengthBits = 18

	formatInfoGenerator  = 0x537  // x^10 + x^8 + x^5 + x^4 + x^2 + x + 1
	formatInfoMask       = 0x5412 // 101010000010010
	versionInfoGenerator = 0x1f25 // x^12 + x^11 + x^10 + x^9 + x^8 + x^5 + x^2 + 1

	minVersionInfoVersion = 7
)

// bchDigit returns the index of the highest set bit plus one.
func bchDigit(data uint32) int {
	digit := 0
	for data != 0 {
		digit++
		data >>= 1
	}
	return digit
}

// bchEncode appends the remainder of data*x^shift mod generator to data.
func bchEncode(data uint32, generator uint32, shift uint) uint32 {
	d := data << shift
	for bchDigit(d) >= bchDigit(generator) {
		d ^= generator << uint(bchDigit(d)-bchDigit(generator))
	}
	return (data << shift) | d
}

// formatInfo returns the masked 15-bit format information for level and
// mask pattern.
func formatInfo(level Level, mask int) uint32 {
	if mask < 0 || mask >= numMasks {
		invariant("format info for mask %d", mask)
	}
	data := uint32(level.formatBits()<<3 | mask)
	return bchEncode(data, formatInfoGenerator, formatInfoLengthBits-5) ^ formatInfoMask
}

// versionInfo returns the 18-bit version information, zero below version 7.
func versionInfo(version int) uint32 {
	if version < minVersionInfoVersion {
		return 0
	}
	return bchEncode(uint32(version), versionInfoGenerator, versionInfoLengthBits-6)
}
