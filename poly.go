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
// POLYNOMIALS OVER GF(256)
//

// poly holds coefficients highest degree first, without leading zeros.
// Operations never modify their operands.
type poly []int

// newPoly returns coeffs * x^shift with leading zeros stripped.
func newPoly(coeffs []int, shift int) poly {
	offset := 0
	for offset < len(coeffs)-1 && coeffs[offset] == 0 {
		offset++
	}
	p := make(poly, len(coeffs)-offset+shift)
	copy(p, coeffs[offset:])
	return p
}

func (p poly) numTerms() int {
	return len(p)
}

func (p poly) multiply(e poly) poly {
	num := make([]int, p.numTerms()+e.numTerms()-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range e {
			if b == 0 {
				continue
			}
			num[i+j] ^= gexp(glog(a) + glog(b))
		}
	}
	return newPoly(num, 0)
}

// mod returns the remainder of p divided by e.
func (p poly) mod(e poly) poly {
	rem := p
	for rem.numTerms() >= e.numTerms() {
		if rem[0] == 0 {
			// only an all-zero dividend keeps a zero lead after stripping
			return poly{0}
		}
		ratio := glog(rem[0]) - glog(e[0])
		num := make([]int, rem.numTerms())
		copy(num, rem)
		for i, c := range e {
			if c != 0 {
				num[i] ^= gexp(glog(c) + ratio)
			}
		}
		rem = newPoly(num, 0)
	}
	return rem
}

// coefficients returns the low-order n terms, left padded with zeros.
func (p poly) coefficients(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		j := p.numTerms() - n + i
		if j >= 0 {
			out[i] = byte(p[j])
		}
	}
	return out
}
