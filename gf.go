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

import "sync"

//
// GALOIS FIELD GF(2^8), x^8 + x^4 + x^3 + x^2 + 1
//

type gfTables struct {
	exp [256]int
	log [256]int
}

var (
	gf     gfTables
	gfOnce sync.Once
)

func gfInit() {
	for i := 0; i < 8; i++ {
		gf.exp[i] = 1 << uint(i)
	}
	for i := 8; i < 256; i++ {
		gf.exp[i] = gf.exp[i-4] ^ gf.exp[i-5] ^ gf.exp[i-6] ^ gf.exp[i-8]
	}
	for i := 0; i < 255; i++ {
		gf.log[gf.exp[i]] = i
	}
}

func galois() *gfTables {
	gfOnce.Do(gfInit)
	return &gf
}

// glog returns the discrete logarithm of n. Zero has none.
func glog(n int) int {
	if n < 1 || n > 255 {
		invariant("glog(%d)", n)
	}
	return galois().log[n]
}

// gexp returns 2^n, n may be negative.
func gexp(n int) int {
	for n < 0 {
		n += 255
	}
	for n >= 255 {
		n -= 255
	}
	return galois().exp[n]
}

// gfMultiply multiplies two field elements.
func gfMultiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gexp(glog(a) + glog(b))
}
