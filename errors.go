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

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrCapacityExceeded is returned when the payload does not fit into a
	// version 40 symbol at the requested level. Retry with a lower level or
	// a shorter payload.
	ErrCapacityExceeded = errors.New("qr: capacity exceeded")

	// ErrOverflow is returned when the encoded payload bits exceed the data
	// capacity of the selected version before padding.
	ErrOverflow = errors.New("qr: data overflow")

	// ErrInvalidLookup reports a (version, level) pair missing from one of
	// the fixed tables. Unreachable for valid levels and versions 1-40.
	ErrInvalidLookup = errors.New("qr: invalid table lookup")

	// ErrInvalidLevel is returned for an unknown error correction level.
	ErrInvalidLevel = errors.New("qr: invalid error correction level")

	// ErrInvalidVersion is returned for a requested version outside 1-40.
	ErrInvalidVersion = errors.New("qr: invalid version")

	// ErrInvariant marks internal arithmetic misuse, e.g. the logarithm of 0.
	ErrInvariant = errors.New("qr: invariant violation")

	// ErrMalformedMatrixAccess marks a module read outside the symbol.
	ErrMalformedMatrixAccess = errors.New("qr: module access out of range")
)

// AccessError is the panic value of Symbol.IsDark for out of range
// coordinates.
type AccessError struct {
	Row, Col, ModuleCount int
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside [0,%d)", ErrMalformedMatrixAccess, e.Row, e.Col, e.ModuleCount)
}

// Unwrap lets errors.Is match ErrMalformedMatrixAccess.
func (e *AccessError) Unwrap() error { return ErrMalformedMatrixAccess }

func invariant(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrInvariant, format, args...))
}
