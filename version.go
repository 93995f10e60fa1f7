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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level is the error correction level of a symbol.
type Level int

// Error correction levels, roughly 7%, 15%, 25% and 30% recovery. The
// zero Level selects DefaultLevel.
const (
	L Level = iota + 1
	M
	Q
	H
)

// DefaultLevel is used when no level is requested.
const DefaultLevel = M

const (
	minVersion = 1
	maxVersion = 40
)

func (l Level) valid() bool {
	return l >= L && l <= H
}

// index maps a level to its column in the fixed tables.
func (l Level) index() int {
	return int(l - L)
}

// formatBits returns the 2-bit level indicator of the format information.
func (l Level) formatBits() int {
	switch l {
	case L:
		return 0x1 // 0b01
	case M:
		return 0x0 // 0b00
	case Q:
		return 0x3 // 0b11
	case H:
		return 0x2 // 0b10
	}
	panic(errors.Wrapf(ErrInvalidLevel, "level %d", int(l)))
}

func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel parses L, M, Q or H (case insensitive). An empty string
// yields DefaultLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "L":
		return L, nil
	case "M":
		return M, nil
	case "Q":
		return Q, nil
	case "H":
		return H, nil
	}
	return 0, errors.Wrapf(ErrInvalidLevel, "%q", s)
}

// moduleCount returns the side length of a symbol of the given version.
func moduleCount(version int) int {
	return version*4 + 17
}

// rsBlocks returns the block groups for (version, level).
func rsBlocks(version int, level Level) ([]rsBlockSpec, error) {
	if version < minVersion || version > maxVersion || !level.valid() {
		return nil, errors.Wrapf(ErrInvalidLookup, "rs blocks for version %d level %v", version, level)
	}
	return rsBlockTable[version-1][level.index()], nil
}

// alignmentPositions returns the alignment anchors for version.
func alignmentPositions(version int) ([]int, error) {
	if version < minVersion || version > maxVersion {
		return nil, errors.Wrapf(ErrInvalidLookup, "alignment positions for version %d", version)
	}
	return alignmentPatternCenter[version], nil
}

// numDataCodewords returns the data capacity of (version, level) in bytes.
func numDataCodewords(blocks []rsBlockSpec) int {
	n := 0
	for _, b := range blocks {
		n += b.numBlocks * b.numDataCodewords
	}
	return n
}

// numCodewords returns the total codeword count of (version, level).
func numCodewords(blocks []rsBlockSpec) int {
	n := 0
	for _, b := range blocks {
		n += b.numBlocks * b.numCodewords
	}
	return n
}

// charCountBits returns the byte mode length field width.
func charCountBits(version int) int {
	if version < 10 {
		return 8
	}
	return 16
}

// chooseVersion returns the smallest version >= atLeast whose byte mode
// capacity holds n bytes at level.
func chooseVersion(n int, level Level, atLeast int) (int, error) {
	if !level.valid() {
		return 0, errors.Wrapf(ErrInvalidLevel, "level %d", int(level))
	}
	if atLeast > maxVersion {
		return 0, errors.Wrapf(ErrInvalidVersion, "version %d", atLeast)
	}
	if atLeast < minVersion {
		atLeast = minVersion
	}
	for v := atLeast; v <= maxVersion; v++ {
		if byteCapacity[level.index()][v-1] >= n {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrCapacityExceeded, "%d bytes at level %v, limit %d",
		n, level, byteCapacity[level.index()][maxVersion-1])
}
