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
// MODULE MATRIX
//

type module uint8

const (
	moduleUnset module = iota
	moduleLight
	moduleDark
)

// buildState tracks the one-way construction of a matrix.
type buildState uint8

const (
	stateEmpty buildState = iota
	stateStructured
	stateReserved
	stateMapped
	stateFinalized
)

const finderPatternSize = 7

type matrix struct {
	version int
	size    int
	module  [][]module
	state   buildState
}

func newMatrix(version int) *matrix {
	size := moduleCount(version)
	m := &matrix{
		version: version,
		size:    size,
		module:  make([][]module, size),
	}
	for i := range m.module {
		m.module[i] = make([]module, size)
	}
	return m
}

// clone returns a deep copy, used to run trial mappings off one template.
func (m *matrix) clone() *matrix {
	c := &matrix{
		version: m.version,
		size:    m.size,
		module:  make([][]module, m.size),
		state:   m.state,
	}
	for i := range m.module {
		c.module[i] = append([]module(nil), m.module[i]...)
	}
	return c
}

func (m *matrix) expect(s buildState, op string) {
	if m.state != s {
		invariant("%s in build state %d, want %d", op, m.state, s)
	}
}

func (m *matrix) empty(row, col int) bool {
	return m.module[row][col] == moduleUnset
}

func (m *matrix) set(row, col int, dark bool) {
	if dark {
		m.module[row][col] = moduleDark
		return
	}
	m.module[row][col] = moduleLight
}

// placeStructure adds finder patterns with separators, alignment patterns
// and timing patterns.
func (m *matrix) placeStructure() error {
	m.expect(stateEmpty, "placeStructure")

	m.addFinderPattern(0, 0)
	m.addFinderPattern(m.size-finderPatternSize, 0)
	m.addFinderPattern(0, m.size-finderPatternSize)
	if err := m.addAlignmentPatterns(); err != nil {
		return err
	}
	m.addTimingPatterns()

	m.state = stateStructured
	return nil
}

func (m *matrix) addFinderPattern(row, col int) {
	for r := -1; r <= finderPatternSize; r++ {
		if row+r < 0 || row+r >= m.size {
			continue
		}
		for c := -1; c <= finderPatternSize; c++ {
			if col+c < 0 || col+c >= m.size {
				continue
			}
			outer := (r >= 0 && r <= 6 && (c == 0 || c == 6)) ||
				(c >= 0 && c <= 6 && (r == 0 || r == 6))
			core := r >= 2 && r <= 4 && c >= 2 && c <= 4
			m.set(row+r, col+c, outer || core)
		}
	}
}

func (m *matrix) addAlignmentPatterns() error {
	pos, err := alignmentPositions(m.version)
	if err != nil {
		return err
	}
	for _, row := range pos {
		for _, col := range pos {
			if !m.empty(row, col) {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					dark := r == -2 || r == 2 || c == -2 || c == 2 || (r == 0 && c == 0)
					m.set(row+r, col+c, dark)
				}
			}
		}
	}
	return nil
}

func (m *matrix) addTimingPatterns() {
	for i := finderPatternSize + 1; i < m.size-finderPatternSize-1; i++ {
		if m.empty(i, finderPatternSize-1) {
			m.set(i, finderPatternSize-1, i%2 == 0)
		}
		if m.empty(finderPatternSize-1, i) {
			m.set(finderPatternSize-1, i, i%2 == 0)
		}
	}
}

// reserveMetadata claims the format and version information areas with
// light modules so trial mappings leave them alone.
func (m *matrix) reserveMetadata() {
	m.expect(stateStructured, "reserveMetadata")
	m.writeFormatInfo(0, false)
	m.writeVersionInfo(0)
	m.state = stateReserved
}

// writeFormatInfo writes both copies of the 15 format bits, least
// significant bit first, and the fixed dark module.
func (m *matrix) writeFormatInfo(bits uint32, darkModule bool) {
	for i := 0; i < formatInfoLengthBits; i++ {
		v := (bits>>uint(i))&1 == 1

		// column 8, top to bottom
		switch {
		case i < 6:
			m.set(i, 8, v)
		case i < 8:
			m.set(i+1, 8, v)
		default:
			m.set(m.size-formatInfoLengthBits+i, 8, v)
		}

		// row 8, right to left
		switch {
		case i < 8:
			m.set(8, m.size-i-1, v)
		case i < 9:
			m.set(8, 7, v)
		default:
			m.set(8, formatInfoLengthBits-i-1, v)
		}
	}
	m.set(m.size-8, 8, darkModule)
}

// writeVersionInfo writes both 3x6 version blocks, from version 7 on.
func (m *matrix) writeVersionInfo(bits uint32) {
	if m.version < minVersionInfoVersion {
		return
	}
	for i := 0; i < versionInfoLengthBits; i++ {
		v := (bits>>uint(i))&1 == 1
		m.set(i/3, m.size-11+i%3, v)
		m.set(m.size-11+i%3, i/3, v)
	}
}

// mapData places the codeword bits into every unset module, two columns
// at a time from the right, alternating upwards and downwards and
// skipping the vertical timing column. Modules beyond the end of the
// stream take 0 bits.
func (m *matrix) mapData(codewords []byte, mask int) {
	m.expect(stateReserved, "mapData")

	numBits := len(codewords) * 8
	bit := 0
	row := m.size - 1
	inc := -1

	for col := m.size - 1; col > 0; col -= 2 {
		if col == finderPatternSize-1 {
			col--
		}
		for {
			for c := 0; c < 2; c++ {
				if !m.empty(row, col-c) {
					continue
				}
				dark := false
				if bit < numBits {
					dark = codewords[bit/8]&(0x80>>uint(bit%8)) != 0
				}
				// != is equivalent to XOR
				m.set(row, col-c, dark != maskBit(mask, row, col-c))
				bit++
			}
			row += inc
			if row < 0 || row >= m.size {
				row -= inc
				inc = -inc
				break
			}
		}
	}
	m.state = stateMapped
}

// finalize overwrites the reserved areas with the real metadata bits.
func (m *matrix) finalize(level Level, mask int) {
	m.expect(stateMapped, "finalize")
	m.writeFormatInfo(formatInfo(level, mask), true)
	m.writeVersionInfo(versionInfo(m.version))
	m.state = stateFinalized
}

func (m *matrix) numEmptyModules() int {
	count := 0
	for _, row := range m.module {
		for _, v := range row {
			if v == moduleUnset {
				count++
			}
		}
	}
	return count
}

// bitmap collapses the matrix into dark/light values, [row][col].
func (m *matrix) bitmap() [][]bool {
	if n := m.numEmptyModules(); n != 0 {
		invariant("bitmap with %d unset modules", n)
	}
	out := make([][]bool, m.size)
	for r, row := range m.module {
		out[r] = make([]bool, m.size)
		for c, v := range row {
			out[r][c] = v == moduleDark
		}
	}
	return out
}
