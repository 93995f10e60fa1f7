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

// Package tourqr generates QR code symbols (ISO/IEC 18004, byte mode).
//
// Generate selects the smallest version that holds the payload, computes
// the Reed-Solomon error correction codewords, lays out the function
// patterns, tries all eight data masks and keeps the one with the lowest
// penalty score. The result is an immutable module grid.
package tourqr

// Options controls symbol generation. The zero value selects level M,
// interleaved block layout and the smallest fitting version.
type Options struct {
	// Level is the error correction level, DefaultLevel when zero.
	Level Level

	// Layout is the codeword order for multi-block versions.
	Layout Layout

	// MinVersion forces a symbol of at least this version (1-40).
	MinVersion int
}

// Symbol is a finished QR code.
type Symbol struct {
	version int
	level   Level
	mask    int
	penalty int
	module  [][]bool
}

// Generate encodes payload into a QR code symbol.
func Generate(payload []byte, opts Options) (*Symbol, error) {
	level := opts.Level
	if level == 0 {
		level = DefaultLevel
	}

	version, err := chooseVersion(len(payload), level, opts.MinVersion)
	if err != nil {
		return nil, err
	}

	codewords, err := encodeCodewords(payload, version, level, opts.Layout)
	if err != nil {
		return nil, err
	}

	template := newMatrix(version)
	if err := template.placeStructure(); err != nil {
		return nil, err
	}
	template.reserveMetadata()

	mask, penalty := bestMask(template, codewords)

	m := template.clone()
	m.mapData(codewords, mask)
	m.finalize(level, mask)

	return &Symbol{
		version: version,
		level:   level,
		mask:    mask,
		penalty: penalty,
		module:  m.bitmap(),
	}, nil
}

// bestMask maps the codewords under every mask pattern in turn and
// returns the first one with the lowest penalty score.
func bestMask(template *matrix, codewords []byte) (mask, penalty int) {
	for i := 0; i < numMasks; i++ {
		trial := template.clone()
		trial.mapData(codewords, i)

		p := penaltyScore(trial.bitmap())
		if i == 0 || p < penalty {
			mask = i
			penalty = p
		}
	}
	return mask, penalty
}

// ModuleCount returns the number of modules on each side.
func (s *Symbol) ModuleCount() int {
	return len(s.module)
}

// IsDark reports whether the module at (row, col) is dark. It panics with
// an *AccessError outside [0, ModuleCount()).
func (s *Symbol) IsDark(row, col int) bool {
	size := len(s.module)
	if row < 0 || row >= size || col < 0 || col >= size {
		panic(&AccessError{Row: row, Col: col, ModuleCount: size})
	}
	return s.module[row][col]
}

// Version returns the symbol version, 1-40.
func (s *Symbol) Version() int {
	return s.version
}

// Level returns the error correction level.
func (s *Symbol) Level() Level {
	return s.level
}

// Mask returns the chosen mask pattern, 0-7.
func (s *Symbol) Mask() int {
	return s.mask
}

// Penalty returns the penalty score of the chosen mask as evaluated
// during the mask search, with the metadata areas still reserved.
func (s *Symbol) Penalty() int {
	return s.penalty
}

// Bitmap returns a copy of the module grid, indexed [row][col], true for
// dark modules.
func (s *Symbol) Bitmap() [][]bool {
	out := make([][]bool, len(s.module))
	for i, row := range s.module {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
