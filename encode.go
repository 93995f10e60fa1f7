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
	"github.com/pkg/errors"
)

const (
	modeIndicatorByte    = 0x4 // 0b0100
	modeIndicatorBits    = 4
	maxTerminatorBits    = 4
	padCodewordEven byte = 0xEC
	padCodewordOdd  byte = 0x11
)

// Layout selects how the codewords of several blocks are ordered in the
// final stream.
type Layout int

const (
	// LayoutInterleaved takes codeword i of every block in turn, first for
	// the data codewords and then for the error correction codewords.
	LayoutInterleaved Layout = iota

	// LayoutSequential emits the data codewords of all blocks in block
	// order, followed by the error correction codewords in block order.
	// Symbols with more than one block are not ISO 18004 conformant.
	LayoutSequential
)

func (l Layout) String() string {
	switch l {
	case LayoutInterleaved:
		return "interleaved"
	case LayoutSequential:
		return "sequential"
	}
	return "unknown"
}

// ParseLayout parses "interleaved" or "sequential"; empty means interleaved.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", "interleaved":
		return LayoutInterleaved, nil
	case "sequential":
		return LayoutSequential, nil
	}
	return 0, errors.Errorf("qr: invalid layout %q", s)
}

// encodeData packs payload into exactly the data codeword capacity of
// the version: mode, length, payload, terminator, bit padding and pad
// codewords.
func encodeData(payload []byte, version int, blocks []rsBlockSpec) (*bitBuffer, error) {
	numDataBits := numDataCodewords(blocks) * 8
	buf := newBitBuffer(numDataBits)

	buf.appendUint32(modeIndicatorByte, modeIndicatorBits)
	buf.appendUint32(uint32(len(payload)), charCountBits(version))
	buf.appendBytes(payload)

	if buf.Len() > numDataBits {
		return nil, errors.Wrapf(ErrOverflow, "%d bits exceed %d bits of version %d",
			buf.Len(), numDataBits, version)
	}

	numTerminatorBits := numDataBits - buf.Len()
	if numTerminatorBits > maxTerminatorBits {
		numTerminatorBits = maxTerminatorBits
	}
	buf.appendNumBits(numTerminatorBits, false)
	buf.appendNumBits((8-buf.Len()%8)%8, false)

	pad := [2]byte{padCodewordEven, padCodewordOdd}
	for i := 0; buf.Len() < numDataBits; i++ {
		buf.appendUint32(uint32(pad[i%2]), 8)
	}
	return buf, nil
}

type dataBlock struct {
	data []byte
	ec   []byte
}

// splitBlocks cuts the data codewords into RS blocks and computes the
// error correction codewords of each.
func splitBlocks(data []byte, blocks []rsBlockSpec) ([]dataBlock, error) {
	if len(data) != numDataCodewords(blocks) {
		return nil, errors.Wrapf(ErrInvalidLookup, "%d data codewords for a %d codeword table entry",
			len(data), numDataCodewords(blocks))
	}

	var (
		result     []dataBlock
		generators = make(map[int]poly, 2)
		offset     int
	)
	for _, b := range blocks {
		numECCodewords := b.numCodewords - b.numDataCodewords
		generator, ok := generators[numECCodewords]
		if !ok {
			generator = rsGeneratorPoly(numECCodewords)
			generators[numECCodewords] = generator
		}
		for j := 0; j < b.numBlocks; j++ {
			block := data[offset : offset+b.numDataCodewords]
			offset += b.numDataCodewords
			result = append(result, dataBlock{
				data: block,
				ec:   rsEncode(block, generator),
			})
		}
	}
	return result, nil
}

// assembleCodewords orders the blocks' codewords according to layout.
func assembleCodewords(blocks []dataBlock, layout Layout) []byte {
	total := 0
	for _, b := range blocks {
		total += len(b.data) + len(b.ec)
	}
	result := make([]byte, 0, total)

	switch layout {
	case LayoutSequential:
		for _, b := range blocks {
			result = append(result, b.data...)
		}
		for _, b := range blocks {
			result = append(result, b.ec...)
		}
	default:
		result = interleave(result, blocks, func(b dataBlock) []byte { return b.data })
		result = interleave(result, blocks, func(b dataBlock) []byte { return b.ec })
	}
	return result
}

func interleave(dst []byte, blocks []dataBlock, part func(dataBlock) []byte) []byte {
	for i, working := 0, true; working; i++ {
		working = false
		for _, b := range blocks {
			p := part(b)
			if i >= len(p) {
				continue
			}
			dst = append(dst, p[i])
			working = true
		}
	}
	return dst
}

// encodeCodewords runs the data encoding, block split and codeword
// assembly for (version, level).
func encodeCodewords(payload []byte, version int, level Level, layout Layout) ([]byte, error) {
	blocks, err := rsBlocks(version, level)
	if err != nil {
		return nil, err
	}
	buf, err := encodeData(payload, version, blocks)
	if err != nil {
		return nil, err
	}
	split, err := splitBlocks(buf.Bytes(), blocks)
	if err != nil {
		return nil, err
	}
	codewords := assembleCodewords(split, layout)
	if len(codewords) != numCodewords(blocks) {
		return nil, errors.Wrapf(ErrInvalidLookup, "%d codewords, table expects %d",
			len(codewords), numCodewords(blocks))
	}
	return codewords, nil
}
