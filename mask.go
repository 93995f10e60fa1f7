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
// DATA MASKS AND PENALTY SCORING
//

const (
	numMasks = 8

	penaltyWeight1 = 3
	penaltyWeight2 = 3
	penaltyWeight3 = 40
	penaltyWeight4 = 10

	penaltyMinRun = 5
)

// maskBit reports whether mask pattern flips the module at (row, col).
func maskBit(mask, row, col int) bool {
	switch mask {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return (row*col)%2+(row*col)%3 == 0
	case 6:
		return ((row*col)%2+(row*col)%3)%2 == 0
	case 7:
		return ((row+col)%2+(row*col)%3)%2 == 0
	}
	invariant("mask pattern %d", mask)
	return false
}

// finderLike is dark, light, dark, dark, dark, light, dark.
var finderLike = [7]bool{true, false, true, true, true, false, true}

// penaltyScore returns the sum of the four penalty rules for a square
// module grid, indexed [row][col].
func penaltyScore(grid [][]bool) int {
	return penalty1(grid) + penalty2(grid) + penalty3(grid) + penalty4(grid)
}

// penalty1 scores runs of five or more same coloured modules in rows and
// columns: 3 + (run - 5) per run.
func penalty1(grid [][]bool) int {
	size := len(grid)
	penalty := 0
	scoreRun := func(count int) {
		if count >= penaltyMinRun {
			penalty += penaltyWeight1 + count - penaltyMinRun
		}
	}
	for a := 0; a < size; a++ {
		rowCount, colCount := 1, 1
		for b := 1; b < size; b++ {
			if grid[a][b] == grid[a][b-1] {
				rowCount++
			} else {
				scoreRun(rowCount)
				rowCount = 1
			}
			if grid[b][a] == grid[b-1][a] {
				colCount++
			} else {
				scoreRun(colCount)
				colCount = 1
			}
		}
		scoreRun(rowCount)
		scoreRun(colCount)
	}
	return penalty
}

// penalty2 scores every 2x2 block of one colour.
func penalty2(grid [][]bool) int {
	size := len(grid)
	penalty := 0
	for row := 1; row < size; row++ {
		for col := 1; col < size; col++ {
			current := grid[row][col]
			if current == grid[row-1][col-1] && current == grid[row-1][col] && current == grid[row][col-1] {
				penalty++
			}
		}
	}
	return penalty * penaltyWeight2
}

// penalty3 scores every 1:1:3:1:1 finder-like sequence in rows and columns.
func penalty3(grid [][]bool) int {
	size := len(grid)
	penalty := 0
	for a := 0; a < size; a++ {
		for b := 0; b+len(finderLike) <= size; b++ {
			rowMatch, colMatch := true, true
			for k, want := range finderLike {
				if grid[a][b+k] != want {
					rowMatch = false
				}
				if grid[b+k][a] != want {
					colMatch = false
				}
			}
			if rowMatch {
				penalty += penaltyWeight3
			}
			if colMatch {
				penalty += penaltyWeight3
			}
		}
	}
	return penalty
}

// penalty4 scores the deviation of the dark module ratio from 50% in
// steps of 5%.
func penalty4(grid [][]bool) int {
	size := len(grid)
	numModules := size * size
	if numModules == 0 {
		return 0
	}
	numDarkModules := 0
	for _, row := range grid {
		for _, v := range row {
			if v {
				numDarkModules++
			}
		}
	}
	// |100*dark/total - 50| / 5, floored, in integer arithmetic
	deviation := 100*numDarkModules - 50*numModules
	if deviation < 0 {
		deviation = -deviation
	}
	return penaltyWeight4 * (deviation / (5 * numModules))
}
