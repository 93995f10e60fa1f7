package tourqr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remainderBits is the number of modules left over after the last codeword.
func remainderBits(version int) int {
	switch {
	case version == 1:
		return 0
	case version <= 6:
		return 7
	case version <= 13:
		return 0
	case version <= 20:
		return 3
	case version <= 27:
		return 4
	case version <= 34:
		return 3
	}
	return 0
}

func reservedMatrix(t *testing.T, version int) *matrix {
	t.Helper()
	m := newMatrix(version)
	require.NoError(t, m.placeStructure())
	m.reserveMetadata()
	return m
}

func assertInvariantPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvariant))
	}()
	f()
}

func TestMatrixDataModuleCount(t *testing.T) {
	for v := minVersion; v <= maxVersion; v++ {
		m := reservedMatrix(t, v)
		blocks, err := rsBlocks(v, M)
		require.NoError(t, err)
		assert.Equal(t, numCodewords(blocks)*8+remainderBits(v), m.numEmptyModules(), "version %d", v)
	}
}

func TestMatrixBuildOrder(t *testing.T) {
	assertInvariantPanic(t, func() { newMatrix(1).reserveMetadata() })
	assertInvariantPanic(t, func() { newMatrix(1).mapData(nil, 0) })
	assertInvariantPanic(t, func() { newMatrix(1).finalize(M, 0) })
	assertInvariantPanic(t, func() {
		m := reservedMatrix(t, 1)
		_ = m.placeStructure()
	})
	assertInvariantPanic(t, func() { reservedMatrix(t, 1).finalize(M, 0) })
	assertInvariantPanic(t, func() { reservedMatrix(t, 1).bitmap() })
}

func TestMatrixFinderPatterns(t *testing.T) {
	m := reservedMatrix(t, 2)
	grid := m.clone()
	grid.mapData(nil, 0)
	bitmap := grid.bitmap()
	size := m.size

	rows := []string{
		"#######.",
		"#.....#.",
		"#.###.#.",
		"#.###.#.",
		"#.###.#.",
		"#.....#.",
		"#######.",
		"........",
	}
	for r, line := range rows {
		for c, ch := range line {
			want := ch == '#'
			assert.Equal(t, want, bitmap[r][c], "top left (%d,%d)", r, c)
			assert.Equal(t, want, bitmap[r][size-1-c], "top right (%d,%d)", r, size-1-c)
			assert.Equal(t, want, bitmap[size-1-r][c], "bottom left (%d,%d)", size-1-r, c)
		}
	}
}

func TestMatrixTimingAndAlignment(t *testing.T) {
	m := reservedMatrix(t, 7)
	for i := 8; i < m.size-8; i++ {
		want := moduleLight
		if i%2 == 0 {
			want = moduleDark
		}
		assert.Equal(t, want, m.module[6][i], "row 6 col %d", i)
		assert.Equal(t, want, m.module[i][6], "col 6 row %d", i)
	}

	// version 7 anchors at 6, 22 and 38; the three finder corners are skipped
	assert.Equal(t, moduleDark, m.module[22][22])
	assert.Equal(t, moduleLight, m.module[22][23])
	assert.Equal(t, moduleDark, m.module[20][24])
	assert.Equal(t, moduleDark, m.module[38][38])
	assert.Equal(t, moduleDark, m.module[6][22])
	assert.Equal(t, moduleLight, m.module[6][21])
}

func TestMatrixMappingKeepsFunctionPatterns(t *testing.T) {
	for _, v := range []int{1, 7, 14, 40} {
		template := reservedMatrix(t, v)
		blocks, err := rsBlocks(v, L)
		require.NoError(t, err)
		codewords := make([]byte, numCodewords(blocks))
		for i := range codewords {
			codewords[i] = 0xff
		}

		for mask := 0; mask < numMasks; mask++ {
			trial := template.clone()
			trial.mapData(codewords, mask)
			assert.Zero(t, trial.numEmptyModules())
			for r := 0; r < template.size; r++ {
				for c := 0; c < template.size; c++ {
					if template.module[r][c] != moduleUnset {
						require.Equal(t, template.module[r][c], trial.module[r][c], "version %d mask %d (%d,%d)", v, mask, r, c)
					}
				}
			}
		}
	}
}

// readFormatInfo reads both format information copies from a finished
// bitmap, least significant bit first.
func readFormatInfo(grid [][]bool) (first, second uint32) {
	size := len(grid)
	for i := 0; i < formatInfoLengthBits; i++ {
		var a, b bool
		switch {
		case i < 6:
			a = grid[i][8]
		case i < 8:
			a = grid[i+1][8]
		default:
			a = grid[size-formatInfoLengthBits+i][8]
		}
		switch {
		case i < 8:
			b = grid[8][size-1-i]
		case i < 9:
			b = grid[8][7]
		default:
			b = grid[8][formatInfoLengthBits-1-i]
		}
		if a {
			first |= 1 << uint(i)
		}
		if b {
			second |= 1 << uint(i)
		}
	}
	return first, second
}

func TestMatrixFinalize(t *testing.T) {
	m := reservedMatrix(t, 7)
	m.mapData([]byte{0xa5}, 2)
	m.finalize(Q, 2)

	grid := m.bitmap()
	first, second := readFormatInfo(grid)
	assert.Equal(t, formatInfo(Q, 2), first)
	assert.Equal(t, formatInfo(Q, 2), second)
	assert.True(t, grid[m.size-8][8])

	var version uint32
	for i := 0; i < versionInfoLengthBits; i++ {
		a := grid[i/3][m.size-11+i%3]
		b := grid[m.size-11+i%3][i/3]
		require.Equal(t, a, b, "version bit %d", i)
		if a {
			version |= 1 << uint(i)
		}
	}
	assert.Equal(t, versionInfo(7), version)
}
