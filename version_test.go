package tourqr

import (
	"os"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLevels = []Level{L, M, Q, H}

func TestByteCapacityMatchesBlockTable(t *testing.T) {
	for _, level := range allLevels {
		for v := minVersion; v <= maxVersion; v++ {
			blocks, err := rsBlocks(v, level)
			require.NoError(t, err)

			headerBits := modeIndicatorBits + charCountBits(v)
			want := (numDataCodewords(blocks)*8 - headerBits) / 8
			assert.Equal(t, want, byteCapacity[level.index()][v-1], "version %d level %v", v, level)
		}
	}
}

func TestBlockTableFillsSymbol(t *testing.T) {
	for v := minVersion; v <= maxVersion; v++ {
		var total int
		for i, level := range allLevels {
			blocks, err := rsBlocks(v, level)
			require.NoError(t, err)
			require.True(t, len(blocks) == 1 || len(blocks) == 2)

			// every level of a version has the same codeword count
			if i == 0 {
				total = numCodewords(blocks)
			}
			assert.Equal(t, total, numCodewords(blocks), "version %d level %v", v, level)

			// all blocks of a version share one EC length
			ec := blocks[0].numCodewords - blocks[0].numDataCodewords
			for _, b := range blocks {
				assert.Equal(t, ec, b.numCodewords-b.numDataCodewords)
			}
		}
	}
}

func TestRSBlocksInvalidLookup(t *testing.T) {
	_, err := rsBlocks(0, M)
	assert.True(t, errors.Is(err, ErrInvalidLookup))
	_, err = rsBlocks(41, M)
	assert.True(t, errors.Is(err, ErrInvalidLookup))
	_, err = rsBlocks(1, Level(9))
	assert.True(t, errors.Is(err, ErrInvalidLookup))
	_, err = alignmentPositions(41)
	assert.True(t, errors.Is(err, ErrInvalidLookup))
}

func TestChooseVersion(t *testing.T) {
	tests := []struct {
		n       int
		level   Level
		version int
	}{
		{0, M, 1},
		{14, M, 1},
		{15, M, 2},
		{17, L, 1},
		{7, H, 1},
		{8, H, 2},
		{230, L, 9},
		{231, L, 10},
		{2331, M, 40},
		{2953, L, 40},
		{1273, H, 40},
	}
	for _, tt := range tests {
		v, err := chooseVersion(tt.n, tt.level, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.version, v, "%d bytes at %v", tt.n, tt.level)
	}
}

func TestChooseVersionCapacityExceeded(t *testing.T) {
	_, err := chooseVersion(1274, H, 0)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))

	_, err = chooseVersion(3000, H, 0)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))

	_, err = chooseVersion(2954, L, 0)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
}

func TestChooseVersionAtLeast(t *testing.T) {
	v, err := chooseVersion(3, M, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = chooseVersion(3, M, 41)
	assert.True(t, errors.Is(err, ErrInvalidVersion))
}

func TestParseLevel(t *testing.T) {
	for _, level := range allLevels {
		got, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
	got, err := ParseLevel(" q ")
	require.NoError(t, err)
	assert.Equal(t, Q, got)

	got, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, M, got)

	_, err = ParseLevel("X")
	assert.True(t, errors.Is(err, ErrInvalidLevel))
}

func TestPropChooseVersionIsSmallest(t *testing.T) {
	var (
		parameters = gopter.DefaultTestParameters()
		seed       = int64(20221010)
		props      = gopter.NewProperties(parameters)
		reporter   = gopter.NewFormatedReporter(true, 160, os.Stdout)
	)
	parameters.MinSuccessfulTests = 500
	parameters.Rng.Seed(seed)

	props.Property("chosen version is the smallest that fits", prop.ForAll(
		func(n int, li int) (bool, error) {
			level := allLevels[li]
			v, err := chooseVersion(n, level, 0)
			if n > byteCapacity[level.index()][maxVersion-1] {
				return errors.Is(err, ErrCapacityExceeded), nil
			}
			if err != nil {
				return false, err
			}
			if byteCapacity[level.index()][v-1] < n {
				return false, errors.Errorf("version %d too small for %d", v, n)
			}
			if v > 1 && byteCapacity[level.index()][v-2] >= n {
				return false, errors.Errorf("version %d not minimal for %d", v, n)
			}
			return true, nil
		},
		gen.IntRange(0, 3000),
		gen.IntRange(0, 3),
	))

	if !props.Run(reporter) {
		t.Errorf("failed with initial seed: %d", seed)
	}
}
