package tourqr

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

// formatInfoTable is indexed by the 2-bit level indicator and the mask.
var formatInfoTable = [32]uint32{
	0x5412, 0x5125, 0x5e7c, 0x5b4b, 0x45f9, 0x40ce, 0x4f97, 0x4aa0,
	0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318, 0x6c41, 0x6976,
	0x1689, 0x13be, 0x1ce7, 0x19d0, 0x0762, 0x0255, 0x0d0c, 0x083b,
	0x355f, 0x3068, 0x3f31, 0x3a06, 0x24b4, 0x2183, 0x2eda, 0x2bed,
}

func TestFormatInfo(t *testing.T) {
	for _, level := range allLevels {
		for mask := 0; mask < numMasks; mask++ {
			want := formatInfoTable[level.formatBits()<<3|mask]
			assert.Equal(t, want, formatInfo(level, mask), "level %v mask %d", level, mask)
		}
	}
	assert.Equal(t, uint32(0x662f), formatInfo(L, 4))
}

func TestFormatInfoDistance(t *testing.T) {
	for i := range formatInfoTable {
		for j := i + 1; j < len(formatInfoTable); j++ {
			d := bits.OnesCount32(formatInfoTable[i] ^ formatInfoTable[j])
			assert.GreaterOrEqual(t, d, 7)
		}
	}
}

func TestFormatInfoInvalidMaskPanics(t *testing.T) {
	assert.Panics(t, func() { formatInfo(M, 8) })
	assert.Panics(t, func() { formatInfo(M, -1) })
}

func TestVersionInfo(t *testing.T) {
	for v := minVersion; v < minVersionInfoVersion; v++ {
		assert.Zero(t, versionInfo(v))
	}
	assert.Equal(t, uint32(0x07c94), versionInfo(7))
	assert.Equal(t, uint32(0x085bc), versionInfo(8))
	assert.Equal(t, uint32(0x28c69), versionInfo(40))

	for v := minVersionInfoVersion; v <= maxVersion; v++ {
		info := versionInfo(v)
		assert.Equal(t, uint32(v), info>>12)
		assert.Zero(t, info>>versionInfoLengthBits)
		for w := v + 1; w <= maxVersion; w++ {
			assert.GreaterOrEqual(t, bits.OnesCount32(info^versionInfo(w)), 8)
		}
	}
}

// decodeFormatInfo returns the table index closest to info.
func decodeFormatInfo(info uint32) int {
	best, bestDistance := -1, formatInfoLengthBits+1
	for i, code := range formatInfoTable {
		if d := bits.OnesCount32(info ^ code); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best
}

func TestFormatInfoCorrectsThreeErrors(t *testing.T) {
	for _, level := range allLevels {
		for mask := 0; mask < numMasks; mask++ {
			want := level.formatBits()<<3 | mask
			info := formatInfo(level, mask)
			for a := 0; a < formatInfoLengthBits; a++ {
				for b := a; b < formatInfoLengthBits; b++ {
					for c := b; c < formatInfoLengthBits; c++ {
						damaged := info ^ 1<<uint(a) ^ 1<<uint(b) ^ 1<<uint(c)
						if got := decodeFormatInfo(damaged); got != want {
							t.Fatalf("level %v mask %d bits %d,%d,%d decoded as %d", level, mask, a, b, c, got)
						}
					}
				}
			}
		}
	}
}
