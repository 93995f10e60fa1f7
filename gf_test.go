package tourqr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaloisExpTable(t *testing.T) {
	expected := []int{1, 2, 4, 8, 16, 32, 64, 128, 29, 58, 116, 232, 205, 135, 19, 38}
	for i, want := range expected {
		assert.Equal(t, want, gexp(i), "exp[%d]", i)
	}
	assert.Equal(t, 1, galois().exp[255])
}

func TestGaloisLogInvertsExp(t *testing.T) {
	seen := make(map[int]bool, 255)
	for i := 0; i < 255; i++ {
		v := gexp(i)
		require.False(t, seen[v], "exp[%d]=%d repeated", i, v)
		seen[v] = true
		assert.Equal(t, i, glog(v))
	}
	assert.Len(t, seen, 255)
}

func TestGaloisExpNormalizes(t *testing.T) {
	assert.Equal(t, gexp(0), gexp(255))
	assert.Equal(t, gexp(1), gexp(256))
	assert.Equal(t, gexp(254), gexp(-1))
	assert.Equal(t, gexp(10), gexp(10-3*255))
	assert.Equal(t, gexp(7), gexp(7+2*255))
}

func TestGaloisLogOfZeroPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvariant))
	}()
	glog(0)
}

func TestGaloisMultiply(t *testing.T) {
	assert.Equal(t, 0, gfMultiply(0, 7))
	assert.Equal(t, 0, gfMultiply(7, 0))
	assert.Equal(t, 5, gfMultiply(3, 3))
	assert.Equal(t, 29, gfMultiply(128, 2))
	for a := 1; a < 256; a++ {
		assert.Equal(t, a, gfMultiply(a, 1))
	}
}
