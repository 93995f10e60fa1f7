package tourqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSGeneratorPolyDegree10(t *testing.T) {
	g := rsGeneratorPoly(10)
	require.Equal(t, 11, g.numTerms())

	exponents := []int{0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45}
	for i, e := range exponents {
		assert.Equal(t, gexp(e), g[i], "term %d", i)
	}
}

func TestRSEncodeKnownAnswer(t *testing.T) {
	// 1-M "HELLO WORLD" in alphanumeric mode
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}
	expected := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}

	assert.Equal(t, expected, rsEncode(data, rsGeneratorPoly(10)))
}

func TestRSEncodeLength(t *testing.T) {
	for _, ec := range []int{7, 10, 13, 17, 22, 28, 30} {
		ecBytes := rsEncode(make([]byte, 20), rsGeneratorPoly(ec))
		assert.Len(t, ecBytes, ec)
		assert.Equal(t, make([]byte, ec), ecBytes, "zero data has zero parity")
	}
}

func TestRSEncodeSyndromesVanish(t *testing.T) {
	const ec = 18
	data := make([]byte, 24)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	codeword := append(append([]byte(nil), data...), rsEncode(data, rsGeneratorPoly(ec))...)

	for i := 0; i < ec; i++ {
		// evaluate the codeword polynomial at 2^i
		s := 0
		for _, c := range codeword {
			s = gfMultiply(s, gexp(i)) ^ int(c)
		}
		assert.Equal(t, 0, s, "syndrome %d", i)
	}
}
