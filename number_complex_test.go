package numtower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeComplexDemotesZeroImaginary(t *testing.T) {
	n := MakeComplex(3.0, 0)
	assert.Equal(t, KindFlonum, n.Kind())
	assert.Equal(t, 3.0, n.flo)
}

func TestMakeComplexKeepsNonzeroImaginary(t *testing.T) {
	n := MakeComplex(1, 2)
	assert.Equal(t, KindCompnum, n.Kind())
}

func TestRealPartImagPartOfReal(t *testing.T) {
	re, err := RealPart(MakeInteger(5))
	require.NoError(t, err)
	assert.Equal(t, MakeInteger(5), re)

	im, err := ImagPart(MakeInteger(5))
	require.NoError(t, err)
	assert.True(t, im.IsZero())
}

func TestRealPartImagPartOfCompnum(t *testing.T) {
	c := MakeComplex(1, 2)
	re, err := RealPart(c)
	require.NoError(t, err)
	assert.Equal(t, 1.0, re.flo)

	im, err := ImagPart(c)
	require.NoError(t, err)
	assert.Equal(t, 2.0, im.flo)
}

func TestMakeComplexPolarPIQuadrants(t *testing.T) {
	// mag=1, k=0.5 -> angle = pi/2 -> (0, 1)
	n := MakeComplexPolarPI(1, 0.5)
	re, im := complexParts(n)
	assert.InDelta(t, 0.0, re, 1e-12)
	assert.InDelta(t, 1.0, im, 1e-12)
}

func TestMakeComplexPolarPIZeroAngle(t *testing.T) {
	n := MakeComplexPolarPI(2, 0)
	re, im := complexParts(n)
	assert.InDelta(t, 2.0, re, 1e-12)
	assert.InDelta(t, 0.0, im, 1e-12)
}
