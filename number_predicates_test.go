package numtower

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExactInexact(t *testing.T) {
	assert.True(t, MakeInteger(1).IsExact())
	assert.False(t, MakeInteger(1).IsInexact())
	assert.True(t, Number{kind: KindFlonum, flo: 1.5}.IsInexact())
}

func TestIsIntegerOnIntegralFlonum(t *testing.T) {
	assert.True(t, Number{kind: KindFlonum, flo: 4.0}.IsInteger())
	assert.False(t, Number{kind: KindFlonum, flo: 4.5}.IsInteger())
}

func TestIsRationalExcludesNaNAndInf(t *testing.T) {
	assert.False(t, NaN.IsRational())
	assert.False(t, PosInf.IsRational())
	assert.True(t, MakeInteger(3).IsRational())
}

func TestIsRealExcludesCompnum(t *testing.T) {
	assert.False(t, MakeComplex(1, 1).IsReal())
	assert.True(t, MakeInteger(1).IsReal())
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, MakeInteger(-5).Sign())
	assert.Equal(t, 0, MakeInteger(0).Sign())
	assert.Equal(t, 1, MakeInteger(5).Sign())
	assert.Equal(t, 0, NaN.Sign())
}

func TestIsOddIsEven(t *testing.T) {
	assert.True(t, MakeInteger(3).IsOdd())
	assert.True(t, MakeInteger(4).IsEven())
}

func TestIsNaNIsInfinite(t *testing.T) {
	assert.True(t, NaN.IsNaN())
	assert.True(t, PosInf.IsInfinite())
	assert.False(t, MakeInteger(1).IsInfinite())
}
