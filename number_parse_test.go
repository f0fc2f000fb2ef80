package numtower

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	n, ok, err := Parse("123", ParseConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindFixint, n.Kind())
	assert.Equal(t, int64(123), asInt64(t, n))
}

func TestParseNegativeInteger(t *testing.T) {
	n, ok, err := Parse("-45", ParseConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(-45), asInt64(t, n))
}

func TestParseRational(t *testing.T) {
	n, ok, err := Parse("1/2", ParseConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, KindRatnum, n.Kind())
	num, _ := Numerator(n)
	den, _ := Denominator(n)
	assert.Equal(t, int64(1), asInt64(t, num))
	assert.Equal(t, int64(2), asInt64(t, den))
}

func TestParseDecimalMatchesStdlibRounding(t *testing.T) {
	for _, lit := range []string{"3.14", "0.1", "2.5", "1.0e10", "6.02e23"} {
		n, ok, err := Parse(lit, ParseConfig{})
		require.NoError(t, err)
		require.True(t, ok, "literal %q", lit)
		want, werr := strconv.ParseFloat(lit, 64)
		require.NoError(t, werr)
		assert.Equal(t, want, GetDouble(n), "literal %q", lit)
	}
}

func TestParseHexPrefix(t *testing.T) {
	n, ok, err := Parse("#xFF", ParseConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(255), asInt64(t, n))
}

func TestParseExplicitExactPrefix(t *testing.T) {
	n, ok, err := Parse("#e1.5", ParseConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, n.IsExact())
}

func TestParseExplicitInexactPrefix(t *testing.T) {
	n, ok, err := Parse("#i5", ParseConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, n.IsInexact())
}

func TestParseInfAndNaN(t *testing.T) {
	n, ok, _ := Parse("+inf.0", ParseConfig{})
	require.True(t, ok)
	assert.True(t, math.IsInf(n.flo, 1))

	n2, ok2, _ := Parse("-inf.0", ParseConfig{})
	require.True(t, ok2)
	assert.True(t, math.IsInf(n2.flo, -1))

	n3, ok3, _ := Parse("+nan.0", ParseConfig{})
	require.True(t, ok3)
	assert.True(t, math.IsNaN(n3.flo))
}

func TestParseRectangularComplex(t *testing.T) {
	n, ok, err := Parse("3+4i", ParseConfig{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, KindCompnum, n.Kind())
	re, im := complexParts(n)
	assert.Equal(t, 3.0, re)
	assert.Equal(t, 4.0, im)
}

func TestParsePureImaginary(t *testing.T) {
	n, ok, _ := Parse("-i", ParseConfig{})
	require.True(t, ok)
	re, im := complexParts(n)
	assert.Equal(t, 0.0, re)
	assert.Equal(t, -1.0, im)
}

func TestParseMalformedReturnsNotOK(t *testing.T) {
	_, ok, err := Parse("not-a-number", ParseConfig{})
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestParseMalformedThrowsWhenConfigured(t *testing.T) {
	_, ok, err := Parse("not-a-number", ParseConfig{ThrowOnError: true})
	assert.False(t, ok)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
