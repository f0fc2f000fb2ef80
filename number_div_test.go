package numtower

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivExactStaysExact(t *testing.T) {
	r, err := Div(MakeInteger(1), MakeInteger(3), DivOptions{})
	require.NoError(t, err)
	assert.Equal(t, KindRatnum, r.Kind())
}

func TestDivExactByZeroErrors(t *testing.T) {
	_, err := Div(MakeInteger(1), MakeInteger(0), DivOptions{})
	require.Error(t, err)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestDivInexactForcesFlonum(t *testing.T) {
	r, err := Div(MakeInteger(4), MakeInteger(2), DivOptions{Inexact: true})
	require.NoError(t, err)
	assert.Equal(t, KindFlonum, r.Kind())
	assert.Equal(t, 2.0, r.flo)
}

func TestDivCompatKeepsWholeResultExact(t *testing.T) {
	r, err := Div(MakeInteger(6), MakeInteger(3), DivOptions{Compat: true})
	require.NoError(t, err)
	assert.Equal(t, KindFixint, r.Kind())
}

func TestDivCompatCoercesFractionalResultToFlonum(t *testing.T) {
	r, err := Div(MakeInteger(1), MakeInteger(3), DivOptions{Compat: true})
	require.NoError(t, err)
	assert.Equal(t, KindFlonum, r.Kind())
}

func TestDivByInexactZeroSignFollowsSignbit(t *testing.T) {
	r, err := Div(MakeInteger(1), Number{kind: KindFlonum, flo: math.Copysign(0, -1)}, DivOptions{})
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.flo, -1))
}

func TestDivZeroByInexactZeroIsNaN(t *testing.T) {
	r, err := Div(Number{kind: KindFlonum, flo: 0}, Number{kind: KindFlonum, flo: 0}, DivOptions{})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.flo))
}

func TestComplexDivision(t *testing.T) {
	x := MakeComplex(1, 1) // 1+i
	y := MakeComplex(0, 1) // i
	r, err := Div(x, y, DivOptions{})
	require.NoError(t, err)
	re, im := complexParts(r)
	assert.InDelta(t, 1.0, re, 1e-12)
	assert.InDelta(t, -1.0, im, 1e-12)
}

func TestDivNaNNumeratorByInexactZeroStaysNaN(t *testing.T) {
	r, err := Div(Number{kind: KindFlonum, flo: math.NaN()}, Number{kind: KindFlonum, flo: 0}, DivOptions{})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.flo))

	r2, err := Div(Number{kind: KindFlonum, flo: math.NaN()}, Number{kind: KindFlonum, flo: math.Copysign(0, -1)}, DivOptions{})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r2.flo))
}

func TestComplexDivisionByRealZeroYieldsSignedInfinities(t *testing.T) {
	x := MakeComplex(1, 2)
	r, err := Div(x, MakeInteger(0), DivOptions{})
	require.NoError(t, err)
	require.Equal(t, KindCompnum, r.Kind())
	re, im := complexParts(r)
	assert.True(t, math.IsInf(re, 1))
	assert.True(t, math.IsInf(im, 1))
}

func TestComplexDivisionByNegativeZeroFlipsSign(t *testing.T) {
	x := MakeComplex(1, -2)
	r, err := Div(x, Number{kind: KindFlonum, flo: math.Copysign(0, -1)}, DivOptions{})
	require.NoError(t, err)
	re, im := complexParts(r)
	assert.True(t, math.IsInf(re, -1))
	assert.True(t, math.IsInf(im, 1))
}
