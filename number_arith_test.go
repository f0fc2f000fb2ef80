package numtower

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFixintFastPath(t *testing.T) {
	cases := []struct {
		name    string
		x, y    int64
		wantFix int64
	}{
		{"small positive", 2, 3, 5},
		{"small negative", -7, 3, -4},
		{"zero plus x", 0, 42, 42},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Add(MakeInteger(tt.x), MakeInteger(tt.y))
			require.NoError(t, err)
			assert.Equal(t, KindFixint, r.Kind())
			got, _, err := GetIntegerClamp[int64](r, ClampNone)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFix, got)
		})
	}
}

func TestAddPromotesToBignumOnOverflow(t *testing.T) {
	r, err := Add(MakeInteger(FixMax), MakeInteger(1))
	require.NoError(t, err)
	assert.Equal(t, KindBignum, r.Kind())
}

func TestMulZeroTimesInexactIsExactZero(t *testing.T) {
	r, err := Mul(fixint(0), Number{kind: KindFlonum, flo: 3.5})
	require.NoError(t, err)
	assert.Equal(t, KindFixint, r.Kind())
	assert.True(t, r.IsZero())
}

func TestMulOneShortCircuit(t *testing.T) {
	x := Number{kind: KindFlonum, flo: 7.25}
	r, err := Mul(fixint(1), x)
	require.NoError(t, err)
	assert.Equal(t, x, r)
}

func TestSubXMinusZero(t *testing.T) {
	r, err := Sub(MakeInteger(9), fixint(0))
	require.NoError(t, err)
	assert.Equal(t, MakeInteger(9), r)
}

func TestAddRationalContagion(t *testing.T) {
	half, err := MakeRational(fixint(1), fixint(2))
	require.NoError(t, err)
	third, err := MakeRational(fixint(1), fixint(3))
	require.NoError(t, err)
	r, err := Add(half, third)
	require.NoError(t, err)
	require.Equal(t, KindRatnum, r.Kind())
	n, _ := Numerator(r)
	d, _ := Denominator(r)
	gotN, _, _ := GetIntegerClamp[int64](n, ClampNone)
	gotD, _, _ := GetIntegerClamp[int64](d, ClampNone)
	assert.Equal(t, int64(5), gotN)
	assert.Equal(t, int64(6), gotD)
}

func TestAddExactInexactContagion(t *testing.T) {
	r, err := Add(fixint(1), Number{kind: KindFlonum, flo: 0.5})
	require.NoError(t, err)
	assert.Equal(t, KindFlonum, r.Kind())
	assert.Equal(t, 1.5, r.flo)
}

func TestMulComplexContagion(t *testing.T) {
	i := MakeComplex(0, 1)
	r, err := Mul(i, i)
	require.NoError(t, err)
	require.Equal(t, KindFlonum, r.Kind())
	got, _, _ := GetIntegerClamp[int64](r, ClampNone)
	assert.Equal(t, int64(-1), got)
}

func TestDispatcherAddAnyRoutesNonNumberToGenericHook(t *testing.T) {
	d := Dispatcher{}
	_, err := d.AddAny("not a number", fixint(1))
	require.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestDispatcherAddAnyBothNumbersBypassesHook(t *testing.T) {
	d := Dispatcher{}
	r, err := d.AddAny(fixint(2), fixint(3))
	require.NoError(t, err)
	n := r
	assert.Equal(t, int64(5), n.fix)
}

func TestFixintFastPathMulOverflowPromotes(t *testing.T) {
	big1 := MakeInteger(FixMax)
	r, err := Mul(big1, MakeInteger(2))
	require.NoError(t, err)
	assert.Equal(t, KindBignum, r.Kind())
	want := new(big.Int).Mul(big.NewInt(FixMax), big.NewInt(2))
	assert.Equal(t, 0, want.Cmp(r.big))
}

func TestContagionTable(t *testing.T) {
	exact, cplx := contagion(KindFixint, KindRatnum)
	assert.True(t, exact)
	assert.False(t, cplx)

	exact, cplx = contagion(KindFixint, KindFlonum)
	assert.False(t, exact)
	assert.False(t, cplx)

	exact, cplx = contagion(KindFlonum, KindCompnum)
	assert.False(t, exact)
	assert.True(t, cplx)
}

func TestAddNaNPropagates(t *testing.T) {
	r, err := Add(fixint(1), NaN)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.flo))
}
