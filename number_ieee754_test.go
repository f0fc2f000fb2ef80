package numtower

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFlonumNormal(t *testing.T) {
	f, e, sign := DecodeFlonum(1.0)
	assert.Equal(t, 1, sign)
	want := new(big.Int).Lsh(big.NewInt(1), 52)
	assert.Equal(t, 0, want.Cmp(f))
	assert.Equal(t, -52, e)
}

func TestDecodeFlonumNegative(t *testing.T) {
	_, _, sign := DecodeFlonum(-2.0)
	assert.Equal(t, -1, sign)
}

func TestDecodeFlonumZero(t *testing.T) {
	f, e, sign := DecodeFlonum(0.0)
	assert.Equal(t, 0, f.Sign())
	assert.Equal(t, 0, e)
	assert.Equal(t, 1, sign)
}

func TestDecodeFlonumDenormal(t *testing.T) {
	tiny := math.Float64frombits(1) // smallest positive denormal
	f, e, sign := DecodeFlonum(tiny)
	assert.Equal(t, 1, sign)
	assert.Equal(t, -1074, e)
	assert.Equal(t, int64(1), f.Int64())
}

func TestEncodeFlonumRoundTrip(t *testing.T) {
	f, e, sign := DecodeFlonum(3.25)
	v, err := EncodeFlonum(f, e, sign)
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)
}

func TestEncodeFlonumRejectsExcessiveExponent(t *testing.T) {
	_, err := EncodeFlonum(big.NewInt(1), 2000, 1)
	require.Error(t, err)
}

func TestDebugBytesOnlyForFlonum(t *testing.T) {
	_, ok := MakeInteger(1).DebugBytes()
	assert.False(t, ok)

	b, ok := Number{kind: KindFlonum, flo: 1.0}.DebugBytes()
	assert.True(t, ok)
	assert.Len(t, b, 8)
}
