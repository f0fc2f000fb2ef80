package numtower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRealToRationalSimpleFraction(t *testing.T) {
	r, err := defaultRealToRational{}.Convert(0.25)
	require.NoError(t, err)
	require.True(t, r.IsExact())
	n, _ := Numerator(r)
	d, _ := Denominator(r)
	assert.Equal(t, int64(1), asInt64(t, n))
	assert.Equal(t, int64(4), asInt64(t, d))
}

func TestDefaultRealToRationalNegative(t *testing.T) {
	r, err := defaultRealToRational{}.Convert(-0.5)
	require.NoError(t, err)
	assert.Equal(t, -1, r.Sign())
}

func TestDefaultRealToRationalZero(t *testing.T) {
	r, err := defaultRealToRational{}.Convert(0)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestDefaultRealToRationalRejectsNaN(t *testing.T) {
	_, err := defaultRealToRational{}.Convert(NaN.flo)
	require.Error(t, err)
}

func TestDefaultGenericDispatchErrors(t *testing.T) {
	_, err := (defaultGenericDispatch{}).Dispatch(GenericAdd, 1, 2)
	require.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}
