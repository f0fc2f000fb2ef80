package numtower

import "math/big"

// GenericOp names the arithmetic operation being dispatched to a host
// hook when an operand is not a Number (spec.md §6: "generic-function
// dispatch for each of +, -, x, /").
type GenericOp uint8

const (
	GenericAdd GenericOp = iota
	GenericSub
	GenericMul
	GenericDiv
)

// GenericDispatch is the sole externally-visible extension point of
// the tower's arithmetic (spec.md §4.E, §6): when an operand to
// Dispatcher's AddAny, SubAny, MulAny or DivAny is not a Number, the
// dispatch is routed here instead of erroring outright, letting a host
// runtime implement generic arithmetic over its own object system.
type GenericDispatch interface {
	Dispatch(op GenericOp, x, y any) (Number, error)
}

// defaultGenericDispatch is installed when no host hook is configured;
// it always reports ErrNotANumber, matching spec.md §7's TypeError
// category for "non-numeric operand where a number is required."
type defaultGenericDispatch struct{}

func (defaultGenericDispatch) Dispatch(op GenericOp, x, y any) (Number, error) {
	return Number{}, typeErr("GenericDispatch", notANumberDetail)
}

// RealToRational is the host hook Exact() delegates to for a
// fractional Flonum (spec.md §4.G): "the simplest rational within one
// ulp." numtower ships defaultRealToRational as a working reference
// implementation; a host runtime may install a different one (e.g. one
// that consults its own numeric-tower configuration for ulp tolerance).
type RealToRational interface {
	Convert(f float64) (Number, error)
}

type defaultRealToRational struct{}

// Convert implements the "simplest fraction within one ulp" contract
// via a Stern–Brocot mediant search: it walks the fraction tree
// bisecting between known-too-low and known-too-high bounds, which at
// each step is the simplest possible next candidate, and stops as soon
// as a candidate lands within the target's representable ulp window.
// This is the same idea as the teacher's float64ToRatExact, generalized
// from "bit-exact" to "simplest within tolerance."
func (defaultRealToRational) Convert(f float64) (Number, error) {
	if f != f {
		return Number{}, domainErr("Exact", exactInfOrNaNDetail)
	}
	neg := f < 0
	if neg {
		f = -f
	}
	if f == 0 {
		return fixint(0), nil
	}

	lo := f * (1 - ulpFraction)
	hi := f * (1 + ulpFraction)
	if lo < 0 {
		lo = 0
	}

	result := sternBrocotSimplest(lo, hi)
	if neg {
		n, d := ratParts(result)
		result = makeRationalBig(new(big.Int).Neg(n), d)
	}
	return result, nil
}

// ulpFraction approximates one ulp at binary64 precision as a relative
// tolerance; callers needing bit-exact conversion of an integral
// Flonum use FlonumIntegerToExact instead, which never approximates.
const ulpFraction = 1.0 / (1 << 52)

// sternBrocotSimplest returns the simplest rational p/q (smallest q)
// with lo <= p/q <= hi, both nonnegative, via the classic
// continued-fraction mediant walk between 0/1 and 1/0.
func sternBrocotSimplest(lo, hi float64) Number {
	type frac struct{ n, d *big.Int }
	a := frac{big.NewInt(0), big.NewInt(1)}
	b := frac{big.NewInt(1), big.NewInt(0)}

	for i := 0; i < 10000; i++ {
		mn := new(big.Int).Add(a.n, b.n)
		md := new(big.Int).Add(a.d, b.d)
		mf := new(big.Float).Quo(new(big.Float).SetInt(mn), new(big.Float).SetInt(md))
		v, _ := mf.Float64()
		switch {
		case v < lo:
			a = frac{mn, md}
		case v > hi:
			b = frac{mn, md}
		default:
			if md.Cmp(one) == 0 {
				return makeIntegerFromBig(mn)
			}
			return makeRatnumRaw(mn, md)
		}
	}
	// Should not happen for any finite float64 within ulpFraction
	// tolerance; fall back to the mediant reached so far.
	mn := new(big.Int).Add(a.n, b.n)
	md := new(big.Int).Add(a.d, b.d)
	return makeRationalBig(mn, md)
}
