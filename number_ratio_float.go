package numtower

import "math/big"

// GetDouble converts any real Number to its nearest float64, rounding
// exact rationals to nearest with ties to even (spec.md §4.H). A
// Compnum's real part is returned verbatim; callers that need to
// reject complex input should check IsReal first.
//
// Fixint and Flonum have direct hardware conversions. Bignum and
// Ratnum route through math/big.Rat, which is the same opaque bignum
// engine this module already treats n/d pairs as living on top of
// (spec.md §6); big.Rat.Float64 is itself a correctly-rounded
// binary-scaling conversion, so there is no separate bit-shifting
// algorithm to maintain here distinct from the engine's own.
func GetDouble(x Number) float64 {
	switch x.kind {
	case KindFixint:
		return float64(x.fix)
	case KindFlonum, KindCompnum:
		return x.flo
	case KindBignum:
		f, _ := new(big.Rat).SetInt(x.big).Float64()
		return f
	case KindRatnum:
		f, _ := new(big.Rat).SetFrac(x.num, x.den).Float64()
		return f
	default:
		return nanValue()
	}
}
