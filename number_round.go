package numtower

import (
	"math"
	"math/big"
)

// RoundMode selects one of Round's four rounding rules (spec.md §4.G).
type RoundMode uint8

const (
	Floor RoundMode = iota
	Ceil
	Trunc
	RoundEven
)

// Round applies mode to x (spec.md §4.G). An exact integer is
// returned unchanged. A Ratnum rounds via its (quotient, remainder)
// pair, adjusting by 0 or ±1 per mode, with RoundEven comparing
// 2*|remainder| to the denominator to break ties. A Flonum rounds via
// math.Floor/Ceil/Trunc and a hand-rolled round-half-to-even — never
// math.Round, which (like C's round(3)) rounds halves away from zero
// rather than to even.
func Round(x Number, mode RoundMode) (Number, error) {
	switch x.kind {
	case KindFixint, KindBignum:
		return x, nil
	case KindRatnum:
		return roundRatnum(x, mode), nil
	case KindFlonum:
		return Number{kind: KindFlonum, flo: roundFlonum(x.flo, mode)}, nil
	default:
		return Number{}, typeErr("Round", "operand must be real")
	}
}

func roundRatnum(x Number, mode RoundMode) Number {
	n, d := x.num, x.den
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() == 0 {
		return makeIntegerFromBig(q)
	}

	neg := r.Sign() < 0
	switch mode {
	case Trunc:
		// q already truncates toward zero.
	case Floor:
		if neg {
			q.Sub(q, one)
		}
	case Ceil:
		if !neg {
			q.Add(q, one)
		}
	case RoundEven:
		absR := new(big.Int).Abs(r)
		twice := new(big.Int).Lsh(absR, 1)
		cmp := twice.Cmp(d)
		roundAway := cmp > 0 || (cmp == 0 && q.Bit(0) == 1)
		if roundAway {
			if neg {
				q.Sub(q, one)
			} else {
				q.Add(q, one)
			}
		}
	}
	return makeIntegerFromBig(q)
}

func roundFlonum(f float64, mode RoundMode) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	var r float64
	switch mode {
	case Floor:
		r = math.Floor(f)
	case Ceil:
		r = math.Ceil(f)
	case Trunc:
		r = math.Trunc(f)
	case RoundEven:
		r = roundHalfToEven(f)
	}
	if r == 0 {
		return 0 // never emit -0.0
	}
	return r
}

// roundHalfToEven implements round-half-to-even directly rather than
// via math.Round, which rounds halves away from zero (the C round(3)
// behavior spec.md §4.G warns off).
func roundHalfToEven(f float64) float64 {
	lower := math.Floor(f)
	diff := f - lower
	switch {
	case diff < 0.5:
		return lower
	case diff > 0.5:
		return lower + 1
	default:
		if math.Mod(lower, 2) == 0 {
			return lower
		}
		return lower + 1
	}
}

// Exact converts x to an exact Number (spec.md §4.G). A Flonum NaN or
// infinity is a DomainError; an integral Flonum converts bit-exactly
// via its IEEE-754 decomposition; a fractional Flonum delegates to the
// configured RealToRational host hook (the simplest rational within
// one ulp). A Compnum is a DomainError (exact complex numbers are not
// representable).
func Exact(x Number, d Dispatcher) (Number, error) {
	switch x.kind {
	case KindFixint, KindBignum, KindRatnum:
		return x, nil
	case KindCompnum:
		return Number{}, domainErr("Exact", exactComplexDetail)
	case KindFlonum:
		if math.IsNaN(x.flo) || math.IsInf(x.flo, 0) {
			return Number{}, domainErr("Exact", exactInfOrNaNDetail)
		}
		if math.Trunc(x.flo) == x.flo {
			return FlonumIntegerToExact(x.flo), nil
		}
		return d.realToRational().Convert(x.flo)
	default:
		return Number{}, typeErr("Exact", notANumberDetail)
	}
}

// FlonumIntegerToExact converts an integral, finite Flonum to its
// exact integer value bit-exactly, via DecodeFlonum's mantissa/exponent
// pair rather than a lossy round-trip through big.Float.
func FlonumIntegerToExact(f float64) Number {
	mant, exp, sign := DecodeFlonum(f)
	if mant.Sign() == 0 {
		return fixint(0)
	}
	var b *big.Int
	if exp >= 0 {
		b = new(big.Int).Lsh(mant, uint(exp))
	} else {
		b = new(big.Int).Rsh(mant, uint(-exp))
	}
	if sign < 0 {
		b.Neg(b)
	}
	return makeIntegerFromBig(b)
}

// Inexact coerces x to a Flonum via GetDouble (spec.md §4.G). A
// Compnum is returned unchanged (it is already inexact).
func Inexact(x Number) Number {
	if x.kind == KindFlonum || x.kind == KindCompnum {
		return x
	}
	return Number{kind: KindFlonum, flo: GetDouble(x)}
}
