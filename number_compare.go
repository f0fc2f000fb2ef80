package numtower

import (
	"math"
	"math/big"
)

// NumCmp returns -1, 0 or 1 comparing x and y. It never signals on
// NaN: if either operand is NaN the result is 0 (NaN compares equal
// to nothing, mathematically, but NumCmp itself does not error —
// callers building <, <=, >, >=, = must screen for IsNaN first, per
// spec.md §4.K).
//
// Mixed exact/inexact comparison is made transitive by first doing a
// cheap double-precision subtraction; only when the difference is
// within a derived tolerance of zero does NumCmp fall back to an
// exact comparison (converting the inexact operand to its exact
// rational via Exact), so that NumCmp(a,b) and NumCmp(b,c) agreeing
// never produces a contradictory NumCmp(a,c) purely from a premature
// inexact rounding.
func NumCmp(x, y Number) int {
	if x.kind == KindCompnum || y.kind == KindCompnum {
		return 0 // complex numbers are unordered; not meaningfully comparable.
	}

	xExact := x.IsExact()
	yExact := y.IsExact()

	if xExact && yExact {
		return exactCmp(x, y)
	}

	xf := GetDouble(x)
	yf := GetDouble(y)
	if xf != xf || yf != yf {
		return 0
	}
	if math.IsInf(xf, 0) || math.IsInf(yf, 0) {
		// A finite exact value never equals an infinity, and Exact()
		// of an infinity is a DomainError, so this case must be
		// screened before falling into the tolerance/exact-conversion
		// path below (where xf-yf would itself be NaN for Inf-Inf).
		switch {
		case xf == yf:
			return 0
		case xf < yf:
			return -1
		default:
			return 1
		}
	}
	diff := xf - yf
	tol := cmpTolerance(x, y, xf, yf)
	if diff > tol || diff < -tol {
		switch {
		case diff > 0:
			return 1
		case diff < 0:
			return -1
		default:
			return 0
		}
	}

	// Within tolerance: convert whichever side is inexact to its exact
	// rational and compare exactly, preserving transitivity.
	d := Dispatcher{}
	ex, err := toExactForCompare(x, d)
	if err != nil {
		return 0
	}
	ey, err := toExactForCompare(y, d)
	if err != nil {
		return 0
	}
	return exactCmp(ex, ey)
}

func toExactForCompare(x Number, d Dispatcher) (Number, error) {
	if x.IsExact() {
		return x, nil
	}
	return Exact(x, d)
}

// cmpTolerance derives the rough-comparison tolerance: max(|xf|,|yf|)
// times 2^-52, one ulp of binary64 precision at the larger magnitude
// of the two operands.
func cmpTolerance(x, y Number, xf, yf float64) float64 {
	mag := xf
	if mag < 0 {
		mag = -mag
	}
	if m := yf; (m < 0 && -m > mag) || (m >= 0 && m > mag) {
		mag = m
		if mag < 0 {
			mag = -mag
		}
	}
	return mag * ulpFraction
}

func exactCmp(x, y Number) int {
	if x.kind == KindFixint && y.kind == KindFixint {
		switch {
		case x.fix < y.fix:
			return -1
		case x.fix > y.fix:
			return 1
		default:
			return 0
		}
	}

	if x.kind == KindRatnum && y.kind == KindRatnum {
		// Screen by sign first; same-sign compares by cross-multiplying.
		sx, sy := x.num.Sign(), y.num.Sign()
		if sx != sy {
			if sx < sy {
				return -1
			}
			return 1
		}
		lhs := new(big.Int).Mul(x.num, y.den)
		rhs := new(big.Int).Mul(y.num, x.den)
		return lhs.Cmp(rhs)
	}

	xn, xd := ratParts(x)
	yn, yd := ratParts(y)
	if xd.Cmp(one) == 0 && yd.Cmp(one) == 0 {
		return xn.Cmp(yn)
	}
	lhs := new(big.Int).Mul(xn, yd)
	rhs := new(big.Int).Mul(yn, xd)
	return lhs.Cmp(rhs)
}

// Equal, Less, LessOrEqual, Greater, GreaterOrEqual build on NumCmp,
// each returning false (rather than erroring) for a NaN operand,
// since spec.md §4.K makes screening NaN the caller's job and "false"
// is the conventional IEEE-754 answer for every ordering predicate
// involving NaN.
func Equal(x, y Number) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return NumCmp(x, y) == 0
}

func Less(x, y Number) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return NumCmp(x, y) < 0
}

func LessOrEqual(x, y Number) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return NumCmp(x, y) <= 0
}

func Greater(x, y Number) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return NumCmp(x, y) > 0
}

func GreaterOrEqual(x, y Number) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return NumCmp(x, y) >= 0
}

// Min and Max follow R7RS contagion: if either argument is inexact,
// the result is coerced to inexact even when the exact argument wins
// the comparison.
func Min(x, y Number) Number { return minMax(x, y, true) }
func Max(x, y Number) Number { return minMax(x, y, false) }

func minMax(x, y Number, wantMin bool) Number {
	cmp := NumCmp(x, y)
	var winner Number
	if wantMin {
		if cmp <= 0 {
			winner = x
		} else {
			winner = y
		}
	} else {
		if cmp >= 0 {
			winner = x
		} else {
			winner = y
		}
	}
	if x.IsInexact() || y.IsInexact() {
		return Inexact(winner)
	}
	return winner
}
