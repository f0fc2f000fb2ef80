package numtower

import "math/big"

// Kind discriminates the five arms of the numeric tower.
type Kind uint8

const (
	// KindFixint is a signed machine word in [FixMin, FixMax].
	KindFixint Kind = iota
	// KindBignum is an arbitrary-precision integer outside the Fixint range.
	KindBignum
	// KindRatnum is an exact numerator/denominator pair in lowest terms.
	KindRatnum
	// KindFlonum is an IEEE-754 binary64 value.
	KindFlonum
	// KindCompnum is a rectangular complex number with a nonzero imaginary part.
	KindCompnum
)

// String names the Kind, mostly for test failure messages and panics.
func (k Kind) String() string {
	switch k {
	case KindFixint:
		return "Fixint"
	case KindBignum:
		return "Bignum"
	case KindRatnum:
		return "Ratnum"
	case KindFlonum:
		return "Flonum"
	case KindCompnum:
		return "Compnum"
	default:
		return "Kind(?)"
	}
}

// FixMax and FixMin bound the Fixint range. The range is symmetric
// ([-FixMax, FixMax]) and strictly inside int64's range so that
// negating any Fixint never overflows int64 — see Design Note 9 and
// SPEC_FULL.md's Open Questions §3.
const (
	FixMax = 1<<61 - 1
	FixMin = -FixMax
)

// Number is a value of the numeric tower. The zero Number is the
// Fixint 0. Numbers are immutable; every operation in this package
// returns a new Number rather than mutating its operands.
type Number struct {
	kind Kind

	fix int64    // KindFixint
	big *big.Int // KindBignum

	num *big.Int // KindRatnum: numerator
	den *big.Int // KindRatnum: denominator (> 1)

	flo float64 // KindFlonum: value; KindCompnum: real part
	im  float64 // KindCompnum: imaginary part (always != 0)
}

// Kind reports which arm of the tower x occupies.
func (x Number) Kind() Kind { return x.kind }

// fixint builds a Fixint Number without range-checking x. Callers must
// have already verified FixMin <= x <= FixMax; use MakeInteger
// otherwise.
func fixint(x int64) Number {
	return Number{kind: KindFixint, fix: x}
}

// bignum builds a Bignum Number from an already-normalized *big.Int
// known not to fit in the Fixint range. Callers must use MakeInteger
// or makeIntegerFromBig for values that might fit.
func bignum(b *big.Int) Number {
	return Number{kind: KindBignum, big: new(big.Int).Set(b)}
}

var (
	bigFixMax = big.NewInt(FixMax)
	bigFixMin = big.NewInt(FixMin)
)

// makeIntegerFromBig normalizes b: demotes to Fixint when it fits,
// otherwise returns a Bignum. This is invariant 1 of spec.md §3.
func makeIntegerFromBig(b *big.Int) Number {
	if b.IsInt64() {
		v := b.Int64()
		if v >= FixMin && v <= FixMax {
			return fixint(v)
		}
	}
	return bignum(b)
}

// MakeInteger returns the canonical Number for the machine integer x:
// a Fixint if x is in range, otherwise a single-value Bignum.
func MakeInteger(x int64) Number {
	if x >= FixMin && x <= FixMax {
		return fixint(x)
	}
	return bignum(big.NewInt(x))
}

// MakeBignum normalizes b (which may be nil, meaning zero) into the
// canonical Number, demoting to Fixint per invariant 1 when it fits.
func MakeBignum(b *big.Int) Number {
	if b == nil {
		return fixint(0)
	}
	return makeIntegerFromBig(b)
}

// Zero, One and MinusOne are the exact-integer constants most
// frequently needed by callers; they avoid repeated small
// allocations in hot paths, mirroring the teacher's Zero()/One().
func Zero() Number     { return fixint(0) }
func One() Number      { return fixint(1) }
func MinusOne() Number { return fixint(-1) }

// Distinguished inexact constants (spec.md §3).
var (
	PosInf = Number{kind: KindFlonum, flo: posInf()}
	NegInf = Number{kind: KindFlonum, flo: negInf()}
	NaN    = Number{kind: KindFlonum, flo: nanValue()}
)

// Distinguished exact-integer witnesses used as range gates and
// tower-comparison witnesses by the printer, reader and comparator
// (spec.md §3).
var (
	Two31    = MakeInteger(1 << 31)
	Two32    = makeIntegerFromBig(new(big.Int).Lsh(big.NewInt(1), 32))
	Two52    = makeIntegerFromBig(new(big.Int).Lsh(big.NewInt(1), 52))
	Two53    = makeIntegerFromBig(new(big.Int).Lsh(big.NewInt(1), 53))
	Two63    = makeIntegerFromBig(new(big.Int).Lsh(big.NewInt(1), 63))
	Two64    = makeIntegerFromBig(new(big.Int).Lsh(big.NewInt(1), 64))
	NegTwo31 = MakeInteger(-(1 << 31))
	NegTwo63 = makeIntegerFromBig(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 63)))
)
