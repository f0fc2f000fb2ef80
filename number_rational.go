package numtower

import "math/big"

// makeRatnumRaw constructs a Ratnum from already-integer n and d without
// reducing or normalizing sign — the raw constructor Gauche calls
// Scm_MakeRatnum, used internally once a caller has already verified
// lowest terms (e.g. when copying a reduced result). d must be a
// nonzero exact integer; a nil or zero d is a programmer error, not a
// recoverable one, matching the raw constructor's contract.
func makeRatnumRaw(n, d *big.Int) Number {
	return Number{kind: KindRatnum, num: new(big.Int).Set(n), den: new(big.Int).Set(d)}
}

// MakeRational builds the canonical Number for n/d: it normalizes the
// sign so the denominator is positive, reduces by gcd, and demotes to
// an integer when the reduced denominator is 1 (invariants 2 and 3 of
// spec.md §3). n and d must both be exact integers (Fixint or
// Bignum); d must be nonzero.
func MakeRational(n, d Number) (Number, error) {
	nb, ok1 := integerAsBig(n)
	db, ok2 := integerAsBig(d)
	if !ok1 || !ok2 || n.kind == KindFlonum || d.kind == KindFlonum {
		return Number{}, typeErr("MakeRational", "numerator and denominator must be exact integers")
	}
	if db.Sign() == 0 {
		return Number{}, domainErr("MakeRational", divByExactZeroDetail)
	}
	return makeRationalBig(nb, db), nil
}

// makeRationalBig is the *big.Int-level worker behind MakeRational,
// also used internally by the arithmetic kernels below so they never
// have to round-trip through Number construction mid-computation.
func makeRationalBig(n, d *big.Int) Number {
	num := new(big.Int).Set(n)
	den := new(big.Int).Set(d)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return fixint(0)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(one) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if den.Cmp(one) == 0 {
		return makeIntegerFromBig(num)
	}
	return makeRatnumRaw(num, den)
}

var one = big.NewInt(1)

// ReduceRational returns x reduced to lowest terms. It is idempotent:
// applying it to an already-canonical Number (of any kind) returns an
// equal Number.
func ReduceRational(x Number) Number {
	if x.kind != KindRatnum {
		return x
	}
	return makeRationalBig(x.num, x.den)
}

// ratnumAdd, ratnumSub, ratnumMul and ratnumDiv implement the standard
// lowest-terms formulas for two Ratnums (or a Ratnum and an integer,
// represented with denominator 1), with the same "does one denominator
// divide the other" short-circuit spec.md §4.C calls for and the
// teacher's rat_arithmetic.go demonstrates with machine words — ported
// here to *big.Int, where the short-circuit saves a GCD rather than
// preventing an overflow.
func ratnumAdd(xn, xd, yn, yd *big.Int) Number { return ratnumAddSub(xn, xd, yn, yd, true) }
func ratnumSub(xn, xd, yn, yd *big.Int) Number { return ratnumAddSub(xn, xd, yn, yd, false) }

func ratnumAddSub(xn, xd, yn, yd *big.Int, add bool) Number {
	if xd.Cmp(yd) == 0 {
		var n *big.Int
		if add {
			n = new(big.Int).Add(xn, yn)
		} else {
			n = new(big.Int).Sub(xn, yn)
		}
		return makeRationalBig(n, xd)
	}

	// Short-circuit: if one denominator divides the other, avoid
	// computing the full cross product and a possibly-unnecessary GCD.
	if r := new(big.Int).Rem(yd, xd); r.Sign() == 0 {
		mult := new(big.Int).Quo(yd, xd)
		scaledXn := new(big.Int).Mul(xn, mult)
		var n *big.Int
		if add {
			n = new(big.Int).Add(scaledXn, yn)
		} else {
			n = new(big.Int).Sub(scaledXn, yn)
		}
		return makeRationalBig(n, yd)
	}
	if r := new(big.Int).Rem(xd, yd); r.Sign() == 0 {
		mult := new(big.Int).Quo(xd, yd)
		scaledYn := new(big.Int).Mul(yn, mult)
		var n *big.Int
		if add {
			n = new(big.Int).Add(xn, scaledYn)
		} else {
			n = new(big.Int).Sub(xn, scaledYn)
		}
		return makeRationalBig(n, xd)
	}

	newDen := new(big.Int).Mul(xd, yd)
	term1 := new(big.Int).Mul(xn, yd)
	term2 := new(big.Int).Mul(yn, xd)
	var newNum *big.Int
	if add {
		newNum = new(big.Int).Add(term1, term2)
	} else {
		newNum = new(big.Int).Sub(term1, term2)
	}
	return makeRationalBig(newNum, newDen)
}

func ratnumMul(xn, xd, yn, yd *big.Int) Number {
	return makeRationalBig(new(big.Int).Mul(xn, yn), new(big.Int).Mul(xd, yd))
}

func ratnumDiv(xn, xd, yn, yd *big.Int) (Number, error) {
	if yn.Sign() == 0 {
		return Number{}, domainErr("Div", divByExactZeroDetail)
	}
	n := new(big.Int).Mul(xn, yd)
	d := new(big.Int).Mul(xd, yn)
	return makeRationalBig(n, d), nil
}

// ratParts returns x's numerator and denominator as *big.Int,
// treating an exact-integer x as n/1.
func ratParts(x Number) (n, d *big.Int) {
	switch x.kind {
	case KindRatnum:
		return x.num, x.den
	case KindFixint:
		return big.NewInt(x.fix), one
	case KindBignum:
		return x.big, one
	default:
		return nil, nil
	}
}

// Numerator returns the numerator of x (x itself, with denominator 1,
// if x is an integer).
func Numerator(x Number) (Number, error) {
	n, _ := ratParts(x)
	if n == nil {
		return Number{}, typeErr("Numerator", "operand must be exact rational")
	}
	return makeIntegerFromBig(n), nil
}

// Denominator returns the denominator of x (1 if x is an integer).
func Denominator(x Number) (Number, error) {
	_, d := ratParts(x)
	if d == nil {
		return Number{}, typeErr("Denominator", "operand must be exact rational")
	}
	return makeIntegerFromBig(d), nil
}
