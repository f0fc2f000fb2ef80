package numtower

import "math"

// DivOptions selects one of Div's three flavors (spec.md §4.F).
type DivOptions struct {
	// Inexact forces the result to Flonum or Compnum.
	Inexact bool
	// Compat keeps the result exact when it is a whole integer and
	// otherwise coerces to Flonum; retained for legacy callers that
	// want "/" to behave like Gauche's compat-mode division.
	Compat bool
}

// Div computes x / y according to opts, applying the tower's division
// contagion and sign rules (spec.md §4.F):
//
//   - Exact/Exact with neither Inexact nor Compat set stays exact
//     (Integer or Ratnum); dividing by exact zero is a DomainError.
//   - Inexact forces a Flonum/Compnum result regardless of operand kinds.
//   - Compat keeps the exact result only when it is a whole integer,
//     otherwise coerces to Flonum.
//   - Division by inexact zero follows anormal/anormal_comp: the sign
//     of the ±∞ or NaN result is the numerator's sign times the
//     signbit of the zero divisor, so x / -0.0 flips sign; exact-zero
//     numerator over inexact zero is NaN.
func Div(x, y Number, opts DivOptions) (Number, error) {
	if x.kind == KindCompnum || y.kind == KindCompnum {
		return complexDiv(x, y)
	}

	exact, _ := contagion(x.kind, y.kind)
	if exact && !opts.Inexact {
		xn, xd := ratParts(x)
		yn, yd := ratParts(y)
		result, err := ratnumDiv(xn, xd, yn, yd)
		if err != nil {
			return Number{}, err
		}
		if opts.Compat && result.kind == KindRatnum {
			return Number{kind: KindFlonum, flo: GetDouble(result)}, nil
		}
		return result, nil
	}

	xf := GetDouble(x)
	yf := GetDouble(y)
	if yf == 0 {
		return Number{kind: KindFlonum, flo: inexactDivByZero(xf, yf)}, nil
	}
	return Number{kind: KindFlonum, flo: xf / yf}, nil
}

// inexactDivByZero derives the sign-appropriate ±∞ or NaN for x/0.0,
// per the anormal branch of Gauche's Scm_Div: a NaN numerator stays
// NaN regardless of the divisor's sign (Gauche short-circuits on
// SCM_IS_NAN(arg0) before ever consulting arg1); otherwise the
// quotient's sign is the numerator's sign times the zero divisor's
// signbit (so dividing by negative zero flips the result's sign), and
// an exact-zero (here, a zero-valued) numerator yields NaN rather than
// an infinity.
func inexactDivByZero(xf, yf float64) float64 {
	if math.IsNaN(xf) {
		return math.NaN()
	}
	if xf == 0 {
		return math.NaN()
	}
	neg := math.Signbit(xf) != math.Signbit(yf)
	if neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// complexDiv implements (r0*r1+i0*i1)/(r1^2+i1^2) + (i0*r1-r0*i1)/(r1^2+i1^2)*i,
// the rectangular complex division formula of spec.md §4.F, grounded
// on Gauche's anormal_comp branch in number.c.
//
// A real (non-complex) divisor is handled by dividing each component
// independently rather than through the r1^2+i1^2 formula: Compnum is
// inherently inexact, so a zero divisor here is never the "exact
// division by exact zero" DomainError case, and a real zero divisor
// applies the same anormal sign-derivation to the real and imaginary
// parts of x independently, same as anormal_comp's fallthrough.
func complexDiv(x, y Number) (Number, error) {
	r0, i0 := complexParts(x)
	r1, i1 := complexParts(y)

	if i1 == 0 {
		if r1 == 0 {
			return MakeComplex(inexactDivByZero(r0, r1), inexactDivByZero(i0, r1)), nil
		}
		return MakeComplex(r0/r1, i0/r1), nil
	}

	denom := r1*r1 + i1*i1
	if denom == 0 {
		reNum := r0*r1 + i0*i1
		imNum := i0*r1 - r0*i1
		return MakeComplex(inexactDivByZero(reNum, denom), inexactDivByZero(imNum, denom)), nil
	}
	re := (r0*r1 + i0*i1) / denom
	im := (i0*r1 - r0*i1) / denom
	return MakeComplex(re, im), nil
}
