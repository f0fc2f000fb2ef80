package numtower

import "math/bits"

// Dispatcher holds the host hooks numtower's generic arithmetic falls
// through to. The zero Dispatcher uses defaultGenericDispatch and
// defaultRealToRational; a host runtime installs its own to integrate
// with its object system (spec.md §6).
type Dispatcher struct {
	Generic        GenericDispatch
	RealToRational RealToRational
}

func (d Dispatcher) generic() GenericDispatch {
	if d.Generic != nil {
		return d.Generic
	}
	return defaultGenericDispatch{}
}

func (d Dispatcher) realToRational() RealToRational {
	if d.RealToRational != nil {
		return d.RealToRational
	}
	return defaultRealToRational{}
}

// AddAny, SubAny, MulAny, DivAny accept either a Number or a
// host-defined operand type; when either side is not a Number the
// call is routed through the Dispatcher's GenericDispatch hook, the
// sole externally-visible extension point of spec.md §4.E.
func (d Dispatcher) AddAny(x, y any) (Number, error) { return d.dispatchAny(GenericAdd, x, y) }
func (d Dispatcher) SubAny(x, y any) (Number, error) { return d.dispatchAny(GenericSub, x, y) }
func (d Dispatcher) MulAny(x, y any) (Number, error) { return d.dispatchAny(GenericMul, x, y) }
func (d Dispatcher) DivAny(x, y any) (Number, error) { return d.dispatchAny(GenericDiv, x, y) }

func (d Dispatcher) dispatchAny(op GenericOp, x, y any) (Number, error) {
	xn, xok := x.(Number)
	yn, yok := y.(Number)
	if xok && yok {
		switch op {
		case GenericAdd:
			return Add(xn, yn)
		case GenericSub:
			return Sub(xn, yn)
		case GenericMul:
			return Mul(xn, yn)
		case GenericDiv:
			return Div(xn, yn, DivOptions{})
		}
	}
	return d.generic().Dispatch(op, x, y)
}

// contagion reports the tower level the result of combining kinds x
// and y must land on: Exact arms combine to Exact (Ratnum when not
// both integer), any Inexact arm taints the result to Inexact (Flonum,
// or Compnum if either side is complex) — spec.md §4.E.
func contagion(x, y Kind) (exact bool, complex bool) {
	xExact := x == KindFixint || x == KindBignum || x == KindRatnum
	yExact := y == KindFixint || y == KindBignum || y == KindRatnum
	return xExact && yExact, x == KindCompnum || y == KindCompnum
}

// Add returns x + y, applying the tower's contagion and short-circuit
// rules (spec.md §4.E): 0 + x and x + 0 return x unchanged when the
// zero is an exact Fixint and x is an exact integer; every other pair
// proceeds through the dispatch table below.
func Add(x, y Number) (Number, error) {
	if x.kind == KindFixint && x.fix == 0 && (y.kind == KindFixint || y.kind == KindBignum) {
		return y, nil
	}
	if y.kind == KindFixint && y.fix == 0 && (x.kind == KindFixint || x.kind == KindBignum) {
		return x, nil
	}
	return combine(x, y, opAdd)
}

// Sub returns x - y, with the x - 0 short-circuit of spec.md §4.E.
func Sub(x, y Number) (Number, error) {
	if y.kind == KindFixint && y.fix == 0 && (x.kind == KindFixint || x.kind == KindBignum) {
		return x, nil
	}
	return combine(x, y, opSub)
}

// Mul returns x * y, with the 1*x short-circuit and the "0 * inexact =
// exact 0" contagion exception of spec.md §4.E and §8.
func Mul(x, y Number) (Number, error) {
	if isExactOne(x) {
		return y, nil
	}
	if isExactOne(y) {
		return x, nil
	}
	if isExactZero(x) || isExactZero(y) {
		return fixint(0), nil
	}
	return combine(x, y, opMul)
}

func isExactOne(x Number) bool {
	switch x.kind {
	case KindFixint:
		return x.fix == 1
	case KindBignum:
		return x.big.Cmp(one) == 0
	default:
		return false
	}
}

func isExactZero(x Number) bool {
	switch x.kind {
	case KindFixint:
		return x.fix == 0
	case KindBignum:
		return x.big.Sign() == 0
	default:
		return false
	}
}

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
)

// combine is the 5x5 dispatch table. Real exact/exact combinations
// promote through rational arithmetic; any inexact operand routes
// through the Flonum/Compnum kernels.
func combine(x, y Number, op arithOp) (Number, error) {
	exact, cplx := contagion(x.kind, y.kind)
	if exact {
		xn, xd := ratParts(x)
		yn, yd := ratParts(y)
		if xn == nil || yn == nil {
			return Number{}, typeErr("arith", notANumberDetail)
		}
		// Fast path: both Fixint and the denominators are both 1 (plain
		// integers) — use checked machine-word arithmetic before
		// falling back to big.Int, per spec.md §4.E ("Fixint+Fixint
		// addition/subtraction uses machine-word arithmetic with
		// overflow check").
		if x.kind == KindFixint && y.kind == KindFixint {
			if n, ok := fixintFastPath(x.fix, y.fix, op); ok {
				return n, nil
			}
		}
		switch op {
		case opAdd:
			return ratnumAdd(xn, xd, yn, yd), nil
		case opSub:
			return ratnumSub(xn, xd, yn, yd), nil
		case opMul:
			return ratnumMul(xn, xd, yn, yd), nil
		}
	}

	if cplx {
		xr, xi := complexParts(x)
		yr, yi := complexParts(y)
		switch op {
		case opAdd:
			return MakeComplex(xr+yr, xi+yi), nil
		case opSub:
			return MakeComplex(xr-yr, xi-yi), nil
		case opMul:
			return MakeComplex(xr*yr-xi*yi, xr*yi+xi*yr), nil
		}
	}

	xf := GetDouble(x)
	yf := GetDouble(y)
	switch op {
	case opAdd:
		return Number{kind: KindFlonum, flo: xf + yf}, nil
	case opSub:
		return Number{kind: KindFlonum, flo: xf - yf}, nil
	case opMul:
		return Number{kind: KindFlonum, flo: xf * yf}, nil
	}
	return Number{}, typeErr("arith", "unreachable arithmetic op")
}

// fixintFastPath performs checked machine-word add/sub/mul between two
// Fixints, returning ok=false when the operation would leave the
// Fixint range (the caller then promotes through big.Int instead).
// Grounded on the teacher's willOverflowInt64Add/Sub/Mul idiom,
// adapted to math/bits' overflow-detecting primitives and to the
// tower's narrower (symmetric) Fixint range rather than the full
// int64 range.
func fixintFastPath(a, b int64, op arithOp) (Number, bool) {
	switch op {
	case opAdd:
		sum, carry := bits.Add64(uint64(a), uint64(b), 0)
		if carry != 0 && a >= 0 && b >= 0 {
			return Number{}, false
		}
		r := int64(sum)
		if r < FixMin || r > FixMax {
			return Number{}, false
		}
		return fixint(r), true
	case opSub:
		diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
		_ = borrow
		r := int64(diff)
		if r < FixMin || r > FixMax || willOverflowSub(a, b, r) {
			return Number{}, false
		}
		return fixint(r), true
	case opMul:
		hi, lo := bits.Mul64(absU64(a), absU64(b))
		if hi != 0 {
			return Number{}, false
		}
		sameSign := (a >= 0) == (b >= 0)
		var r int64
		if sameSign {
			if lo > FixMax {
				return Number{}, false
			}
			r = int64(lo)
		} else {
			if lo > -FixMin {
				return Number{}, false
			}
			r = -int64(lo)
		}
		return fixint(r), true
	}
	return Number{}, false
}

func willOverflowSub(a, b, r int64) bool {
	// Overflow iff the operands' signs differ and the result's sign
	// doesn't match a's sign.
	return ((a >= 0) != (b >= 0)) && ((r >= 0) != (a >= 0))
}

func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
