package numtower

import (
	"math/big"
	"strings"
)

// Exactness forces or leaves contextual the exactness Parse assigns
// to a literal lacking an explicit #e/#i prefix.
type Exactness uint8

const (
	ExactnessContextual Exactness = iota
	ExactnessForceExact
	ExactnessForceInexact
)

// ParseConfig mirrors spec.md §6's parser configuration.
type ParseConfig struct {
	Radix        int // default 10; overridden by an explicit #b/#o/#d/#x/#<n>r prefix
	Exactness    Exactness
	StrictR7RS   bool // reject underscores and other extensions
	ThrowOnError bool // return a *ParseError instead of ok=false on failure
}

// Parse reads a single numeric literal per the grammar of spec.md
// §4.I/§6 (prefix, radix, exactness, integer/rational/decimal,
// rectangular and polar complex forms). On success ok is true. On
// failure, ok is false; err is non-nil only when cfg.ThrowOnError is
// set.
func Parse(s string, cfg ParseConfig) (result Number, ok bool, err error) {
	if cfg.Radix == 0 {
		cfg.Radix = 10
	}
	p := &parser{s: s, cfg: cfg}
	n, good := p.parsePrefixedComplex()
	if !good || p.pos != len(p.s) {
		if cfg.ThrowOnError {
			return Number{}, false, &ParseError{Input: s, Detail: "malformed number literal"}
		}
		return Number{}, false, nil
	}
	return n, true, nil
}

type parser struct {
	s       string
	pos     int
	cfg     ParseConfig
	forced  Exactness // set by an explicit #e/#i prefix
	sawHash bool       // a trailing '#' digit was read; flips contextual exactness to inexact
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) at(off int) byte {
	if p.pos+off >= len(p.s) {
		return 0
	}
	return p.s[p.pos+off]
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

// parsePrefixedComplex consumes up to two prefix markers (radix,
// exactness, in either order) then a <complex>.
func (p *parser) parsePrefixedComplex() (Number, bool) {
	for i := 0; i < 2; i++ {
		if !p.tryPrefixMarker() {
			break
		}
	}
	return p.parseComplex()
}

func (p *parser) tryPrefixMarker() bool {
	if p.peek() != '#' {
		return false
	}
	c := lowerByte(p.at(1))
	switch c {
	case 'b':
		p.cfg.Radix = 2
	case 'o':
		p.cfg.Radix = 8
	case 'd':
		p.cfg.Radix = 10
	case 'x':
		p.cfg.Radix = 16
	case 'e':
		p.forced = ExactnessForceExact
	case 'i':
		p.forced = ExactnessForceInexact
	default:
		// #<digits>r form
		save := p.pos
		p.pos += 1
		start := p.pos
		for isDigit(p.peek(), 10) {
			p.pos++
		}
		if p.pos > start && lowerByte(p.peek()) == 'r' {
			radix, ok := parseIntLiteral(p.s[start:p.pos], 10)
			if ok && radix.IsInt64() {
				p.cfg.Radix = int(radix.Int64())
				p.pos++
				return true
			}
		}
		p.pos = save
		return false
	}
	p.pos += 2
	return true
}

// parseComplex handles the four complex productions of spec.md §4.I.
func (p *parser) parseComplex() (Number, bool) {
	start := p.pos

	// [<real>] <sign> 'i'  or  [<real>] <sign> <ureal> 'i'  (pure imaginary
	// or rectangular with omitted real part, e.g. "+i", "-3i").
	if p.peek() == '+' || p.peek() == '-' {
		save := p.pos
		sign := p.peek()
		p.pos++
		if lowerByte(p.peek()) == 'i' && (p.pos+1 == len(p.s) || !isIdentChar(p.at(1))) {
			p.pos++
			im := 1.0
			if sign == '-' {
				im = -1.0
			}
			return MakeComplex(0, im), true
		}
		p.pos = save
	}

	re, ok := p.parseReal()
	if !ok {
		p.pos = start
		return Number{}, false
	}

	switch p.peek() {
	case '@':
		p.pos++
		angle, ok := p.parseReal()
		if !ok {
			return Number{}, false
		}
		if strings.HasPrefix(strings.ToLower(p.s[p.pos:]), "pi") {
			p.pos += 2
			return MakeComplexPolarPI(GetDouble(re), GetDouble(angle)), true
		}
		return MakeComplexPolar(GetDouble(re), GetDouble(angle)), true
	case '+', '-':
		save := p.pos
		sign := p.peek()
		p.pos++
		if lowerByte(p.peek()) == 'i' && !isIdentChar(p.at(1)) {
			p.pos++
			im := 1.0
			if sign == '-' {
				im = -1.0
			}
			return MakeComplex(GetDouble(re), im), true
		}
		p.pos = save
		imPart, ok := p.parseReal()
		if ok && lowerByte(p.peek()) == 'i' {
			p.pos++
			return MakeComplex(GetDouble(re), GetDouble(imPart)), true
		}
		p.pos = save
	}

	return re, true
}

func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// parseReal handles <sign>? <ureal> and <sign> ('inf.0'|'nan.0').
func (p *parser) parseReal() (Number, bool) {
	neg := false
	if p.peek() == '+' || p.peek() == '-' {
		neg = p.peek() == '-'
		p.pos++
	}
	if strings.HasPrefix(strings.ToLower(p.s[p.pos:]), "inf.0") {
		p.pos += 5
		if neg {
			return NegInf, true
		}
		return PosInf, true
	}
	if strings.HasPrefix(strings.ToLower(p.s[p.pos:]), "nan.0") {
		p.pos += 5
		return NaN, true
	}
	n, ok := p.parseUreal()
	if !ok {
		return Number{}, false
	}
	if neg {
		if n.kind == KindFlonum {
			return Number{kind: KindFlonum, flo: -n.flo}, true
		}
		n2, err := Sub(fixint(0), n)
		if err != nil {
			return Number{}, false
		}
		return n2, true
	}
	return n, true
}

// parseUreal handles <uint>, <uint>/<uint>, and <decimal> (radix 10
// only for the decimal form, matching R7RS).
func (p *parser) parseUreal() (Number, bool) {
	start := p.pos
	intPart, ok := p.parseUintRaw()
	if !ok {
		p.pos = start
		return p.parseDecimal()
	}
	if p.peek() == '/' {
		p.pos++
		denPart, ok := p.parseUintRaw()
		if !ok {
			return Number{}, false
		}
		n, err := MakeRational(makeIntegerFromBig(intPart), makeIntegerFromBig(denPart))
		if err != nil {
			return Number{}, false
		}
		return n, true
	}
	if p.cfg.Radix == 10 && (p.peek() == '.' || isExpMark(p.peek())) {
		p.pos = start
		return p.parseDecimal()
	}
	result := makeIntegerFromBig(intPart)
	if p.forcedInexact() {
		return Inexact(result), true
	}
	return result, true
}

// parseUintRaw reads a run of digits in the configured radix,
// treating a trailing '#' as a zero digit that flips the contextual
// exactness to inexact (tracked via p.sawHash), per spec.md §6.
// Underscores are accepted between digits only when strict R7RS mode
// is off.
func (p *parser) parseUintRaw() (*big.Int, bool) {
	start := p.pos
	var digits strings.Builder
	sawDigit := false
	for {
		c := p.peek()
		if isDigit(c, p.cfg.Radix) {
			digits.WriteByte(c)
			sawDigit = true
			p.pos++
			continue
		}
		if c == '_' && !p.cfg.StrictR7RS && sawDigit {
			p.pos++
			continue
		}
		if c == '#' && sawDigit {
			digits.WriteByte('0')
			p.sawHash = true
			p.pos++
			continue
		}
		break
	}
	if !sawDigit {
		p.pos = start
		return nil, false
	}
	v, ok := parseIntLiteral(digits.String(), p.cfg.Radix)
	return v, ok
}

func isExpMark(c byte) bool {
	switch lowerByte(c) {
	case 'e', 's', 'f', 'd', 'l':
		return true
	}
	return false
}

func isDigit(c byte, radix int) bool {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return false
	}
	return v < radix
}

func parseIntLiteral(digits string, radix int) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(digits, radix)
	return v, ok
}

// parseDecimal handles digits('.'digits)?(expmark sign? digits)? and
// '.'digits(expmark sign? digits)?, building the exact rational
// f*10^(exp-fracdigits) and, for an inexact result, converting it to
// float64 via big.Rat.Float64 — which is already correctly rounded,
// the same engine GetDouble and the Algorithm-R-equivalent refinement
// this grammar calls for both rely on (see number_ratio_float.go).
func (p *parser) parseDecimal() (Number, bool) {
	start := p.pos
	var mantissa strings.Builder
	fracDigits := 0
	sawAny := false

	for isDigit(p.peek(), 10) {
		mantissa.WriteByte(p.peek())
		sawAny = true
		p.pos++
	}
	if p.peek() == '.' {
		p.pos++
		for isDigit(p.peek(), 10) {
			mantissa.WriteByte(p.peek())
			fracDigits++
			sawAny = true
			p.pos++
		}
	}
	if !sawAny {
		p.pos = start
		return Number{}, false
	}

	exp := 0
	usedExpMark := isExpMark(p.peek())
	if usedExpMark {
		p.pos++
		expSign := 1
		if p.peek() == '+' || p.peek() == '-' {
			if p.peek() == '-' {
				expSign = -1
			}
			p.pos++
		}
		expStart := p.pos
		for isDigit(p.peek(), 10) {
			p.pos++
		}
		if p.pos == expStart {
			p.pos = start
			return Number{}, false
		}
		eVal, _ := parseIntLiteral(p.s[expStart:p.pos], 10)
		exp = expSign * int(eVal.Int64())
	}

	mantStr := mantissa.String()
	if mantStr == "" {
		mantStr = "0"
	}
	f, ok := new(big.Int).SetString(mantStr, 10)
	if !ok {
		p.pos = start
		return Number{}, false
	}
	k := exp - fracDigits
	usedDecimalNotation := fracDigits > 0 || usedExpMark

	wantExact := p.cfg.Exactness == ExactnessForceExact || p.forced == ExactnessForceExact
	wantInexact := p.cfg.Exactness == ExactnessForceInexact || p.forced == ExactnessForceInexact ||
		p.sawHash || (usedDecimalNotation && p.forced == ExactnessContextual && p.cfg.Exactness == ExactnessContextual)

	if k >= 0 {
		if wantInexact && !wantExact {
			return Number{kind: KindFlonum, flo: decimalToFloat(f, k)}, true
		}
		if exactLargeExponent(k) {
			return Number{}, false
		}
		return makeIntegerFromBig(new(big.Int).Mul(f, p10(k))), true
	}

	if !wantInexact || wantExact {
		if exactLargeExponent(k) {
			return Number{}, false
		}
	}
	if wantExact {
		return makeRationalBig(f, p10(-k)), true
	}
	// Inexact path: saturate via big.Rat.Float64 without materializing
	// an enormous 10^|k| bignum when |k| is extreme.
	return Number{kind: KindFlonum, flo: decimalToFloat(f, k)}, true
}

// decimalToFloat converts f*10^k to its nearest float64, saturating to
// +-0.0/+-inf.0 for extreme k rather than building a gigantic bignum
// power of ten (spec.md §4.I: "with INEXACT they saturate to +-inf.0
// or +-0.0 by sign").
func decimalToFloat(f *big.Int, k int) float64 {
	if f.Sign() == 0 {
		return 0
	}
	if k > 325 {
		if f.Sign() < 0 {
			return negInf()
		}
		return posInf()
	}
	if k < -325 {
		if f.Sign() < 0 {
			return -0.0
		}
		return 0.0
	}
	if k >= 0 {
		r, _ := new(big.Rat).SetInt(new(big.Int).Mul(f, p10(k))).Float64()
		return r
	}
	r, _ := new(big.Rat).SetFrac(f, p10(-k)).Float64()
	return r
}

// exactLargeExponent rejects exponent magnitudes spec.md §4.I calls
// "implementation-limit" in exact context (>= 325); inexact context
// instead saturates to +-inf.0/+-0.0, which big.Rat.Float64 already
// does correctly for an extreme-magnitude rational.
func exactLargeExponent(k int) bool {
	return k <= -325 || k >= 325
}

func (p *parser) forcedInexact() bool {
	return p.cfg.Exactness == ExactnessForceInexact || p.forced == ExactnessForceInexact || p.sawHash
}
