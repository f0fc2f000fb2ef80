package numtower

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// PrintConfig mirrors the printer configuration of spec.md §6. Print
// always emits decimal digits: Radix, UseUpper and AltRadix are
// accepted but not consulted.
type PrintConfig struct {
	Radix           int  // default 10 if zero
	Precision       int  // -1 = shortest round-trip (the zero value also means shortest)
	ExpLo           int  // default -3
	ExpHi           int  // default 10
	ExpWidth        int  // minimum exponent digit width
	UseUpper        bool
	ShowPlus        bool
	AltRadix        bool
	RoundNotational bool
}

func (c PrintConfig) normalized() PrintConfig {
	if c.Radix == 0 {
		c.Radix = 10
	}
	if c.ExpLo == 0 && c.ExpHi == 0 {
		c.ExpLo, c.ExpHi = -3, 10
	}
	if c.Precision == 0 {
		c.Precision = -1
	}
	return c
}

// Print renders d in shortest round-trip form (or to cfg.Precision
// fractional digits), a port of Gauche's print_double (number.c) to
// Go using *big.Int for the Burger-Dybvig state (r, s, m-, mp2).
func Print(d float64, cfg PrintConfig) string {
	cfg = cfg.normalized()

	switch {
	case math.IsNaN(d):
		return "+nan.0"
	case math.IsInf(d, 1):
		return "+inf.0"
	case math.IsInf(d, -1):
		return "-inf.0"
	case d == 0:
		if math.Signbit(d) {
			return "-0.0"
		}
		return "0.0"
	}

	neg := d < 0
	av := d
	if neg {
		av = -d
	}

	digits, k := burgerDybvig(av, cfg.Precision, cfg.RoundNotational)

	sign := ""
	if neg {
		sign = "-"
	} else if cfg.ShowPlus {
		sign = "+"
	}

	body := formatDigits(digits, k, cfg)
	return sign + body
}

// burgerDybvig returns the decimal digit string (no sign, no point)
// and the decimal exponent k such that the value equals
// 0.<digits> * 10^k, i.e. digits[0] is the first digit after the
// point when the value is written 0.d1d2d3...*10^k.
func burgerDybvig(v float64, precision int, notational bool) (string, int) {
	f, e, _ := DecodeFlonum(v)

	var r, s, mMinus *big.Int
	mp2 := false

	switch {
	case e >= 0:
		be := new(big.Int).Lsh(one, uint(e))
		if f.Cmp(twoTo52) == 0 {
			r = new(big.Int).Lsh(f, uint(e+2))
			s = big.NewInt(4)
			mMinus = be
			mp2 = true
		} else {
			r = new(big.Int).Lsh(f, uint(e+1))
			s = big.NewInt(2)
			mMinus = be
			mp2 = false
		}
	default:
		if f.Cmp(twoTo52) == 0 {
			r = new(big.Int).Lsh(f, 2)
			s = new(big.Int).Lsh(one, uint(-e+2))
			mMinus = one
			mp2 = true
		} else {
			r = new(big.Int).Lsh(f, 1)
			s = new(big.Int).Lsh(one, uint(-e+1))
			mMinus = one
			mp2 = false
		}
	}

	// k estimate: ceil(log10(v) - 0.1)
	k := int(math.Ceil(math.Log10(v) - 0.1))
	if k >= 0 {
		s = new(big.Int).Mul(s, p10(k))
	} else {
		scale := p10(-k)
		r = new(big.Int).Mul(r, scale)
		mMinus = new(big.Int).Mul(mMinus, scale)
	}

	mPlus := func() *big.Int {
		if mp2 {
			return new(big.Int).Lsh(mMinus, 1)
		}
		return mMinus
	}

	// Fixup.
	mantEven := f.Bit(0) == 0
	for {
		rpm := new(big.Int).Add(r, mPlus())
		cmp := rpm.Cmp(s)
		if cmp > 0 || (cmp == 0 && mantEven) {
			s = new(big.Int).Mul(s, big.NewInt(10))
			k++
			continue
		}
		break
	}

	if precision >= 0 {
		return fixedPrecisionDigits(r, s, mMinus, mp2, k, precision, notational)
	}
	return shortestDigits(r, s, mMinus, mp2, k)
}

var twoTo52 = new(big.Int).Lsh(one, 52)

func shortestDigits(r, s, mMinus *big.Int, mp2 bool, k int) (string, int) {
	var digits []byte
	ten := big.NewInt(10)
	for {
		r = new(big.Int).Mul(r, ten)
		mMinus = new(big.Int).Mul(mMinus, ten)
		digit, rem := new(big.Int).QuoRem(r, s, new(big.Int))
		r = rem

		mPlus := mMinus
		if mp2 {
			mPlus = new(big.Int).Lsh(mMinus, 1)
		}

		low := r.Cmp(mMinus) <= 0
		rpm := new(big.Int).Add(r, mPlus)
		high := rpm.Cmp(s) >= 0

		d := byte(digit.Int64())
		switch {
		case !low && !high:
			digits = append(digits, '0'+d)
		case low && !high:
			digits = append(digits, '0'+d)
			return string(digits), k
		case !low && high:
			digits = append(digits, '0'+d+1)
			return spillFixup(digits), k
		default: // low && high: take the nearer digit; an exact tie rounds up
			if new(big.Int).Lsh(r, 1).Cmp(s) < 0 {
				digits = append(digits, '0'+d)
			} else {
				digits = append(digits, '0'+d+1)
				return spillFixup(digits), k
			}
			return string(digits), k
		}
	}
}

// spillFixup propagates a carry leftward when the last digit emitted
// was bumped past '9' (Gauche's spill_fixup).
func spillFixup(digits []byte) string {
	i := len(digits) - 1
	for i >= 0 && digits[i] > '9' {
		digits[i] -= 10
		if i == 0 {
			return "1" + string(digits)
		}
		i--
		digits[i]++
	}
	return string(digits)
}

// fixedPrecisionDigits handles Print's precision>=0 path. In shortest
// (non-notational) mode it emits digits up to `precision` fractional
// digits and rounds the cut-off tail by comparing 2r with s, a tie
// going to an even last digit; in notational mode it first generates the shortest
// representation and then performs string-level commercial
// (round-half-up) rounding to `precision` digits.
func fixedPrecisionDigits(r, s, mMinus *big.Int, mp2 bool, k, precision int, notational bool) (string, int) {
	if notational {
		shortest, sk := shortestDigits(new(big.Int).Set(r), new(big.Int).Set(s), new(big.Int).Set(mMinus), mp2, k)
		return notationalRound(shortest, sk, precision)
	}

	var digits []byte
	ten := big.NewInt(10)
	target := precision + k // number of digits to emit before the fractional cutoff
	if target < 1 {
		target = 1
	}
	for i := 0; i < target; i++ {
		r = new(big.Int).Mul(r, ten)
		digit, rem := new(big.Int).QuoRem(r, s, new(big.Int))
		r = rem
		digits = append(digits, byte('0'+digit.Int64()))
	}
	// Round the truncated tail using the remaining r against s/2.
	twiceR := new(big.Int).Lsh(r, 1)
	roundUp := twiceR.Cmp(s) > 0 || (twiceR.Cmp(s) == 0 && len(digits) > 0 && (digits[len(digits)-1]-'0')%2 == 1)
	if roundUp {
		digits[len(digits)-1]++
		return spillFixup(digits), k
	}
	return string(digits), k
}

// notationalRound performs round-half-up rounding on a decimal digit
// string (Gauche's notational_rounding/notational_roundup/spill_fixup
// combination) to keep only `precision` fractional digits, where the
// digits represent 0.<digits>*10^k.
func notationalRound(digits string, k, precision int) (string, int) {
	target := precision + k
	if target < 0 {
		return "0", 1
	}
	if target >= len(digits) {
		return digits, k
	}
	kept := []byte(digits[:target])
	if target == len(digits) {
		return string(kept), k
	}
	nextDigit := digits[target]
	if nextDigit >= '5' {
		if target == 0 {
			return notationalRoundUp("0"+string(kept), k+1, precision)
		}
		return notationalRoundUp(string(kept), k, precision)
	}
	if len(kept) == 0 {
		return "0", k
	}
	return string(kept), k
}

func notationalRoundUp(digits string, k, precision int) (string, int) {
	b := []byte(digits)
	i := len(b) - 1
	for i >= 0 {
		if b[i] == '9' {
			b[i] = '0'
			i--
			continue
		}
		b[i]++
		return string(b), k
	}
	return "1" + string(b), k + 1
}

// formatDigits places the decimal point per exp_lo/exp_hi and builds
// the final string, including scientific notation with a zero-padded
// exponent field when k falls outside (exp_lo, exp_hi).
func formatDigits(digits string, k int, cfg PrintConfig) string {
	if k > cfg.ExpLo && k < cfg.ExpHi {
		return positionalForm(digits, k)
	}
	return scientificForm(digits, k, cfg)
}

func positionalForm(digits string, k int) string {
	var b strings.Builder
	switch {
	case k <= 0:
		b.WriteString("0.")
		for i := 0; i < -k; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	case k >= len(digits):
		b.WriteString(digits)
		for i := 0; i < k-len(digits); i++ {
			b.WriteByte('0')
		}
		b.WriteString(".0")
	default:
		b.WriteString(digits[:k])
		b.WriteByte('.')
		b.WriteString(digits[k:])
	}
	return b.String()
}

func scientificForm(digits string, k int, cfg PrintConfig) string {
	var b strings.Builder
	b.WriteByte(digits[0])
	b.WriteByte('.')
	if len(digits) > 1 {
		b.WriteString(digits[1:])
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('e')
	exp := k - 1
	sign := "+"
	absExp := exp
	if exp < 0 {
		sign = "-"
		absExp = -exp
	}
	digitsOnly := strconv.Itoa(absExp)
	for len(digitsOnly) < cfg.ExpWidth {
		digitsOnly = "0" + digitsOnly
	}
	b.WriteString(sign)
	b.WriteString(digitsOnly)
	return b.String()
}
