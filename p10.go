package numtower

import (
	"math/big"
	"sync"
)

// p10Table holds 10^i for i in [0, maxP10Exp] as *big.Int, built once
// and shared read-only between ExactIntegerExpt, the float printer and
// the float reader — all three repeatedly need small powers of ten and
// none of them mutate the table. Grounded on Gauche's static iexpt10
// array in number.c, which exists for exactly the same reason (the
// printer, reader and rational-to-double conversion all call
// int "scale" by powers of ten hundreds of times per program).
const maxP10Exp = 340

var (
	p10Once  sync.Once
	p10Table [maxP10Exp + 1]*big.Int
)

func p10(i int) *big.Int {
	p10Once.Do(buildP10Table)
	if i < 0 {
		panic("numtower: p10 called with negative exponent")
	}
	if i > maxP10Exp {
		r := new(big.Int).Set(p10Table[maxP10Exp])
		ten := big.NewInt(10)
		for j := maxP10Exp; j < i; j++ {
			r.Mul(r, ten)
		}
		return r
	}
	return p10Table[i]
}

func buildP10Table() {
	p10Table[0] = big.NewInt(1)
	ten := big.NewInt(10)
	for i := 1; i <= maxP10Exp; i++ {
		p10Table[i] = new(big.Int).Mul(p10Table[i-1], ten)
	}
}
