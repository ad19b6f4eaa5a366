package rational

import (
	"math/big"
)

const pow10TableLen = 40

// pow10Table holds 10**n for n in [0, pow10TableLen), values MUST NOT be
// mutated.
var pow10Table [pow10TableLen]big.Int

func init() {
	pow10Table[0].SetInt64(1)
	ten := big.NewInt(10)
	for i := 1; i < pow10TableLen; i++ {
		pow10Table[i].Mul(&pow10Table[i-1], ten)
	}
}

// pow10 returns 10**n, for n >= 0. The result MUST NOT be mutated.
func pow10(n int) *big.Int {
	if n < 0 {
		panic(`rational: pow10: negative exponent`)
	}
	if n < pow10TableLen {
		return &pow10Table[n]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
