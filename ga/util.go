package ga

import (
	"math"
	"math/big"
)

// reverseBlade applies the reverse involution to a single blade: scale is
// multiplied by (-1)^(k(k-1)/2) with k = grade.
func reverseBlade(b Blade) Blade {
	k := b.Grade()
	if (k*(k-1)/2)%2 != 0 {
		return b.scaled(new(big.Rat).Neg(ratScaleOf(b)))
	}
	return b.scaled(new(big.Rat).Set(ratScaleOf(b)))
}

// involutionBlade applies the grade involution to a single blade: scale
// is multiplied by (-1)^k.
func involutionBlade(b Blade) Blade {
	if b.Grade()%2 != 0 {
		return b.scaled(new(big.Rat).Neg(ratScaleOf(b)))
	}
	return b.scaled(new(big.Rat).Set(ratScaleOf(b)))
}

// rsqrt returns an exact rational approximation of sqrt(x) for x >= 0,
// built from n levels of the classical continued-fraction expansion for
// square roots, seeded by the exact integer part via big.Int.Sqrt. No
// floating point is used anywhere in the computation.
func rsqrt(x *big.Rat, n int) *big.Rat {
	if x.Sign() <= 0 {
		return new(big.Rat)
	}
	num := new(big.Int).Mul(x.Num(), x.Denom())
	a0i := new(big.Int).Sqrt(num)
	a0 := new(big.Rat).SetFrac(a0i, x.Denom())

	rem := new(big.Rat).Sub(x, new(big.Rat).Mul(a0, a0))
	if rem.Sign() == 0 {
		return a0
	}

	twoA0 := new(big.Rat).Add(a0, a0)
	val := new(big.Rat).Set(twoA0)
	for i := 0; i < n; i++ {
		val = new(big.Rat).Add(twoA0, new(big.Rat).Quo(rem, val))
	}
	return new(big.Rat).Add(a0, new(big.Rat).Quo(rem, val))
}

const rsqrtSteps = 16

// pow2 returns 2^k as an exact rational for any integer k (negative k
// divides).
func pow2(k int) *big.Rat {
	if k >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(k)))
	}
	return new(big.Rat).Inv(pow2(-k))
}

// cosApprox/sinApprox are the one place this package accepts an inherently
// transcendental input (a rotor angle) and must fall back to float64
// before rationalizing the result with big.Rat.SetFloat64.
func cosApprox(x float64) float64 { return math.Cos(x) }
func sinApprox(x float64) float64 { return math.Sin(x) }

// factorial returns n! as an exact integer, n >= 0.
func factorial(n int) *big.Int {
	f := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		f.Mul(f, big.NewInt(i))
	}
	return f
}
