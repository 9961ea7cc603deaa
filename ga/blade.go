package ga

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Blade is a single basis element of an algebra scaled by an exact
// coefficient. Bitmap bit i set means basis vector e_i participates;
// Bitmap == 0 is the scalar blade. Grade is always popcount(Bitmap).
type Blade struct {
	Bitmap uint64
	Scale  *big.Rat
	Basis  string
}

// NewBlade returns a unit blade for bitmap with the given label.
func NewBlade(bitmap uint64, label string) Blade {
	return Blade{Bitmap: bitmap, Scale: big.NewRat(1, 1), Basis: label}
}

// Grade reports the number of basis vectors participating in a.
func (a Blade) Grade() int {
	return bits.OnesCount64(a.Bitmap)
}

// IsZero reports whether a's coefficient is exactly zero.
func (a Blade) IsZero() bool {
	return a.Scale == nil || a.Scale.Sign() == 0
}

// scaled returns a copy of a with Scale replaced by s.
func (a Blade) scaled(s *big.Rat) Blade {
	return Blade{Bitmap: a.Bitmap, Scale: s, Basis: a.Basis}
}

func (a Blade) String() string {
	if a.Scale == nil {
		return fmt.Sprintf("0·%s", labelOr(a))
	}
	return fmt.Sprintf("%s·%s", a.Scale.RatString(), labelOr(a))
}

func labelOr(a Blade) string {
	if a.Basis != "" {
		return a.Basis
	}
	return fmt.Sprintf("<%08b>", a.Bitmap)
}

// flips counts the number of basis-vector transpositions needed to bring
// the concatenation of a's and b's bitmaps into canonical ascending order;
// this is the canonical-order sign derivation of §4.1.
func flips(a, b uint64) int {
	n := 0
	for s := a >> 1; s != 0; s >>= 1 {
		n += bits.OnesCount64(s & b)
	}
	return n
}

// signOf returns the sign (+1/-1) of the geometric product of basis
// blades with bitmaps a and b, before any metric weighting is applied.
func signOf(a, b uint64) int {
	if flips(a, b)&1 == 0 {
		return 1
	}
	return -1
}

var (
	ratOne     = big.NewRat(1, 1)
	ratNegOne  = big.NewRat(-1, 1)
	ratZero    = big.NewRat(0, 1)
)

func ratSign(sign int) *big.Rat {
	if sign >= 0 {
		return ratOne
	}
	return ratNegOne
}
