package ga

import (
	"math/big"
	"sort"
	"strings"

	"dasa.cc/ga/internal/set"
)

// Multivector is a sum of blades, possibly of mixed grade and in any
// order. Canonical form (as returned by Simplify) is sorted ascending by
// Bitmap, at most one blade per distinct Bitmap, and no zero-scale blade.
type Multivector []Blade

func (a Multivector) String() string {
	if len(a) == 0 {
		return "0"
	}
	parts := make([]string, len(a))
	for i, b := range a {
		parts[i] = b.String()
	}
	return strings.Join(parts, " + ")
}

// Coeff returns the coefficient of the blade with the given bitmap, or an
// exact zero if absent.
func (a Multivector) Coeff(bitmap uint64) *big.Rat {
	for _, b := range a {
		if b.Bitmap == bitmap {
			return b.Scale
		}
	}
	return ratZero
}

// Scalar returns the scalar (grade-0) coefficient.
func (a Multivector) Scalar() *big.Rat {
	return a.Coeff(0)
}

// Grades returns the distinct grades present in a, ascending.
func (a Multivector) Grades() []int {
	var gs set.Slice[int]
	for _, b := range a {
		gs.Insert(b.Grade())
	}
	return gs
}

// FilterGrade returns the sub-multivector of blades with the given grade.
func (a Multivector) FilterGrade(k int) Multivector {
	var b Multivector
	for _, v := range a {
		if v.Grade() == k {
			b = append(b, v)
		}
	}
	return b
}

// Simplify sorts a by bitmap, sums coefficients sharing a bitmap, and
// drops any resulting zero blade.
func Simplify(a Multivector) Multivector {
	return simplify(a, false)
}

// Simplify0 behaves like Simplify but keeps zero-scale blades in place;
// callers that rely on positional per-bitmap slots (e.g. eigenvalue
// extraction) use this variant.
func Simplify0(a Multivector) Multivector {
	return simplify(a, true)
}

func simplify(a Multivector, keepZero bool) Multivector {
	if len(a) == 0 {
		return nil
	}
	cp := make(Multivector, len(a))
	copy(cp, a)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Bitmap < cp[j].Bitmap })

	var out Multivector
	i := 0
	for i < len(cp) {
		j := i + 1
		sum := new(big.Rat).Set(ratScaleOf(cp[i]))
		basis := cp[i].Basis
		for j < len(cp) && cp[j].Bitmap == cp[i].Bitmap {
			sum.Add(sum, ratScaleOf(cp[j]))
			if basis == "" {
				basis = cp[j].Basis
			}
			j++
		}
		if keepZero || sum.Sign() != 0 {
			out = append(out, Blade{Bitmap: cp[i].Bitmap, Scale: sum, Basis: basis})
		}
		i = j
	}
	return out
}

func ratScaleOf(b Blade) *big.Rat {
	if b.Scale == nil {
		return ratZero
	}
	return b.Scale
}

// Add returns the simplified sum a+b.
func (a Multivector) Add(b Multivector) Multivector {
	c := make(Multivector, 0, len(a)+len(b))
	c = append(c, a...)
	c = append(c, b...)
	return Simplify(c)
}

// Negation returns -a, blade by blade.
func (a Multivector) Negation() Multivector {
	b := make(Multivector, len(a))
	for i, v := range a {
		b[i] = v.scaled(new(big.Rat).Neg(ratScaleOf(v)))
	}
	return b
}

// ScaleBy returns a scaled uniformly by s.
func (a Multivector) ScaleBy(s *big.Rat) Multivector {
	b := make(Multivector, len(a))
	for i, v := range a {
		b[i] = v.scaled(new(big.Rat).Mul(ratScaleOf(v), s))
	}
	return b
}

// IsEmpty reports whether a carries no (non-zero) blades.
func (a Multivector) IsEmpty() bool {
	return len(Simplify(a)) == 0
}
