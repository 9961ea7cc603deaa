package ga

import "math/big"

// mulBlade is the primitive blade×blade geometric product (§4.4). The
// independent case (disjoint bitmaps) needs no metric; the dependent case
// folds in metric[i] for every shared basis vector i, annihilating the
// term if any shared metric entry is zero.
func (a *Ga) mulBlade(x, y Blade) Blade {
	shared := x.Bitmap & y.Bitmap
	s := new(big.Rat).Mul(ratScaleOf(x), ratScaleOf(y))
	s.Mul(s, ratSign(signOf(x.Bitmap, y.Bitmap)))
	if shared != 0 {
		for i := 0; i < a.Dim; i++ {
			if shared&(1<<uint(i)) == 0 {
				continue
			}
			m := a.Metric[i]
			if m.Sign() == 0 {
				return Blade{Bitmap: x.Bitmap ^ y.Bitmap, Scale: ratZero}
			}
			s.Mul(s, m)
		}
	}
	bitmap := x.Bitmap ^ y.Bitmap
	return Blade{Bitmap: bitmap, Scale: s, Basis: a.labelOf(bitmap)}
}

// productTriples returns every (x, y, x·y) triple from the cartesian
// product of x's and y's blades, unsimplified — the shared substrate for
// the geometric product and every grade-filtered derivative (wedge,
// contractions, interior/exterior split).
func (a *Ga) productTriples(x, y Multivector) []triple {
	out := make([]triple, 0, len(x)*len(y))
	for _, bx := range x {
		for _, by := range y {
			out = append(out, triple{bx, by, a.mulBlade(bx, by)})
		}
	}
	return out
}

type triple struct {
	x, y, xy Blade
}

// Mul is the geometric product, the cartesian product of blade pairs
// passed through mulBlade and simplified.
func (a *Ga) Mul(x, y Multivector) Multivector {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	trips := a.productTriples(x, y)
	out := make(Multivector, len(trips))
	for i, t := range trips {
		out[i] = t.xy
	}
	return Simplify(out)
}

// Wedge is the exterior product: triples where grade(x·y) == grade(x)+grade(y).
func (a *Ga) Wedge(x, y Multivector) Multivector {
	return a.filterTriples(x, y, func(t triple) bool {
		return t.xy.Grade() == t.x.Grade()+t.y.Grade()
	})
}

// Lc is the left contraction: triples where grade(x·y) == grade(y)-grade(x).
func (a *Ga) Lc(x, y Multivector) Multivector {
	return a.filterTriples(x, y, func(t triple) bool {
		return t.xy.Grade() == t.y.Grade()-t.x.Grade()
	})
}

// Rc is the right contraction: triples where grade(x·y) == grade(x)-grade(y).
func (a *Ga) Rc(x, y Multivector) Multivector {
	return a.filterTriples(x, y, func(t triple) bool {
		return t.xy.Grade() == t.x.Grade()-t.y.Grade()
	})
}

// SymmetricInner is the symmetric inner product, restricted to non-scalar
// factors: triples where grade(x·y) == |grade(x)-grade(y)|.
func (a *Ga) SymmetricInner(x, y Multivector) Multivector {
	return a.filterTriples(x, y, func(t triple) bool {
		if t.x.Grade() == 0 || t.y.Grade() == 0 {
			return false
		}
		d := t.x.Grade() - t.y.Grade()
		if d < 0 {
			d = -d
		}
		return t.xy.Grade() == d
	})
}

func (a *Ga) filterTriples(x, y Multivector, keep func(triple) bool) Multivector {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	var out Multivector
	for _, t := range a.productTriples(x, y) {
		if keep(t) {
			out = append(out, t.xy)
		}
	}
	return Simplify(out)
}
