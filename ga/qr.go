package ga

import "math/bits"

// QR decomposes n grade-1 multivectors (columns) via Householder
// reflections expressed as sandwich products inside the algebra itself
// (§4.8) — deliberately never dropping to a matrix library. Returns Q
// applied to the standard basis and the transformed input, both trimmed
// to their grade-1 components.
func QR(a *Ga, vectors []Multivector) (q []Multivector, r []Multivector, err error) {
	n := len(vectors)
	r = make([]Multivector, n)
	for i, v := range vectors {
		r[i] = Simplify(v)
	}

	var hys, hyInvs []Multivector
	for d := 0; d < n-1; d++ {
		v := zeroBelowIndex(r[d], d)
		if isPurePivot(v, d) {
			// Column d is already a non-negative multiple of its pivot
			// basis vector: no reflection needed, and skipping one keeps
			// Q the identity and R unchanged for already-triangular
			// input (e.g. an orthonormal input basis).
			continue
		}
		vd := v.Coeff(uint64(1) << uint(d))
		sign := 1
		if vd.Sign() < 0 {
			sign = -1
		}
		e := Multivector{Blade{
			Bitmap: uint64(1) << uint(d),
			Scale:  ratSign(-sign),
			Basis:  a.labelOf(uint64(1) << uint(d)),
		}}

		bi := a.Normalize(v).Add(e)
		if len(Simplify(bi)) == 0 {
			bi = e
		}
		hy := a.Dual(bi)
		hyInv, err := a.Inverse(hy)
		if err != nil {
			return nil, nil, err
		}
		hys = append(hys, hy)
		hyInvs = append(hyInvs, hyInv)

		for j := d; j < n; j++ {
			r[j] = a.Mul(a.Mul(Negation(hy), r[j]), hyInv)
		}
	}

	q = make([]Multivector, n)
	for i := 0; i < n; i++ {
		x := Multivector{a.BasisInOrder[uint64(1)<<uint(i)]}
		for k, hy := range hys {
			x = a.Mul(a.Mul(Negation(hy), x), hyInvs[k])
		}
		q[i] = x.FilterGrade(1)
	}
	for i := range r {
		r[i] = r[i].FilterGrade(1)
	}
	return q, r, nil
}

// isPurePivot reports whether v is exactly a non-negative multiple of the
// basis vector at index d, with no other components.
func isPurePivot(v Multivector, d int) bool {
	v = Simplify(v)
	if len(v) != 1 {
		return false
	}
	b := v[0]
	return b.Bitmap == uint64(1)<<uint(d) && b.Scale.Sign() >= 0
}

// zeroBelowIndex drops every blade of a grade-1 multivector whose basis
// vector index is below d, isolating the part of the column that still
// needs reflecting at step d.
func zeroBelowIndex(v Multivector, d int) Multivector {
	var out Multivector
	for _, b := range v {
		if bits.TrailingZeros64(b.Bitmap) >= d {
			out = append(out, b)
		}
	}
	return out
}
