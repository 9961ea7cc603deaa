package ga

// ExpandBlade rebuilds a blade as the wedge of the per-dimension
// expansions of its participating basis vectors, walking the bitmap
// LSB-first (§4.7). expansions[i] is how synthetic basis vector i
// expands in terms of a's orthonormal basis; the result is the blade's
// coordinates in that orthonormal basis.
func (a *Ga) ExpandBlade(b Blade, expansions []Multivector) Multivector {
	acc := Multivector{a.S}
	for i := 0; i < a.Dim; i++ {
		if b.Bitmap&(uint64(1)<<uint(i)) != 0 {
			acc = a.Wedge(acc, expansions[i])
		}
	}
	return acc.ScaleBy(ratScaleOf(b))
}

// ExpandMultivector expands every blade of mv via ExpandBlade and sums
// the results.
func (a *Ga) ExpandMultivector(mv Multivector, expansions []Multivector) Multivector {
	var out Multivector
	for _, b := range mv {
		out = append(out, a.ExpandBlade(b, expansions)...)
	}
	return Simplify(out)
}
