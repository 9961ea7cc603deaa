package ga

import "math/big"

// Reverse (`<-`, "edalb") reverses the wedge order of every blade.
func Reverse(mv Multivector) Multivector {
	out := make(Multivector, len(mv))
	for i, b := range mv {
		out[i] = reverseBlade(b)
	}
	return out
}

// Involution is the grade involution: each blade's scale is multiplied by
// (-1)^grade.
func Involution(mv Multivector) Multivector {
	out := make(Multivector, len(mv))
	for i, b := range mv {
		out[i] = involutionBlade(b)
	}
	return out
}

// Negation returns -mv.
func Negation(mv Multivector) Multivector {
	return mv.Negation()
}

// Dual maps every blade b to its Hodge complement, signed so that
// b ∧ Dual(b) == I.
func (a *Ga) Dual(mv Multivector) Multivector {
	out := make(Multivector, len(mv))
	for i, b := range mv {
		dm := a.dualBitmap[b.Bitmap]
		s := new(big.Rat).Mul(ratScaleOf(b), a.dualSign[b.Bitmap])
		out[i] = Blade{Bitmap: dm, Scale: s, Basis: a.labelOf(dm)}
	}
	return Simplify(out)
}

// HodgeDual is ★mv = <-mv · I.
func (a *Ga) HodgeDual(mv Multivector) Multivector {
	return a.Mul(Reverse(mv), Multivector{a.I})
}

// Meet is the exterior product (alias of Wedge, named for the lattice
// interpretation of spec §4.5/GLOSSARY).
func (a *Ga) Meet(x, y Multivector) Multivector {
	return a.Wedge(x, y)
}

// Join is ∨(a,b) = ∼(∼b ∧ ∼a); the n-ary fold reverses the full operand
// order before wedging and flips the result's sign when the fold has an
// even number of operands, matching the orientation convention of §4.5.
func (a *Ga) Join(xs ...Multivector) Multivector {
	if len(xs) == 0 {
		return nil
	}
	duals := make([]Multivector, len(xs))
	for i, x := range xs {
		duals[i] = a.Dual(x)
	}
	w := duals[len(duals)-1]
	for i := len(duals) - 2; i >= 0; i-- {
		w = a.Wedge(w, duals[i])
	}
	out := a.Dual(w)
	if len(xs)%2 == 0 {
		out = out.Negation()
	}
	return out
}

// Sandwich (`⍣`) is the canonical reflection/rotation form <-r · x · r.
func (a *Ga) Sandwich(r, x Multivector) Multivector {
	return a.Mul(a.Mul(Reverse(r), x), r)
}

// NormSq is (mv · mv).Scalar().
func (a *Ga) NormSq(mv Multivector) *big.Rat {
	return a.Mul(mv, mv).Scalar()
}

// ScalarProduct is Lc(x, y).Scalar(); callers reverse y themselves when
// they want the Euclidean inner product (see NormE).
func (a *Ga) ScalarProduct(x, y Multivector) *big.Rat {
	return a.Lc(x, y).Scalar()
}

// NormE is the Euclidean norm-squared x]<-x, clamped to zero rather than
// propagating a negative value for non-Euclidean metrics.
func (a *Ga) NormE(mv Multivector) *big.Rat {
	s := a.ScalarProduct(mv, Reverse(mv))
	if s.Sign() < 0 {
		return new(big.Rat)
	}
	return s
}

// Length is sqrt(NormSq(mv)), computed exactly via rsqrt; empty
// multivectors have length zero.
func (a *Ga) Length(mv Multivector) *big.Rat {
	if len(Simplify(mv)) == 0 {
		return new(big.Rat)
	}
	return rsqrt(a.NormSq(mv), rsqrtSteps)
}

// Normalize (`⧄`) scales mv by 1/Length(mv); an empty multivector passes
// through unchanged.
func (a *Ga) Normalize(mv Multivector) Multivector {
	mv = Simplify(mv)
	if len(mv) == 0 {
		return mv
	}
	l := a.Length(mv)
	if l.Sign() == 0 {
		return mv
	}
	return mv.ScaleBy(new(big.Rat).Inv(l))
}

// Inverse (`⁻`) is <-mv / (mv · <-mv).scalar, failing with NonInvertable
// when that scalar is zero.
func (a *Ga) Inverse(mv Multivector) (Multivector, error) {
	rev := Reverse(mv)
	s := a.Mul(mv, rev).Scalar()
	if s.Sign() == 0 {
		return nil, &NonInvertable{Mv: mv}
	}
	return rev.ScaleBy(new(big.Rat).Inv(s)), nil
}

// Exp (`𝑒`) computes the exponential via rescale-and-square: the norm
// mv·<-mv picks a power-of-two rescale so the Taylor sum (16 terms) stays
// well-conditioned, then the partial result is squared back to undo it.
func (a *Ga) Exp(mv Multivector) Multivector {
	max := a.Mul(mv, Reverse(mv)).Scalar()
	k := rescaleExponent(max)
	scale := pow2(k)
	scaled := mv.ScaleBy(new(big.Rat).Inv(scale))

	sum := Multivector{a.S}
	power := Multivector{a.S}
	for i := 1; i <= 15; i++ {
		power = a.Mul(power, scaled)
		term := power.ScaleBy(new(big.Rat).Inv(new(big.Rat).SetInt(factorial(i))))
		sum = sum.Add(term)
	}
	for i := 0; i < k; i++ {
		sum = a.Mul(sum, sum)
	}
	return sum
}

// rescaleExponent picks the smallest k >= 0 with 2^k >= |max|.
func rescaleExponent(max *big.Rat) int {
	m := new(big.Rat).Abs(max)
	if m.Cmp(ratOne) <= 0 {
		return 0
	}
	k := 0
	p := new(big.Rat).Set(ratOne)
	for p.Cmp(m) < 0 {
		p.Add(p, p)
		k++
	}
	return k
}

// Rotor builds cos(θ/2) - sin(θ/2)·bivector directly, a named shortcut for
// the common single-bivector case rather than always paying for the full
// Exp Taylor truncation.
func Rotor(a *Ga, angle float64, bivector Multivector) Multivector {
	half := angle / 2
	cos := new(big.Rat).SetFloat64(cosApprox(half))
	sin := new(big.Rat).SetFloat64(sinApprox(half))
	scalarPart := Multivector{{Bitmap: 0, Scale: cos, Basis: a.S.Basis}}
	return scalarPart.Add(bivector.ScaleBy(new(big.Rat).Neg(sin)))
}
