package ga

import (
	"fmt"
	"math/big"
)

// Ga is an immutable, once-built geometric algebra: a signature, its
// metric diagonal, basis tables, duals, a handful of named specials, and
// the operator dispatch table. Values of Ga are safe to share read-only
// across goroutines; nothing in this package mutates one after New
// returns it.
type Ga struct {
	Prefix string
	Base   int
	P, Q, R int
	Dim    int
	Metric []*big.Rat

	Basis        map[string]Blade
	BasisInOrder []Blade // dense, indexed by bitmap
	BasisByGrade []Blade

	dualBitmap map[uint64]uint64
	dualSign   map[uint64]*big.Rat

	I         Blade // pseudoscalar
	IRev      Blade // reverse of the pseudoscalar
	S         Blade // scalar unit blade
	ZeroVecs  []Blade

	ops *opTable

	// Populated only when constructed with WithMetricVectors.
	Eigenvalues  Multivector
	Eigenvectors []Multivector
	MetricMvs    []Multivector
	Mmga         *Ga
}

// New builds an algebra from the supplied options. The signature may come
// from WithSignature (p,q,r counts), WithMetricDiagonal (an explicit
// diagonal), or WithMetricVectors (eigendecomposed into a diagonal).
func New(opts ...Option) (*Ga, error) {
	c := defaultConfig()
	for _, o := range opts {
		o(c)
	}

	metric, extra, err := resolveMetric(c)
	if err != nil {
		return nil, err
	}
	d := len(metric)

	a := &Ga{
		Prefix: c.prefix,
		Base:   c.base,
		P:      c.p, Q: c.q, R: c.r,
		Dim:    d,
		Metric: metric,
	}
	a.buildBasis()
	a.buildDuals()
	a.buildSpecials()
	a.ops = buildOps(a)

	if extra != nil {
		a.Eigenvalues = extra.eigenvalues
		a.Eigenvectors = extra.eigenvectors
		a.MetricMvs = c.mm
		a.Mmga = extra.mmga
	}
	return a, nil
}

type metricExtra struct {
	eigenvalues  Multivector
	eigenvectors []Multivector
	mmga         *Ga
}

func resolveMetric(c *config) ([]*big.Rat, *metricExtra, error) {
	if len(c.md) > 0 {
		return c.md, nil, nil
	}
	if len(c.mm) > 0 {
		mmga := c.mmga
		if mmga == nil {
			var err error
			mmga, err = New(WithPrefix(c.prefix), WithBase(c.base), WithSignature(len(c.mm), 0, 0))
			if err != nil {
				return nil, nil, err
			}
		}
		eigenvalues, eigenvectors, err := Eigen(mmga, c.mm)
		if err != nil {
			return nil, nil, err
		}
		diag := make([]*big.Rat, len(eigenvalues))
		for i, b := range eigenvalues {
			diag[i] = b.Scale
		}
		return diag, &metricExtra{
			eigenvalues:  eigenvalues,
			eigenvectors: eigenvectors,
			mmga:         mmga,
		}, nil
	}
	return blockDiagonal(c), nil, nil
}

func blockDiagonal(c *config) []*big.Rat {
	blocks := map[string][]*big.Rat{
		"p": repeat(c.pm, c.p),
		"q": repeat(c.qm, c.q),
		"r": repeat(c.rm, c.r),
	}
	var out []*big.Rat
	for _, k := range c.blockOrder {
		out = append(out, blocks[k]...)
	}
	return out
}

func repeat(v *big.Rat, n int) []*big.Rat {
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat).Set(v)
	}
	return out
}

func (a *Ga) buildBasis() {
	entries := generateBasis(a.Prefix, a.Base, a.Dim)
	a.Basis = make(map[string]Blade, len(entries))
	a.BasisInOrder = make([]Blade, len(entries))
	for _, e := range entries {
		b := NewBlade(e.bitmap, e.label)
		a.Basis[e.label] = b
		a.BasisInOrder[e.bitmap] = b
	}
	graded := basisByGrade(entries)
	a.BasisByGrade = make([]Blade, len(graded))
	for i, e := range graded {
		a.BasisByGrade[i] = a.BasisInOrder[e.bitmap]
	}
}

func (a *Ga) labelOf(bitmap uint64) string {
	if int(bitmap) < len(a.BasisInOrder) {
		return a.BasisInOrder[bitmap].Basis
	}
	return fmt.Sprintf("%s<%v>", a.Prefix, bitmap)
}

// buildDuals precomputes, for every basis bitmap b, its Hodge complement
// (b xor all-ones) and the sign such that b ∧ dual(b) == I. Since a
// bitmap and its complement never share a bit, this product is always
// independent, so the sign is exactly signOf(b, complement).
func (a *Ga) buildDuals() {
	all := uint64(1)<<uint(a.Dim) - 1
	a.dualBitmap = make(map[uint64]uint64, len(a.BasisInOrder))
	a.dualSign = make(map[uint64]*big.Rat, len(a.BasisInOrder))
	for bitmap := range a.BasisInOrder {
		complement := all ^ uint64(bitmap)
		a.dualBitmap[uint64(bitmap)] = complement
		a.dualSign[uint64(bitmap)] = ratSign(signOf(uint64(bitmap), complement))
	}
}

func (a *Ga) buildSpecials() {
	all := uint64(1)<<uint(a.Dim) - 1
	a.I = a.BasisInOrder[all]
	a.IRev = reverseBlade(a.I)
	a.S = a.BasisInOrder[0]
	for i := 0; i < a.Dim; i++ {
		if a.Metric[i].Sign() == 0 {
			a.ZeroVecs = append(a.ZeroVecs, a.BasisInOrder[1<<uint(i)])
		}
	}
}
