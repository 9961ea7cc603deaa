package ga

import "math/big"

// config collects the parameters recognized by New before the algebra's
// tables are built. Option constructors validate and panic on
// nonsensical arguments (a programmer error); New itself never panics.
type config struct {
	prefix string
	base   int

	p, q, r    int
	pm, qm, rm *big.Rat
	blockOrder [3]string // permutation of "p","q","r"

	md []*big.Rat // explicit metric diagonal, overrides p/q/r

	mm   []Multivector // non-orthogonal metric multivectors
	mmga *Ga           // algebra the metric vectors are expressed in
}

func defaultConfig() *config {
	return &config{
		prefix:     "e",
		base:       0,
		pm:         big.NewRat(1, 1),
		qm:         big.NewRat(-1, 1),
		rm:         big.NewRat(0, 1),
		blockOrder: [3]string{"p", "q", "r"},
	}
}

// Option customizes algebra construction.
type Option func(*config)

// WithPrefix sets the basis label prefix (default "e").
func WithPrefix(prefix string) Option {
	if prefix == "" {
		panic("ga: WithPrefix(\"\")")
	}
	return func(c *config) { c.prefix = prefix }
}

// WithBase sets the starting index used in basis labels (default 0).
func WithBase(base int) Option {
	return func(c *config) { c.base = base }
}

// WithSignature sets the counts of +1, -1, and 0 diagonal metric entries.
func WithSignature(p, q, r int) Option {
	if p < 0 || q < 0 || r < 0 {
		panic("ga: WithSignature with negative count")
	}
	return func(c *config) { c.p, c.q, c.r = p, q, r }
}

// WithSignatureValues overrides the signed values materialized for the
// p/q/r blocks (defaults +1, -1, 0).
func WithSignatureValues(pm, qm, rm *big.Rat) Option {
	if pm == nil || qm == nil || rm == nil {
		panic("ga: WithSignatureValues(nil)")
	}
	return func(c *config) { c.pm, c.qm, c.rm = pm, qm, rm }
}

// WithBlockOrder permutes the order in which the p/q/r blocks appear on
// the metric diagonal. order must be a permutation of {"p","q","r"}.
func WithBlockOrder(order [3]string) Option {
	seen := map[string]bool{}
	for _, k := range order {
		if k != "p" && k != "q" && k != "r" {
			panic("ga: WithBlockOrder: invalid key " + k)
		}
		seen[k] = true
	}
	if len(seen) != 3 {
		panic("ga: WithBlockOrder: not a permutation of p,q,r")
	}
	return func(c *config) { c.blockOrder = order }
}

// WithMetricDiagonal supplies an explicit metric diagonal, overriding any
// p/q/r derivation.
func WithMetricDiagonal(md []*big.Rat) Option {
	if len(md) == 0 {
		panic("ga: WithMetricDiagonal(nil)")
	}
	for _, m := range md {
		if m == nil {
			panic("ga: WithMetricDiagonal: nil entry")
		}
	}
	return func(c *config) { c.md = md }
}

// WithMetricVectors supplies non-orthogonal metric vectors; the
// constructed algebra's diagonal metric is derived from their
// eigendecomposition (§4.7, §4.9).
func WithMetricVectors(mm []Multivector, mmga *Ga) Option {
	if len(mm) == 0 {
		panic("ga: WithMetricVectors(nil)")
	}
	return func(c *config) { c.mm, c.mmga = mm, mmga }
}
