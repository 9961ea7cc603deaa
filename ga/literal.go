package ga

import (
	"fmt"
	"math/big"
)

// NewMultivector builds a canonical multivector from a flat, paired
// sequence of scale/basis-label arguments: c1, b1, c2, b2, .... Each ci
// may be an int, a float64, or a *big.Rat; each bi must be a basis label
// already present in a.Basis. This is the external "multivector literal"
// entry point (§6) that surface syntax/DSL layers lower user expressions
// to.
func NewMultivector(a *Ga, pairs ...any) (Multivector, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("ga: NewMultivector: odd number of arguments")
	}
	var out Multivector
	for i := 0; i < len(pairs); i += 2 {
		scale, err := toRat(pairs[i])
		if err != nil {
			return nil, err
		}
		label, ok := pairs[i+1].(string)
		if !ok {
			return nil, fmt.Errorf("ga: NewMultivector: argument %d is not a basis label", i+1)
		}
		base, ok := a.Basis[label]
		if !ok {
			return nil, fmt.Errorf("ga: NewMultivector: unknown basis label %q", label)
		}
		out = append(out, base.scaled(scale))
	}
	return Simplify(out), nil
}

func toRat(v any) (*big.Rat, error) {
	switch x := v.(type) {
	case *big.Rat:
		return new(big.Rat).Set(x), nil
	case int:
		return big.NewRat(int64(x), 1), nil
	case int64:
		return big.NewRat(x, 1), nil
	case float64:
		r := new(big.Rat).SetFloat64(x)
		if r == nil {
			return nil, fmt.Errorf("ga: NewMultivector: %v is not a finite number", x)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("ga: NewMultivector: unsupported coefficient type %T", v)
	}
}
