package ga

import (
	"math/big"
	"testing"
)

func TestNewMultivectorLiteral(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)

	mv, err := NewMultivector(a, 2, "e1", 0.5, "e2")
	if err != nil {
		t.Fatal(err)
	}
	if c := mv.Coeff(a.Basis["e1"].Bitmap); c.Cmp(big.NewRat(2, 1)) != 0 {
		t.Errorf("coeff(e1) = %v, want 2", c)
	}
	if c := mv.Coeff(a.Basis["e2"].Bitmap); c.Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("coeff(e2) = %v, want 1/2", c)
	}
}

func TestNewMultivectorBigRat(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	r := big.NewRat(7, 3)
	mv, err := NewMultivector(a, r, "e1")
	if err != nil {
		t.Fatal(err)
	}
	if c := mv.Coeff(a.Basis["e1"].Bitmap); c.Cmp(r) != 0 {
		t.Errorf("coeff(e1) = %v, want %v", c, r)
	}
	// NewMultivector must copy, not alias, the caller's *big.Rat.
	r.SetInt64(9)
	if c := mv.Coeff(a.Basis["e1"].Bitmap); c.Cmp(big.NewRat(7, 3)) != 0 {
		t.Errorf("coeff(e1) = %v after mutating caller's Rat, want unaffected 7/3", c)
	}
}

func TestNewMultivectorErrors(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)

	if _, err := NewMultivector(a, 1); err == nil {
		t.Errorf("expected error for odd argument count")
	}
	if _, err := NewMultivector(a, "e1", 1); err == nil {
		t.Errorf("expected error for a coefficient that isn't numeric")
	}
	if _, err := NewMultivector(a, 1, 2); err == nil {
		t.Errorf("expected error for a label that isn't a string")
	}
	if _, err := NewMultivector(a, 1, "nope"); err == nil {
		t.Errorf("expected error for an unknown basis label")
	}
}
