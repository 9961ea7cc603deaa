package ga

import (
	"math/big"
	"testing"
)

func TestApplyBinary(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	e1 := Multivector{a.Basis["e1"]}
	e2 := Multivector{a.Basis["e2"]}

	got, err := a.Apply(OpWedge, MvOperand(e1), MvOperand(e2))
	if err != nil {
		t.Fatal(err)
	}
	want := a.Wedge(e1, e2)
	if len(Simplify(got)) != len(Simplify(want)) {
		t.Errorf("Apply(wedge, e1, e2) = %v, want %v", got, want)
	}
}

func TestApplyUnary(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	e1 := Multivector{a.Basis["e1"]}

	got, err := a.Apply(OpNegation, MvOperand(e1))
	if err != nil {
		t.Fatal(err)
	}
	if got.Coeff(a.Basis["e1"].Bitmap).Cmp(new(big.Rat).Neg(ratOne)) != 0 {
		t.Errorf("Apply(negation, e1) = %v, want -1·e1", got)
	}
}

// TestApplyJoinArityTwo exercises the n-ary OpJoin path at exactly two
// operands, which has no entry in the binary dispatch map and must be
// routed through the nary table rather than applyBinary.
func TestApplyJoinArityTwo(t *testing.T) {
	a, err := New(WithSignature(2, 0, 1), WithBlockOrder([3]string{"r", "p", "q"}))
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewMultivector(a, 1, "e0", 1, "e1")
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewMultivector(a, 1, "e0", 1, "e2")
	if err != nil {
		t.Fatal(err)
	}

	got, err := a.Apply(OpJoin, MvOperand(p), MvOperand(q))
	if err != nil {
		t.Fatalf("Apply(join, p, q): %v", err)
	}
	want := a.Join(p, q)
	if len(Simplify(got)) != len(Simplify(want)) {
		t.Errorf("Apply(join,...) = %v, want %v (from a.Join directly)", got, want)
	}
	for _, b := range Simplify(want) {
		if c := got.Coeff(b.Bitmap); c.Cmp(b.Scale) != 0 {
			t.Errorf("Apply(join,...) mismatch at bitmap %b: %v vs %v", b.Bitmap, c, b.Scale)
		}
	}
}

func TestApplyJoinArityThree(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	e1 := Multivector{a.Basis["e1"]}
	e2 := Multivector{a.Basis["e2"]}
	e3 := Multivector{a.Basis["e3"]}

	got, err := a.Apply(OpJoin, MvOperand(e1), MvOperand(e2), MvOperand(e3))
	if err != nil {
		t.Fatal(err)
	}
	want := a.Join(e1, e2, e3)
	if len(Simplify(got)) != len(Simplify(want)) {
		t.Errorf("Apply(join, e1,e2,e3) = %v, want %v", got, want)
	}
}

func TestApplyNoSuchOp(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	e1 := Multivector{a.Basis["e1"]}

	_, err := a.Apply("%%%", MvOperand(e1), MvOperand(e1))
	if err == nil {
		t.Fatal("expected NoSuchOp for an unregistered operator")
	}
	if _, ok := err.(*NoSuchOp); !ok {
		t.Errorf("error = %T, want *NoSuchOp", err)
	}
}

func TestApplyNoOperands(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	_, err := a.Apply(OpMul)
	if err == nil {
		t.Fatal("expected NoSuchOp for zero operands")
	}
}

func TestDependencyOf(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	e1 := MvOperand(Multivector{a.Basis["e1"]})
	e2 := MvOperand(Multivector{a.Basis["e2"]})
	e1again := MvOperand(Multivector{a.Basis["e1"]})

	if dependencyOf(e1, e2) != Independent {
		t.Errorf("dependencyOf(e1,e2) should be Independent")
	}
	if dependencyOf(e1, e1again) != Dependent {
		t.Errorf("dependencyOf(e1,e1) should be Dependent")
	}
}
