package ga

import "testing"

// TestQRIdentityOnOrthonormalVectors is scenario 6: for n orthonormal
// vectors in G(n,0,0), QR returns Q as the identity and R equal to the
// input.
func TestQRIdentityOnOrthonormalVectors(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	vectors := []Multivector{
		{a.Basis["e1"]},
		{a.Basis["e2"]},
		{a.Basis["e3"]},
	}

	q, r, err := QR(a, vectors)
	if err != nil {
		t.Fatal(err)
	}
	if len(q) != len(vectors) || len(r) != len(vectors) {
		t.Fatalf("QR returned %d/%d columns, want %d", len(q), len(r), len(vectors))
	}
	for i := range vectors {
		if len(Simplify(r[i])) != 1 || r[i].Coeff(vectors[i][0].Bitmap).Cmp(ratOne) != 0 {
			t.Errorf("R[%d] = %v, want the input column unchanged", i, r[i])
		}
		if len(Simplify(q[i])) != 1 || q[i].Coeff(vectors[i][0].Bitmap).Cmp(ratOne) != 0 {
			t.Errorf("Q[%d] = %v, want the standard basis vector unchanged", i, q[i])
		}
	}
}

func TestQRNonTrivialColumn(t *testing.T) {
	a := newTestAlgebra(t, 3, 0, 0)
	// A column with a component below the pivot index forces an actual
	// Householder reflection at step 0.
	v0 := Multivector{a.Basis["e1"], a.Basis["e2"]}
	v1 := Multivector{a.Basis["e2"]}
	v2 := Multivector{a.Basis["e3"]}

	q, r, err := QR(a, []Multivector{v0, v1, v2})
	if err != nil {
		t.Fatal(err)
	}
	if len(q) != 3 || len(r) != 3 {
		t.Fatalf("QR returned wrong column counts: %d/%d", len(q), len(r))
	}
	// R's first column survives the reflection (is non-empty), and every
	// column of Q is made of grade-1 blades only.
	if r[0].IsEmpty() {
		t.Errorf("R[0] should not be empty")
	}
	for _, col := range q {
		for _, b := range col {
			if b.Grade() != 1 {
				t.Errorf("Q column contains non-vector blade %v", b)
			}
		}
	}
}
