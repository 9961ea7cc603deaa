package ga

// Eigen extracts eigenvalues/eigenvectors of a set of metric multivectors
// by running QR a single time: eigenvalues are the diagonal entries of R
// (the i-th blade of the i-th column) and eigenvectors are Q.
//
// This single-shot extraction is only correct when mm is already
// triangularizable by one Householder pass — the typical case for
// symmetric, diagonalizable metric vectors in GA use. A general
// implementation would iterate QR to a convergence criterion; this is an
// explicit implementation choice (spec §9 Open Questions (b)), not a
// silent generalization.
func Eigen(a *Ga, mm []Multivector) (eigenvalues Multivector, eigenvectors []Multivector, err error) {
	q, r, err := QR(a, mm)
	if err != nil {
		return nil, nil, err
	}
	eigenvalues = make(Multivector, len(r))
	for i, col := range r {
		bm := uint64(1) << uint(i)
		eigenvalues[i] = Blade{Bitmap: bm, Scale: col.Coeff(bm), Basis: a.labelOf(bm)}
	}
	return eigenvalues, q, nil
}
