package ga

// Operator symbols, as named in spec §4.5/§6.
const (
	OpMul        = "*"
	OpWedge      = "∧"
	OpJoin       = "∨"
	OpLc         = "⌋"
	OpRc         = "⌊"
	OpSymmInner  = "⌋•"
	OpDual       = "∼"
	OpHodge      = "★"
	OpSandwich   = "⍣"
	OpExp        = "𝑒"
	OpInverse    = "⁻"
	OpNormalize  = "⧄"
	OpReverse    = "<-"
	OpInvolution = "_"
	OpNegation   = "-"
)

var allKinds = [...]Kind{KindNumber, KindBlade, KindMultivector}
var allGradeClasses = [...]GradeClass{GradeScalar, GradeNonScalar, GradeMixed}
var allDependencies = [...]Dependency{Independent, Dependent}

// buildOps precomputes the full dispatch table at algebra construction, a
// dense match over every (op, dependency, kinds, gradeclasses) tuple
// rather than a runtime type switch per call (§9 Design Notes).
func buildOps(a *Ga) *opTable {
	t := newOpTable()

	binary := map[string]BinaryHandler{
		OpMul:       func(a *Ga, x, y Operand) (Multivector, error) { return a.Mul(x.mv(), y.mv()), nil },
		OpWedge:     func(a *Ga, x, y Operand) (Multivector, error) { return a.Wedge(x.mv(), y.mv()), nil },
		OpLc:        func(a *Ga, x, y Operand) (Multivector, error) { return a.Lc(x.mv(), y.mv()), nil },
		OpRc:        func(a *Ga, x, y Operand) (Multivector, error) { return a.Rc(x.mv(), y.mv()), nil },
		OpSymmInner: func(a *Ga, x, y Operand) (Multivector, error) { return a.SymmetricInner(x.mv(), y.mv()), nil },
		OpSandwich:  func(a *Ga, x, y Operand) (Multivector, error) { return a.Sandwich(x.mv(), y.mv()), nil },
	}
	for op, h := range binary {
		for _, dep := range allDependencies {
			for _, ka := range allKinds {
				for _, kb := range allKinds {
					for _, gca := range allGradeClasses {
						for _, gcb := range allGradeClasses {
							t.registerBinary(op, dep, ka, kb, gca, gcb, h)
						}
					}
				}
			}
		}
	}

	unary := map[string]UnaryHandler{
		OpReverse:    func(a *Ga, x Operand) (Multivector, error) { return Reverse(x.mv()), nil },
		OpInvolution: func(a *Ga, x Operand) (Multivector, error) { return Involution(x.mv()), nil },
		OpNegation:   func(a *Ga, x Operand) (Multivector, error) { return Negation(x.mv()), nil },
		OpDual:       func(a *Ga, x Operand) (Multivector, error) { return a.Dual(x.mv()), nil },
		OpHodge:      func(a *Ga, x Operand) (Multivector, error) { return a.HodgeDual(x.mv()), nil },
		OpNormalize:  func(a *Ga, x Operand) (Multivector, error) { return a.Normalize(x.mv()), nil },
		OpExp:        func(a *Ga, x Operand) (Multivector, error) { return a.Exp(x.mv()), nil },
		OpInverse: func(a *Ga, x Operand) (Multivector, error) {
			return a.Inverse(x.mv())
		},
	}
	for op, h := range unary {
		for _, k := range allKinds {
			t.registerUnary(op, k, h)
		}
	}

	t.registerNary(OpWedge, func(a *Ga, xs []Multivector) (Multivector, error) {
		out := xs[0]
		for _, x := range xs[1:] {
			out = a.Wedge(out, x)
		}
		return out, nil
	})
	t.registerNary(OpJoin, func(a *Ga, xs []Multivector) (Multivector, error) {
		return a.Join(xs...), nil
	})

	return t
}
