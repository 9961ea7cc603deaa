package ga

import "math/big"

// Kind tags the runtime shape of an operand reaching the dispatcher.
type Kind int

const (
	KindNumber Kind = iota
	KindBlade
	KindMultivector
)

// GradeClass classifies an operand for dispatch purposes: a pure scalar,
// a single non-scalar grade, or a genuinely mixed-grade multivector.
type GradeClass int

const (
	GradeScalar    GradeClass = iota // 0
	GradeNonScalar                   // 1
	GradeMixed                       // "grades": the whole multivector
)

// Dependency reports whether two operands' bitmaps overlap.
type Dependency int

const (
	Independent Dependency = iota
	Dependent
)

// Operand is the tagged variant the dispatcher routes on: exactly one of
// Number, a single Blade, or a Multivector is meaningful, selected by Kind.
type Operand struct {
	Kind   Kind
	Number *big.Rat
	Blade  Blade
	Mv     Multivector
}

func NumberOperand(r *big.Rat) Operand     { return Operand{Kind: KindNumber, Number: r} }
func BladeOperand(b Blade) Operand         { return Operand{Kind: KindBlade, Blade: b} }
func MvOperand(m Multivector) Operand      { return Operand{Kind: KindMultivector, Mv: Simplify(m)} }

// mv lowers any operand to its Multivector form for uniform processing.
func (o Operand) mv() Multivector {
	switch o.Kind {
	case KindNumber:
		if o.Number == nil || o.Number.Sign() == 0 {
			return nil
		}
		return Multivector{{Bitmap: 0, Scale: o.Number, Basis: ""}}
	case KindBlade:
		if o.Blade.IsZero() {
			return nil
		}
		return Multivector{o.Blade}
	default:
		return o.Mv
	}
}

func (o Operand) gradeClass() GradeClass {
	m := Simplify(o.mv())
	if len(m) == 0 {
		return GradeScalar
	}
	grades := m.Grades()
	if len(grades) > 1 {
		return GradeMixed
	}
	if grades[0] == 0 {
		return GradeScalar
	}
	return GradeNonScalar
}

func dependencyOf(x, y Operand) Dependency {
	xm, ym := x.mv(), y.mv()
	for _, a := range xm {
		for _, b := range ym {
			if a.Bitmap&b.Bitmap != 0 {
				return Dependent
			}
		}
	}
	return Independent
}

type binaryKey struct {
	op         string
	dep        Dependency
	kindA      Kind
	kindB      Kind
	gradeA     GradeClass
	gradeB     GradeClass
}

type unaryKey struct {
	op   string
	kind Kind
}

// BinaryHandler implements one concrete (op, dependency, kinds, grades) case.
type BinaryHandler func(a *Ga, x, y Operand) (Multivector, error)

// UnaryHandler implements one concrete (op, kind) case.
type UnaryHandler func(a *Ga, x Operand) (Multivector, error)

// NaryHandler implements a dedicated n-ary fold, registered under
// [op, :multivectors] instead of reducing left-to-right through a binary
// handler.
type NaryHandler func(a *Ga, xs []Multivector) (Multivector, error)

type opTable struct {
	binary map[binaryKey]BinaryHandler
	unary  map[unaryKey]UnaryHandler
	nary   map[string]NaryHandler
}

func newOpTable() *opTable {
	return &opTable{
		binary: make(map[binaryKey]BinaryHandler),
		unary:  make(map[unaryKey]UnaryHandler),
		nary:   make(map[string]NaryHandler),
	}
}

func (t *opTable) registerBinary(op string, dep Dependency, ka, kb Kind, ga_, gb GradeClass, h BinaryHandler) {
	t.binary[binaryKey{op, dep, ka, kb, ga_, gb}] = h
}

func (t *opTable) registerUnary(op string, k Kind, h UnaryHandler) {
	t.unary[unaryKey{op, k}] = h
}

func (t *opTable) registerNary(op string, h NaryHandler) {
	t.nary[op] = h
}

// Apply routes op over operands to a concrete handler, resolving the
// dispatch tuple from the operands' runtime kinds/grades/dependency.
// Variadic application with more than two operands reduces left-to-right
// through the binary handler unless a dedicated n-ary handler is
// registered for op.
func (a *Ga) Apply(op string, operands ...Operand) (Multivector, error) {
	switch len(operands) {
	case 0:
		return nil, &NoSuchOp{Op: op}
	case 1:
		h, ok := a.ops.unary[unaryKey{op, operands[0].Kind}]
		if !ok {
			return nil, &NoSuchOp{Op: op, Args: []any{operands[0]}}
		}
		return h(a, operands[0])
	default:
		// A dedicated n-ary handler, when registered, always takes
		// priority over left-to-right binary reduction, including at
		// arity 2 (e.g. OpJoin has no binary-map entry at all).
		if h, ok := a.ops.nary[op]; ok {
			mvs := make([]Multivector, len(operands))
			for i, o := range operands {
				mvs[i] = o.mv()
			}
			return h(a, mvs)
		}
		if len(operands) == 2 {
			return a.applyBinary(op, operands[0], operands[1])
		}
		acc := operands[0]
		for _, next := range operands[1:] {
			m, err := a.applyBinary(op, acc, next)
			if err != nil {
				return nil, err
			}
			acc = MvOperand(m)
		}
		return acc.mv(), nil
	}
}

func (a *Ga) applyBinary(op string, x, y Operand) (Multivector, error) {
	dep := dependencyOf(x, y)
	key := binaryKey{op, dep, x.Kind, y.Kind, x.gradeClass(), y.gradeClass()}
	h, ok := a.ops.binary[key]
	if !ok {
		return nil, &NoSuchOp{Op: op, Args: []any{x, y}}
	}
	return h(a, x, y)
}
