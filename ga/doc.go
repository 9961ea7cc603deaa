// Package ga implements a geometric (Clifford) algebra engine: given a
// signature (p, q, r) it builds the graded algebra on 2^(p+q+r) basis
// blades and evaluates geometric products, contractions, duals, norms,
// and reflections over multivectors composed from those blades.
//
// An algebra is built once via New and is immutable thereafter; blades and
// multivectors are value types and every operator returns a fresh result.
package ga
