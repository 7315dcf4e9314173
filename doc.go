// Package symexpr is a symbolic-arithmetic engine for dimension-like
// integer formulas built from constants, named variables, sums, and
// products.
//
// Callers build an Expr tree with NewVar, Const literals, and the
// Add/Sub/Mul/Div combinators, then ask three kinds of questions:
//
//   - Equivalent(a, b): are two formulas permanently equal for every
//     variable assignment?
//   - Substitute(e, bindings): evaluate with every variable bound to a
//     positive integer.
//   - PartialSubstitute(e, bindings): fold in the variables that are
//     bound and return a symbolic residue for the rest.
//
// ARCHITECTURE:
//
// Expr is a sealed tagged union (Const, Var, Sum, Product, Rational).
// Subtraction and division have no node kinds of their own; Sum and
// Product operands carry a Positive/Negative sign instead, which keeps
// flattening of nested sums and products a local, uniform operation.
//
// Whenever equivalence or partial substitution is requested, the tree
// is lowered to a canonical rational normal form: a sum of monomials
// over a sum of monomials, with exact *big.Rat coefficients, monomials
// deduplicated and sorted deterministically. Two lowered forms with the
// same numerator and denominator term lists denote the same rational
// function; the converse does not hold (no factoring or multi-term
// denominator cancellation is attempted).
//
// Everything is a pure function over immutable value trees: no shared
// mutable state, no I/O, no randomness. Trees may be shared freely
// across goroutines.
//
// CRITICAL: three-valued equality.
//
// Equivalent returns Equal, Unequal, or Unknown. Unknown is not an
// error; it means the canonical difference still depends on unbound
// variables. The derived predicates Eq and Ne are NOT complements:
// when Equivalent reports Unknown, Eq and Ne are both false. Callers
// must branch on the ternary result, never on !Eq.
package symexpr
