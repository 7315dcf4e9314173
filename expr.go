package symexpr

import (
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Expr is a sealed interface over the five expression variants.
// Only Const, Var, Sum, Product, and Rational implement it.
// The variant set is closed: every traversal in this package switches
// exhaustively over these five types.
type Expr interface {
	fmt.Stringer
	expr() // Sealed - only these types implement it
}

// Const is a non-negative integer constant.
type Const uint64

func (Const) expr() {}

// Var is a named variable.
//
// Prefer NewVar over a direct conversion: NewVar normalizes the name to
// NFC so that composed and decomposed spellings of the same name
// canonicalize identically.
type Var string

func (Var) expr() {}

// Sum is a signed sum of operands: Positive operands are added,
// Negative operands subtracted.
type Sum struct {
	Operands []Operand
}

func (Sum) expr() {}

// Product is a signed product of operands: Positive operands multiply,
// Negative operands divide.
type Product struct {
	Operands []Operand
}

func (Product) expr() {}

// Rational is an expression already lowered to canonical rational form.
// Lifting a RationalExpr back to the tree (RationalExpr.Expr) is the
// only way to produce this variant; every other operation treats it as
// an already-canonical leaf.
type Rational struct {
	rat *RationalExpr
}

func (Rational) expr() {}

// RationalExpr returns the canonical form carried by the leaf.
func (r Rational) RationalExpr() *RationalExpr {
	return r.rat
}

// NewVar creates a variable expression. The name is normalized to NFC
// at this boundary so canonical ordering cannot depend on the caller's
// choice of composed vs decomposed Unicode input.
func NewVar(name string) Var {
	return Var(norm.NFC.String(name))
}

// Variables returns the sorted, deduplicated names of all variables
// referenced by the expression.
func Variables(e Expr) []string {
	set := make(map[string]struct{})
	appendVariables(e, set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func appendVariables(e Expr, set map[string]struct{}) {
	switch v := e.(type) {
	case Const:
	case Var:
		set[string(v)] = struct{}{}
	case Sum:
		for _, op := range v.Operands {
			appendVariables(op.Expr, set)
		}
	case Product:
		for _, op := range v.Operands {
			appendVariables(op.Expr, set)
		}
	case Rational:
		for _, t := range v.rat.numer {
			for _, f := range t.Factors {
				set[f.Base] = struct{}{}
			}
		}
		for _, t := range v.rat.denom {
			for _, f := range t.Factors {
				set[f.Base] = struct{}{}
			}
		}
	}
}
