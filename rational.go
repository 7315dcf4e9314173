package symexpr

import (
	"fmt"
	"math/big"
)

// RationalExpr is a canonical rational function: a numerator term list
// over a denominator term list, both implicitly summed. The denominator
// is never empty; constructing one with an empty denominator is a
// MALFORMED_RATIONAL error and is rejected before the value can reach
// any term algebra.
type RationalExpr struct {
	numer []Term
	denom []Term
}

// NewRationalExpr validates and builds a rational expression from
// summed term lists. The input slices are cloned.
func NewRationalExpr(numer, denom []Term) (*RationalExpr, error) {
	if len(denom) == 0 {
		return nil, newMalformedRationalError()
	}
	return &RationalExpr{numer: cloneTerms(numer), denom: cloneTerms(denom)}, nil
}

// Numer returns the numerator term list.
func (r *RationalExpr) Numer() []Term {
	return r.numer
}

// Denom returns the denominator term list.
func (r *RationalExpr) Denom() []Term {
	return r.denom
}

func newRational(numer, denom []Term) *RationalExpr {
	return &RationalExpr{numer: numer, denom: denom}
}

func zeroRational() *RationalExpr {
	return newRational([]Term{NewTerm(0)}, []Term{NewTerm(1)})
}

func oneRational() *RationalExpr {
	return newRational([]Term{NewTerm(1)}, []Term{NewTerm(1)})
}

func (r *RationalExpr) clone() *RationalExpr {
	return newRational(cloneTerms(r.numer), cloneTerms(r.denom))
}

// negated returns the rational with every numerator coefficient
// negated.
func (r *RationalExpr) negated() *RationalExpr {
	return newRational(negateTerms(r.numer), r.denom)
}

// inverted returns the reciprocal by swapping numerator and
// denominator.
func (r *RationalExpr) inverted() *RationalExpr {
	return newRational(r.denom, r.numer)
}

// Simplify re-normalizes the rational. A single-term denominator is
// divided through, leaving denominator 1 (an empty numerator collapses
// to the canonical zero). A multi-term denominator only has like terms
// combined on both sides; no cancellation across multi-term
// denominators is attempted.
func (r *RationalExpr) Simplify() *RationalExpr {
	if len(r.denom) == 1 {
		numer := divTermsBy(r.numer, r.denom[0])
		if len(numer) == 0 {
			return zeroRational()
		}
		return newRational(numer, []Term{NewTerm(1)})
	}
	return newRational(CombineLikeTerms(r.numer), CombineLikeTerms(r.denom))
}

// Expr lifts the rational back into the expression tree. The result is
// simplified first; this is the only path that produces the Rational
// variant.
func (r *RationalExpr) Expr() Expr {
	return Rational{rat: r.Simplify()}
}

// fromExpr lowers an expression tree to canonical rational form,
// folding operands bottom-up with exact term algebra.
//
// The Product fold divides straight through single-term denominators
// instead of cross-multiplying. This keeps division by monomials from
// growing the denominator, at the cost of not simplifying when both
// sides carry multi-term denominators; equivalence stays sound either
// way, only the set of decidable pairs changes.
//
// The error return is unreachable for well-formed trees; it is kept so
// the lowering can later grow guards without changing shape.
func fromExpr(e Expr) (*RationalExpr, error) {
	switch v := e.(type) {
	case Const:
		return newRational([]Term{newUintTerm(uint64(v))}, []Term{NewTerm(1)}), nil
	case Var:
		return newRational([]Term{NewVarTerm(1, string(v))}, []Term{NewTerm(1)}), nil
	case Sum:
		result := zeroRational()
		for _, op := range v.Operands {
			r, err := fromExpr(op.Expr)
			if err != nil {
				return nil, err
			}
			if op.Sign == Negative {
				r = r.negated()
			}
			result = newRational(
				sumTerms(mulTerms(result.numer, r.denom), mulTerms(r.numer, result.denom)),
				mulTerms(result.denom, r.denom),
			)
		}
		return result, nil
	case Product:
		result := oneRational()
		for _, op := range v.Operands {
			r, err := fromExpr(op.Expr)
			if err != nil {
				return nil, err
			}
			if op.Sign == Negative {
				r = r.inverted()
			}
			if len(r.denom) > 1 {
				result = newRational(
					mulTerms(result.numer, r.numer),
					mulTerms(result.denom, r.denom),
				)
			} else {
				numer := mulTerms(result.numer, r.numer)
				result = newRational(divTermsBy(numer, r.denom[0]), result.denom)
			}
		}
		return result, nil
	case Rational:
		return v.rat.clone(), nil
	default:
		return nil, fmt.Errorf("symexpr: unknown expression variant %T", e)
	}
}

// Substitute evaluates the rational with every variable bound. A bound
// variable raised to exponent e contributes value^e via repeated exact
// multiplication (or division for negative e). Returns an
// UNKNOWN_VARIABLE error if any factor's base is unbound. Bindings must
// be positive integers.
func (r *RationalExpr) Substitute(bindings map[string]uint64) (*big.Rat, error) {
	numer := new(big.Rat)
	for _, t := range r.numer {
		v, err := substituteTerm(t, bindings)
		if err != nil {
			return nil, err
		}
		numer.Add(numer, v)
	}
	denom := new(big.Rat)
	for _, t := range r.denom {
		v, err := substituteTerm(t, bindings)
		if err != nil {
			return nil, err
		}
		denom.Add(denom, v)
	}
	if denom.Sign() == 0 {
		return nil, newNonIntegerResultError("denominator evaluated to zero")
	}
	return new(big.Rat).Quo(numer, denom), nil
}

func substituteTerm(t Term, bindings map[string]uint64) (*big.Rat, error) {
	result := new(big.Rat).Set(t.Coef)
	for _, f := range t.Factors {
		bound, ok := bindings[f.Base]
		if !ok {
			return nil, newUnknownVariableError(f.Base)
		}
		if bound == 0 && f.Exponent < 0 {
			return nil, newNonIntegerResultError("division by variable bound to zero")
		}
		value := new(big.Rat).SetUint64(bound)
		if f.Exponent > 0 {
			for i := 0; i < f.Exponent; i++ {
				result.Mul(result, value)
			}
		} else {
			for i := 0; i < -f.Exponent; i++ {
				result.Quo(result, value)
			}
		}
	}
	return result, nil
}

// PartialSubstitute folds bound variables into term coefficients and
// removes their factors, leaving unbound factors symbolic. The result
// is recombined and simplified. Unlike Substitute, missing bindings are
// not an error.
func (r *RationalExpr) PartialSubstitute(bindings map[string]uint64) (*RationalExpr, error) {
	numer := make([]Term, len(r.numer))
	for i, t := range r.numer {
		sub, err := partialSubstituteTerm(t, bindings)
		if err != nil {
			return nil, err
		}
		numer[i] = sub
	}
	denom := make([]Term, len(r.denom))
	for i, t := range r.denom {
		sub, err := partialSubstituteTerm(t, bindings)
		if err != nil {
			return nil, err
		}
		denom[i] = sub
	}
	result, err := NewRationalExpr(CombineLikeTerms(numer), CombineLikeTerms(denom))
	if err != nil {
		return nil, err
	}
	return result.Simplify(), nil
}

func partialSubstituteTerm(t Term, bindings map[string]uint64) (Term, error) {
	coef := new(big.Rat).Set(t.Coef)
	factors := make([]Factor, 0, len(t.Factors))
	for _, f := range t.Factors {
		bound, ok := bindings[f.Base]
		if !ok {
			factors = append(factors, f)
			continue
		}
		if bound == 0 && f.Exponent < 0 {
			return Term{}, newNonIntegerResultError("division by variable bound to zero")
		}
		value := new(big.Rat).SetUint64(bound)
		if f.Exponent > 0 {
			for i := 0; i < f.Exponent; i++ {
				coef.Mul(coef, value)
			}
		} else {
			for i := 0; i < -f.Exponent; i++ {
				coef.Quo(coef, value)
			}
		}
	}
	return Term{Coef: coef, Factors: factors}, nil
}
