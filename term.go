package symexpr

import (
	"math/big"
	"slices"
	"strings"
)

// Factor is one variable raised to an integer exponent inside a
// monomial. Within a Term's factor list each base appears at most once
// and factors are kept sorted by base.
type Factor struct {
	Base     string
	Exponent int
}

// Term is a monomial: an exact rational coefficient times a product of
// factors. Terms never mutate a coefficient in place; every operation
// allocates a fresh *big.Rat so term lists can be shared freely.
type Term struct {
	Coef    *big.Rat
	Factors []Factor
}

// NewTerm creates a constant term.
func NewTerm(coef int64) Term {
	return Term{Coef: big.NewRat(coef, 1)}
}

// NewVarTerm creates the term coef*base.
func NewVarTerm(coef int64, base string) Term {
	return Term{
		Coef:    big.NewRat(coef, 1),
		Factors: []Factor{{Base: base, Exponent: 1}},
	}
}

func newUintTerm(value uint64) Term {
	return Term{Coef: new(big.Rat).SetUint64(value)}
}

// IsConstant reports whether the term has no effective variable part.
func (t Term) IsConstant() bool {
	for _, f := range t.Factors {
		if f.Exponent != 0 {
			return false
		}
	}
	return true
}

// Negate returns the term with its coefficient negated.
func (t Term) Negate() Term {
	return Term{
		Coef:    new(big.Rat).Neg(t.Coef),
		Factors: slices.Clone(t.Factors),
	}
}

// Mul returns the product of two monomials: coefficients multiply and
// equal-base exponents sum.
func (t Term) Mul(o Term) Term {
	factors := make([]Factor, 0, len(t.Factors)+len(o.Factors))
	factors = append(factors, t.Factors...)
	factors = append(factors, o.Factors...)
	return Term{
		Coef:    new(big.Rat).Mul(t.Coef, o.Coef),
		Factors: mergeFactors(factors),
	}
}

// Div returns the quotient of two monomials: division is multiplication
// by the reciprocal, so the divisor's exponents join negated.
func (t Term) Div(o Term) Term {
	factors := make([]Factor, 0, len(t.Factors)+len(o.Factors))
	factors = append(factors, t.Factors...)
	for _, f := range o.Factors {
		factors = append(factors, Factor{Base: f.Base, Exponent: -f.Exponent})
	}
	return Term{
		Coef:    new(big.Rat).Quo(t.Coef, o.Coef),
		Factors: mergeFactors(factors),
	}
}

func (t Term) clone() Term {
	return Term{
		Coef:    new(big.Rat).Set(t.Coef),
		Factors: slices.Clone(t.Factors),
	}
}

// mergeFactors sorts factors by base, sums exponents of equal bases,
// and drops factors whose exponent reaches zero.
func mergeFactors(factors []Factor) []Factor {
	slices.SortFunc(factors, compareFactors)
	merged := make([]Factor, 0, len(factors))
	for _, f := range factors {
		if n := len(merged); n > 0 && merged[n-1].Base == f.Base {
			merged[n-1].Exponent += f.Exponent
			continue
		}
		merged = append(merged, f)
	}
	return slices.DeleteFunc(merged, func(f Factor) bool {
		return f.Exponent == 0
	})
}

func compareFactors(a, b Factor) int {
	if c := strings.Compare(a.Base, b.Base); c != 0 {
		return c
	}
	return a.Exponent - b.Exponent
}

func compareFactorLists(a, b []Factor) int {
	return slices.CompareFunc(a, b, compareFactors)
}

// CombineLikeTerms canonicalizes a summed term list: zero-exponent
// factors are stripped, terms are sorted with constants first and
// non-constants ordered by factor list, terms with identical factor
// lists have their coefficients summed exactly, and terms whose
// coefficient sums to zero are elided. The operation is idempotent.
func CombineLikeTerms(terms []Term) []Term {
	stripped := make([]Term, len(terms))
	for i, t := range terms {
		factors := slices.Clone(t.Factors)
		factors = slices.DeleteFunc(factors, func(f Factor) bool {
			return f.Exponent == 0
		})
		stripped[i] = Term{Coef: t.Coef, Factors: factors}
	}

	// Constants sort first; non-constant terms order by factor list.
	slices.SortFunc(stripped, func(a, b Term) int {
		ac, bc := a.IsConstant(), b.IsConstant()
		switch {
		case ac && !bc:
			return -1
		case !ac && bc:
			return 1
		}
		return compareFactorLists(a.Factors, b.Factors)
	})

	result := make([]Term, 0, len(stripped))
	var current *Term
	for i := range stripped {
		t := stripped[i]
		if current != nil && compareFactorLists(current.Factors, t.Factors) == 0 {
			current.Coef = new(big.Rat).Add(current.Coef, t.Coef)
			continue
		}
		if current != nil && current.Coef.Sign() != 0 {
			result = append(result, *current)
		}
		c := t.clone()
		current = &c
	}
	if current != nil && current.Coef.Sign() != 0 {
		result = append(result, *current)
	}
	return result
}

// sumTerms concatenates two summed term lists and canonicalizes.
func sumTerms(a, b []Term) []Term {
	joined := make([]Term, 0, len(a)+len(b))
	joined = append(joined, a...)
	joined = append(joined, b...)
	return CombineLikeTerms(joined)
}

// mulTerms multiplies two summed term lists (full Cartesian product)
// and canonicalizes.
func mulTerms(a, b []Term) []Term {
	product := make([]Term, 0, len(a)*len(b))
	for _, ta := range a {
		for _, tb := range b {
			product = append(product, ta.Mul(tb))
		}
	}
	return CombineLikeTerms(product)
}

// divTermsBy divides every term of a summed list by a single monomial
// and canonicalizes.
func divTermsBy(terms []Term, by Term) []Term {
	quotients := make([]Term, len(terms))
	for i, t := range terms {
		quotients[i] = t.Div(by)
	}
	return CombineLikeTerms(quotients)
}

func negateTerms(terms []Term) []Term {
	negated := make([]Term, len(terms))
	for i, t := range terms {
		negated[i] = t.Negate()
	}
	return negated
}

func cloneTerms(terms []Term) []Term {
	cloned := make([]Term, len(terms))
	for i, t := range terms {
		cloned[i] = t.clone()
	}
	return cloned
}
