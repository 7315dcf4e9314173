package symexpr

// Equivalence is the outcome of the ternary equivalence check.
type Equivalence string

const (
	// Equal means the two expressions are provably equal for every
	// variable assignment.
	Equal Equivalence = "EQUAL"

	// Unequal means the two expressions are provably unequal for every
	// variable assignment.
	Unequal Equivalence = "UNEQUAL"

	// Unknown means canonical form alone cannot decide: the difference
	// still depends on unbound variables. Unknown is a valid result,
	// not an error, and callers must treat it distinctly from both
	// Equal and Unequal.
	Unknown Equivalence = "UNKNOWN"
)

// Equivalent decides whether a and b denote the same value for all
// variable assignments. It lowers the difference a - b to canonical
// rational form and classifies the surviving numerator terms:
//
//   - no nonzero term: Equal
//   - only a nonzero constant term: Unequal (a fixed nonzero difference
//     can never vanish)
//   - any nonzero variable-dependent term: Unknown
//
// The check is sound but incomplete: Equal and Unequal are always
// correct, while Unknown covers pairs a deeper algebraic analysis
// (factoring, multi-term denominator cancellation) might still decide.
func Equivalent(a, b Expr) Equivalence {
	diff, err := fromExpr(Sub(a, b))
	if err != nil {
		return Unknown
	}
	hasConstant := false
	hasVariableTerm := false
	for _, t := range diff.numer {
		if t.Coef.Sign() == 0 {
			continue
		}
		if t.IsConstant() {
			hasConstant = true
		} else {
			hasVariableTerm = true
		}
	}
	switch {
	case !hasConstant && !hasVariableTerm:
		return Equal
	case hasConstant && !hasVariableTerm:
		return Unequal
	default:
		return Unknown
	}
}

// Eq reports whether a and b are provably equal. Ne reports whether
// they are provably unequal. The two are NOT complements: when
// Equivalent returns Unknown, both Eq and Ne are false. Use Equivalent
// directly when the distinction matters.
func Eq(a, b Expr) bool {
	return Equivalent(a, b) == Equal
}

// Ne reports whether a and b are provably unequal for every variable
// assignment. See Eq for the non-complementarity caveat.
func Ne(a, b Expr) bool {
	return Equivalent(a, b) == Unequal
}
