package symexpr

import "math/big"

// Substitute evaluates the expression with every variable bound to a
// positive integer. Every variable occurring in the expression must be
// present in bindings or the call fails with UNKNOWN_VARIABLE. A
// subtraction that would go below zero or a division that is not exact
// fails with NON_INTEGER_RESULT; both model the domain constraint that
// dimension formulas evaluate to non-negative integers. Neither failure
// is recoverable within the call.
func Substitute(e Expr, bindings map[string]uint64) (uint64, error) {
	switch v := e.(type) {
	case Const:
		return uint64(v), nil
	case Var:
		bound, ok := bindings[string(v)]
		if !ok {
			return 0, newUnknownVariableError(string(v))
		}
		return bound, nil
	case Sum:
		var acc uint64
		for _, op := range v.Operands {
			value, err := Substitute(op.Expr, bindings)
			if err != nil {
				return 0, err
			}
			if op.Sign == Positive {
				acc += value
			} else {
				if value > acc {
					return 0, newNonIntegerResultError("subtraction went below zero")
				}
				acc -= value
			}
		}
		return acc, nil
	case Product:
		acc := uint64(1)
		for _, op := range v.Operands {
			value, err := Substitute(op.Expr, bindings)
			if err != nil {
				return 0, err
			}
			if op.Sign == Positive {
				acc *= value
			} else {
				if value == 0 || acc%value != 0 {
					return 0, newNonIntegerResultError("division is not exact")
				}
				acc /= value
			}
		}
		return acc, nil
	case Rational:
		value, err := v.rat.Substitute(bindings)
		if err != nil {
			return 0, err
		}
		if !value.IsInt() {
			return 0, newNonIntegerResultError("rational form did not evaluate to a whole number")
		}
		abs := new(big.Int).Abs(value.Num())
		if !abs.IsUint64() {
			return 0, newNonIntegerResultError("result does not fit in uint64")
		}
		return abs.Uint64(), nil
	}
	return 0, newNonIntegerResultError("unknown expression variant")
}

// PartialSubstitute folds the bound variables into the expression and
// returns a symbolic result that may still reference unbound variables.
// The expression is lowered to canonical rational form, bound factors
// are folded into coefficients, and the simplified form is lifted back
// into the tree. Unlike Substitute, incomplete bindings are expected,
// not an error.
func PartialSubstitute(e Expr, bindings map[string]uint64) (Expr, error) {
	rational, err := fromExpr(e)
	if err != nil {
		return nil, err
	}
	substituted, err := rational.PartialSubstitute(bindings)
	if err != nil {
		return nil, err
	}
	return substituted.Expr(), nil
}
