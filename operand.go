package symexpr

// Sign tags an operand as added/multiplied (Positive) or
// subtracted/divided (Negative). Using a sign instead of distinct
// Add/Sub and Mul/Div node kinds keeps the variant set small and makes
// flattening of nested sums and products uniform.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// Flip returns the opposite sign.
func (s Sign) Flip() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// Operand is a sign-tagged sub-expression inside a Sum or Product.
type Operand struct {
	Sign Sign
	Expr Expr
}

// Negate returns the operand with its sign flipped.
func (o Operand) Negate() Operand {
	return Operand{Sign: o.Sign.Flip(), Expr: o.Expr}
}

func positive(e Expr) Operand {
	return Operand{Sign: Positive, Expr: e}
}
