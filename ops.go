package symexpr

// Arithmetic combinators over expression trees.
//
// Same-kind operands are flattened into a single operand sequence at
// construction time: adding two Sums concatenates their operands,
// subtracting a Sum concatenates its operands with flipped signs, and
// likewise for Product under Mul/Div. Operand slices are always copied,
// never shared, so previously built trees are not mutated.

// Add returns l + r.
func Add(l, r Expr) Expr {
	ls, lok := l.(Sum)
	rs, rok := r.(Sum)
	return Sum{Operands: mergeOperands(ls.Operands, lok, l, rs.Operands, rok, r, Positive)}
}

// Sub returns l - r.
func Sub(l, r Expr) Expr {
	ls, lok := l.(Sum)
	rs, rok := r.(Sum)
	return Sum{Operands: mergeOperands(ls.Operands, lok, l, rs.Operands, rok, r, Negative)}
}

// Mul returns l * r.
func Mul(l, r Expr) Expr {
	lp, lok := l.(Product)
	rp, rok := r.(Product)
	return Product{Operands: mergeOperands(lp.Operands, lok, l, rp.Operands, rok, r, Positive)}
}

// Div returns l / r.
func Div(l, r Expr) Expr {
	lp, lok := l.(Product)
	rp, rok := r.(Product)
	return Product{Operands: mergeOperands(lp.Operands, lok, l, rp.Operands, rok, r, Negative)}
}

// mergeOperands builds the flattened operand sequence for a binary
// combination. If a side is already the target kind its operands are
// spliced in (the right side with signs flipped when the operation is
// Negative); otherwise the side joins as a single operand.
func mergeOperands(lops []Operand, lok bool, l Expr, rops []Operand, rok bool, r Expr, sign Sign) []Operand {
	out := make([]Operand, 0, len(lops)+len(rops)+2)
	if lok {
		out = append(out, lops...)
	} else {
		out = append(out, positive(l))
	}
	if rok {
		if sign == Positive {
			out = append(out, rops...)
		} else {
			for _, op := range rops {
				out = append(out, op.Negate())
			}
		}
	} else {
		out = append(out, Operand{Sign: sign, Expr: r})
	}
	return out
}
