package symexpr

import (
	"strconv"
	"strings"
)

// Deterministic text rendering for diagnostics and golden tests. The
// output is human-oriented and is never parsed back.

func (c Const) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

func (v Var) String() string {
	return string(v)
}

func (s Sum) String() string {
	if len(s.Operands) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, op := range s.Operands {
		switch {
		case i == 0 && op.Sign == Negative:
			b.WriteString("-")
		case i > 0 && op.Sign == Negative:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(nestedString(op.Expr))
	}
	return b.String()
}

func (p Product) String() string {
	if len(p.Operands) == 0 {
		return "1"
	}
	var b strings.Builder
	for i, op := range p.Operands {
		switch {
		case i == 0 && op.Sign == Negative:
			b.WriteString("1 / ")
		case i > 0 && op.Sign == Negative:
			b.WriteString(" / ")
		case i > 0:
			b.WriteString(" * ")
		}
		b.WriteString(nestedString(op.Expr))
	}
	return b.String()
}

func (r Rational) String() string {
	return r.rat.String()
}

// nestedString parenthesizes composite sub-expressions.
func nestedString(e Expr) string {
	switch e.(type) {
	case Sum, Product, Rational:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func (t Term) String() string {
	coef := t.Coef.RatString()
	if len(t.Factors) == 0 {
		return coef
	}
	parts := make([]string, len(t.Factors))
	for i, f := range t.Factors {
		if f.Exponent == 1 {
			parts[i] = f.Base
		} else {
			parts[i] = f.Base + "^" + strconv.Itoa(f.Exponent)
		}
	}
	factors := strings.Join(parts, "*")
	switch coef {
	case "1":
		return factors
	case "-1":
		return "-" + factors
	}
	return coef + "*" + factors
}

func (r *RationalExpr) String() string {
	numer := termsString(r.numer)
	if len(r.denom) == 1 && r.denom[0].IsConstant() && r.denom[0].Coef.RatString() == "1" {
		return numer
	}
	return "(" + numer + ") / (" + termsString(r.denom) + ")"
}

func termsString(terms []Term) string {
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		s := t.String()
		if i > 0 {
			if strings.HasPrefix(s, "-") {
				b.WriteString(" - ")
				s = s[1:]
			} else {
				b.WriteString(" + ")
			}
		}
		b.WriteString(s)
	}
	return b.String()
}
