package symexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivalent(t *testing.T) {
	a := NewVar("a")
	b := NewVar("b")
	c := NewVar("c")
	d := NewVar("d")
	commonFactor := Add(Add(a, b), c)

	cases := []struct {
		name string
		l, r Expr
		want Equivalence
	}{
		{"equal constants", Const(1), Const(1), Equal},
		{"unequal constants", Const(1), Const(2), Unequal},
		{"distinct variables", a, b, Unknown},
		{"same offset", Add(a, Const(1)), Add(a, Const(1)), Equal},
		{"different offset", Add(a, Const(1)), Add(a, Const(2)), Unequal},
		{"different scale", Mul(a, Const(2)), Mul(a, Const(3)), Unknown},
		{"variable vs constant shift", Add(a, Const(1)), b, Unknown},
		{"sum commutes", Add(a, b), Add(b, a), Equal},
		{"product commutes", Mul(a, b), Mul(b, a), Equal},
		{"distributes", Mul(a, Add(b, Const(1))), Add(Mul(a, b), a), Equal},
		{
			"expansion",
			Mul(Add(a, Const(1)), Const(2)),
			Add(Mul(a, Const(2)), Const(2)),
			Equal,
		},
		{
			"expansion off by one",
			Mul(Add(a, Const(1)), Const(2)),
			Add(Mul(a, Const(2)), Const(3)),
			Unequal,
		},
		{"division associates", Div(Mul(a, b), c), Mul(a, Div(b, c)), Equal},
		{
			"division distributes over sum",
			Div(Add(a, b), c),
			Add(Div(a, c), Div(b, c)),
			Equal,
		},
		{
			"division distributes over difference",
			Div(Sub(a, b), c),
			Sub(Div(a, c), Div(b, c)),
			Equal,
		},
		{"nested divisions", Div(Div(a, b), c), Div(a, Mul(b, c)), Equal},
		{
			"coefficient split",
			Div(Add(Mul(a, Const(2)), Mul(b, Const(3))), Const(6)),
			Add(Div(a, Const(3)), Div(b, Const(2))),
			Equal,
		},
		{
			"reordered rational",
			Div(Add(Mul(a, b), c), Add(a, Const(1))),
			Div(Add(Mul(b, a), c), Add(Const(1), a)),
			Equal,
		},
		{
			"constant pulled through division",
			Mul(a, Div(b, Mul(c, Const(2)))),
			Div(Mul(a, b), Mul(Const(2), c)),
			Equal,
		},
		{
			"repeated factors",
			Div(Mul(Mul(a, a), b), Mul(c, c)),
			Mul(Mul(a, b), Div(a, Mul(c, c))),
			Equal,
		},
		{
			"power sum ordering",
			Add(Add(a, Mul(a, a)), Mul(Mul(a, a), a)),
			Add(Add(Mul(Mul(a, a), a), Mul(a, a)), a),
			Equal,
		},
		{
			"expanded denominator",
			Div(Mul(Mul(a, a), b), Mul(Add(c, Const(1)), Add(c, Const(2)))),
			Div(Mul(Mul(a, a), b), Add(Add(Mul(c, c), Mul(c, Const(3))), Const(2))),
			Equal,
		},
		{
			"scale invariance by constant",
			Div(Add(a, b), Add(c, d)),
			Div(Mul(Const(2), Add(a, b)), Mul(Const(2), Add(c, d))),
			Equal,
		},
		{
			"scale invariance by common factor",
			Div(Add(a, b), Add(c, d)),
			Div(Mul(Add(a, b), commonFactor), Mul(Add(c, d), commonFactor)),
			Equal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Equivalent(tc.l, tc.r))
		})
	}
}

func TestEquivalent_Symmetric(t *testing.T) {
	a := NewVar("a")
	b := NewVar("b")

	l := Div(Add(Mul(a, b), Const(2)), Add(b, Const(2)))
	r := Div(Add(Mul(b, a), Const(2)), Add(Const(2), b))

	assert.Equal(t, Equal, Equivalent(l, r))
	assert.Equal(t, Equal, Equivalent(r, l))
}

func TestEqNe_AreNotComplements(t *testing.T) {
	a := NewVar("a")
	doubled := Mul(a, Const(2))
	tripled := Mul(a, Const(3))

	// The difference a*2 - a*3 still depends on a, so neither equality
	// nor inequality is provable.
	assert.Equal(t, Unknown, Equivalent(doubled, tripled))
	assert.False(t, Eq(doubled, tripled))
	assert.False(t, Ne(doubled, tripled))
}

func TestEqNe_DecidedCases(t *testing.T) {
	a := NewVar("a")

	assert.True(t, Eq(Add(a, Const(1)), Add(Const(1), a)))
	assert.False(t, Ne(Add(a, Const(1)), Add(Const(1), a)))

	assert.True(t, Ne(Const(1), Const(2)))
	assert.False(t, Eq(Const(1), Const(2)))
}
