package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSingleAtom(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		{[]*Token{tokInt("42", 0)},
			NewIntegerExpr(42)},

		{[]*Token{tokNeg("-7", 0, tokInt("7", 1))},
			NewNegateExpr(NewIntegerExpr(7))},

		{[]*Token{tokGroup("(42)", 0, tokInt("42", 1))},
			NewIntegerExpr(42)},

		{[]*Token{
			tokGroup("(1+2)", 0,
				tokInt("1", 1),
				tokOp(PLUS, 2),
				tokInt("2", 3)),
		},
			NewBinaryExpr(OpAdd,
				NewIntegerExpr(1),
				NewIntegerExpr(2))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		parse := NewParser(DefaultPrecedence())
		expr, err := parse.Parse(tc.toks)

		assert.NoError(err)
		assert.Equal(tc.expr, expr)
	}
}

func TestParsePrecedence(t *testing.T) {
	testCases := []struct {
		toks []*Token
		expr Expr
	}{
		// 1 + 2 * 3 --> 1 + (2 * 3)
		{[]*Token{
			tokInt("1", 0),
			tokOp(PLUS, 2),
			tokInt("2", 4),
			tokOp(STAR, 6),
			tokInt("3", 8),
		},
			NewBinaryExpr(OpAdd,
				NewIntegerExpr(1),
				NewBinaryExpr(OpMultiply,
					NewIntegerExpr(2),
					NewIntegerExpr(3)))},

		// 1 * 2 + 3 --> (1 * 2) + 3
		{[]*Token{
			tokInt("1", 0),
			tokOp(STAR, 2),
			tokInt("2", 4),
			tokOp(PLUS, 6),
			tokInt("3", 8),
		},
			NewBinaryExpr(OpAdd,
				NewBinaryExpr(OpMultiply,
					NewIntegerExpr(1),
					NewIntegerExpr(2)),
				NewIntegerExpr(3))},

		// 1 - 2 + 3 --> (1 - 2) + 3, not 1 - (2 + 3)
		{[]*Token{
			tokInt("1", 0),
			tokOp(MINUS, 2),
			tokInt("2", 4),
			tokOp(PLUS, 6),
			tokInt("3", 8),
		},
			NewBinaryExpr(OpAdd,
				NewBinaryExpr(OpSubtract,
					NewIntegerExpr(1),
					NewIntegerExpr(2)),
				NewIntegerExpr(3))},

		// 8 / 4 / 2 --> (8 / 4) / 2
		{[]*Token{
			tokInt("8", 0),
			tokOp(SLASH, 2),
			tokInt("4", 4),
			tokOp(SLASH, 6),
			tokInt("2", 8),
		},
			NewBinaryExpr(OpDivide,
				NewBinaryExpr(OpDivide,
					NewIntegerExpr(8),
					NewIntegerExpr(4)),
				NewIntegerExpr(2))},

		// 1 + 2 * 3 - 4 --> (1 + (2 * 3)) - 4
		{[]*Token{
			tokInt("1", 0),
			tokOp(PLUS, 2),
			tokInt("2", 4),
			tokOp(STAR, 6),
			tokInt("3", 8),
			tokOp(MINUS, 10),
			tokInt("4", 12),
		},
			NewBinaryExpr(OpSubtract,
				NewBinaryExpr(OpAdd,
					NewIntegerExpr(1),
					NewBinaryExpr(OpMultiply,
						NewIntegerExpr(2),
						NewIntegerExpr(3))),
				NewIntegerExpr(4))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		parse := NewParser(DefaultPrecedence())
		expr, err := parse.Parse(tc.toks)

		assert.NoError(err)
		assert.Equal(tc.expr, expr)
	}
}

func TestParseGroupResetsPrecedence(t *testing.T) {
	assert := assert.New(t)

	// (1 + 2) * 3 --> the group is parsed from the lowest precedence and
	// becomes the left operand of the multiplication
	toks := []*Token{
		tokGroup("(1 + 2)", 0,
			tokInt("1", 1),
			tokOp(PLUS, 3),
			tokInt("2", 5)),
		tokOp(STAR, 8),
		tokInt("3", 10),
	}

	parse := NewParser(DefaultPrecedence())
	expr, err := parse.Parse(toks)

	assert.NoError(err)
	assert.Equal(
		NewBinaryExpr(OpMultiply,
			NewBinaryExpr(OpAdd,
				NewIntegerExpr(1),
				NewIntegerExpr(2)),
			NewIntegerExpr(3)),
		expr)
}

func TestParseNumberOutOfRange(t *testing.T) {
	testCases := []struct {
		toks []*Token
		err  error
	}{
		{[]*Token{tokInt("99999999999999999999", 0)},
			NewNumberError(0, "99999999999999999999")},

		{[]*Token{tokInt("2147483648", 0)},
			NewNumberError(0, "2147483648")},

		{[]*Token{
			tokInt("1", 0),
			tokOp(PLUS, 2),
			tokInt("99999999999999999999", 4),
		},
			NewNumberError(4, "99999999999999999999")},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		parse := NewParser(DefaultPrecedence())
		expr, err := parse.Parse(tc.toks)

		assert.Nil(expr)
		assert.Equal(tc.err, err)
	}
}

func TestParseEmptySequence(t *testing.T) {
	assert := assert.New(t)

	parse := NewParser(DefaultPrecedence())
	expr, err := parse.Parse([]*Token{})

	assert.Nil(expr)
	assert.Equal(NewSyntaxError(0, "Expect expression."), err)
}

func TestParseBrokenInvariant(t *testing.T) {
	// Sequences that the scanner can never produce are programming
	// defects, and the parser must not build a tree from them.
	testCases := [][]*Token{
		// trailing operator
		{tokInt("1", 0), tokOp(PLUS, 2)},
		// adjacent atoms
		{tokInt("1", 0), tokInt("2", 2)},
		// adjacent operators
		{tokInt("1", 0), tokOp(PLUS, 2), tokOp(PLUS, 4), tokInt("2", 6)},
		// operator at atom position
		{tokOp(PLUS, 0), tokInt("1", 2)},
		// unary minus carrying more than one atom
		{NewToken(UNARY_MINUS, "-1", []*Token{tokInt("1", 1), tokInt("2", 2)}, 0)},
		// empty group
		{tokGroup("()", 0)},
	}

	assert := assert.New(t)
	for _, toks := range testCases {
		parse := NewParser(DefaultPrecedence())
		assert.Panics(func() {
			parse.Parse(toks)
		})
	}
}
