package calc

import (
	"fmt"
	"strconv"
)

// Parser composes the syntax tree for an expression from the token sequence
// produced by the scanner, using precedence climbing: starting from the
// lowest precedence, it keeps extending the left-hand side while the next
// operator binds at least as tightly as the current minimum, and recurses
// with a raised minimum for the right-hand side of left-associative
// operators.
//
// The parser assumes its input alternates atoms and operators, starting and
// ending with an atom, as the scanner guarantees. A sequence violating that
// invariant is a defect of the scanning phase, and the parser panics rather
// than building a wrong tree from it.
type Parser struct {
	table *PrecedenceTable
}

// NewParser creates a new parser that consults the given precedence table
func NewParser(table *PrecedenceTable) *Parser {
	return &Parser{table}
}

// Parse builds the syntax tree for a top-level token sequence
func (parser *Parser) Parse(tokens []*Token) (Expr, error) {
	seq := &sequence{tokens, 0}
	if !seq.hasNext() {
		return nil, NewSyntaxError(0, "Expect expression.")
	}
	expr, err := parser.parseExpr(seq, 0)
	if err != nil {
		return nil, err
	}
	if seq.hasNext() {
		// parseExpr called with the lowest minimum consumes every
		// operator it sees, so leftover tokens mean the alternation
		// invariant was broken.
		panic(fmt.Sprintf("expected end of sequence, found %s", seq.peek()))
	}
	return expr, nil
}

// parseExpr climbs the sequence, building every binary node whose operator
// binds at least as tightly as minPrec.
func (parser *Parser) parseExpr(seq *sequence, minPrec int) (Expr, error) {
	lhs, err := parser.parseAtom(seq.next())
	if err != nil {
		return nil, err
	}
	for seq.hasNext() {
		tok := seq.peek()
		op, ok := operatorOps[tok.Typ]
		if !ok {
			panic(fmt.Sprintf("expected operator, found %s", tok))
		}
		prec, assoc, ok := parser.table.Lookup(op)
		if !ok {
			panic(fmt.Sprintf("operator '%s' is missing from the precedence table", op))
		}
		if prec < minPrec {
			break
		}
		seq.next()
		if !seq.hasNext() {
			panic(fmt.Sprintf("expected atom after operator '%s'", op))
		}
		// Raising the minimum for the right-hand side makes an
		// equal-precedence operator terminate the recursion, so
		// left-associative chains group left-to-right. Keeping it
		// unchanged lets the recursion swallow the chain, grouping
		// right-to-left.
		nextMin := prec
		if assoc == AssocLeft {
			nextMin = prec + 1
		}
		rhs, err := parser.parseExpr(seq, nextMin)
		if err != nil {
			return nil, err
		}
		lhs = NewBinaryExpr(op, lhs, rhs)
	}
	return lhs, nil
}

// parseAtom turns a single atom token into a leaf or subtree, recursing into
// the nested sequence carried by group and unary_minus tokens.
func (parser *Parser) parseAtom(tok *Token) (Expr, error) {
	switch tok.Typ {
	case INTEGER:
		// The lexeme is a pre-validated digit run, so the only way
		// conversion can fail is the value not fitting an int32.
		value, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			return nil, NewNumberError(tok.Offset, tok.Lexeme)
		}
		return NewIntegerExpr(int32(value)), nil
	case UNARY_MINUS:
		if len(tok.Inner) != 1 {
			panic(fmt.Sprintf("expected one atom under unary minus, found %d tokens", len(tok.Inner)))
		}
		inner, err := parser.parseAtom(tok.Inner[0])
		if err != nil {
			return nil, err
		}
		return NewNegateExpr(inner), nil
	case GROUP:
		// Parentheses reset the precedence context, so the inner
		// sequence starts climbing from the lowest minimum again.
		seq := &sequence{tok.Inner, 0}
		if !seq.hasNext() {
			panic("expected expression inside group")
		}
		expr, err := parser.parseExpr(seq, 0)
		if err != nil {
			return nil, err
		}
		if seq.hasNext() {
			panic(fmt.Sprintf("expected end of group, found %s", seq.peek()))
		}
		return expr, nil
	}
	panic(fmt.Sprintf("expected atom, found %s", tok))
}

// sequence is a cursor over one flat token sequence. Nested sequences each
// get their own cursor.
type sequence struct {
	tokens  []*Token
	current int
}

func (seq *sequence) hasNext() bool {
	return seq.current < len(seq.tokens)
}

func (seq *sequence) next() *Token {
	tok := seq.tokens[seq.current]
	seq.current++
	return tok
}

func (seq *sequence) peek() *Token {
	return seq.tokens[seq.current]
}
