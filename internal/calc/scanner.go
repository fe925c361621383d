package calc

import "unicode"

// DefaultMaxDepth bounds how deeply groups and unary minuses may nest. The
// scanner recurses once per nesting level, so the limit keeps adversarial
// input from exhausting the stack.
const DefaultMaxDepth = 64

// Scanner matches the input against the expression grammar and collects the
// token sequence that was found. It holds no state between inputs and
// performs no I/O; failures are returned as error values.
type Scanner struct {
	current  int
	depth    int
	source   []rune
	maxDepth int
}

// NewScanner creates a new scanner over the given source
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.current = 0
	scanner.depth = 0
	scanner.source = source
	scanner.maxDepth = DefaultMaxDepth
	return scanner
}

// NewScannerWithDepth creates a new scanner that rejects input whose groups
// and unary minuses nest deeper than maxDepth levels
func NewScannerWithDepth(source []rune, maxDepth int) *Scanner {
	scanner := NewScanner(source)
	scanner.maxDepth = maxDepth
	return scanner
}

// Scan matches the whole source as a single expression and returns its token
// sequence. Input left over after a complete expression is a syntax error.
func (scanner *Scanner) Scan() ([]*Token, error) {
	tokens, err := scanner.scanExpr()
	if err != nil {
		return nil, err
	}
	scanner.skipWhitespace()
	if scanner.hasNext() {
		return nil, NewSyntaxError(scanner.current, "Expect end of expression.")
	}
	return tokens, nil
}

// scanExpr matches "atom ( bin_op atom )*" and returns the flat alternating
// token sequence.
func (scanner *Scanner) scanExpr() ([]*Token, error) {
	tokens := make([]*Token, 0)
	atom, err := scanner.scanAtom()
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, atom)
	for {
		scanner.skipWhitespace()
		op, ok := scanner.matchOperator()
		if !ok {
			return tokens, nil
		}
		atom, err := scanner.scanAtom()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, op, atom)
	}
}

// scanAtom matches "integer | unary_minus | group", trying the alternatives
// in that order so a '-' at atom position is never taken as a subtraction.
func (scanner *Scanner) scanAtom() (*Token, error) {
	scanner.skipWhitespace()
	if !scanner.hasNext() {
		return nil, NewSyntaxError(scanner.current, "Expect expression.")
	}
	switch r := scanner.peek(); {
	case unicode.IsDigit(r):
		return scanner.scanInteger(), nil
	case r == '-':
		return scanner.scanUnaryMinus()
	case r == '(':
		return scanner.scanGroup()
	}
	return nil, NewSyntaxError(scanner.current, "Expect expression.")
}

// scanInteger consumes a maximal run of decimal digits
func (scanner *Scanner) scanInteger() *Token {
	start := scanner.current
	for scanner.hasNext() && unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[start:scanner.current])
	return NewToken(INTEGER, lexeme, nil, start)
}

// scanUnaryMinus consumes a '-' followed by one atom
func (scanner *Scanner) scanUnaryMinus() (*Token, error) {
	start := scanner.current
	scanner.advance()
	if err := scanner.descend(start); err != nil {
		return nil, err
	}
	atom, err := scanner.scanAtom()
	if err != nil {
		return nil, err
	}
	scanner.depth--
	lexeme := string(scanner.source[start:scanner.current])
	return NewToken(UNARY_MINUS, lexeme, []*Token{atom}, start), nil
}

// scanGroup consumes a parenthesized expression, keeping the inner token
// sequence on the returned token
func (scanner *Scanner) scanGroup() (*Token, error) {
	start := scanner.current
	scanner.advance()
	if err := scanner.descend(start); err != nil {
		return nil, err
	}
	inner, err := scanner.scanExpr()
	if err != nil {
		return nil, err
	}
	scanner.skipWhitespace()
	if !scanner.hasNext() || scanner.peek() != ')' {
		return nil, NewSyntaxError(scanner.current, "Expect ')' after expression.")
	}
	scanner.advance()
	scanner.depth--
	lexeme := string(scanner.source[start:scanner.current])
	return NewToken(GROUP, lexeme, inner, start), nil
}

// matchOperator consumes the rune at the current position if it is a binary
// operator, returning its token
func (scanner *Scanner) matchOperator() (*Token, bool) {
	if !scanner.hasNext() {
		return nil, false
	}
	var typ TokenType
	switch scanner.peek() {
	case '+':
		typ = PLUS
	case '-':
		typ = MINUS
	case '*':
		typ = STAR
	case '/':
		typ = SLASH
	case '%':
		typ = PERCENT
	default:
		return nil, false
	}
	start := scanner.current
	scanner.advance()
	return NewToken(typ, string(scanner.source[start]), nil, start), true
}

func (scanner *Scanner) descend(offset int) error {
	scanner.depth++
	if scanner.depth > scanner.maxDepth {
		return NewSyntaxError(offset, "Expression is nested too deeply.")
	}
	return nil
}

func (scanner *Scanner) skipWhitespace() {
	for scanner.hasNext() && unicode.IsSpace(scanner.peek()) {
		scanner.advance()
	}
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes the rune at the current position
func (scanner *Scanner) advance() {
	scanner.current++
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	return scanner.source[scanner.current]
}
