package calc

// Parse parses a single line of text as an arithmetic expression and returns
// the root of its syntax tree. On failure it returns a *SyntaxError or
// *NumberError; it never returns a partially built tree.
//
// Parse touches no shared state, so independent inputs can be parsed
// concurrently.
func Parse(input string) (Expr, error) {
	return ParseWith(input, DefaultPrecedence())
}

// ParseWith parses a single line of text using the given precedence table
func ParseWith(input string, table *PrecedenceTable) (Expr, error) {
	scanner := NewScanner([]rune(input))
	tokens, err := scanner.Scan()
	if err != nil {
		return nil, err
	}
	parser := NewParser(table)
	return parser.Parse(tokens)
}
