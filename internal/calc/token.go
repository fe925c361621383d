package calc

import "fmt"

// Token represents a group of characters that matched one of the grammar's
// rules, with additional information that was obtained during the scanning
// phase.
//
// A valid token sequence for "expr" always alternates atoms and operators,
// starting and ending with an atom. Tokens produced by the group and
// unary_minus rules carry the sub-sequence that matched inside them.
type Token struct {
	Typ    TokenType
	Lexeme string
	Offset int
	Inner  []*Token
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, inner []*Token, offset int) *Token {
	t := new(Token)
	t.Typ = typ
	t.Lexeme = lexeme
	t.Offset = offset
	t.Inner = inner
	return t
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s @%d", t.Typ.String(), t.Lexeme, t.Offset)
}

const (
	// Atoms
	INTEGER TokenType = iota
	UNARY_MINUS
	GROUP

	// Binary operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
)

// TokenType identifies the grammar rule that produced a token
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case INTEGER:
		return "INTEGER"
	case UNARY_MINUS:
		return "UNARY_MINUS"
	case GROUP:
		return "GROUP"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	}
	return ""
}
