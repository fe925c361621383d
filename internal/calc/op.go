package calc

// Op identifies a binary arithmetic operation. It is a pure value carried by
// BinaryExpr nodes, detached from the token that produced it.
type Op uint

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	}
	return ""
}

// operatorOps maps operator token types to the operation they denote.
var operatorOps = map[TokenType]Op{
	PLUS:    OpAdd,
	MINUS:   OpSubtract,
	STAR:    OpMultiply,
	SLASH:   OpDivide,
	PERCENT: OpModulo,
}
