package calc

type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}
type ExprVisitor interface {
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitIntegerExpr(expr *IntegerExpr) (interface{}, error)
	VisitNegateExpr(expr *NegateExpr) (interface{}, error)
}
type BinaryExpr struct {
	Op  Op
	Lhs Expr
	Rhs Expr
}

func NewBinaryExpr(Op Op, Lhs Expr, Rhs Expr) *BinaryExpr {
	return &BinaryExpr{Op, Lhs, Rhs}
}
func (expr *BinaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(expr)
}

type IntegerExpr struct {
	Value int32
}

func NewIntegerExpr(Value int32) *IntegerExpr {
	return &IntegerExpr{Value}
}
func (expr *IntegerExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitIntegerExpr(expr)
}

type NegateExpr struct {
	Expression Expr
}

func NewNegateExpr(Expression Expr) *NegateExpr {
	return &NegateExpr{Expression}
}
func (expr *NegateExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitNegateExpr(expr)
}
