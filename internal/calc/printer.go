package calc

import (
	"fmt"
	"strconv"
)

// AstPrinter renders a syntax tree as a fully parenthesized expression.
// Re-parsing its output yields a structurally identical tree.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, _ := expr.Lhs.Accept(printer)
	rhs, _ := expr.Rhs.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", lhs, expr.Op, rhs), nil
}

func (printer *AstPrinter) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return strconv.FormatInt(int64(expr.Value), 10), nil
}

func (printer *AstPrinter) VisitNegateExpr(expr *NegateExpr) (interface{}, error) {
	inner, _ := expr.Expression.Accept(printer)
	return fmt.Sprintf("(-%s)", inner), nil
}
