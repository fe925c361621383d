package calc

import (
	"fmt"
	"io"
)

// Interpreter evaluates syntax trees to their numeric value. This struct
// implements ExprVisitor. Division by zero is caught here, at evaluation
// time; it is not the parser's concern.
type Interpreter struct {
	output   io.Writer
	reporter Reporter
}

func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	return &Interpreter{output, reporter}
}

// Interpret evaluates the given tree and writes its value to the output,
// reporting a runtime error instead if evaluation fails.
func (in *Interpreter) Interpret(expr Expr) {
	value, err := in.Eval(expr)
	if err != nil {
		in.reporter.Report(err)
		return
	}
	fmt.Fprintln(in.output, value)
}

// Eval computes the value of the given tree
func (in *Interpreter) Eval(expr Expr) (int32, error) {
	value, err := expr.Accept(in)
	if err != nil {
		return 0, err
	}
	return value.(int32), nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.Eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Eval(expr.Rhs)
	if err != nil {
		return nil, err
	}
	switch expr.Op {
	case OpAdd:
		return lhs + rhs, nil
	case OpSubtract:
		return lhs - rhs, nil
	case OpMultiply:
		return lhs * rhs, nil
	case OpDivide:
		if rhs == 0 {
			return nil, newRuntimeError(expr.Op, "Division by zero.")
		}
		return lhs / rhs, nil
	case OpModulo:
		if rhs == 0 {
			return nil, newRuntimeError(expr.Op, "Division by zero.")
		}
		return lhs % rhs, nil
	}
	panic(fmt.Sprintf("unknown operator '%s'", expr.Op))
}

func (in *Interpreter) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitNegateExpr(expr *NegateExpr) (interface{}, error) {
	value, err := in.Eval(expr.Expression)
	if err != nil {
		return nil, err
	}
	return -value, nil
}
