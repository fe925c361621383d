package calc

import "fmt"

// SyntaxError is returned when the input does not match the grammar. It
// carries the rune offset at which matching stopped and a message naming the
// construct that was expected there.
type SyntaxError struct {
	offset  int
	message string
}

// NewSyntaxError creates a new grammar failure at the given offset
func NewSyntaxError(offset int, message string) error {
	return &SyntaxError{offset, message}
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error: %s",
		err.offset,
		err.message,
	)
}

// Offset returns the rune offset at which matching stopped.
func (err *SyntaxError) Offset() int {
	return err.offset
}

// NumberError is returned when a digit run matches the grammar but does not
// fit the integer type. It is kept distinct from SyntaxError so callers can
// report "number too large" instead of a generic syntax error.
type NumberError struct {
	offset int
	lexeme string
}

// NewNumberError creates a new literal-range failure at the given offset
func NewNumberError(offset int, lexeme string) error {
	return &NumberError{offset, lexeme}
}

// Offset returns the rune offset of the offending digit run.
func (err *NumberError) Offset() int {
	return err.offset
}

func (err *NumberError) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error at '%s': Number is too large.",
		err.offset,
		err.lexeme,
	)
}

// RuntimeError wraps an error produced while evaluating a syntax tree, with
// the operator whose application failed.
type RuntimeError struct {
	op      Op
	message string
}

func newRuntimeError(op Op, message string) error {
	return &RuntimeError{op, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"Error at '%s': %s",
		err.op,
		err.message,
	)
}
