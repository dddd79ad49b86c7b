package rpn

import (
	"errors"
	"fmt"
)

// Kind classifies the ways an expression can fail to convert or evaluate.
type Kind int

const (
	// Unknown is returned by KindOf for errors that did not come from this
	// package.
	Unknown Kind = iota
	// MismatchedParentheses is a ')' without a matching '(' or a '(' that is
	// never closed.
	MismatchedParentheses
	// InvalidCharacter is a character that is not a digit, '.', a
	// parenthesis or an operator.
	InvalidCharacter
	// InsufficientOperands is an operator reached with fewer than two values
	// on the operand stack.
	InsufficientOperands
	// DivisionByZero is a '/' whose right operand is exactly zero.
	DivisionByZero
	// InvalidExpression is an evaluation that does not leave exactly one
	// value on the operand stack.
	InvalidExpression
)

func (k Kind) String() string {
	switch k {
	case MismatchedParentheses:
		return "MismatchedParentheses"
	case InvalidCharacter:
		return "InvalidCharacter"
	case InsufficientOperands:
		return "InsufficientOperands"
	case DivisionByZero:
		return "DivisionByZero"
	case InvalidExpression:
		return "InvalidExpression"
	}
	return "Unknown"
}

// Error is returned by ConvertToRPN and Evaluate.
type Error struct {
	Kind Kind

	// Char is the offending character for InvalidCharacter.
	Char rune

	// Op is the operator token for InsufficientOperands and DivisionByZero.
	Op string

	// Pos is the index into the whitespace-stripped expression for errors
	// from ConvertToRPN, or the token index for errors from Evaluate. -1 if
	// there is no single position to blame.
	Pos int
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case MismatchedParentheses:
		return "Mismatched parentheses"
	case InvalidCharacter:
		return fmt.Sprintf("Invalid character: %c", e.Char)
	case InsufficientOperands:
		return "Not enough operands for operation " + e.Op
	case DivisionByZero:
		return "Division by zero"
	case InvalidExpression:
		return "Invalid expression"
	}
	return "Unknown error"
}

// Is reports whether target is an *Error of the same Kind, so that
//
//	errors.Is(err, rpn.ErrDivisionByZero)
//
// matches regardless of position or operator.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrMismatchedParentheses = &Error{Kind: MismatchedParentheses, Pos: -1}
	ErrInvalidCharacter      = &Error{Kind: InvalidCharacter, Pos: -1}
	ErrInsufficientOperands  = &Error{Kind: InsufficientOperands, Pos: -1}
	ErrDivisionByZero        = &Error{Kind: DivisionByZero, Pos: -1}
	ErrInvalidExpression     = &Error{Kind: InvalidExpression, Pos: -1}
)

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
