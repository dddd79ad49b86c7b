package rpn

import (
	"math"
	"strconv"
	"strings"
)

// Result of Calculate.
type Result struct {
	// Expression is the infix input, unmodified.
	Expression string
	// RPN is the postfix form of Expression.
	RPN []string
	// Value is the evaluated result. Only meaningful if Calculate returned a
	// nil error.
	Value float64
}

// RPNString returns the tokens joined by single spaces.
func (r *Result) RPNString() string {
	return strings.Join(r.RPN, " ")
}

// Calculate converts and evaluates expression.
//
// If conversion fails the returned *Result is nil. If evaluation fails the
// *Result is still returned, with RPN filled in, alongside the error.
func Calculate(expression string) (*Result, error) {
	tokens, err := ConvertToRPN(expression)
	if err != nil {
		return nil, err
	}
	rv := &Result{
		Expression: expression,
		RPN:        tokens,
	}
	v, err := Evaluate(tokens)
	if err != nil {
		return rv, err
	}
	rv.Value = v
	return rv, nil
}

// FormatValue renders v the way a calculator displays it: no trailing zeros
// and no exponent unless the magnitude is very large or very small.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
