package rpn

import (
	"errors"
	"math"
	"strconv"
	"unicode/utf8"
)

// parseNumber reports whether tok is a floating point literal and returns its
// value. Literals outside the float64 range are accepted as ±Inf or 0, the
// value ParseFloat rounds them to.
func parseNumber(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err == nil {
		return v, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return v, true
	}
	return 0, false
}

// apply computes a op b. op must be a key of precedence.
func apply(op rune, a, b float64) (float64, bool) {
	switch op {
	case '+':
		return a + b, true
	case '-':
		return a - b, true
	case '*':
		return a * b, true
	case '/':
		if b == 0 {
			return 0, false
		}
		return a / b, true
	case '^':
		return math.Pow(a, b), true
	}
	return 0, false
}

// Evaluate computes the value of a postfix token sequence such as the one
// returned by ConvertToRPN.
//
// Any token that strconv.ParseFloat accepts is a number, so "1e3" and "-2"
// work even though ConvertToRPN never produces them. A token starting with an
// operator character is that operator. Every other token is ignored; if that
// leaves the sequence unbalanced the result is ErrInvalidExpression.
func Evaluate(tokens []string) (float64, error) {
	stack := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		if v, ok := parseNumber(tok); ok {
			stack = append(stack, v)
			continue
		}
		op, _ := utf8.DecodeRuneInString(tok)
		if tok == "" || !isOperator(op) {
			continue
		}
		if len(stack) < 2 {
			return 0, &Error{Kind: InsufficientOperands, Op: tok, Pos: i}
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		v, ok := apply(op, a, b)
		if !ok {
			return 0, &Error{Kind: DivisionByZero, Op: tok, Pos: i}
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, &Error{Kind: InvalidExpression, Pos: -1}
	}
	return stack[0], nil
}
