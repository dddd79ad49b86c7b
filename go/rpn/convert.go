// Package rpn converts infix arithmetic expressions to Reverse Polish
// Notation with the shunting-yard algorithm and evaluates the result.
//
// Supported operators are + - * / and ^, all binary and all grouped left to
// right, so "2^3^2" is (2^3)^2. Numbers are runs of digits and '.'
// characters; there is no unary minus.
//
// Every function in this package is safe for concurrent use.
package rpn

// ConvertToRPN converts an infix expression into a sequence of tokens in
// postfix order, e.g. "(2+3)*4" becomes ["2" "3" "+" "4" "*"].
//
// Only parentheses and characters are checked here. Misplaced operators such
// as "3++4" convert without complaint and are reported by Evaluate.
func ConvertToRPN(expression string) ([]string, error) {
	l := newLexer(expression)
	output := []string{}
	var operators []rune

	for {
		it := l.nextItem()
		switch it.typ {
		case itemEOF:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top == leftParen {
					return nil, &Error{Kind: MismatchedParentheses, Pos: -1}
				}
				output = append(output, string(top))
				operators = operators[:len(operators)-1]
			}
			return output, nil
		case itemError:
			r := []rune(it.val)[0]
			return nil, &Error{Kind: InvalidCharacter, Char: r, Pos: it.pos}
		case itemNum:
			output = append(output, it.val)
		case itemLParen:
			operators = append(operators, leftParen)
		case itemRParen:
			for len(operators) > 0 && operators[len(operators)-1] != leftParen {
				output = append(output, string(operators[len(operators)-1]))
				operators = operators[:len(operators)-1]
			}
			if len(operators) == 0 {
				return nil, &Error{Kind: MismatchedParentheses, Pos: it.pos}
			}
			operators = operators[:len(operators)-1]
		case itemOperator:
			op := []rune(it.val)[0]
			// >= makes equal precedence pop, i.e. left-associative, ^ included.
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top == leftParen || precedence[top] < precedence[op] {
					break
				}
				output = append(output, string(top))
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, op)
		}
	}
}
