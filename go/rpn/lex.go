package rpn

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemNum
	itemOperator
	itemLParen
	itemRParen
)

func (t itemType) String() string {
	switch t {
	case itemError:
		return "error"
	case itemEOF:
		return "EOF"
	case itemNum:
		return "num"
	case itemOperator:
		return "operator"
	case itemLParen:
		return "("
	case itemRParen:
		return ")"
	}
	return fmt.Sprintf("itemType(%d)", int(t))
}

const (
	leftParen    = '('
	rightParen   = ')'
	decimalPoint = '.'
)

// precedence maps each binary operator to its binding strength. It is never
// written after initialization.
var precedence = map[rune]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'^': 3,
}

func isOperator(r rune) bool {
	_, ok := precedence[r]
	return ok
}

func isNumChar(r rune) bool {
	return unicode.IsDigit(r) || r == decimalPoint
}

// item is a single lexeme. For itemError, val holds the offending character.
type item struct {
	typ itemType
	pos int
	val string
}

// lexer scans an expression one item at a time. All whitespace is removed
// before scanning, so "1 2" lexes as the single number "12".
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{
		input: stripSpace(input),
	}
}

// isSpace matches the ASCII whitespace characters: space, \t, \n, \v, \f and
// \r. Other Unicode spaces, such as U+00A0, are invalid characters.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
}

// nextItem returns the next item. Once itemEOF or itemError has been returned
// further calls keep returning the same thing.
func (l *lexer) nextItem() item {
	if l.pos >= len(l.input) {
		return item{typ: itemEOF, pos: l.pos}
	}
	start := l.pos
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case isNumChar(r):
		for l.pos < len(l.input) {
			r, w := utf8.DecodeRuneInString(l.input[l.pos:])
			if !isNumChar(r) {
				break
			}
			l.pos += w
		}
		return item{typ: itemNum, pos: start, val: l.input[start:l.pos]}
	case r == leftParen:
		l.pos += w
		return item{typ: itemLParen, pos: start, val: "("}
	case r == rightParen:
		l.pos += w
		return item{typ: itemRParen, pos: start, val: ")"}
	case isOperator(r):
		l.pos += w
		return item{typ: itemOperator, pos: start, val: string(r)}
	}
	return item{typ: itemError, pos: start, val: string(r)}
}
