package arith

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type TokenKind int

const (
	ParenToken    TokenKind = iota // ( ) [ ] { }
	OperatorToken                  // + *
	NumberToken                    // unsigned 64-bit literal
)

func (k TokenKind) String() string {
	switch k {
	case ParenToken:
		return "Paren"
	case OperatorToken:
		return "Operator"
	case NumberToken:
		return "Number"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

type Token struct {
	Kind   TokenKind
	Char   byte   // bracket or operator character; 0 for numbers
	Value  uint64 // set when Kind == NumberToken
	Offset int    // byte offset of the token's first character in the input
}

func (t Token) String() string {
	if t.Kind == NumberToken {
		return strconv.FormatUint(t.Value, 10)
	}
	return fmt.Sprintf("%q", t.Char)
}

// LexError reports the first character the lexer does not recognize.
type LexError struct {
	Char   rune
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character: %q at offset %d", e.Char, e.Offset)
}

// Lex splits input into tokens. Spaces are skipped; any other character
// outside digits, "+", "*" and the three bracket pairs aborts the scan.
// Digit runs are folded base 10 into a uint64 and wrap on overflow.
func Lex(input string) ([]Token, error) {
	var toks []Token
	i := 0
	emit := func(k TokenKind, c byte) { toks = append(toks, Token{Kind: k, Char: c, Offset: i}) }

	for i < len(input) {
		c := input[i]
		switch {
		case c >= '0' && c <= '9':
			start := i
			var n uint64
			for i < len(input) && input[i] >= '0' && input[i] <= '9' {
				n = n*10 + uint64(input[i]-'0')
				i++
			}
			toks = append(toks, Token{Kind: NumberToken, Value: n, Offset: start})
		case c == '+' || c == '*':
			emit(OperatorToken, c)
			i++
		case isOpen(c) || isClose(c):
			emit(ParenToken, c)
			i++
		case c == ' ':
			i++
		default:
			r, _ := utf8.DecodeRuneInString(input[i:])
			return nil, &LexError{Char: r, Offset: i}
		}
	}
	return toks, nil
}

func isOpen(c byte) bool  { return c == '(' || c == '[' || c == '{' }
func isClose(c byte) bool { return c == ')' || c == ']' || c == '}' }

// closing returns the bracket that pairs with the opening bracket c.
func closing(c byte) byte {
	switch c {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	}
	panic(fmt.Sprintf("not an opening bracket: %q", c))
}
