package arith

import (
	"fmt"
)

// DefaultMaxDepth bounds bracket nesting. Each level costs three stack
// frames (expr, summand, term).
const DefaultMaxDepth = 10000

// ParseError reports a token sequence that does not match the grammar.
type ParseError struct {
	Msg   string
	Found *Token // nil when the input ran out
	Pos   int    // token index
}

func (e *ParseError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("%s at token %d", e.Msg, e.Pos)
	}
	return fmt.Sprintf("%s, found %s at token %d", e.Msg, e.Found, e.Pos)
}

// Offset returns the byte offset of the offending token, or -1 when the
// input ran out.
func (e *ParseError) Offset() int {
	if e.Found == nil {
		return -1
	}
	return e.Found.Offset
}

// An Option configures ParseWithOptions and ParseTokens.
type Option func(*parser)

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

type parser struct {
	toks     []Token
	maxDepth int
	depth    int
}

func (p *parser) at(pos int) (Token, bool) {
	if pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[pos], true
}

func (p *parser) errorAt(pos int, format string, a ...interface{}) *ParseError {
	err := &ParseError{Msg: fmt.Sprintf(format, a...), Pos: pos}
	if t, ok := p.at(pos); ok {
		err.Found = &t
	}
	return err
}

// Parse lexes input and parses it as a single expression:
//
//	expr    = summand "+" expr | summand
//	summand = term "*" summand | term
//	term    = NUMBER | open expr close
//
// Both operators are right-associative. Every token must be consumed.
func Parse(input string) (*Node, error) {
	return ParseWithOptions(input)
}

func ParseWithOptions(input string, opts ...Option) (*Node, error) {
	toks, err := Lex(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts...)
}

// ParseTokens parses an already lexed token sequence.
func ParseTokens(toks []Token, opts ...Option) (*Node, error) {
	p := &parser{toks: toks, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	n, pos, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if pos != len(toks) {
		return nil, p.errorAt(pos, "unexpected trailing token")
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(input string) *Node {
	n, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("arith: Parse(%q): %v", input, err))
	}
	return n
}

// expr = summand "+" expr | summand

func (p *parser) parseExpr(pos int) (*Node, int, error) {
	lhs, next, err := p.parseSummand(pos)
	if err != nil {
		return nil, 0, err
	}
	if t, ok := p.at(next); ok && t.Kind == OperatorToken && t.Char == '+' {
		rhs, end, err := p.parseExpr(next + 1)
		if err != nil {
			return nil, 0, err
		}
		return NewSum(lhs, rhs), end, nil
	}
	return lhs, next, nil
}

// summand = term "*" summand | term

func (p *parser) parseSummand(pos int) (*Node, int, error) {
	lhs, next, err := p.parseTerm(pos)
	if err != nil {
		return nil, 0, err
	}
	if t, ok := p.at(next); ok && t.Kind == OperatorToken && t.Char == '*' {
		rhs, end, err := p.parseSummand(next + 1)
		if err != nil {
			return nil, 0, err
		}
		return NewProduct(lhs, rhs), end, nil
	}
	return lhs, next, nil
}

// term = NUMBER | "(" expr ")" | "[" expr "]" | "{" expr "}"

func (p *parser) parseTerm(pos int) (*Node, int, error) {
	t, ok := p.at(pos)
	if !ok {
		return nil, 0, p.errorAt(pos, "unexpected end of input, expected number or opening bracket")
	}
	switch {
	case t.Kind == NumberToken:
		return NewNumber(t.Value), pos + 1, nil

	case t.Kind == ParenToken && isOpen(t.Char):
		if p.depth >= p.maxDepth {
			return nil, 0, p.errorAt(pos, "brackets nested deeper than %d", p.maxDepth)
		}
		p.depth++
		inner, next, err := p.parseExpr(pos + 1)
		p.depth--
		if err != nil {
			return nil, 0, err
		}
		want := closing(t.Char)
		c, ok := p.at(next)
		if !ok {
			return nil, 0, p.errorAt(next, "unexpected end of input, expected %q", want)
		}
		if c.Kind != ParenToken || c.Char != want {
			return nil, 0, p.errorAt(next, "expected %q", want)
		}
		return NewParenthesized(inner), next + 1, nil

	default:
		return nil, 0, p.errorAt(pos, "expected number or opening bracket")
	}
}
