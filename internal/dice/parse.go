package dice

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Expr is a parsed dice expression. It is immutable after Parse and may be
// evaluated any number of times.
type Expr struct {
	root node
}

// Formula returns the canonical infix rendering of the expression: explicit
// dice counts, "d%" expanded to "1d100", single-spaced operators, and only
// the parentheses precedence requires.
func (e *Expr) Formula() string {
	var b strings.Builder
	e.root.writeFormula(&b, 0)
	return b.String()
}

func (e *Expr) eval(rng *rand.Rand, lim Limits) (int, error) {
	return e.root.eval(rng, lim)
}

type node interface {
	eval(rng *rand.Rand, lim Limits) (int, error)
	// writeFormula renders the node; parentheses are added when the node's
	// precedence is lower than the enclosing context's.
	writeFormula(b *strings.Builder, parentPrec int)
}

type literal struct {
	value int
}

func (l literal) eval(*rand.Rand, Limits) (int, error) { return l.value, nil }

func (l literal) writeFormula(b *strings.Builder, _ int) {
	b.WriteString(strconv.Itoa(l.value))
}

type diceTerm struct {
	count int
	sides int
}

func (d diceTerm) eval(rng *rand.Rand, lim Limits) (int, error) {
	return rollDice(rng, d.count, d.sides, lim)
}

func (d diceTerm) writeFormula(b *strings.Builder, _ int) {
	fmt.Fprintf(b, "%dd%d", d.count, d.sides)
}

type negate struct {
	operand node
}

func (n negate) eval(rng *rand.Rand, lim Limits) (int, error) {
	v, err := n.operand.eval(rng, lim)
	return -v, err
}

func (n negate) writeFormula(b *strings.Builder, parentPrec int) {
	if parentPrec > precAdd {
		b.WriteString("(")
		defer b.WriteString(")")
	}
	b.WriteString("-")
	n.operand.writeFormula(b, precUnary)
}

// Operator precedence levels. precUnary forces parens around any binary
// expression nested under a unary minus.
const (
	precAdd = iota + 1
	precMul
	precUnary
)

type binary struct {
	op    byte // '+', '-', '*', '/'
	left  node
	right node
}

func (n binary) prec() int {
	if n.op == '*' || n.op == '/' {
		return precMul
	}
	return precAdd
}

func (n binary) eval(rng *rand.Rand, lim Limits) (int, error) {
	l, err := n.left.eval(rng, lim)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(rng, lim)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	default: // '/'
		if r == 0 {
			return 0, ErrDivideByZero
		}
		return l / r, nil
	}
}

func (n binary) writeFormula(b *strings.Builder, parentPrec int) {
	prec := n.prec()
	if prec < parentPrec {
		b.WriteString("(")
		defer b.WriteString(")")
	}
	n.left.writeFormula(b, prec)
	fmt.Fprintf(b, " %c ", n.op)
	// Right operand needs parens at equal precedence: a - (b + c), a / (b * c).
	n.right.writeFormula(b, prec+1)
}

// Parse parses a dice-notation expression. Whitespace is insignificant and
// "d"/"D" are interchangeable.
func Parse(text string) (*Expr, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyExpression
	}
	p := &parser{toks: toks}
	root, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.toks[p.pos].text)
	}
	return &Expr{root: root}, nil
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokDie              // 'd' or 'D'
	tokPercent
	tokOp    // + - * /
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  int // valid when kind == tokNumber
}

func lex(text string) ([]token, error) {
	var toks []token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(text) && text[j] >= '0' && text[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(text[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: number %q", ErrSyntax, text[i:j])
			}
			toks = append(toks, token{kind: tokNumber, text: text[i:j], num: n})
			i = j
		case c == 'd' || c == 'D':
			toks = append(toks, token{kind: tokDie, text: string(c)})
			i++
		case c == '%':
			toks = append(toks, token{kind: tokPercent, text: "%"})
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, string(c))
		}
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binary{op: t.text[0], left: left, right: right}
	}
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "*" && t.text != "/") {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: t.text[0], left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	if t, ok := p.peek(); ok && t.kind == tokOp && t.text == "-" {
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negate{operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}

	switch t.kind {
	case tokLParen:
		p.pos++
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.pos++
		return inner, nil

	case tokDie:
		// Bare die: "d20", "d%"
		p.pos++
		return p.parseSides(1)

	case tokNumber:
		p.pos++
		if next, ok := p.peek(); ok && next.kind == tokDie {
			p.pos++
			return p.parseSides(t.num)
		}
		return literal{value: t.num}, nil
	}

	return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, t.text)
}

// parseSides consumes the sides part of a dice term after the 'd'.
func (p *parser) parseSides(count int) (node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: expected dice sides after %q", ErrSyntax, "d")
	}
	switch t.kind {
	case tokNumber:
		p.pos++
		return diceTerm{count: count, sides: t.num}, nil
	case tokPercent:
		p.pos++
		return diceTerm{count: count, sides: 100}, nil
	}
	return nil, fmt.Errorf("%w: expected dice sides, got %q", ErrSyntax, t.text)
}
