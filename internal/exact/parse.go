package exact

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// ParseError reports malformed or unsupported answer input. It is the
// only error type Parse returns; the student can always resubmit.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot read answer at position %d: %s", e.Pos+1, e.Msg)
}

// Snap policy for decimal literals: a literal with at least
// snapMinDigits fractional digits is taken as a repeating or rounded
// rendering of a rational, and replaced by the closest rational with
// denominator ≤ snapMaxDenominator when that rational is within one
// unit in the literal's last place. Shorter literals stay exact, so
// "0.3333333333333333" equals 1/3 while "0.33" stays 33/100.
const (
	snapMinDigits      = 10
	snapMaxDenominator = 1000
)

// Parse evaluates a student's answer into an exact Value.
//
// Supported: integers, decimals, fractions p/q, sqrt(...) and √(...),
// parentheses, + - * / (also × ÷), integer exponents via ^, unary
// minus. Multiplication must be explicit ("2*sqrt(2)", not "2sqrt(2)").
func Parse(input string) (*Value, error) {
	p := &parser{input: input, runes: []rune(input)}
	p.skipSpace()
	if p.pos >= len(p.runes) {
		return nil, p.errorf(p.pos, "empty answer")
	}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.runes) {
		return nil, p.errorf(p.pos, "unexpected %q", string(p.runes[p.pos]))
	}
	return v, nil
}

type parser struct {
	input string
	runes []rune
	pos   int
}

func (p *parser) errorf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Input: p.input, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.runes) && unicode.IsSpace(p.runes[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() rune {
	if p.pos >= len(p.runes) {
		return 0
	}
	return p.runes[p.pos]
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (*Value, error) {
	v, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			w, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			v = v.Add(w)
		case '-':
			p.pos++
			w, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			v = v.Sub(w)
		default:
			return v, nil
		}
	}
}

// parseTerm handles * and / (and the × ÷ variants).
func (p *parser) parseTerm() (*Value, error) {
	v, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*', '×':
			p.pos++
			w, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			v, err = v.Mul(w)
			if err != nil {
				return nil, p.wrap(err)
			}
		case '/', '÷':
			opPos := p.pos
			p.pos++
			w, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			v, err = v.Div(w)
			if err != nil {
				return nil, p.wrapAt(opPos, err)
			}
		default:
			return v, nil
		}
	}
}

func (p *parser) parseUnary() (*Value, error) {
	p.skipSpace()
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return v.Neg(), nil
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower handles primary followed by an optional ^int.
func (p *parser) parsePower() (*Value, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '^' {
		return v, nil
	}
	opPos := p.pos
	p.pos++
	exp, err := p.parseIntExponent()
	if err != nil {
		return nil, err
	}
	v, err = v.Pow(exp)
	if err != nil {
		return nil, p.wrapAt(opPos, err)
	}
	return v, nil
}

// parseIntExponent reads an integer exponent: "2", "-1", "(-2)".
func (p *parser) parseIntExponent() (int, error) {
	p.skipSpace()
	paren := false
	if p.peek() == '(' {
		paren = true
		p.pos++
		p.skipSpace()
	}
	start := p.pos
	if p.peek() == '-' || p.peek() == '+' {
		p.pos++
	}
	for p.pos < len(p.runes) && unicode.IsDigit(p.runes[p.pos]) {
		p.pos++
	}
	text := string(p.runes[start:p.pos])
	exp, err := strconv.Atoi(text)
	if err != nil {
		return 0, p.errorf(start, "exponent must be an integer")
	}
	if paren {
		p.skipSpace()
		if p.peek() != ')' {
			return 0, p.errorf(p.pos, "missing ) after exponent")
		}
		p.pos++
	}
	return exp, nil
}

func (p *parser) parsePrimary() (*Value, error) {
	p.skipSpace()
	switch {
	case p.peek() == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, p.errorf(p.pos, "missing )")
		}
		p.pos++
		return v, nil

	case p.peek() == '√':
		p.pos++
		return p.parseRadical()

	case unicode.IsLetter(p.peek()):
		start := p.pos
		for p.pos < len(p.runes) && unicode.IsLetter(p.runes[p.pos]) {
			p.pos++
		}
		word := strings.ToLower(string(p.runes[start:p.pos]))
		if word != "sqrt" {
			return nil, p.errorf(start, "unknown symbol %q", word)
		}
		return p.parseRadical()

	case unicode.IsDigit(p.peek()) || p.peek() == '.':
		return p.parseNumber()
	}
	if p.pos >= len(p.runes) {
		return nil, p.errorf(p.pos, "answer ends unexpectedly")
	}
	return nil, p.errorf(p.pos, "unexpected %q", string(p.runes[p.pos]))
}

// parseRadical reads the argument of sqrt/√. Parentheses are required
// for expressions but a bare number is allowed: "√2".
func (p *parser) parseRadical() (*Value, error) {
	p.skipSpace()
	var arg *Value
	var err error
	openPos := p.pos
	if p.peek() == '(' {
		p.pos++
		arg, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, p.errorf(p.pos, "missing ) after sqrt")
		}
		p.pos++
	} else if unicode.IsDigit(p.peek()) || p.peek() == '.' {
		arg, err = p.parseNumber()
		if err != nil {
			return nil, err
		}
	} else {
		return nil, p.errorf(p.pos, "sqrt needs an argument")
	}
	v, err := arg.Sqrt()
	if err != nil {
		return nil, p.wrapAt(openPos, err)
	}
	return v, nil
}

// parseNumber reads an integer or decimal literal.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	for p.pos < len(p.runes) && unicode.IsDigit(p.runes[p.pos]) {
		p.pos++
	}
	intPart := string(p.runes[start:p.pos])
	var fracPart string
	if p.peek() == '.' {
		p.pos++
		fracStart := p.pos
		for p.pos < len(p.runes) && unicode.IsDigit(p.runes[p.pos]) {
			p.pos++
		}
		fracPart = string(p.runes[fracStart:p.pos])
		if intPart == "" && fracPart == "" {
			return nil, p.errorf(start, "malformed number")
		}
	}
	if intPart == "" && fracPart == "" {
		return nil, p.errorf(start, "expected a number")
	}

	r, err := decimalToRat(intPart, fracPart)
	if err != nil {
		return nil, p.errorf(start, "%s", err)
	}
	if len(fracPart) >= snapMinDigits {
		if snapped, ok := snapRepeating(r, len(fracPart)); ok {
			r = snapped
		}
	}
	return FromRat(r), nil
}

// decimalToRat converts decimal digit strings to the exact rational
// (intPart.fracPart) = (intPart·10^k + fracPart) / 10^k.
func decimalToRat(intPart, fracPart string) (*big.Rat, error) {
	digits := intPart + fracPart
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("malformed number")
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
	return new(big.Rat).SetFrac(num, den), nil
}

// snapRepeating finds the rational with denominator ≤ snapMaxDenominator
// closest to r via continued-fraction convergents, and returns it when
// it lies within one ulp of the literal (10^-digits). A 16-digit
// rendering of 1/3 is ~3e-17 from 1/3, well inside; an exact short
// decimal never reaches this path.
func snapRepeating(r *big.Rat, digits int) (*big.Rat, bool) {
	maxDen := big.NewInt(snapMaxDenominator)
	ulp := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))

	neg := r.Sign() < 0
	x := new(big.Rat).Abs(r)

	// Continued-fraction convergents h/k of x.
	num := new(big.Int).Set(x.Num())
	den := new(big.Int).Set(x.Denom())
	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)

	for den.Sign() != 0 {
		a, rem := new(big.Int).QuoRem(num, den, new(big.Int))
		h2 := new(big.Int).Add(new(big.Int).Mul(a, h1), h0)
		k2 := new(big.Int).Add(new(big.Int).Mul(a, k1), k0)
		if k2.Cmp(maxDen) > 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		num, den = den, rem
	}
	if k1.Sign() == 0 {
		return nil, false
	}

	best := new(big.Rat).SetFrac(h1, k1)
	diff := new(big.Rat).Sub(x, best)
	diff.Abs(diff)
	if diff.Cmp(ulp) > 0 {
		return nil, false
	}
	if neg {
		best.Neg(best)
	}
	return best, true
}

func (p *parser) wrap(err error) *ParseError {
	return p.wrapAt(p.pos, err)
}

func (p *parser) wrapAt(pos int, err error) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return &ParseError{Input: p.input, Pos: pos, Msg: err.Error()}
}
