package main

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"dasa.cc/ga/ga"
)

// env binds a constructed algebra plus the identifiers its expressions
// resolve against: the algebra's own basis labels, and any names the user
// has assigned via "name = expr" at the prompt.
type env struct {
	a    *ga.Ga
	vars map[string]ga.Multivector
}

func newEnv(a *ga.Ga) *env {
	return &env{a: a, vars: make(map[string]ga.Multivector)}
}

// eval parses and evaluates one line of calculator input. A line of the
// form "name = expr" binds the result under name for later reference.
func (e *env) eval(line string) (ga.Multivector, string, error) {
	if i := strings.IndexByte(line, '='); i > 0 && (i+1 >= len(line) || line[i+1] != '=') {
		name := strings.TrimSpace(line[:i])
		if isIdent(name) {
			mv, err := e.evalExpr(line[i+1:])
			if err != nil {
				return nil, "", err
			}
			e.vars[name] = mv
			return mv, name, nil
		}
	}
	mv, err := e.evalExpr(line)
	return mv, "", err
}

// scalarMv wraps a rational as a one-blade scalar multivector, or nil if
// it is exactly zero.
func scalarMv(a *ga.Ga, r *big.Rat) ga.Multivector {
	if r == nil || r.Sign() == 0 {
		return nil
	}
	mv, err := ga.NewMultivector(a, r, a.S.Basis)
	if err != nil {
		return nil
	}
	return mv
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (e *env) evalExpr(s string) (ga.Multivector, error) {
	p := &parser{e: e, toks: lex(s)}
	mv, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("gacalc: unexpected %q", p.toks[p.pos].text)
	}
	return ga.Simplify(mv), nil
}

// token kinds.
const (
	tNum = iota
	tIdent
	tOp
	tLParen
	tRParen
	tComma
)

type token struct {
	kind int
	text string
}

// operator symbols recognized by the lexer, longest first so "<-" is not
// split into two single-character tokens.
var opSymbols = []string{"<-", "+", "-", "*", "∧", "∨", "⌋", "⌊", "∼", "★", "_"}

func lex(s string) []token {
	var toks []token
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case unicode.IsSpace(r):
			s = s[size:]
		case r == '(':
			toks = append(toks, token{tLParen, "("})
			s = s[size:]
		case r == ')':
			toks = append(toks, token{tRParen, ")"})
			s = s[size:]
		case r == ',':
			toks = append(toks, token{tComma, ","})
			s = s[size:]
		case unicode.IsDigit(r):
			i := 0
			for i < len(s) {
				r2, sz := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsDigit(r2) && r2 != '.' {
					break
				}
				i += sz
			}
			toks = append(toks, token{tNum, s[:i]})
			s = s[i:]
		case unicode.IsLetter(r):
			// Idents may contain '_' after their first letter, which
			// admits the scalar basis label (prefix + "_"); a bare
			// leading '_' is still lexed as the involution operator below.
			i := 0
			for i < len(s) {
				r2, sz := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsLetter(r2) && !unicode.IsDigit(r2) && r2 != '_' {
					break
				}
				i += sz
			}
			toks = append(toks, token{tIdent, s[:i]})
			s = s[i:]
		default:
			matched := false
			for _, op := range opSymbols {
				if strings.HasPrefix(s, op) {
					toks = append(toks, token{tOp, op})
					s = s[len(op):]
					matched = true
					break
				}
			}
			if !matched {
				toks = append(toks, token{tOp, string(r)})
				s = s[size:]
			}
		}
	}
	return toks
}

type parser struct {
	e    *env
	toks []token
	pos  int
}

func (p *parser) peek() token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return token{}
}

func (p *parser) next() token {
	t := p.peek()
	p.pos++
	return t
}

// parseExpr: term (('+' | '-') term)*
func (p *parser) parseExpr() (ga.Multivector, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if t.text == "+" {
			left = left.Add(right)
		} else {
			left = left.Add(right.Negation())
		}
	}
}

// parseTerm: unary (('*' | '∧' | '∨' | '⌋' | '⌊') unary)*
func (p *parser) parseTerm() (ga.Multivector, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tOp {
			return left, nil
		}
		var op string
		switch t.text {
		case "*":
			op = ga.OpMul
		case "∧":
			op = ga.OpWedge
		case "∨":
			op = ga.OpJoin
		case "⌋":
			op = ga.OpLc
		case "⌊":
			op = ga.OpRc
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left, err = p.e.a.Apply(op, ga.MvOperand(left), ga.MvOperand(right))
		if err != nil {
			return nil, err
		}
	}
}

// parseUnary: ('-' | '<-' | '∼' | '★' | '_')? postfix
func (p *parser) parseUnary() (ga.Multivector, error) {
	t := p.peek()
	if t.kind == tOp {
		var op string
		switch t.text {
		case "-":
			op = ga.OpNegation
		case "<-":
			op = ga.OpReverse
		case "∼":
			op = ga.OpDual
		case "★":
			op = ga.OpHodge
		case "_":
			op = ga.OpInvolution
		}
		if op != "" {
			p.next()
			x, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return p.e.a.Apply(op, ga.MvOperand(x))
		}
	}
	return p.parseAtom()
}

// parseAtom: number | ident | ident '(' args ')' | '(' expr ')'
func (p *parser) parseAtom() (ga.Multivector, error) {
	t := p.next()
	switch t.kind {
	case tNum:
		r := new(big.Rat)
		if _, ok := r.SetString(t.text); !ok {
			return nil, fmt.Errorf("gacalc: bad number %q", t.text)
		}
		return scalarMv(p.e.a, r), nil
	case tIdent:
		if p.peek().kind == tLParen {
			return p.parseCall(t.text)
		}
		if mv, ok := p.e.vars[t.text]; ok {
			return mv, nil
		}
		if b, ok := p.e.a.Basis[t.text]; ok {
			return ga.Multivector{b}, nil
		}
		return nil, fmt.Errorf("gacalc: unknown identifier %q", t.text)
	case tLParen:
		mv, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tRParen {
			return nil, fmt.Errorf("gacalc: expected )")
		}
		p.next()
		return mv, nil
	default:
		return nil, fmt.Errorf("gacalc: unexpected %q", t.text)
	}
}

// parseCall parses the argument list of name(arg, arg, ...) and dispatches
// to the matching algebra operation.
func (p *parser) parseCall(name string) (ga.Multivector, error) {
	p.next() // consume '('
	var args []ga.Multivector
	if p.peek().kind != tRParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind == tComma {
				p.next()
				continue
			}
			break
		}
	}
	if p.peek().kind != tRParen {
		return nil, fmt.Errorf("gacalc: expected ) after %s(...", name)
	}
	p.next()
	return callFunc(p.e.a, name, args)
}

func callFunc(a *ga.Ga, name string, args []ga.Multivector) (ga.Multivector, error) {
	arity1 := func(op string) (ga.Multivector, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("gacalc: %s takes exactly one argument", name)
		}
		return a.Apply(op, ga.MvOperand(args[0]))
	}
	switch name {
	case "exp":
		return arity1(ga.OpExp)
	case "inv":
		return arity1(ga.OpInverse)
	case "normalize":
		return arity1(ga.OpNormalize)
	case "rev":
		return arity1(ga.OpReverse)
	case "invol":
		return arity1(ga.OpInvolution)
	case "dual":
		return arity1(ga.OpDual)
	case "hodge":
		return arity1(ga.OpHodge)
	case "length":
		if len(args) != 1 {
			return nil, fmt.Errorf("gacalc: length takes exactly one argument")
		}
		return scalarMv(a, a.Length(args[0])), nil
	case "norm":
		if len(args) != 1 {
			return nil, fmt.Errorf("gacalc: norm takes exactly one argument")
		}
		return scalarMv(a, a.NormSq(args[0])), nil
	case "sandwich":
		if len(args) != 2 {
			return nil, fmt.Errorf("gacalc: sandwich takes exactly two arguments")
		}
		return a.Apply(ga.OpSandwich, ga.MvOperand(args[0]), ga.MvOperand(args[1]))
	case "symm":
		if len(args) != 2 {
			return nil, fmt.Errorf("gacalc: symm takes exactly two arguments")
		}
		return a.Apply(ga.OpSymmInner, ga.MvOperand(args[0]), ga.MvOperand(args[1]))
	case "join":
		if len(args) < 2 {
			return nil, fmt.Errorf("gacalc: join takes at least two arguments")
		}
		ops := make([]ga.Operand, len(args))
		for i, m := range args {
			ops[i] = ga.MvOperand(m)
		}
		return a.Apply(ga.OpJoin, ops...)
	case "rotor":
		if len(args) != 2 {
			return nil, fmt.Errorf("gacalc: rotor takes exactly two arguments (angle, bivector)")
		}
		f, _ := args[0].Scalar().Float64()
		return ga.Rotor(a, f, args[1]), nil
	default:
		return nil, fmt.Errorf("gacalc: unknown function %q", name)
	}
}
