package query

// Parse builds a boolean AST from a raw query string.
//
// Grammar, by descending precedence (NOT > AND > OR):
//
//	Or      := And ( "OR" And )*
//	And     := Not ( ["AND"] Not )*      adjacency implies AND
//	Not     := "NOT" Primary | Primary
//	Primary := "(" Or ")" | term
//
// OR and AND fold left-associatively. Parse never fails: an empty or
// whitespace-only query yields an empty Term, unmatched ')' and trailing
// operators are consumed silently, and any trailing garbage is ignored.
func Parse(input string) Expr {
	p := &parser{tokens: Tokenize(input)}
	expr := p.parseOr()
	if expr == nil {
		return Term{}
	}
	return expr
}

// parser holds the token cursor for one Parse call. A fresh parser is
// created per invocation, so Parse is re-entrant.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) parseOr() Expr {
	left := p.parseAnd()
	if left == nil {
		return nil
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenOr {
			return left
		}
		p.pos++
		right := p.parseAnd()
		if right == nil {
			// Trailing OR - ignore it.
			return left
		}
		left = Binary{Op: OpOr, Left: left, Right: right}
	}
}

func (p *parser) parseAnd() Expr {
	left := p.parseNot()
	if left == nil {
		return nil
	}
	for {
		tok, ok := p.peek()
		if !ok {
			return left
		}
		switch tok.Kind {
		case TokenAnd:
			p.pos++
		case TokenTerm, TokenNot, TokenLParen:
			// Adjacent operands: implicit AND.
		default:
			// OR is handled by the caller; a stray ')' ends this level.
			return left
		}
		right := p.parseNot()
		if right == nil {
			return left
		}
		left = Binary{Op: OpAnd, Left: left, Right: right}
	}
}

func (p *parser) parseNot() Expr {
	tok, ok := p.peek()
	if ok && tok.Kind == TokenNot {
		p.pos++
		prim := p.parsePrimary()
		if term, isTerm := prim.(Term); isTerm {
			term.Negated = true
			return term
		}
		// NOT before a parenthesized group is accepted but negation is
		// not distributed into the compound expression.
		return prim
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() Expr {
	tok, ok := p.peek()
	if !ok {
		return nil
	}
	switch tok.Kind {
	case TokenLParen:
		p.pos++
		inner := p.parseOr()
		if closing, ok := p.peek(); ok && closing.Kind == TokenRParen {
			p.pos++
		}
		return inner
	case TokenTerm:
		p.pos++
		return Term{Field: tok.Field, Value: tok.Value, Negated: tok.Negated}
	case TokenRParen:
		// Unmatched ')' - skip it and keep going.
		p.pos++
		return p.parsePrimary()
	default:
		return nil
	}
}
