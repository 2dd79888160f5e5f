// Package parser implements the recursive-descent parser for the surface
// grammar in spec.md §6: terms are left-associative juxtaposition with
// bracketed type application, types are right-associative arrows.
package parser

import (
	"fmt"

	"github.com/TurtlePU/odlang/internal/ast"
	"github.com/TurtlePU/odlang/internal/atoms"
	"github.com/TurtlePU/odlang/internal/lexer"
)

// Error is a single parse diagnostic, always carrying the source range it
// was raised at.
type Error struct {
	Message string
	R       atoms.Range
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.R, e.Message)
}

// Parser consumes a flat token stream produced by the lexer and builds a
// surface ast.Term. Parse errors are accumulated, not thrown; once the
// first one is hit, parsing of the current construct stops and the error
// short-circuits the rest of the pipeline (spec.md §7), but the parser
// itself keeps no partial-success state beyond that single term attempt.
type Parser struct {
	toks []lexer.Token
	pos  int
	errs []Error
}

// Parse lexes and parses a full line of source, returning the parsed term
// and any diagnostics. If errs is non-empty, term is nil.
func Parse(src string) (ast.Term, []Error) {
	l := lexer.New(src)
	var toks []lexer.Token
	var errs []Error
	for {
		tok := l.Next()
		if tok.Type == lexer.ILLEGAL {
			errs = append(errs, Error{
				Message: fmt.Sprintf("unknown symbol '%s'", tok.Literal),
				R:       tok.R,
			})
			continue
		}
		toks = append(toks, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	p := &Parser{toks: toks}
	term := p.parseTerm()
	if !p.atEOF() {
		p.errorf(p.cur().R, "unexpected token %q", p.cur().Literal)
	}
	errs = append(errs, p.errs...)

	if len(errs) > 0 {
		return nil, errs
	}
	return term, nil
}

func (p *Parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *Parser) atEOF() bool {
	return p.cur().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) errorf(r atoms.Range, format string, args ...any) {
	p.errs = append(p.errs, Error{Message: fmt.Sprintf(format, args...), R: r})
}

func (p *Parser) expect(typ lexer.TokenType) (lexer.Token, bool) {
	if p.cur().Type != typ {
		p.errorf(p.cur().R, "expected %s, got %q", typ, p.cur().Literal)
		return lexer.Token{}, false
	}
	return p.advance(), true
}

// parseTerm parses `atom (atom | '[' type ']')*`, left-associative.
func (p *Parser) parseTerm() ast.Term {
	term := p.parseAtomTerm()
	if term == nil {
		return nil
	}
	for {
		switch p.cur().Type {
		case lexer.LBRACKET:
			open := p.advance()
			ty := p.parseType()
			if ty == nil {
				return nil
			}
			close, ok := p.expect(lexer.RBRACKET)
			if !ok {
				return nil
			}
			term = ast.TyApp{Func: term, Arg: ty, R: term.Range().Concat(close.R)}
			_ = open
		case lexer.LPAREN, lexer.BACKSLASH, lexer.TYABS, lexer.IDENT:
			arg := p.parseAtomTerm()
			if arg == nil {
				return nil
			}
			term = ast.App{Func: term, Arg: arg, R: term.Range().Concat(arg.Range())}
		default:
			return term
		}
	}
}

func (p *Parser) parseAtomTerm() ast.Term {
	switch p.cur().Type {
	case lexer.LPAREN:
		open := p.advance()
		if p.cur().Type == lexer.RPAREN {
			close := p.advance()
			return ast.Unit{R: open.R.Concat(close.R)}
		}
		term := p.parseTerm()
		if term == nil {
			return nil
		}
		close, ok := p.expect(lexer.RPAREN)
		if !ok {
			return nil
		}
		return setRange(term, open.R.Concat(close.R))
	case lexer.BACKSLASH:
		open := p.advance()
		name, ok := p.expect(lexer.IDENT)
		if !ok {
			return nil
		}
		if _, ok := p.expect(lexer.COLON); !ok {
			return nil
		}
		ty := p.parseType()
		if ty == nil {
			return nil
		}
		if _, ok := p.expect(lexer.DOT); !ok {
			return nil
		}
		body := p.parseTerm()
		if body == nil {
			return nil
		}
		return ast.Abs{Param: name.Literal, Of: ty, Body: body, R: open.R.Concat(body.Range())}
	case lexer.TYABS:
		open := p.advance()
		name, ok := p.expect(lexer.IDENT)
		if !ok {
			return nil
		}
		if _, ok := p.expect(lexer.DOT); !ok {
			return nil
		}
		body := p.parseTerm()
		if body == nil {
			return nil
		}
		return ast.TyAbs{Param: name.Literal, Body: body, R: open.R.Concat(body.Range())}
	case lexer.IDENT:
		name := p.advance()
		return ast.Var{Name: name.Literal, R: name.R}
	default:
		p.errorf(p.cur().R, "expected a term, got %q", p.cur().Literal)
		return nil
	}
}

// parseType parses `tatom ('->' type)?`, right-associative.
func (p *Parser) parseType() ast.Type {
	from := p.parseAtomType()
	if from == nil {
		return nil
	}
	if p.cur().Type == lexer.ARROW {
		p.advance()
		to := p.parseType()
		if to == nil {
			return nil
		}
		return ast.TyArrow{From: from, To: to, R: from.Range().Concat(to.Range())}
	}
	return from
}

func (p *Parser) parseAtomType() ast.Type {
	switch p.cur().Type {
	case lexer.LPAREN:
		open := p.advance()
		if p.cur().Type == lexer.RPAREN {
			close := p.advance()
			return ast.TyUnit{R: open.R.Concat(close.R)}
		}
		ty := p.parseType()
		if ty == nil {
			return nil
		}
		close, ok := p.expect(lexer.RPAREN)
		if !ok {
			return nil
		}
		return setTypeRange(ty, open.R.Concat(close.R))
	case lexer.TYABS:
		open := p.advance()
		name, ok := p.expect(lexer.IDENT)
		if !ok {
			return nil
		}
		if _, ok := p.expect(lexer.FARROW); !ok {
			return nil
		}
		body := p.parseType()
		if body == nil {
			return nil
		}
		return ast.TyForall{Param: name.Literal, Of: body, R: open.R.Concat(body.Range())}
	case lexer.IDENT:
		name := p.advance()
		if name.Literal == "_" {
			return ast.TyHole{R: name.R}
		}
		return ast.TyVar{Name: name.Literal, R: name.R}
	default:
		p.errorf(p.cur().R, "expected a type, got %q", p.cur().Literal)
		return nil
	}
}

// setRange returns term with its Range replaced by r, used when a
// parenthesised sub-term's range should include the parentheses.
func setRange(term ast.Term, r atoms.Range) ast.Term {
	switch t := term.(type) {
	case ast.Unit:
		t.R = r
		return t
	case ast.Var:
		t.R = r
		return t
	case ast.Abs:
		t.R = r
		return t
	case ast.App:
		t.R = r
		return t
	case ast.TyAbs:
		t.R = r
		return t
	case ast.TyApp:
		t.R = r
		return t
	default:
		return term
	}
}

func setTypeRange(ty ast.Type, r atoms.Range) ast.Type {
	switch t := ty.(type) {
	case ast.TyUnit:
		t.R = r
		return t
	case ast.TyHole:
		t.R = r
		return t
	case ast.TyVar:
		t.R = r
		return t
	case ast.TyArrow:
		t.R = r
		return t
	case ast.TyForall:
		t.R = r
		return t
	default:
		return ty
	}
}
