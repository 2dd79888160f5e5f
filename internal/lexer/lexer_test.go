package lexer

import "testing"

func collect(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func TestLexerBasicTerm(t *testing.T) {
	toks := collect(`\x:().x`)
	want := []TokenType{BACKSLASH, IDENT, COLON, LPAREN, RPAREN, DOT, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Type, typ)
		}
	}
}

func TestLexerTypeApplication(t *testing.T) {
	toks := collect(`(/\a. \x:a. x) [()] ()`)
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []TokenType{LPAREN, TYABS, IDENT, DOT, BACKSLASH, IDENT, COLON, IDENT, DOT, IDENT, RPAREN,
		LBRACKET, LPAREN, RPAREN, RBRACKET, LPAREN, RPAREN, EOF}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i, typ := range want {
		if types[i] != typ {
			t.Fatalf("token %d: got %s, want %s", i, types[i], typ)
		}
	}
}

func TestLexerArrowVsMinus(t *testing.T) {
	toks := collect(`() -> ()`)
	if toks[2].Type != ARROW {
		t.Fatalf("expected ARROW, got %s", toks[2].Type)
	}
}

func TestLexerIllegalSymbol(t *testing.T) {
	toks := collect(`@`)
	if toks[0].Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", toks[0].Type)
	}
	if toks[0].Literal != "@" {
		t.Fatalf("got literal %q", toks[0].Literal)
	}
}

func TestLexerPositionsLineColumn(t *testing.T) {
	toks := collect("x\ny")
	if toks[0].R.From.Line != 1 || toks[0].R.From.Column != 1 {
		t.Fatalf("got %+v", toks[0].R.From)
	}
	if toks[1].R.From.Line != 2 || toks[1].R.From.Column != 1 {
		t.Fatalf("got %+v", toks[1].R.From)
	}
}
