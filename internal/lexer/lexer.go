package lexer

import (
	"unicode/utf8"

	"github.com/TurtlePU/odlang/internal/atoms"
)

// Lexer tokenizes one line of odlang source. Input is normalised (BOM
// stripped, NFC-folded) once at construction time.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line, column int
}

// New creates a Lexer over src. src is normalised via Normalize before
// scanning begins.
func New(src string) *Lexer {
	l := &Lexer{
		input: string(Normalize([]byte(src))),
		line:  1,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		if l.ch != 0 {
			// Step past the last character so the final token's range covers it.
			l.column++
		}
		l.ch = 0
		l.position = l.readPosition
		return
	}
	ch, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = ch
	l.position = l.readPosition
	l.readPosition += size
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return ch
}

func (l *Lexer) pos() atoms.Position {
	return atoms.Position{Line: l.line, Column: l.column}
}

func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func rangeTo(from, to atoms.Position) atoms.Range {
	if from.Line == to.Line {
		return atoms.Range{From: from, Until: atoms.Delta{Columns: to.Column - from.Column}}
	}
	return atoms.Range{From: from, Until: atoms.Delta{Lines: to.Line - from.Line, Columns: to.Column}}
}

// Next scans and returns the next token, advancing the lexer.
func (l *Lexer) Next() Token {
	l.skipSpaces()

	start := l.pos()
	tok := func(typ TokenType, lit string) Token {
		return Token{Type: typ, Literal: lit, R: rangeTo(start, l.pos())}
	}

	switch {
	case l.ch == 0:
		return tok(EOF, "")
	case l.ch == '(':
		l.readChar()
		return tok(LPAREN, "(")
	case l.ch == ')':
		l.readChar()
		return tok(RPAREN, ")")
	case l.ch == '[':
		l.readChar()
		return tok(LBRACKET, "[")
	case l.ch == ']':
		l.readChar()
		return tok(RBRACKET, "]")
	case l.ch == ':':
		l.readChar()
		return tok(COLON, ":")
	case l.ch == '.':
		l.readChar()
		return tok(DOT, ".")
	case l.ch == '\\':
		l.readChar()
		return tok(BACKSLASH, "\\")
	case l.ch == '-' && l.peekChar() == '>':
		l.readChar()
		l.readChar()
		return tok(ARROW, "->")
	case l.ch == '=' && l.peekChar() == '>':
		l.readChar()
		l.readChar()
		return tok(FARROW, "=>")
	case l.ch == '/' && l.peekChar() == '\\':
		l.readChar()
		l.readChar()
		return tok(TYABS, "/\\")
	case isIdentStart(l.ch):
		var runes []rune
		for isIdentCont(l.ch) {
			runes = append(runes, l.ch)
			l.readChar()
		}
		lit := string(runes)
		return tok(IDENT, lit)
	default:
		ch := l.ch
		l.readChar()
		return tok(ILLEGAL, string(ch))
	}
}
