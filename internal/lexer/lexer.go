// Package lexer implements the lexical analysis (tokenization) for alpaca.
//
// The lexer is pull-based: each call to NextToken scans exactly one token,
// looking at most one character ahead. Lexical errors are not collected on the
// side; they are returned in-stream as ERROR tokens so the parser can report
// them at the right position and keep going.
package lexer

import (
	"alpaca-lang/internal/diag"
	"alpaca-lang/internal/span"
	"alpaca-lang/internal/token"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Messages carried by ERROR tokens.
const (
	MsgUnterminatedString = "unterminated string literal"
	MsgInvalidUTF8        = "invalid UTF-8 encoding"
)

// Diagnostic codes for lexical errors.
const (
	CodeUnterminatedString = "E1001"
	CodeInvalidUTF8        = "E1002"
	CodeUnexpectedChar     = "E1003"
)

const eof = -1

// Lexer tokenizes source code on demand.
type Lexer struct {
	source   string
	filename string

	pos  int // current read position in source
	line int // current line (1-based)
	col  int // current column (1-based, in runes)
}

// New creates a new Lexer for the given source text.
func New(source, filename string) *Lexer {
	return &Lexer{
		source:   source,
		filename: filename,
		pos:      0,
		line:     1,
		col:      1,
	}
}

// Filename returns the display name the lexer was created with.
func (l *Lexer) Filename() string {
	return l.filename
}

// AtEnd reports whether every character of the source has been consumed.
func (l *Lexer) AtEnd() bool {
	return l.pos >= len(l.source)
}

// Tokenize drains the lexer and returns all tokens up to and including EOF,
// together with a diagnostic for every ERROR token.
func (l *Lexer) Tokenize() ([]token.Token, []diag.Diagnostic) {
	var tokens []token.Token
	var diags []diag.Diagnostic
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.ERROR {
			diags = append(diags, Diagnostic(tok))
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, diags
}

// Diagnostic converts an ERROR token into a diagnostic with a stable code.
func Diagnostic(tok token.Token) diag.Diagnostic {
	d := diag.Errorf(ErrorCode(tok), tok.Span, "%s", tok.Lexeme)
	if tok.Lexeme == MsgUnterminatedString {
		return d.WithHint("add a closing `\"`")
	}
	return d
}

// ErrorCode returns the diagnostic code for an ERROR token.
func ErrorCode(tok token.Token) string {
	switch tok.Lexeme {
	case MsgUnterminatedString:
		return CodeUnterminatedString
	case MsgInvalidUTF8:
		return CodeInvalidUTF8
	default:
		return CodeUnexpectedChar
	}
}

// ---- internal helpers ----

// peek returns the current character without advancing, or eof.
func (l *Lexer) peek() rune {
	if l.AtEnd() {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

// advance consumes the current character and returns it.
func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// curPos returns the current position as a span.Position.
func (l *Lexer) curPos() span.Position {
	return span.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

// makeSpan returns a span from start to current position.
func (l *Lexer) makeSpan(start span.Position) span.Span {
	return span.Span{Start: start, End: l.curPos()}
}

func (l *Lexer) emit(kind token.Kind, lexeme string, start span.Position) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Span: l.makeSpan(start)}
}

func (l *Lexer) errorf(start span.Position, format string, args ...interface{}) token.Token {
	return l.emit(token.ERROR, fmt.Sprintf(format, args...), start)
}

// skipWhitespace skips spaces, tabs, carriage returns and newlines.
func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// skipLineComment skips to end of line, leaving the newline in place.
func (l *Lexer) skipLineComment() {
	for !l.AtEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// ---- token reading ----

// NextToken scans and returns the next token. Once the input is exhausted it
// keeps returning EOF with an empty span at the end of the source.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespace()

		start := l.curPos()
		if l.AtEnd() {
			return l.emit(token.EOF, "", start)
		}

		ch := l.peek()

		// Hash comment: #
		if ch == '#' {
			l.skipLineComment()
			continue
		}

		// Slash or line comment: //
		if ch == '/' {
			l.advance()
			if l.peek() == '/' {
				l.skipLineComment()
				continue
			}
			return l.emit(token.SLASH, "/", start)
		}

		switch {
		case ch == '"':
			return l.readString(start)
		case isDigit(ch):
			return l.readNumber(start)
		case isIdentStart(ch):
			return l.readIdentifier(start)
		default:
			return l.readOperator(start)
		}
	}
}

// readString reads a double-quoted string literal. The payload is the raw
// text between the quotes; a backslash only keeps the following character
// from terminating the literal.
func (l *Lexer) readString(start span.Position) token.Token {
	l.advance() // skip opening "
	contentStart := l.pos

	for !l.AtEnd() {
		ch := l.advance()
		if ch == '\\' {
			if !l.AtEnd() {
				l.advance()
			}
			continue
		}
		if ch == '"' {
			return l.emit(token.STRING, l.source[contentStart:l.pos-1], start)
		}
	}

	return l.emit(token.ERROR, MsgUnterminatedString, start)
}

// readNumber reads a run of decimal digits. Range checking is left to the parser.
func (l *Lexer) readNumber(start span.Position) token.Token {
	numStart := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}
	return l.emit(token.INT, l.source[numStart:l.pos], start)
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier(start span.Position) token.Token {
	identStart := l.pos
	for isIdentPart(l.peek()) {
		l.advance()
	}

	lexeme := l.source[identStart:l.pos]
	return l.emit(token.LookupIdent(lexeme), lexeme, start)
}

// readOperator reads an operator or delimiter token.
func (l *Lexer) readOperator(start span.Position) token.Token {
	if r, size := utf8.DecodeRuneInString(l.source[l.pos:]); r == utf8.RuneError && size == 1 {
		l.pos++
		l.col++
		return l.emit(token.ERROR, MsgInvalidUTF8, start)
	}

	ch := l.advance()

	switch ch {
	case '(':
		return l.emit(token.LPAREN, "(", start)
	case ')':
		return l.emit(token.RPAREN, ")", start)
	case '[':
		return l.emit(token.LBRACKET, "[", start)
	case ']':
		return l.emit(token.RBRACKET, "]", start)
	case ',':
		return l.emit(token.COMMA, ",", start)
	case '.':
		return l.emit(token.DOT, ".", start)
	case ':':
		return l.emit(token.COLON, ":", start)
	case '+':
		return l.emit(token.PLUS, "+", start)
	case '*':
		return l.emit(token.STAR, "*", start)
	case '-':
		if l.peek() == '>' {
			l.advance()
			return l.emit(token.ARROW, "->", start)
		}
		return l.emit(token.MINUS, "-", start)
	case '!':
		if l.peek() == '=' {
			l.advance()
			return l.emit(token.NEQ, "!=", start)
		}
		return l.emit(token.BANG, "!", start)
	case '=':
		if l.peek() == '=' {
			l.advance()
			return l.emit(token.EQ, "==", start)
		}
		return l.emit(token.ASSIGN, "=", start)
	case '<':
		if l.peek() == '=' {
			l.advance()
			return l.emit(token.LTE, "<=", start)
		}
		return l.emit(token.LT, "<", start)
	case '>':
		if l.peek() == '=' {
			l.advance()
			return l.emit(token.GTE, ">=", start)
		}
		return l.emit(token.GT, ">", start)
	default:
		return l.errorf(start, "unexpected character '%c'", ch)
	}
}

// ---- character classification ----

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}
