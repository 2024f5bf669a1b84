package parser

import (
	"alpaca-lang/internal/diag"
	"alpaca-lang/internal/lexer"
	"alpaca-lang/internal/span"
	"alpaca-lang/internal/token"
	"fmt"
	"strings"
)

// ErrorKind classifies a parser error.
type ErrorKind int

const (
	// KindExpected: one of Expected was required but Found was seen.
	KindExpected ErrorKind = iota
	// KindUnclosed: the delimiter Delim was never closed.
	KindUnclosed
	// KindUnexpected: Found cannot appear here.
	KindUnexpected
	// KindOther: any other problem, described by Message.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindExpected:
		return "expected"
	case KindUnclosed:
		return "unclosed"
	case KindUnexpected:
		return "unexpected"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Diagnostic codes for syntax errors.
const (
	CodeExpected   = "E2001"
	CodeUnclosed   = "E2002"
	CodeUnexpected = "E2003"
	CodeOther      = "E2004"
)

// Error is a syntax error produced by the parser.
type Error struct {
	Kind     ErrorKind
	Expected []token.Kind // KindExpected
	Found    token.Token  // KindExpected, KindUnexpected
	Delim    token.Token  // KindUnclosed
	Message  string       // KindOther
	Span     span.Span
	Help     string
	Filename string
}

// WithHelp returns a copy of e carrying a help message.
func (e *Error) WithHelp(help string) *Error {
	c := *e
	c.Help = help
	return &c
}

// Description returns the error message without its location.
func (e *Error) Description() string {
	switch e.Kind {
	case KindExpected:
		return fmt.Sprintf("expected %s, found %s", describeKinds(e.Expected), e.Found.Describe())
	case KindUnclosed:
		if e.Delim.Kind == token.KW_DO {
			return "unclosed `do` block"
		}
		return "unclosed " + e.Delim.Kind.Describe()
	case KindUnexpected:
		if e.Found.Kind == token.ERROR {
			return e.Found.Lexeme
		}
		return "unexpected " + e.Found.Describe()
	default:
		return e.Message
	}
}

func (e *Error) Error() string {
	loc := e.Span.Start.String()
	if e.Filename != "" {
		loc = e.Filename + ":" + loc
	}
	return loc + ": " + e.Description()
}

// Lexical reports whether the error stems from an ERROR token.
func (e *Error) Lexical() bool {
	return e.Kind == KindUnexpected && e.Found.Kind == token.ERROR
}

// Incomplete reports whether the error was caused by the input ending too
// early, so that more input could make the source valid.
func (e *Error) Incomplete() bool {
	switch e.Kind {
	case KindUnclosed:
		return true
	case KindExpected, KindUnexpected:
		if e.Found.Kind == token.ERROR {
			return e.Found.Lexeme == lexer.MsgUnterminatedString
		}
		return e.Found.Kind == token.EOF
	default:
		return false
	}
}

// Code returns the stable diagnostic code of the error.
func (e *Error) Code() string {
	switch {
	case e.Lexical():
		return lexer.ErrorCode(e.Found)
	case e.Kind == KindExpected:
		return CodeExpected
	case e.Kind == KindUnclosed:
		return CodeUnclosed
	case e.Kind == KindUnexpected:
		return CodeUnexpected
	default:
		return CodeOther
	}
}

// Diagnostic converts the error to a diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.Errorf(e.Code(), e.Span, "%s", e.Description()).WithHint(e.Help)
}

func describeKinds(kinds []token.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Describe()
	}
	switch len(names) {
	case 0:
		return "something else"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return "one of " + strings.Join(names, ", ")
	}
}

// ErrorList is a list of parser errors. It implements error.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d syntax errors:\n%s", len(l), strings.Join(msgs, "\n"))
}

// Err returns nil for an empty list and the list itself otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Diagnostics converts every error to a diagnostic.
func (l ErrorList) Diagnostics() []diag.Diagnostic {
	diags := make([]diag.Diagnostic, len(l))
	for i, e := range l {
		diags[i] = e.Diagnostic()
	}
	return diags
}

// ---- constructors ----

func (p *Parser) newError(kind ErrorKind, s span.Span) *Error {
	return &Error{Kind: kind, Span: s, Filename: p.filename}
}

// expected builds a KindExpected error. A lexical error token in place of
// the expected one is reported as the lexical error instead.
func (p *Parser) expected(found token.Token, kinds ...token.Kind) *Error {
	if found.Kind == token.ERROR {
		return p.lexical(found)
	}
	e := p.newError(KindExpected, found.Span)
	e.Expected = kinds
	e.Found = found
	return e
}

func (p *Parser) unexpected(found token.Token) *Error {
	if found.Kind == token.ERROR {
		return p.lexical(found)
	}
	e := p.newError(KindUnexpected, found.Span)
	e.Found = found
	switch found.Kind {
	case token.KW_TYPE:
		e.Help = "`type` is reserved for future use"
	case token.KW_END:
		if p.depth == 0 {
			e.Help = "there is no open `do` block to close"
		}
	case token.KW_IN:
		e.Help = "`in` is only valid in `for <binding> in <iterable>`"
	}
	return e
}

func (p *Parser) unclosed(open token.Token) *Error {
	e := p.newError(KindUnclosed, open.Span)
	e.Delim = open
	switch open.Kind {
	case token.LPAREN:
		e.Help = "add a matching `)`"
	case token.LBRACKET:
		e.Help = "add a matching `]`"
	case token.KW_DO:
		e.Help = "blocks are closed with `end`"
	}
	return e
}

func (p *Parser) lexical(tok token.Token) *Error {
	e := p.newError(KindUnexpected, tok.Span)
	e.Found = tok
	e.Help = lexer.Diagnostic(tok).Hint
	return e
}

func (p *Parser) other(s span.Span, format string, args ...interface{}) *Error {
	e := p.newError(KindOther, s)
	e.Message = fmt.Sprintf(format, args...)
	return e
}
