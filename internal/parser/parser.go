// Package parser implements the syntax analysis for alpaca.
// It uses Pratt parsing for expressions and recursive descent for statements.
//
// The parser pulls tokens from the lexer one at a time and keeps a single
// token of lookahead. Errors are returned as *Error values; ParseFile records
// them and resynchronizes so one broken statement yields one error.
package parser

import (
	"alpaca-lang/internal/ast"
	"alpaca-lang/internal/lexer"
	"alpaca-lang/internal/span"
	"alpaca-lang/internal/token"
	"errors"
)

// ============================================================
// Parser
// ============================================================

// Parser performs syntax analysis on the token stream of one source.
type Parser struct {
	lexer    *lexer.Lexer
	filename string

	peeked *token.Token // one token of lookahead, nil when not yet scanned
	prev   token.Token  // last consumed token

	errors []*Error
	depth  int // number of enclosing do-blocks
}

// New creates a parser reading from source. The filename is only used for
// display.
func New(source, filename string) *Parser {
	return &Parser{lexer: lexer.New(source, filename), filename: filename}
}

// Parse parses a complete source. The returned error, if any, is an
// ErrorList; the file is returned in either case and holds every statement
// that parsed successfully.
func Parse(source, filename string) (*ast.File, error) {
	file, errs := New(source, filename).ParseFile()
	return file, ErrorList(errs).Err()
}

// ParseFile parses statements until the end of input, recovering from each
// error at the next statement boundary.
func (p *Parser) ParseFile() (*ast.File, []*Error) {
	file := &ast.File{Name: p.filename}

	for !p.isAtEnd() {
		mark := p.peek().Span.Start.Offset
		stmt, err := p.parseStmt()
		if err != nil {
			p.report(err)
			p.recover(mark)
			continue
		}
		file.Body = append(file.Body, stmt)
	}

	file.Span = span.Span{
		Start: span.Position{Offset: 0, Line: 1, Column: 1},
		End:   p.peek().Span.End,
	}
	return file, p.errors
}

// collect takes back the errors recorded since mark and returns them with
// err as an ErrorList. When nothing was recorded err is returned unchanged.
func (p *Parser) collect(mark int, err error) error {
	if len(p.errors) == mark {
		return err
	}
	if err != nil {
		p.report(err)
	}
	list := append(ErrorList(nil), p.errors[mark:]...)
	p.errors = p.errors[:mark]
	return list
}

// ---- navigation helpers ----

func (p *Parser) peek() token.Token {
	if p.peeked == nil {
		tok := p.lexer.NextToken()
		p.peeked = &tok
	}
	return *p.peeked
}

func (p *Parser) peekKind() token.Kind {
	return p.peek().Kind
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.peeked = nil
	}
	p.prev = tok
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peekKind() == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	return p.expectHelp(kind, "")
}

func (p *Parser) expectHelp(kind token.Kind, help string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	e := p.expected(p.peek(), kind)
	if help != "" && e.Help == "" {
		e = e.WithHelp(help)
	}
	return token.Token{}, e
}

func (p *Parser) isAtEnd() bool {
	return p.peekKind() == token.EOF
}

// report records err. Errors not produced by this package are wrapped.
func (p *Parser) report(err error) {
	var pe *Error
	if !errors.As(err, &pe) {
		pe = p.other(p.peek().Span, "%v", err)
	}
	p.errors = append(p.errors, pe)
}

// ============================================================
// Error recovery
// ============================================================

// recover moves past a failed statement that began at offset mark. A
// statement that failed without consuming anything drops its first token so
// the parser always makes progress.
func (p *Parser) recover(mark int) {
	if !p.isAtEnd() && p.peek().Span.Start.Offset == mark {
		p.advance()
	}
	p.synchronize()
}

// synchronize skips tokens until a likely statement boundary. Inside a block,
// `end` is a boundary too.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.match(token.KW_FUN, token.KW_LET, token.KW_RETURN,
			token.KW_IF, token.KW_FOR, token.KW_WHILE) {
			return
		}
		if p.depth > 0 && p.check(token.KW_END) {
			return
		}
		p.advance()
	}
}

// ============================================================
// Span helpers
// ============================================================

func makeExprBase(start, end span.Position) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Span: span.Span{Start: start, End: end}}}
}

func makeStmtBase(start, end span.Position) ast.StmtBase {
	return ast.StmtBase{NodeBase: ast.NodeBase{Span: span.Span{Start: start, End: end}}}
}

func makeLiteralBase(s span.Span) ast.LiteralBase {
	return ast.LiteralBase{ExprBase: ast.ExprBase{NodeBase: ast.NodeBase{Span: s}}}
}
