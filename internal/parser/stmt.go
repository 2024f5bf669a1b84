package parser

import (
	"alpaca-lang/internal/ast"
	"alpaca-lang/internal/token"
)

// ============================================================
// Statement parsing
// ============================================================

// ParseStatement parses one statement. On error nothing is recorded and the
// caller decides how to recover. Errors recovered from inside a nested `do`
// block are returned as an ErrorList along with the statement.
func (p *Parser) ParseStatement() (ast.Stmt, error) {
	mark := len(p.errors)
	stmt, err := p.parseStmt()
	return stmt, p.collect(mark, err)
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.peekKind() {
	case token.KW_RETURN:
		return p.parseReturn()
	case token.KW_LET:
		return p.parseLet()
	case token.KW_FUN:
		return p.parseFuncDecl()
	default:
		expr, err := p.parseExpr(bpNone)
		if err != nil {
			return nil, err
		}
		span := expr.GetSpan()
		return &ast.ExprStmt{StmtBase: makeStmtBase(span.Start, span.End), Expr: expr}, nil
	}
}

// parseReturn parses: return expr
func (p *Parser) parseReturn() (ast.Stmt, error) {
	start := p.advance() // consume 'return'

	value, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{
		StmtBase: makeStmtBase(start.Span.Start, value.GetSpan().End),
		Value:    value,
	}, nil
}

// parseLet parses: let IDENT = expr
func (p *Parser) parseLet() (ast.Stmt, error) {
	start := p.advance() // consume 'let'

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectHelp(token.ASSIGN, "bindings need an initial value: `let x = ...`"); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}

	return &ast.LetStmt{
		StmtBase: makeStmtBase(start.Span.Start, value.GetSpan().End),
		Name:     identFromToken(nameTok),
		Value:    value,
	}, nil
}

// parseFuncDecl parses:
//
//	fun [pub] IDENT ( [ param { , param } [ , ] ] ) [ -> type ] block
//	param = IDENT [ : type ]
//
// `pub` is only a visibility marker when another identifier follows it, so
// a function may still be named pub.
func (p *Parser) parseFuncDecl() (ast.Stmt, error) {
	start := p.advance() // consume 'fun'

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	public := false
	if nameTok.Lexeme == "pub" && p.check(token.IDENT) {
		public = true
		nameTok = p.advance()
	}

	open, err := p.expect(token.LPAREN)
	if err != nil {
		return nil, err
	}

	decl := &ast.FuncDecl{Name: identFromToken(nameTok), Public: public}
	var types []ast.Annotation

	_, err = p.parseList(open, token.RPAREN, func() error {
		paramTok, err := p.expect(token.IDENT)
		if err != nil {
			return err
		}
		var ann ast.Annotation
		if p.check(token.COLON) {
			p.advance() // consume ':'
			ann, err = p.parseAnnotation()
			if err != nil {
				return err
			}
		}
		decl.Params = append(decl.Params, paramTok.Lexeme)
		types = append(types, ann)
		return nil
	})
	if err != nil {
		return nil, err
	}
	decl.ParamTypes = types

	if p.check(token.ARROW) {
		p.advance() // consume '->'
		decl.ReturnType, err = p.parseAnnotation()
		if err != nil {
			return nil, err
		}
	}

	decl.Body, err = p.parseBlock()
	if err != nil {
		return nil, err
	}

	decl.StmtBase = makeStmtBase(start.Span.Start, decl.Body.Span.End)
	return decl, nil
}

func identFromToken(tok token.Token) *ast.IdentExpr {
	return &ast.IdentExpr{
		ExprBase: makeExprBase(tok.Span.Start, tok.Span.End),
		Name:     tok.Lexeme,
	}
}
