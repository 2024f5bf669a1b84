package parser

import (
	"alpaca-lang/internal/ast"
	"alpaca-lang/internal/span"
	"alpaca-lang/internal/token"
	"strconv"
)

// ============================================================
// Expression parsing (Pratt / precedence climbing)
// ============================================================

// ParseExpression parses an expression whose infix operators all bind at
// least as tightly as minPrec.
//
// Statements that fail inside a `do` block are recovered from so the rest of
// the expression still parses. Those errors are returned as an ErrorList
// together with the recovered expression.
func (p *Parser) ParseExpression(minPrec int) (ast.Expr, error) {
	mark := len(p.errors)
	expr, err := p.parseExpr(minPrec)
	return expr, p.collect(mark, err)
}

func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.nud()
	if err != nil {
		return nil, err
	}

	for {
		rule, ok := infixBP(p.peekKind())
		if !ok || rule.bp < minPrec {
			break
		}
		left, err = p.led(left, rule)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// nud handles prefix (null denotation) parsing.
func (p *Parser) nud() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.INT, token.STRING, token.KW_TRUE, token.KW_FALSE:
		return p.parseLiteral()

	case token.IDENT:
		p.advance()
		return &ast.IdentExpr{
			ExprBase: makeExprBase(tok.Span.Start, tok.Span.End),
			Name:     tok.Lexeme,
		}, nil

	case token.LPAREN:
		return p.parseGroup()

	case token.LBRACKET:
		return p.parseArrayLiteral()

	case token.BANG, token.MINUS:
		p.advance()
		operand, err := p.parseExpr(bpPrefix)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			ExprBase: makeExprBase(tok.Span.Start, operand.GetSpan().End),
			Op:       tok.Kind,
			Operand:  operand,
		}, nil

	case token.KW_DO:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return block, nil

	case token.KW_IF:
		return p.parseIf()

	case token.KW_FOR:
		return p.parseFor()

	case token.KW_WHILE:
		return p.parseWhile()

	default:
		return nil, p.unexpected(tok)
	}
}

// led handles infix/postfix (left denotation) parsing.
func (p *Parser) led(left ast.Expr, rule infixRule) (ast.Expr, error) {
	tok := p.peek()

	if tok.Kind == token.LPAREN {
		return p.parseCall(left)
	}

	p.advance()
	right, err := p.parseExpr(rule.rightBP())
	if err != nil {
		return nil, err
	}
	whole := span.Join(left.GetSpan(), right.GetSpan())
	base := makeExprBase(whole.Start, whole.End)

	if tok.Kind == token.ASSIGN {
		return &ast.AssignExpr{ExprBase: base, Target: left, Value: right}, nil
	}
	return &ast.BinaryExpr{ExprBase: base, Op: tok.Kind, Left: left, Right: right}, nil
}

// parseLiteral parses an integer, string, or boolean literal.
func (p *Parser) parseLiteral() (ast.Expr, error) {
	tok := p.advance()
	base := makeLiteralBase(tok.Span)

	switch tok.Kind {
	case token.INT:
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.other(tok.Span, "integer literal `%s` is out of range", tok.Lexeme).
				WithHelp("integer literals must fit in a signed 64-bit integer")
		}
		return &ast.IntLiteral{LiteralBase: base, Value: val}, nil
	case token.STRING:
		return &ast.StringLiteral{LiteralBase: base, Value: tok.Lexeme}, nil
	default:
		return &ast.BoolLiteral{LiteralBase: base, Value: tok.Kind == token.KW_TRUE}, nil
	}
}

// parseGroup parses a parenthesized expression or a tuple:
//
//	( expr )            grouping, yields expr itself
//	( expr , [ ... ] )  tuple, a trailing comma is allowed
func (p *Parser) parseGroup() (ast.Expr, error) {
	open := p.advance() // consume '('

	if p.check(token.RPAREN) {
		return nil, p.unexpected(p.peek()).WithHelp("empty tuples are not supported")
	}
	if p.isAtEnd() {
		return nil, p.unclosed(open)
	}

	first, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}

	if !p.check(token.COMMA) {
		if _, err := p.closeList(open, token.RPAREN); err != nil {
			return nil, err
		}
		return first, nil
	}

	p.advance() // consume ','
	elements := []ast.Expr{first}
	closing, err := p.parseList(open, token.RPAREN, func() error {
		elem, err := p.parseExpr(bpNone)
		if err != nil {
			return err
		}
		elements = append(elements, elem)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ast.TupleExpr{
		ExprBase: makeExprBase(open.Span.Start, closing.Span.End),
		Elements: elements,
	}, nil
}

// parseArrayLiteral parses: [ [ expr { , expr } [ , ] ] ]
func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	open := p.advance() // consume '['
	var elements []ast.Expr

	closing, err := p.parseList(open, token.RBRACKET, func() error {
		elem, err := p.parseExpr(bpNone)
		if err != nil {
			return err
		}
		elements = append(elements, elem)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ast.ArrayLiteral{
		ExprBase: makeExprBase(open.Span.Start, closing.Span.End),
		Elements: elements,
	}, nil
}

// parseCall parses: callee ( args )
func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	open := p.advance() // consume '('
	var args []ast.Expr

	closing, err := p.parseList(open, token.RPAREN, func() error {
		arg, err := p.parseExpr(bpNone)
		if err != nil {
			return err
		}
		args = append(args, arg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	whole := span.Join(callee.GetSpan(), closing.Span)
	return &ast.CallExpr{
		ExprBase: makeExprBase(whole.Start, whole.End),
		Callee:   callee,
		Args:     args,
	}, nil
}

// parseList parses comma-separated items up to closeKind. The opening
// delimiter has already been consumed; a trailing comma is allowed. It
// returns the closing token.
func (p *Parser) parseList(open token.Token, closeKind token.Kind, item func() error) (token.Token, error) {
	for !p.check(closeKind) {
		if p.isAtEnd() {
			return token.Token{}, p.unclosed(open)
		}
		if err := item(); err != nil {
			return token.Token{}, err
		}
		if !p.check(token.COMMA) {
			break
		}
		p.advance() // consume ','
	}
	return p.closeList(open, closeKind)
}

// closeList consumes the closing delimiter of a list.
func (p *Parser) closeList(open token.Token, closeKind token.Kind) (token.Token, error) {
	if p.check(closeKind) {
		return p.advance(), nil
	}
	if p.isAtEnd() {
		return token.Token{}, p.unclosed(open)
	}
	e := p.expected(p.peek(), token.COMMA, closeKind)
	if !e.Lexical() {
		e = e.WithHelp("did you forget a comma?")
	}
	return token.Token{}, e
}

// ============================================================
// Block and control-flow expressions
// ============================================================

// parseBlock parses: do { stmt } end
//
// Errors inside the block are recorded and recovered from at the next
// statement boundary or at `end`, so a block only fails when it is never
// closed or never opened.
func (p *Parser) parseBlock() (*ast.BlockExpr, error) {
	open, err := p.expectHelp(token.KW_DO, "blocks start with `do`")
	if err != nil {
		return nil, err
	}

	p.depth++
	defer func() { p.depth-- }()

	block := &ast.BlockExpr{}
	for !p.check(token.KW_END) {
		if p.isAtEnd() {
			return nil, p.unclosed(open)
		}
		mark := p.peek().Span.Start.Offset
		stmt, err := p.parseStmt()
		if err != nil {
			p.report(err)
			p.recover(mark)
			continue
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	closing := p.advance() // consume 'end'

	block.ExprBase = makeExprBase(open.Span.Start, closing.Span.End)
	return block, nil
}

// parseIf parses: if expr block [ else expr ]
func (p *Parser) parseIf() (ast.Expr, error) {
	start := p.advance() // consume 'if'

	cond, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	expr := &ast.IfExpr{Condition: cond, Body: body}
	if p.check(token.KW_ELSE) {
		p.advance() // consume 'else'
		elseExpr, err := p.parseExpr(bpNone)
		if err != nil {
			return nil, err
		}
		expr.Else = elseExpr
	}

	expr.ExprBase = makeExprBase(start.Span.Start, p.prev.Span.End)
	return expr, nil
}

// parseFor parses: for expr in expr block
func (p *Parser) parseFor() (ast.Expr, error) {
	start := p.advance() // consume 'for'

	binding, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectHelp(token.KW_IN, "loops are written `for x in items do ... end`"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForExpr{
		ExprBase: makeExprBase(start.Span.Start, body.Span.End),
		Binding:  binding,
		Iterable: iterable,
		Body:     body,
	}, nil
}

// parseWhile parses: while expr block
func (p *Parser) parseWhile() (ast.Expr, error) {
	start := p.advance() // consume 'while'

	cond, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileExpr{
		ExprBase:  makeExprBase(start.Span.Start, body.Span.End),
		Condition: cond,
		Body:      body,
	}, nil
}
