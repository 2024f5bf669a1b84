package parser

import (
	"alpaca-lang/internal/ast"
	"alpaca-lang/internal/token"
)

// parseAnnotation parses a type annotation:
//
//	IDENT
//	( [ type { , type } ] )
//	[ [ type { , type } ] ]
//	fun ( [ type { , type } ] ) -> type
func (p *Parser) parseAnnotation() (ast.Annotation, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.IDENT:
		p.advance()
		return ast.NamedType{Name: tok.Lexeme}, nil

	case token.LPAREN:
		open := p.advance()
		elems, err := p.parseAnnotationList(open, token.RPAREN)
		if err != nil {
			return nil, err
		}
		return ast.TupleType{Elements: elems}, nil

	case token.LBRACKET:
		open := p.advance()
		elems, err := p.parseAnnotationList(open, token.RBRACKET)
		if err != nil {
			return nil, err
		}
		return ast.ArrayType{Elements: elems}, nil

	case token.KW_FUN:
		p.advance()
		open, err := p.expect(token.LPAREN)
		if err != nil {
			return nil, err
		}
		params, err := p.parseAnnotationList(open, token.RPAREN)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectHelp(token.ARROW, "function types spell out their result: `fun(int) -> int`"); err != nil {
			return nil, err
		}
		ret, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		return ast.FuncType{Params: params, Return: ret}, nil

	default:
		return nil, p.expected(tok, token.IDENT, token.LPAREN, token.LBRACKET, token.KW_FUN)
	}
}

func (p *Parser) parseAnnotationList(open token.Token, closeKind token.Kind) ([]ast.Annotation, error) {
	var list []ast.Annotation
	_, err := p.parseList(open, closeKind, func() error {
		ann, err := p.parseAnnotation()
		if err != nil {
			return err
		}
		list = append(list, ann)
		return nil
	})
	return list, err
}
