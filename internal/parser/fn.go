package parser

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/token"
)

func (p *Parser) parseFuncDef(decorated, async bool) (*ast.Stmt, bool) {
	tok := p.advance() // def
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}

	var params []ast.Param
	for !p.atOr(token.RParen, token.EOF) {
		// *args / **kwargs съедаем, но параметрами не считаем:
		// конвертация знает только позиционные
		for p.atOr(token.Star, token.StarStar) {
			p.advance()
		}
		paramTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			return nil, false
		}
		param := ast.Param{Name: paramTok.Text, Span: paramTok.Span}
		if p.at(token.Colon) {
			p.advance()
			annotation, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			param.Annotation = annotation
		}
		if p.at(token.Assign) {
			// значение по умолчанию: разбираем и отбрасываем
			p.advance()
			if _, ok := p.parseExpr(); !ok {
				return nil, false
			}
		}
		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelim, "expected ')' to close parameter list"); !ok {
		return nil, false
	}

	stmt := &ast.Stmt{
		Kind:      ast.StmtFuncDef,
		Span:      tok.Span.Cover(nameTok.Span),
		Name:      nameTok.Text,
		Params:    params,
		Decorated: decorated,
		Async:     async,
	}

	if p.at(token.Arrow) {
		p.advance()
		returns, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Returns = returns
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt.Body = body
	return stmt, true
}

func (p *Parser) parseClassDef(decorated bool) (*ast.Stmt, bool) {
	tok := p.advance() // class
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected class name")
	if !ok {
		return nil, false
	}
	if p.at(token.LParen) {
		// базовые классы: разбираем и отбрасываем
		p.advance()
		for !p.atOr(token.RParen, token.EOF) {
			if _, ok := p.parseExpr(); !ok {
				return nil, false
			}
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelim, "expected ')' after base classes"); !ok {
			return nil, false
		}
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{
		Kind:      ast.StmtClassDef,
		Span:      tok.Span.Cover(nameTok.Span),
		Name:      nameTok.Text,
		Body:      body,
		Decorated: decorated,
	}, true
}
