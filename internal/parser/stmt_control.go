package parser

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/token"
)

// parseBlock разбирает тело составной конструкции после заголовка:
// ':' Newline Indent stmts Dedent, либо однострочную форму
// "if x: pass" с простыми statements на той же строке.
func (p *Parser) parseBlock() ([]*ast.Stmt, bool) {
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':'"); !ok {
		return nil, false
	}
	if !p.at(token.Newline) {
		// однострочное тело
		return p.parseSimpleLine()
	}
	p.advance() // Newline
	if _, ok := p.expect(token.Indent, diag.SynExpectIndent, "expected an indented block"); !ok {
		return nil, false
	}
	var body []*ast.Stmt
	for !p.atOr(token.Dedent, token.EOF) {
		if p.at(token.Newline) {
			p.advance()
			continue
		}
		stmts, ok := p.parseStatement()
		if !ok {
			p.resyncLine()
			continue
		}
		body = append(body, stmts...)
	}
	if p.at(token.Dedent) {
		p.advance()
	}
	if len(body) == 0 {
		p.err(diag.SynExpectBlock, "block cannot be empty")
		return nil, false
	}
	return body, true
}

func (p *Parser) parseIf() (*ast.Stmt, bool) {
	tok := p.advance() // if | elif
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt := &ast.Stmt{
		Kind: ast.StmtIf,
		Span: tok.Span.Cover(cond.Span),
		Expr: cond,
		Body: body,
	}
	switch p.lx.Peek().Kind {
	case token.KwElif:
		// elif сворачивается во вложенный if в ветке else
		nested, ok := p.parseIf()
		if !ok {
			return nil, false
		}
		stmt.Else = []*ast.Stmt{nested}
	case token.KwElse:
		p.advance()
		orelse, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		stmt.Else = orelse
	}
	return stmt, true
}

func (p *Parser) parseWhile() (*ast.Stmt, bool) {
	tok := p.advance() // while
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt := &ast.Stmt{
		Kind: ast.StmtWhile,
		Span: tok.Span.Cover(cond.Span),
		Expr: cond,
		Body: body,
	}
	if p.at(token.KwElse) {
		p.advance()
		orelse, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		stmt.Else = orelse
	}
	return stmt, true
}

func (p *Parser) parseFor(async bool) (*ast.Stmt, bool) {
	tok := p.advance() // for
	target, ok := p.parseTargetList()
	if !ok {
		return nil, false
	}
	if !isAssignable(target) {
		p.report(diag.SynBadAssignTarget, diag.SevError, target.Span, "cannot use "+target.Kind.String()+" as loop target")
		return nil, false
	}
	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in' in for loop"); !ok {
		return nil, false
	}
	iter, ok := p.parseExprList()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt := &ast.Stmt{
		Kind:   ast.StmtFor,
		Span:   tok.Span.Cover(iter.Span),
		Target: target,
		Iter:   iter,
		Body:   body,
		Async:  async,
	}
	if p.at(token.KwElse) {
		p.advance()
		orelse, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		stmt.Else = orelse
	}
	return stmt, true
}

// parseTry разбирает try/except/finally ровно настолько, чтобы пройти
// конструкцию целиком; конвертация отвергает её как неподдержанную.
func (p *Parser) parseTry() (*ast.Stmt, bool) {
	tok := p.advance() // try
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt := &ast.Stmt{Kind: ast.StmtTry, Span: tok.Span, Body: body}
	seenHandler := false
	for p.at(token.KwExcept) {
		p.advance()
		seenHandler = true
		if !p.at(token.Colon) {
			if _, ok := p.parseExpr(); !ok {
				return nil, false
			}
			if p.at(token.KwAs) {
				p.advance()
				if _, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected name after 'as'"); !ok {
					return nil, false
				}
			}
		}
		if _, ok := p.parseBlock(); !ok {
			return nil, false
		}
	}
	if p.at(token.KwElse) {
		p.advance()
		if _, ok := p.parseBlock(); !ok {
			return nil, false
		}
	}
	if p.at(token.KwFinally) {
		p.advance()
		seenHandler = true
		if _, ok := p.parseBlock(); !ok {
			return nil, false
		}
	}
	if !seenHandler {
		p.err(diag.SynUnexpectedToken, "expected 'except' or 'finally' after try block")
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseWith(async bool) (*ast.Stmt, bool) {
	tok := p.advance() // with
	for {
		if _, ok := p.parseExpr(); !ok {
			return nil, false
		}
		if p.at(token.KwAs) {
			p.advance()
			if _, ok := p.parsePostfix(); !ok {
				return nil, false
			}
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{Kind: ast.StmtWith, Span: tok.Span, Body: body, Async: async}, true
}

func (p *Parser) parseAsync() (*ast.Stmt, bool) {
	p.advance() // async
	switch p.lx.Peek().Kind {
	case token.KwDef:
		return p.parseFuncDef(false, true)
	case token.KwFor:
		return p.parseFor(true)
	case token.KwWith:
		return p.parseWith(true)
	default:
		p.err(diag.SynUnexpectedToken, "expected 'def', 'for' or 'with' after 'async'")
		return nil, false
	}
}

// parseDecorated съедает строки-декораторы и передаёт def/class дальше
// с пометкой Decorated.
func (p *Parser) parseDecorated() (*ast.Stmt, bool) {
	for p.at(token.At) {
		p.advance()
		if _, ok := p.parseExpr(); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Newline, diag.SynExpectNewline, "expected end of line after decorator"); !ok {
			return nil, false
		}
	}
	switch p.lx.Peek().Kind {
	case token.KwDef:
		return p.parseFuncDef(true, false)
	case token.KwClass:
		return p.parseClassDef(true)
	case token.KwAsync:
		p.advance()
		if p.at(token.KwDef) {
			return p.parseFuncDef(true, true)
		}
		p.err(diag.SynUnexpectedToken, "expected 'def' after 'async'")
		return nil, false
	default:
		p.err(diag.SynUnexpectedToken, "expected function or class definition after decorator")
		return nil, false
	}
}
