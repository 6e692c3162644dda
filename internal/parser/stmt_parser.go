package parser

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/source"
	"pycc/internal/token"
)

// parseStatement разбирает одну строку или составную конструкцию.
// Возвращает срез, потому что простые statements могут сидеть на одной
// строке через ';'.
func (p *Parser) parseStatement() ([]*ast.Stmt, bool) {
	switch p.lx.Peek().Kind {
	case token.KwIf:
		return p.one(p.parseIf())
	case token.KwWhile:
		return p.one(p.parseWhile())
	case token.KwFor:
		return p.one(p.parseFor(false))
	case token.KwDef:
		return p.one(p.parseFuncDef(false, false))
	case token.KwClass:
		return p.one(p.parseClassDef(false))
	case token.At:
		return p.one(p.parseDecorated())
	case token.KwTry:
		return p.one(p.parseTry())
	case token.KwWith:
		return p.one(p.parseWith(false))
	case token.KwAsync:
		return p.one(p.parseAsync())
	default:
		return p.parseSimpleLine()
	}
}

func (p *Parser) one(stmt *ast.Stmt, ok bool) ([]*ast.Stmt, bool) {
	if !ok {
		return nil, false
	}
	return []*ast.Stmt{stmt}, true
}

// parseSimpleLine — одна логическая строка простых statements,
// разделённых ';', завершённая Newline.
func (p *Parser) parseSimpleLine() ([]*ast.Stmt, bool) {
	var stmts []*ast.Stmt
	for {
		stmt, ok := p.parseSimpleStmt()
		if !ok {
			return nil, false
		}
		stmts = append(stmts, stmt)
		if !p.at(token.Semicolon) {
			break
		}
		p.advance()
		if p.atOr(token.Newline, token.EOF) {
			break
		}
	}
	if _, ok := p.expect(token.Newline, diag.SynExpectNewline, "expected end of line"); !ok {
		return nil, false
	}
	return stmts, true
}

func (p *Parser) parseSimpleStmt() (*ast.Stmt, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwReturn:
		p.advance()
		stmt := &ast.Stmt{Kind: ast.StmtReturn, Span: tok.Span}
		if !p.atOr(token.Newline, token.Semicolon, token.EOF) {
			value, ok := p.parseExprList()
			if !ok {
				return nil, false
			}
			stmt.Expr = value
			stmt.Span = tok.Span.Cover(value.Span)
		}
		return stmt, true

	case token.KwPass:
		p.advance()
		return &ast.Stmt{Kind: ast.StmtPass, Span: tok.Span}, true

	case token.KwBreak:
		p.advance()
		return &ast.Stmt{Kind: ast.StmtBreak, Span: tok.Span}, true

	case token.KwContinue:
		p.advance()
		return &ast.Stmt{Kind: ast.StmtContinue, Span: tok.Span}, true

	case token.KwGlobal, token.KwNonlocal:
		return p.parseScopeDecl()

	case token.KwImport:
		return p.parseImport()

	case token.KwFrom:
		return p.parseImportFrom()

	case token.KwDel:
		p.advance()
		stmt := &ast.Stmt{Kind: ast.StmtDelete, Span: tok.Span}
		for {
			target, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			stmt.Targets = append(stmt.Targets, target)
			stmt.Span = stmt.Span.Cover(target.Span)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		return stmt, true

	case token.KwRaise:
		p.advance()
		stmt := &ast.Stmt{Kind: ast.StmtRaise, Span: tok.Span}
		if !p.atOr(token.Newline, token.Semicolon, token.EOF) {
			exc, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			stmt.Expr = exc
			stmt.Span = tok.Span.Cover(exc.Span)
			if p.at(token.KwFrom) {
				p.advance()
				if _, ok := p.parseExpr(); !ok {
					return nil, false
				}
			}
		}
		return stmt, true

	case token.KwAssert:
		p.advance()
		test, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt := &ast.Stmt{Kind: ast.StmtAssert, Span: tok.Span.Cover(test.Span), Expr: test}
		if p.at(token.Comma) {
			p.advance()
			if _, ok := p.parseExpr(); !ok {
				return nil, false
			}
		}
		return stmt, true

	default:
		return p.parseExprOrAssign()
	}
}

// parseExprOrAssign различает expression statement, присваивание
// (возможно цепочечное a = b = v), расширенное (+= и родня) и
// аннотированное (x: int = 0).
func (p *Parser) parseExprOrAssign() (*ast.Stmt, bool) {
	first, ok := p.parseExprList()
	if !ok {
		return nil, false
	}

	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Assign:
		targets := []*ast.Expr{first}
		var value *ast.Expr
		for p.at(token.Assign) {
			p.advance()
			next, ok := p.parseExprList()
			if !ok {
				return nil, false
			}
			if p.at(token.Assign) {
				targets = append(targets, next)
				continue
			}
			value = next
		}
		for _, t := range targets {
			if !isAssignable(t) {
				p.report(diag.SynBadAssignTarget, diag.SevError, t.Span, "cannot assign to "+t.Kind.String())
				return nil, false
			}
		}
		return &ast.Stmt{
			Kind:    ast.StmtAssign,
			Span:    first.Span.Cover(value.Span),
			Targets: targets,
			Value:   value,
		}, true

	case tok.IsAugAssign():
		if !isAssignable(first) || first.Kind == ast.ExprTuple {
			p.report(diag.SynBadAssignTarget, diag.SevError, first.Span, "cannot use augmented assignment with "+first.Kind.String())
			return nil, false
		}
		p.advance()
		value, ok := p.parseExprList()
		if !ok {
			return nil, false
		}
		return &ast.Stmt{
			Kind:   ast.StmtAugAssign,
			Span:   first.Span.Cover(value.Span),
			Target: first,
			Op:     tokenKindToAugOp(tok.Kind),
			Value:  value,
		}, true

	case tok.Kind == token.Colon && first.Kind == ast.ExprIdent:
		// аннотация: x: int [= value]
		p.advance()
		annotation, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt := &ast.Stmt{
			Kind:   ast.StmtAnnAssign,
			Span:   first.Span.Cover(annotation.Span),
			Target: first,
			Expr:   annotation,
		}
		if p.at(token.Assign) {
			p.advance()
			value, ok := p.parseExprList()
			if !ok {
				return nil, false
			}
			stmt.Value = value
			stmt.Span = stmt.Span.Cover(value.Span)
		}
		return stmt, true

	default:
		return &ast.Stmt{Kind: ast.StmtExpr, Span: first.Span, Expr: first}, true
	}
}

// isAssignable — допустимые цели присваивания: имя, индекс, атрибут и
// кортежи/списки из них.
func isAssignable(e *ast.Expr) bool {
	switch e.Kind {
	case ast.ExprIdent, ast.ExprIndex, ast.ExprAttribute, ast.ExprStarred:
		return true
	case ast.ExprTuple, ast.ExprList:
		for _, elem := range e.Elems {
			if !isAssignable(elem) {
				return false
			}
		}
		return len(e.Elems) > 0
	default:
		return false
	}
}

func (p *Parser) parseScopeDecl() (*ast.Stmt, bool) {
	tok := p.advance() // global | nonlocal
	kind := ast.StmtGlobal
	if tok.Kind == token.KwNonlocal {
		kind = ast.StmtNonlocal
	}
	stmt := &ast.Stmt{Kind: kind, Span: tok.Span}
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected name in declaration")
		if !ok {
			return nil, false
		}
		stmt.Names = append(stmt.Names, nameTok.Text)
		stmt.Span = stmt.Span.Cover(nameTok.Span)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return stmt, true
}

func (p *Parser) parseImport() (*ast.Stmt, bool) {
	tok := p.advance() // import
	stmt := &ast.Stmt{Kind: ast.StmtImport, Span: tok.Span}
	for {
		name, sp, ok := p.parseDottedName()
		if !ok {
			return nil, false
		}
		if p.at(token.KwAs) {
			p.advance()
			if _, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected alias after 'as'"); !ok {
				return nil, false
			}
		}
		stmt.Names = append(stmt.Names, name)
		stmt.Span = stmt.Span.Cover(sp)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return stmt, true
}

func (p *Parser) parseImportFrom() (*ast.Stmt, bool) {
	tok := p.advance() // from
	module, sp, ok := p.parseDottedName()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwImport, diag.SynUnexpectedToken, "expected 'import' after module name"); !ok {
		return nil, false
	}
	stmt := &ast.Stmt{Kind: ast.StmtImportFrom, Span: tok.Span.Cover(sp), Name: module}
	if p.at(token.Star) {
		starTok := p.advance()
		stmt.Names = append(stmt.Names, "*")
		stmt.Span = stmt.Span.Cover(starTok.Span)
		return stmt, true
	}
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected imported name")
		if !ok {
			return nil, false
		}
		if p.at(token.KwAs) {
			p.advance()
			if _, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected alias after 'as'"); !ok {
				return nil, false
			}
		}
		stmt.Names = append(stmt.Names, nameTok.Text)
		stmt.Span = stmt.Span.Cover(nameTok.Span)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return stmt, true
}

func (p *Parser) parseDottedName() (string, source.Span, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected module name")
	if !ok {
		return "", source.Span{}, false
	}
	name := nameTok.Text
	sp := nameTok.Span
	for p.at(token.Dot) {
		p.advance()
		part, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected name after '.'")
		if !ok {
			return "", source.Span{}, false
		}
		name += "." + part.Text
		sp = sp.Cover(part.Span)
	}
	return name, sp, true
}
