package parser

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/token"
)

// parseAtom разбирает первичные выражения: литералы, идентификаторы,
// скобочные формы, а также yield/await/starred, которые конвертация
// потом отвергает как конструкции.
func (p *Parser) parseAtom() (*ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.Expr{Kind: ast.ExprIdent, Span: tok.Span, Name: tok.Text}, true

	case token.IntLit:
		p.advance()
		return p.intLit(tok)

	case token.FloatLit:
		p.advance()
		return p.floatLit(tok)

	case token.StringLit:
		p.advance()
		return p.stringLit(tok)

	case token.FStringLit:
		return p.parseFString()

	case token.TrueLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprBoolLit, Span: tok.Span, Bool: true}, true

	case token.FalseLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprBoolLit, Span: tok.Span, Bool: false}, true

	case token.NoneLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprNoneLit, Span: tok.Span}, true

	case token.LParen:
		return p.parseParenForm()

	case token.LBracket:
		return p.parseListLiteral()

	case token.LBrace:
		return p.parseDictOrSetLiteral()

	case token.KwYield:
		p.advance()
		y := &ast.Expr{Kind: ast.ExprYield, Span: tok.Span}
		if !p.atOr(token.Newline, token.RParen, token.EOF) {
			inner, ok := p.parseExprList()
			if !ok {
				return nil, false
			}
			y.Right = inner
			y.Span = tok.Span.Cover(inner.Span)
		}
		return y, true

	case token.KwAwait:
		p.advance()
		inner, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprAwait, Span: tok.Span.Cover(inner.Span), Right: inner}, true

	case token.Star:
		p.advance()
		inner, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprStarred, Span: tok.Span.Cover(inner.Span), Right: inner}, true

	default:
		p.err(diag.SynExpectExpression, "expected expression, found '"+tok.Kind.String()+"'")
		return nil, false
	}
}

// parseParenForm: группировка, пустой кортеж, кортеж с запятыми или
// generator expression.
func (p *Parser) parseParenForm() (*ast.Expr, bool) {
	openTok := p.advance() // '('

	if p.at(token.RParen) {
		closeTok := p.advance()
		return &ast.Expr{Kind: ast.ExprTuple, Span: openTok.Span.Cover(closeTok.Span)}, true
	}

	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.at(token.KwFor) {
		gen, ok := p.parseComprehensionTail(ast.ExprGenerator, first)
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelim, "expected ')' to close generator expression")
		if !ok {
			return nil, false
		}
		gen.Span = openTok.Span.Cover(closeTok.Span)
		return gen, true
	}

	if !p.at(token.Comma) {
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelim, "expected ')'")
		if !ok {
			return nil, false
		}
		// скобки прозрачны: span расширяем, узел оставляем
		first.Span = openTok.Span.Cover(closeTok.Span)
		return first, true
	}

	elems := []*ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RParen) {
			break
		}
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		elems = append(elems, e)
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelim, "expected ')' to close tuple")
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind:  ast.ExprTuple,
		Span:  openTok.Span.Cover(closeTok.Span),
		Elems: elems,
	}, true
}

func (p *Parser) parseListLiteral() (*ast.Expr, bool) {
	openTok := p.advance() // '['

	if p.at(token.RBracket) {
		closeTok := p.advance()
		return &ast.Expr{Kind: ast.ExprList, Span: openTok.Span.Cover(closeTok.Span)}, true
	}

	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.at(token.KwFor) {
		comp, ok := p.parseComprehensionTail(ast.ExprListComp, first)
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelim, "expected ']' to close list comprehension")
		if !ok {
			return nil, false
		}
		comp.Span = openTok.Span.Cover(closeTok.Span)
		return comp, true
	}

	elems := []*ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RBracket) {
			break
		}
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		elems = append(elems, e)
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelim, "expected ']' to close list literal")
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind:  ast.ExprList,
		Span:  openTok.Span.Cover(closeTok.Span),
		Elems: elems,
	}, true
}

// parseDictOrSetLiteral: {} — пустой словарь, {k: v, ...} — словарь,
// {v, ...} — множество; обе формы comprehension дают свои виды узлов.
func (p *Parser) parseDictOrSetLiteral() (*ast.Expr, bool) {
	openTok := p.advance() // '{'

	if p.at(token.RBrace) {
		closeTok := p.advance()
		return &ast.Expr{Kind: ast.ExprDict, Span: openTok.Span.Cover(closeTok.Span)}, true
	}

	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.at(token.Colon) {
		// словарь
		p.advance()
		firstValue, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if p.at(token.KwFor) {
			comp, ok := p.parseComprehensionTail(ast.ExprDictComp, first)
			if !ok {
				return nil, false
			}
			closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelim, "expected '}' to close dict comprehension")
			if !ok {
				return nil, false
			}
			comp.Span = openTok.Span.Cover(closeTok.Span)
			return comp, true
		}
		dict := &ast.Expr{
			Kind:   ast.ExprDict,
			Keys:   []*ast.Expr{first},
			Values: []*ast.Expr{firstValue},
		}
		for p.at(token.Comma) {
			p.advance()
			if p.at(token.RBrace) {
				break
			}
			k, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in dict literal"); !ok {
				return nil, false
			}
			v, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			dict.Keys = append(dict.Keys, k)
			dict.Values = append(dict.Values, v)
		}
		closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelim, "expected '}' to close dict literal")
		if !ok {
			return nil, false
		}
		dict.Span = openTok.Span.Cover(closeTok.Span)
		return dict, true
	}

	if p.at(token.KwFor) {
		comp, ok := p.parseComprehensionTail(ast.ExprSetComp, first)
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelim, "expected '}' to close set comprehension")
		if !ok {
			return nil, false
		}
		comp.Span = openTok.Span.Cover(closeTok.Span)
		return comp, true
	}

	set := &ast.Expr{Kind: ast.ExprSet, Elems: []*ast.Expr{first}}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RBrace) {
			break
		}
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		set.Elems = append(set.Elems, e)
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelim, "expected '}' to close set literal")
	if !ok {
		return nil, false
	}
	set.Span = openTok.Span.Cover(closeTok.Span)
	return set, true
}

// parseComprehensionTail съедает "for target in iter [if cond]"
// (возможно несколько раз) и строит узел нужного вида. Конвертация
// отвергает comprehension целиком, поэтому структура хвоста не
// сохраняется — только элемент для span.
func (p *Parser) parseComprehensionTail(kind ast.ExprKind, elem *ast.Expr) (*ast.Expr, bool) {
	span := elem.Span
	for p.at(token.KwFor) {
		p.advance()
		if _, ok := p.parseTargetList(); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in' in comprehension"); !ok {
			return nil, false
		}
		iter, ok := p.parseOr()
		if !ok {
			return nil, false
		}
		span = span.Cover(iter.Span)
		for p.at(token.KwIf) {
			p.advance()
			cond, ok := p.parseOr()
			if !ok {
				return nil, false
			}
			span = span.Cover(cond.Span)
		}
	}
	return &ast.Expr{Kind: kind, Span: span, Left: elem}, true
}

// parseTargetList разбирает цель цикла for: имя, кортеж имён или
// индекс/атрибут. Сравнения и 'in' сюда не входят.
func (p *Parser) parseTargetList() (*ast.Expr, bool) {
	first, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	elems := []*ast.Expr{first}
	span := first.Span
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.KwIn) {
			break
		}
		e, ok := p.parsePostfix()
		if !ok {
			return nil, false
		}
		elems = append(elems, e)
		span = span.Cover(e.Span)
	}
	return &ast.Expr{Kind: ast.ExprTuple, Span: span, Elems: elems}, true
}
