package parser

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/token"
)

// parsePostfix — атом и цепочка постфиксов: вызовы, индексы, срезы,
// доступ к атрибуту.
func (p *Parser) parsePostfix() (*ast.Expr, bool) {
	e, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			e, ok = p.parseCall(e)
		case token.LBracket:
			e, ok = p.parseIndexOrSlice(e)
		case token.Dot:
			p.advance()
			nameTok, okName := p.expect(token.Ident, diag.SynExpectIdentifier, "expected attribute name after '.'")
			if !okName {
				return nil, false
			}
			e = &ast.Expr{
				Kind:   ast.ExprAttribute,
				Span:   e.Span.Cover(nameTok.Span),
				Target: e,
				Name:   nameTok.Text,
			}
			ok = true
		default:
			return e, true
		}
		if !ok {
			return nil, false
		}
	}
}

// parseCall разбирает список аргументов: позиционные, именованные
// name=value, распаковки *args и **kwargs.
func (p *Parser) parseCall(callee *ast.Expr) (*ast.Expr, bool) {
	p.advance() // '('
	call := &ast.Expr{
		Kind:   ast.ExprCall,
		Target: callee,
	}
	for !p.atOr(token.RParen, token.EOF) {
		switch {
		case p.at(token.Star) || p.at(token.StarStar):
			starTok := p.advance()
			inner, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			call.Args = append(call.Args, &ast.Expr{
				Kind:  ast.ExprStarred,
				Span:  starTok.Span.Cover(inner.Span),
				Right: inner,
			})
		case p.at(token.Ident) && p.peekIsKeywordArg():
			nameTok := p.advance()
			p.advance() // '='
			value, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			call.Keywords = append(call.Keywords, ast.Keyword{Name: nameTok.Text, Value: value})
		default:
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			// generator expression как единственный аргумент: sum(x for x in xs)
			if p.at(token.KwFor) && len(call.Args) == 0 && len(call.Keywords) == 0 {
				gen, okGen := p.parseComprehensionTail(ast.ExprGenerator, arg)
				if !okGen {
					return nil, false
				}
				call.Args = append(call.Args, gen)
				continue
			}
			call.Args = append(call.Args, arg)
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelim, "expected ')' to close call")
	if !ok {
		return nil, false
	}
	call.Span = callee.Span.Cover(closeTok.Span)
	return call, true
}

// peekIsKeywordArg — Ident, за которым сразу '='. Лексер отдаёт Peek
// только на один токен, поэтому подсматриваем в байты за идентом.
func (p *Parser) peekIsKeywordArg() bool {
	identTok := p.lx.Peek()
	file := p.fs.Get(identTok.Span.File)
	if file == nil {
		return false
	}
	i := identTok.Span.End
	for i < uint32(len(file.Content)) && (file.Content[i] == ' ' || file.Content[i] == '\t') {
		i++
	}
	if i >= uint32(len(file.Content)) || file.Content[i] != '=' {
		return false
	}
	// '==' — сравнение, не именованный аргумент
	return i+1 >= uint32(len(file.Content)) || file.Content[i+1] != '='
}

// parseIndexOrSlice разбирает e[index], e[a:b] и e[a:b:c].
func (p *Parser) parseIndexOrSlice(target *ast.Expr) (*ast.Expr, bool) {
	p.advance() // '['
	slice := &ast.Expr{Kind: ast.ExprSlice, Target: target}

	if !p.atOr(token.Colon, token.RBracket) {
		lower, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if p.at(token.Comma) {
			// кортежный индекс: d[a, b]
			elems := []*ast.Expr{lower}
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
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelim, "expected ']' to close subscript")
			if !ok {
				return nil, false
			}
			tuple := &ast.Expr{Kind: ast.ExprTuple, Span: lower.Span.Cover(closeTok.Span), Elems: elems}
			return &ast.Expr{
				Kind:   ast.ExprIndex,
				Span:   target.Span.Cover(closeTok.Span),
				Target: target,
				Index:  tuple,
			}, true
		}
		if p.at(token.RBracket) {
			closeTok := p.advance()
			return &ast.Expr{
				Kind:   ast.ExprIndex,
				Span:   target.Span.Cover(closeTok.Span),
				Target: target,
				Index:  lower,
			}, true
		}
		slice.Lower = lower
	}

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in slice"); !ok {
		return nil, false
	}
	if !p.atOr(token.Colon, token.RBracket) {
		upper, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		slice.Upper = upper
	}
	if p.at(token.Colon) {
		p.advance()
		if !p.at(token.RBracket) {
			step, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			slice.Step = step
		}
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedDelim, "expected ']' to close slice")
	if !ok {
		return nil, false
	}
	slice.Span = target.Span.Cover(closeTok.Span)
	return slice, true
}
