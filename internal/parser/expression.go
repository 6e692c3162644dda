package parser

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/token"
)

// parseExpr разбирает одно выражение (без запятых верхнего уровня).
// Уровни, сверху вниз: тернарный if/else → lambda → or → and → not →
// сравнения → бинарные по таблице → унарные → ** → постфиксы → атом.
func (p *Parser) parseExpr() (*ast.Expr, bool) {
	if p.at(token.KwLambda) {
		return p.parseLambda()
	}
	e, ok := p.parseOr()
	if !ok {
		return nil, false
	}
	if !p.at(token.KwIf) {
		return e, true
	}
	// тернарный:  then if cond else alt
	p.advance()
	cond, ok := p.parseOr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwElse, diag.SynUnexpectedToken, "expected 'else' in conditional expression"); !ok {
		return nil, false
	}
	alt, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind: ast.ExprTernary,
		Span: e.Span.Cover(alt.Span),
		Left: e,
		Cond: cond,
		Else: alt,
	}, true
}

// parseExprList разбирает testlist: expr {',' expr}. Запятая на
// верхнем уровне даёт кортеж (включая хвостовую: "x," — кортеж из одного).
func (p *Parser) parseExprList(stop ...token.Kind) (*ast.Expr, bool) {
	first, ok := p.parseExpr()
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
		if p.exprListDone(stop) {
			break
		}
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		elems = append(elems, e)
		span = span.Cover(e.Span)
	}
	return &ast.Expr{Kind: ast.ExprTuple, Span: span, Elems: elems}, true
}

func (p *Parser) exprListDone(stop []token.Kind) bool {
	k := p.lx.Peek().Kind
	if k == token.Newline || k == token.EOF || k == token.Assign || k == token.Colon {
		return true
	}
	for _, s := range stop {
		if k == s {
			return true
		}
	}
	return false
}

func (p *Parser) parseOr() (*ast.Expr, bool) {
	left, ok := p.parseAnd()
	if !ok {
		return nil, false
	}
	if !p.at(token.KwOr) {
		return left, true
	}
	args := []*ast.Expr{left}
	span := left.Span
	for p.at(token.KwOr) {
		p.advance()
		right, ok := p.parseAnd()
		if !ok {
			return nil, false
		}
		args = append(args, right)
		span = span.Cover(right.Span)
	}
	return &ast.Expr{Kind: ast.ExprBoolOp, Span: span, Op: ast.OpOr, Args: args}, true
}

func (p *Parser) parseAnd() (*ast.Expr, bool) {
	left, ok := p.parseNot()
	if !ok {
		return nil, false
	}
	if !p.at(token.KwAnd) {
		return left, true
	}
	args := []*ast.Expr{left}
	span := left.Span
	for p.at(token.KwAnd) {
		p.advance()
		right, ok := p.parseNot()
		if !ok {
			return nil, false
		}
		args = append(args, right)
		span = span.Cover(right.Span)
	}
	return &ast.Expr{Kind: ast.ExprBoolOp, Span: span, Op: ast.OpAnd, Args: args}, true
}

func (p *Parser) parseNot() (*ast.Expr, bool) {
	if !p.at(token.KwNot) {
		return p.parseComparison()
	}
	tok := p.advance()
	operand, ok := p.parseNot()
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind:  ast.ExprUnary,
		Span:  tok.Span.Cover(operand.Span),
		Op:    ast.OpNot,
		Right: operand,
	}, true
}

// parseComparison собирает цепочку сравнений: a < b <= c, x is not None,
// k in d. Все операторы и правые операнды копятся в одном узле.
func (p *Parser) parseComparison() (*ast.Expr, bool) {
	left, ok := p.parseBinary(0)
	if !ok {
		return nil, false
	}
	var ops []ast.Op
	var comparators []*ast.Expr
	span := left.Span

	for {
		var op ast.Op
		switch p.lx.Peek().Kind {
		case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
			op = tokenKindToComparisonOp(p.advance().Kind)
		case token.KwIs:
			p.advance()
			op = ast.OpIs
			if p.at(token.KwNot) {
				p.advance()
				op = ast.OpIsNot
			}
		case token.KwIn:
			p.advance()
			op = ast.OpIn
		case token.KwNot:
			// "not in" — единственное место, где not стоит посреди сравнения
			p.advance()
			if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in' after 'not' in comparison"); !ok {
				return nil, false
			}
			op = ast.OpNotIn
		default:
			if len(ops) == 0 {
				return left, true
			}
			return &ast.Expr{
				Kind:        ast.ExprCompare,
				Span:        span,
				Left:        left,
				Ops:         ops,
				Comparators: comparators,
			}, true
		}

		right, ok := p.parseBinary(0)
		if !ok {
			return nil, false
		}
		ops = append(ops, op)
		comparators = append(comparators, right)
		span = span.Cover(right.Span)
	}
}

// parseBinary — precedence climbing по таблице из op_table.go.
func (p *Parser) parseBinary(minPrec int) (*ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		prec := getBinaryOperatorPrec(p.lx.Peek().Kind)
		if prec < minPrec || prec == -1 {
			return left, true
		}
		opTok := p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.Expr{
			Kind:  ast.ExprBinary,
			Span:  left.Span.Cover(right.Span),
			Op:    tokenKindToBinaryOp(opTok.Kind),
			Left:  left,
			Right: right,
		}
	}
}

func (p *Parser) parseUnary() (*ast.Expr, bool) {
	var op ast.Op
	switch p.lx.Peek().Kind {
	case token.Plus:
		op = ast.OpUAdd
	case token.Minus:
		op = ast.OpUSub
	case token.Tilde:
		op = ast.OpInvert
	default:
		return p.parsePower()
	}
	tok := p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind:  ast.ExprUnary,
		Span:  tok.Span.Cover(operand.Span),
		Op:    op,
		Right: operand,
	}, true
}

// parsePower — ** правоассоциативен, показатель может быть унарным: 2**-1.
func (p *Parser) parsePower() (*ast.Expr, bool) {
	base, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	if !p.at(token.StarStar) {
		return base, true
	}
	p.advance()
	exp, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind:  ast.ExprBinary,
		Span:  base.Span.Cover(exp.Span),
		Op:    ast.OpPow,
		Left:  base,
		Right: exp,
	}, true
}

// parseLambda разбирает lambda-выражение настолько, чтобы корректно
// пройти дальше; конвертация всё равно отвергает его как конструкцию.
func (p *Parser) parseLambda() (*ast.Expr, bool) {
	tok := p.advance() // lambda
	for !p.atOr(token.Colon, token.Newline, token.EOF) {
		p.advance()
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in lambda"); !ok {
		return nil, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind: ast.ExprLambda,
		Span: tok.Span.Cover(body.Span),
		Left: body,
	}, true
}
