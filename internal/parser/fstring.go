package parser

import (
	"strings"

	"fortio.org/safecast"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/lexer"
	"pycc/internal/source"
	"pycc/internal/token"
)

// parseFString разбирает f-строку на чередование литеральных кусков и
// выражений. Выражения внутри {} разбираются вложенным лексером поверх
// того же файла, ограниченным диапазоном содержимого литерала.
func (p *Parser) parseFString() (*ast.Expr, bool) {
	tok := p.advance()
	if tok.Kind != token.FStringLit {
		p.err(diag.SynBadFString, "expected f-string literal")
		return nil, false
	}
	raw := tok.Text
	if len(raw) < 3 || (raw[0] != 'f' && raw[0] != 'F') {
		p.report(diag.SynBadFString, diag.SevError, tok.Span, "invalid f-string literal")
		return nil, false
	}
	body, ok := unquoteOffsets(raw)
	if !ok {
		p.report(diag.SynBadFString, diag.SevError, tok.Span, "invalid f-string literal")
		return nil, false
	}
	content := raw[body.lo:body.hi]
	contentStart := tok.Span.Start + body.lo
	contentEnd := tok.Span.Start + body.hi

	expr := &ast.Expr{Kind: ast.ExprFString, Span: tok.Span}
	var lit strings.Builder

	flushLit := func() {
		if lit.Len() == 0 {
			return
		}
		decoded, okDec := decodeEscapes(lit.String())
		if !okDec {
			decoded = lit.String()
		}
		expr.Parts = append(expr.Parts, ast.FStringPart{Lit: decoded})
		lit.Reset()
	}

	for i := 0; i < len(content); {
		ch := content[i]
		if ch == '{' {
			if i+1 < len(content) && content[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			flushLit()
			exprStart, okOff := fstringOffset(p, contentStart, i+1)
			if !okOff {
				return nil, false
			}
			inner, closeSpan, okExpr := p.parseFStringExpr(tok.Span.File, exprStart, contentEnd)
			if !okExpr {
				return nil, false
			}
			expr.Parts = append(expr.Parts, ast.FStringPart{Expr: inner})
			if closeSpan.End < contentStart {
				return nil, false
			}
			i = int(closeSpan.End - contentStart)
			continue
		}
		if ch == '}' {
			if i+1 < len(content) && content[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			off, okOff := fstringOffset(p, contentStart, i)
			if !okOff {
				return nil, false
			}
			sp := source.Span{File: tok.Span.File, Start: off, End: off + 1}
			p.report(diag.SynBadFString, diag.SevError, sp, "unmatched '}' in f-string")
			return nil, false
		}
		lit.WriteByte(ch)
		i++
	}
	flushLit()
	return expr, true
}

// parseFStringExpr разбирает одно выражение внутри {} вложенным
// лексером/парсером. Формат-спецификация после ':' и конверсия после
// '!' игнорируются: представление значений выбирает эмиттер по
// выведенному типу.
func (p *Parser) parseFStringExpr(fileID source.FileID, start, limit uint32) (*ast.Expr, source.Span, bool) {
	if p.fs == nil {
		return nil, source.Span{}, false
	}
	file := p.fs.Get(fileID)
	if file == nil {
		return nil, source.Span{}, false
	}
	subLexer := lexer.New(file, lexer.Options{Reporter: p.opts.Reporter})
	subLexer.SetRange(start, limit)
	subParser := Parser{
		lx:       subLexer,
		fs:       p.fs,
		opts:     p.opts,
		lastSpan: source.Span{File: fileID, Start: start, End: start},
	}
	inner, ok := subParser.parseExpr()
	if !ok {
		return nil, source.Span{}, false
	}
	// хвост до закрывающей скобки: ":.2f" и подобное
	for subParser.atOr(token.Colon, token.Newline) {
		subParser.advance()
		for !subParser.atOr(token.RBrace, token.EOF) {
			subParser.advance()
		}
	}
	closeTok := subParser.lx.Peek()
	if closeTok.Kind != token.RBrace {
		sp := closeTok.Span
		if closeTok.Kind == token.EOF {
			sp = source.Span{File: fileID, Start: limit, End: limit}
		}
		p.report(diag.SynBadFString, diag.SevError, sp, "expected '}' to close f-string expression")
		return nil, source.Span{}, false
	}
	return inner, closeTok.Span, true
}

type byteRange struct{ lo, hi uint32 }

// unquoteOffsets находит границы содержимого f-строки внутри сырого
// текста токена (после префикса и кавычек).
func unquoteOffsets(raw string) (byteRange, bool) {
	s := raw[1:] // префикс f/F
	base := uint32(1)
	for _, q := range []string{`"""`, "'''"} {
		if len(s) >= 6 && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return byteRange{lo: base + 3, hi: base + uint32(len(s)) - 3}, true
		}
	}
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return byteRange{lo: base + 1, hi: base + uint32(len(s)) - 1}, true
	}
	return byteRange{}, false
}

func fstringOffset(p *Parser, contentStart uint32, pos int) (uint32, bool) {
	off, err := safecast.Conv[uint32](pos)
	if err != nil {
		p.err(diag.SynBadFString, "f-string literal too large")
		return 0, false
	}
	return contentStart + off, true
}
