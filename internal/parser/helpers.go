package parser

import (
	"pycc/internal/diag"
	"pycc/internal/source"
	"pycc/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// Если текущий токен EOF или синтезированный с пустым span, используем
// позицию сразу после lastSpan.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Span.Start == peek.Span.End && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter != nil {
		if sev == diag.SevError {
			p.opts.CurrentErrors++
		}
		if !p.opts.Enough() {
			p.opts.Reporter.Report(code, sev, sp, msg, nil)
			return true
		}
		return false // достигли максимального количества ошибок
	}
	return false // нет reporter - ничего не записали
}

// resyncLine пропускает токены до конца логической строки, чтобы
// продолжить разбор со следующей. Вложенный осиротевший блок после
// заголовка пропускается целиком вместе с его Indent/Dedent.
func (p *Parser) resyncLine() {
	for {
		switch p.lx.Peek().Kind {
		case token.EOF:
			return
		case token.Newline:
			p.advance()
			if p.at(token.Indent) {
				p.skipBlock()
			}
			return
		case token.Dedent:
			// не съедаем чужой Dedent: он закрывает внешний блок
			return
		default:
			p.advance()
		}
	}
}

// skipBlock съедает сбалансированную пару Indent..Dedent со всем содержимым.
func (p *Parser) skipBlock() {
	if !p.at(token.Indent) {
		return
	}
	p.advance()
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.Indent:
			depth++
		case token.Dedent:
			depth--
		}
	}
}
