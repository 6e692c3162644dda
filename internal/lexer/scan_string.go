package lexer

import (
	"pycc/internal/diag"
	"pycc/internal/token"
)

// scanString сканирует строковый литерал в одинарных, двойных или
// тройных кавычках. При isFString курсор стоит на префиксе f/F, токен
// получает Kind FStringLit; разбор частей {...} делает парсер.
// Token.Text — ровно исходный срез вместе с кавычками и префиксом.
func (lx *Lexer) scanString(isFString bool) token.Token {
	start := lx.cursor.Mark()
	kind := token.StringLit
	if isFString {
		kind = token.FStringLit
		lx.cursor.Bump() // префикс f/F
	}

	quote := lx.cursor.Bump()

	// тройная кавычка?
	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == quote && b1 == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	} else if lx.cursor.Peek() == quote {
		// пустой литерал ""
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			if !triple {
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == quote && b1 == quote && b2 == quote {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\\' {
			// грубая обработка escape: съесть '\' и следующий байт,
			// не валидируем глубоко здесь
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' && !triple {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}

	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
