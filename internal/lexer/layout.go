package lexer

import (
	"pycc/internal/diag"
	"pycc/internal/token"
)

// scanLineStart измеряет отступ в начале логической строки и кладёт
// синтезированные Indent/Dedent в pending. Пустые строки и строки из
// одного комментария пропускаются целиком — они не трогают стек
// отступов и не дают Newline.
func (lx *Lexer) scanLineStart() {
	var width uint32
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		start = lx.cursor.Mark()
		width = 0
		tabReported := false

		for {
			b := lx.cursor.Peek()
			if b == ' ' {
				lx.cursor.Bump()
				width++
				continue
			}
			if b == '\t' {
				if !tabReported {
					sp := lx.cursor.SpanFrom(lx.cursor.Mark())
					lx.warnLex(diag.LexTabIndent, sp, "tab character in indentation; counted as 8 columns")
					tabReported = true
				}
				lx.cursor.Bump()
				// таб выравнивает до следующей колонки, кратной 8
				width += 8 - width%8
				continue
			}
			break
		}

		if lx.cursor.EOF() {
			lx.atLineStart = false
			return
		}

		b := lx.cursor.Peek()
		if b == '\n' {
			lx.cursor.Bump()
			continue
		}
		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		break
	}

	lx.atLineStart = false
	if lx.cursor.EOF() {
		return
	}

	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.pending = append(lx.pending, token.Token{
			Kind: token.Indent,
			Span: lx.cursor.SpanFrom(start),
		})

	case width < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > width {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.pending = append(lx.pending, token.Token{
				Kind: token.Dedent,
				Span: lx.emptySpan(),
			})
		}
		if lx.indents[len(lx.indents)-1] != width {
			lx.errLex(diag.LexBadIndent, lx.cursor.SpanFrom(start),
				"unindent does not match any outer indentation level")
			// восстанавливаем стек этой глубиной, чтобы следующие
			// строки мерились от неё
			lx.indents = append(lx.indents, width)
		}
	}
}

// skipInlineTrivia съедает пробелы, табы, комментарии до конца строки
// и продолжение строки через обратный слэш. Сам '\n' не потребляет.
func (lx *Lexer) skipInlineTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' {
			lx.cursor.Bump()
			continue
		}
		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '\\' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\\' && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
		}
		break
	}
}
