package lexer

import (
	"pycc/internal/source"
	"pycc/internal/token"
)

// Lexer превращает исходный текст в поток токенов. Помимо обычных
// лексем он синтезирует токены разметки: Newline в конце каждой
// логической строки и Indent/Dedent на смене глубины отступа.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена

	// pending holds layout tokens queued ahead of the scanners,
	// FIFO order.
	pending []token.Token
	// indents is the indentation width stack; the bottom entry is
	// always 0 and never popped.
	indents []uint32
	// depth counts open (, [ and { pairs. While depth > 0 physical
	// newlines are not significant and indentation is not measured.
	depth int

	atLineStart bool
	sawToken    bool // значимый токен на текущей логической строке
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []uint32{0},
		atLineStart: true,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда
// возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if len(lx.pending) > 0 {
			tok := lx.pending[0]
			lx.pending = lx.pending[1:]
			return tok
		}

		if lx.atLineStart && lx.depth == 0 {
			lx.scanLineStart()
			if len(lx.pending) > 0 {
				continue
			}
		}

		lx.skipInlineTrivia()

		if lx.cursor.EOF() {
			return lx.finishEOF()
		}

		ch := lx.cursor.Peek()

		if ch == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.depth > 0 {
				// внутри скобок перевод строки не значим
				continue
			}
			lx.atLineStart = true
			lx.sawToken = false
			return token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(start), Text: "\n"}
		}

		var tok token.Token
		switch {
		case (ch == 'f' || ch == 'F') && lx.isQuoteAfterPrefix():
			tok = lx.scanString(true)

		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			tok = lx.scanIdentOrKeyword()

		case isDec(ch):
			tok = lx.scanNumber()

		case ch == '.' && lx.isNumberAfterDot():
			tok = lx.scanNumber()

		case ch == '"' || ch == '\'':
			tok = lx.scanString(false)

		default:
			tok = lx.scanOperatorOrPunct()
		}

		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			lx.depth++
		case token.RParen, token.RBracket, token.RBrace:
			if lx.depth > 0 {
				lx.depth--
			}
		}
		lx.sawToken = true
		return tok
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// SetRange ограничивает лексер полуоткрытым диапазоном [start, limit)
// внутри файла. Используется для вложенного разбора, например выражений
// внутри f-строк: такой лексер не меряет отступы и не синтезирует
// Newline в конце.
func (lx *Lexer) SetRange(start, limit uint32) {
	lx.cursor.Off = start
	lx.cursor.Limit = limit
	lx.look = nil
	lx.pending = lx.pending[:0]
	lx.atLineStart = false
	lx.sawToken = false
}

// finishEOF drains the layout state one token per call: a trailing
// Newline when the last line had no terminator, then one Dedent per
// still-open block, then EOF forever.
func (lx *Lexer) finishEOF() token.Token {
	sp := lx.emptySpan()
	if lx.sawToken {
		lx.sawToken = false
		return token.Token{Kind: token.Newline, Span: sp}
	}
	if len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		return token.Token{Kind: token.Dedent, Span: sp}
	}
	return token.Token{Kind: token.EOF, Span: sp}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
