package parser

import (
	"slices"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/lexer"
	"pycc/internal/source"
	"pycc/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer    // поток токенов (Peek/Next)
	fs       *source.FileSet // нужен для вложенного разбора f-строк
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseModule — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
// Возвращает модуль всегда, даже при ошибках: удавшиеся statements
// остаются в Body, остальное пропускается до конца строки.
func ParseModule(fs *source.FileSet, lx *lexer.Lexer, opts Options) *ast.Module {
	p := Parser{
		lx:   lx,
		fs:   fs,
		opts: opts,
	}
	return p.parseModule()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseModule — основной цикл верхнего уровня: пока не EOF — statement.
func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{}
	for !p.at(token.EOF) {
		// осиротевший Dedent после восстановления — просто съедаем
		if p.atOr(token.Newline, token.Dedent, token.Indent) {
			p.advance()
			continue
		}
		stmts, ok := p.parseStatement()
		if !ok {
			p.resyncLine()
			continue
		}
		mod.Body = append(mod.Body, stmts...)
	}
	return mod
}
