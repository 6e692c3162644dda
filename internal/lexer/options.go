package lexer

import (
	"pycc/internal/diag"
	"pycc/internal/source"
)

// Options настраивают лексер. Reporter может быть nil — тогда
// диагностики игнорируем (но продолжаем лексить).
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg)
}
