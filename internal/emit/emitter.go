package emit

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/infer"
	"pycc/internal/source"
)

// Options настраивают эмиттер.
type Options struct {
	// Reporter получает все конверсионные диагностики. Может быть nil.
	Reporter diag.Reporter
}

// Emitter превращает узлы синтаксического дерева в текст целевого
// диалекта. Политика конструкций общая для обоих профилей; всё
// диалектное уходит в Profile. Побочный эффект — мутация окружения
// при обработке объявлений.
type Emitter struct {
	prof Profile
	eng  *infer.Engine
	opts Options
}

func New(prof Profile, eng *infer.Engine, opts Options) *Emitter {
	return &Emitter{prof: prof, eng: eng, opts: opts}
}

// Profile возвращает активный целевой профиль.
func (em *Emitter) Profile() Profile { return em.prof }

// Engine возвращает движок вывода типов эмиттера.
func (em *Emitter) Engine() *infer.Engine { return em.eng }

// Reporter возвращает приёмник диагностик эмиттера. Может быть nil.
func (em *Emitter) Reporter() diag.Reporter { return em.opts.Reporter }

func (em *Emitter) env() *infer.Env { return em.eng.Env() }

func (em *Emitter) warn(code diag.Code, sp source.Span, msg string) {
	diag.ReportWarning(em.opts.Reporter, code, sp, msg)
}

// unsupportedStmt — мягкий отказ: ровно одна диагностика с именем
// конструкции и ровно один комментарий-заглушка. Соседи продолжают
// обрабатываться как ни в чём не бывало.
func (em *Emitter) unsupportedStmt(s *ast.Stmt) []string {
	name := s.Kind.String()
	em.warn(diag.CnvUnsupportedConstruct, s.Span, "unsupported construct: "+name)
	return []string{"// unsupported: " + name}
}

func (em *Emitter) unsupportedExpr(e *ast.Expr) string {
	name := e.Kind.String()
	em.warn(diag.CnvUnsupportedConstruct, e.Span, "unsupported construct: "+name)
	return "/* unsupported: " + name + " */"
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		out[i] = "    " + ln
	}
	return out
}
