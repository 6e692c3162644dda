package driver

import (
	"strings"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/emit"
	"pycc/internal/infer"
)

// Assemble собирает единицу трансляции: преамбула включений, затем
// определения в порядке появления, затем точка входа. Statements
// верхнего уровня (включая тело guard'а `if __name__ == "__main__"`)
// заворачиваются в синтезированный main.
func Assemble(em *emit.Emitter, mod *ast.Module) string {
	defs, top := splitTopLevel(mod.Body)
	registerSignatures(em.Engine(), defs)

	var blocks [][]string
	userMain := false
	for _, d := range defs {
		if d.Kind == ast.StmtClassDef {
			blocks = append(blocks, em.Class(d))
			continue
		}
		if d.Name == emit.EntryPoint {
			userMain = true
		}
		blocks = append(blocks, em.Func(d))
	}

	switch {
	case !userMain:
		blocks = append(blocks, em.Func(&ast.Stmt{
			Kind: ast.StmtFuncDef,
			Name: emit.EntryPoint,
			Body: top,
		}))
	default:
		// точка входа уже определена; guard-вызов main() в целевой
		// программе неявный, остальное повисло бы вне функций
		for _, s := range top {
			if isCallTo(s, emit.EntryPoint) {
				continue
			}
			diag.ReportWarning(em.Reporter(), diag.CnvUnsupportedConstruct, s.Span,
				"top-level statement dropped: entry point is already defined")
		}
	}

	var out []string
	out = append(out, em.Profile().Preamble(usesPrint(mod.Body))...)
	for _, b := range blocks {
		out = append(out, "")
		out = append(out, b...)
	}
	return strings.Join(out, "\n") + "\n"
}

// splitTopLevel отделяет определения от statements верхнего уровня и
// разворачивает guard `if __name__ == "__main__":` в обычный код.
func splitTopLevel(body []*ast.Stmt) (defs, top []*ast.Stmt) {
	for _, s := range body {
		switch {
		case s.Kind == ast.StmtFuncDef || s.Kind == ast.StmtClassDef:
			defs = append(defs, s)
		case isMainGuard(s):
			top = append(top, s.Body...)
		default:
			top = append(top, s)
		}
	}
	return defs, top
}

func isMainGuard(s *ast.Stmt) bool {
	if s.Kind != ast.StmtIf || len(s.Else) > 0 {
		return false
	}
	e := s.Expr
	if e == nil || e.Kind != ast.ExprCompare || len(e.Ops) != 1 || e.Ops[0] != ast.OpEq {
		return false
	}
	left, right := e.Left, e.Comparators[0]
	return left != nil && left.Kind == ast.ExprIdent && left.Name == "__name__" &&
		right != nil && right.Kind == ast.ExprStringLit && right.Str == "__main__"
}

func isCallTo(s *ast.Stmt, name string) bool {
	if s.Kind != ast.StmtExpr || s.Expr == nil || s.Expr.Kind != ast.ExprCall {
		return false
	}
	callee := s.Expr.Target
	return callee != nil && callee.Kind == ast.ExprIdent && callee.Name == name
}

// registerSignatures заводит пользовательские функции в реестр до
// эмиссии, чтобы вызовы до определения (и между функциями) выводились
// по настоящей сигнатуре, а не по фолбэку неизвестного вызова.
func registerSignatures(eng *infer.Engine, defs []*ast.Stmt) {
	for _, d := range defs {
		if d.Kind != ast.StmtFuncDef {
			continue
		}
		tags := eng.InferParams(d)
		bindings := make([]infer.Binding, len(d.Params))
		for i, p := range d.Params {
			bindings[i] = infer.Binding{Name: p.Name, Type: tags[i]}
		}
		eng.Env().Enter(bindings)
		ret := eng.InferReturn(d)
		eng.Env().Exit()
		eng.Registry().Register(infer.Signature{Name: d.Name, Params: tags, Return: ret})
	}
}

func usesPrint(body []*ast.Stmt) bool {
	found := false
	ast.Inspect(body, nil, func(e *ast.Expr) bool {
		if e.Kind == ast.ExprCall && e.Target != nil &&
			e.Target.Kind == ast.ExprIdent && e.Target.Name == "print" {
			found = true
		}
		return !found
	})
	return found
}
