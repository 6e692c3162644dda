package infer

import (
	"pycc/internal/ast"
	"pycc/internal/types"
)

// InferReturn выводит тег возврата функции: тег первого return со
// значением в структурном предпорядке обхода тела (не в порядке
// исполнения), Void — если такого return нет. Скан идёт молчаливой
// копией движка: локальные имена ещё не объявлены, их фолбэки не
// должны давать диагностик здесь.
func (in *Engine) InferReturn(fn *ast.Stmt) *types.Type {
	if fn.Returns != nil {
		if t, ok := AnnotationType(fn.Returns); ok {
			return t
		}
	}
	eng := in.silent()
	result := types.Void
	found := false
	ast.Inspect(fn.Body, func(s *ast.Stmt) bool {
		if found {
			return false
		}
		if s.Kind == ast.StmtReturn && s.Expr != nil {
			result = eng.TypeOf(s.Expr)
			found = true
			return false
		}
		// вложенные определения не дают возврат внешней функции
		return s.Kind != ast.StmtFuncDef && s.Kind != ast.StmtClassDef
	}, nil)
	return result
}

// HasDirectReturn — есть ли return непосредственно среди statements
// верхнего уровня тела (не внутри ветвей). По этому признаку
// добавляется неявный нормальный выход из точки входа.
func HasDirectReturn(body []*ast.Stmt) bool {
	for _, s := range body {
		if s.Kind == ast.StmtReturn {
			return true
		}
	}
	return false
}
