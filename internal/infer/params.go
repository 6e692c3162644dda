package infer

import (
	"pycc/internal/ast"
	"pycc/internal/types"
)

// InferParams вычисляет теги параметров функции до обработки тела.
// Аннотированный параметр получает тег из аннотации. Остальные
// сканируются по всему телу в два фиксированных прохода: сначала
// обнаружение индексации (параметр становится массивом/указателем),
// затем строковый проход (параметр, переданный строковой функции
// реестра, становится Text). Text перекрывает массив — это
// задокументированный тай-брейк, а не эвристика.
// Скан — чистая функция тела: повторный запуск даёт тот же результат.
func (in *Engine) InferParams(fn *ast.Stmt) []*types.Type {
	tags := make([]*types.Type, len(fn.Params))
	index := make(map[string]int, len(fn.Params))
	for i, p := range fn.Params {
		tags[i] = types.Int
		index[p.Name] = i
		if p.Annotation != nil {
			if t, ok := AnnotationType(p.Annotation); ok {
				tags[i] = t
				// аннотация фиксирует тег: сканом не перекрывается
				delete(index, p.Name)
			}
		}
	}
	if len(index) == 0 {
		return tags
	}

	// проход 1: индексация
	ast.Inspect(fn.Body, nil, func(e *ast.Expr) bool {
		if e.Kind != ast.ExprIndex && e.Kind != ast.ExprSlice {
			return true
		}
		if t := e.Target; t != nil && t.Kind == ast.ExprIdent {
			if i, ok := index[t.Name]; ok {
				tags[i] = types.MakeArray(types.Unresolved)
			}
		}
		return true
	})

	// проход 2: строковые функции, перекрывает массив
	ast.Inspect(fn.Body, nil, func(e *ast.Expr) bool {
		if e.Kind != ast.ExprCall {
			return true
		}
		callee := e.Target
		if callee == nil || callee.Kind != ast.ExprIdent || !in.reg.IsTextOriented(callee.Name) {
			return true
		}
		for _, arg := range e.Args {
			if arg.Kind == ast.ExprIdent {
				if i, ok := index[arg.Name]; ok {
					tags[i] = types.Text
				}
			}
		}
		return true
	})

	return tags
}

// AnnotationType отображает распознанные аннотации в теги. Незнакомая
// аннотация не фиксирует тип — параметр уходит в скан.
func AnnotationType(a *ast.Expr) (*types.Type, bool) {
	switch a.Kind {
	case ast.ExprIdent:
		switch a.Name {
		case "int":
			return types.Int, true
		case "float":
			return types.Float, true
		case "str":
			return types.Text, true
		case "bool":
			return types.Bool, true
		case "list":
			return types.MakeArray(types.Unresolved), true
		case "dict":
			return types.MakeMap(types.Unresolved, types.Unresolved), true
		case "None":
			return types.Void, true
		}
	case ast.ExprIndex:
		// list[int], dict[str, int]
		if a.Target != nil && a.Target.Kind == ast.ExprIdent {
			switch a.Target.Name {
			case "list":
				if elem, ok := AnnotationType(a.Index); ok {
					return types.MakeArray(elem), true
				}
				return types.MakeArray(types.Unresolved), true
			case "dict":
				if a.Index != nil && a.Index.Kind == ast.ExprTuple && len(a.Index.Elems) == 2 {
					k, okK := AnnotationType(a.Index.Elems[0])
					v, okV := AnnotationType(a.Index.Elems[1])
					if okK && okV {
						return types.MakeMap(k, v), true
					}
				}
				return types.MakeMap(types.Unresolved, types.Unresolved), true
			}
		}
	case ast.ExprNoneLit:
		return types.Void, true
	}
	return nil, false
}
