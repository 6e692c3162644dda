package emit

import (
	"fmt"
	"strings"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/infer"
	"pycc/internal/types"
)

// EntryPoint — имя функции, которая всегда становится точкой входа
// целевой программы и возвращает int независимо от выведенного тега.
const EntryPoint = "main"

// Func эмитит определение функции: параметры типируются лукахед-сканом
// тела, тег возврата — первый return со значением в предпорядке.
func (em *Emitter) Func(fn *ast.Stmt) []string {
	if fn.Async {
		em.warn(diag.CnvUnsupportedConstruct, fn.Span,
			"unsupported construct: coroutine function definition")
		return []string{"// unsupported: coroutine function '" + fn.Name + "'"}
	}
	if fn.Decorated {
		em.warn(diag.CnvUnsupportedConstruct, fn.Span, "unsupported construct: decorator")
	}

	tags := em.eng.InferParams(fn)
	params := make([]string, 0, len(fn.Params))
	bindings := make([]infer.Binding, 0, len(fn.Params)*2)
	for i, p := range fn.Params {
		t := concreteTag(tags[i])
		params = append(params, em.prof.TypeName(t)+" "+p.Name)
		bindings = append(bindings, infer.Binding{Name: p.Name, Type: t})
		if t.Kind == types.KindArray && em.prof.HasCompanionSize() {
			size := em.prof.SizeName(p.Name)
			params = append(params, "int "+size)
			bindings = append(bindings, infer.Binding{Name: size, Type: types.Int})
		}
	}

	// тег возврата выводится в скоупе параметров: первый return со
	// значением часто возвращает параметр
	em.env().Enter(bindings)
	retT := concreteTag(em.eng.InferReturn(fn))
	if fn.Name == EntryPoint {
		retT = types.Int
	}
	body := em.Stmts(fn.Body)
	em.env().Exit()

	// return внутри ветви не считается нормальным выходом: точка
	// входа без прямого return всегда завершается кодом 0
	if fn.Name == EntryPoint && !infer.HasDirectReturn(fn.Body) {
		body = append(body, "return 0;")
	}

	lines := []string{fmt.Sprintf("%s %s(%s) {",
		em.prof.TypeName(retT), fn.Name, strings.Join(params, ", "))}
	lines = append(lines, indent(body)...)
	if fn.Decorated {
		lines = append([]string{"// unsupported: decorator"}, lines...)
	}
	return append(lines, "}")
}

// concreteTag приземляет нерешённые формы на сигнатурной границе:
// generic-типов у целевых диалектов нет, int — документированный фолбэк.
func concreteTag(t *types.Type) *types.Type {
	switch {
	case t == nil || t.IsUnresolved():
		return types.Int
	case t.Kind == types.KindArray && t.Elem.IsUnresolved():
		return types.MakeArray(types.Int)
	case t.Kind == types.KindMap && (t.Key.IsUnresolved() || t.Value.IsUnresolved()):
		return types.MakeMap(concreteKey(t), concreteValue(t))
	}
	return t
}

// Class понижает определение класса в агрегат диалекта: члены
// собираются из прямых присваиваний в теле, методы — из определений
// функций; конструктор никогда не эмитится как обычный метод.
func (em *Emitter) Class(cls *ast.Stmt) []string {
	var members []Field
	for _, item := range cls.Body {
		if item.Kind != ast.StmtAssign || len(item.Targets) != 1 || item.Targets[0].Kind != ast.ExprIdent {
			continue
		}
		t := em.eng.TypeOf(item.Value)
		if t.IsUnresolved() {
			t = types.Int
		}
		members = append(members, Field{Name: item.Targets[0].Name, Type: t})
	}

	var methods []Method
	for _, item := range cls.Body {
		if item.Kind != ast.StmtFuncDef || item.Name == "__init__" {
			continue
		}
		tags := em.eng.InferParams(item)
		params := make([]Field, 0, len(item.Params))
		bindings := make([]infer.Binding, 0, len(item.Params))
		for i, p := range item.Params {
			if p.Name == "self" {
				continue
			}
			t := concreteTag(tags[i])
			params = append(params, Field{Name: p.Name, Type: t})
			bindings = append(bindings, infer.Binding{Name: p.Name, Type: t})
		}

		em.env().Enter(bindings)
		ret := concreteTag(em.eng.InferReturn(item))
		body := em.Stmts(item.Body)
		em.env().Exit()

		methods = append(methods, Method{
			Name:   item.Name,
			Ret:    ret,
			Params: params,
			Body:   body,
		})
	}

	if em.prof.HasCompanionSize() {
		em.warn(diag.CnvClassLowering, cls.Span,
			"class '"+cls.Name+"' lowered to a struct with function pointers; bind them manually")
	}

	// конструктор класса становится известной сигнатурой, чтобы
	// `p = Point(...)` вывелся в структурный тег
	structMembers := make([]types.Member, len(members))
	for i, m := range members {
		structMembers[i] = types.Member{Name: m.Name, Type: m.Type}
	}
	structT := types.MakeStruct(cls.Name, structMembers)
	em.eng.Registry().Register(infer.Signature{Name: cls.Name, Return: structT})

	return em.prof.Class(cls.Name, members, methods)
}
