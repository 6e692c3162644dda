package emit

import (
	"fmt"
	"strconv"
	"strings"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/types"
)

func (em *Emitter) call(e *ast.Expr) string {
	callee := e.Target
	if callee == nil {
		return em.unsupportedExpr(e)
	}

	if callee.Kind == ast.ExprAttribute {
		return em.methodCall(e, callee)
	}
	if callee.Kind != ast.ExprIdent {
		em.warn(diag.CnvUnsupportedConstruct, e.Span, "unsupported construct: computed call target")
		return "/* unsupported: computed call target */"
	}

	switch callee.Name {
	case "len":
		return em.lenCall(e)
	case "range":
		em.warn(diag.CnvUnsupportedConstruct, e.Span,
			"unsupported construct: range() outside a for-loop header")
		return "/* unsupported: range() outside a for-loop header */"
	case "str":
		if len(e.Args) == 1 {
			return em.strCall(e.Args[0])
		}
	case "int", "float", "bool":
		if len(e.Args) == 1 {
			return em.castCall(callee.Name, e.Args[0])
		}
	}

	if len(e.Keywords) > 0 {
		em.warn(diag.CnvUnsupportedConstruct, e.Span, "unsupported construct: keyword argument")
	}
	return fmt.Sprintf("%s(%s)", callee.Name, strings.Join(em.callArgs(e.Args), ", "))
}

// callArgs эмитит аргументы вызова; под C-подобным профилем массивный
// аргумент тянет за собой спутниковую длину: имя — свою `_size`,
// литерал — собственный размер.
func (em *Emitter) callArgs(args []*ast.Expr) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		text := em.expr(a)
		out = append(out, text)
		if !em.prof.HasCompanionSize() {
			continue
		}
		switch {
		case a.Kind == ast.ExprIdent && em.eng.TypeOf(a).Kind == types.KindArray:
			out = append(out, em.prof.SizeName(a.Name))
		case a.Kind == ast.ExprList:
			out = append(out, strconv.Itoa(len(a.Elems)))
		}
	}
	return out
}

func (em *Emitter) lenCall(e *ast.Expr) string {
	if len(e.Args) != 1 {
		em.warn(diag.CnvLenFallback, e.Span, "len() expects exactly one argument")
		return em.prof.LengthFallback("0")
	}
	arg := e.Args[0]
	if arg.Kind == ast.ExprIdent {
		if text, ok := em.prof.Length(arg.Name, em.eng.TypeOf(arg)); ok {
			return text
		}
	}
	em.warn(diag.CnvLenFallback, e.Span,
		"len() on an operand of unknown shape; emitting a best-effort size")
	return em.prof.LengthFallback(em.expr(arg))
}

func (em *Emitter) strCall(arg *ast.Expr) string {
	text := em.expr(arg)
	k := em.eng.TypeOf(arg).Kind
	if k == types.KindText {
		return text
	}
	promoted, _ := em.prof.PromoteForConcat(text, k)
	return promoted
}

func (em *Emitter) castCall(name string, arg *ast.Expr) string {
	target := map[string]*types.Type{"int": types.Int, "float": types.Float, "bool": types.Bool}[name]
	return fmt.Sprintf("(%s)(%s)", em.prof.TypeName(target), em.expr(arg))
}

// methodCall отображает вызов метода на документированный эквивалент
// диалекта; приближённые отображения помечаются диагностикой.
func (em *Emitter) methodCall(e *ast.Expr, callee *ast.Expr) string {
	recvT := em.eng.TypeOf(callee.Target)
	recv := em.expr(callee.Target)
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = em.expr(a)
	}

	switch recvT.Kind {
	case types.KindText:
		if text, ok := em.prof.TextMethod(recv, callee.Name, args); ok {
			em.warn(diag.CnvTextMethod, e.Span,
				"string method '"+callee.Name+"' mapped approximately")
			return text
		}
	case types.KindArray:
		if text, ok := em.prof.ArrayMethod(recv, callee.Name, args); ok {
			if em.prof.HasCompanionSize() {
				em.warn(diag.CnvListMethod, e.Span,
					"list method '"+callee.Name+"' needs a helper implementation")
			}
			return text
		}
	}

	em.warn(diag.CnvUnsupportedConstruct, e.Span,
		"unsupported construct: method call '"+callee.Name+"'")
	return "/* unsupported: method call '" + callee.Name + "' */"
}

// printCall собирает печать: строковые литералы уходят как есть,
// остальные аргументы форматируются по выведенному тегу; end=""
// подавляет завершающий перевод строки.
func (em *Emitter) printCall(e *ast.Expr) string {
	args := make([]PrintArg, 0, len(e.Args))
	for _, a := range e.Args {
		if a.Kind == ast.ExprStringLit {
			args = append(args, PrintArg{Text: em.prof.StringLit(a.Str), IsLit: true, Kind: types.KindText})
			continue
		}
		args = append(args, PrintArg{Text: em.expr(a), Kind: em.eng.TypeOf(a).Kind})
	}

	newline := true
	for _, kw := range e.Keywords {
		if kw.Name == "end" && kw.Value != nil && kw.Value.Kind == ast.ExprStringLit && kw.Value.Str == "" {
			newline = false
			continue
		}
		em.warn(diag.CnvUnsupportedConstruct, e.Span,
			"unsupported construct: print keyword '"+kw.Name+"'")
	}
	return em.prof.Print(args, newline)
}
