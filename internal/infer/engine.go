package infer

import (
	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/types"
)

// Options настраивают движок вывода под целевой профиль.
type Options struct {
	// UnknownCall — тег результата вызова неизвестной функции:
	// int у C-подобного профиля, unresolved у C++-подобного.
	UnknownCall *types.Type
	// Reporter получает Ambiguous-диагностики (неизвестное имя,
	// неизвестный вызов). Может быть nil.
	Reporter diag.Reporter
}

// Engine выводит тег типа для любого выражения. Никогда не падает:
// неразрешимые случаи дают Unresolved либо документированный фолбэк.
type Engine struct {
	env  *Env
	reg  *Registry
	opts Options
}

func New(env *Env, reg *Registry, opts Options) *Engine {
	if opts.UnknownCall == nil {
		opts.UnknownCall = types.Int
	}
	return &Engine{env: env, reg: reg, opts: opts}
}

// Env возвращает активное окружение движка.
func (in *Engine) Env() *Env { return in.env }

// Registry возвращает реестр сигнатур движка.
func (in *Engine) Registry() *Registry { return in.reg }

// silent — копия движка без репортера для чистых сканов-заглядываний
// (типы параметров, тип возврата): диагностики всплывут при настоящей
// эмиссии соответствующего statement.
func (in *Engine) silent() *Engine {
	return &Engine{env: in.env, reg: in.reg, opts: Options{UnknownCall: in.opts.UnknownCall}}
}

// TypeOf возвращает ровно один тег для выражения, по правилам в
// порядке приоритета: литералы, привязанные имена, реестр вызовов,
// коллекции по первому элементу, решётка продвижения, индексация.
func (in *Engine) TypeOf(e *ast.Expr) *types.Type {
	if e == nil {
		return types.Unresolved
	}
	switch e.Kind {
	case ast.ExprIntLit:
		return types.Int
	case ast.ExprFloatLit:
		return types.Float
	case ast.ExprBoolLit:
		return types.Bool
	case ast.ExprStringLit, ast.ExprFString:
		return types.Text
	case ast.ExprNoneLit:
		return types.Void

	case ast.ExprIdent:
		if t, ok := in.env.Lookup(e.Name); ok {
			return t
		}
		diag.ReportWarning(in.opts.Reporter, diag.CnvUnboundName, e.Span,
			"name '"+e.Name+"' is not bound; assuming int")
		return types.Int

	case ast.ExprCall:
		return in.typeOfCall(e)

	case ast.ExprList, ast.ExprSet, ast.ExprTuple:
		if len(e.Elems) == 0 {
			return types.MakeArray(types.Unresolved)
		}
		return types.MakeArray(in.TypeOf(e.Elems[0]))

	case ast.ExprDict:
		if len(e.Keys) == 0 {
			return types.MakeMap(types.Unresolved, types.Unresolved)
		}
		return types.MakeMap(in.TypeOf(e.Keys[0]), in.TypeOf(e.Values[0]))

	case ast.ExprBinary:
		return in.typeOfBinary(e)

	case ast.ExprUnary:
		switch e.Op {
		case ast.OpNot:
			return types.Bool
		case ast.OpInvert:
			return types.Int
		default:
			return in.TypeOf(e.Right)
		}

	case ast.ExprBoolOp, ast.ExprCompare:
		return types.Bool

	case ast.ExprIndex:
		return in.TypeOf(e.Target).ElemOf()

	case ast.ExprSlice:
		// срез сохраняет тип контейнера: срез текста — текст
		return in.TypeOf(e.Target)

	case ast.ExprTernary:
		return types.Promote(in.TypeOf(e.Left), in.TypeOf(e.Else))

	case ast.ExprAttribute:
		return in.typeOfAttribute(e)

	default:
		// lambda, comprehensions, yield, await, starred — конвертация
		// отвергает их раньше, чем тип понадобится
		return types.Unresolved
	}
}

func (in *Engine) typeOfCall(e *ast.Expr) *types.Type {
	if callee := e.Target; callee != nil && callee.Kind == ast.ExprIdent {
		if sig, ok := in.reg.Lookup(callee.Name); ok {
			return sig.Return
		}
		diag.ReportWarning(in.opts.Reporter, diag.CnvUnknownCallResult, e.Span,
			"call to unknown function '"+callee.Name+"'; assuming "+in.opts.UnknownCall.String())
	} else {
		diag.ReportWarning(in.opts.Reporter, diag.CnvUnknownCallResult, e.Span,
			"cannot resolve call result type; assuming "+in.opts.UnknownCall.String())
	}
	return in.opts.UnknownCall
}

func (in *Engine) typeOfBinary(e *ast.Expr) *types.Type {
	left := in.TypeOf(e.Left)
	right := in.TypeOf(e.Right)
	switch e.Op {
	case ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor, ast.OpShl, ast.OpShr, ast.OpFloorDiv:
		return types.Int
	default:
		return types.Promote(left, right)
	}
}

func (in *Engine) typeOfAttribute(e *ast.Expr) *types.Type {
	recv := in.TypeOf(e.Target)
	if recv.Kind == types.KindStruct {
		for _, m := range recv.Members {
			if m.Name == e.Name {
				return m.Type
			}
		}
	}
	return types.Int
}
