package emit

import (
	"fmt"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/infer"
	"pycc/internal/types"
)

// Stmts эмитит последовательность statement'ов одним плоским списком
// строк. Вложенность блоков набирается отступами на стороне вызова.
func (em *Emitter) Stmts(body []*ast.Stmt) []string {
	var lines []string
	for _, s := range body {
		lines = append(lines, em.stmt(s)...)
	}
	return lines
}

func (em *Emitter) stmt(s *ast.Stmt) []string {
	if s == nil {
		return nil
	}
	if s.Async {
		em.warn(diag.CnvUnsupportedConstruct, s.Span, "unsupported construct: coroutine "+s.Kind.String())
		return []string{"// unsupported: coroutine " + s.Kind.String()}
	}
	switch s.Kind {
	case ast.StmtExpr:
		return em.exprStmt(s)
	case ast.StmtAssign:
		return em.assign(s)
	case ast.StmtAugAssign:
		return em.augAssign(s)
	case ast.StmtAnnAssign:
		return em.annAssign(s)
	case ast.StmtIf:
		return em.ifStmt(s)
	case ast.StmtWhile:
		return em.whileStmt(s)
	case ast.StmtFor:
		return em.forStmt(s)
	case ast.StmtReturn:
		if s.Expr == nil {
			return []string{"return;"}
		}
		return []string{"return " + em.expr(s.Expr) + ";"}
	case ast.StmtPass:
		return []string{";"}
	case ast.StmtBreak:
		return []string{"break;"}
	case ast.StmtContinue:
		return []string{"continue;"}
	default:
		// def/class внутри тела, try, with, raise, assert, del,
		// global/nonlocal, import — всё деградирует в заглушку
		return em.unsupportedStmt(s)
	}
}

func (em *Emitter) exprStmt(s *ast.Stmt) []string {
	e := s.Expr
	if e != nil && e.Kind == ast.ExprCall {
		if callee := e.Target; callee != nil && callee.Kind == ast.ExprIdent && callee.Name == "print" {
			return []string{em.printCall(e)}
		}
		return []string{em.expr(e) + ";"}
	}
	if e != nil && e.Kind == ast.ExprStringLit {
		// докстрока в позиции statement следа не оставляет
		return nil
	}
	return []string{em.expr(e) + ";"}
}

func (em *Emitter) assign(s *ast.Stmt) []string {
	if len(s.Targets) != 1 {
		em.warn(diag.CnvMultipleTargets, s.Span, "multiple assignment targets are not supported")
		return []string{"// unsupported: multiple assignment targets"}
	}
	target := s.Targets[0]
	switch target.Kind {
	case ast.ExprIdent:
		return em.assignIdent(target.Name, s)
	case ast.ExprTuple:
		return em.assignTuple(target, s)
	case ast.ExprIndex:
		return []string{em.expr(target) + " = " + em.expr(s.Value) + ";"}
	case ast.ExprAttribute:
		return []string{em.expr(target) + " = " + em.expr(s.Value) + ";"}
	default:
		em.warn(diag.CnvComplexTarget, target.Span, "unsupported assignment target: "+target.Kind.String())
		return []string{"// unsupported: assignment to " + target.Kind.String()}
	}
}

// assignIdent — объявление при первой привязке имени в текущем скоупе,
// плоское присваивание при повторной. Несовместимый повторный тип не
// применяется: привязка сохраняет прежний тег.
func (em *Emitter) assignIdent(name string, s *ast.Stmt) []string {
	valueT := em.eng.TypeOf(s.Value)
	if !em.env().BoundInCurrent(name) {
		em.env().Declare(name, valueT)
		return em.declare(name, valueT, s.Value)
	}

	bound, _ := em.env().Lookup(name)
	if !assignable(bound, valueT) {
		em.warn(diag.CnvTypeMismatch, s.Span, fmt.Sprintf(
			"cannot re-assign '%s' (%s) with incompatible %s value", name, bound, valueT))
		return []string{fmt.Sprintf("// unsupported: %s re-assignment of '%s'", valueT, name)}
	}
	if bound.Kind == types.KindText && s.Value.Kind == ast.ExprStringLit && em.prof.HasCompanionSize() {
		em.warn(diag.CnvTextRealloc, s.Span,
			"re-assigning text variable '"+name+"' leaks the previous buffer; free it manually")
		return []string{em.prof.TextAssign(name, em.expr(s.Value))}
	}
	return []string{name + " = " + em.expr(s.Value) + ";"}
}

// declare рендерит объявление новой привязки по форме значения.
func (em *Emitter) declare(name string, t *types.Type, value *ast.Expr) []string {
	switch value.Kind {
	case ast.ExprList, ast.ExprSet:
		elems := make([]string, len(value.Elems))
		for i, el := range value.Elems {
			elems[i] = em.expr(el)
		}
		return em.prof.ArrayDecl(concreteElem(t), name, elems)

	case ast.ExprDict:
		keys := make([]string, len(value.Keys))
		vals := make([]string, len(value.Values))
		for i := range value.Keys {
			keys[i] = em.expr(value.Keys[i])
			vals[i] = em.expr(value.Values[i])
		}
		if em.prof.HasCompanionSize() {
			em.warn(diag.CnvDictAsStruct, value.Span,
				"dictionary '"+name+"' becomes a struct initializer; dynamic keys are lost")
		}
		return em.prof.DictDecl(concreteKey(t), concreteValue(t), name, keys, vals)

	case ast.ExprStringLit:
		return []string{em.prof.TextDecl(name, em.expr(value))}

	default:
		if t.IsUnresolved() {
			t = types.Int
		}
		return []string{fmt.Sprintf("%s %s = %s;", em.prof.TypeName(t), name, em.expr(value))}
	}
}

// assignTuple — двухэлементное tuple-в-tuple присваивание эмитится как
// обмен через одну временную привязку: порядок чтений безопасен даже
// когда обе стороны делят хранилище. Всё остальное — мягкий отказ.
func (em *Emitter) assignTuple(target *ast.Expr, s *ast.Stmt) []string {
	rhs := s.Value
	if len(target.Elems) != 2 || rhs == nil || rhs.Kind != ast.ExprTuple || len(rhs.Elems) != 2 {
		em.warn(diag.CnvMultipleTargets, s.Span, "complex multi-target destructuring is not supported")
		return []string{"// unsupported: complex destructuring"}
	}
	tmpT := em.eng.TypeOf(rhs.Elems[0])
	if tmpT.IsUnresolved() {
		tmpT = types.Int
	}
	l0, l1 := em.expr(target.Elems[0]), em.expr(target.Elems[1])
	r0, r1 := em.expr(rhs.Elems[0]), em.expr(rhs.Elems[1])
	return []string{
		"{",
		fmt.Sprintf("    %s __tmp = %s;", em.prof.TypeName(tmpT), r0),
		fmt.Sprintf("    %s = %s;", l1, r1),
		fmt.Sprintf("    %s = __tmp;", l0),
		"}",
	}
}

func (em *Emitter) augAssign(s *ast.Stmt) []string {
	target := em.expr(s.Target)
	value := em.expr(s.Value)
	switch s.Op {
	case ast.OpPow:
		em.warn(diag.CnvPowerFloat, s.Span, "augmented power converts to pow(); result is floating point")
		return []string{fmt.Sprintf("%s = pow(%s, %s);", target, target, value)}
	case ast.OpFloorDiv:
		return []string{fmt.Sprintf("%s /= %s;", target, value)}
	default:
		return []string{fmt.Sprintf("%s %s= %s;", target, s.Op, value)}
	}
}

func (em *Emitter) annAssign(s *ast.Stmt) []string {
	name := s.Target.Name
	t, ok := infer.AnnotationType(s.Expr)
	if !ok {
		t = em.eng.TypeOf(s.Value)
	}
	if s.Value == nil {
		em.env().Declare(name, t)
		if t.IsUnresolved() {
			t = types.Int
		}
		return []string{fmt.Sprintf("%s %s;", em.prof.TypeName(t), name)}
	}
	if !em.env().BoundInCurrent(name) {
		em.env().Declare(name, t)
		return em.declare(name, t, s.Value)
	}
	return []string{name + " = " + em.expr(s.Value) + ";"}
}

func (em *Emitter) ifStmt(s *ast.Stmt) []string {
	lines := []string{"if (" + em.expr(s.Expr) + ") {"}
	lines = append(lines, indent(em.Stmts(s.Body))...)
	els := s.Else
	for len(els) == 1 && els[0].Kind == ast.StmtIf {
		next := els[0]
		lines = append(lines, "} else if ("+em.expr(next.Expr)+") {")
		lines = append(lines, indent(em.Stmts(next.Body))...)
		els = next.Else
	}
	if len(els) > 0 {
		lines = append(lines, "} else {")
		lines = append(lines, indent(em.Stmts(els))...)
	}
	return append(lines, "}")
}

func (em *Emitter) whileStmt(s *ast.Stmt) []string {
	if len(s.Else) > 0 {
		em.warn(diag.CnvUnsupportedConstruct, s.Span, "unsupported construct: while-else clause")
	}
	lines := []string{"while (" + em.expr(s.Expr) + ") {"}
	lines = append(lines, indent(em.Stmts(s.Body))...)
	return append(lines, "}")
}

func (em *Emitter) forStmt(s *ast.Stmt) []string {
	if len(s.Else) > 0 {
		em.warn(diag.CnvUnsupportedConstruct, s.Span, "unsupported construct: for-else clause")
	}
	if s.Target == nil || s.Target.Kind != ast.ExprIdent {
		em.warn(diag.CnvComplexLoop, s.Span, "unsupported for-loop target")
		return []string{"// unsupported: for-loop target"}
	}
	target := s.Target.Name

	if isRangeCall(s.Iter) {
		return em.rangeFor(target, s)
	}

	iterT := em.eng.TypeOf(s.Iter)
	switch iterT.Kind {
	case types.KindText:
		if s.Iter.Kind != ast.ExprIdent {
			break
		}
		em.env().Declare(target, types.Char)
		header, prelude := em.prof.TextFor(target, s.Iter.Name)
		return em.loopBody(header, prelude, s.Body)
	case types.KindArray:
		elem := concreteElem(iterT)
		if em.prof.HasCompanionSize() && s.Iter.Kind != ast.ExprIdent {
			// без имени нет спутниковой длины, итерировать нечем
			break
		}
		em.env().Declare(target, elem)
		header, prelude := em.prof.ArrayFor(target, em.expr(s.Iter), elem)
		return em.loopBody(header, prelude, s.Body)
	}

	em.warn(diag.CnvComplexLoop, s.Span, "unsupported for-loop shape over "+iterT.String())
	return []string{"// unsupported: for-loop over " + iterT.String()}
}

func (em *Emitter) loopBody(header, prelude string, body []*ast.Stmt) []string {
	lines := []string{header + " {"}
	if prelude != "" {
		lines = append(lines, "    "+prelude)
	}
	lines = append(lines, indent(em.Stmts(body))...)
	return append(lines, "}")
}

func isRangeCall(e *ast.Expr) bool {
	return e != nil && e.Kind == ast.ExprCall &&
		e.Target != nil && e.Target.Kind == ast.ExprIdent && e.Target.Name == "range"
}

// rangeFor — счётный цикл: одна граница считает от нуля, две — от
// первой, три добавляют шаг в инкремент; граница всегда строгая.
func (em *Emitter) rangeFor(target string, s *ast.Stmt) []string {
	args := s.Iter.Args
	em.env().Declare(target, types.Int)
	var header string
	switch len(args) {
	case 1:
		header = fmt.Sprintf("for (int %s = 0; %s < %s; %s++)",
			target, target, em.expr(args[0]), target)
	case 2:
		header = fmt.Sprintf("for (int %s = %s; %s < %s; %s++)",
			target, em.expr(args[0]), target, em.expr(args[1]), target)
	case 3:
		header = fmt.Sprintf("for (int %s = %s; %s < %s; %s += %s)",
			target, em.expr(args[0]), target, em.expr(args[1]), target, em.expr(args[2]))
	default:
		em.warn(diag.CnvComplexLoop, s.Span, "range() expects one to three arguments")
		return []string{"// unsupported: range arity"}
	}
	return em.loopBody(header, "", s.Body)
}

// assignable — допускает ли привязанный тег присваивание значения с
// тегом src без перепривязки.
func assignable(dst, src *types.Type) bool {
	if dst.IsUnresolved() || src.IsUnresolved() {
		return true
	}
	if dst.Kind == src.Kind {
		return true
	}
	numeric := func(t *types.Type) bool { return t.IsNumeric() || t.Kind == types.KindChar }
	return numeric(dst) && numeric(src)
}

func concreteElem(t *types.Type) *types.Type {
	if t == nil || t.Kind != types.KindArray || t.Elem.IsUnresolved() {
		return types.Int
	}
	return t.Elem
}

func concreteKey(t *types.Type) *types.Type {
	if t == nil || t.Kind != types.KindMap || t.Key.IsUnresolved() {
		return types.Text
	}
	return t.Key
}

func concreteValue(t *types.Type) *types.Type {
	if t == nil || t.Kind != types.KindMap || t.Value.IsUnresolved() {
		return types.Int
	}
	return t.Value
}
