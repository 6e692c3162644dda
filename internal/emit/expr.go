package emit

import (
	"fmt"
	"strconv"
	"strings"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/types"
)

func (em *Emitter) expr(e *ast.Expr) string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ast.ExprIdent:
		return e.Name
	case ast.ExprIntLit:
		return strconv.FormatInt(e.Int, 10)
	case ast.ExprFloatLit:
		return formatFloat(e.Float)
	case ast.ExprStringLit:
		return em.prof.StringLit(e.Str)
	case ast.ExprBoolLit:
		return em.prof.BoolLit(e.Bool)
	case ast.ExprNoneLit:
		return em.prof.NullLit()
	case ast.ExprFString:
		return em.fstring(e)
	case ast.ExprList, ast.ExprSet:
		return em.arrayLit(e)
	case ast.ExprDict:
		return em.dictLit(e)
	case ast.ExprBinary:
		return em.binary(e)
	case ast.ExprUnary:
		return em.unary(e)
	case ast.ExprBoolOp:
		return em.boolOp(e)
	case ast.ExprCompare:
		return em.compare(e)
	case ast.ExprCall:
		return em.call(e)
	case ast.ExprIndex:
		return em.index(e)
	case ast.ExprSlice:
		return em.slice(e)
	case ast.ExprAttribute:
		return em.expr(e.Target) + "." + e.Name
	case ast.ExprTernary:
		return fmt.Sprintf("(%s ? %s : %s)",
			em.expr(e.Cond), em.expr(e.Left), em.expr(e.Else))
	default:
		// lambda, comprehensions, generator, yield, await, starred
		return em.unsupportedExpr(e)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (em *Emitter) fstring(e *ast.Expr) string {
	segs := make([]Segment, 0, len(e.Parts))
	interpolated := false
	for _, p := range e.Parts {
		if p.Expr == nil {
			segs = append(segs, Segment{Lit: p.Lit})
			continue
		}
		interpolated = true
		segs = append(segs, Segment{
			Expr: em.expr(p.Expr),
			Kind: em.eng.TypeOf(p.Expr).Kind,
		})
	}
	if interpolated && em.prof.HasCompanionSize() {
		em.warn(diag.CnvFStringBuffer, e.Span,
			"interpolated string needs a format_string helper and manual deallocation")
	}
	return em.prof.FString(segs)
}

func (em *Emitter) arrayLit(e *ast.Expr) string {
	elems := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		elems[i] = em.expr(el)
	}
	return em.prof.ArrayLit(concreteElem(em.eng.TypeOf(e)), elems)
}

func (em *Emitter) dictLit(e *ast.Expr) string {
	keys := make([]string, len(e.Keys))
	vals := make([]string, len(e.Values))
	for i := range e.Keys {
		keys[i] = em.expr(e.Keys[i])
		vals[i] = em.expr(e.Values[i])
	}
	t := em.eng.TypeOf(e)
	if em.prof.HasCompanionSize() {
		em.warn(diag.CnvDictAsStruct, e.Span, "dictionary literal becomes a struct initializer")
	}
	return em.prof.DictLit(concreteKey(t), concreteValue(t), keys, vals)
}

func (em *Emitter) binary(e *ast.Expr) string {
	if e.Op == ast.OpPow {
		em.warn(diag.CnvPowerFloat, e.Span, "power operator converts to pow(); result is floating point")
		return fmt.Sprintf("pow(%s, %s)", em.expr(e.Left), em.expr(e.Right))
	}

	leftT := em.eng.TypeOf(e.Left)
	rightT := em.eng.TypeOf(e.Right)
	if e.Op == ast.OpAdd && (leftT.IsTextual() || rightT.IsTextual()) {
		return em.concat(e, leftT, rightT)
	}

	op := e.Op.String()
	if e.Op == ast.OpFloorDiv {
		// целочисленное деление целевого диалекта уже усечённое
		op = "/"
	}
	return fmt.Sprintf("(%s %s %s)", em.expr(e.Left), op, em.expr(e.Right))
}

// concat — текстовая конкатенация: каждый операнд поднимается до
// текста (одиночный символ из индексации — явно), затем профиль
// решает, strcat это или нативный плюс.
func (em *Emitter) concat(e *ast.Expr, leftT, rightT *types.Type) string {
	left, lok := em.prof.PromoteForConcat(em.expr(e.Left), leftT.Kind)
	right, rok := em.prof.PromoteForConcat(em.expr(e.Right), rightT.Kind)
	if !lok || !rok {
		em.warn(diag.CnvNonTextConcat, e.Span,
			"non-text operand converted to text for concatenation")
	}
	if em.prof.HasCompanionSize() {
		em.warn(diag.CnvTextConcatAlloc, e.Span,
			"text concatenation allocates; free the result manually")
	}
	return em.prof.TextConcat(left, right)
}

func (em *Emitter) unary(e *ast.Expr) string {
	operand := em.expr(e.Right)
	switch e.Op {
	case ast.OpNot:
		return "(!" + operand + ")"
	case ast.OpUSub:
		return "(-" + operand + ")"
	case ast.OpUAdd:
		return "(+" + operand + ")"
	case ast.OpInvert:
		return "(~" + operand + ")"
	default:
		return operand
	}
}

func (em *Emitter) boolOp(e *ast.Expr) string {
	op := " && "
	if e.Op == ast.OpOr {
		op = " || "
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = em.expr(a)
	}
	return "(" + strings.Join(parts, op) + ")"
}

func (em *Emitter) compare(e *ast.Expr) string {
	if len(e.Ops) != 1 || len(e.Comparators) != 1 {
		em.warn(diag.CnvComplexCompare, e.Span, "chained comparison is not supported")
		return "/* unsupported: chained comparison */"
	}
	left := em.expr(e.Left)
	right := em.expr(e.Comparators[0])
	op := e.Ops[0]

	switch op {
	case ast.OpIn, ast.OpNotIn:
		em.warn(diag.CnvMembershipTest, e.Span,
			"membership test converts to a contains() helper")
		if op == ast.OpNotIn {
			return fmt.Sprintf("!contains(%s, %s)", right, left)
		}
		return fmt.Sprintf("contains(%s, %s)", right, left)
	case ast.OpIs, ast.OpIsNot:
		em.warn(diag.CnvIdentityCompare, e.Span,
			"identity comparison converts to value comparison")
		if op == ast.OpIsNot {
			op = ast.OpNotEq
		} else {
			op = ast.OpEq
		}
	}

	leftT := em.eng.TypeOf(e.Left)
	rightT := em.eng.TypeOf(e.Comparators[0])
	if leftT.Kind == types.KindText || rightT.Kind == types.KindText {
		return em.prof.TextCompare(left, op.String(), right)
	}
	return fmt.Sprintf("(%s %s %s)", left, op, right)
}

func (em *Emitter) index(e *ast.Expr) string {
	if e.Index != nil && e.Index.Kind == ast.ExprTuple {
		em.warn(diag.CnvUnsupportedConstruct, e.Span, "unsupported construct: tuple subscript")
		return "/* unsupported: tuple subscript */"
	}
	return em.expr(e.Target) + "[" + em.expr(e.Index) + "]"
}

func (em *Emitter) slice(e *ast.Expr) string {
	recvT := em.eng.TypeOf(e.Target)
	recv := em.expr(e.Target)

	low := "0"
	if e.Lower != nil {
		low = em.expr(e.Lower)
	}
	high, ok := em.prof.Length(recv, recvT)
	if !ok {
		high = "0"
	}
	if e.Upper != nil {
		high = em.expr(e.Upper)
	}
	step := "1"
	if e.Step != nil {
		step = em.expr(e.Step)
	}

	em.warn(diag.CnvSliceCopy, e.Span, "slicing copies the data; the copy needs manual management")
	if recvT.Kind == types.KindText {
		return em.prof.TextSlice(recv, low, high)
	}
	return em.prof.ArraySlice(recv, concreteElem(recvT), low, high, step)
}
