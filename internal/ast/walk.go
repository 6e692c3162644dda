package ast

// Inspect performs a structural pre-order traversal of the statement list,
// calling stmtFn for every statement and exprFn for every expression. Either
// callback may be nil. Returning false from stmtFn skips that statement's
// children; returning false from exprFn skips that expression's children.
//
// The traversal order is structural (declaration order), not control-flow
// order: a return inside a dead branch is still seen before a later return at
// the top level. Inference relies on this for its first-return rule.
func Inspect(body []*Stmt, stmtFn func(*Stmt) bool, exprFn func(*Expr) bool) {
	for _, s := range body {
		inspectStmt(s, stmtFn, exprFn)
	}
}

func inspectStmt(s *Stmt, stmtFn func(*Stmt) bool, exprFn func(*Expr) bool) {
	if s == nil {
		return
	}
	if stmtFn != nil && !stmtFn(s) {
		return
	}

	inspectExpr(s.Expr, exprFn)
	for _, t := range s.Targets {
		inspectExpr(t, exprFn)
	}
	inspectExpr(s.Value, exprFn)
	inspectExpr(s.Target, exprFn)
	inspectExpr(s.Iter, exprFn)
	for _, p := range s.Params {
		inspectExpr(p.Annotation, exprFn)
	}
	inspectExpr(s.Returns, exprFn)

	for _, child := range s.Body {
		inspectStmt(child, stmtFn, exprFn)
	}
	for _, child := range s.Else {
		inspectStmt(child, stmtFn, exprFn)
	}
}

func inspectExpr(e *Expr, exprFn func(*Expr) bool) {
	if e == nil {
		return
	}
	if exprFn != nil && !exprFn(e) {
		return
	}

	inspectExpr(e.Left, exprFn)
	inspectExpr(e.Right, exprFn)
	inspectExpr(e.Target, exprFn)
	inspectExpr(e.Index, exprFn)
	inspectExpr(e.Lower, exprFn)
	inspectExpr(e.Upper, exprFn)
	inspectExpr(e.Step, exprFn)
	for _, a := range e.Args {
		inspectExpr(a, exprFn)
	}
	for _, kw := range e.Keywords {
		inspectExpr(kw.Value, exprFn)
	}
	for _, c := range e.Comparators {
		inspectExpr(c, exprFn)
	}
	for _, el := range e.Elems {
		inspectExpr(el, exprFn)
	}
	for _, k := range e.Keys {
		inspectExpr(k, exprFn)
	}
	for _, v := range e.Values {
		inspectExpr(v, exprFn)
	}
	for _, p := range e.Parts {
		inspectExpr(p.Expr, exprFn)
	}
	inspectExpr(e.Cond, exprFn)
	inspectExpr(e.Else, exprFn)
}
