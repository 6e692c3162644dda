package ast

import (
	"pycc/internal/source"
)

type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIdent
	ExprIntLit
	ExprFloatLit
	ExprStringLit
	ExprBoolLit
	ExprNoneLit
	ExprFString
	ExprList
	ExprTuple
	ExprSet
	ExprDict
	ExprBinary
	ExprUnary
	ExprBoolOp
	ExprCompare
	ExprCall
	ExprIndex
	ExprSlice
	ExprAttribute
	ExprTernary
	ExprLambda
	ExprListComp
	ExprSetComp
	ExprDictComp
	ExprGenerator
	ExprYield
	ExprAwait
	ExprStarred
)

var exprKindNames = map[ExprKind]string{
	ExprInvalid:   "invalid",
	ExprIdent:     "identifier",
	ExprIntLit:    "integer literal",
	ExprFloatLit:  "float literal",
	ExprStringLit: "string literal",
	ExprBoolLit:   "boolean literal",
	ExprNoneLit:   "None literal",
	ExprFString:   "f-string",
	ExprList:      "list literal",
	ExprTuple:     "tuple",
	ExprSet:       "set literal",
	ExprDict:      "dict literal",
	ExprBinary:    "binary expression",
	ExprUnary:     "unary expression",
	ExprBoolOp:    "boolean expression",
	ExprCompare:   "comparison",
	ExprCall:      "call",
	ExprIndex:     "subscript",
	ExprSlice:     "slice",
	ExprAttribute: "attribute access",
	ExprTernary:   "conditional expression",
	ExprLambda:    "lambda",
	ExprListComp:  "list comprehension",
	ExprSetComp:   "set comprehension",
	ExprDictComp:  "dict comprehension",
	ExprGenerator: "generator expression",
	ExprYield:     "yield expression",
	ExprAwait:     "await expression",
	ExprStarred:   "starred expression",
}

func (k ExprKind) String() string {
	if s, ok := exprKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Keyword is a keyword argument at a call site (print(..., end="")).
type Keyword struct {
	Name  string
	Value *Expr
}

// FStringPart is one segment of an f-string: either literal text or an
// interpolated expression.
type FStringPart struct {
	Lit  string // literal segment text (decoded), when Expr is nil
	Expr *Expr  // interpolated expression, when non-nil
}

// Expr is a single expression node. Which payload fields are meaningful
// depends on Kind; everything else stays zero.
type Expr struct {
	Kind ExprKind
	Span source.Span

	Name  string  // ExprIdent; attribute name for ExprAttribute
	Int   int64   // ExprIntLit
	Float float64 // ExprFloatLit
	Str   string  // ExprStringLit (decoded value)
	Bool  bool    // ExprBoolLit

	Op    Op    // ExprBinary, ExprUnary, ExprBoolOp
	Left  *Expr // ExprBinary left; ExprCompare left
	Right *Expr // ExprBinary right; ExprUnary operand

	Target *Expr // ExprCall callee; ExprIndex/ExprSlice/ExprAttribute receiver
	Index  *Expr // ExprIndex subscript

	Lower *Expr // ExprSlice bounds
	Upper *Expr
	Step  *Expr

	Args     []*Expr   // ExprCall positional args; ExprBoolOp operands
	Keywords []Keyword // ExprCall keyword args

	Ops         []Op    // ExprCompare operators (len>1 means chained)
	Comparators []*Expr // ExprCompare right-hand operands

	Elems  []*Expr // ExprList/ExprTuple/ExprSet elements
	Keys   []*Expr // ExprDict keys
	Values []*Expr // ExprDict values

	Parts []FStringPart // ExprFString segments

	Cond *Expr // ExprTernary condition
	Else *Expr // ExprTernary else branch (Left holds the then branch)
}
