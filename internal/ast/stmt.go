package ast

import (
	"pycc/internal/source"
)

type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtExpr
	StmtAssign
	StmtAugAssign
	StmtAnnAssign
	StmtIf
	StmtWhile
	StmtFor
	StmtFuncDef
	StmtReturn
	StmtClassDef
	StmtPass
	StmtBreak
	StmtContinue
	StmtGlobal
	StmtNonlocal
	StmtImport
	StmtImportFrom
	StmtWith
	StmtTry
	StmtRaise
	StmtAssert
	StmtDelete
)

var stmtKindNames = map[StmtKind]string{
	StmtInvalid:    "invalid",
	StmtExpr:       "expression statement",
	StmtAssign:     "assignment",
	StmtAugAssign:  "augmented assignment",
	StmtAnnAssign:  "annotated assignment",
	StmtIf:         "if statement",
	StmtWhile:      "while loop",
	StmtFor:        "for loop",
	StmtFuncDef:    "function definition",
	StmtReturn:     "return statement",
	StmtClassDef:   "class definition",
	StmtPass:       "pass statement",
	StmtBreak:      "break statement",
	StmtContinue:   "continue statement",
	StmtGlobal:     "global declaration",
	StmtNonlocal:   "nonlocal declaration",
	StmtImport:     "import statement",
	StmtImportFrom: "import-from statement",
	StmtWith:       "with statement",
	StmtTry:        "try statement",
	StmtRaise:      "raise statement",
	StmtAssert:     "assert statement",
	StmtDelete:     "delete statement",
}

func (k StmtKind) String() string {
	if s, ok := stmtKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Param is a single function parameter, optionally annotated.
type Param struct {
	Name       string
	Annotation *Expr
	Span       source.Span
}

// Stmt is a single statement node. Which payload fields are meaningful
// depends on Kind.
type Stmt struct {
	Kind StmtKind
	Span source.Span

	Expr *Expr // StmtExpr value; StmtReturn value; StmtIf/StmtWhile condition; StmtAssert test; StmtRaise exception

	Targets []*Expr // StmtAssign targets (len>1 for chained a = b = v); StmtDelete targets
	Value   *Expr   // StmtAssign/StmtAugAssign/StmtAnnAssign right-hand side
	Target  *Expr   // StmtAugAssign/StmtAnnAssign/StmtFor target
	Op      Op      // StmtAugAssign operator
	Iter    *Expr   // StmtFor iterable

	Body []*Stmt // block statements
	Else []*Stmt // StmtIf orelse (elif chains nest here); StmtWhile/StmtFor else

	Name    string   // StmtFuncDef/StmtClassDef name; StmtImportFrom module
	Params  []Param  // StmtFuncDef parameters
	Returns *Expr    // StmtFuncDef return annotation
	Names   []string // StmtGlobal/StmtNonlocal/StmtImport names

	Decorated bool // StmtFuncDef/StmtClassDef had decorators
	Async     bool // StmtFuncDef declared async; StmtFor/StmtWith async form
}

// Module is the root of one parsed source unit.
type Module struct {
	Body []*Stmt
}
