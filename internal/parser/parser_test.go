package parser_test

import (
	"testing"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/lexer"
	"pycc/internal/parser"
	"pycc/internal/source"
)

// parseSource — общий вход для тестов: лексер + парсер над виртуальным файлом
func parseSource(t *testing.T, src string) (*ast.Module, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(src))
	file := fs.Get(id)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	mod := parser.ParseModule(fs, lx, parser.Options{Reporter: reporter})
	return mod, bag
}

// mustParse требует разбор без единой ошибки
func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	return mod
}

func TestParseAssignment(t *testing.T) {
	mod := mustParse(t, "x = 1 + 2\n")
	if len(mod.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(mod.Body))
	}
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtAssign {
		t.Fatalf("expected assignment, got %v", stmt.Kind)
	}
	if len(stmt.Targets) != 1 || stmt.Targets[0].Name != "x" {
		t.Fatalf("bad targets: %+v", stmt.Targets)
	}
	if stmt.Value.Kind != ast.ExprBinary || stmt.Value.Op != ast.OpAdd {
		t.Fatalf("bad value: %+v", stmt.Value)
	}
}

func TestParseChainedAssignment(t *testing.T) {
	mod := mustParse(t, "a = b = 0\n")
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtAssign || len(stmt.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %+v", stmt)
	}
	if stmt.Value.Kind != ast.ExprIntLit || stmt.Value.Int != 0 {
		t.Fatalf("bad value: %+v", stmt.Value)
	}
}

func TestParseTupleAssignment(t *testing.T) {
	mod := mustParse(t, "a, b = b, a\n")
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtAssign {
		t.Fatalf("expected assignment, got %v", stmt.Kind)
	}
	if stmt.Targets[0].Kind != ast.ExprTuple || len(stmt.Targets[0].Elems) != 2 {
		t.Fatalf("expected tuple target, got %+v", stmt.Targets[0])
	}
	if stmt.Value.Kind != ast.ExprTuple || len(stmt.Value.Elems) != 2 {
		t.Fatalf("expected tuple value, got %+v", stmt.Value)
	}
}

func TestParseAugAssignment(t *testing.T) {
	mod := mustParse(t, "x += 2\n")
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtAugAssign || stmt.Op != ast.OpAdd {
		t.Fatalf("expected augmented assignment, got %+v", stmt)
	}
}

func TestParseAnnotatedAssignment(t *testing.T) {
	mod := mustParse(t, "x: int = 5\n")
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtAnnAssign {
		t.Fatalf("expected annotated assignment, got %v", stmt.Kind)
	}
	if stmt.Expr.Kind != ast.ExprIdent || stmt.Expr.Name != "int" {
		t.Fatalf("bad annotation: %+v", stmt.Expr)
	}
	if stmt.Value == nil || stmt.Value.Int != 5 {
		t.Fatalf("bad value: %+v", stmt.Value)
	}
}

func TestParseFuncDef(t *testing.T) {
	src := "def add(a, b):\n    return a + b\n"
	mod := mustParse(t, src)
	fn := mod.Body[0]
	if fn.Kind != ast.StmtFuncDef || fn.Name != "add" {
		t.Fatalf("expected def add, got %+v", fn)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Fatalf("bad params: %+v", fn.Params)
	}
	if len(fn.Body) != 1 || fn.Body[0].Kind != ast.StmtReturn {
		t.Fatalf("bad body: %+v", fn.Body)
	}
}

func TestParseFuncDefAnnotations(t *testing.T) {
	src := "def scale(x: float, k: int = 2) -> float:\n    return x * k\n"
	mod := mustParse(t, src)
	fn := mod.Body[0]
	if fn.Params[0].Annotation == nil || fn.Params[0].Annotation.Name != "float" {
		t.Fatalf("bad param annotation: %+v", fn.Params[0])
	}
	if fn.Returns == nil || fn.Returns.Name != "float" {
		t.Fatalf("bad return annotation: %+v", fn.Returns)
	}
}

func TestParseIfElifElse(t *testing.T) {
	src := "if a:\n    x = 1\nelif b:\n    x = 2\nelse:\n    x = 3\n"
	mod := mustParse(t, src)
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtIf {
		t.Fatalf("expected if, got %v", stmt.Kind)
	}
	// elif сворачивается во вложенный if
	if len(stmt.Else) != 1 || stmt.Else[0].Kind != ast.StmtIf {
		t.Fatalf("expected nested if in else, got %+v", stmt.Else)
	}
	nested := stmt.Else[0]
	if len(nested.Else) != 1 || nested.Else[0].Kind != ast.StmtAssign {
		t.Fatalf("expected final else branch, got %+v", nested.Else)
	}
}

func TestParseWhile(t *testing.T) {
	src := "while i < 10:\n    i += 1\n"
	mod := mustParse(t, src)
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtWhile || stmt.Expr.Kind != ast.ExprCompare {
		t.Fatalf("bad while: %+v", stmt)
	}
}

func TestParseForRange(t *testing.T) {
	src := "for i in range(5):\n    print(i)\n"
	mod := mustParse(t, src)
	stmt := mod.Body[0]
	if stmt.Kind != ast.StmtFor {
		t.Fatalf("expected for, got %v", stmt.Kind)
	}
	if stmt.Target.Kind != ast.ExprIdent || stmt.Target.Name != "i" {
		t.Fatalf("bad target: %+v", stmt.Target)
	}
	if stmt.Iter.Kind != ast.ExprCall {
		t.Fatalf("bad iter: %+v", stmt.Iter)
	}
}

func TestParseForTupleTarget(t *testing.T) {
	src := "for k, v in pairs:\n    pass\n"
	mod := mustParse(t, src)
	stmt := mod.Body[0]
	if stmt.Target.Kind != ast.ExprTuple || len(stmt.Target.Elems) != 2 {
		t.Fatalf("bad tuple target: %+v", stmt.Target)
	}
	if stmt.Iter.Kind != ast.ExprIdent || stmt.Iter.Name != "pairs" {
		t.Fatalf("bad iter: %+v", stmt.Iter)
	}
}

func TestParseClassDef(t *testing.T) {
	src := "class Point:\n    def __init__(self, x):\n        self.x = x\n"
	mod := mustParse(t, src)
	cls := mod.Body[0]
	if cls.Kind != ast.StmtClassDef || cls.Name != "Point" {
		t.Fatalf("bad class: %+v", cls)
	}
	if len(cls.Body) != 1 || cls.Body[0].Kind != ast.StmtFuncDef {
		t.Fatalf("bad class body: %+v", cls.Body)
	}
}

func TestParseCallKeywordArg(t *testing.T) {
	mod := mustParse(t, `print("x", end="")` + "\n")
	call := mod.Body[0].Expr
	if call.Kind != ast.ExprCall {
		t.Fatalf("expected call, got %v", call.Kind)
	}
	if len(call.Args) != 1 || call.Args[0].Kind != ast.ExprStringLit {
		t.Fatalf("bad args: %+v", call.Args)
	}
	if len(call.Keywords) != 1 || call.Keywords[0].Name != "end" || call.Keywords[0].Value.Str != "" {
		t.Fatalf("bad keywords: %+v", call.Keywords)
	}
}

func TestParseSubscriptAndSlice(t *testing.T) {
	mod := mustParse(t, "a = xs[0]\nb = xs[1:3]\nc = xs[::2]\n")
	if mod.Body[0].Value.Kind != ast.ExprIndex {
		t.Fatalf("expected index, got %v", mod.Body[0].Value.Kind)
	}
	s := mod.Body[1].Value
	if s.Kind != ast.ExprSlice || s.Lower.Int != 1 || s.Upper.Int != 3 {
		t.Fatalf("bad slice: %+v", s)
	}
	s2 := mod.Body[2].Value
	if s2.Kind != ast.ExprSlice || s2.Lower != nil || s2.Upper != nil || s2.Step.Int != 2 {
		t.Fatalf("bad step slice: %+v", s2)
	}
}

func TestParseSemicolonLine(t *testing.T) {
	mod := mustParse(t, "x = 1; y = 2\n")
	if len(mod.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(mod.Body))
	}
}

func TestParseUnsupportedConstructsStillParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ast.StmtKind
	}{
		{"import", "import math\n", ast.StmtImport},
		{"import from", "from os import path\n", ast.StmtImportFrom},
		{"global", "def f():\n    global x\n", ast.StmtFuncDef},
		{"with", "with open(p) as f:\n    pass\n", ast.StmtWith},
		{"try", "try:\n    x = 1\nexcept ValueError:\n    pass\n", ast.StmtTry},
		{"raise", "raise ValueError(msg)\n", ast.StmtRaise},
		{"assert", "assert x > 0, \"bad\"\n", ast.StmtAssert},
		{"del", "del xs[0]\n", ast.StmtDelete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mod := mustParse(t, tc.src)
			if len(mod.Body) == 0 || mod.Body[0].Kind != tc.kind {
				t.Fatalf("expected %v, got %+v", tc.kind, mod.Body)
			}
		})
	}
}

func TestParseErrorRecovery(t *testing.T) {
	// первая строка сломана, вторая должна разобраться
	mod, bag := parseSource(t, "x = = 1\ny = 2\n")
	if !bag.HasErrors() {
		t.Fatal("expected a syntax error")
	}
	found := false
	for _, stmt := range mod.Body {
		if stmt.Kind == ast.StmtAssign && stmt.Targets[0].Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("second statement lost after recovery: %+v", mod.Body)
	}
}

func TestParseEmptyBlockRejected(t *testing.T) {
	_, bag := parseSource(t, "if x:\ny = 2\n")
	if !bag.HasErrors() {
		t.Fatal("expected error for missing block")
	}
}

func TestParseDecoratedFunc(t *testing.T) {
	src := "@wraps\ndef f():\n    pass\n"
	mod := mustParse(t, src)
	fn := mod.Body[0]
	if fn.Kind != ast.StmtFuncDef || !fn.Decorated {
		t.Fatalf("expected decorated def, got %+v", fn)
	}
}
