package infer_test

import (
	"testing"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/infer"
	"pycc/internal/lexer"
	"pycc/internal/parser"
	"pycc/internal/source"
	"pycc/internal/types"
)

func parseBody(t *testing.T, src string) *ast.Module {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(src))
	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: reporter})
	mod := parser.ParseModule(fs, lx, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Items())
	}
	return mod
}

// exprIn возвращает правую часть последнего присваивания в src
func exprIn(t *testing.T, src string) *ast.Expr {
	t.Helper()
	mod := parseBody(t, src)
	last := mod.Body[len(mod.Body)-1]
	if last.Kind != ast.StmtAssign {
		t.Fatalf("last statement is %v, want assignment", last.Kind)
	}
	return last.Value
}

func newEngine(bag *diag.Bag) *infer.Engine {
	opts := infer.Options{}
	if bag != nil {
		opts.Reporter = diag.BagReporter{Bag: bag}
	}
	return infer.New(infer.NewEnv(), infer.NewRegistry(), opts)
}

func TestLiteralTags(t *testing.T) {
	cases := []struct {
		src  string
		want *types.Type
	}{
		{"v = 1", types.Int},
		{"v = 1.5", types.Float},
		{"v = True", types.Bool},
		{"v = \"hi\"", types.Text},
		{"v = None", types.Void},
		{"v = f\"{1}\"", types.Text},
	}
	eng := newEngine(nil)
	for _, tc := range cases {
		e := exprIn(t, tc.src+"\n")
		if got := eng.TypeOf(e); !types.Equal(got, tc.want) {
			t.Errorf("%s: got %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestBoundIdentUsesNearestScope(t *testing.T) {
	env := infer.NewEnv()
	env.Declare("x", types.Text)
	env.Enter([]infer.Binding{{Name: "x", Type: types.Float}})
	eng := infer.New(env, infer.NewRegistry(), infer.Options{})

	e := &ast.Expr{Kind: ast.ExprIdent, Name: "x"}
	if got := eng.TypeOf(e); got.Kind != types.KindFloat {
		t.Fatalf("inner scope must shadow: got %s", got)
	}
	env.Exit()
	if got := eng.TypeOf(e); got.Kind != types.KindText {
		t.Fatalf("outer binding must be restored: got %s", got)
	}
}

func TestUnboundIdentFallsBackToIntWithDiagnostic(t *testing.T) {
	bag := diag.NewBag(10)
	eng := newEngine(bag)
	e := &ast.Expr{Kind: ast.ExprIdent, Name: "mystery"}
	if got := eng.TypeOf(e); got.Kind != types.KindInt {
		t.Fatalf("unbound name must default to int, got %s", got)
	}
	if bag.CountKind(diag.KindAmbiguous) != 1 {
		t.Fatalf("expected one ambiguous diagnostic, got %v", bag.Items())
	}
}

func TestCallUsesRegistry(t *testing.T) {
	eng := newEngine(nil)
	e := exprIn(t, "v = len(xs)\n")
	if got := eng.TypeOf(e); got.Kind != types.KindInt {
		t.Fatalf("len must return int, got %s", got)
	}
	e = exprIn(t, "v = str(n)\n")
	if got := eng.TypeOf(e); got.Kind != types.KindText {
		t.Fatalf("str must return text, got %s", got)
	}
}

func TestUnknownCallDefaultsPerProfile(t *testing.T) {
	bag := diag.NewBag(10)
	eng := infer.New(infer.NewEnv(), infer.NewRegistry(), infer.Options{
		UnknownCall: types.Unresolved,
		Reporter:    diag.BagReporter{Bag: bag},
	})
	e := exprIn(t, "v = frobnicate()\n")
	if got := eng.TypeOf(e); got.Kind != types.KindUnresolved {
		t.Fatalf("unknown call must use profile default, got %s", got)
	}
	if bag.CountKind(diag.KindAmbiguous) != 1 {
		t.Fatalf("expected ambiguous diagnostic, got %v", bag.Items())
	}
}

func TestCollectionLiteralFirstElement(t *testing.T) {
	eng := newEngine(nil)

	e := exprIn(t, "v = [1, 2, 3]\n")
	got := eng.TypeOf(e)
	if got.Kind != types.KindArray || got.Elem.Kind != types.KindInt {
		t.Fatalf("got %s, want array<int>", got)
	}

	e = exprIn(t, "v = []\n")
	got = eng.TypeOf(e)
	if got.Kind != types.KindArray || got.Elem.Kind != types.KindUnresolved {
		t.Fatalf("empty list: got %s, want array<unresolved>", got)
	}

	e = exprIn(t, "v = {\"a\": 1}\n")
	got = eng.TypeOf(e)
	if got.Kind != types.KindMap || got.Key.Kind != types.KindText || got.Value.Kind != types.KindInt {
		t.Fatalf("dict literal: got %s", got)
	}
}

func TestBinaryPromotion(t *testing.T) {
	env := infer.NewEnv()
	env.Declare("s", types.Text)
	env.Declare("f", types.Float)
	env.Declare("n", types.Int)
	eng := infer.New(env, infer.NewRegistry(), infer.Options{})

	cases := []struct {
		src  string
		want types.Kind
	}{
		{"v = n + n", types.KindInt},
		{"v = n + f", types.KindFloat},
		{"v = s + n", types.KindText},
		{"v = f + s", types.KindText},
		{"v = n // f", types.KindInt},
	}
	for _, tc := range cases {
		e := exprIn(t, tc.src+"\n")
		if got := eng.TypeOf(e); got.Kind != tc.want {
			t.Errorf("%s: got %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestIndexingTags(t *testing.T) {
	env := infer.NewEnv()
	env.Declare("xs", types.MakeArray(types.Float))
	env.Declare("s", types.Text)
	env.Declare("d", types.MakeMap(types.Text, types.Int))
	eng := infer.New(env, infer.NewRegistry(), infer.Options{})

	if got := eng.TypeOf(exprIn(t, "v = xs[0]\n")); got.Kind != types.KindFloat {
		t.Fatalf("array index: got %s", got)
	}
	if got := eng.TypeOf(exprIn(t, "v = s[0]\n")); got.Kind != types.KindChar {
		t.Fatalf("text index must give char: got %s", got)
	}
	if got := eng.TypeOf(exprIn(t, "v = d[k]\n")); got.Kind != types.KindInt {
		t.Fatalf("map index: got %s", got)
	}
	if got := eng.TypeOf(exprIn(t, "v = s[1:3]\n")); got.Kind != types.KindText {
		t.Fatalf("text slice keeps text: got %s", got)
	}
}

func findFunc(t *testing.T, mod *ast.Module, name string) *ast.Stmt {
	t.Helper()
	for _, s := range mod.Body {
		if s.Kind == ast.StmtFuncDef && s.Name == name {
			return s
		}
	}
	t.Fatalf("function %s not found", name)
	return nil
}

func TestParamInferenceSubscript(t *testing.T) {
	src := "def first(xs):\n    return xs[0]\n"
	fn := findFunc(t, parseBody(t, src), "first")
	eng := newEngine(nil)
	tags := eng.InferParams(fn)
	if len(tags) != 1 || tags[0].Kind != types.KindArray {
		t.Fatalf("subscripted param must be array-like: %v", tags)
	}
}

func TestParamInferenceTextOverridesArray(t *testing.T) {
	// параметр и индексируется, и передаётся строковой функции:
	// текст перекрывает массив
	src := "def f(s):\n    c = s[0]\n    n = strlen(s)\n    return n\n"
	fn := findFunc(t, parseBody(t, src), "f")
	eng := newEngine(nil)
	tags := eng.InferParams(fn)
	if tags[0].Kind != types.KindText {
		t.Fatalf("text must override array, got %s", tags[0])
	}
}

func TestParamInferenceAnnotationWins(t *testing.T) {
	src := "def f(k: float, xs):\n    return xs[k]\n"
	fn := findFunc(t, parseBody(t, src), "f")
	eng := newEngine(nil)
	tags := eng.InferParams(fn)
	if tags[0].Kind != types.KindFloat {
		t.Fatalf("annotation must win, got %s", tags[0])
	}
	if tags[1].Kind != types.KindArray {
		t.Fatalf("unannotated subscripted param must scan to array, got %s", tags[1])
	}
}

func TestParamInferenceIdempotent(t *testing.T) {
	src := "def f(a, b):\n    x = a[0]\n    y = strdup(b)\n    return x\n"
	fn := findFunc(t, parseBody(t, src), "f")
	eng := newEngine(nil)
	first := eng.InferParams(fn)
	second := eng.InferParams(fn)
	for i := range first {
		if !types.Equal(first[i], second[i]) {
			t.Fatalf("scan not idempotent at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestReturnInferencePreOrder(t *testing.T) {
	// первый return в структурном предпорядке сидит в ветке if,
	// даже если исполнение до него не дойдёт
	src := "def f(flag):\n    if flag:\n        return \"yes\"\n    return 0\n"
	fn := findFunc(t, parseBody(t, src), "f")
	eng := newEngine(nil)
	if got := eng.InferReturn(fn); got.Kind != types.KindText {
		t.Fatalf("pre-order first return must win, got %s", got)
	}
}

func TestReturnInferenceVoid(t *testing.T) {
	src := "def f(x):\n    y = x + 1\n"
	fn := findFunc(t, parseBody(t, src), "f")
	eng := newEngine(nil)
	if got := eng.InferReturn(fn); got.Kind != types.KindVoid {
		t.Fatalf("no return must give void, got %s", got)
	}
}

func TestReturnInferenceAnnotation(t *testing.T) {
	src := "def f() -> float:\n    return 1\n"
	fn := findFunc(t, parseBody(t, src), "f")
	eng := newEngine(nil)
	if got := eng.InferReturn(fn); got.Kind != types.KindFloat {
		t.Fatalf("return annotation must win, got %s", got)
	}
}

func TestDeclareFirstAssignmentWins(t *testing.T) {
	env := infer.NewEnv()
	if !env.Declare("x", types.Int) {
		t.Fatal("first declare must succeed")
	}
	if env.Declare("x", types.Text) {
		t.Fatal("second declare must not rebind")
	}
	got, _ := env.Lookup("x")
	if got.Kind != types.KindInt {
		t.Fatalf("first type must win, got %s", got)
	}
}
