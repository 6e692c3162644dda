package emit_test

import (
	"strings"
	"testing"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/emit"
	"pycc/internal/infer"
	"pycc/internal/lexer"
	"pycc/internal/parser"
	"pycc/internal/source"
	"pycc/internal/types"
)

func parseModule(t *testing.T, src string) *ast.Module {
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

func newEmitter(prof emit.Profile, bag *diag.Bag) *emit.Emitter {
	opts := infer.Options{}
	if !prof.HasCompanionSize() {
		opts.UnknownCall = types.Unresolved
	}
	var reporter diag.Reporter
	if bag != nil {
		reporter = diag.BagReporter{Bag: bag}
		opts.Reporter = reporter
	}
	eng := infer.New(infer.NewEnv(), infer.NewRegistry(), opts)
	return emit.New(prof, eng, emit.Options{Reporter: reporter})
}

// emitBody прогоняет statements модуля через эмиттер
func emitBody(t *testing.T, prof emit.Profile, src string) ([]string, *diag.Bag) {
	t.Helper()
	mod := parseModule(t, src)
	bag := diag.NewBag(100)
	em := newEmitter(prof, bag)
	return em.Stmts(mod.Body), bag
}

func wantLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("line count mismatch:\ngot  %q\nwant %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d:\ngot  %q\nwant %q", i, got[i], want[i])
		}
	}
}

func TestRangeLoopSingleBound(t *testing.T) {
	got, _ := emitBody(t, emit.CProfile{}, "for i in range(3):\n    print(i)\n")
	wantLines(t, got, []string{
		"for (int i = 0; i < 3; i++) {",
		`    printf("%d", i); printf("\n");`,
		"}",
	})
}

func TestRangeLoopTwoAndThreeArgs(t *testing.T) {
	got, _ := emitBody(t, emit.CProfile{}, "for i in range(2, 8):\n    pass\n")
	if got[0] != "for (int i = 2; i < 8; i++) {" {
		t.Errorf("two-arg range header: %q", got[0])
	}
	got, _ = emitBody(t, emit.CProfile{}, "for i in range(0, 10, 2):\n    pass\n")
	if got[0] != "for (int i = 0; i < 10; i += 2) {" {
		t.Errorf("three-arg range header: %q", got[0])
	}
}

func TestTupleSwapUsesOneTemporary(t *testing.T) {
	got, bag := emitBody(t, emit.CProfile{}, "p = 1\nq = 2\np, q = q, p\n")
	wantLines(t, got, []string{
		"int p = 1;",
		"int q = 2;",
		"{",
		"    int __tmp = q;",
		"    q = p;",
		"    p = __tmp;",
		"}",
	})
	if bag.Len() != 0 {
		t.Errorf("swap must be silent, got %v", bag.Items())
	}
}

func TestMultiTargetAssignUnsupported(t *testing.T) {
	got, bag := emitBody(t, emit.CProfile{}, "a = b = 1\nc = 2\n")
	if bag.CountKind(diag.KindUnsupported) != 1 {
		t.Fatalf("expected one unsupported diagnostic, got %v", bag.Items())
	}
	if !strings.HasPrefix(got[0], "// unsupported") {
		t.Errorf("placeholder expected, got %q", got[0])
	}
	if got[1] != "int c = 2;" {
		t.Errorf("sibling must translate normally, got %q", got[1])
	}
}

func TestArrayLiteralDeclaration(t *testing.T) {
	got, _ := emitBody(t, emit.CProfile{}, "xs = [1, 2, 3]\n")
	wantLines(t, got, []string{
		"int xs[3] = { 1, 2, 3 };",
		"int xs_size = 3;",
	})

	got, _ = emitBody(t, emit.CppProfile{}, "xs = [1, 2, 3]\n")
	wantLines(t, got, []string{"vector<int> xs = {1, 2, 3};"})
}

func TestTextDeclarationAndRealloc(t *testing.T) {
	got, bag := emitBody(t, emit.CProfile{}, "s = \"a\"\ns = \"b\"\n")
	wantLines(t, got, []string{
		`char* s = strdup("a");`,
		`s = strdup("b");`,
	})
	if bag.CountKind(diag.KindLossy) != 1 {
		t.Errorf("re-assignment must be flagged lossy, got %v", bag.Items())
	}

	got, bag = emitBody(t, emit.CppProfile{}, "s = \"a\"\ns = \"b\"\n")
	wantLines(t, got, []string{
		`string s = "a";`,
		`s = "b";`,
	})
	if bag.Len() != 0 {
		t.Errorf("native text re-assignment must be silent, got %v", bag.Items())
	}
}

func TestIncompatibleReassignmentNotApplied(t *testing.T) {
	got, bag := emitBody(t, emit.CProfile{}, "x = 1\nx = \"hi\"\nx = 2\n")
	if bag.CountKind(diag.KindLossy) != 1 {
		t.Fatalf("expected one type-mismatch diagnostic, got %v", bag.Items())
	}
	if !strings.HasPrefix(got[1], "// unsupported") {
		t.Errorf("mismatch must degrade to placeholder, got %q", got[1])
	}
	// привязка сохранила int: третья строка — обычное присваивание
	if got[2] != "x = 2;" {
		t.Errorf("binding must keep its original tag, got %q", got[2])
	}
}

func TestTextComparisonUsesStrcmp(t *testing.T) {
	src := "name = \"bob\"\nif name == \"alice\":\n    pass\n"
	got, _ := emitBody(t, emit.CProfile{}, src)
	if got[1] != `if (strcmp(name, "alice") == 0) {` {
		t.Errorf("C text comparison: %q", got[1])
	}
	got, _ = emitBody(t, emit.CppProfile{}, src)
	if got[1] != `if ((name == "alice")) {` {
		t.Errorf("C++ text comparison: %q", got[1])
	}
}

func TestCharConcatPromotes(t *testing.T) {
	src := "s = \"abc\"\nr = s + s[0]\n"
	got, _ := emitBody(t, emit.CProfile{}, src)
	if got[1] != `char* r = strcat(strdup(s), (char[]){ s[0], '\0' });` {
		t.Errorf("C char concat: %q", got[1])
	}
	got, _ = emitBody(t, emit.CppProfile{}, src)
	if got[1] != "string r = s + s[0];" {
		t.Errorf("C++ char concat: %q", got[1])
	}
}

func TestArrayIteration(t *testing.T) {
	src := "nums = [1, 2]\nfor n in nums:\n    print(n)\n"
	got, _ := emitBody(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"int nums[2] = { 1, 2 };",
		"int nums_size = 2;",
		"for (int n_idx = 0; n_idx < nums_size; n_idx++) {",
		"    int n = nums[n_idx];",
		`    printf("%d", n); printf("\n");`,
		"}",
	})

	got, _ = emitBody(t, emit.CppProfile{}, src)
	wantLines(t, got, []string{
		"vector<int> nums = {1, 2};",
		"for (const auto& n : nums) {",
		"    cout << n; cout << endl;",
		"}",
	})
}

func TestTextIteration(t *testing.T) {
	src := "s = \"hi\"\nfor c in s:\n    print(c)\n"
	got, _ := emitBody(t, emit.CProfile{}, src)
	if got[1] != "for (int c_idx = 0; c_idx < strlen(s); c_idx++) {" {
		t.Errorf("text loop header: %q", got[1])
	}
	if got[2] != "    char c = s[c_idx];" {
		t.Errorf("element binding must precede user statements: %q", got[2])
	}
	if got[3] != `    printf("%c", c); printf("\n");` {
		t.Errorf("loop variable must carry the char tag: %q", got[3])
	}
}

func TestLenMapping(t *testing.T) {
	src := "s = \"hi\"\nxs = [1]\na = len(s)\nb = len(xs)\n"
	got, _ := emitBody(t, emit.CProfile{}, src)
	if got[3] != "int a = strlen(s);" {
		t.Errorf("C len on text: %q", got[3])
	}
	if got[4] != "int b = xs_size;" {
		t.Errorf("C len on array: %q", got[4])
	}
	got, _ = emitBody(t, emit.CppProfile{}, src)
	if got[2] != "int a = s.length();" {
		t.Errorf("C++ len on text: %q", got[2])
	}
	if got[3] != "int b = xs.size();" {
		t.Errorf("C++ len on array: %q", got[3])
	}
}

func TestPrintEndKeyword(t *testing.T) {
	got, _ := emitBody(t, emit.CProfile{}, "print(\"hi\", end=\"\")\n")
	wantLines(t, got, []string{`printf("hi");`})

	got, _ = emitBody(t, emit.CppProfile{}, "print(\"hi\", end=\"\")\n")
	wantLines(t, got, []string{`cout << "hi";`})
}

func TestPrintFloatPrecision(t *testing.T) {
	got, _ := emitBody(t, emit.CProfile{}, "f = 1.5\nprint(f)\n")
	if got[1] != `printf("%.2f", f); printf("\n");` {
		t.Errorf("float print: %q", got[1])
	}
}

func TestFStringLowering(t *testing.T) {
	src := "age = 30\nmsg = f\"Age: {age}\"\n"
	got, bag := emitBody(t, emit.CProfile{}, src)
	if got[1] != `char* msg = format_string("Age: %d", age);` {
		t.Errorf("C f-string: %q", got[1])
	}
	if bag.CountKind(diag.KindLossy) != 1 {
		t.Errorf("C f-string must be flagged, got %v", bag.Items())
	}

	got, bag = emitBody(t, emit.CppProfile{}, src)
	if got[1] != `string msg = "Age: " + to_string(age);` {
		t.Errorf("C++ f-string: %q", got[1])
	}
	if bag.Len() != 0 {
		t.Errorf("C++ f-string must be silent, got %v", bag.Items())
	}
}

func TestFStringNoInterpolation(t *testing.T) {
	got, _ := emitBody(t, emit.CProfile{}, "m = f\"plain\"\n")
	if got[0] != `char* m = strdup("plain");` {
		t.Errorf("constant f-string: %q", got[0])
	}
}

func TestComprehensionSoftFailure(t *testing.T) {
	src := "xs = [1, 2]\nys = [x * 2 for x in xs]\nz = 3\n"
	got, bag := emitBody(t, emit.CProfile{}, src)
	if bag.CountKind(diag.KindUnsupported) != 1 {
		t.Fatalf("exactly one unsupported diagnostic expected, got %v", bag.Items())
	}
	if !strings.Contains(got[2], "/* unsupported: list comprehension */") {
		t.Errorf("placeholder must name the construct: %q", got[2])
	}
	if got[3] != "int z = 3;" {
		t.Errorf("siblings must continue: %q", got[3])
	}
}

func TestUnsupportedStatements(t *testing.T) {
	cases := []struct {
		src  string
		name string
	}{
		{"import os\n", "import statement"},
		{"with open(p) as f:\n    pass\n", "with statement"},
		{"try:\n    pass\nexcept ValueError:\n    pass\n", "try statement"},
		{"assert x\n", "assert statement"},
		{"global x\n", "global declaration"},
		{"del x\n", "delete statement"},
	}
	for _, tc := range cases {
		got, bag := emitBody(t, emit.CProfile{}, tc.src)
		if bag.CountKind(diag.KindUnsupported) != 1 {
			t.Errorf("%q: expected one diagnostic, got %v", tc.src, bag.Items())
			continue
		}
		if got[0] != "// unsupported: "+tc.name {
			t.Errorf("%q: placeholder %q", tc.src, got[0])
		}
	}
}

func TestMembershipAndIdentity(t *testing.T) {
	got, bag := emitBody(t, emit.CProfile{}, "xs = [1]\nb = 1 in xs\n")
	if got[2] != "int b = contains(xs, 1);" {
		t.Errorf("membership: %q", got[2])
	}
	if bag.CountKind(diag.KindLossy) != 1 {
		t.Errorf("membership must be flagged lossy: %v", bag.Items())
	}

	got, _ = emitBody(t, emit.CProfile{}, "a = 1\nb = a is None\n")
	if got[1] != "int b = (a == NULL);" {
		t.Errorf("identity: %q", got[1])
	}
}

func TestPowerBecomesPow(t *testing.T) {
	got, bag := emitBody(t, emit.CProfile{}, "x = 2 ** 8\n")
	if got[0] != "int x = pow(2, 8);" {
		t.Errorf("power: %q", got[0])
	}
	if bag.CountKind(diag.KindLossy) != 1 {
		t.Errorf("power must be flagged lossy: %v", bag.Items())
	}
}

func TestAugmentedAssignment(t *testing.T) {
	got, _ := emitBody(t, emit.CProfile{}, "x = 1\nx += 2\nx //= 3\n")
	if got[1] != "x += 2;" {
		t.Errorf("aug add: %q", got[1])
	}
	if got[2] != "x /= 3;" {
		t.Errorf("aug floordiv: %q", got[2])
	}
}

func TestElifChain(t *testing.T) {
	src := "x = 1\nif x > 2:\n    pass\nelif x > 1:\n    pass\nelse:\n    pass\n"
	got, _ := emitBody(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"int x = 1;",
		"if ((x > 2)) {",
		"    ;",
		"} else if ((x > 1)) {",
		"    ;",
		"} else {",
		"    ;",
		"}",
	})
}

func emitFunc(t *testing.T, prof emit.Profile, src string) ([]string, *diag.Bag) {
	t.Helper()
	mod := parseModule(t, src)
	bag := diag.NewBag(100)
	em := newEmitter(prof, bag)
	for _, s := range mod.Body {
		if s.Kind == ast.StmtFuncDef {
			return em.Func(s), bag
		}
		if s.Kind == ast.StmtClassDef {
			return em.Class(s), bag
		}
	}
	t.Fatal("no definition found")
	return nil, nil
}

func TestFuncArrayParamGetsCompanionSize(t *testing.T) {
	src := "def first(xs):\n    return xs[0]\n"
	got, _ := emitFunc(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"int first(int* xs, int xs_size) {",
		"    return xs[0];",
		"}",
	})

	got, _ = emitFunc(t, emit.CppProfile{}, src)
	wantLines(t, got, []string{
		"int first(vector<int> xs) {",
		"    return xs[0];",
		"}",
	})
}

func TestFuncTextParamOverridesSubscript(t *testing.T) {
	src := "def head(s):\n    n = strlen(s)\n    return s[0]\n"
	got, _ := emitFunc(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"char head(char* s) {",
		"    int n = strlen(s);",
		"    return s[0];",
		"}",
	})
}

func TestFuncReturnTypeFromBody(t *testing.T) {
	src := "def greet(name):\n    return strcat(\"hi \", name)\n"
	got, _ := emitFunc(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"char* greet(char* name) {",
		`    return strcat("hi ", name);`,
		"}",
	})
}

func TestMainAlwaysReturnsInt(t *testing.T) {
	src := "def main():\n    print(\"hi\")\n"
	got, _ := emitFunc(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"int main() {",
		`    printf("hi"); printf("\n");`,
		"    return 0;",
		"}",
	})
}

func TestMainNestedReturnStillExitsZero(t *testing.T) {
	// return в ветви — не нормальный выход: после условия всё равно
	// должен стоять return 0
	src := "def main():\n    n = 1\n    if n > 0:\n        return 1\n"
	got, _ := emitFunc(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"int main() {",
		"    int n = 1;",
		"    if ((n > 0)) {",
		"        return 1;",
		"    }",
		"    return 0;",
		"}",
	})
}

func TestClassLowering(t *testing.T) {
	src := "class Point:\n" +
		"    x = 0\n" +
		"    y = 0\n" +
		"    def dist(self):\n" +
		"        return 0\n"

	got, bag := emitFunc(t, emit.CProfile{}, src)
	wantLines(t, got, []string{
		"typedef struct {",
		"    int x;",
		"    int y;",
		"    int (*dist)();",
		"} Point;",
	})
	if bag.CountKind(diag.KindLossy) != 1 {
		t.Errorf("C class lowering must be flagged, got %v", bag.Items())
	}

	got, bag = emitFunc(t, emit.CppProfile{}, src)
	if got[0] != "class Point {" || got[len(got)-1] != "};" {
		t.Errorf("C++ class shell: %q ... %q", got[0], got[len(got)-1])
	}
	if bag.Len() != 0 {
		t.Errorf("C++ class must be silent, got %v", bag.Items())
	}
}

func TestDictDeclaration(t *testing.T) {
	src := "d = {\"a\": 1, \"b\": 2}\n"
	got, bag := emitBody(t, emit.CProfile{}, src)
	if got[0] != `struct { int a; int b; } d = { .a = 1, .b = 2 };` {
		t.Errorf("C dict: %q", got[0])
	}
	if bag.CountKind(diag.KindLossy) != 1 {
		t.Errorf("C dict must be flagged, got %v", bag.Items())
	}

	got, bag = emitBody(t, emit.CppProfile{}, src)
	if got[0] != `unordered_map<string, int> d = unordered_map<string, int>{{"a", 1}, {"b", 2}};` {
		t.Errorf("C++ dict: %q", got[0])
	}
	if bag.Len() != 0 {
		t.Errorf("C++ dict must be silent, got %v", bag.Items())
	}
}
