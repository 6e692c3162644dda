package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pycc/internal/diag"
	"pycc/internal/emit"
)

const calcSource = "def add(a, b):\n" +
	"    return a + b\n" +
	"\n" +
	"x = add(2, 3)\n" +
	"print(x)\n"

func TestConvertSupportedSubsetToC(t *testing.T) {
	res, err := ConvertSource("calc.py", []byte(calcSource), emit.CProfile{}, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := `#include <stdio.h>
#include <stdlib.h>
#include <string.h>

int add(int a, int b) {
    return (a + b);
}

int main() {
    int x = add(2, 3);
    printf("%d", x); printf("\n");
    return 0;
}
`
	if res.Code != want {
		t.Errorf("C output mismatch:\ngot:\n%s\nwant:\n%s", res.Code, want)
	}
	if n := res.Bag.CountKind(diag.KindUnsupported); n != 0 {
		t.Errorf("supported subset must convert cleanly, got %v", res.Bag.Items())
	}
}

func TestConvertSupportedSubsetToCpp(t *testing.T) {
	res, err := ConvertSource("calc.py", []byte(calcSource), emit.CppProfile{}, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := `#include <algorithm>
#include <cmath>
#include <iostream>
#include <string>
#include <unordered_map>
#include <vector>

using namespace std;

int add(int a, int b) {
    return (a + b);
}

int main() {
    int x = add(2, 3);
    cout << x; cout << endl;
    return 0;
}
`
	if res.Code != want {
		t.Errorf("C++ output mismatch:\ngot:\n%s\nwant:\n%s", res.Code, want)
	}
}

func TestConvertInvalidSourceProducesNoCode(t *testing.T) {
	res, err := ConvertSource("bad.py", []byte("def f(:\n    pass\n"), emit.CProfile{}, Options{})
	if !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("want ErrInvalidSource, got %v", err)
	}
	if res == nil || res.Code != "" {
		t.Errorf("invalid source must produce no output")
	}
	if !res.Bag.HasErrors() {
		t.Errorf("bag must carry the syntax errors")
	}
}

func TestConvertInvalidSourceDiagnosticsSorted(t *testing.T) {
	src := "def f(:\n" +
		"    pass\n" +
		"def g(:\n" +
		"    pass\n"
	res, err := ConvertSource("bad.py", []byte(src), emit.CProfile{}, Options{})
	if !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("want ErrInvalidSource, got %v", err)
	}
	items := res.Bag.Items()
	if len(items) < 2 {
		t.Fatalf("want at least two syntax errors, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Primary.Start < items[i-1].Primary.Start {
			t.Errorf("diagnostics out of position order: %d after %d",
				items[i].Primary.Start, items[i-1].Primary.Start)
		}
	}
}

func TestConvertUnwrapsMainGuard(t *testing.T) {
	src := "def main():\n" +
		"    print(\"hi\")\n" +
		"\n" +
		"if __name__ == \"__main__\":\n" +
		"    main()\n"
	res, err := ConvertSource("app.py", []byte(src), emit.CProfile{}, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if n := strings.Count(res.Code, "int main() {"); n != 1 {
		t.Errorf("want exactly one entry point, got %d:\n%s", n, res.Code)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("a guard calling the entry point must be silent, got %v", res.Bag.Items())
	}
}

func TestConvertDropsStatementsBesideUserMain(t *testing.T) {
	src := "def main():\n" +
		"    pass\n" +
		"\n" +
		"x = 1\n"
	res, err := ConvertSource("app.py", []byte(src), emit.CProfile{}, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if n := res.Bag.CountKind(diag.KindUnsupported); n != 1 {
		t.Errorf("dropped top-level statement must be flagged, got %v", res.Bag.Items())
	}
	if strings.Contains(res.Code, "int x = 1;") {
		t.Errorf("statement outside the entry point leaked into output:\n%s", res.Code)
	}
}

func TestConvertRegistersFunctionsBeforeEmission(t *testing.T) {
	src := "y = square(4)\n" +
		"\n" +
		"def square(n):\n" +
		"    return n * n\n"
	res, err := ConvertSource("fwd.py", []byte(src), emit.CProfile{}, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(res.Code, "int y = square(4);") {
		t.Errorf("forward call must use the registered signature:\n%s", res.Code)
	}
	if n := res.Bag.CountKind(diag.KindAmbiguous); n != 0 {
		t.Errorf("known call must not be ambiguous, got %v", res.Bag.Items())
	}
}

func TestConvertEmptySourceStillHasEntryPoint(t *testing.T) {
	for _, prof := range []emit.Profile{emit.CProfile{}, emit.CppProfile{}} {
		res, err := ConvertSource("empty.py", []byte(""), prof, Options{})
		if err != nil {
			t.Fatalf("%s: convert: %v", prof.Name(), err)
		}
		if !strings.Contains(res.Code, "int main() {") {
			t.Errorf("%s: empty unit still needs an entry point:\n%s", prof.Name(), res.Code)
		}
	}
}

func TestProfileFor(t *testing.T) {
	cases := []struct {
		target string
		want   string
		ok     bool
	}{
		{"c", "c", true},
		{"cpp", "cpp", true},
		{"c++", "cpp", true},
		{"rust", "", false},
	}
	for _, tc := range cases {
		prof, ok := ProfileFor(tc.target)
		if ok != tc.ok {
			t.Errorf("%q: ok = %v, want %v", tc.target, ok, tc.ok)
			continue
		}
		if ok && prof.Name() != tc.want {
			t.Errorf("%q: profile %q, want %q", tc.target, prof.Name(), tc.want)
		}
	}
}

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "print(1)\n")
	writeFile(t, filepath.Join(dir, "b.py"), "def f(:\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not python")

	results, err := ConvertDir(context.Background(), dir, emit.CProfile{}, Options{}, 2)
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	// список отсортирован: a.py first
	if results[0].Err != nil {
		t.Errorf("a.py: %v", results[0].Err)
	}
	if !strings.Contains(results[0].Result.Code, "printf") {
		t.Errorf("a.py output:\n%s", results[0].Result.Code)
	}
	if !errors.Is(results[1].Err, ErrInvalidSource) {
		t.Errorf("b.py: want ErrInvalidSource, got %v", results[1].Err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
