package diagfmt

import (
	"strings"
	"testing"

	"pycc/internal/diag"
	"pycc/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("s = \"b\"\nprint(s)\n"))
	bag := diag.NewBag(10)
	sp := source.Span{File: id, Start: 4, End: 7}
	bag.Add(diag.NewWarning(diag.CnvTextRealloc, sp, "previous buffer leaks"))
	return bag, fs
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	bag, fs := testBag(t)
	var out strings.Builder
	Pretty(&out, bag, fs, PrettyOpts{})

	got := out.String()
	want := "test.py:1:5: WARNING CNV3200: previous buffer leaks\n" +
		"    1 | s = \"b\"\n" +
		"      |     ^~~\n"
	if got != want {
		t.Errorf("pretty output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	bag, fs := testBag(t)
	var out strings.Builder
	Pretty(&out, bag, fs, PrettyOpts{Context: 1})

	got := out.String()
	if !strings.Contains(got, "    2 | print(s)") {
		t.Errorf("context line missing:\n%s", got)
	}
}

func TestPrettyColorDisabledHasNoEscapes(t *testing.T) {
	bag, fs := testBag(t)
	var out strings.Builder
	Pretty(&out, bag, fs, PrettyOpts{Color: false})
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("unexpected escape sequences:\n%q", out.String())
	}
}

func TestPrettyBasenamePath(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("some/dir/app.py", []byte("x = 1\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.CnvLenFallback, source.Span{File: id, Start: 0, End: 1}, "msg"))

	var out strings.Builder
	Pretty(&out, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if !strings.HasPrefix(out.String(), "app.py:1:1:") {
		t.Errorf("basename mode: %q", out.String())
	}
}
