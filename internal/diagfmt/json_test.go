package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"pycc/internal/diag"
	"pycc/internal/source"
)

func TestJSONOutputShape(t *testing.T) {
	bag, fs := testBag(t)
	var out strings.Builder
	if err := JSON(&out, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 1 || len(decoded.Diagnostics) != 1 {
		t.Fatalf("count mismatch: %+v", decoded)
	}

	d := decoded.Diagnostics[0]
	if d.Severity != "WARNING" || d.Code != "CNV3200" || d.Kind != "lossy-conversion" {
		t.Errorf("diagnostic fields: %+v", d)
	}
	if d.Location.File != "test.py" || d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Errorf("location: %+v", d.Location)
	}
}

func TestJSONMaxTruncatesOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("x = 1\n"))
	bag := diag.NewBag(10)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewWarning(diag.CnvLenFallback, source.Span{File: id}, "msg"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("truncation failed: count=%d", out.Count)
	}
	if bag.Len() != 3 {
		t.Errorf("bag itself must not be truncated: %d", bag.Len())
	}
}

func TestJSONOmitsPositionsByDefault(t *testing.T) {
	bag, fs := testBag(t)
	var out strings.Builder
	if err := JSON(&out, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "start_line") {
		t.Errorf("positions must be opt-in:\n%s", out.String())
	}
}
