package source

import (
	"testing"
)

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("req.py", []byte("\xEF\xBB\xBFx = 1\r\ny = 2\r\n"))
	f := fs.Get(id)

	if f.Flags&FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag, got %v", f.Flags)
	}
	if got := string(f.Content); got != "x = 1\ny = 2\n" {
		t.Errorf("content not normalized: %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("req.py", []byte("a = 1\nbb = 2\nccc = 3\n"))

	tests := []struct {
		name     string
		span     Span
		wantLine uint32
		wantCol  uint32
	}{
		{"start of file", Span{File: id, Start: 0, End: 1}, 1, 1},
		{"second line", Span{File: id, Start: 6, End: 8}, 2, 1},
		{"middle of third line", Span{File: id, Start: 17, End: 18}, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(tt.span)
			if start.Line != tt.wantLine || start.Col != tt.wantCol {
				t.Errorf("Resolve(%v) = %d:%d, want %d:%d",
					tt.span, start.Line, start.Col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("req.py", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q, want %q", got, "second")
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("GetLine(3) = %q, want %q", got, "third")
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 8}
	b := Span{File: 0, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Errorf("Cover = %v, want 0:2-8", got)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}
