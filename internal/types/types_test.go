package types

import "testing"

func TestPromoteLattice(t *testing.T) {
	tests := []struct {
		name  string
		left  *Type
		right *Type
		want  *Type
	}{
		{"int int", Int, Int, Int},
		{"int float", Int, Float, Float},
		{"float int", Float, Int, Float},
		{"text wins over float", Text, Float, Text},
		{"char promotes to text", Int, Char, Text},
		{"text text", Text, Text, Text},
		{"bool bool", Bool, Bool, Int},
		{"unresolved falls back to int", Unresolved, Unresolved, Int},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Promote(tt.left, tt.right); got.Kind != tt.want.Kind {
				t.Errorf("Promote(%s, %s) = %s, want %s", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestElemOf(t *testing.T) {
	arr := MakeArray(Float)
	if got := arr.ElemOf(); got.Kind != KindFloat {
		t.Errorf("array elem = %s, want float", got)
	}
	if got := Text.ElemOf(); got.Kind != KindChar {
		t.Errorf("text elem = %s, want char", got)
	}
	m := MakeMap(Text, Int)
	if got := m.ElemOf(); got.Kind != KindInt {
		t.Errorf("map elem = %s, want int", got)
	}
	if got := Int.ElemOf(); !got.IsUnresolved() {
		t.Errorf("int elem = %s, want unresolved", got)
	}
}

func TestEqualStructural(t *testing.T) {
	a := MakeArray(Int)
	b := MakeArray(Int)
	if !Equal(a, b) {
		t.Error("identical array tags must compare equal")
	}
	if Equal(MakeArray(Int), MakeArray(Text)) {
		t.Error("array element mismatch must not compare equal")
	}

	s1 := MakeStruct("Point", []Member{{"x", Int}, {"y", Int}})
	s2 := MakeStruct("Point", []Member{{"x", Int}, {"y", Int}})
	if !Equal(s1, s2) {
		t.Error("identical struct tags must compare equal")
	}
	if Equal(s1, MakeStruct("Point", []Member{{"x", Int}})) {
		t.Error("member count mismatch must not compare equal")
	}
}

func TestString(t *testing.T) {
	if got := MakeMap(Text, MakeArray(Int)).String(); got != "map<text, array<int>>" {
		t.Errorf("String = %q", got)
	}
}
