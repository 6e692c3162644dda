package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"def", KwDef, true},
		{"elif", KwElif, true},
		{"lambda", KwLambda, true},
		{"True", TrueLit, true},
		{"None", NoneLit, true},
		{"true", Invalid, false}, // case-sensitive
		{"print", Invalid, false},
		{"range", Invalid, false},
	}
	for _, tt := range tests {
		k, ok := LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
			continue
		}
		if ok && k != tt.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, k, tt.kind)
		}
	}
}

func TestTokenClassifiers(t *testing.T) {
	if !(Token{Kind: FStringLit}).IsLiteral() {
		t.Error("FStringLit must be a literal")
	}
	if !(Token{Kind: KwLambda}).IsKeyword() {
		t.Error("lambda must be a keyword")
	}
	if !(Token{Kind: Dedent}).IsLayout() {
		t.Error("Dedent must be a layout token")
	}
	if !(Token{Kind: SlashSlashAssign}).IsAugAssign() {
		t.Error("//= must be an augmented assignment")
	}
	if (Token{Kind: Assign}).IsAugAssign() {
		t.Error("= must not be an augmented assignment")
	}
}
