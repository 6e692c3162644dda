package types

// Promote resolves the result tag of a binary arithmetic/concatenation
// expression by a fixed lattice: Text dominates everything (concatenation
// semantics win when either side is textual), then Float dominates Int,
// otherwise Int. Non-numeric, non-text operands fall back to Int — the
// documented lossy default.
func Promote(left, right *Type) *Type {
	if left.IsTextual() || right.IsTextual() {
		return Text
	}
	if kindOf(left) == KindFloat || kindOf(right) == KindFloat {
		return Float
	}
	return Int
}

func kindOf(t *Type) Kind {
	if t == nil {
		return KindUnresolved
	}
	return t.Kind
}
