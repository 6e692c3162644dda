// Package types defines the closed semantic type model assigned to every
// value, variable, and function during inference. The set is deliberately
// small: the translator only guarantees faithful output for this subset, and
// the emitter matches exhaustively over Kind so a new kind cannot be added
// without visiting every rendering site.
package types

import (
	"fmt"
	"strings"
)

// Kind enumerates all supported kinds of semantic types.
type Kind uint8

const (
	// KindUnresolved marks a type inference could not settle; target
	// profiles render it as their generic ("auto") form.
	KindUnresolved Kind = iota
	KindInt
	KindFloat
	KindBool
	// KindText is owned/borrowed text of any length.
	KindText
	// KindChar is a single character obtained by indexing text. It is
	// distinct from KindText so concatenation can promote it explicitly.
	KindChar
	KindArray
	KindMap
	KindStruct
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindUnresolved:
		return "unresolved"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindChar:
		return "char"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Member is a named field of a struct tag.
type Member struct {
	Name string
	Type *Type
}

// Type is a descriptor for any supported semantic type. Values are immutable
// after construction; composite kinds point at their component types.
type Type struct {
	Kind    Kind
	Elem    *Type    // KindArray element
	Key     *Type    // KindMap key
	Value   *Type    // KindMap value
	Name    string   // KindStruct name
	Members []Member // KindStruct fields, declaration order
}

// Singletons for the scalar kinds. Composite kinds go through the Make
// constructors.
var (
	Unresolved = &Type{Kind: KindUnresolved}
	Int        = &Type{Kind: KindInt}
	Float      = &Type{Kind: KindFloat}
	Bool       = &Type{Kind: KindBool}
	Text       = &Type{Kind: KindText}
	Char       = &Type{Kind: KindChar}
	Void       = &Type{Kind: KindVoid}
)

// MakeArray describes a homogeneous sequence of elem.
func MakeArray(elem *Type) *Type {
	if elem == nil {
		elem = Unresolved
	}
	return &Type{Kind: KindArray, Elem: elem}
}

// MakeMap describes a homogeneous key/value mapping.
func MakeMap(key, value *Type) *Type {
	if key == nil {
		key = Unresolved
	}
	if value == nil {
		value = Unresolved
	}
	return &Type{Kind: KindMap, Key: key, Value: value}
}

// MakeStruct describes a named aggregate with ordered members.
func MakeStruct(name string, members []Member) *Type {
	return &Type{Kind: KindStruct, Name: name, Members: members}
}

// IsNumeric reports whether the type participates in arithmetic promotion.
func (t *Type) IsNumeric() bool {
	return t != nil && (t.Kind == KindInt || t.Kind == KindFloat || t.Kind == KindBool)
}

// IsTextual reports whether the type carries character data.
func (t *Type) IsTextual() bool {
	return t != nil && (t.Kind == KindText || t.Kind == KindChar)
}

// IsContainer reports whether the type is indexable storage.
func (t *Type) IsContainer() bool {
	return t != nil && (t.Kind == KindArray || t.Kind == KindMap)
}

// IsUnresolved reports whether inference gave up on the type.
func (t *Type) IsUnresolved() bool {
	return t == nil || t.Kind == KindUnresolved
}

// ElemOf returns the type produced by indexing t: the array element, the map
// value, or Char for text. Anything else indexes to Unresolved.
func (t *Type) ElemOf() *Type {
	if t == nil {
		return Unresolved
	}
	switch t.Kind {
	case KindArray:
		return t.Elem
	case KindMap:
		return t.Value
	case KindText:
		return Char
	default:
		return Unresolved
	}
}

// Equal compares two types structurally.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindArray:
		return Equal(a.Elem, b.Elem)
	case KindMap:
		return Equal(a.Key, b.Key) && Equal(a.Value, b.Value)
	case KindStruct:
		if a.Name != b.Name || len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i].Name != b.Members[i].Name || !Equal(a.Members[i].Type, b.Members[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the tag in a target-neutral notation, used by diagnostics
// and tests.
func (t *Type) String() string {
	if t == nil {
		return "unresolved"
	}
	switch t.Kind {
	case KindArray:
		return "array<" + t.Elem.String() + ">"
	case KindMap:
		return "map<" + t.Key.String() + ", " + t.Value.String() + ">"
	case KindStruct:
		var sb strings.Builder
		sb.WriteString("struct ")
		sb.WriteString(t.Name)
		sb.WriteString(" {")
		for i, m := range t.Members {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.Name)
			sb.WriteString(": ")
			sb.WriteString(m.Type.String())
		}
		sb.WriteString("}")
		return sb.String()
	default:
		return t.Kind.String()
	}
}
