package ast

// Op enumerates binary, unary, boolean, and comparison operators.
type Op uint8

const (
	OpInvalid Op = iota

	// Binary arithmetic
	OpAdd      // +
	OpSub      // -
	OpMul      // *
	OpDiv      // /
	OpFloorDiv // //
	OpMod      // %
	OpPow      // **
	OpBitAnd   // &
	OpBitOr    // |
	OpBitXor   // ^
	OpShl      // <<
	OpShr      // >>

	// Comparison
	OpEq    // ==
	OpNotEq // !=
	OpLt    // <
	OpLtE   // <=
	OpGt    // >
	OpGtE   // >=
	OpIs    // is
	OpIsNot // is not
	OpIn    // in
	OpNotIn // not in

	// Boolean
	OpAnd // and
	OpOr  // or

	// Unary
	OpNot    // not
	OpUAdd   // +x
	OpUSub   // -x
	OpInvert // ~x
)

var opNames = map[Op]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpFloorDiv: "//",
	OpMod:      "%",
	OpPow:      "**",
	OpBitAnd:   "&",
	OpBitOr:    "|",
	OpBitXor:   "^",
	OpShl:      "<<",
	OpShr:      ">>",
	OpEq:       "==",
	OpNotEq:    "!=",
	OpLt:       "<",
	OpLtE:      "<=",
	OpGt:       ">",
	OpGtE:      ">=",
	OpIs:       "is",
	OpIsNot:    "is not",
	OpIn:       "in",
	OpNotIn:    "not in",
	OpAnd:      "and",
	OpOr:       "or",
	OpNot:      "not",
	OpUAdd:     "+",
	OpUSub:     "-",
	OpInvert:   "~",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "?"
}

// IsComparison reports whether the operator belongs to the comparison group.
func (o Op) IsComparison() bool {
	switch o {
	case OpEq, OpNotEq, OpLt, OpLtE, OpGt, OpGtE, OpIs, OpIsNot, OpIn, OpNotIn:
		return true
	default:
		return false
	}
}
