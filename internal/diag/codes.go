package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadIndent          Code = 1004
	LexTabIndent          Code = 1005

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectColon      Code = 2004
	SynExpectIndent     Code = 2005
	SynExpectNewline    Code = 2006
	SynUnclosedDelim    Code = 2007
	SynBadAssignTarget  Code = 2008
	SynExpectBlock      Code = 2009
	SynBadFString       Code = 2010

	// Конверсионные (soft failures).
	// 3001-3099: unsupported constructs
	CnvUnsupportedConstruct Code = 3001
	CnvMultipleTargets      Code = 3002
	CnvComplexTarget        Code = 3003
	CnvComplexCompare       Code = 3004
	CnvComplexLoop          Code = 3005

	// 3100-3199: ambiguous inference
	CnvUnboundName       Code = 3100
	CnvUnknownCallResult Code = 3101

	// 3200-3299: lossy conversions
	CnvTextRealloc     Code = 3200
	CnvTextConcatAlloc Code = 3201
	CnvTypeMismatch    Code = 3202
	CnvIdentityCompare Code = 3203
	CnvMembershipTest  Code = 3204
	CnvPowerFloat      Code = 3205
	CnvSliceCopy       Code = 3206
	CnvDictAsStruct    Code = 3207
	CnvClassLowering   Code = 3208
	CnvTextMethod      Code = 3209
	CnvListMethod      Code = 3210
	CnvFStringBuffer   Code = 3211
	CnvNonTextConcat   Code = 3212
	CnvLenFallback     Code = 3213
)

// Kind is the coarse classification of a conversion diagnostic, matching the
// three soft-failure categories the API exposes to callers.
type Kind uint8

const (
	// KindNone marks diagnostics outside the conversion phase (lex/syntax).
	KindNone Kind = iota
	// KindUnsupported marks constructs the emitter degraded to a placeholder.
	KindUnsupported
	// KindAmbiguous marks best-guess inference decisions.
	KindAmbiguous
	// KindLossy marks approximate translations that need manual review.
	KindLossy
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindAmbiguous:
		return "ambiguous"
	case KindLossy:
		return "lossy-conversion"
	}
	return "none"
}

// Kind returns the soft-failure classification of a conversion code.
func (c Code) Kind() Kind {
	switch ic := int(c); {
	case ic >= 3001 && ic < 3100:
		return KindUnsupported
	case ic >= 3100 && ic < 3200:
		return KindAmbiguous
	case ic >= 3200 && ic < 3300:
		return KindLossy
	}
	return KindNone
}

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexInfo:                 "Lexical information",
	LexUnknownChar:          "Unknown character",
	LexUnterminatedString:   "Unterminated string",
	LexBadNumber:            "Bad number",
	LexBadIndent:            "Inconsistent indentation",
	LexTabIndent:            "Tab used in indentation",
	SynInfo:                 "Syntax information",
	SynUnexpectedToken:      "Unexpected token",
	SynExpectExpression:     "Expect expression",
	SynExpectIdentifier:     "Expect identifier",
	SynExpectColon:          "Expect ':'",
	SynExpectIndent:         "Expect indented block",
	SynExpectNewline:        "Expect end of line",
	SynUnclosedDelim:        "Unclosed delimiter",
	SynBadAssignTarget:      "Invalid assignment target",
	SynExpectBlock:          "Expect statement block",
	SynBadFString:           "Malformed f-string",
	CnvUnsupportedConstruct: "Unsupported construct",
	CnvMultipleTargets:      "Multiple assignment targets not supported",
	CnvComplexTarget:        "Complex assignment target not supported",
	CnvComplexCompare:       "Chained comparison not supported",
	CnvComplexLoop:          "Unsupported for-loop shape",
	CnvUnboundName:          "Name used before assignment",
	CnvUnknownCallResult:    "Unknown call result type",
	CnvTextRealloc:          "String re-assignment needs manual deallocation",
	CnvTextConcatAlloc:      "String concatenation needs manual memory management",
	CnvTypeMismatch:         "Incompatible re-assignment type",
	CnvIdentityCompare:      "Identity comparison converted to value comparison",
	CnvMembershipTest:       "Membership test needs a contains helper",
	CnvPowerFloat:           "Power operator converted to pow()",
	CnvSliceCopy:            "Slicing creates a copy",
	CnvDictAsStruct:         "Dictionary converted to struct initializer",
	CnvClassLowering:        "Class lowered to struct with function pointers",
	CnvTextMethod:           "String method mapped approximately",
	CnvListMethod:           "List method needs a helper implementation",
	CnvFStringBuffer:        "Formatted string needs a formatting helper",
	CnvNonTextConcat:        "Non-text operand converted for concatenation",
	CnvLenFallback:          "len() on unknown operand",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CNV%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
