package token

import (
	"pycc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or None literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, FStringLit, TrueLit, FalseLit, NoneLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwDef, KwReturn, KwIf, KwElif, KwElse, KwFor, KwWhile, KwIn, KwNot,
		KwAnd, KwOr, KwIs, KwPass, KwBreak, KwContinue, KwClass, KwLambda,
		KwImport, KwFrom, KwAs, KwGlobal, KwNonlocal, KwTry, KwExcept,
		KwFinally, KwRaise, KwWith, KwAssert, KwDel, KwYield, KwAsync, KwAwait:
		return true
	default:
		return false
	}
}

// IsLayout reports whether the token is a synthetic layout token.
func (t Token) IsLayout() bool {
	switch t.Kind {
	case Newline, Indent, Dedent:
		return true
	default:
		return false
	}
}

// IsAugAssign reports whether the token is an augmented assignment operator.
func (t Token) IsAugAssign() bool {
	switch t.Kind {
	case PlusAssign, MinusAssign, StarAssign, SlashAssign, SlashSlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}
