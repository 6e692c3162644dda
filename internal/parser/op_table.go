package parser

import (
	"pycc/internal/ast"
	"pycc/internal/token"
)

// Таблица приоритетов для бинарных операторов между сравнениями и
// унарными. Чем больше число, тем выше приоритет. Булевы or/and,
// цепочки сравнений и ** обрабатываются отдельными уровнями.
const (
	precBitwiseOr      = 1 // |
	precBitwiseXor     = 2 // ^
	precBitwiseAnd     = 3 // &
	precShift          = 4 // << >>
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * / // %
)

// getBinaryOperatorPrec возвращает приоритет бинарного оператора
// или -1, если токен оператором не является.
func getBinaryOperatorPrec(kind token.Kind) int {
	switch kind {
	case token.Pipe:
		return precBitwiseOr
	case token.Caret:
		return precBitwiseXor
	case token.Amp:
		return precBitwiseAnd
	case token.Shl, token.Shr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.SlashSlash, token.Percent:
		return precMultiplicative
	default:
		return -1
	}
}

// tokenKindToBinaryOp преобразует токен в тип бинарного оператора
func tokenKindToBinaryOp(kind token.Kind) ast.Op {
	switch kind {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	case token.SlashSlash:
		return ast.OpFloorDiv
	case token.Percent:
		return ast.OpMod
	case token.StarStar:
		return ast.OpPow
	case token.Amp:
		return ast.OpBitAnd
	case token.Pipe:
		return ast.OpBitOr
	case token.Caret:
		return ast.OpBitXor
	case token.Shl:
		return ast.OpShl
	case token.Shr:
		return ast.OpShr
	default:
		return ast.OpInvalid
	}
}

// tokenKindToComparisonOp преобразует токен в оператор сравнения
// (is/is not/in/not in собираются в parseComparison из ключевых слов).
func tokenKindToComparisonOp(kind token.Kind) ast.Op {
	switch kind {
	case token.EqEq:
		return ast.OpEq
	case token.BangEq:
		return ast.OpNotEq
	case token.Lt:
		return ast.OpLt
	case token.LtEq:
		return ast.OpLtE
	case token.Gt:
		return ast.OpGt
	case token.GtEq:
		return ast.OpGtE
	default:
		return ast.OpInvalid
	}
}

// tokenKindToAugOp преобразует токен расширенного присваивания в оператор.
func tokenKindToAugOp(kind token.Kind) ast.Op {
	switch kind {
	case token.PlusAssign:
		return ast.OpAdd
	case token.MinusAssign:
		return ast.OpSub
	case token.StarAssign:
		return ast.OpMul
	case token.SlashAssign:
		return ast.OpDiv
	case token.SlashSlashAssign:
		return ast.OpFloorDiv
	case token.PercentAssign:
		return ast.OpMod
	default:
		return ast.OpInvalid
	}
}
