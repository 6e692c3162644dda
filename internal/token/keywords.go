package token

var keywords = map[string]Kind{
	"def":      KwDef,
	"return":   KwReturn,
	"if":       KwIf,
	"elif":     KwElif,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"in":       KwIn,
	"not":      KwNot,
	"and":      KwAnd,
	"or":       KwOr,
	"is":       KwIs,
	"pass":     KwPass,
	"break":    KwBreak,
	"continue": KwContinue,
	"class":    KwClass,
	"lambda":   KwLambda,
	"import":   KwImport,
	"from":     KwFrom,
	"as":       KwAs,
	"global":   KwGlobal,
	"nonlocal": KwNonlocal,
	"try":      KwTry,
	"except":   KwExcept,
	"finally":  KwFinally,
	"raise":    KwRaise,
	"with":     KwWith,
	"assert":   KwAssert,
	"del":      KwDel,
	"yield":    KwYield,
	"async":    KwAsync,
	"await":    KwAwait,
	"True":     TrueLit,
	"False":    FalseLit,
	"None":     NoneLit,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
