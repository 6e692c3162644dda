package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline marks the end of a logical line.
	Newline
	// Indent opens a new indentation block.
	Indent
	// Dedent closes an indentation block.
	Dedent

	// Ident represents an identifier token.
	Ident
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal // nonlocal
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwExcept represents the 'except' keyword.
	KwExcept // except
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwDel represents the 'del' keyword.
	KwDel // del
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit
	// FStringLit represents the formatted string literal token.
	FStringLit
	// TrueLit represents the 'True' literal.
	TrueLit // True
	// FalseLit represents the 'False' literal.
	FalseLit // False
	// NoneLit represents the 'None' literal.
	NoneLit // None

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the power operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// SlashSlash represents the floor division operator token.
	SlashSlash // //
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// SlashSlashAssign represents the floor division assign operator token.
	SlashSlashAssign // //=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Amp represents the bitwise and operator token.
	Amp // &
	// Pipe represents the bitwise or operator token.
	Pipe // |
	// Caret represents the bitwise xor operator token.
	Caret // ^
	// Tilde represents the bitwise not operator token.
	Tilde // ~
	// Shl represents the left shift operator token.
	Shl // <<
	// Shr represents the right shift operator token.
	Shr // >>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the return-annotation arrow token.
	Arrow // ->
	// At represents the decorator marker token.
	At // @
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Newline:          "Newline",
	Indent:           "Indent",
	Dedent:           "Dedent",
	Ident:            "Ident",
	KwDef:            "def",
	KwReturn:         "return",
	KwIf:             "if",
	KwElif:           "elif",
	KwElse:           "else",
	KwFor:            "for",
	KwWhile:          "while",
	KwIn:             "in",
	KwNot:            "not",
	KwAnd:            "and",
	KwOr:             "or",
	KwIs:             "is",
	KwPass:           "pass",
	KwBreak:          "break",
	KwContinue:       "continue",
	KwClass:          "class",
	KwLambda:         "lambda",
	KwImport:         "import",
	KwFrom:           "from",
	KwAs:             "as",
	KwGlobal:         "global",
	KwNonlocal:       "nonlocal",
	KwTry:            "try",
	KwExcept:         "except",
	KwFinally:        "finally",
	KwRaise:          "raise",
	KwWith:           "with",
	KwAssert:         "assert",
	KwDel:            "del",
	KwYield:          "yield",
	KwAsync:          "async",
	KwAwait:          "await",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	FStringLit:       "FStringLit",
	TrueLit:          "True",
	FalseLit:         "False",
	NoneLit:          "None",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	StarStar:         "**",
	Slash:            "/",
	SlashSlash:       "//",
	Percent:          "%",
	Assign:           "=",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	SlashSlashAssign: "//=",
	PercentAssign:    "%=",
	EqEq:             "==",
	BangEq:           "!=",
	Lt:               "<",
	LtEq:             "<=",
	Gt:               ">",
	GtEq:             ">=",
	Amp:              "&",
	Pipe:             "|",
	Caret:            "^",
	Tilde:            "~",
	Shl:              "<<",
	Shr:              ">>",
	LParen:           "(",
	RParen:           ")",
	LBracket:         "[",
	RBracket:         "]",
	LBrace:           "{",
	RBrace:           "}",
	Comma:            ",",
	Colon:            ":",
	Semicolon:        ";",
	Dot:              ".",
	Arrow:            "->",
	At:               "@",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
