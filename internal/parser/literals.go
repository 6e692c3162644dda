package parser

import (
	"strconv"
	"strings"

	"pycc/internal/ast"
	"pycc/internal/diag"
	"pycc/internal/token"
)

func (p *Parser) intLit(tok token.Token) (*ast.Expr, bool) {
	text := strings.ReplaceAll(tok.Text, "_", "")
	// база 0: strconv сам понимает 0x/0o/0b
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "integer literal out of range")
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprIntLit, Span: tok.Span, Int: v}, true
}

func (p *Parser) floatLit(tok token.Token) (*ast.Expr, bool) {
	text := strings.ReplaceAll(tok.Text, "_", "")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "malformed float literal")
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprFloatLit, Span: tok.Span, Float: v}, true
}

func (p *Parser) stringLit(tok token.Token) (*ast.Expr, bool) {
	value, ok := unquoteString(tok.Text)
	if !ok {
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "malformed string literal")
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprStringLit, Span: tok.Span, Str: value}, true
}

// unquoteString снимает кавычки (одиночные, двойные, тройные) и
// раскрывает стандартные escape-последовательности.
func unquoteString(raw string) (string, bool) {
	if len(raw) >= 6 {
		for _, q := range []string{`"""`, "'''"} {
			if strings.HasPrefix(raw, q) && strings.HasSuffix(raw, q) {
				return decodeEscapes(raw[3 : len(raw)-3])
			}
		}
	}
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[len(raw)-1] == raw[0] {
		return decodeEscapes(raw[1 : len(raw)-1])
	}
	return "", false
}

func decodeEscapes(s string) (string, bool) {
	if !strings.ContainsRune(s, '\\') {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\':
			b.WriteByte('\\')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case 'x':
			if i+2 >= len(s) {
				return "", false
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", false
			}
			b.WriteByte(byte(v))
			i += 2
		case '\n':
			// перенос строки после '\' внутри литерала — просто склейка
		default:
			// незнакомый escape оставляем как есть, как делает CPython
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String(), true
}
