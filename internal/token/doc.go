// Package token defines lexical token kinds for the Python front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Newline/Indent/Dedent are synthetic layout tokens produced by the
//     lexer's indentation tracking; they carry empty text.
//   - Built-in names (print, len, range, str, ...) are identifiers. They are
//     recognized by the signature registry, not the lexer.
package token
