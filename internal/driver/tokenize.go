package driver

import (
	"pycc/internal/diag"
	"pycc/internal/lexer"
	"pycc/internal/source"
	"pycc/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize прогоняет файл через лексер и собирает все токены до EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenize(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource — то же для исходника из памяти.
func TokenizeSource(name string, src []byte, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenize(fs, fileID, maxDiagnostics), nil
}

func tokenize(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
