package driver

import (
	"unfmt/internal/diag"
	"unfmt/internal/lexer"
	"unfmt/internal/source"
	"unfmt/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a file with trivia attached. Lexical errors end up in Bag;
// the tokens before the first error are still returned.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens, _ := lexer.LexWithOptions(file, lexer.Options{
		Reporter:   diag.BagReporter{Bag: bag},
		KeepTrivia: true,
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
