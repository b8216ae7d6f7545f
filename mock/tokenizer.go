package mock

import "github.com/fwojciec/themegen"

// Compile-time interface verification.
var _ themegen.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of themegen.Tokenizer.
type Tokenizer struct {
	TokenizeFn      func(language, source string) []themegen.Token
	TokenizeLinesFn func(language, source string) [][]themegen.Token
}

func (t *Tokenizer) Tokenize(language, source string) []themegen.Token {
	return t.TokenizeFn(language, source)
}

func (t *Tokenizer) TokenizeLines(language, source string) [][]themegen.Token {
	return t.TokenizeLinesFn(language, source)
}
