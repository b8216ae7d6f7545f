// Package chroma highlights preview source code using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/themegen"
)

// Compile-time interface verification.
var _ themegen.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to theme styles.
type StyleFunc func(chromalib.TokenType) themegen.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a chroma-based tokenizer with the given style function.
// Use StyleFromTheme to style tokens with a compiled theme.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source code into styled tokens for the given language.
// Returns nil if the language is not supported, and an empty slice for
// empty source.
func (t *Tokenizer) Tokenize(language, source string) []themegen.Token {
	if source == "" {
		return []themegen.Token{}
	}
	return t.tokenize(language, source)
}

// TokenizeLines tokenizes the whole source, so multi-line constructs keep
// their context, then splits the tokens at line breaks.
func (t *Tokenizer) TokenizeLines(language, source string) [][]themegen.Token {
	if source == "" {
		return [][]themegen.Token{}
	}
	tokens := t.tokenize(language, source)
	if tokens == nil {
		return nil
	}
	return splitLines(tokens)
}

func (t *Tokenizer) tokenize(language, source string) []themegen.Token {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []themegen.Token
	for tok := iterator(); tok != chromalib.EOF; tok = iterator() {
		tokens = append(tokens, themegen.Token{
			Text:  tok.Value,
			Style: t.styleFunc(tok.Type),
		})
	}
	return tokens
}

// splitLines breaks tokens spanning newlines into per-line pieces.
func splitLines(tokens []themegen.Token) [][]themegen.Token {
	var lines [][]themegen.Token
	var current []themegen.Token

	for _, tok := range tokens {
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				current = append(current, themegen.Token{Text: part, Style: tok.Style})
			}
			if i < len(parts)-1 {
				lines = append(lines, current)
				current = nil
			}
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
