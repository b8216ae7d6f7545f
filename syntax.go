package themegen

// Token represents a syntax-highlighted segment of code.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply
}

// Style represents how a highlight renders in a terminal.
type Style struct {
	Foreground    string // Hex color code (e.g., "#ff0000") or empty for default
	Background    string // Hex color code or empty for default
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Reverse       bool
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// Tokenize splits source code into syntax-highlighted tokens for the given language.
	// Returns nil if the language is not supported.
	Tokenize(language, source string) []Token
	// TokenizeLines tokenizes the whole source and splits the result by line.
	TokenizeLines(language, source string) [][]Token
}
