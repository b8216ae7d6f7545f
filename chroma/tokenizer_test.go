package chroma_test

import (
	"strings"
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/themegen"
	"github.com/fwojciec/themegen/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groupStyle tags every token with its group name so tests can check mapping.
func groupStyle(tt chromalib.TokenType) themegen.Style {
	return themegen.Style{Foreground: chroma.GroupFor(tt)}
}

func TestNewTokenizer(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)
	require.Error(t, err)
}

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(groupStyle)
	require.NoError(t, err)

	t.Run("tokenizes Go code", func(t *testing.T) {
		t.Parallel()

		tokens := tokenizer.Tokenize("go", `package main`)
		require.NotEmpty(t, tokens)

		var reconstructed strings.Builder
		var found bool
		for _, tok := range tokens {
			reconstructed.WriteString(tok.Text)
			if tok.Text == "package" {
				found = true
				assert.Equal(t, "Include", tok.Style.Foreground)
			}
		}
		assert.Equal(t, "package main", reconstructed.String())
		assert.True(t, found, "should find 'package' keyword token")
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tokenizer.Tokenize("nonexistent-language-xyz", "some code"))
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		tokens := tokenizer.Tokenize("go", "")
		assert.NotNil(t, tokens)
		assert.Empty(t, tokens)
	})

	t.Run("styles comments and strings", func(t *testing.T) {
		t.Parallel()

		tokens := tokenizer.Tokenize("go", "x := \"hi\" // note")

		styles := make(map[string]string)
		for _, tok := range tokens {
			styles[strings.TrimSpace(tok.Text)] = tok.Style.Foreground
		}
		assert.Equal(t, "String", styles[`"hi"`])
		assert.Equal(t, "Comment", styles["// note"])
	})
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(groupStyle)
	require.NoError(t, err)

	t.Run("splits multi-line comments", func(t *testing.T) {
		t.Parallel()

		lines := tokenizer.TokenizeLines("go", "/* a\nb */\nx := 1")
		require.Len(t, lines, 3)

		assert.Equal(t, "/* a", lines[0][0].Text)
		assert.Equal(t, "Comment", lines[0][0].Style.Foreground)
		assert.Equal(t, "b */", lines[1][0].Text)
		assert.Equal(t, "Comment", lines[1][0].Style.Foreground)
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tokenizer.TokenizeLines("nonexistent-language-xyz", "a\nb"))
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tokenizer.TokenizeLines("go", ""))
	})
}
