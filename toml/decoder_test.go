package toml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/themegen"
	"github.com/fwojciec/themegen/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("keeps inline table order", func(t *testing.T) {
		t.Parallel()

		input := `
[palette]
red = "#ff0000"
blue = "#0000ff"

[highlights]
Zeta = { fg = "red", bold = true }
Alpha = { italic = true, fg = "#888888", bg = "#000000" }
Mid = { fg = "blue" }
`
		doc, err := toml.NewDecoder().Decode(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []string{"palette", "highlights"}, doc.Keys())

		palette := get[*themegen.Table](t, doc, "palette")
		assert.Equal(t, []string{"red", "blue"}, palette.Keys())

		highlights := get[*themegen.Table](t, doc, "highlights")
		assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, highlights.Keys())

		alpha := get[*themegen.Table](t, highlights, "Alpha")
		assert.Equal(t, []string{"italic", "fg", "bg"}, alpha.Keys())
		assert.Equal(t, true, get[bool](t, alpha, "italic"))
		assert.Equal(t, "#888888", get[string](t, alpha, "fg"))
	})

	t.Run("keeps order of table headers and dotted keys", func(t *testing.T) {
		t.Parallel()

		input := `
[highlights.Comment]
fg = "#888888"

[highlights.Error]
fg = "#ff0000"

[highlights]
Keyword.fg = "#ff00ff"
Keyword.bold = true
`
		doc, err := toml.NewDecoder().Decode(strings.NewReader(input))
		require.NoError(t, err)

		highlights := get[*themegen.Table](t, doc, "highlights")
		assert.Equal(t, []string{"Comment", "Error", "Keyword"}, highlights.Keys())
		keyword := get[*themegen.Table](t, highlights, "Keyword")
		assert.Equal(t, []string{"fg", "bold"}, keyword.Keys())
	})

	t.Run("converts arrays and scalars", func(t *testing.T) {
		t.Parallel()

		input := `
n = 3
f = 1.5
list = [1, 2]
[[items]]
b = 2
a = 1
`
		doc, err := toml.NewDecoder().Decode(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, int64(3), get[int64](t, doc, "n"))
		assert.Equal(t, 1.5, get[float64](t, doc, "f"))
		assert.Equal(t, []any{int64(1), int64(2)}, get[[]any](t, doc, "list"))

		items := get[[]any](t, doc, "items")
		require.Len(t, items, 1)
		item, ok := items[0].(*themegen.Table)
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, item.Keys())
	})

	t.Run("wraps syntax errors as malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := toml.NewDecoder().Decode(strings.NewReader("[palette]\nred = \n"))

		require.ErrorIs(t, err, themegen.ErrMalformedDocument)
		var terr *themegen.Error
		require.True(t, errors.As(err, &terr))
		assert.Positive(t, terr.Line)
	})

	t.Run("rejects duplicate keys", func(t *testing.T) {
		t.Parallel()

		_, err := toml.NewDecoder().Decode(strings.NewReader("[palette]\nred = \"#f00\"\nred = \"#0f0\"\n"))

		require.ErrorIs(t, err, themegen.ErrMalformedDocument)
	})

	t.Run("empty document has no sections", func(t *testing.T) {
		t.Parallel()

		doc, err := toml.NewDecoder().Decode(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, 0, doc.Len())
	})
}

func TestDecoder_CompilesTheme(t *testing.T) {
	t.Parallel()

	input := `
[palette]
red = "#ff0000"

[highlights]
A = { fg = "red" }
B = { fg = "#111111", underline = true }
C = { fg = "#222222", bg = "#333333" }
`
	doc, err := toml.NewDecoder().Decode(strings.NewReader(input))
	require.NoError(t, err)

	theme, err := themegen.Compile("demo", doc)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"vim.api.nvim_set_hl(0, 'A', { fg = '#ff0000' })",
		"vim.api.nvim_set_hl(0, 'B', { fg = '#111111', underline = true })",
		"vim.api.nvim_set_hl(0, 'C', { fg = '#222222', bg = '#333333' })",
	}, themegen.Statements(theme.Highlights))
}

// get fetches key from tbl and asserts its type.
func get[T any](t *testing.T, tbl *themegen.Table, key string) T {
	t.Helper()

	v, ok := tbl.Get(key)
	require.True(t, ok, "missing key %q", key)
	out, ok := v.(T)
	require.True(t, ok, "key %q has type %T", key, v)
	return out
}
