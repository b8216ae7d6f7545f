package themegen_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/themegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePalette(t *testing.T) {
	t.Parallel()

	t.Run("builds palette in document order", func(t *testing.T) {
		t.Parallel()

		doc := table("palette", table(
			"red", "#ff0000",
			"green", "#00ff00",
			"blue", "#0000ff",
		))

		p, err := themegen.ResolvePalette(doc)

		require.NoError(t, err)
		assert.Equal(t, 3, p.Len())
		assert.Equal(t, []string{"red", "green", "blue"}, p.Names())
		c, ok := p.Lookup("green")
		assert.True(t, ok)
		assert.Equal(t, themegen.Color("#00ff00"), c)
	})

	t.Run("accepts any string as a color", func(t *testing.T) {
		t.Parallel()

		doc := table("palette", table("odd", "not-a-color"))

		p, err := themegen.ResolvePalette(doc)

		require.NoError(t, err)
		c, _ := p.Lookup("odd")
		assert.Equal(t, themegen.Color("not-a-color"), c)
	})

	t.Run("empty palette is valid", func(t *testing.T) {
		t.Parallel()

		p, err := themegen.ResolvePalette(table("palette", table()))

		require.NoError(t, err)
		assert.Equal(t, 0, p.Len())
	})

	t.Run("fails when section is missing", func(t *testing.T) {
		t.Parallel()

		_, err := themegen.ResolvePalette(table("highlights", table()))

		require.ErrorIs(t, err, themegen.ErrMissingSection)
		assert.Contains(t, err.Error(), `"palette"`)
	})

	t.Run("fails when section is not a table", func(t *testing.T) {
		t.Parallel()

		_, err := themegen.ResolvePalette(table("palette", "#ff0000"))

		require.ErrorIs(t, err, themegen.ErrWrongShape)
		assert.Equal(t, "palette: expected table, got string", err.Error())
	})

	t.Run("fails when a value is not a string", func(t *testing.T) {
		t.Parallel()

		_, err := themegen.ResolvePalette(table("palette", table("red", int64(255))))

		require.ErrorIs(t, err, themegen.ErrWrongAttributeType)
		var terr *themegen.Error
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, "red", terr.Key)
		assert.Equal(t, "integer", terr.Got)
	})
}

func TestNewPalette(t *testing.T) {
	t.Parallel()

	p := themegen.NewPalette(
		themegen.PaletteEntry{Name: "a", Color: "#111111"},
		themegen.PaletteEntry{Name: "b", Color: "#222222"},
		themegen.PaletteEntry{Name: "a", Color: "#333333"},
	)

	assert.Equal(t, []string{"a", "b"}, p.Names())
	c, _ := p.Lookup("a")
	assert.Equal(t, themegen.Color("#333333"), c)
	assert.Equal(t, []themegen.PaletteEntry{
		{Name: "a", Color: "#333333"},
		{Name: "b", Color: "#222222"},
	}, p.Entries())

	_, ok := p.Lookup("missing")
	assert.False(t, ok)
}
