package themegen

import "strings"

// Theme is a fully resolved color theme.
type Theme struct {
	Name       string
	Palette    Palette
	Highlights []Highlight
}

// Compile resolves the palette and highlights of doc into a Theme.
// The first failure aborts compilation; no partial theme is returned.
func Compile(name string, doc *Table) (*Theme, error) {
	palette, err := ResolvePalette(doc)
	if err != nil {
		return nil, err
	}
	highlights, err := CompileHighlights(doc, palette)
	if err != nil {
		return nil, err
	}
	return &Theme{
		Name:       name,
		Palette:    palette,
		Highlights: highlights,
	}, nil
}

// Lookup returns the definition of a highlight group.
// When a group is declared more than once the last declaration wins,
// matching how Neovim applies the statements.
func (t *Theme) Lookup(group string) (HighlightDefinition, bool) {
	for i := len(t.Highlights) - 1; i >= 0; i-- {
		if t.Highlights[i].Name == group {
			return t.Highlights[i].Definition, true
		}
	}
	return HighlightDefinition{}, false
}

// Lua returns the generated statements as a single newline-terminated chunk.
func (t *Theme) Lua() string {
	var sb strings.Builder
	_ = WriteStatements(&sb, t.Highlights)
	return sb.String()
}
