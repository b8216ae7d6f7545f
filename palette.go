package themegen

// Color is a literal color value, usually "#rrggbb". The format is not validated.
type Color string

// Palette maps symbolic color names to literal colors.
// A Palette is immutable once built.
type Palette struct {
	names  []string
	colors map[string]Color
}

// NewPalette builds a palette from name/color pairs, keeping the given order.
// Later duplicates replace earlier values.
func NewPalette(entries ...PaletteEntry) Palette {
	p := Palette{colors: make(map[string]Color, len(entries))}
	for _, e := range entries {
		if _, ok := p.colors[e.Name]; !ok {
			p.names = append(p.names, e.Name)
		}
		p.colors[e.Name] = e.Color
	}
	return p
}

// PaletteEntry is one named color.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Lookup returns the color registered under name.
func (p Palette) Lookup(name string) (Color, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.names)
}

// Names returns color names in document order.
func (p Palette) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Entries returns the palette contents in document order.
func (p Palette) Entries() []PaletteEntry {
	out := make([]PaletteEntry, 0, len(p.names))
	for _, n := range p.names {
		out = append(out, PaletteEntry{Name: n, Color: p.colors[n]})
	}
	return out
}

// SectionPalette is the top-level document key holding the palette.
const SectionPalette = "palette"

// ResolvePalette extracts the palette section from doc.
func ResolvePalette(doc *Table) (Palette, error) {
	raw, ok := doc.Get(SectionPalette)
	if !ok {
		return Palette{}, &Error{Kind: ErrMissingSection, Section: SectionPalette}
	}
	tbl, ok := raw.(*Table)
	if !ok {
		return Palette{}, &Error{
			Kind:    ErrWrongShape,
			Section: SectionPalette,
			Want:    "table",
			Got:     ValueKind(raw),
		}
	}

	entries := make([]PaletteEntry, 0, tbl.Len())
	for _, name := range tbl.Keys() {
		v, _ := tbl.Get(name)
		s, ok := v.(string)
		if !ok {
			return Palette{}, &Error{
				Kind:    ErrWrongAttributeType,
				Section: SectionPalette,
				Key:     name,
				Want:    "string",
				Got:     ValueKind(v),
			}
		}
		entries = append(entries, PaletteEntry{Name: name, Color: Color(s)})
	}
	return NewPalette(entries...), nil
}
