package themegen

import "strings"

// SectionHighlights is the top-level document key holding highlight groups.
const SectionHighlights = "highlights"

// HighlightDefinition holds the visual attributes of one highlight group.
// Unset toggles are false and are omitted when rendering.
type HighlightDefinition struct {
	Foreground    Color // Always set after parsing
	Background    Color // Empty when not given
	Bold          bool
	Italic        bool
	Undercurl     bool
	Underline     bool
	Strikethrough bool
	Reverse       bool
	Nocombine     bool
}

// Toggle returns the value of a boolean attribute.
func (d HighlightDefinition) Toggle(a Attribute) bool {
	switch a {
	case AttrBold:
		return d.Bold
	case AttrItalic:
		return d.Italic
	case AttrUndercurl:
		return d.Undercurl
	case AttrUnderline:
		return d.Underline
	case AttrStrikethrough:
		return d.Strikethrough
	case AttrReverse:
		return d.Reverse
	case AttrNocombine:
		return d.Nocombine
	default:
		return false
	}
}

func (d *HighlightDefinition) setToggle(a Attribute, v bool) {
	switch a {
	case AttrBold:
		d.Bold = v
	case AttrItalic:
		d.Italic = v
	case AttrUndercurl:
		d.Undercurl = v
	case AttrUnderline:
		d.Underline = v
	case AttrStrikethrough:
		d.Strikethrough = v
	case AttrReverse:
		d.Reverse = v
	case AttrNocombine:
		d.Nocombine = v
	}
}

// Style converts the definition into a terminal style for previews.
// Undercurl has no terminal equivalent and is shown as underline.
func (d HighlightDefinition) Style() Style {
	return Style{
		Foreground:    string(d.Foreground),
		Background:    string(d.Background),
		Bold:          d.Bold,
		Italic:        d.Italic,
		Underline:     d.Underline || d.Undercurl,
		Strikethrough: d.Strikethrough,
		Reverse:       d.Reverse,
	}
}

// Highlight pairs a highlight group name with its definition.
type Highlight struct {
	Name       string
	Definition HighlightDefinition
}

// CompileHighlights extracts the highlights section from doc, resolving
// foreground references through p. Groups keep their document order.
func CompileHighlights(doc *Table, p Palette) ([]Highlight, error) {
	raw, ok := doc.Get(SectionHighlights)
	if !ok {
		return nil, &Error{Kind: ErrMissingSection, Section: SectionHighlights}
	}
	tbl, ok := raw.(*Table)
	if !ok {
		return nil, &Error{
			Kind:    ErrWrongShape,
			Section: SectionHighlights,
			Want:    "table",
			Got:     ValueKind(raw),
		}
	}

	highlights := make([]Highlight, 0, tbl.Len())
	for _, group := range tbl.Keys() {
		v, _ := tbl.Get(group)
		attrs, ok := v.(*Table)
		if !ok {
			return nil, &Error{
				Kind:    ErrWrongShape,
				Section: SectionHighlights,
				Group:   group,
				Want:    "table",
				Got:     ValueKind(v),
			}
		}
		def, err := ParseDefinition(group, attrs, p)
		if err != nil {
			return nil, err
		}
		highlights = append(highlights, Highlight{Name: group, Definition: def})
	}
	return highlights, nil
}

// ParseDefinition validates one group's attribute table.
// Only the foreground is resolved through the palette; backgrounds are
// always taken literally.
func ParseDefinition(group string, attrs *Table, p Palette) (HighlightDefinition, error) {
	var def HighlightDefinition

	if !attrs.Has("fg") && !attrs.Has("foreground") {
		return def, &Error{Kind: ErrMissingForeground, Section: SectionHighlights, Group: group}
	}

	for _, key := range attrs.Keys() {
		v, _ := attrs.Get(key)
		attr, ok := ParseAttribute(key)
		if !ok {
			return def, &Error{
				Kind:    ErrUnknownAttribute,
				Section: SectionHighlights,
				Group:   group,
				Key:     key,
			}
		}

		wrongType := func(want string) error {
			return &Error{
				Kind:    ErrWrongAttributeType,
				Section: SectionHighlights,
				Group:   group,
				Key:     key,
				Want:    want,
				Got:     ValueKind(v),
			}
		}

		switch {
		case attr == AttrForeground:
			s, ok := v.(string)
			if !ok {
				return def, wrongType("string")
			}
			fg, err := resolveForeground(s, p)
			if err != nil {
				err.Group = group
				err.Key = key
				return def, err
			}
			def.Foreground = fg
		case attr == AttrBackground:
			s, ok := v.(string)
			if !ok {
				return def, wrongType("string")
			}
			def.Background = Color(s)
		case attr.IsToggle():
			b, ok := v.(bool)
			if !ok {
				return def, wrongType("bool")
			}
			def.setToggle(attr, b)
		}
	}

	return def, nil
}

// resolveForeground returns literal colors as-is and looks everything else
// up in the palette.
func resolveForeground(value string, p Palette) (Color, *Error) {
	if strings.HasPrefix(value, "#") {
		return Color(value), nil
	}
	c, ok := p.Lookup(value)
	if !ok {
		return "", &Error{
			Kind:    ErrUnresolvedPaletteReference,
			Section: SectionHighlights,
			Value:   value,
		}
	}
	return c, nil
}
