package themegen

// Attribute is one recognized key of a highlight definition.
type Attribute int

// Highlight attributes, in rendering order.
const (
	AttrForeground Attribute = iota
	AttrBackground
	AttrBold
	AttrItalic
	AttrUndercurl
	AttrUnderline
	AttrStrikethrough
	AttrReverse
	AttrNocombine
)

// Toggles lists the boolean attributes in rendering order.
var Toggles = []Attribute{
	AttrBold,
	AttrItalic,
	AttrUndercurl,
	AttrUnderline,
	AttrStrikethrough,
	AttrReverse,
	AttrNocombine,
}

var attributeNames = map[string]Attribute{
	"fg":            AttrForeground,
	"foreground":    AttrForeground,
	"bg":            AttrBackground,
	"background":    AttrBackground,
	"bold":          AttrBold,
	"italic":        AttrItalic,
	"undercurl":     AttrUndercurl,
	"underline":     AttrUnderline,
	"strikethrough": AttrStrikethrough,
	"reverse":       AttrReverse,
	"nocombine":     AttrNocombine,
}

// ParseAttribute maps a definition key, including the long fg/bg aliases,
// to its Attribute.
func ParseAttribute(key string) (Attribute, bool) {
	a, ok := attributeNames[key]
	return a, ok
}

// String returns the key Neovim uses for the attribute.
func (a Attribute) String() string {
	switch a {
	case AttrForeground:
		return "fg"
	case AttrBackground:
		return "bg"
	case AttrBold:
		return "bold"
	case AttrItalic:
		return "italic"
	case AttrUndercurl:
		return "undercurl"
	case AttrUnderline:
		return "underline"
	case AttrStrikethrough:
		return "strikethrough"
	case AttrReverse:
		return "reverse"
	case AttrNocombine:
		return "nocombine"
	default:
		return "unknown"
	}
}

// IsToggle reports whether the attribute takes a boolean value.
func (a Attribute) IsToggle() bool {
	return a >= AttrBold && a <= AttrNocombine
}
