package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/themegen"
)

// NormalGroup is the highlight group used for text with no better match.
const NormalGroup = "Normal"

// groups maps chroma token types to the standard Neovim syntax groups.
// Types missing here fall back through their sub-category and category.
var groups = map[chromalib.TokenType]string{
	chromalib.Comment:        "Comment",
	chromalib.CommentPreproc: "PreProc",

	chromalib.Keyword:            "Keyword",
	chromalib.KeywordType:        "Type",
	chromalib.KeywordConstant:    "Boolean",
	chromalib.KeywordDeclaration: "Statement",
	chromalib.KeywordNamespace:   "Include",

	chromalib.Name:              "Identifier",
	chromalib.NameBuiltin:       "Function",
	chromalib.NameFunction:      "Function",
	chromalib.NameFunctionMagic: "Function",
	chromalib.NameClass:         "Type",
	chromalib.NameConstant:      "Constant",
	chromalib.NameTag:           "Tag",

	chromalib.Literal:      "Constant",
	chromalib.String:       "String",
	chromalib.StringEscape: "Special",
	chromalib.StringChar:   "Character",
	chromalib.Number:       "Number",
	chromalib.NumberFloat:  "Float",
	chromalib.Operator:     "Operator",
	chromalib.OperatorWord: "Keyword",
	chromalib.Punctuation:  "Delimiter",
	chromalib.Error:        "Error",

	chromalib.GenericError:    "Error",
	chromalib.GenericInserted: "DiffAdd",
	chromalib.GenericDeleted:  "DiffDelete",
}

// GroupFor returns the Neovim highlight group for a chroma token type.
func GroupFor(tt chromalib.TokenType) string {
	for _, t := range []chromalib.TokenType{tt, tt.SubCategory(), tt.Category()} {
		if g, ok := groups[t]; ok {
			return g
		}
	}
	return NormalGroup
}

// StyleFromTheme returns a function that styles chroma token types with the
// theme's definition of the matching group. Groups the theme does not define
// use its Normal group, or the terminal default.
func StyleFromTheme(theme *themegen.Theme) StyleFunc {
	return func(tt chromalib.TokenType) themegen.Style {
		if def, ok := theme.Lookup(GroupFor(tt)); ok {
			return def.Style()
		}
		if def, ok := theme.Lookup(NormalGroup); ok {
			return def.Style()
		}
		return themegen.Style{}
	}
}
