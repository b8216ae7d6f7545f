// Package lipgloss renders compiled themes as terminal swatches using the
// Lipgloss styling library.
package lipgloss

import (
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themegen"
)

// StyleFor creates a lipgloss style from a theme style.
// If renderer is nil, the default lipgloss renderer is used.
func StyleFor(s themegen.Style, renderer *lipglosslib.Renderer) lipglosslib.Style {
	var style lipglosslib.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipglosslib.NewStyle()
	}
	if s.Foreground != "" {
		style = style.Foreground(lipglosslib.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipglosslib.Color(s.Background))
	}
	return style.
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Strikethrough(s.Strikethrough).
		Reverse(s.Reverse)
}

// Swatches renders one line per highlight group: the group name drawn in its
// own style, padded to a common width, followed by its attributes.
func Swatches(theme *themegen.Theme, renderer *lipglosslib.Renderer) string {
	width := 0
	for _, h := range theme.Highlights {
		if w := lipglosslib.Width(h.Name); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for _, h := range theme.Highlights {
		style := StyleFor(h.Definition.Style(), renderer)
		sb.WriteString(style.Render(h.Name))
		sb.WriteString(strings.Repeat(" ", width-lipglosslib.Width(h.Name)+2))
		sb.WriteString(Describe(h.Definition))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Describe lists a definition's colors and enabled toggles,
// e.g. "fg #ff0000 bg #000000 bold italic".
func Describe(d themegen.HighlightDefinition) string {
	parts := []string{"fg " + string(d.Foreground)}
	if d.Background != "" {
		parts = append(parts, "bg "+string(d.Background))
	}
	for _, a := range themegen.Toggles {
		if d.Toggle(a) {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, " ")
}
