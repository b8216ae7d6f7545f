package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabStop matches Neovim's default 'tabstop'.
const tabStop = 8

// expandTabs replaces tabs with spaces up to the next tab stop, counting
// columns from col.
func expandTabs(s string, col int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var sb strings.Builder
	for _, r := range s {
		if r != '\t' {
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
			continue
		}
		n := tabStop - col%tabStop
		sb.WriteString(strings.Repeat(" ", n))
		col += n
	}
	return sb.String()
}
