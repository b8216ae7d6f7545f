package themegen

import (
	"fmt"
	"io"
	"strings"
)

// GlobalNamespace is the highlight namespace id shared by all windows.
const GlobalNamespace = 0

// Statement renders h as a single nvim_set_hl call. Only fg, a non-empty bg
// and toggles that are true appear, in fixed order.
func Statement(h Highlight) string {
	d := h.Definition
	fields := make([]string, 0, 2+len(Toggles))
	fields = append(fields, "fg = "+luaString(string(d.Foreground)))
	if d.Background != "" {
		fields = append(fields, "bg = "+luaString(string(d.Background)))
	}
	for _, a := range Toggles {
		if d.Toggle(a) {
			fields = append(fields, a.String()+" = true")
		}
	}
	return fmt.Sprintf("vim.api.nvim_set_hl(%d, %s, { %s })",
		GlobalNamespace, luaString(h.Name), strings.Join(fields, ", "))
}

// Statements renders every highlight in order.
func Statements(highlights []Highlight) []string {
	out := make([]string, 0, len(highlights))
	for _, h := range highlights {
		out = append(out, Statement(h))
	}
	return out
}

// WriteStatements writes one statement per line to w.
func WriteStatements(w io.Writer, highlights []Highlight) error {
	for _, h := range highlights {
		if _, err := io.WriteString(w, Statement(h)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

var luaEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)

// luaString quotes s as a single-quoted Lua string literal.
func luaString(s string) string {
	return "'" + luaEscaper.Replace(s) + "'"
}
