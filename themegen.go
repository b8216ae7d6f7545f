// Package themegen provides domain types for compiling TOML color themes into
// Neovim highlight statements.
package themegen

import (
	"context"
	"io"
)

// DocumentDecoder parses a structured configuration document.
type DocumentDecoder interface {
	// Decode reads the whole document and returns its top-level table with
	// keys in document order.
	Decode(r io.Reader) (*Table, error)
}

// Installer writes a compiled theme to disk as a Neovim colorscheme plugin.
type Installer interface {
	Install(theme *Theme) (*Layout, error)
}

// Previewer shows a compiled theme to the user.
type Previewer interface {
	// Preview blocks until the user dismisses the preview.
	Preview(ctx context.Context, theme *Theme) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// Layout describes the on-disk structure of a scaffolded colorscheme plugin.
type Layout struct {
	Root       string // <dir>/<name>
	LuaDir     string // <dir>/<name>/lua/<name>
	ColorsDir  string // <dir>/<name>/colors
	ModuleFile string // lua/<name>/init.lua, holds the highlight statements
	ColorsFile string // colors/<name>.lua, loaded by :colorscheme
}
