// Package fs writes compiled themes to disk as Neovim colorscheme plugins.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultPackDir returns the Neovim package directory whose plugins load at
// startup. Uses XDG_DATA_HOME if set, otherwise ~/.local/share, or the
// system temp directory if home is unavailable.
func DefaultPackDir() string {
	const pack = "nvim/site/pack/themegen/start"
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, filepath.FromSlash(pack))
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), filepath.FromSlash(pack))
	}
	return filepath.Join(home, ".local", "share", filepath.FromSlash(pack))
}
