package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/themegen"
)

// Compile-time interface verification.
var _ themegen.Installer = (*Installer)(nil)

// ErrInvalidName is returned for theme names that cannot be used as a
// directory and Lua module name.
var ErrInvalidName = errors.New("invalid theme name")

// Installer lays out colorscheme plugins under a root directory.
type Installer struct {
	root string
}

// NewInstaller creates an Installer writing below root.
func NewInstaller(root string) *Installer {
	return &Installer{root: root}
}

// Scaffold ensures the plugin directories for name exist:
// <root>/<name>/lua/<name> and <root>/<name>/colors.
func (i *Installer) Scaffold(name string) (*themegen.Layout, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	pluginDir := filepath.Join(i.root, name)
	layout := &themegen.Layout{
		Root:      pluginDir,
		LuaDir:    filepath.Join(pluginDir, "lua", name),
		ColorsDir: filepath.Join(pluginDir, "colors"),
	}
	layout.ModuleFile = filepath.Join(layout.LuaDir, "init.lua")
	layout.ColorsFile = filepath.Join(layout.ColorsDir, name+".lua")

	for _, dir := range []string{layout.LuaDir, layout.ColorsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return layout, nil
}

// Install scaffolds the plugin and writes the theme into it. The module file
// holds the highlight statements; the colors file makes the theme loadable
// with :colorscheme.
func (i *Installer) Install(theme *themegen.Theme) (*themegen.Layout, error) {
	layout, err := i.Scaffold(theme.Name)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(layout.ModuleFile, []byte(theme.Lua()), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(layout.ColorsFile, []byte(colorsFile(theme.Name)), 0o644); err != nil {
		return nil, err
	}
	return layout, nil
}

func colorsFile(name string) string {
	quoted := "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
	var sb strings.Builder
	sb.WriteString("vim.cmd('highlight clear')\n")
	sb.WriteString("vim.g.colors_name = " + quoted + "\n")
	sb.WriteString("require(" + quoted + ")\n")
	return sb.String()
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
