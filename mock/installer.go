package mock

import "github.com/fwojciec/themegen"

// Compile-time interface verification.
var _ themegen.Installer = (*Installer)(nil)

// Installer is a mock implementation of themegen.Installer.
type Installer struct {
	InstallFn func(theme *themegen.Theme) (*themegen.Layout, error)
}

func (i *Installer) Install(theme *themegen.Theme) (*themegen.Layout, error) {
	return i.InstallFn(theme)
}
