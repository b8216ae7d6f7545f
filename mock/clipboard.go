package mock

import "github.com/fwojciec/themegen"

// Compile-time interface verification.
var _ themegen.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of themegen.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
