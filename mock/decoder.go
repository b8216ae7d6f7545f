// Package mock provides test doubles for themegen interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/themegen"
)

// Compile-time interface verification.
var _ themegen.DocumentDecoder = (*DocumentDecoder)(nil)

// DocumentDecoder is a mock implementation of themegen.DocumentDecoder.
type DocumentDecoder struct {
	DecodeFn func(r io.Reader) (*themegen.Table, error)
}

func (d *DocumentDecoder) Decode(r io.Reader) (*themegen.Table, error) {
	return d.DecodeFn(r)
}
