package mock

import (
	"context"

	"github.com/fwojciec/themegen"
)

// Compile-time interface verification.
var _ themegen.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of themegen.Previewer.
type Previewer struct {
	PreviewFn func(ctx context.Context, theme *themegen.Theme) error
}

func (p *Previewer) Preview(ctx context.Context, theme *themegen.Theme) error {
	return p.PreviewFn(ctx, theme)
}
