package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/themegen"
	"github.com/fwojciec/themegen/chroma"
)

// Compile-time interface verification.
var _ themegen.Previewer = (*Previewer)(nil)

// Previewer implements themegen.Previewer using a Bubble Tea TUI.
type Previewer struct{}

// NewPreviewer creates a new Previewer.
func NewPreviewer() *Previewer {
	return &Previewer{}
}

// Preview displays the theme and blocks until the user exits.
// The sample section is highlighted with the theme itself.
func (p *Previewer) Preview(ctx context.Context, theme *themegen.Theme) error {
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromTheme(theme))
	if err != nil {
		return err
	}
	m := NewModel(theme, WithTokenizer(tokenizer))
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = prog.Run()
	return err
}
