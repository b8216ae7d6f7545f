// Package bubbletea provides an interactive terminal preview of compiled
// themes using the Bubble Tea framework.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themegen"
	tglipgloss "github.com/fwojciec/themegen/lipgloss"
)

// SampleLanguage is the chroma language name of SampleSource.
const SampleLanguage = "go"

// SampleSource is the code shown in the sample section.
const SampleSource = `// Package sample exercises common syntax groups.
package sample

import "fmt"

const limit = 42

// Greeter says hello.
type Greeter struct {
	Name  string
	Ratio float64
}

func (g *Greeter) Greet(n int) (string, error) {
	if n > limit || g == nil {
		return "", fmt.Errorf("too many: %d\n", n)
	}
	return "hello, " + g.Name, nil
}
`

type section int

const (
	sectionSwatches section = iota
	sectionSample
)

func (s section) String() string {
	if s == sectionSample {
		return "sample"
	}
	return "swatches"
}

// Model is the Bubble Tea model for previewing a theme.
type Model struct {
	theme     *themegen.Theme
	renderer  *lipgloss.Renderer
	tokenizer themegen.Tokenizer
	keymap    KeyMap

	viewport viewport.Model
	ready    bool
	width    int
	section  section
}

// Option configures a Model.
type Option func(*Model)

// WithRenderer sets the lipgloss renderer, mainly to force a color profile.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithTokenizer enables syntax highlighting of the sample section.
func WithTokenizer(t themegen.Tokenizer) Option {
	return func(m *Model) { m.tokenizer = t }
}

// NewModel creates a Model previewing theme.
func NewModel(theme *themegen.Theme, opts ...Option) Model {
	m := Model{
		theme:  theme,
		keymap: DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Switch):
			if m.section == sectionSwatches {
				m.section = sectionSample
			} else {
				m.section = sectionSwatches
			}
			if m.ready {
				m.viewport.SetContent(m.content())
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.GotoTop):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-1, 1) // header line
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.content())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.header() + "\n" + m.viewport.View()
}

func (m Model) header() string {
	name := m.theme.Name
	if name == "" {
		name = "theme"
	}
	title := fmt.Sprintf(" %s · %s · %d groups  [tab] switch  [q] quit",
		name, m.section, len(m.theme.Highlights))
	return m.newStyle().Reverse(true).Width(m.width).Render(title)
}

func (m Model) content() string {
	if m.section == sectionSample {
		return m.sample()
	}
	if len(m.theme.Highlights) == 0 {
		return "no highlight groups"
	}
	return tglipgloss.Swatches(m.theme, m.renderer)
}

// sample renders SampleSource with token styles on the Normal background.
func (m Model) sample() string {
	base := m.newStyle()
	if def, ok := m.theme.Lookup("Normal"); ok {
		base = tglipgloss.StyleFor(def.Style(), m.renderer)
	}

	var lines [][]themegen.Token
	if m.tokenizer != nil {
		lines = m.tokenizer.TokenizeLines(SampleLanguage, SampleSource)
	}
	if lines == nil {
		for _, l := range strings.Split(strings.TrimSuffix(SampleSource, "\n"), "\n") {
			lines = append(lines, []themegen.Token{{Text: l}})
		}
	}

	var sb strings.Builder
	for _, line := range lines {
		col := 0
		for _, tok := range line {
			text := expandTabs(tok.Text, col)
			col += lipgloss.Width(text)
			style := base
			if tok.Style != (themegen.Style{}) {
				style = tglipgloss.StyleFor(tok.Style, m.renderer)
			}
			sb.WriteString(style.Render(text))
		}
		if col < m.width {
			sb.WriteString(base.Render(strings.Repeat(" ", m.width-col)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}
