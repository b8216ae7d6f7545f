// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/fwojciec/themegen"
)

// Ensure Command implements the Clipboard interface.
var _ themegen.Clipboard = (*Command)(nil)

// ErrUnavailable is returned when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command found (tried pbcopy, wl-copy, xclip, xsel)")

// Command implements Clipboard by piping content into an external command.
type Command struct {
	Name string
	Args []string
}

// candidates are tried in order by Detect.
var candidates = []Command{
	{Name: "pbcopy"},
	{Name: "wl-copy"},
	{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	{Name: "xsel", Args: []string{"--clipboard", "--input"}},
}

// Detect returns the first clipboard command found on PATH.
func Detect() (*Command, error) {
	return detect(exec.LookPath)
}

func detect(lookPath func(string) (string, error)) (*Command, error) {
	for _, c := range candidates {
		if _, err := lookPath(c.Name); err == nil {
			return &c, nil
		}
	}
	return nil, ErrUnavailable
}

// Copy writes content to the command's stdin.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
