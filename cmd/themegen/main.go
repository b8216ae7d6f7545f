package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/themegen"
	"github.com/fwojciec/themegen/bubbletea"
	"github.com/fwojciec/themegen/clipboard"
	"github.com/fwojciec/themegen/fs"
	"github.com/fwojciec/themegen/toml"
	"github.com/joho/godotenv"
)

// App encapsulates the application logic for testing.
type App struct {
	Input     io.Reader // Read the theme from Input if Path is empty
	Path      string    // Read the theme from a file
	Name      string    // Theme name
	Decoder   themegen.DocumentDecoder
	Stdout    io.Writer          // Receives the generated Lua; nil to skip
	Installer themegen.Installer // Optional
	Clipboard themegen.Clipboard // Optional
	Previewer themegen.Previewer // Optional
	Logger    *log.Logger        // Optional
}

// Run compiles the theme and hands the result to each configured output.
// Nothing is emitted unless the whole theme compiles.
func (a *App) Run(ctx context.Context) (*themegen.Theme, error) {
	logger := a.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	doc, err := a.decode()
	if err != nil {
		return nil, err
	}

	theme, err := themegen.Compile(a.Name, doc)
	if err != nil {
		return nil, err
	}
	for _, e := range theme.Palette.Entries() {
		logger.Debug("palette", "name", e.Name, "color", e.Color)
	}
	logger.Debug("compiled theme", "name", theme.Name, "colors", theme.Palette.Len(), "groups", len(theme.Highlights))

	lua := theme.Lua()

	if a.Stdout != nil {
		if _, err := io.WriteString(a.Stdout, lua); err != nil {
			return nil, err
		}
	}

	if a.Installer != nil {
		layout, err := a.Installer.Install(theme)
		if err != nil {
			return nil, fmt.Errorf("install theme: %w", err)
		}
		logger.Info("installed theme", "name", theme.Name, "module", layout.ModuleFile, "colors", layout.ColorsFile)
	}

	if a.Clipboard != nil {
		if err := a.Clipboard.Copy(lua); err != nil {
			return nil, fmt.Errorf("copy to clipboard: %w", err)
		}
		logger.Info("copied to clipboard", "groups", len(theme.Highlights))
	}

	if a.Previewer != nil {
		if err := a.Previewer.Preview(ctx, theme); err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
	}

	return theme, nil
}

func (a *App) decode() (*themegen.Table, error) {
	input := a.Input
	if a.Path != "" {
		f, err := os.Open(a.Path)
		if err != nil {
			return nil, &themegen.Error{Kind: themegen.ErrMalformedDocument, Err: err}
		}
		defer f.Close()
		input = f
	}
	return a.Decoder.Decode(input)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "themegen"})
	if err := run(logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(0)
		}
		logger.Error(err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := LoadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Path:    cfg.Input,
		Name:    cfg.Name,
		Decoder: toml.NewDecoder(),
		Logger:  logger,
	}
	if !cfg.Quiet {
		app.Stdout = os.Stdout
	}
	if cfg.OutDir != "" {
		app.Installer = fs.NewInstaller(cfg.OutDir)
	}
	if cfg.Copy {
		cb, err := clipboard.Detect()
		if err != nil {
			return err
		}
		app.Clipboard = cb
	}
	if cfg.Preview {
		app.Previewer = bubbletea.NewPreviewer()
	}

	_, err = app.Run(ctx)
	return err
}
