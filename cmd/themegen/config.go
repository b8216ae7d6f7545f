package main

import (
	"errors"
	"flag"
	"io"
	"path/filepath"
	"strings"

	"github.com/fwojciec/themegen/fs"
)

// DefaultInput is the theme file read when none is given.
const DefaultInput = "theme.toml"

// ErrTooManyArgs is returned when more than one input file is given.
var ErrTooManyArgs = errors.New("expected at most one theme file")

// Config holds the command settings. Flags override environment variables,
// which override defaults.
type Config struct {
	Input    string // THEMEGEN_INPUT or first argument
	Name     string // THEMEGEN_NAME, defaults to the input file stem
	OutDir   string // THEMEGEN_OUT; install the plugin below this directory
	Install  bool   // Install into the Neovim package directory
	Preview  bool   // Open the interactive preview
	Copy     bool   // Copy the generated Lua to the clipboard
	Quiet    bool   // Do not print the generated Lua
	LogLevel string // THEMEGEN_LOG_LEVEL
}

// LoadConfig parses args (without the program name) using getenv for
// defaults.
func LoadConfig(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	flags := flag.NewFlagSet("themegen", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.Name, "name", getenv("THEMEGEN_NAME"), "theme name")
	flags.StringVar(&cfg.OutDir, "out", getenv("THEMEGEN_OUT"), "install the plugin below this directory")
	flags.BoolVar(&cfg.Install, "install", false, "install into the Neovim package directory")
	flags.BoolVar(&cfg.Preview, "preview", false, "open the interactive preview")
	flags.BoolVar(&cfg.Copy, "copy", false, "copy the generated Lua to the clipboard")
	flags.BoolVar(&cfg.Quiet, "quiet", false, "do not print the generated Lua")
	flags.StringVar(&cfg.LogLevel, "log-level", getEnvOrDefault(getenv, "THEMEGEN_LOG_LEVEL", "warn"), "log level")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	switch flags.NArg() {
	case 0:
		cfg.Input = getEnvOrDefault(getenv, "THEMEGEN_INPUT", DefaultInput)
	case 1:
		cfg.Input = flags.Arg(0)
	default:
		return nil, ErrTooManyArgs
	}

	if cfg.Name == "" {
		base := filepath.Base(cfg.Input)
		cfg.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if cfg.Install && cfg.OutDir == "" {
		cfg.OutDir = fs.DefaultPackDir()
	}
	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or the default.
func getEnvOrDefault(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

const usage = `Usage: themegen [flags] [theme.toml]

Compiles a TOML color theme into Neovim highlight statements.

Flags:
  -name string       theme name (default: input file name)
  -out dir           install the plugin below dir
  -install           install into the Neovim package directory
  -preview           open the interactive preview
  -copy              copy the generated Lua to the clipboard
  -quiet             do not print the generated Lua
  -log-level level   debug, info, warn or error (default warn)

Environment:
  THEMEGEN_INPUT, THEMEGEN_NAME, THEMEGEN_OUT, THEMEGEN_LOG_LEVEL
  A .env file in the working directory is loaded first.
`
