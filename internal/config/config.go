// Package config loads the driver configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the complete driver configuration.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Output      OutputConfig      `toml:"output"`
	REPL        REPLConfig        `toml:"repl"`
}

// DiagnosticsConfig controls how syntax errors are rendered.
type DiagnosticsConfig struct {
	Color        bool `toml:"color"`
	ContextLines int  `toml:"context_lines"`
}

// OutputConfig controls AST dumps.
type OutputConfig struct {
	Format string `toml:"format"` // json or yaml
	Indent int    `toml:"indent"`
}

// REPLConfig holds interactive prompt settings.
type REPLConfig struct {
	HistoryFile string `toml:"history_file"`
	Prompt      string `toml:"prompt"`
}

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Diagnostics: DiagnosticsConfig{Color: true, ContextLines: 0},
		Output:      OutputConfig{Format: FormatJSON, Indent: 2},
		REPL:        REPLConfig{Prompt: "alpaca> "},
	}
}

// Load loads configuration from a TOML file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes configuration from TOML text on top of the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in values left empty by the file.
func (c *Config) applyDefaults() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = FormatJSON
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "alpaca> "
	}
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}

// Validate rejects settings the driver cannot honor.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output.Format, FormatJSON, FormatYAML)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return fmt.Errorf("output indent must be between 0 and 8, got %d", c.Output.Indent)
	}
	if c.Diagnostics.ContextLines < 0 {
		return fmt.Errorf("context_lines must not be negative, got %d", c.Diagnostics.ContextLines)
	}
	return nil
}

// HistoryPath returns the REPL history file, defaulting to
// ~/.alpaca_history. It returns "" when no home directory is known.
func (c *Config) HistoryPath() string {
	if c.REPL.HistoryFile != "" {
		return c.REPL.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alpaca_history")
}
