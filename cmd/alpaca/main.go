// Command alpaca is the CLI entry point for the alpaca front end.
//
// Usage:
//
//	alpaca tokens <file> [--json]              Print tokens
//	alpaca parse  <file> [--format json|yaml]  Print the AST
//	alpaca check  <file>...                    Report syntax errors
//	alpaca repl                                Start interactive REPL
package main

import (
	"alpaca-lang/internal/config"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errReported signals that diagnostics were already printed and the command
// should only exit non-zero.
var errReported = errors.New("errors reported")

var (
	cfgFile string
	noColor bool
	verbose bool

	cfg    = config.Default()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var rootCmd = &cobra.Command{
	Use:   "alpaca",
	Short: "alpaca language front end",
	Long: `alpaca tokenizes and parses alpaca source files.

Syntax errors are reported with source snippets; a file with errors still
produces the statements that parsed.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(tokensCmd, parseCmd, checkCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// setup configures logging and loads the config file before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", cfgFile)
	}
	if noColor {
		cfg.Diagnostics.Color = false
	}
	return nil
}

func readFile(filename string) (string, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	logger.Debug("read source", "file", filename, "bytes", len(source))
	return string(source), nil
}
