package main

import (
	"alpaca-lang/internal/ast"
	"alpaca-lang/internal/config"
	"alpaca-lang/internal/parser"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse files and report syntax errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "output format: json or yaml (default from config)")
}

// parseFile parses one file and logs how long it took.
func parseFile(filename string) (string, *ast.File, parser.ErrorList, error) {
	source, err := readFile(filename)
	if err != nil {
		return "", nil, nil, err
	}

	start := time.Now()
	file, errs := parser.New(source, filename).ParseFile()
	logger.Debug("parsed", "file", filename,
		"statements", len(file.Body), "errors", len(errs), "elapsed", time.Since(start))
	return source, file, parser.ErrorList(errs), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	format := cfg.Output.Format
	if parseFormat != "" {
		format = parseFormat
	}
	if format != config.FormatJSON && format != config.FormatYAML {
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}

	_, file, errs, err := parseFile(args[0])
	if err != nil {
		return err
	}

	output := map[string]interface{}{
		"ast":         ast.NodeToMap(file),
		"diagnostics": diagsToSlice(errs.Diagnostics()),
	}
	if format == config.FormatYAML {
		err = printYAML(cmd.OutOrStdout(), output)
	} else {
		err = printJSON(cmd.OutOrStdout(), output)
	}
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return errReported
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	renderer := newRenderer(os.Stderr)
	failed := 0

	for _, filename := range args {
		source, _, errs, err := parseFile(filename)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			continue
		}
		failed++
		renderer.RenderAll(filename, source, errs.Diagnostics())
		fmt.Fprintln(os.Stderr)
	}

	if failed > 0 {
		logger.Warn("syntax errors found", "files", failed)
		return errReported
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) ok\n", len(args))
	return nil
}
