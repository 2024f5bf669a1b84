package main

import (
	"alpaca-lang/internal/diag"
	"alpaca-lang/internal/lexer"
	"alpaca-lang/internal/token"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "print tokens as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	filename := args[0]
	source, err := readFile(filename)
	if err != nil {
		return err
	}

	tokens, diags := lexer.New(source, filename).Tokenize()
	logger.Debug("tokenized", "file", filename, "tokens", len(tokens), "errors", len(diags))

	if tokensJSON {
		if err := printTokensJSON(cmd.OutOrStdout(), tokens, diags); err != nil {
			return err
		}
	} else {
		printTokensText(cmd.OutOrStdout(), tokens)
		newRenderer(os.Stderr).RenderAll(filename, source, diags)
	}

	if len(diags) > 0 {
		return errReported
	}
	return nil
}

func printTokensText(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		lexeme := tok.Lexeme
		if tok.Kind == token.STRING {
			lexeme = fmt.Sprintf("%q", tok.Lexeme)
		}
		fmt.Fprintf(w, "%-12s %-20s %d:%d\n", tok.Kind, lexeme, tok.Span.Start.Line, tok.Span.Start.Column)
	}
}

func printTokensJSON(w io.Writer, tokens []token.Token, diags []diag.Diagnostic) error {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
		End    int    `json:"end"`
	}

	toks := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
			End:    tok.Span.End.Offset,
		})
	}

	output := map[string]interface{}{
		"tokens":      toks,
		"diagnostics": diagsToSlice(diags),
	}
	return printJSON(w, output)
}
