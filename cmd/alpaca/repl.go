package main

import (
	"alpaca-lang/internal/ast"
	"alpaca-lang/internal/config"
	"alpaca-lang/internal/parser"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive prompt that prints the AST of each input",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

// ---- input accumulation ----

type inputState int

const (
	inputEmpty inputState = iota // nothing to do
	inputMore                    // the input so far is unfinished
	inputReady                   // the input parsed, with or without errors
)

// replSession accumulates lines until they form a complete input. An input
// is unfinished when its last error is caused by the end of input, such as
// an open `do` block or an unterminated string.
type replSession struct {
	pending strings.Builder
	inputs  int
}

type replInput struct {
	state  inputState
	name   string
	source string
	file   *ast.File
	errs   parser.ErrorList
}

// feed adds one line. A blank line ends a pending input even if unfinished.
func (s *replSession) feed(line string) replInput {
	force := strings.TrimSpace(line) == "" && s.pending.Len() > 0
	s.pending.WriteString(line)
	s.pending.WriteByte('\n')

	source := s.pending.String()
	if strings.TrimSpace(source) == "" {
		s.pending.Reset()
		return replInput{state: inputEmpty}
	}

	name := fmt.Sprintf("<repl:%d>", s.inputs+1)
	file, errs := parser.New(source, name).ParseFile()
	if len(errs) > 0 && errs[len(errs)-1].Incomplete() && !force {
		return replInput{state: inputMore}
	}

	s.pending.Reset()
	s.inputs++
	return replInput{state: inputReady, name: name, source: source, file: file, errs: errs}
}

// pendingInput reports whether lines are waiting for completion.
func (s *replSession) pendingInput() bool {
	return s.pending.Len() > 0
}

func (s *replSession) reset() {
	s.pending.Reset()
}

// ---- repl command ----

func runRepl(cmd *cobra.Command, args []string) error {
	prompt := cfg.REPL.Prompt
	cont := strings.Repeat(".", len(strings.TrimRight(prompt, " "))) + " "
	banner := "alpaca REPL (type 'exit' or Ctrl+D to quit)"
	if cfg.Diagnostics.Color {
		prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(prompt)
		cont = lipgloss.NewStyle().Faint(true).Render(cont)
		banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render(banner)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       cfg.HistoryPath(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	logger.Debug("repl started", "history", cfg.HistoryPath())
	fmt.Fprintf(rl.Stdout(), "%s\n\n", banner)

	var session replSession
	renderer := newRenderer(rl.Stderr())

	for {
		if session.pendingInput() {
			rl.SetPrompt(cont)
		} else {
			rl.SetPrompt(prompt)
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if session.pendingInput() {
					session.reset()
					continue
				}
				fmt.Fprintln(rl.Stdout(), "(use 'exit' or Ctrl+D to quit)")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(rl.Stdout())
				return nil
			}
			return err
		}

		if !session.pendingInput() && strings.TrimSpace(line) == "exit" {
			return nil
		}

		input := session.feed(line)
		if input.state != inputReady {
			continue
		}

		if len(input.errs) > 0 {
			renderer.RenderAll(input.name, input.source, input.errs.Diagnostics())
			fmt.Fprintln(rl.Stderr())
		}
		for _, stmt := range input.file.Body {
			if err := printNode(rl.Stdout(), stmt); err != nil {
				return err
			}
		}
	}
}

// printNode prints a single statement in the configured output format.
func printNode(w io.Writer, node ast.Node) error {
	if cfg.Output.Format == config.FormatYAML {
		return printYAML(w, ast.NodeToMap(node))
	}
	return printJSON(w, ast.NodeToMap(node))
}
