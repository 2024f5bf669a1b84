package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorAccent  = lipgloss.Color("#60A5FA")
	colorHelp    = lipgloss.Color("#10B981")

	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	gutterStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	helpStyle    = lipgloss.NewStyle().Foreground(colorHelp)
	messageStyle = lipgloss.NewStyle().Bold(true)
)

// tabWidth is how far a tab advances when source lines are echoed.
const tabWidth = 4

// Renderer prints diagnostics with the offending source line and a caret underline.
type Renderer struct {
	w            io.Writer
	color        bool
	contextLines int
}

// NewRenderer creates a renderer writing to w. contextLines is the number of
// source lines echoed above the offending one.
func NewRenderer(w io.Writer, color bool, contextLines int) *Renderer {
	if contextLines < 0 {
		contextLines = 0
	}
	return &Renderer{w: w, color: color, contextLines: contextLines}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// RenderAll renders every diagnostic against the same source.
func (r *Renderer) RenderAll(filename, source string, diags []Diagnostic) {
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.Render(filename, source, d)
	}
}

// Render prints a single diagnostic:
//
//	error[E2002]: unclosed `(`
//	 --> main.alp:1:2
//	  |
//	1 | f(1
//	  |  ^
//	  |
//	help: add a matching `)`
func (r *Renderer) Render(filename, source string, d Diagnostic) {
	header := "error"
	if d.Code != "" {
		header += "[" + d.Code + "]"
	}
	fmt.Fprintf(r.w, "%s: %s\n", r.style(errorStyle, header), r.style(messageStyle, d.Message))

	line := d.Span.Start.Line
	col := d.Span.Start.Column
	if filename == "" {
		filename = "<input>"
	}

	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		fmt.Fprintf(r.w, "  %s %s:%d:%d\n", r.style(gutterStyle, "-->"), filename, line, col)
		r.renderHelp(d)
		return
	}

	first := max(1, line-r.contextLines)
	width := len(fmt.Sprintf("%d", line))
	pad := strings.Repeat(" ", width)
	bar := r.style(gutterStyle, "|")

	fmt.Fprintf(r.w, "%s%s %s:%d:%d\n", pad, r.style(gutterStyle, "-->"), filename, line, col)
	fmt.Fprintf(r.w, "%s %s\n", pad, bar)
	for n := first; n <= line; n++ {
		num := r.style(gutterStyle, fmt.Sprintf("%*d", width, n))
		fmt.Fprintf(r.w, "%s %s %s\n", num, bar, expandTabs(lines[n-1]))
	}

	lineStart := lineOffset(source, d.Span.Start.Offset)
	text := lines[line-1]
	startInLine := clamp(d.Span.Start.Offset-lineStart, 0, len(text))
	endInLine := clamp(d.Span.End.Offset-lineStart, startInLine, len(text))

	lead := runewidth.StringWidth(expandTabs(text[:startInLine]))
	carets := max(1, runewidth.StringWidth(expandTabs(text[startInLine:endInLine])))
	underline := strings.Repeat(" ", lead) + r.style(errorStyle, strings.Repeat("^", carets))
	fmt.Fprintf(r.w, "%s %s %s\n", pad, bar, underline)
	fmt.Fprintf(r.w, "%s %s\n", pad, bar)

	r.renderHelp(d)
}

func (r *Renderer) renderHelp(d Diagnostic) {
	if d.Hint == "" {
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", r.style(helpStyle, "help"), d.Hint)
}

// lineOffset returns the byte offset of the start of the line containing offset.
func lineOffset(source string, offset int) int {
	offset = clamp(offset, 0, len(source))
	return strings.LastIndexByte(source[:offset], '\n') + 1
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
