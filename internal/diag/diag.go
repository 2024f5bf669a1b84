// Package diag holds the diagnostics reported by the alpaca front end and
// renders them against their source.
//
// Every diagnostic is an error and carries a stable code:
//
//	E1xxx  lexical   E1001 unterminated string, E1002 invalid UTF-8,
//	                 E1003 unexpected character
//	E2xxx  syntax    E2001 expected, E2002 unclosed delimiter,
//	                 E2003 unexpected token, E2004 other
//
// Lexical codes keep their number when the parser reports them.
package diag

import (
	"alpaca-lang/internal/span"
	"fmt"
	"strings"
)

// Diagnostic is one located message.
type Diagnostic struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Span    span.Span `json:"span"`
	Hint    string    `json:"hint,omitempty"`
}

// Errorf creates a diagnostic at s.
func Errorf(code string, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Span: s}
}

// WithHint returns a copy of d carrying hint. An empty hint leaves d as is.
func (d Diagnostic) WithHint(hint string) Diagnostic {
	if hint != "" {
		d.Hint = hint
	}
	return d
}

// Stage names the front-end stage that owns the code: "lexical", "syntax",
// or "" for a code outside both ranges.
func (d Diagnostic) Stage() string {
	switch {
	case strings.HasPrefix(d.Code, "E1"):
		return "lexical"
	case strings.HasPrefix(d.Code, "E2"):
		return "syntax"
	}
	return ""
}

func (d Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] error at %d:%d: %s", d.Code, d.Span.Start.Line, d.Span.Start.Column, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}
