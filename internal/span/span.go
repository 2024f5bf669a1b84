// Package span provides source position and span types used across the front end.
package span

import "fmt"

// Position represents a position in source code.
type Position struct {
	Offset int `json:"offset"` // byte offset from beginning of source
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number, counted in runes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a half-open range in source code [Start, End).
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Text returns the slice of source covered by the span.
func (s Span) Text(source string) string {
	if s.Start.Offset < 0 || s.End.Offset > len(source) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return source[s.Start.Offset:s.End.Offset]
}

// Contains reports whether inner lies entirely within s.
func (s Span) Contains(inner Span) bool {
	return s.Start.Offset <= inner.Start.Offset && inner.End.Offset <= s.End.Offset
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	out := a
	if b.Start.Offset < out.Start.Offset {
		out.Start = b.Start
	}
	if b.End.Offset > out.End.Offset {
		out.End = b.End
	}
	return out
}
