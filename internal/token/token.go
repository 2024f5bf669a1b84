// Package token defines the token types produced by the lexer.
package token

import (
	"alpaca-lang/internal/span"
	"fmt"
)

// Kind represents the type of a token.
type Kind int

const (
	// Special tokens
	ERROR Kind = iota // lexical error; Lexeme holds the message
	EOF

	// Literals
	IDENT  // identifiers: x, foo, my_var
	INT    // integer literals: 123
	STRING // string literals: "hello"

	// Operators
	ASSIGN // =
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	BANG   // !

	EQ  // ==
	NEQ // !=
	LT  // <
	LTE // <=
	GT  // >
	GTE // >=

	// Delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,
	DOT      // .
	COLON    // :
	ARROW    // ->

	// Keywords
	KW_AND
	KW_DO
	KW_ELSE
	KW_END
	KW_FALSE
	KW_FOR
	KW_FUN
	KW_IF
	KW_IN
	KW_LET
	KW_OR
	KW_RETURN
	KW_TRUE
	KW_TYPE
	KW_WHILE
)

var kindNames = map[Kind]string{
	ERROR: "ERROR",
	EOF:   "EOF",

	IDENT:  "IDENT",
	INT:    "INT",
	STRING: "STRING",

	ASSIGN: "=",
	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	SLASH:  "/",
	BANG:   "!",
	EQ:     "==",
	NEQ:    "!=",
	LT:     "<",
	LTE:    "<=",
	GT:     ">",
	GTE:    ">=",

	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	COMMA:    ",",
	DOT:      ".",
	COLON:    ":",
	ARROW:    "->",

	KW_AND:    "and",
	KW_DO:     "do",
	KW_ELSE:   "else",
	KW_END:    "end",
	KW_FALSE:  "false",
	KW_FOR:    "for",
	KW_FUN:    "fun",
	KW_IF:     "if",
	KW_IN:     "in",
	KW_LET:    "let",
	KW_OR:     "or",
	KW_RETURN: "return",
	KW_TRUE:   "true",
	KW_TYPE:   "type",
	KW_WHILE:  "while",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword returns true if the kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= KW_AND && k <= KW_WHILE
}

// IsLiteral returns true if the kind is a literal (ident/int/string).
func (k Kind) IsLiteral() bool {
	return k >= IDENT && k <= STRING
}

// Describe returns the kind the way diagnostics quote it: `+`, `end`, identifier.
func (k Kind) Describe() string {
	switch k {
	case ERROR:
		return "invalid token"
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier"
	case INT:
		return "integer literal"
	case STRING:
		return "string literal"
	default:
		return "`" + k.String() + "`"
	}
}

var keywords = map[string]Kind{
	"and":    KW_AND,
	"do":     KW_DO,
	"else":   KW_ELSE,
	"end":    KW_END,
	"false":  KW_FALSE,
	"for":    KW_FOR,
	"fun":    KW_FUN,
	"if":     KW_IF,
	"in":     KW_IN,
	"let":    KW_LET,
	"or":     KW_OR,
	"return": KW_RETURN,
	"true":   KW_TRUE,
	"type":   KW_TYPE,
	"while":  KW_WHILE,
}

// LookupIdent returns the keyword Kind for ident, or IDENT if it is not a keyword.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Token represents a lexical token with its kind, payload, and source location.
//
// Lexeme holds the identifier name, the digit text of an integer, the raw
// content of a string without its quotes, or the message of an ERROR token.
// For every other kind it is the operator or keyword text.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Span   span.Span `json:"span"`
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span.Start)
}

// Describe names the token for diagnostics, including its text when useful.
func (t Token) Describe() string {
	switch t.Kind {
	case IDENT:
		return fmt.Sprintf("identifier `%s`", t.Lexeme)
	case INT:
		return fmt.Sprintf("integer literal `%s`", t.Lexeme)
	case STRING:
		return fmt.Sprintf("string literal %q", t.Lexeme)
	default:
		return t.Kind.Describe()
	}
}
