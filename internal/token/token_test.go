package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"and", KW_AND},
		{"do", KW_DO},
		{"else", KW_ELSE},
		{"end", KW_END},
		{"false", KW_FALSE},
		{"for", KW_FOR},
		{"fun", KW_FUN},
		{"if", KW_IF},
		{"in", KW_IN},
		{"let", KW_LET},
		{"or", KW_OR},
		{"return", KW_RETURN},
		{"true", KW_TRUE},
		{"type", KW_TYPE},
		{"while", KW_WHILE},
		{"pub", IDENT},
		{"End", IDENT},
		{"letter", IDENT},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.input); got != tt.want {
			t.Errorf("LookupIdent(%q): expected %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestKindClassification(t *testing.T) {
	for _, k := range []Kind{KW_AND, KW_TYPE, KW_WHILE} {
		if !k.IsKeyword() {
			t.Errorf("%s should be a keyword", k)
		}
	}
	for _, k := range []Kind{IDENT, ARROW, EOF} {
		if k.IsKeyword() {
			t.Errorf("%s should not be a keyword", k)
		}
	}
	if !STRING.IsLiteral() || !INT.IsLiteral() || PLUS.IsLiteral() {
		t.Error("literal classification is wrong")
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := ERROR; k <= KW_WHILE; k++ {
		if _, ok := kindNames[k]; !ok {
			t.Errorf("kind %d has no name", int(k))
		}
	}
	if Kind(999).String() != "Kind(999)" {
		t.Errorf("unexpected fallback name: %s", Kind(999))
	}
}

func TestDescribe(t *testing.T) {
	if got := (Token{Kind: IDENT, Lexeme: "foo"}).Describe(); got != "identifier `foo`" {
		t.Errorf("unexpected description: %s", got)
	}
	if got := RPAREN.Describe(); got != "`)`" {
		t.Errorf("unexpected description: %s", got)
	}
	if got := EOF.Describe(); got != "end of input" {
		t.Errorf("unexpected description: %s", got)
	}
}
