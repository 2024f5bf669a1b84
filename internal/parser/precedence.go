package parser

import "alpaca-lang/internal/token"

// ============================================================
// Binding power (precedence) levels
// ============================================================

const (
	bpNone       = 0
	bpAssign     = 10 // =
	bpOr         = 20 // or
	bpAnd        = 30 // and
	bpEquality   = 40 // == !=
	bpComparison = 50 // < <= > >=
	bpAdditive   = 60 // + -
	bpMultiply   = 70 // * /
	bpPrefix     = 80 // ! -
	bpCall       = 90 // ()
)

type associativity int

const (
	leftAssoc associativity = iota
	rightAssoc
)

type infixRule struct {
	bp    int
	assoc associativity
}

// infixRules maps every token that may follow a complete expression to its
// binding power. Tokens missing from the table end the expression.
var infixRules = map[token.Kind]infixRule{
	token.ASSIGN: {bpAssign, rightAssoc},
	token.KW_OR:  {bpOr, leftAssoc},
	token.KW_AND: {bpAnd, leftAssoc},
	token.EQ:     {bpEquality, leftAssoc},
	token.NEQ:    {bpEquality, leftAssoc},
	token.LT:     {bpComparison, leftAssoc},
	token.LTE:    {bpComparison, leftAssoc},
	token.GT:     {bpComparison, leftAssoc},
	token.GTE:    {bpComparison, leftAssoc},
	token.PLUS:   {bpAdditive, leftAssoc},
	token.MINUS:  {bpAdditive, leftAssoc},
	token.STAR:   {bpMultiply, leftAssoc},
	token.SLASH:  {bpMultiply, leftAssoc},
	token.LPAREN: {bpCall, leftAssoc},
}

// infixBP returns the rule for an infix/postfix operator.
func infixBP(kind token.Kind) (infixRule, bool) {
	rule, ok := infixRules[kind]
	return rule, ok
}

// rightBP returns the minimum binding power for the right operand.
func (r infixRule) rightBP() int {
	if r.assoc == rightAssoc {
		return r.bp
	}
	return r.bp + 1
}
