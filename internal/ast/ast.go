// Package ast defines the abstract syntax tree for alpaca.
package ast

import (
	"alpaca-lang/internal/span"
	"alpaca-lang/internal/token"
)

// ============================================================
// Node interfaces
// ============================================================

// Node is the interface implemented by all AST nodes.
type Node interface {
	nodeNode()
	GetSpan() span.Span
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Literal is implemented by the three literal expressions.
type Literal interface {
	Expr
	literalNode()
}

// ============================================================
// Base types (embedded to provide common fields)
// ============================================================

// NodeBase provides the common Span field for all AST nodes.
type NodeBase struct {
	Span span.Span
}

func (n NodeBase) nodeNode()          {}
func (n NodeBase) GetSpan() span.Span { return n.Span }

// ExprBase is embedded by all expression nodes.
type ExprBase struct{ NodeBase }

func (ExprBase) exprNode() {}

// StmtBase is embedded by all statement nodes.
type StmtBase struct{ NodeBase }

func (StmtBase) stmtNode() {}

// LiteralBase is embedded by the literal expressions.
type LiteralBase struct{ ExprBase }

func (LiteralBase) literalNode() {}

// ============================================================
// File (top-level AST root)
// ============================================================

// File represents an entire source file.
type File struct {
	NodeBase
	Name string // display name used in diagnostics
	Body []Stmt
}

// ============================================================
// Expressions
// ============================================================

// IntLiteral represents an integer literal.
type IntLiteral struct {
	LiteralBase
	Value int64
}

// BoolLiteral represents true or false.
type BoolLiteral struct {
	LiteralBase
	Value bool
}

// StringLiteral represents a string literal. Value is the raw source text
// between the quotes.
type StringLiteral struct {
	LiteralBase
	Value string
}

// IdentExpr represents an identifier reference.
type IdentExpr struct {
	ExprBase
	Name string
}

// TupleExpr represents a tuple: (a,) or (a, b).
type TupleExpr struct {
	ExprBase
	Elements []Expr // at least one
}

// ArrayLiteral represents an array literal: [a, b, c].
type ArrayLiteral struct {
	ExprBase
	Elements []Expr
}

// UnaryExpr represents a unary operation: !x, -x.
type UnaryExpr struct {
	ExprBase
	Op      token.Kind
	Operand Expr
}

// BinaryExpr represents a binary operation: a + b, x == y, a and b.
type BinaryExpr struct {
	ExprBase
	Op    token.Kind
	Left  Expr
	Right Expr
}

// CallExpr represents a function call: f(a, b).
type CallExpr struct {
	ExprBase
	Callee Expr
	Args   []Expr
}

// AssignExpr represents an assignment: target = value. The target is not
// checked to be an lvalue here.
type AssignExpr struct {
	ExprBase
	Target Expr
	Value  Expr
}

// BlockExpr represents do ... end.
type BlockExpr struct {
	ExprBase
	Stmts []Stmt
}

// IfExpr represents if cond do ... end [else expr].
type IfExpr struct {
	ExprBase
	Condition Expr
	Body      *BlockExpr
	Else      Expr // may be nil
}

// ForExpr represents for binding in iterable do ... end.
type ForExpr struct {
	ExprBase
	Binding  Expr
	Iterable Expr
	Body     *BlockExpr
}

// WhileExpr represents while cond do ... end.
type WhileExpr struct {
	ExprBase
	Condition Expr
	Body      *BlockExpr
}

// ============================================================
// Statements
// ============================================================

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	StmtBase
	Expr Expr
}

// ReturnStmt represents return expr.
type ReturnStmt struct {
	StmtBase
	Value Expr
}

// LetStmt represents let name = value.
type LetStmt struct {
	StmtBase
	Name  *IdentExpr
	Value Expr
}

// FuncDecl represents fun [pub] name(params) [-> type] do ... end.
//
// ParamTypes is parallel to Params; an entry is nil when the parameter has no
// annotation.
type FuncDecl struct {
	StmtBase
	Name       *IdentExpr
	Public     bool
	Params     []string
	ParamTypes []Annotation
	ReturnType Annotation // may be nil
	Body       *BlockExpr
}
