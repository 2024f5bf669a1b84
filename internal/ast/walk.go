package ast

// Inspect traverses the AST rooted at node in depth-first order, calling fn
// for each node. If fn returns false, the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, s := range n.Body {
			Inspect(s, fn)
		}

	case *TupleExpr:
		inspectExprs(n.Elements, fn)
	case *ArrayLiteral:
		inspectExprs(n.Elements, fn)
	case *UnaryExpr:
		Inspect(n.Operand, fn)
	case *BinaryExpr:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *CallExpr:
		Inspect(n.Callee, fn)
		inspectExprs(n.Args, fn)
	case *AssignExpr:
		Inspect(n.Target, fn)
		Inspect(n.Value, fn)
	case *BlockExpr:
		for _, s := range n.Stmts {
			Inspect(s, fn)
		}
	case *IfExpr:
		Inspect(n.Condition, fn)
		if n.Body != nil {
			Inspect(n.Body, fn)
		}
		if n.Else != nil {
			Inspect(n.Else, fn)
		}
	case *ForExpr:
		Inspect(n.Binding, fn)
		Inspect(n.Iterable, fn)
		if n.Body != nil {
			Inspect(n.Body, fn)
		}
	case *WhileExpr:
		Inspect(n.Condition, fn)
		if n.Body != nil {
			Inspect(n.Body, fn)
		}

	case *ExprStmt:
		Inspect(n.Expr, fn)
	case *ReturnStmt:
		Inspect(n.Value, fn)
	case *LetStmt:
		if n.Name != nil {
			Inspect(n.Name, fn)
		}
		Inspect(n.Value, fn)
	case *FuncDecl:
		if n.Name != nil {
			Inspect(n.Name, fn)
		}
		if n.Body != nil {
			Inspect(n.Body, fn)
		}
	}
}

func inspectExprs(exprs []Expr, fn func(Node) bool) {
	for _, e := range exprs {
		Inspect(e, fn)
	}
}
