package ast

import (
	"alpaca-lang/internal/span"
	"alpaca-lang/internal/token"
)

// NodeToMap converts an AST node to a map suitable for JSON or YAML serialization.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return m("File", n.Span, "name", n.Name, "body", stmtSlice(n.Body))

	// ---- Expressions ----
	case *IntLiteral:
		return m("IntLiteral", n.Span, "value", n.Value)
	case *BoolLiteral:
		return m("BoolLiteral", n.Span, "value", n.Value)
	case *StringLiteral:
		return m("StringLiteral", n.Span, "value", n.Value)
	case *IdentExpr:
		return m("IdentExpr", n.Span, "name", n.Name)
	case *TupleExpr:
		return m("TupleExpr", n.Span, "elements", exprSlice(n.Elements))
	case *ArrayLiteral:
		return m("ArrayLiteral", n.Span, "elements", exprSlice(n.Elements))
	case *UnaryExpr:
		return m("UnaryExpr", n.Span, "op", opStr(n.Op), "operand", NodeToMap(n.Operand))
	case *BinaryExpr:
		return m("BinaryExpr", n.Span,
			"op", opStr(n.Op),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *CallExpr:
		return m("CallExpr", n.Span,
			"callee", NodeToMap(n.Callee),
			"args", exprSlice(n.Args))
	case *AssignExpr:
		return m("AssignExpr", n.Span,
			"target", NodeToMap(n.Target),
			"value", NodeToMap(n.Value))
	case *BlockExpr:
		return m("BlockExpr", n.Span, "stmts", stmtSlice(n.Stmts))
	case *IfExpr:
		result := m("IfExpr", n.Span,
			"condition", NodeToMap(n.Condition),
			"body", NodeToMap(n.Body))
		if n.Else != nil {
			result["else"] = NodeToMap(n.Else)
		}
		return result
	case *ForExpr:
		return m("ForExpr", n.Span,
			"binding", NodeToMap(n.Binding),
			"iterable", NodeToMap(n.Iterable),
			"body", NodeToMap(n.Body))
	case *WhileExpr:
		return m("WhileExpr", n.Span,
			"condition", NodeToMap(n.Condition),
			"body", NodeToMap(n.Body))

	// ---- Statements ----
	case *ExprStmt:
		return m("ExprStmt", n.Span, "expr", NodeToMap(n.Expr))
	case *ReturnStmt:
		return m("ReturnStmt", n.Span, "value", NodeToMap(n.Value))
	case *LetStmt:
		return m("LetStmt", n.Span,
			"name", NodeToMap(n.Name),
			"value", NodeToMap(n.Value))
	case *FuncDecl:
		params := make([]interface{}, len(n.Params))
		for i, name := range n.Params {
			param := map[string]interface{}{"name": name}
			if i < len(n.ParamTypes) && n.ParamTypes[i] != nil {
				param["type"] = AnnotationToMap(n.ParamTypes[i])
			}
			params[i] = param
		}
		result := m("FuncDecl", n.Span,
			"name", NodeToMap(n.Name),
			"public", n.Public,
			"params", params,
			"body", NodeToMap(n.Body))
		if n.ReturnType != nil {
			result["returnType"] = AnnotationToMap(n.ReturnType)
		}
		return result

	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// AnnotationToMap converts a type annotation to a tagged map.
func AnnotationToMap(a Annotation) map[string]interface{} {
	switch t := a.(type) {
	case NamedType:
		return map[string]interface{}{"kind": "NamedType", "name": t.Name}
	case TupleType:
		return map[string]interface{}{"kind": "TupleType", "elements": annotationSlice(t.Elements)}
	case ArrayType:
		return map[string]interface{}{"kind": "ArrayType", "elements": annotationSlice(t.Elements)}
	case FuncType:
		return map[string]interface{}{
			"kind":   "FuncType",
			"params": annotationSlice(t.Params),
			"return": AnnotationToMap(t.Return),
		}
	default:
		return nil
	}
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs.
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{
			"offset": s.Start.Offset,
			"line":   s.Start.Line,
			"column": s.Start.Column,
		},
		"end": map[string]interface{}{
			"offset": s.End.Offset,
			"line":   s.End.Line,
			"column": s.End.Column,
		},
	}
}

func stmtSlice(stmts []Stmt) []interface{} {
	result := make([]interface{}, len(stmts))
	for i, s := range stmts {
		result[i] = NodeToMap(s)
	}
	return result
}

func exprSlice(exprs []Expr) []interface{} {
	result := make([]interface{}, len(exprs))
	for i, e := range exprs {
		result[i] = NodeToMap(e)
	}
	return result
}

func annotationSlice(list []Annotation) []interface{} {
	result := make([]interface{}, len(list))
	for i, a := range list {
		result[i] = AnnotationToMap(a)
	}
	return result
}

func opStr(kind token.Kind) string {
	return kind.String()
}
