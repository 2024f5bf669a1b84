package ast

import (
	"alpaca-lang/internal/span"
	"alpaca-lang/internal/token"
	"encoding/json"
	"testing"
)

func sp(start, end int) span.Span {
	return span.Span{
		Start: span.Position{Offset: start, Line: 1, Column: start + 1},
		End:   span.Position{Offset: end, Line: 1, Column: end + 1},
	}
}

func exprBase(start, end int) ExprBase {
	return ExprBase{NodeBase{Span: sp(start, end)}}
}

func intLit(start, end int, v int64) *IntLiteral {
	return &IntLiteral{LiteralBase: LiteralBase{exprBase(start, end)}, Value: v}
}

// sample builds the tree for: let x = -(1) + f(2)
func sample() *File {
	call := &CallExpr{
		ExprBase: exprBase(15, 19),
		Callee:   &IdentExpr{ExprBase: exprBase(15, 16), Name: "f"},
		Args:     []Expr{intLit(17, 18, 2)},
	}
	neg := &UnaryExpr{ExprBase: exprBase(8, 12), Op: token.MINUS, Operand: intLit(10, 11, 1)}
	bin := &BinaryExpr{ExprBase: exprBase(8, 19), Op: token.PLUS, Left: neg, Right: call}
	let := &LetStmt{
		StmtBase: StmtBase{NodeBase{Span: sp(0, 19)}},
		Name:     &IdentExpr{ExprBase: exprBase(4, 5), Name: "x"},
		Value:    bin,
	}
	return &File{NodeBase: NodeBase{Span: sp(0, 19)}, Name: "sample.alp", Body: []Stmt{let}}
}

func TestLiteralInterface(t *testing.T) {
	var lits []Literal = []Literal{
		intLit(0, 1, 1),
		&BoolLiteral{Value: true},
		&StringLiteral{Value: "s"},
	}
	if len(lits) != 3 {
		t.Fatal("expected three literal kinds")
	}
}

func TestInspectOrder(t *testing.T) {
	var kinds []string
	Inspect(sample(), func(n Node) bool {
		kinds = append(kinds, NodeToMap(n)["kind"].(string))
		return true
	})

	want := []string{
		"File", "LetStmt", "IdentExpr", "BinaryExpr",
		"UnaryExpr", "IntLiteral", "CallExpr", "IdentExpr", "IntLiteral",
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d nodes, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("node[%d]: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	count := 0
	Inspect(sample(), func(n Node) bool {
		count++
		_, isBinary := n.(*BinaryExpr)
		return !isBinary
	})
	// File, LetStmt, IdentExpr, BinaryExpr
	if count != 4 {
		t.Errorf("expected 4 visited nodes, got %d", count)
	}
}

func TestNodeToMapJSON(t *testing.T) {
	data, err := json.Marshal(NodeToMap(sample()))
	if err != nil {
		t.Fatalf("json error: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["kind"] != "File" || out["name"] != "sample.alp" {
		t.Fatalf("unexpected root: %v", out)
	}
	let := out["body"].([]interface{})[0].(map[string]interface{})
	value := let["value"].(map[string]interface{})
	if value["op"] != "+" {
		t.Errorf("expected '+' operator, got %v", value["op"])
	}
	right := value["right"].(map[string]interface{})
	if right["kind"] != "CallExpr" {
		t.Errorf("expected CallExpr, got %v", right["kind"])
	}
}

func TestFuncDeclToMap(t *testing.T) {
	fn := &FuncDecl{
		Name:       &IdentExpr{Name: "add"},
		Public:     true,
		Params:     []string{"a", "b"},
		ParamTypes: []Annotation{NamedType{Name: "int"}, nil},
		ReturnType: NamedType{Name: "int"},
		Body:       &BlockExpr{},
	}
	out := NodeToMap(fn)
	params := out["params"].([]interface{})
	if _, ok := params[0].(map[string]interface{})["type"]; !ok {
		t.Error("annotated parameter should carry its type")
	}
	if _, ok := params[1].(map[string]interface{})["type"]; ok {
		t.Error("un-annotated parameter should not carry a type")
	}
	if out["returnType"].(map[string]interface{})["name"] != "int" {
		t.Errorf("unexpected return type: %v", out["returnType"])
	}
}

func TestAnnotationString(t *testing.T) {
	tests := []struct {
		ann  Annotation
		want string
	}{
		{NamedType{Name: "int"}, "int"},
		{TupleType{Elements: []Annotation{NamedType{"int"}, NamedType{"string"}}}, "(int, string)"},
		{ArrayType{Elements: []Annotation{NamedType{"bool"}}}, "[bool]"},
		{FuncType{
			Params: []Annotation{NamedType{"int"}, ArrayType{Elements: []Annotation{NamedType{"int"}}}},
			Return: TupleType{Elements: []Annotation{NamedType{"int"}}},
		}, "fun(int, [int]) -> (int)"},
	}
	for _, tt := range tests {
		if got := tt.ann.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestAnnotationEqual(t *testing.T) {
	f1 := FuncType{Params: []Annotation{NamedType{"int"}}, Return: NamedType{"bool"}}
	f2 := FuncType{Params: []Annotation{NamedType{"int"}}, Return: NamedType{"bool"}}
	f3 := FuncType{Params: []Annotation{NamedType{"int"}}, Return: NamedType{"int"}}

	if !AnnotationEqual(f1, f2) {
		t.Error("structurally equal function types should compare equal")
	}
	if AnnotationEqual(f1, f3) {
		t.Error("different return types should not compare equal")
	}
	if AnnotationEqual(TupleType{Elements: []Annotation{NamedType{"int"}}}, ArrayType{Elements: []Annotation{NamedType{"int"}}}) {
		t.Error("tuple and array should differ")
	}
	if !AnnotationEqual(nil, nil) || AnnotationEqual(NamedType{"int"}, nil) {
		t.Error("nil handling is wrong")
	}
}
