package parser

import (
	"alpaca-lang/internal/ast"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// sexp renders a node as an S-expression. Operators and keywords head each
// form so precedence is visible at a glance.
func sexp(node ast.Node) string {
	switch n := node.(type) {
	case nil:
		return "<nil>"
	case *ast.IntLiteral:
		return strconv.FormatInt(n.Value, 10)
	case *ast.StringLiteral:
		return strconv.Quote(n.Value)
	case *ast.BoolLiteral:
		return strconv.FormatBool(n.Value)
	case *ast.IdentExpr:
		return n.Name
	case *ast.TupleExpr:
		return form("tuple", exprs(n.Elements)...)
	case *ast.ArrayLiteral:
		return form("array", exprs(n.Elements)...)
	case *ast.UnaryExpr:
		return form(n.Op.String(), sexp(n.Operand))
	case *ast.BinaryExpr:
		return form(n.Op.String(), sexp(n.Left), sexp(n.Right))
	case *ast.CallExpr:
		return form("call", append([]string{sexp(n.Callee)}, exprs(n.Args)...)...)
	case *ast.AssignExpr:
		return form("=", sexp(n.Target), sexp(n.Value))
	case *ast.BlockExpr:
		return form("do", stmts(n.Stmts)...)
	case *ast.IfExpr:
		if n.Else != nil {
			return form("if", sexp(n.Condition), sexp(n.Body), sexp(n.Else))
		}
		return form("if", sexp(n.Condition), sexp(n.Body))
	case *ast.ForExpr:
		return form("for", sexp(n.Binding), sexp(n.Iterable), sexp(n.Body))
	case *ast.WhileExpr:
		return form("while", sexp(n.Condition), sexp(n.Body))
	case *ast.ExprStmt:
		return sexp(n.Expr)
	case *ast.ReturnStmt:
		return form("return", sexp(n.Value))
	case *ast.LetStmt:
		return form("let", sexp(n.Name), sexp(n.Value))
	case *ast.FuncDecl:
		var parts []string
		if n.Public {
			parts = append(parts, "pub")
		}
		params := make([]string, len(n.Params))
		for i, name := range n.Params {
			params[i] = name
			if i < len(n.ParamTypes) && n.ParamTypes[i] != nil {
				params[i] += ":" + n.ParamTypes[i].String()
			}
		}
		parts = append(parts, sexp(n.Name), "("+strings.Join(params, " ")+")")
		if n.ReturnType != nil {
			parts = append(parts, "->", n.ReturnType.String())
		}
		parts = append(parts, sexp(n.Body))
		return form("fun", parts...)
	default:
		return fmt.Sprintf("<%T>", node)
	}
}

func form(head string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + head + ")"
	}
	return "(" + head + " " + strings.Join(parts, " ") + ")"
}

func exprs(list []ast.Expr) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = sexp(e)
	}
	return out
}

func stmts(list []ast.Stmt) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = sexp(s)
	}
	return out
}

// render produces the golden form of a parse: one line per top-level
// statement followed by one line per error.
func render(file *ast.File, errs []*Error) string {
	var sb strings.Builder
	for _, s := range file.Body {
		sb.WriteString(sexp(s))
		sb.WriteByte('\n')
	}
	for _, e := range errs {
		fmt.Fprintf(&sb, "error[%s] %s: %s\n", e.Code(), e.Span.Start, e.Description())
	}
	return sb.String()
}

// goldenTest parses a .alp file and compares the rendering to a .sexp file.
func goldenTest(t *testing.T, name string) {
	t.Helper()

	srcPath := filepath.Join("..", "..", "testdata", "parser", name+".alp")
	expectedPath := filepath.Join("..", "..", "testdata", "parser", name+".sexp")

	source, err := os.ReadFile(srcPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", srcPath, err)
	}

	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	file, errs := New(string(source), name+".alp").ParseFile()

	expectedStr := strings.TrimRight(string(expected), "\n")
	gotStr := strings.TrimRight(render(file, errs), "\n")

	if gotStr != expectedStr {
		expectedLines := strings.Split(expectedStr, "\n")
		gotLines := strings.Split(gotStr, "\n")

		t.Errorf("output mismatch for %s", name)
		maxLines := len(expectedLines)
		if len(gotLines) > maxLines {
			maxLines = len(gotLines)
		}
		for i := 0; i < maxLines; i++ {
			exp, g := "<missing>", "<missing>"
			if i < len(expectedLines) {
				exp = expectedLines[i]
			}
			if i < len(gotLines) {
				g = gotLines[i]
			}
			prefix := "  "
			if exp != g {
				prefix = "! "
			}
			t.Logf("%sline %d: expected=%q got=%q", prefix, i+1, exp, g)
		}
	}
}

func TestGoldenPrecedence(t *testing.T) {
	goldenTest(t, "precedence")
}

func TestGoldenControl(t *testing.T) {
	goldenTest(t, "control")
}

func TestGoldenRecovery(t *testing.T) {
	goldenTest(t, "recovery")
}

func TestGoldenAnnotations(t *testing.T) {
	goldenTest(t, "annotations")
}
