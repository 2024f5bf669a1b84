package ast

import "strings"

// Annotation is a type annotation. Annotations are plain values with no
// identity; compare them with AnnotationEqual.
type Annotation interface {
	annotationNode()
	String() string
}

// NamedType is a single named type: int.
type NamedType struct {
	Name string
}

// TupleType is a tuple of types: (int, string).
type TupleType struct {
	Elements []Annotation
}

// ArrayType is an array type: [int].
type ArrayType struct {
	Elements []Annotation
}

// FuncType is a function type: fun(int, int) -> int.
type FuncType struct {
	Params []Annotation
	Return Annotation
}

func (NamedType) annotationNode() {}
func (TupleType) annotationNode() {}
func (ArrayType) annotationNode() {}
func (FuncType) annotationNode()  {}

func (t NamedType) String() string { return t.Name }
func (t TupleType) String() string { return "(" + joinAnnotations(t.Elements) + ")" }
func (t ArrayType) String() string { return "[" + joinAnnotations(t.Elements) + "]" }

func (t FuncType) String() string {
	ret := "?"
	if t.Return != nil {
		ret = t.Return.String()
	}
	return "fun(" + joinAnnotations(t.Params) + ") -> " + ret
}

func joinAnnotations(list []Annotation) string {
	parts := make([]string, len(list))
	for i, a := range list {
		if a == nil {
			parts[i] = "?"
			continue
		}
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// AnnotationEqual reports whether a and b describe the same type.
func AnnotationEqual(a, b Annotation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case NamedType:
		y, ok := b.(NamedType)
		return ok && x.Name == y.Name
	case TupleType:
		y, ok := b.(TupleType)
		return ok && annotationsEqual(x.Elements, y.Elements)
	case ArrayType:
		y, ok := b.(ArrayType)
		return ok && annotationsEqual(x.Elements, y.Elements)
	case FuncType:
		y, ok := b.(FuncType)
		return ok && annotationsEqual(x.Params, y.Params) && AnnotationEqual(x.Return, y.Return)
	default:
		return false
	}
}

func annotationsEqual(a, b []Annotation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AnnotationEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
