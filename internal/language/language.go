package language

import (
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func ParseQuery(source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func ParseSchema(name, source string) (*SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GoValue converts an AST value node to a plain Go value without consulting
// any type information. Variable nodes resolve to nil.
func GoValue(node *Value) any {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case IntValue:
		iv, _ := strconv.Atoi(node.Raw)
		return iv
	case FloatValue:
		fv, _ := strconv.ParseFloat(node.Raw, 64)
		return fv
	case StringValue, BlockValue:
		return node.Raw
	case BooleanValue:
		return node.Raw == "true"
	case NullValue:
		return nil
	case EnumValue:
		return node.Raw
	case ListValue:
		out := make([]any, len(node.Children))
		for i, c := range node.Children {
			out[i] = GoValue(c.Value)
		}
		return out
	case ObjectValue:
		m := make(map[string]any)
		for _, f := range node.Children {
			m[f.Name] = GoValue(f.Value)
		}
		return m
	default:
		return nil
	}
}
