package values

import (
	"fmt"

	language "github.com/hanpama/gqlinput/internal/language"
	schema "github.com/hanpama/gqlinput/internal/schema"
)

// ValueFromAST coerces a literal AST node against a type, mirroring
// CoerceValue case by case. Variable references resolve against
// variableValues: a present entry is substituted without re-coercion (the
// variable was already coerced against its own declared type), an absent
// one reads as null.
func ValueFromAST(s *schema.Schema, node *language.Value, t *schema.TypeRef, variableValues map[string]any) (any, []CoercionError) {
	return valueFromAST(s, node, t, variableValues, nil)
}

func valueFromAST(s *schema.Schema, node *language.Value, t *schema.TypeRef, variableValues map[string]any, path Path) (any, []CoercionError) {
	if node != nil && node.Kind == language.Variable {
		value := variableValues[node.Raw]
		if value == nil && t.IsNonNull() {
			return nil, []CoercionError{{
				Path:    path,
				Message: fmt.Sprintf("Expected %q, found null.", schema.RenderTypeRef(t)),
			}}
		}
		return value, nil
	}

	if t.IsNonNull() {
		if node == nil || node.Kind == language.NullValue {
			return nil, []CoercionError{{
				Path:    path,
				Message: fmt.Sprintf("Expected %q, found null.", schema.RenderTypeRef(t)),
			}}
		}
		return valueFromAST(s, node, t.Unwrap(), variableValues, path)
	}

	if node == nil || node.Kind == language.NullValue {
		return nil, nil
	}

	if t.IsList() {
		return listFromAST(s, node, t, variableValues, path)
	}

	named := s.NamedTypeOf(t)
	if named == nil {
		return nil, []CoercionError{{
			Path:    path,
			Message: fmt.Sprintf("Unknown type %q.", t.GetNamedType()),
		}}
	}
	switch named.Kind {
	case schema.TypeKindScalar:
		return scalarFromAST(named, node, path)
	case schema.TypeKindEnum:
		return enumFromAST(named, node, path)
	case schema.TypeKindInputObject:
		return inputObjectFromAST(s, named, node, variableValues, path)
	default:
		return nil, []CoercionError{{
			Path:    path,
			Message: fmt.Sprintf("Type %q cannot be used as an input type.", named.Name),
		}}
	}
}

// listFromAST coerces every contained node, never short-circuiting across
// indices. A non-list literal coerces as a list of one.
func listFromAST(s *schema.Schema, node *language.Value, listType *schema.TypeRef, variableValues map[string]any, path Path) (any, []CoercionError) {
	inner := listType.Unwrap()
	if node.Kind != language.ListValue {
		coerced, errs := valueFromAST(s, node, inner, variableValues, path)
		if len(errs) > 0 {
			return nil, errs
		}
		return []any{coerced}, nil
	}

	var errs []CoercionError
	coerced := make([]any, 0, len(node.Children))
	for i, child := range node.Children {
		cv, childErrs := valueFromAST(s, child.Value, inner, variableValues, appendPath(path, i))
		if len(childErrs) > 0 {
			errs = append(errs, childErrs...)
			continue
		}
		coerced = append(coerced, cv)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return coerced, nil
}

func inputObjectFromAST(s *schema.Schema, t *schema.Type, node *language.Value, variableValues map[string]any, path Path) (any, []CoercionError) {
	if node.Kind != language.ObjectValue {
		return nil, []CoercionError{{
			Path:    path,
			Message: fmt.Sprintf("Expected %q, found not an object.", t.Name),
		}}
	}

	var errs []CoercionError

	// Unknown fields first, in document order; object literals keep their
	// source ordering.
	for _, child := range node.Children {
		if t.InputField(child.Name) == nil {
			errs = append(errs, CoercionError{Path: appendPath(path, child.Name), Message: "Unknown field."})
		}
	}

	coerced := make(map[string]any, len(t.InputFields))
	for _, field := range t.InputFields {
		child := childByName(node, field.Name)
		switch {
		case child != nil:
			cv, fieldErrs := valueFromAST(s, child.Value, field.Type, variableValues, appendPath(path, field.Name))
			if len(fieldErrs) > 0 {
				errs = append(errs, fieldErrs...)
				continue
			}
			coerced[field.Name] = cv
		case field.HasDefault:
			coerced[field.Name] = field.DefaultValue
		case field.Type.IsNonNull():
			errs = append(errs, CoercionError{
				Path:    appendPath(path, field.Name),
				Message: fmt.Sprintf("Expected %q, found null.", schema.RenderTypeRef(field.Type)),
			})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return coerced, nil
}

func childByName(node *language.Value, name string) *language.ChildValue {
	for _, child := range node.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

func scalarFromAST(t *schema.Type, node *language.Value, path Path) (any, []CoercionError) {
	coerced, err := safeParseLiteral(t, node)
	if err != nil {
		return nil, []CoercionError{{
			Path:    path,
			Message: fmt.Sprintf("Expected type %q, found %s.", t.Name, renderLiteral(node)),
		}}
	}
	return coerced, nil
}

func enumFromAST(t *schema.Type, node *language.Value, path Path) (any, []CoercionError) {
	if node.Kind == language.EnumValue && t.HasEnumValue(node.Raw) {
		return node.Raw, nil
	}
	return nil, []CoercionError{{
		Path:    path,
		Message: fmt.Sprintf("Expected type %q, found %s.", t.Name, renderLiteral(node)),
	}}
}

// safeParseLiteral invokes the scalar's ParseLiteral hook behind a
// recover. Scalars without a hook accept any literal via its plain Go
// conversion.
func safeParseLiteral(t *schema.Type, node *language.Value) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse literal: %v", r)
		}
	}()
	if t.ParseLiteral == nil {
		return language.GoValue(node), nil
	}
	result, err = t.ParseLiteral(node)
	if err == nil && result == nil {
		err = fmt.Errorf("parse literal: invalid")
	}
	return result, err
}
