package values

import (
	"fmt"
	"sort"

	schema "github.com/hanpama/gqlinput/internal/schema"
)

// CoerceValue coerces an externally supplied value against a type,
// returning either the coerced value or every path-tagged fault found in
// it. A nil error slice means success.
func CoerceValue(s *schema.Schema, value any, t *schema.TypeRef) (any, []CoercionError) {
	return coerceValue(s, value, t, nil)
}

func coerceValue(s *schema.Schema, value any, t *schema.TypeRef, path Path) (any, []CoercionError) {
	if t.IsNonNull() {
		if value == nil {
			return nil, []CoercionError{{
				Path:    path,
				Message: fmt.Sprintf("Expected %q, found null.", schema.RenderTypeRef(t)),
			}}
		}
		return coerceValue(s, value, t.Unwrap(), path)
	}

	if value == nil {
		return nil, nil
	}

	if t.IsList() {
		return coerceListValue(s, value, t, path)
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
		return coerceScalarValue(named, value, path)
	case schema.TypeKindEnum:
		return coerceEnumValue(named, value, path)
	case schema.TypeKindInputObject:
		return coerceInputObjectValue(s, named, value, path)
	default:
		return nil, []CoercionError{{
			Path:    path,
			Message: fmt.Sprintf("Type %q cannot be used as an input type.", named.Name),
		}}
	}
}

// coerceListValue coerces every element, never short-circuiting across
// indices. A bare non-list value coerces as a list of one.
func coerceListValue(s *schema.Schema, value any, listType *schema.TypeRef, path Path) (any, []CoercionError) {
	inner := listType.Unwrap()
	items, ok := value.([]any)
	if !ok {
		coerced, errs := coerceValue(s, value, inner, path)
		if len(errs) > 0 {
			return nil, errs
		}
		return []any{coerced}, nil
	}

	var errs []CoercionError
	coerced := make([]any, 0, len(items))
	for i, item := range items {
		cv, itemErrs := coerceValue(s, item, inner, appendPath(path, i))
		if len(itemErrs) > 0 {
			errs = append(errs, itemErrs...)
			continue
		}
		coerced = append(coerced, cv)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return coerced, nil
}

func coerceInputObjectValue(s *schema.Schema, t *schema.Type, value any, path Path) (any, []CoercionError) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, []CoercionError{{
			Path:    path,
			Message: fmt.Sprintf("Expected %q, found not an object.", t.Name),
		}}
	}

	var errs []CoercionError

	// Unknown keys first. Decoded payload maps carry no ordering, so sort
	// for reproducible output.
	var unknown []string
	for key := range obj {
		if t.InputField(key) == nil {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, CoercionError{Path: appendPath(path, key), Message: "Unknown field."})
	}

	// Declared fields in declaration order. Unknown keys are dropped from
	// the coerced result; absent nullable fields without defaults are
	// omitted rather than set to null.
	coerced := make(map[string]any, len(t.InputFields))
	for _, field := range t.InputFields {
		fieldValue, present := obj[field.Name]
		switch {
		case present:
			cv, fieldErrs := coerceValue(s, fieldValue, field.Type, appendPath(path, field.Name))
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

func coerceScalarValue(t *schema.Type, value any, path Path) (any, []CoercionError) {
	coerced, err := safeParseValue(t, value)
	if err != nil {
		return nil, []CoercionError{{
			Path:    path,
			Message: fmt.Sprintf("Expected type %q, found %s.", t.Name, schema.RenderValue(value)),
		}}
	}
	return coerced, nil
}

func coerceEnumValue(t *schema.Type, value any, path Path) (any, []CoercionError) {
	if name, ok := value.(string); ok && t.HasEnumValue(name) {
		return name, nil
	}
	return nil, []CoercionError{{
		Path:    path,
		Message: fmt.Sprintf("Expected type %q, found %s.", t.Name, schema.RenderValue(value)),
	}}
}

// safeParseValue invokes the scalar's ParseValue hook, converting a
// panicking hook into an invalid outcome. Scalars without a hook accept
// the value as-is.
func safeParseValue(t *schema.Type, value any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse value: %v", r)
		}
	}()
	if t.ParseValue == nil {
		return value, nil
	}
	result, err = t.ParseValue(value)
	if err == nil && result == nil {
		// A nil result with no error is the hook's invalid sentinel.
		err = fmt.Errorf("parse value: invalid")
	}
	return result, err
}
