package schema

import (
	"fmt"
	"strconv"

	language "github.com/hanpama/gqlinput/internal/language"
)

var stringType = &Type{
	Name:         "String",
	Kind:         TypeKindScalar,
	Description:  "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	Serialize:    serializeString,
	ParseValue:   parseStringValue,
	ParseLiteral: parseStringLiteral,
}

var intType = &Type{
	Name:         "Int",
	Kind:         TypeKindScalar,
	Description:  "The `Int` scalar type represents non-fractional signed whole numeric values.",
	Serialize:    parseIntValue,
	ParseValue:   parseIntValue,
	ParseLiteral: parseIntLiteral,
}

var floatType = &Type{
	Name:         "Float",
	Kind:         TypeKindScalar,
	Description:  "The `Float` scalar type represents signed double-precision fractional values.",
	Serialize:    parseFloatValue,
	ParseValue:   parseFloatValue,
	ParseLiteral: parseFloatLiteral,
}

var booleanType = &Type{
	Name:         "Boolean",
	Kind:         TypeKindScalar,
	Description:  "The `Boolean` scalar type represents `true` or `false`.",
	Serialize:    parseBooleanValue,
	ParseValue:   parseBooleanValue,
	ParseLiteral: parseBooleanLiteral,
}

var idType = &Type{
	Name:         "ID",
	Kind:         TypeKindScalar,
	Description:  "The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
	Serialize:    parseIDValue,
	ParseValue:   parseIDValue,
	ParseLiteral: parseIDLiteral,
}

var includeDirective = &Directive{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Arguments: []*InputValue{
		{
			Name:        "if",
			Description: "Included when true.",
			Type:        &TypeRef{Kind: TypeRefKindNonNull, OfType: &TypeRef{Kind: TypeRefKindNamed, Named: "Boolean"}},
		},
	},
	Locations:    []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
	IsRepeatable: false,
}

var skipDirective = &Directive{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Arguments: []*InputValue{
		{
			Name:        "if",
			Description: "Skipped when true.",
			Type:        &TypeRef{Kind: TypeRefKindNonNull, OfType: &TypeRef{Kind: TypeRefKindNamed, Named: "Boolean"}},
		},
	},
	Locations:    []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
	IsRepeatable: false,
}

func parseStringValue(value any) (any, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to String", value, value)
}

func serializeString(value any) (any, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return fmt.Sprintf("%v", value), nil
}

func parseStringLiteral(node *language.Value) (any, error) {
	if node.Kind == language.StringValue || node.Kind == language.BlockValue {
		return node.Raw, nil
	}
	return nil, fmt.Errorf("String cannot represent %s", node.Raw)
}

func parseIntValue(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	case float32:
		if v == float32(int(v)) {
			return int(v), nil
		}
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Int", value, value)
}

func parseIntLiteral(node *language.Value) (any, error) {
	if node.Kind == language.IntValue {
		return strconv.Atoi(node.Raw)
	}
	return nil, fmt.Errorf("Int cannot represent %s", node.Raw)
}

func parseFloatValue(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Float", value, value)
}

func parseFloatLiteral(node *language.Value) (any, error) {
	if node.Kind == language.FloatValue || node.Kind == language.IntValue {
		return strconv.ParseFloat(node.Raw, 64)
	}
	return nil, fmt.Errorf("Float cannot represent %s", node.Raw)
}

func parseBooleanValue(value any) (any, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to Boolean", value, value)
}

func parseBooleanLiteral(node *language.Value) (any, error) {
	if node.Kind == language.BooleanValue {
		return node.Raw == "true", nil
	}
	return nil, fmt.Errorf("Boolean cannot represent %s", node.Raw)
}

func parseIDValue(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), nil
		}
	}
	return nil, fmt.Errorf("cannot coerce %v (%T) to ID", value, value)
}

func parseIDLiteral(node *language.Value) (any, error) {
	if node.Kind == language.StringValue || node.Kind == language.IntValue {
		return node.Raw, nil
	}
	return nil, fmt.Errorf("ID cannot represent %s", node.Raw)
}
