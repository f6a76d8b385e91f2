package values

import (
	"fmt"

	language "github.com/hanpama/gqlinput/internal/language"
	schema "github.com/hanpama/gqlinput/internal/schema"
)

// CoerceVariableValues coerces the raw variable payload against the
// operation's variable definitions. Variables that coerce successfully
// land in the returned map; each failing variable contributes one
// aggregated GraphQLError. Coercion never aborts on the first failing
// variable.
func CoerceVariableValues(
	s *schema.Schema,
	operation *language.OperationDefinition,
	raw map[string]any,
) (map[string]any, []GraphQLError) {
	coerced := make(map[string]any, len(operation.VariableDefinitions))
	var gqlErrs []GraphQLError

	for _, varDef := range operation.VariableDefinitions {
		name := varDef.Variable
		varType := schema.TypeRefFromAST(varDef.Type)

		// A declared type that is not an input type aborts before any
		// value coercion for this variable.
		if !s.IsInputType(varType) {
			gqlErrs = append(gqlErrs, GraphQLError{
				Message: fmt.Sprintf(
					"Variable \"$%s\" expected value of type %q which cannot be used as an input type.",
					name, schema.RenderTypeRef(varType)),
				Locations: locationsOf(varDef.Position),
			})
			continue
		}

		// An omitted nullable variable without a default leaves no entry
		// at all; argument coercion decides "unprovided" by key presence
		// so the argument's own default can still apply.
		value, present := raw[name]
		if !present {
			if varDef.DefaultValue != nil {
				if dv, ok := applyVariableDefault(s, varDef, varType, &gqlErrs); ok {
					coerced[name] = dv
				}
				continue
			}
			if varType.IsNonNull() {
				gqlErrs = append(gqlErrs, notProvidedError(name, varType, varDef.Position))
			}
			continue
		}

		// Explicit null for a required variable without a default reads
		// the same as omission.
		if value == nil && varType.IsNonNull() && varDef.DefaultValue == nil {
			gqlErrs = append(gqlErrs, notProvidedError(name, varType, varDef.Position))
			continue
		}

		cv, errs := coerceValue(s, value, varType, nil)
		if len(errs) > 0 {
			top := fmt.Sprintf("Variable \"$%s\" got invalid value %s.", name, renderJSON(value))
			gqlErrs = append(gqlErrs, invalidValueError(top, errs, varDef.Position))
			continue
		}
		coerced[name] = cv
	}

	return coerced, gqlErrs
}

// applyVariableDefault evaluates the definition's default literal with no
// variables in scope. Defaults are expected to be pre-validated; a
// failing default still reports rather than silently passing through.
func applyVariableDefault(s *schema.Schema, varDef *language.VariableDefinition, varType *schema.TypeRef, gqlErrs *[]GraphQLError) (any, bool) {
	dv, errs := valueFromAST(s, varDef.DefaultValue, varType, nil, nil)
	if len(errs) > 0 {
		top := fmt.Sprintf("Variable \"$%s\" got invalid default value %s.",
			varDef.Variable, renderLiteral(varDef.DefaultValue))
		*gqlErrs = append(*gqlErrs, invalidValueError(top, errs, varDef.Position))
		return nil, false
	}
	return dv, true
}

func notProvidedError(name string, varType *schema.TypeRef, pos *language.Position) GraphQLError {
	return GraphQLError{
		Message: fmt.Sprintf("Variable \"$%s\" of required type %q was not provided.",
			name, schema.RenderTypeRef(varType)),
		Locations: locationsOf(pos),
	}
}
