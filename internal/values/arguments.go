package values

import (
	"fmt"

	language "github.com/hanpama/gqlinput/internal/language"
	schema "github.com/hanpama/gqlinput/internal/schema"
)

// CoerceArgumentValues coerces a field invocation's argument literals
// against the field's argument definitions, consulting variableValues for
// variable references. Arguments not declared on the field are ignored;
// validation reports those separately.
func CoerceArgumentValues(
	s *schema.Schema,
	fieldDef *schema.Field,
	args language.ArgumentList,
	variableValues map[string]any,
) (map[string]any, []GraphQLError) {
	coerced := make(map[string]any, len(fieldDef.Arguments))
	var gqlErrs []GraphQLError

	for _, argDef := range fieldDef.Arguments {
		node := findArgument(args, argDef.Name)

		// A reference to an unprovided variable reads as an omitted
		// argument, so the argument's own default can apply.
		provided := node != nil
		if provided && node.Value != nil && node.Value.Kind == language.Variable {
			if _, ok := variableValues[node.Value.Raw]; !ok {
				provided = false
			}
		}

		if !provided {
			if argDef.HasDefault {
				coerced[argDef.Name] = argDef.DefaultValue
				continue
			}
			if argDef.Type.IsNonNull() {
				var pos *language.Position
				if node != nil {
					pos = node.Position
				}
				gqlErrs = append(gqlErrs, GraphQLError{
					Message: fmt.Sprintf("Argument %q of required type %q was not provided.",
						argDef.Name, schema.RenderTypeRef(argDef.Type)),
					Locations: locationsOf(pos),
				})
			}
			continue
		}

		av, errs := valueFromAST(s, node.Value, argDef.Type, variableValues, nil)
		if len(errs) > 0 {
			// An unparsable literal falls back to the default when one
			// exists; the argument is otherwise reported.
			if argDef.HasDefault {
				coerced[argDef.Name] = argDef.DefaultValue
				continue
			}
			top := fmt.Sprintf("Argument %q has invalid value %s.", argDef.Name, renderLiteral(node.Value))
			gqlErrs = append(gqlErrs, invalidValueError(top, errs, node.Position))
			continue
		}
		coerced[argDef.Name] = av
	}

	return coerced, gqlErrs
}

func findArgument(args language.ArgumentList, name string) *language.Argument {
	for _, arg := range args {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}
