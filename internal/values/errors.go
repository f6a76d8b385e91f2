package values

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	language "github.com/hanpama/gqlinput/internal/language"
)

// CoercionError is a single leaf fault discovered during a coercion
// walk. Path is empty when the fault is at the root value.
type CoercionError struct {
	Path    Path
	Message string
}

// render composes the path prefixes outermost-first, terminating in the
// leaf message.
func (e CoercionError) render() string {
	var b strings.Builder
	for _, elem := range e.Path {
		switch v := elem.(type) {
		case string:
			fmt.Fprintf(&b, "In field %q: ", v)
		case int:
			fmt.Fprintf(&b, "In element #%d: ", v)
		}
	}
	b.WriteString(e.Message)
	return b.String()
}

// Location is a line/column position in the query document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLError is a user-facing error for one variable or argument,
// aggregating every leaf fault found in its value.
type GraphQLError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

func (e GraphQLError) Error() string { return e.Message }

// invalidValueError renders the aggregated multi-line message: the top
// line followed by one rendered line per leaf error, in discovery order.
func invalidValueError(top string, errs []CoercionError, pos *language.Position) GraphQLError {
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, top)
	for _, ce := range errs {
		lines = append(lines, ce.render())
	}
	return GraphQLError{Message: strings.Join(lines, "\n"), Locations: locationsOf(pos)}
}

func locationsOf(pos *language.Position) []Location {
	if pos == nil {
		return nil
	}
	return []Location{{Line: pos.Line, Column: pos.Column}}
}

// renderJSON renders the original raw value for the "got invalid value"
// line. encoding/json sorts map keys, keeping the message reproducible.
func renderJSON(value any) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}

// renderLiteral renders an AST value node in GraphQL literal syntax for
// error messages about literals.
func renderLiteral(node *language.Value) string {
	if node == nil {
		return "null"
	}
	switch node.Kind {
	case language.Variable:
		return "$" + node.Raw
	case language.StringValue, language.BlockValue:
		return strconv.Quote(node.Raw)
	case language.ListValue:
		parts := make([]string, len(node.Children))
		for i, c := range node.Children {
			parts[i] = renderLiteral(c.Value)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case language.ObjectValue:
		parts := make([]string, len(node.Children))
		for i, c := range node.Children {
			parts[i] = c.Name + ": " + renderLiteral(c.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return node.Raw
	}
}
