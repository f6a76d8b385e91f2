package values

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/hanpama/gqlinput/internal/language"
	schema "github.com/hanpama/gqlinput/internal/schema"
)

const testSDL = `
scalar ComplexScalar

enum Color {
  RED
  GREEN
  BLUE
}

input TestInputObject {
  a: String
  b: [String]
  c: String!
  d: ComplexScalar
}

input TestNestedInputObject {
  na: TestInputObject!
  nb: String!
}

type TestType {
  fieldWithObjectInput(input: TestInputObject): String
  fieldWithNullableStringInput(input: String): String
  fieldWithNonNullableStringInput(input: String!): String
  fieldWithDefaultArgumentValue(input: String = "Hello World"): String
  fieldWithNestedInputObject(input: TestNestedInputObject): String
  list(input: [String]): String
  nnList(input: [String]!): String
  listNN(input: [String!]): String
  nnListNN(input: [String!]!): String
}

schema {
  query: TestType
}
`

// newTestSchema builds the shared test schema and attaches behavior to
// ComplexScalar: only the external value "SerializedValue" (or the
// matching string literal) is accepted, deserializing to
// "DeserializedValue".
func newTestSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.BuildFromSDL(testSDL)
	require.NoError(t, err)

	s.Types["ComplexScalar"].SetScalarFuncs(
		func(value any) (any, error) {
			if value == "DeserializedValue" {
				return "SerializedValue", nil
			}
			return nil, fmt.Errorf("cannot serialize %v", value)
		},
		func(value any) (any, error) {
			if value == "SerializedValue" {
				return "DeserializedValue", nil
			}
			return nil, fmt.Errorf("cannot parse %v", value)
		},
		func(node *language.Value) (any, error) {
			if node.Kind == language.StringValue && node.Raw == "SerializedValue" {
				return "DeserializedValue", nil
			}
			return nil, fmt.Errorf("cannot parse literal %s", node.Raw)
		},
	)
	return s
}

// parseOperation parses a query document expected to hold exactly one
// operation. Test queries stay on a single line so error locations are
// always line 1.
func parseOperation(t *testing.T, src string) *language.OperationDefinition {
	t.Helper()
	doc, err := language.ParseQuery(src)
	require.NoError(t, err)
	require.Len(t, doc.Operations, 1)
	return doc.Operations[0]
}

// firstField returns the first selected field of the operation.
func firstField(t *testing.T, op *language.OperationDefinition) *language.Field {
	t.Helper()
	require.NotEmpty(t, op.SelectionSet)
	field, ok := op.SelectionSet[0].(*language.Field)
	require.True(t, ok)
	return field
}

// requireSingleError asserts exactly one error with the given message on
// line 1 of the document.
func requireSingleError(t *testing.T, errs []GraphQLError, message string) {
	t.Helper()
	require.Len(t, errs, 1)
	require.Equal(t, message, errs[0].Message)
	require.Len(t, errs[0].Locations, 1)
	require.Equal(t, 1, errs[0].Locations[0].Line)
}
