package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const builderSDL = `
scalar DateTime

enum Color {
  RED
  GREEN
}

input Filter {
  name: String = "all"
  color: Color
  limit: Int!
}

type Query {
  items(filter: Filter, first: Int = 10): [String!]!
}

type Mutation {
  touch: Boolean
}

schema {
  query: Query
  mutation: Mutation
}
`

func TestBuildFromSDL(t *testing.T) {
	s, err := BuildFromSDL(builderSDL)
	require.NoError(t, err)

	require.Equal(t, "Query", s.QueryType)
	require.Equal(t, "Mutation", s.MutationType)
	require.NotNil(t, s.GetQueryType())
	require.NotNil(t, s.GetMutationType())

	// Builtins are always registered.
	for _, name := range []string{"String", "Int", "Float", "Boolean", "ID"} {
		require.Contains(t, s.Types, name)
		require.Equal(t, TypeKindScalar, s.Types[name].Kind)
	}
	require.Contains(t, s.Directives, "include")
	require.Contains(t, s.Directives, "skip")

	// Custom scalars come back hookless until behavior is attached.
	dt := s.Types["DateTime"]
	require.NotNil(t, dt)
	require.Nil(t, dt.ParseValue)
	require.Nil(t, dt.ParseLiteral)
}

func TestBuildFromSDL_InputFieldOrderAndDefaults(t *testing.T) {
	s, err := BuildFromSDL(builderSDL)
	require.NoError(t, err)

	filter := s.Types["Filter"]
	require.NotNil(t, filter)
	require.Equal(t, TypeKindInputObject, filter.Kind)

	names := make([]string, len(filter.InputFields))
	for i, f := range filter.InputFields {
		names[i] = f.Name
	}
	require.Equal(t, []string{"name", "color", "limit"}, names)

	name := filter.InputField("name")
	require.True(t, name.HasDefault)
	require.Equal(t, "all", name.DefaultValue)

	color := filter.InputField("color")
	require.False(t, color.HasDefault)

	limit := filter.InputField("limit")
	require.True(t, limit.Type.IsNonNull())
}

func TestBuildFromSDL_FieldArguments(t *testing.T) {
	s, err := BuildFromSDL(builderSDL)
	require.NoError(t, err)

	items := s.Types["Query"].Field("items")
	require.NotNil(t, items)
	require.Equal(t, "[String!]!", RenderTypeRef(items.Type))

	first := items.Argument("first")
	require.NotNil(t, first)
	require.True(t, first.HasDefault)
	require.Equal(t, 10, first.DefaultValue)
}

func TestBuildFromSDL_Enum(t *testing.T) {
	s, err := BuildFromSDL(builderSDL)
	require.NoError(t, err)

	color := s.Types["Color"]
	require.Equal(t, TypeKindEnum, color.Kind)
	require.True(t, color.HasEnumValue("RED"))
	require.True(t, color.HasEnumValue("GREEN"))
	require.False(t, color.HasEnumValue("BLUE"))
}

func TestBuildFromSDL_ImplicitQueryType(t *testing.T) {
	s, err := BuildFromSDL(`type Query { ping: String }`)
	require.NoError(t, err)
	require.Equal(t, "Query", s.QueryType)
}

func TestBuildFromSDL_Directive(t *testing.T) {
	s, err := BuildFromSDL(`
directive @auth(role: String = "user") repeatable on FIELD_DEFINITION | OBJECT

type Query { ping: String }
`)
	require.NoError(t, err)

	auth := s.Directives["auth"]
	require.NotNil(t, auth)
	require.True(t, auth.IsRepeatable)
	require.Equal(t, []string{"FIELD_DEFINITION", "OBJECT"}, auth.Locations)

	role := auth.Arguments[0]
	require.Equal(t, "role", role.Name)
	require.True(t, role.HasDefault)
	require.Equal(t, "user", role.DefaultValue)
}

func TestBuildFromSDL_ParseError(t *testing.T) {
	_, err := BuildFromSDL(`type Query {`)
	require.Error(t, err)
}
