package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/hanpama/gqlinput/internal/language"
)

func TestTypeRefFromAST(t *testing.T) {
	cases := []struct {
		name string
		ast  *language.Type
		want string
	}{
		{
			name: "named",
			ast:  &language.Type{NamedType: "String"},
			want: "String",
		},
		{
			name: "non-null named",
			ast:  &language.Type{NamedType: "String", NonNull: true},
			want: "String!",
		},
		{
			name: "list",
			ast:  &language.Type{Elem: &language.Type{NamedType: "String"}},
			want: "[String]",
		},
		{
			name: "non-null list of non-nulls",
			ast:  &language.Type{Elem: &language.Type{NamedType: "String", NonNull: true}, NonNull: true},
			want: "[String!]!",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RenderTypeRef(TypeRefFromAST(tc.ast)))
		})
	}
}

func TestTypeRefWrapping(t *testing.T) {
	ref := NonNullType(ListType(NonNullType(NamedType("String"))))
	require.True(t, ref.IsNonNull())
	require.True(t, ref.Unwrap().IsList())
	require.Equal(t, "String", ref.GetNamedType())
	require.Equal(t, "[String!]!", RenderTypeRef(ref))
}

func TestNonNullCannotWrapNonNull(t *testing.T) {
	require.Panics(t, func() {
		NonNullType(NonNullType(NamedType("String")))
	})
}

func TestIsInputType(t *testing.T) {
	s := NewSchema("")
	s.AddType(NewType("CustomScalar", TypeKindScalar, ""))
	s.AddType(NewType("Color", TypeKindEnum, "").AddEnumValue(NewEnumValue("RED", "")))
	s.AddType(NewType("Filter", TypeKindInputObject, ""))
	s.AddType(NewType("Query", TypeKindObject, ""))

	require.True(t, s.IsInputType(NamedType("CustomScalar")))
	require.True(t, s.IsInputType(NamedType("Color")))
	require.True(t, s.IsInputType(NonNullType(ListType(NamedType("Filter")))))
	require.False(t, s.IsInputType(NamedType("Query")))
	require.False(t, s.IsInputType(NamedType("NoSuchType")))
}

func TestInputValueDefault(t *testing.T) {
	v := NewInputValue("limit", "", NamedType("Int"))
	require.False(t, v.HasDefault)

	// An explicit null default is distinct from having no default.
	v.SetDefault(nil)
	require.True(t, v.HasDefault)
	require.Nil(t, v.DefaultValue)
}

func TestTypeLookups(t *testing.T) {
	obj := NewType("Query", TypeKindObject, "").
		AddField(NewField("items", "", ListType(NamedType("String"))).
			AddArgument(NewInputValue("limit", "", NamedType("Int"))))

	field := obj.Field("items")
	require.NotNil(t, field)
	require.NotNil(t, field.Argument("limit"))
	require.Nil(t, field.Argument("offset"))
	require.Nil(t, obj.Field("missing"))

	enum := NewType("Color", TypeKindEnum, "").
		AddEnumValue(NewEnumValue("RED", "")).
		AddEnumValue(NewEnumValue("GREEN", ""))
	require.True(t, enum.HasEnumValue("GREEN"))
	require.False(t, enum.HasEnumValue("PURPLE"))
}
