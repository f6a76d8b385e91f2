package values

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCoerceArgumentValues_InlineComplexInput(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithObjectInput")
	op := parseOperation(t,
		`{ fieldWithObjectInput(input: {a: "foo", b: ["bar"], c: "baz"}) }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, nil)
	require.Empty(t, errs)

	want := map[string]any{
		"input": map[string]any{"a": "foo", "b": []any{"bar"}, "c": "baz"},
	}
	require.Empty(t, cmp.Diff(want, coerced))
}

func TestCoerceArgumentValues_ParseLiteralOnComplexScalar(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithObjectInput")
	op := parseOperation(t,
		`{ fieldWithObjectInput(input: {a: "foo", d: "SerializedValue", c: "baz"}) }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, nil)
	require.Empty(t, errs)

	want := map[string]any{
		"input": map[string]any{"a": "foo", "c": "baz", "d": "DeserializedValue"},
	}
	require.Empty(t, cmp.Diff(want, coerced))
}

func TestCoerceArgumentValues_InvalidLiteralWithoutDefault(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithObjectInput")
	op := parseOperation(t,
		`{ fieldWithObjectInput(input: ["foo", "bar", "baz"]) }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, nil)
	require.NotContains(t, coerced, "input")
	require.Len(t, errs, 1)
	require.Equal(t,
		"Argument \"input\" has invalid value [\"foo\", \"bar\", \"baz\"].\n"+
			"Expected \"TestInputObject\", found not an object.",
		errs[0].Message)
	require.Len(t, errs[0].Locations, 1)
	require.Equal(t, 1, errs[0].Locations[0].Line)
}

func TestCoerceArgumentValues_DefaultWhenNotProvided(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithDefaultArgumentValue")
	op := parseOperation(t, `{ fieldWithDefaultArgumentValue }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, nil)
	require.Empty(t, errs)
	require.Equal(t, map[string]any{"input": "Hello World"}, coerced)
}

func TestCoerceArgumentValues_DefaultWhenVariableUnprovided(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithDefaultArgumentValue")
	op := parseOperation(t,
		`query q($optional: String) { fieldWithDefaultArgumentValue(input: $optional) }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, map[string]any{})
	require.Empty(t, errs)
	require.Equal(t, map[string]any{"input": "Hello World"}, coerced)
}

func TestVariablesThenArguments_UnprovidedNullableVariableUsesDefault(t *testing.T) {
	s := newTestSchema(t)
	op := parseOperation(t,
		`query optionalVariable($optional: String) { fieldWithDefaultArgumentValue(input: $optional) }`)

	vars, errs := CoerceVariableValues(s, op, map[string]any{})
	require.Empty(t, errs)

	fieldDef := s.Types["TestType"].Field("fieldWithDefaultArgumentValue")
	coerced, argErrs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, vars)
	require.Empty(t, argErrs)
	require.Equal(t, map[string]any{"input": "Hello World"}, coerced)
}

func TestVariablesThenArguments_ProvidedVariableOverridesDefault(t *testing.T) {
	s := newTestSchema(t)
	op := parseOperation(t,
		`query optionalVariable($optional: String) { fieldWithDefaultArgumentValue(input: $optional) }`)

	vars, errs := CoerceVariableValues(s, op, map[string]any{"optional": "Other Thing"})
	require.Empty(t, errs)

	fieldDef := s.Types["TestType"].Field("fieldWithDefaultArgumentValue")
	coerced, argErrs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, vars)
	require.Empty(t, argErrs)
	require.Equal(t, map[string]any{"input": "Other Thing"}, coerced)
}

func TestCoerceArgumentValues_DefaultWhenLiteralCannotBeParsed(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithDefaultArgumentValue")
	op := parseOperation(t,
		`{ fieldWithDefaultArgumentValue(input: WRONG_TYPE) }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, nil)
	require.Empty(t, errs)
	require.Equal(t, map[string]any{"input": "Hello World"}, coerced)
}

func TestCoerceArgumentValues_RequiredNotProvided(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithNonNullableStringInput")
	op := parseOperation(t, `{ fieldWithNonNullableStringInput }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, nil)
	require.NotContains(t, coerced, "input")
	require.Len(t, errs, 1)
	require.Equal(t, "Argument \"input\" of required type \"String!\" was not provided.", errs[0].Message)
}

func TestCoerceArgumentValues_VariableSubstituted(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithNonNullableStringInput")
	op := parseOperation(t,
		`query q($value: String!) { fieldWithNonNullableStringInput(input: $value) }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments,
		map[string]any{"value": "a"})
	require.Empty(t, errs)
	require.Equal(t, map[string]any{"input": "a"}, coerced)
}

func TestCoerceArgumentValues_UndeclaredArgumentIgnored(t *testing.T) {
	s := newTestSchema(t)
	fieldDef := s.Types["TestType"].Field("fieldWithNullableStringInput")
	op := parseOperation(t,
		`{ fieldWithNullableStringInput(input: "a", bogus: "b") }`)

	coerced, errs := CoerceArgumentValues(s, fieldDef, firstField(t, op).Arguments, nil)
	require.Empty(t, errs)
	require.Equal(t, map[string]any{"input": "a"}, coerced)
}
