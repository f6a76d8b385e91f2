// Package values implements input-value coercion for GraphQL operation
// variables and field arguments.
//
// # Overview
//
// Two entry points cover the two value sources with the same semantics:
//
//   - CoerceVariableValues walks raw, externally decoded values (the
//     result of decoding a JSON request body) against the operation's
//     variable definitions.
//   - CoerceArgumentValues walks literal AST nodes against a field's
//     argument definitions, substituting already-coerced variable values
//     for variable references without re-coercion.
//
// Both are pure, synchronous tree walks. Sibling positions (input object
// fields, list elements) are always visited in a fixed order (declared
// field order, then index order) and every sibling is attempted even
// after an earlier one failed, so a single nested value can report all of
// its independent faults at once. Within one position's subtree the walk
// stops at the first failing leaf.
//
// # Errors
//
// Each failing leaf produces a CoercionError carrying the field/index
// path from the coercion root. Per variable or argument, the accumulated
// leaf errors are rendered into one multi-line GraphQLError:
//
//	Variable "$input" got invalid value {"na":{"a":"foo"}}.
//	In field "na": In field "c": Expected "String!", found null.
//	In field "nb": Expected "String!", found null.
//
// Path segments compose outermost-first: In field "f" for object fields,
// In element #i for list indices. The error also exposes the source
// location of the variable definition (or offending argument node).
//
// Scalar ParseValue/ParseLiteral hooks are invoked behind a recover so a
// panicking hook degrades into a coercion error instead of unwinding
// through the walk. Nothing in this package performs I/O or blocks.
package values
