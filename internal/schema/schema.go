package schema

import (
	language "github.com/hanpama/gqlinput/internal/language"
)

// Schema is the registry of named GraphQL types. It is built once and
// read-only afterwards.
type Schema struct {
	QueryType        string
	MutationType     string
	SubscriptionType string
	Types            map[string]*Type // All named types keyed by name
	Directives       map[string]*Directive
	Description      string
}

// NewSchema returns an empty schema registry.
func NewSchema(description string) *Schema {
	return &Schema{
		Types:       make(map[string]*Type),
		Directives:  make(map[string]*Directive),
		Description: description,
	}
}

func (s *Schema) SetQueryType(name string) *Schema        { s.QueryType = name; return s }
func (s *Schema) SetMutationType(name string) *Schema     { s.MutationType = name; return s }
func (s *Schema) SetSubscriptionType(name string) *Schema { s.SubscriptionType = name; return s }

func (s *Schema) AddType(t *Type) *Schema           { s.Types[t.Name] = t; return s }
func (s *Schema) AddDirective(d *Directive) *Schema { s.Directives[d.Name] = d; return s }

// GetQueryType returns the root query type (may be nil if absent)
func (s *Schema) GetQueryType() *Type { return s.Types[s.QueryType] }

// GetMutationType returns the root mutation type (may be nil if absent)
func (s *Schema) GetMutationType() *Type { return s.Types[s.MutationType] }

// NamedTypeOf resolves a type reference to its innermost named type.
// Returns nil when the name is not registered.
func (s *Schema) NamedTypeOf(t *TypeRef) *Type {
	if t == nil {
		return nil
	}
	return s.Types[t.GetNamedType()]
}

// IsInputType reports whether the reference denotes a type usable for
// variables and arguments: Scalar, Enum, or InputObject, possibly wrapped
// in List and NonNull. Unknown names are not input types.
func (s *Schema) IsInputType(t *TypeRef) bool {
	named := s.NamedTypeOf(t)
	if named == nil {
		return false
	}
	switch named.Kind {
	case TypeKindScalar, TypeKindEnum, TypeKindInputObject:
		return true
	}
	return false
}

// ParseValueFunc converts an externally supplied value into the scalar's
// internal representation. A non-nil error marks the value invalid.
type ParseValueFunc func(value any) (any, error)

// ParseLiteralFunc converts a literal AST node into the scalar's internal
// representation. A non-nil error marks the literal invalid.
type ParseLiteralFunc func(node *language.Value) (any, error)

// SerializeFunc converts an internal value into its response form.
type SerializeFunc func(value any) (any, error)

// Type is a named GraphQL type (object, interface, union, scalar, enum, input)
type Type struct {
	Name          string
	Kind          TypeKind
	Description   string
	Fields        []*Field      // For OBJECT and INTERFACE
	Interfaces    []string      // For OBJECT and INTERFACE
	PossibleTypes []string      // For UNION
	EnumValues    []*EnumValue  // For ENUM
	InputFields   []*InputValue // For INPUT_OBJECT; declaration order

	// Scalar behavior hooks. Nil hooks fall back to pass-through coercion.
	Serialize    SerializeFunc    `json:"-"`
	ParseValue   ParseValueFunc   `json:"-"`
	ParseLiteral ParseLiteralFunc `json:"-"`
}

// NewType returns a named type of the given kind.
func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type             { t.Fields = append(t.Fields, f); return t }
func (t *Type) AddInterface(name string) *Type      { t.Interfaces = append(t.Interfaces, name); return t }
func (t *Type) AddPossibleType(name string) *Type   { t.PossibleTypes = append(t.PossibleTypes, name); return t }
func (t *Type) AddEnumValue(v *EnumValue) *Type     { t.EnumValues = append(t.EnumValues, v); return t }
func (t *Type) AddInputField(v *InputValue) *Type   { t.InputFields = append(t.InputFields, v); return t }

// SetScalarFuncs attaches scalar behavior hooks.
func (t *Type) SetScalarFuncs(serialize SerializeFunc, parseValue ParseValueFunc, parseLiteral ParseLiteralFunc) *Type {
	t.Serialize = serialize
	t.ParseValue = parseValue
	t.ParseLiteral = parseLiteral
	return t
}

// Field returns the object field with the given name, or nil.
func (t *Type) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// InputField returns the declared input field with the given name, or nil.
func (t *Type) InputField(name string) *InputValue {
	for _, v := range t.InputFields {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// HasEnumValue reports whether name is one of the enum's values.
func (t *Type) HasEnumValue(name string) bool {
	for _, v := range t.EnumValues {
		if v.Name == name {
			return true
		}
	}
	return false
}

// Field represents a field on an object or interface
type Field struct {
	Name        string
	Description string
	Type        *TypeRef
	Arguments   []*InputValue
}

// NewField returns a field definition with the given result type.
func NewField(name, description string, t *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: t}
}

func (f *Field) AddArgument(v *InputValue) *Field { f.Arguments = append(f.Arguments, v); return f }

// Argument returns the declared argument with the given name, or nil.
func (f *Field) Argument(name string) *InputValue {
	for _, v := range f.Arguments {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// TypeKind represents the kind of GraphQL type
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// TypeRef represents a reference to a type (can be wrapped)
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // For List and NonNull
	Named  string   // For named types
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

func (t *TypeRef) IsList() bool {
	return t != nil && t.Kind == TypeRefKindList
}

// Unwrap removes one layer of Non-Null or List wrapping.
func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

// GetNamedType returns the innermost named type name.
func (t *TypeRef) GetNamedType() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

// NonNullType wraps t with Non-Null. Double wrapping is a programming
// error and panics at construction time rather than surfacing during
// coercion.
func NonNullType(t *TypeRef) *TypeRef {
	if t.IsNonNull() {
		panic("schema: NonNull cannot wrap NonNull")
	}
	return &TypeRef{Kind: TypeRefKindNonNull, OfType: t}
}

func ListType(t *TypeRef) *TypeRef   { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NamedType(name string) *TypeRef { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }

// TypeRefFromAST converts a gqlparser type reference into a TypeRef.
func TypeRefFromAST(t *language.Type) *TypeRef {
	if t == nil {
		return nil
	}
	var ref *TypeRef
	if t.NamedType != "" {
		ref = NamedType(t.NamedType)
	} else {
		ref = ListType(TypeRefFromAST(t.Elem))
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

type EnumValue struct {
	Name        string
	Description string
}

// NewEnumValue returns an enum value definition.
func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

// InputValue is an input object field or a field argument. HasDefault
// distinguishes "no default" from an explicit null default.
type InputValue struct {
	Name         string
	Description  string
	Type         *TypeRef
	DefaultValue any
	HasDefault   bool
}

// NewInputValue returns an input value definition without a default.
func NewInputValue(name, description string, t *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: t}
}

// SetDefault attaches a default value. Defaults are pre-validated at
// schema build time and are applied without re-coercion.
func (v *InputValue) SetDefault(value any) *InputValue {
	v.DefaultValue = value
	v.HasDefault = true
	return v
}

type Directive struct {
	Name         string
	Description  string
	Locations    []string
	Arguments    []*InputValue
	IsRepeatable bool
}

// NewDirective returns a directive definition.
func NewDirective(name, description string) *Directive {
	return &Directive{Name: name, Description: description}
}

func (d *Directive) AddArgument(v *InputValue) *Directive { d.Arguments = append(d.Arguments, v); return d }
func (d *Directive) SetRepeatable(r bool) *Directive      { d.IsRepeatable = r; return d }
