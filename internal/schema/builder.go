package schema

import (
	"fmt"

	language "github.com/hanpama/gqlinput/internal/language"
)

// BuildFromSDL parses an SDL document and returns the corresponding
// Schema. Built-in scalars and directives are always registered; custom
// scalars come back with nil hooks (pass-through coercion) until the
// caller attaches behavior via SetScalarFuncs.
func BuildFromSDL(sdl string) (*Schema, error) {
	doc, err := language.ParseSchema("schema.graphql", sdl)
	if err != nil {
		return nil, err
	}
	return BuildFromDocument(doc)
}

// BuildFromDocument builds a Schema from an already-parsed SDL document.
func BuildFromDocument(doc *language.SchemaDocument) (*Schema, error) {
	s := NewSchema("")
	s.AddType(stringType).
		AddType(intType).
		AddType(floatType).
		AddType(booleanType).
		AddType(idType)
	s.AddDirective(includeDirective).
		AddDirective(skipDirective)

	for _, def := range doc.Definitions {
		switch def.Kind {
		case language.Scalar:
			s.AddType(NewType(def.Name, TypeKindScalar, def.Description))
		case language.Enum:
			s.AddType(buildEnum(def))
		case language.InputObject:
			s.AddType(buildInput(def))
		case language.Object:
			s.AddType(buildObject(def, TypeKindObject))
		case language.Interface:
			s.AddType(buildObject(def, TypeKindInterface))
		case language.Union:
			s.AddType(buildUnion(def))
		default:
			return nil, fmt.Errorf("unsupported definition kind %q for %s", def.Kind, def.Name)
		}
	}
	for _, dir := range doc.Directives {
		s.AddDirective(buildDirective(dir))
	}

	for _, sd := range doc.Schema {
		for _, op := range sd.OperationTypes {
			switch op.Operation {
			case language.Query:
				s.SetQueryType(op.Type)
			case language.Mutation:
				s.SetMutationType(op.Type)
			case language.Subscription:
				s.SetSubscriptionType(op.Type)
			}
		}
	}
	if s.QueryType == "" {
		if _, ok := s.Types["Query"]; ok {
			s.SetQueryType("Query")
		}
	}
	return s, nil
}

func buildObject(def *language.Definition, kind TypeKind) *Type {
	t := NewType(def.Name, kind, def.Description)
	for _, iface := range def.Interfaces {
		t.AddInterface(iface)
	}
	for _, fd := range def.Fields {
		t.AddField(buildField(fd))
	}
	return t
}

func buildField(def *language.FieldDefinition) *Field {
	f := NewField(def.Name, def.Description, TypeRefFromAST(def.Type))
	for _, arg := range def.Arguments {
		f.AddArgument(buildArgument(arg))
	}
	return f
}

func buildArgument(def *language.ArgumentDefinition) *InputValue {
	in := NewInputValue(def.Name, def.Description, TypeRefFromAST(def.Type))
	if def.DefaultValue != nil {
		in.SetDefault(language.GoValue(def.DefaultValue))
	}
	return in
}

func buildEnum(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindEnum, def.Description)
	for _, v := range def.EnumValues {
		t.AddEnumValue(NewEnumValue(v.Name, v.Description))
	}
	return t
}

// buildInput preserves SDL declaration order for input fields; coercion
// visits them in this order.
func buildInput(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindInputObject, def.Description)
	for _, fd := range def.Fields {
		in := NewInputValue(fd.Name, fd.Description, TypeRefFromAST(fd.Type))
		if fd.DefaultValue != nil {
			in.SetDefault(language.GoValue(fd.DefaultValue))
		}
		t.AddInputField(in)
	}
	return t
}

func buildUnion(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindUnion, def.Description)
	for _, name := range def.Types {
		t.AddPossibleType(name)
	}
	return t
}

func buildDirective(def *language.DirectiveDefinition) *Directive {
	d := NewDirective(def.Name, def.Description).SetRepeatable(def.IsRepeatable)
	for _, loc := range def.Locations {
		d.Locations = append(d.Locations, string(loc))
	}
	for _, arg := range def.Arguments {
		d.AddArgument(buildArgument(arg))
	}
	return d
}
