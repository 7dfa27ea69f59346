// Package protoexport renders the data shapes of a dynamic schema as a proto3 file.
// Objects and input objects become messages with one field per GraphQL field.
// Interfaces and unions become messages holding a "value" oneof over their possible
// types. Field arguments and root operation types are not exported.
package protoexport

import (
	"fmt"

	"github.com/hanpama/dyngraph/dynamic"
	"github.com/jhump/protoreflect/v2/protobuilder"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Options controls the generated file.
type Options struct {
	Path    string // file path inside the descriptor; defaults to "schema.proto"
	Package string // proto package; defaults to "dyngraph"
	// Scalars maps custom scalar names to proto scalar kinds. Unmapped custom
	// scalars become string.
	Scalars map[string]protoreflect.Kind
}

// Build converts s into a file descriptor.
func Build(s *dynamic.Schema, opts Options) (protoreflect.FileDescriptor, error) {
	if opts.Path == "" {
		opts.Path = "schema.proto"
	}
	if opts.Package == "" {
		opts.Package = "dyngraph"
	}

	fb := protobuilder.NewFile(opts.Path)
	fb.SetPackageName(protoreflect.FullName(opts.Package))
	fb.SetSyntax(protoreflect.Proto3)

	b := &builder{
		schema:   s,
		file:     fb,
		messages: make(map[string]*protobuilder.MessageBuilder),
		enums:    make(map[string]*protobuilder.EnumBuilder),
		scalars:  make(map[string]protoreflect.Kind),
	}
	for name, kind := range builtinScalars {
		b.scalars[name] = kind
	}

	types := s.Types()

	// Pass 1: declare messages and enums so fields can reference any of them.
	for _, t := range types {
		switch t.Kind {
		case dynamic.TypeKindObject:
			if b.isRoot(t.Name) {
				continue
			}
			b.addMessage(t)
		case dynamic.TypeKindInterface, dynamic.TypeKindUnion, dynamic.TypeKindInputObject:
			b.addMessage(t)
		case dynamic.TypeKindEnum:
			b.addEnum(t)
		case dynamic.TypeKindScalar:
			kind, ok := opts.Scalars[t.Name]
			if !ok {
				kind = protoreflect.StringKind
			}
			b.scalars[t.Name] = kind
		}
	}

	// Pass 2: fill in message fields.
	for _, t := range types {
		mb, ok := b.messages[t.Name]
		if !ok {
			continue
		}
		var err error
		switch t.Kind {
		case dynamic.TypeKindObject:
			err = b.addFields(mb, t.Name, outputFields(t))
		case dynamic.TypeKindInterface, dynamic.TypeKindUnion:
			b.addOneof(mb, t.PossibleTypes)
		case dynamic.TypeKindInputObject:
			err = b.addFields(mb, t.Name, inputFields(t))
		}
		if err != nil {
			return nil, err
		}
	}

	fd, err := fb.Build()
	if err != nil {
		return nil, fmt.Errorf("build proto file %s: %w", opts.Path, err)
	}
	return fd, nil
}

type builder struct {
	schema   *dynamic.Schema
	file     *protobuilder.FileBuilder
	messages map[string]*protobuilder.MessageBuilder
	enums    map[string]*protobuilder.EnumBuilder
	scalars  map[string]protoreflect.Kind
}

func (b *builder) isRoot(name string) bool {
	return name == b.schema.QueryType || name == b.schema.MutationType || name == b.schema.SubscriptionType
}

func (b *builder) addMessage(t *dynamic.Type) {
	mb := protobuilder.NewMessage(protoreflect.Name(t.Name))
	mb.SetComments(comment(t.Description))
	b.messages[t.Name] = mb
	b.file.AddMessage(mb)
}

func (b *builder) addEnum(t *dynamic.Type) {
	eb := protobuilder.NewEnum(protoreflect.Name(t.Name))
	eb.SetComments(comment(t.Description))
	b.enums[t.Name] = eb

	// <ENUM>_UNSPECIFIED = 0
	zero := protobuilder.NewEnumValue(nameProtoEnumValue(t.Name, "UNSPECIFIED"))
	zero.SetNumber(0)
	eb.AddValue(zero)

	evbs := make([]*protobuilder.EnumValueBuilder, 0, len(t.EnumValues))
	for _, v := range t.EnumValues {
		name := nameProtoEnumValue(t.Name, v.Name)
		if upper(v.Name) == "UNSPECIFIED" {
			// the zero value owns <ENUM>_UNSPECIFIED
			name = nameProtoEnumValue(t.Name, v.Name+"_VALUE")
		}
		evb := protobuilder.NewEnumValue(name)
		evb.SetComments(comment(v.Description))
		eb.AddValue(evb)
		evbs = append(evbs, evb)
	}
	allocateEnumValueNumbers(evbs)

	b.file.AddEnum(eb)
}

// field is the part of a GraphQL field or input value that ends up in a message.
type field struct {
	name        string
	description string
	typ         *dynamic.TypeRef
}

func outputFields(t *dynamic.Type) []field {
	out := make([]field, len(t.Fields))
	for i, f := range t.Fields {
		out[i] = field{name: f.Name, description: f.Description, typ: f.Type}
	}
	return out
}

func inputFields(t *dynamic.Type) []field {
	out := make([]field, len(t.InputFields))
	for i, f := range t.InputFields {
		out[i] = field{name: f.Name, description: f.Description, typ: f.Type}
	}
	return out
}

func (b *builder) addFields(mb *protobuilder.MessageBuilder, owner string, fields []field) error {
	fieldBuilders := make([]*protobuilder.FieldBuilder, 0, len(fields))
	for _, f := range fields {
		rt, err := b.resolveTypeRef(f.typ)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", owner, f.name, err)
		}
		fb := protobuilder.NewField(nameProtoField(f.name), rt.fieldType)
		fb.SetComments(comment(f.description))
		if rt.isOptional {
			fb.SetOptional()
			fb.SetProto3Optional(true)
		}
		if rt.isRepeated {
			fb.SetRepeated()
		}
		mb.AddField(fb)
		fieldBuilders = append(fieldBuilders, fb)
	}
	allocateFieldNumbers(fieldBuilders)
	return nil
}

// addOneof adds a "value" oneof with one choice per exported possible type.
func (b *builder) addOneof(mb *protobuilder.MessageBuilder, possible []string) {
	fieldBuilders := make([]*protobuilder.FieldBuilder, 0, len(possible))
	for _, name := range possible {
		target, ok := b.messages[name]
		if !ok {
			continue
		}
		fieldBuilders = append(fieldBuilders, protobuilder.NewField(nameProtoField(name), protobuilder.FieldTypeMessage(target)))
	}
	if len(fieldBuilders) == 0 {
		return
	}
	oob := protobuilder.NewOneof(protoreflect.Name("value"))
	mb.AddOneOf(oob)
	for _, fb := range fieldBuilders {
		oob.AddChoice(fb)
	}
	allocateFieldNumbers(fieldBuilders)
}
