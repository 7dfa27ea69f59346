package protoexport

import (
	"fmt"

	"github.com/hanpama/dyngraph/dynamic"
	"github.com/jhump/protoreflect/v2/protobuilder"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var builtinScalars = map[string]protoreflect.Kind{
	dynamic.String:  protoreflect.StringKind,
	dynamic.ID:      protoreflect.StringKind,
	dynamic.Int:     protoreflect.Int32Kind,
	dynamic.Float:   protoreflect.DoubleKind,
	dynamic.Boolean: protoreflect.BoolKind,
}

type resolvedType struct {
	isRepeated bool
	isOptional bool
	fieldType  *protobuilder.FieldType
}

// resolveTypeRef maps a GraphQL reference onto proto field shape. Nullable named
// types are optional, lists are repeated and nested lists collapse into one
// repeated field.
func (b *builder) resolveTypeRef(ref *dynamic.TypeRef) (resolvedType, error) {
	if ref == nil {
		return resolvedType{}, fmt.Errorf("missing type")
	}
	switch ref.Kind {
	case dynamic.TypeRefKindNamed:
		ft, err := b.mapNamedType(ref.Named)
		if err != nil {
			return resolvedType{}, err
		}
		return resolvedType{isOptional: true, fieldType: ft}, nil
	case dynamic.TypeRefKindList:
		elem, err := b.resolveTypeRef(ref.OfType)
		if err != nil {
			return resolvedType{}, err
		}
		return resolvedType{isRepeated: true, fieldType: elem.fieldType}, nil
	case dynamic.TypeRefKindNonNull:
		inner, err := b.resolveTypeRef(ref.OfType)
		if err != nil {
			return resolvedType{}, err
		}
		return resolvedType{isRepeated: inner.isRepeated, fieldType: inner.fieldType}, nil
	}
	return resolvedType{}, fmt.Errorf("unknown type reference kind %q", ref.Kind)
}

func (b *builder) mapNamedType(name string) (*protobuilder.FieldType, error) {
	if kind, ok := b.scalars[name]; ok {
		return protobuilder.FieldTypeScalar(kind), nil
	}
	if mb, ok := b.messages[name]; ok {
		return protobuilder.FieldTypeMessage(mb), nil
	}
	if eb, ok := b.enums[name]; ok {
		return protobuilder.FieldTypeEnum(eb), nil
	}
	return nil, fmt.Errorf("type %q has no proto counterpart", name)
}
