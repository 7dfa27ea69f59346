package dynamic

var stringType = &Type{
	Name:        String,
	Kind:        TypeKindScalar,
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
}

var intType = &Type{
	Name:        Int,
	Kind:        TypeKindScalar,
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
}

var floatType = &Type{
	Name:        Float,
	Kind:        TypeKindScalar,
	Description: "The `Float` scalar type represents signed double-precision fractional values.",
}

var booleanType = &Type{
	Name:        Boolean,
	Kind:        TypeKindScalar,
	Description: "The `Boolean` scalar type represents `true` or `false`.",
}

var idType = &Type{
	Name:        ID,
	Kind:        TypeKindScalar,
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
}

var builtinTypes = []*Type{stringType, intType, floatType, booleanType, idType}

// IsBuiltin reports whether name is one of the built-in scalars.
func IsBuiltin(name string) bool {
	for _, t := range builtinTypes {
		if t.Name == name {
			return true
		}
	}
	return false
}

func isBuiltinType(t *Type) bool {
	for _, b := range builtinTypes {
		if t == b {
			return true
		}
	}
	return false
}

// Standard directives are supplied by the validator prelude, so they are never rendered.
var standardDirectives = map[string]bool{
	"include":     true,
	"skip":        true,
	"deprecated":  true,
	"specifiedBy": true,
	"oneOf":       true,
	"defer":       true,
}
