package dynamic

// Built-in scalar names.
const (
	String  = "String"
	Int     = "Int"
	Float   = "Float"
	Boolean = "Boolean"
	ID      = "ID"
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

func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }

// Named returns the nullable reference `name`.
func Named(name string) *TypeRef { return NamedType(name) }

// NamedNN returns `name!`.
func NamedNN(name string) *TypeRef { return NonNullType(NamedType(name)) }

// NamedList returns `[name]`.
func NamedList(name string) *TypeRef { return ListType(NamedType(name)) }

// NamedListNN returns `[name]!`.
func NamedListNN(name string) *TypeRef { return NonNullType(ListType(NamedType(name))) }

// NamedNNList returns `[name!]`.
func NamedNNList(name string) *TypeRef { return ListType(NamedNN(name)) }

// NamedNNListNN returns `[name!]!`.
func NamedNNListNN(name string) *TypeRef { return NonNullType(ListType(NamedNN(name))) }

func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

func (t *TypeRef) IsList() bool {
	if t == nil {
		return false
	}
	if t.Kind == TypeRefKindList {
		return true
	}
	if t.Kind == TypeRefKindNonNull && t.OfType != nil {
		return t.OfType.Kind == TypeRefKindList
	}
	return false
}

func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

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

// Optional drops the outermost non-null wrapper: `T!` becomes `T`, `[T!]!` becomes
// `[T!]`. Nullable references are returned unchanged.
func (t *TypeRef) Optional() *TypeRef {
	if t.IsNonNull() {
		return t.OfType
	}
	return t
}

// List wraps a non-list reference in a non-null list: `T` becomes `[T]!` and `T!`
// becomes `[T!]!`. References that already are lists are returned unchanged.
func (t *TypeRef) List() *TypeRef {
	if t.IsList() {
		return t
	}
	return NonNullType(ListType(t))
}

// String renders the reference the way it appears in SDL.
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeRefKindNamed:
		return t.Named
	case TypeRefKindList:
		return "[" + t.OfType.String() + "]"
	case TypeRefKindNonNull:
		return t.OfType.String() + "!"
	default:
		return ""
	}
}

func (t *TypeRef) clone() *TypeRef {
	if t == nil {
		return nil
	}
	return &TypeRef{Kind: t.Kind, OfType: t.OfType.clone(), Named: t.Named}
}
