package dynamic

import (
	"errors"
	"sort"

	"github.com/hanpama/dyngraph/internal/language"
)

// ErrFinished is returned when Finish is called more than once on the same builder.
var ErrFinished = errors.New("dynamic: schema builder already finished")

// Schema represents the complete GraphQL schema
type Schema struct {
	QueryType        string
	MutationType     string
	SubscriptionType string
	TypeMap          map[string]*Type // All named types keyed by name, built-in scalars included
	Directives       map[string]*Directive
	Description      string

	data *Data
	sdl  string
	ast  *language.Schema
}

// Type returns the named type, or nil.
func (s *Schema) Type(name string) *Type { return s.TypeMap[name] }

// Types returns all non built-in types sorted by name.
func (s *Schema) Types() []*Type {
	names := make([]string, 0, len(s.TypeMap))
	for name, typ := range s.TypeMap {
		if isBuiltinType(typ) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	types := make([]*Type, len(names))
	for i, name := range names {
		types[i] = s.TypeMap[name]
	}
	return types
}

// GetQueryType returns the root query type (may be nil if absent)
func (s *Schema) GetQueryType() *Type { return s.TypeMap[s.QueryType] }

// GetMutationType returns the root mutation type (may be nil if absent)
func (s *Schema) GetMutationType() *Type { return s.TypeMap[s.MutationType] }

// GetSubscriptionType returns the root subscription type (may be nil if absent)
func (s *Schema) GetSubscriptionType() *Type { return s.TypeMap[s.SubscriptionType] }

// SDL returns the rendered schema document that was validated by Finish.
func (s *Schema) SDL() string { return s.sdl }

// Data returns the schema data handed over at build time. It is never nil.
func (s *Schema) Data() *Data { return s.data }

// AST returns the validated gqlparser schema.
func (s *Schema) AST() *language.Schema { return s.ast }

// SchemaBuilder accumulates types for one schema. It is not safe for concurrent use.
type SchemaBuilder struct {
	schema     *Schema
	order      []string
	duplicates []string
	finished   bool
}

// Build starts a schema with the given root operation type names. mutation and
// subscription may be empty.
func Build(query, mutation, subscription string) *SchemaBuilder {
	s := &Schema{
		QueryType:        query,
		MutationType:     mutation,
		SubscriptionType: subscription,
		TypeMap:          make(map[string]*Type),
		Directives:       make(map[string]*Directive),
		data:             NewData(),
	}
	for _, t := range builtinTypes {
		s.TypeMap[t.Name] = t
	}
	return &SchemaBuilder{schema: s}
}

// Register adds a type. Registering a second type under an existing name (built-in
// scalars included) is reported as a violation by Finish.
func (b *SchemaBuilder) Register(t *Type) *SchemaBuilder {
	if t == nil {
		return b
	}
	if _, ok := b.schema.TypeMap[t.Name]; ok {
		b.duplicates = append(b.duplicates, t.Name)
		return b
	}
	b.schema.TypeMap[t.Name] = t
	b.order = append(b.order, t.Name)
	return b
}

// RegisterDirective adds a custom directive definition.
func (b *SchemaBuilder) RegisterDirective(d *Directive) *SchemaBuilder {
	b.schema.Directives[d.Name] = d
	return b
}

// WithData replaces the schema data.
func (b *SchemaBuilder) WithData(d *Data) *SchemaBuilder {
	if d != nil {
		b.schema.data = d
	}
	return b
}

// Lookup returns a registered type by name, or nil.
func (b *SchemaBuilder) Lookup(name string) *Type { return b.schema.TypeMap[name] }

// Registered returns the names of registered types in registration order.
func (b *SchemaBuilder) Registered() []string { return append([]string(nil), b.order...) }

// Roots returns the root operation type names the builder was created with.
func (b *SchemaBuilder) Roots() (query, mutation, subscription string) {
	return b.schema.QueryType, b.schema.MutationType, b.schema.SubscriptionType
}

// Finish validates the assembled types and returns the frozen schema.
// Errors other than ErrFinished are ValidationError values.
func (b *SchemaBuilder) Finish() (*Schema, error) {
	if b.finished {
		return nil, ErrFinished
	}
	b.finished = true
	s := b.schema

	var violations ValidationError
	for _, name := range b.duplicates {
		violations = append(violations, violationDuplicateType(name))
	}
	violations = append(violations, checkRoot(s, "query", s.QueryType)...)
	violations = append(violations, checkRoot(s, "mutation", s.MutationType)...)
	violations = append(violations, checkRoot(s, "subscription", s.SubscriptionType)...)
	if len(violations) > 0 {
		return nil, violations
	}

	populatePossibleTypes(s)

	s.sdl = Render(s)
	doc, err := language.LoadSchema("dynamic", s.sdl)
	if err != nil {
		return nil, toValidationError(err)
	}
	s.ast = doc
	return s, nil
}

// MustFinish is the same as Finish but panics on error
func (b *SchemaBuilder) MustFinish() *Schema {
	s, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return s
}

func checkRoot(s *Schema, operation, name string) []*Violation {
	if name == "" {
		if operation == "query" {
			return []*Violation{violationMissingRoot(operation, name)}
		}
		return nil
	}
	t, ok := s.TypeMap[name]
	if !ok {
		return []*Violation{violationMissingRoot(operation, name)}
	}
	if !t.IsObject() {
		return []*Violation{violationRootNotObject(operation, name, t.Kind)}
	}
	return nil
}

// populatePossibleTypes records, for every interface, the object types implementing it.
func populatePossibleTypes(s *Schema) {
	for _, iface := range s.TypeMap {
		if iface.Kind != TypeKindInterface {
			continue
		}
		seen := make(map[string]bool, len(iface.PossibleTypes))
		for _, name := range iface.PossibleTypes {
			seen[name] = true
		}
		var found []string
		for name, t := range s.TypeMap {
			if t.IsObject() && t.Implements(iface.Name) && !seen[name] {
				found = append(found, name)
			}
		}
		sort.Strings(found)
		iface.PossibleTypes = append(iface.PossibleTypes, found...)
	}
}

func toValidationError(err error) ValidationError {
	errs := language.Errors(err)
	if len(errs) == 0 {
		return ValidationError{{Message: err.Error()}}
	}
	violations := make(ValidationError, 0, len(errs))
	for _, e := range errs {
		v := &Violation{Message: e.Message}
		if len(e.Locations) > 0 {
			v.Line = e.Locations[0].Line
			v.Column = e.Locations[0].Column
		}
		violations = append(violations, v)
	}
	return violations
}
