package dynamic

// NewType creates an empty named type of the given kind.
func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func NewObject(name string) *Type      { return NewType(name, TypeKindObject, "") }
func NewInterface(name string) *Type   { return NewType(name, TypeKindInterface, "") }
func NewUnion(name string) *Type       { return NewType(name, TypeKindUnion, "") }
func NewEnum(name string) *Type        { return NewType(name, TypeKindEnum, "") }
func NewInputObject(name string) *Type { return NewType(name, TypeKindInputObject, "") }
func NewScalar(name string) *Type      { return NewType(name, TypeKindScalar, "") }

func (t *Type) SetDescription(desc string) *Type {
	t.Description = desc
	return t
}

func (t *Type) AddField(fields ...*Field) *Type {
	t.Fields = append(t.Fields, fields...)
	return t
}

func (t *Type) AddInterface(names ...string) *Type {
	for _, name := range names {
		if !t.Implements(name) {
			t.Interfaces = append(t.Interfaces, name)
		}
	}
	return t
}

func (t *Type) AddPossibleType(names ...string) *Type {
	t.PossibleTypes = append(t.PossibleTypes, names...)
	return t
}

func (t *Type) AddEnumValue(values ...*EnumValue) *Type {
	t.EnumValues = append(t.EnumValues, values...)
	return t
}

func (t *Type) AddInputField(fields ...*InputValue) *Type {
	t.InputFields = append(t.InputFields, fields...)
	return t
}

func (t *Type) SetOneOf(oneOf bool) *Type {
	t.OneOf = oneOf
	return t
}

func (t *Type) SetSpecifiedByURL(url string) *Type {
	t.SpecifiedByURL = &url
	return t
}

// Clone returns a deep copy of t.
func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}
	c := *t
	c.Fields = make([]*Field, len(t.Fields))
	for i, f := range t.Fields {
		c.Fields[i] = f.clone()
	}
	c.Interfaces = append([]string(nil), t.Interfaces...)
	c.PossibleTypes = append([]string(nil), t.PossibleTypes...)
	c.EnumValues = make([]*EnumValue, len(t.EnumValues))
	for i, v := range t.EnumValues {
		ev := *v
		c.EnumValues[i] = &ev
	}
	c.InputFields = make([]*InputValue, len(t.InputFields))
	for i, v := range t.InputFields {
		c.InputFields[i] = v.clone()
	}
	if t.SpecifiedByURL != nil {
		url := *t.SpecifiedByURL
		c.SpecifiedByURL = &url
	}
	return &c
}

func NewField(name, description string, typ *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: typ}
}

func (f *Field) AddArgument(args ...*InputValue) *Field {
	f.Arguments = append(f.Arguments, args...)
	return f
}

func (f *Field) Deprecate(reason string) *Field {
	f.IsDeprecated = true
	f.DeprecationReason = reason
	return f
}

func (f *Field) clone() *Field {
	c := *f
	c.Type = f.Type.clone()
	c.Arguments = make([]*InputValue, len(f.Arguments))
	for i, a := range f.Arguments {
		c.Arguments[i] = a.clone()
	}
	return &c
}

func NewInputValue(name, description string, typ *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: typ}
}

func (v *InputValue) SetDefault(value any) *InputValue {
	v.DefaultValue = value
	return v
}

func (v *InputValue) Deprecate(reason string) *InputValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

func (v *InputValue) clone() *InputValue {
	c := *v
	c.Type = v.Type.clone()
	return &c
}

func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

func (v *EnumValue) Deprecate(reason string) *EnumValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

func NewDirective(name, description string) *Directive {
	return &Directive{Name: name, Description: description}
}

func (d *Directive) AddArgument(args ...*InputValue) *Directive {
	d.Arguments = append(d.Arguments, args...)
	return d
}

func (d *Directive) AddLocation(locations ...string) *Directive {
	d.Locations = append(d.Locations, locations...)
	return d
}

func (d *Directive) SetRepeatable(repeatable bool) *Directive {
	d.IsRepeatable = repeatable
	return d
}
