package dynamic

import "reflect"

// Data holds schema-wide values keyed by their Go type. Registration units use it to
// leave behaviour for other units (or for resolvers) to pick up once the schema is
// built.
type Data struct {
	values map[reflect.Type]any // Go type T -> *T
}

func NewData() *Data { return &Data{values: make(map[reflect.Type]any)} }

func typeKey[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// Insert stores v, replacing any previous value of the same type. It does nothing
// on a nil Data.
func Insert[T any](d *Data, v T) {
	if d == nil {
		return
	}
	d.values[typeKey[T]()] = &v
}

// GetData returns the stored value of type T.
func GetData[T any](d *Data) (T, bool) {
	var zero T
	if d == nil {
		return zero, false
	}
	p, ok := d.values[typeKey[T]()]
	if !ok {
		return zero, false
	}
	return *p.(*T), true
}

// GetOrInit returns a pointer to the stored T, storing a zero T first if absent.
// On a nil Data it returns a fresh zero T that is not stored anywhere.
func GetOrInit[T any](d *Data) *T {
	if d == nil {
		return new(T)
	}
	key := typeKey[T]()
	if p, ok := d.values[key]; ok {
		return p.(*T)
	}
	p := new(T)
	d.values[key] = p
	return p
}

// Len returns the number of stored values.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.values)
}
