package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/dyngraph/dynamic"
)

type countingUnit struct {
	name  string
	calls *int
}

func (u *countingUnit) Register(r *Registry) *Registry {
	*u.calls++
	return r.RegisterType(dynamic.NewEnum(u.name).AddEnumValue(dynamic.NewEnumValue("ON", "")))
}

func TestRegisterSkipsRepeatedUnits(t *testing.T) {
	var calls int
	shared := &countingUnit{name: "Toggle", calls: &calls}
	query := RegistrantFunc(func(r *Registry) *Registry {
		return r.SetRoot("Query").RegisterType(object("Query", "id"))
	})

	r := New().Register(App(query, shared), App(shared), shared)
	assert.Equal(t, 1, calls)

	b, err := r.CreateSchema(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"Query", "Toggle"}, b.Registered())
}

func TestRegistrantFuncRunsEachTime(t *testing.T) {
	var calls int
	f := RegistrantFunc(func(r *Registry) *Registry { calls++; return r })
	New().Register(f, f)
	assert.Equal(t, 2, calls)
}

func TestCyclicAppsTerminate(t *testing.T) {
	a := &app{}
	b := &app{units: []Registrant{a}}
	a.units = []Registrant{b, RegistrantFunc(func(r *Registry) *Registry {
		return r.SetRoot("Query").RegisterType(object("Query", "id"))
	})}

	r := New().Register(a)
	_, err := r.CreateSchema(t.Context())
	assert.NoError(t, err)
}

func TestBuild(t *testing.T) {
	s, err := Build(t.Context(), RegistrantFunc(func(r *Registry) *Registry {
		r.SetRoot("Query")
		r.ExpandObject("Query", "greeting", dynamic.NewField("hello", "", dynamic.NamedNN(dynamic.String)))
		return r.RegisterType(object("Query"))
	}))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(s.SDL(), "schema {\n  query: Query\n}\n"), s.SDL())
	assert.NotNil(t, s.Type("Query").Field("hello"))
}

func TestBuildReportsEngineErrors(t *testing.T) {
	_, err := Build(t.Context(), RegistrantFunc(func(r *Registry) *Registry {
		return r.SetRoot("Query").RegisterType(
			dynamic.NewObject("Query").AddField(dynamic.NewField("ghost", "", dynamic.Named("Ghost"))))
	}))
	var verr dynamic.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Contains("Ghost"))
}
