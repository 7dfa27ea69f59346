package registry

import (
	"errors"
	"strings"
)

var (
	// ErrNoRoot is returned by CreateSchema when SetRoot was never called.
	ErrNoRoot = errors.New("registry: no root object defined")
	// ErrConsumed is returned by CreateSchema on a registry that already produced a schema.
	ErrConsumed = errors.New("registry: registry already consumed")
)

// Unresolved names one expansion whose target never appeared.
type Unresolved struct {
	Target    string
	Expansion string
}

func (u Unresolved) String() string { return u.Target + " when defining " + u.Expansion }

// UnresolvedError reports the expansions left in the queue after a pass that applied
// nothing. Pending keeps enqueue order.
type UnresolvedError struct {
	Pending []Unresolved
}

func (e *UnresolvedError) Error() string {
	return "registry: can't find object: " + e.list()
}

func (e *UnresolvedError) list() string {
	parts := make([]string, len(e.Pending))
	for i, p := range e.Pending {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// Targets returns the missing target names in enqueue order, without repeats.
func (e *UnresolvedError) Targets() []string {
	seen := make(map[string]bool, len(e.Pending))
	var out []string
	for _, p := range e.Pending {
		if !seen[p.Target] {
			seen[p.Target] = true
			out = append(out, p.Target)
		}
	}
	return out
}
