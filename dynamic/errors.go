package dynamic

import (
	"fmt"
	"strings"
)

type Violation struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// ValidationError is returned by Finish when the assembled schema is rejected.
type ValidationError []*Violation

func (e ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("schema violations found:\n")
	for _, v := range e {
		b.WriteString("- ")
		b.WriteString(v.Message)
		if v.Line > 0 {
			fmt.Fprintf(&b, " (sdl %d:%d)", v.Line, v.Column)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Contains reports whether any violation message contains substr.
func (e ValidationError) Contains(substr string) bool {
	for _, v := range e {
		if strings.Contains(v.Message, substr) {
			return true
		}
	}
	return false
}

func violationDuplicateType(name string) *Violation {
	return &Violation{Message: fmt.Sprintf("Duplicate type %q registered", name)}
}

func violationMissingRoot(operation, name string) *Violation {
	return &Violation{Message: fmt.Sprintf("Root %s type %q is not registered", operation, name)}
}

func violationRootNotObject(operation, name string, kind TypeKind) *Violation {
	return &Violation{Message: fmt.Sprintf("Root %s type %q must be an OBJECT, not %s", operation, name, kind)}
}
