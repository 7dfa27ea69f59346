package events

import "time"

// SchemaBuildStart is emitted when a registry starts resolving its expansions.
// The context carries the build id.
type SchemaBuildStart struct {
	Root         string
	Mutation     string
	Subscription string
	Objects      int // object definitions registered directly
	Types        int // other-kind definitions
	Pending      int // queued expansions
}

// ExpansionApplied is emitted each time a queued expansion is applied to its target.
type ExpansionApplied struct {
	Target    string
	Expansion string
	Pass      int
}

// SchemaBuildFinish is emitted when CreateSchema returns, successfully or not.
type SchemaBuildFinish struct {
	Passes     int
	Objects    int
	Types      int
	Unresolved []string
	Err        error
	Duration   time.Duration
}
