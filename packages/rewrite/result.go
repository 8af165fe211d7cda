package rewrite

import "time"

// ChangeKind identifies what kind of edit a Change describes.
type ChangeKind string

const (
	// ChangePrefixed means a request path got the prefix and its raw URL was rewritten.
	ChangePrefixed ChangeKind = "prefixed"
	// ChangeHeaderAdded means the Authorization header was appended to a request.
	ChangeHeaderAdded ChangeKind = "header_added"
	// ChangeVariableAdded means the token variable was appended to the collection.
	ChangeVariableAdded ChangeKind = "variable_added"
)

// Change is a single edit made to the collection.
type Change struct {
	Kind     ChangeKind
	Location string
	Name     string
	Method   string
	Before   string
	After    string
}

// Result summarizes a rewrite.
type Result struct {
	File     string
	Output   string
	Items    int
	Requests int
	Changes  []Change
	Duration time.Duration
}

// Count returns the number of changes of the given kind.
func (r *Result) Count(kind ChangeKind) int {
	n := 0
	for _, c := range r.Changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Changed reports whether the rewrite edited anything.
func (r *Result) Changed() bool {
	return len(r.Changes) > 0
}

func (r *Result) add(c Change) {
	r.Changes = append(r.Changes, c)
}
