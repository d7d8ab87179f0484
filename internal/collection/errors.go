package collection

import "errors"

var (
	// ErrNotFound reports a mutation aimed at a folder or item that is not
	// in the collection.
	ErrNotFound = errors.New("not found")

	// ErrConstraint reports a write that would break the nesting rules:
	// a cycle, a self-reference, or a second parent.
	ErrConstraint = errors.New("nesting constraint violated")
)
