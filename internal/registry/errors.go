// Package registry owns the team-member records keyed by member name.
package registry

import "fmt"

// DuplicateError reports an attempt to create or rename a member to a name
// that is already taken, or to assign an already-assigned skill.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate: %s", e.Message)
}

// NotFoundError reports an operation on a member or assignment that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

// ValidationError reports an empty required field or malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// IndexError reports a positional index outside the current bounds of a list.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}
