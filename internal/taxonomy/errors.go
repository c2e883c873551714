// Package taxonomy owns the shared category/subskill hierarchy and the flat
// certification catalog.
package taxonomy

import "fmt"

// DuplicateError reports an attempt to create a category, subskill or
// certification that already exists.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate: %s", e.Message)
}

// NotFoundError reports an operation on a category, subskill or
// certification that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

// ValidationError reports an empty or otherwise unusable input value.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}
