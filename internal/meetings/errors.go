// Package meetings owns the append-only ordered meeting log.
package meetings

import "fmt"

// ValidationError reports a malformed meeting date.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// IndexError reports a meeting index outside the current bounds of the log.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("meeting index %d out of range [0, %d)", e.Index, e.Length)
}
