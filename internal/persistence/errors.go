// Package persistence serializes the aggregate state to and from the local
// JSON document.
package persistence

import "fmt"

// LoadError represents a recoverable load failure: the document existed but
// could not be parsed. Callers receive empty stores alongside this error and
// are expected to continue.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("load error: %s (%s)", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents an I/O failure while writing the document. The caller
// owns the retry/alternate-path flow.
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("save error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("save error: %s (%s)", e.Message, e.Path)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
