// Package importer parses delimited skill tables into taxonomy mutations.
package importer

import "fmt"

// FormatError reports a malformed import file. The line number is 1-based and
// counts the header row.
type FormatError struct {
	Line    int
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("format error at line %d: %s: %v", e.Line, e.Message, e.Cause)
	}
	return fmt.Sprintf("format error at line %d: %s", e.Line, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}
