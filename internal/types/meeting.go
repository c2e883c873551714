// Package types provides type definitions for structured data used throughout the ascent-tracker system.
package types

// MeetingRecord is one logged meeting. Identity is positional: the record's
// index in the meeting log, not a generated id. The log stores records in
// insertion order; date-descending ordering is a view concern.
type MeetingRecord struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Highlights  string `json:"highlights"`
	Notes       string `json:"notes"`
	ActionItems string `json:"action_items"`
}
