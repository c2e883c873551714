// Package types provides type definitions for structured data used throughout the ascent-tracker system.
package types

// TeamData is the aggregate root: taxonomy, member registry state and the
// meeting log. One TeamData is constructed at startup (by the persistence
// gateway or empty) and passed by pointer to every component — there is no
// package-global state. Single owner, single thread; no locking.
type TeamData struct {
	Members  map[string]*MemberRecord
	Taxonomy *Taxonomy
	Meetings []MeetingRecord
}

// NewTeamData returns an empty, fully initialized aggregate.
func NewTeamData() *TeamData {
	return &TeamData{
		Members:  make(map[string]*MemberRecord),
		Taxonomy: NewTaxonomy(),
		Meetings: []MeetingRecord{},
	}
}
