// Package meetings owns the append-only ordered meeting log.
package meetings

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/ascent-tracker/internal/dates"
	"github.com/jonathan/ascent-tracker/internal/types"
)

// Log exposes meeting operations over the aggregate. Meetings are stored in
// insertion order and identified positionally; the log is independent of
// members and taxonomy.
type Log struct {
	data *types.TeamData
}

// NewLog returns a Log over the given aggregate.
func NewLog(data *types.TeamData) *Log {
	return &Log{data: data}
}

// Len returns the number of logged meetings.
func (l *Log) Len() int {
	return len(l.data.Meetings)
}

// Get returns the meeting at the given storage position.
func (l *Log) Get(index int) (types.MeetingRecord, error) {
	if index < 0 || index >= len(l.data.Meetings) {
		return types.MeetingRecord{}, &IndexError{Index: index, Length: len(l.data.Meetings)}
	}
	return l.data.Meetings[index], nil
}

// Add appends a meeting to the log.
func (l *Log) Add(req types.AddMeetingRequest) error {
	if !dates.Valid(req.Date) {
		return &ValidationError{Message: fmt.Sprintf("meeting date %q is not in DD/MM/YYYY format", req.Date)}
	}
	l.data.Meetings = append(l.data.Meetings, types.MeetingRecord{
		Date:        req.Date,
		Title:       req.Title,
		Highlights:  req.Highlights,
		Notes:       req.Notes,
		ActionItems: req.ActionItems,
	})
	return nil
}

// Update replaces the meeting at the given storage position.
func (l *Log) Update(index int, req types.AddMeetingRequest) error {
	if index < 0 || index >= len(l.data.Meetings) {
		return &IndexError{Index: index, Length: len(l.data.Meetings)}
	}
	if !dates.Valid(req.Date) {
		return &ValidationError{Message: fmt.Sprintf("meeting date %q is not in DD/MM/YYYY format", req.Date)}
	}
	l.data.Meetings[index] = types.MeetingRecord{
		Date:        req.Date,
		Title:       req.Title,
		Highlights:  req.Highlights,
		Notes:       req.Notes,
		ActionItems: req.ActionItems,
	}
	return nil
}

// Delete removes the meeting at the given storage position. Later meetings
// shift down one position.
func (l *Log) Delete(index int) error {
	if index < 0 || index >= len(l.data.Meetings) {
		return &IndexError{Index: index, Length: len(l.data.Meetings)}
	}
	l.data.Meetings = append(l.data.Meetings[:index], l.data.Meetings[index+1:]...)
	return nil
}

// SortedByDateDesc returns a copy of the log ordered by parsed date
// descending, ties broken by insertion order. The underlying storage order is
// not touched. Records whose date no longer parses (hand-edited files) sort
// after all parseable dates, keeping their relative order.
func (l *Log) SortedByDateDesc() []types.MeetingRecord {
	out := make([]types.MeetingRecord, len(l.data.Meetings))
	copy(out, l.data.Meetings)
	sort.SliceStable(out, func(i, j int) bool {
		di, erri := time.Parse(types.DateLayout, out[i].Date)
		dj, errj := time.Parse(types.DateLayout, out[j].Date)
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return di.After(dj)
	})
	return out
}
