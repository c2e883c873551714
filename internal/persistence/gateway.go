// Package persistence serializes the aggregate state to and from the local
// JSON document.
package persistence

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/jonathan/ascent-tracker/internal/types"
)

// Load hydrates the aggregate from the JSON document at path.
//
// A missing file is not an error: the stores initialize empty. A document
// that cannot be parsed also yields empty stores, but the condition is
// reported through a LoadError so the caller can surface it; the returned
// aggregate is always usable. Members stored with the legacy nested-map skill
// layout are migrated to flat "category: subskill" lists on the way in.
func Load(path string) (*types.TeamData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.NewTeamData(), nil
		}
		return types.NewTeamData(), &LoadError{Path: path, Message: "failed to read data file", Cause: err}
	}

	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return types.NewTeamData(), &LoadError{Path: path, Message: "failed to parse data file", Cause: err}
	}

	data := types.NewTeamData()
	for name, member := range doc.TeamMembers {
		record := member.record()
		normalizeRecord(record)
		data.Members[name] = record
	}
	if doc.SubskillsData.TechnicalSkills != nil {
		data.Taxonomy.TechnicalSkills = doc.SubskillsData.TechnicalSkills
	}
	if doc.SubskillsData.SoftSkills != nil {
		data.Taxonomy.SoftSkills = doc.SubskillsData.SoftSkills
	}
	if doc.SubskillsData.SoftwareSkills != nil {
		data.Taxonomy.SoftwareSkills = doc.SubskillsData.SoftwareSkills
	}
	// Legacy documents kept the Technical/Soft hierarchies in skills_data.
	// Adopt them only when the canonical slot is empty, so a current document
	// is never overridden by stale legacy data.
	if data.Taxonomy.TechnicalSkills.Len() == 0 && doc.SkillsData.TechnicalSkills.Len() > 0 {
		legacy := doc.SkillsData.TechnicalSkills.CategoryMap
		data.Taxonomy.TechnicalSkills = &legacy
	}
	if data.Taxonomy.SoftSkills.Len() == 0 && doc.SkillsData.SoftSkills.Len() > 0 {
		legacy := doc.SkillsData.SoftSkills.CategoryMap
		data.Taxonomy.SoftSkills = &legacy
	}
	if doc.SkillsData.Certifications != nil {
		data.Taxonomy.Certifications = doc.SkillsData.Certifications
	}
	if doc.Meetings != nil {
		data.Meetings = doc.Meetings
	}
	return data, nil
}

// Save serializes the full aggregate as one indented JSON document with
// stable key names. Writes are whole-document replace. I/O failures are
// reported as SaveError; the caller owns any retry or alternate-path flow.
func Save(path string, data *types.TeamData) error {
	doc := document{
		TeamMembers: make(map[string]*memberDoc, len(data.Members)),
		SkillsData: skillsData{
			SoftwareSkills: []string{},
			Certifications: data.Taxonomy.Certifications,
		},
		SubskillsData: subskillsData{
			TechnicalSkills: data.Taxonomy.TechnicalSkills,
			SoftSkills:      data.Taxonomy.SoftSkills,
			SoftwareSkills:  data.Taxonomy.SoftwareSkills,
		},
		Meetings: data.Meetings,
	}
	if doc.SkillsData.Certifications == nil {
		doc.SkillsData.Certifications = []string{}
	}
	if doc.Meetings == nil {
		doc.Meetings = []types.MeetingRecord{}
	}
	for name, member := range data.Members {
		record := *member
		normalizeRecord(&record)
		doc.TeamMembers[name] = &memberDoc{
			MemberRecord:    record,
			TechnicalSkills: skillList(record.TechnicalSkills),
			SoftSkills:      skillList(record.SoftSkills),
		}
	}

	content, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return &SaveError{Path: path, Message: "failed to serialize data", Cause: err}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &SaveError{Path: path, Message: "failed to write data file", Cause: err}
	}
	return nil
}

// normalizeRecord replaces nil collections with empty ones so records decoded
// from sparse or hand-edited documents never carry nil slices.
func normalizeRecord(m *types.MemberRecord) {
	for _, list := range []*[]string{
		&m.TechnicalSkills, &m.SoftSkills, &m.SoftwareSkills, &m.Certifications,
		&m.Goals, &m.Hobbies, &m.Interests, &m.Achievements,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}
