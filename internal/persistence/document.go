// Package persistence serializes the aggregate state to and from the local
// JSON document.
package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/ascent-tracker/internal/types"
)

// document is the persisted JSON shape: one object with stable top-level keys.
type document struct {
	TeamMembers   map[string]*memberDoc `json:"team_members"`
	SkillsData    skillsData            `json:"skills_data"`
	SubskillsData subskillsData         `json:"subskills_data"`
	Meetings      []types.MeetingRecord `json:"meetings"`
}

// skillsData carries the flat certification catalog plus the legacy-era
// slots: in old documents Technical/Soft Skills lived here as nested category
// maps (or as bare lists in the very first layout), and Software Skills as a
// flat list. Current documents keep the keys with empty values; the canonical
// hierarchies live in subskills_data.
type skillsData struct {
	TechnicalSkills looseCategoryMap `json:"Technical Skills"`
	SoftSkills      looseCategoryMap `json:"Soft Skills"`
	SoftwareSkills  []string         `json:"Software Skills"`
	Certifications  []string         `json:"Certifications"`
}

// subskillsData is the canonical category/subskill taxonomy per hierarchical
// family.
type subskillsData struct {
	TechnicalSkills *types.CategoryMap `json:"Technical Skills"`
	SoftSkills      *types.CategoryMap `json:"Soft Skills"`
	SoftwareSkills  *types.CategoryMap `json:"Software Skills"`
}

// memberDoc decodes a stored member record, accepting the legacy nested-map
// form for the technical and soft skill fields. The shadowing fields win over
// the embedded record's during decoding.
type memberDoc struct {
	types.MemberRecord
	TechnicalSkills skillList `json:"technical_skills"`
	SoftSkills      skillList `json:"soft_skills"`
}

// record converts the decoded document member into the in-memory record,
// folding the migrated skill lists back in.
func (d *memberDoc) record() *types.MemberRecord {
	m := d.MemberRecord
	m.TechnicalSkills = []string(d.TechnicalSkills)
	m.SoftSkills = []string(d.SoftSkills)
	return &m
}

// skillList is an assigned-skill list that accepts both storage layouts: the
// current flat list of "category: subskill" strings, and the legacy nested
// map {category: [skill, ...]}. The legacy form is migrated in place: one
// string per skill, categories in stored order, skills in per-category order.
type skillList []string

func (s *skillList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*s = nil
		return nil
	}
	if trimmed[0] == '[' {
		var flat []string
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return err
		}
		*s = flat
		return nil
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("skill list is neither array nor object")
	}

	// Legacy nested-map layout: decode with a token stream so the stored
	// category order is preserved.
	var legacy types.CategoryMap
	if err := legacy.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	var flat []string
	for _, category := range legacy.Keys() {
		skills, _ := legacy.Get(category)
		for _, skill := range skills {
			flat = append(flat, fmt.Sprintf("%s: %s", category, skill))
		}
	}
	*s = flat
	return nil
}

// looseCategoryMap tolerates the first-generation layout where the legacy
// slots held bare lists instead of category maps: anything that is not a JSON
// object decodes to an empty map.
type looseCategoryMap struct {
	types.CategoryMap
}

func (m *looseCategoryMap) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return m.CategoryMap.UnmarshalJSON(trimmed)
	}
	empty := types.NewCategoryMap()
	m.CategoryMap = *empty
	return nil
}
