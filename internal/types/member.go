// Package types provides type definitions for structured data used throughout the ascent-tracker system.
package types

// MemberRecord holds one team member's profile, assigned skills and
// progression data. Records are keyed by member name in the registry; the
// name is the identity and is not repeated inside the record.
type MemberRecord struct {
	JobTitle string `json:"job_title"`
	JoinDate string `json:"join_date"`
	Birthday string `json:"birthday"`

	// Assigned skills are "category: subskill" strings drawn from the shared
	// taxonomy; certifications are free-text catalog entries.
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	SoftwareSkills  []string `json:"software_skills"`
	Certifications  []string `json:"certifications"`

	Goals           []string `json:"goals"`
	DevelopmentPlan string   `json:"development_plan"`

	Hobbies   []string `json:"hobbies"`
	Interests []string `json:"interests"`
	Family    string   `json:"family"`

	Achievements         []string `json:"achievements"`
	IssuesConcerns       string   `json:"issues_concerns"`
	OtherPersonalDetails string   `json:"other_personal_details"`
}

// NewMemberRecord returns a record with the mandatory profile fields set and
// every collection initialized empty.
func NewMemberRecord(jobTitle, joinDate, birthday string) *MemberRecord {
	return &MemberRecord{
		JobTitle:        jobTitle,
		JoinDate:        joinDate,
		Birthday:        birthday,
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		SoftwareSkills:  []string{},
		Certifications:  []string{},
		Goals:           []string{},
		Hobbies:         []string{},
		Interests:       []string{},
		Achievements:    []string{},
	}
}

// SkillList returns a pointer to the assigned-skill list for the given
// family, resolved by switch rather than by field-name synthesis.
func (m *MemberRecord) SkillList(family SkillFamily) *[]string {
	switch family {
	case TechnicalSkills:
		return &m.TechnicalSkills
	case SoftSkills:
		return &m.SoftSkills
	case SoftwareSkills:
		return &m.SoftwareSkills
	case Certifications:
		return &m.Certifications
	default:
		return nil
	}
}
