// Package registry owns the team-member records keyed by member name.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ascent-tracker/internal/types"
)

// Registry exposes member mutation and query operations over the aggregate.
// The member name is the identity key: renaming is a key rewrite, and
// meetings and taxonomy are keyed independently and unaffected by member
// lifecycle operations.
type Registry struct {
	data *types.TeamData
}

// New returns a Registry over the given aggregate.
func New(data *types.TeamData) *Registry {
	return &Registry{data: data}
}

// AddMember creates a member record with the mandatory profile fields and
// every skill/progression collection initialized empty. Date format
// validation happens in the caller-facing entry path (the request DTOs), not
// here; the registry accepts dates as opaque strings.
func (r *Registry) AddMember(name, jobTitle, joinDate, birthday string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Message: "member name is empty"}
	}
	if _, ok := r.data.Members[name]; ok {
		return &DuplicateError{Message: fmt.Sprintf("team member %q already exists", name)}
	}
	r.data.Members[name] = types.NewMemberRecord(jobTitle, joinDate, birthday)
	return nil
}

// Get returns the record for a member.
func (r *Registry) Get(name string) (*types.MemberRecord, error) {
	member, ok := r.data.Members[name]
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	return member, nil
}

// ListMembers returns all member names in lexical order. The backing map has
// no stable iteration order, so sorted order is the deterministic display
// order that survives save/load round-trips.
func (r *Registry) ListMembers() []string {
	names := make([]string, 0, len(r.data.Members))
	for name := range r.data.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenameMember re-keys a record under a new name, preserving all fields.
// Neither record is altered when the new name is already taken.
func (r *Registry) RenameMember(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{Message: "new member name is empty"}
	}
	member, ok := r.data.Members[oldName]
	if !ok {
		return &NotFoundError{Message: fmt.Sprintf("team member %q", oldName)}
	}
	if oldName == newName {
		return nil
	}
	if _, taken := r.data.Members[newName]; taken {
		return &DuplicateError{Message: fmt.Sprintf("team member %q already exists", newName)}
	}
	delete(r.data.Members, oldName)
	r.data.Members[newName] = member
	return nil
}

// DeleteMember removes a member record. Deletion does not cascade to the
// taxonomy or the meeting log.
func (r *Registry) DeleteMember(name string) error {
	if _, ok := r.data.Members[name]; !ok {
		return &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	delete(r.data.Members, name)
	return nil
}

// UpdateIdentity updates the three core profile fields (the modify-member
// dialog path) without touching the rest of the record.
func (r *Registry) UpdateIdentity(name string, req types.UpdateIdentityRequest) error {
	member, ok := r.data.Members[name]
	if !ok {
		return &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	member.JobTitle = req.JobTitle
	member.JoinDate = req.JoinDate
	member.Birthday = req.Birthday
	return nil
}

// AssignSkill composes the canonical "category: subskill" string for a
// hierarchical family and appends it to the member's list for that family.
// Assignment strings reference the taxonomy at the time of assignment; they
// are not retracted if the taxonomy entry is later deleted.
func (r *Registry) AssignSkill(name string, family types.SkillFamily, category, subskill string) error {
	if !family.Hierarchical() {
		return &ValidationError{Message: fmt.Sprintf("family %s is not hierarchical; use AssignCertification", family)}
	}
	category = strings.TrimSpace(category)
	subskill = strings.TrimSpace(subskill)
	if category == "" {
		return &ValidationError{Message: fmt.Sprintf("category for %s is empty", family)}
	}
	if subskill == "" {
		return &ValidationError{Message: fmt.Sprintf("subskill for %s is empty", family)}
	}
	return r.appendSkill(name, family, fmt.Sprintf("%s: %s", category, subskill))
}

// AssignCertification appends a certification value to the member's
// certification list.
func (r *Registry) AssignCertification(name, certification string) error {
	certification = strings.TrimSpace(certification)
	if certification == "" {
		return &ValidationError{Message: "certification is empty"}
	}
	return r.appendSkill(name, types.Certifications, certification)
}

func (r *Registry) appendSkill(name string, family types.SkillFamily, skill string) error {
	member, ok := r.data.Members[name]
	if !ok {
		return &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	list := member.SkillList(family)
	for _, existing := range *list {
		if existing == skill {
			return &DuplicateError{Message: fmt.Sprintf("%s %q already assigned to %q", family, skill, name)}
		}
	}
	*list = append(*list, skill)
	return nil
}

// UnassignSkill removes an assigned skill string (or certification) from the
// member's list for the family, preserving the order of the remainder.
func (r *Registry) UnassignSkill(name string, family types.SkillFamily, skill string) error {
	member, ok := r.data.Members[name]
	if !ok {
		return &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	list := member.SkillList(family)
	for i, existing := range *list {
		if existing == skill {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Message: fmt.Sprintf("%s %q is not assigned to %q", family, skill, name)}
}

// UpdateProfile replaces the member's profile field group wholesale: job
// title, dates, hobbies, interests, family and other personal details.
func (r *Registry) UpdateProfile(name string, req types.UpdateProfileRequest) error {
	member, ok := r.data.Members[name]
	if !ok {
		return &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	member.JobTitle = req.JobTitle
	member.JoinDate = req.JoinDate
	member.Birthday = req.Birthday
	member.Hobbies = normalizeList(req.Hobbies)
	member.Interests = normalizeList(req.Interests)
	member.Family = req.Family
	member.OtherPersonalDetails = req.OtherPersonalDetails
	return nil
}

// UpdateProgression replaces the member's progression field group wholesale:
// the entire goals list, development plan, achievements and issues/concerns.
func (r *Registry) UpdateProgression(name string, req types.UpdateProgressionRequest) error {
	member, ok := r.data.Members[name]
	if !ok {
		return &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	member.Goals = normalizeList(req.Goals)
	member.DevelopmentPlan = req.DevelopmentPlan
	member.Achievements = normalizeList(req.Achievements)
	member.IssuesConcerns = req.IssuesConcerns
	return nil
}

// MoveGoalToAchievement removes the goal at the given position and appends it
// to the member's achievements, preserving the order of the remaining goals.
func (r *Registry) MoveGoalToAchievement(name string, goalIndex int) (string, error) {
	member, ok := r.data.Members[name]
	if !ok {
		return "", &NotFoundError{Message: fmt.Sprintf("team member %q", name)}
	}
	if goalIndex < 0 || goalIndex >= len(member.Goals) {
		return "", &IndexError{Index: goalIndex, Length: len(member.Goals)}
	}
	goal := member.Goals[goalIndex]
	member.Goals = append(member.Goals[:goalIndex], member.Goals[goalIndex+1:]...)
	member.Achievements = append(member.Achievements, goal)
	return goal, nil
}

// normalizeList trims entries and drops empties, keeping order. A nil input
// becomes an empty list so the record never carries nil collections.
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
