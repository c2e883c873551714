// Package taxonomy owns the shared category/subskill hierarchy and the flat
// certification catalog.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/jonathan/ascent-tracker/internal/types"
)

// Store exposes the taxonomy mutation and query operations over the aggregate
// taxonomy. The store does not persist anything itself; callers save through
// the persistence gateway after a successful mutation.
type Store struct {
	data *types.Taxonomy
}

// NewStore returns a Store over the given taxonomy.
func NewStore(data *types.Taxonomy) *Store {
	return &Store{data: data}
}

// AddCategory creates an empty category in a hierarchical family.
func (s *Store) AddCategory(family types.SkillFamily, name string) error {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Message: fmt.Sprintf("category name for %s is empty", family)}
	}
	if hierarchy.Has(name) {
		return &DuplicateError{Message: fmt.Sprintf("category %q already exists in %s", name, family)}
	}
	hierarchy.Set(name, []string{})
	return nil
}

// RenameCategory re-keys a category, preserving its subskill list and its
// position in display order.
func (s *Store) RenameCategory(family types.SkillFamily, oldName, newName string) error {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{Message: fmt.Sprintf("new category name for %s is empty", family)}
	}
	if !hierarchy.Has(oldName) {
		return &NotFoundError{Message: fmt.Sprintf("category %q in %s", oldName, family)}
	}
	if hierarchy.Has(newName) {
		return &DuplicateError{Message: fmt.Sprintf("category %q already exists in %s", newName, family)}
	}
	hierarchy.Rename(oldName, newName)
	return nil
}

// DeleteCategory removes the category and all its subskills. Member records
// that already hold "category: subskill" strings referencing it are NOT
// touched: orphaned assignments are accepted behavior, there is no cascading
// retraction.
func (s *Store) DeleteCategory(family types.SkillFamily, name string) error {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	if !hierarchy.Has(name) {
		return &NotFoundError{Message: fmt.Sprintf("category %q in %s", name, family)}
	}
	hierarchy.Delete(name)
	return nil
}

// AddSubskill appends one subskill to a category. Adding a subskill that is
// already present is an error on this path; the bulk path skips silently.
func (s *Store) AddSubskill(family types.SkillFamily, category, subskill string) error {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	subskill = strings.TrimSpace(subskill)
	if subskill == "" {
		return &ValidationError{Message: fmt.Sprintf("subskill name for %q in %s is empty", category, family)}
	}
	if !hierarchy.Has(category) {
		return &NotFoundError{Message: fmt.Sprintf("category %q in %s", category, family)}
	}
	if hierarchy.Contains(category, subskill) {
		return &DuplicateError{Message: fmt.Sprintf("subskill %q already exists in %q", subskill, category)}
	}
	hierarchy.Append(category, subskill)
	return nil
}

// AddSubskillsBulk splits text on commas, trims whitespace, drops empty
// tokens, and appends each surviving token not already present in the
// category. Duplicates within the input or against existing data are skipped
// silently. Returns the count actually added.
func (s *Store) AddSubskillsBulk(family types.SkillFamily, category, text string) (int, error) {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return 0, &ValidationError{Message: err.Error()}
	}
	if !hierarchy.Has(category) {
		return 0, &NotFoundError{Message: fmt.Sprintf("category %q in %s", category, family)}
	}
	added := 0
	for _, token := range strings.Split(text, ",") {
		subskill := strings.TrimSpace(token)
		if subskill == "" {
			continue
		}
		if hierarchy.Contains(category, subskill) {
			continue
		}
		hierarchy.Append(category, subskill)
		added++
	}
	return added, nil
}

// RenameSubskill renames one subskill in place, preserving its position.
func (s *Store) RenameSubskill(family types.SkillFamily, category, oldName, newName string) error {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{Message: fmt.Sprintf("new subskill name for %q in %s is empty", category, family)}
	}
	if !hierarchy.Has(category) {
		return &NotFoundError{Message: fmt.Sprintf("category %q in %s", category, family)}
	}
	if hierarchy.Contains(category, newName) {
		return &DuplicateError{Message: fmt.Sprintf("subskill %q already exists in %q", newName, category)}
	}
	if !hierarchy.ReplaceSubskill(category, oldName, newName) {
		return &NotFoundError{Message: fmt.Sprintf("subskill %q in category %q", oldName, category)}
	}
	return nil
}

// DeleteSubskill removes one subskill from a category.
func (s *Store) DeleteSubskill(family types.SkillFamily, category, subskill string) error {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	if !hierarchy.Has(category) {
		return &NotFoundError{Message: fmt.Sprintf("category %q in %s", category, family)}
	}
	if !hierarchy.RemoveSubskill(category, subskill) {
		return &NotFoundError{Message: fmt.Sprintf("subskill %q in category %q", subskill, category)}
	}
	return nil
}

// ListCategories returns the category names of a hierarchical family in
// insertion order. Unknown families yield an empty slice.
func (s *Store) ListCategories(family types.SkillFamily) []string {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return []string{}
	}
	return hierarchy.Keys()
}

// ListSubskills returns the subskills of a category in insertion order, or an
// empty slice if the category is unknown.
func (s *Store) ListSubskills(family types.SkillFamily, category string) []string {
	hierarchy, err := s.data.Hierarchy(family)
	if err != nil {
		return []string{}
	}
	subskills, ok := hierarchy.Get(category)
	if !ok {
		return []string{}
	}
	return subskills
}

// Certifications returns a copy of the certification catalog in insertion order.
func (s *Store) Certifications() []string {
	out := make([]string, len(s.data.Certifications))
	copy(out, s.data.Certifications)
	return out
}

// AddCertification appends one certification to the catalog.
func (s *Store) AddCertification(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Message: "certification name is empty"}
	}
	if s.hasCertification(name) {
		return &DuplicateError{Message: fmt.Sprintf("certification %q already exists", name)}
	}
	s.data.Certifications = append(s.data.Certifications, name)
	return nil
}

// RemoveCertification removes one certification from the catalog.
func (s *Store) RemoveCertification(name string) error {
	for i, cert := range s.data.Certifications {
		if cert == name {
			s.data.Certifications = append(s.data.Certifications[:i], s.data.Certifications[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Message: fmt.Sprintf("certification %q", name)}
}

// RemoveCertifications removes a batch of certifications; names not present
// in the catalog are skipped. Returns the count actually removed.
func (s *Store) RemoveCertifications(names []string) int {
	removed := 0
	for _, name := range names {
		if err := s.RemoveCertification(name); err == nil {
			removed++
		}
	}
	return removed
}

// RenameCertification renames one catalog entry in place, preserving its position.
func (s *Store) RenameCertification(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &ValidationError{Message: "new certification name is empty"}
	}
	if s.hasCertification(newName) {
		return &DuplicateError{Message: fmt.Sprintf("certification %q already exists", newName)}
	}
	for i, cert := range s.data.Certifications {
		if cert == oldName {
			s.data.Certifications[i] = newName
			return nil
		}
	}
	return &NotFoundError{Message: fmt.Sprintf("certification %q", oldName)}
}

func (s *Store) hasCertification(name string) bool {
	for _, cert := range s.data.Certifications {
		if cert == name {
			return true
		}
	}
	return false
}
