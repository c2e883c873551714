// Package types provides type definitions for structured data used throughout the ascent-tracker system.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CategoryMap is an insertion-ordered mapping from category name to its
// subskill names. Plain Go maps do not preserve key order, and category order
// is display order, so the map keeps an explicit key slice alongside the
// lookup table and marshals in that order.
type CategoryMap struct {
	keys   []string
	values map[string][]string
}

// NewCategoryMap returns an empty CategoryMap.
func NewCategoryMap() *CategoryMap {
	return &CategoryMap{values: make(map[string][]string)}
}

// Len returns the number of categories.
func (m *CategoryMap) Len() int {
	return len(m.keys)
}

// Keys returns the category names in insertion order. The returned slice is a copy.
func (m *CategoryMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Has reports whether the category exists.
func (m *CategoryMap) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Get returns a copy of the subskill list for the category. The second return
// is false if the category does not exist.
func (m *CategoryMap) Get(name string) ([]string, bool) {
	subskills, ok := m.values[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(subskills))
	copy(out, subskills)
	return out, true
}

// Set stores the subskill list for the category, appending the key to the
// display order if the category is new.
func (m *CategoryMap) Set(name string, subskills []string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = subskills
}

// Append adds one subskill to the end of the category's list. The category is
// created if absent.
func (m *CategoryMap) Append(name, subskill string) {
	if !m.Has(name) {
		m.Set(name, nil)
	}
	m.values[name] = append(m.values[name], subskill)
}

// Contains reports whether the category holds the given subskill.
func (m *CategoryMap) Contains(name, subskill string) bool {
	for _, s := range m.values[name] {
		if s == subskill {
			return true
		}
	}
	return false
}

// Delete removes the category and its subskills. Removing an absent category
// is a no-op.
func (m *CategoryMap) Delete(name string) {
	if _, ok := m.values[name]; !ok {
		return
	}
	delete(m.values, name)
	for i, k := range m.keys {
		if k == name {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Rename re-keys a category in place, preserving its position in display
// order and its subskill list. The caller is responsible for ensuring the new
// name is not already taken.
func (m *CategoryMap) Rename(oldName, newName string) {
	subskills, ok := m.values[oldName]
	if !ok {
		return
	}
	delete(m.values, oldName)
	m.values[newName] = subskills
	for i, k := range m.keys {
		if k == oldName {
			m.keys[i] = newName
			break
		}
	}
}

// RemoveSubskill removes one subskill from the category, preserving the order
// of the remainder. Returns false if category or subskill is absent.
func (m *CategoryMap) RemoveSubskill(name, subskill string) bool {
	subskills, ok := m.values[name]
	if !ok {
		return false
	}
	for i, s := range subskills {
		if s == subskill {
			m.values[name] = append(subskills[:i], subskills[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceSubskill renames one subskill in place, preserving its position.
// Returns false if category or subskill is absent.
func (m *CategoryMap) ReplaceSubskill(name, oldSubskill, newSubskill string) bool {
	subskills, ok := m.values[name]
	if !ok {
		return false
	}
	for i, s := range subskills {
		if s == oldSubskill {
			subskills[i] = newSubskill
			return true
		}
	}
	return false
}

// MarshalJSON writes the map as a JSON object with keys in insertion order.
func (m *CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		subskills := m.values[key]
		if subskills == nil {
			subskills = []string{}
		}
		valueJSON, err := json.Marshal(subskills)
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving the key order of the document.
func (m *CategoryMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.values = make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object for category map, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key in category map, got %v", keyTok)
		}
		var subskills []string
		if err := dec.Decode(&subskills); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		m.Set(key, subskills)
	}
	// Consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Taxonomy is the category -> subskill structure for the hierarchical skill
// families plus the flat certification catalog, shared across all members.
type Taxonomy struct {
	TechnicalSkills *CategoryMap
	SoftSkills      *CategoryMap
	SoftwareSkills  *CategoryMap
	Certifications  []string
}

// NewTaxonomy returns an empty, fully initialized taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		TechnicalSkills: NewCategoryMap(),
		SoftSkills:      NewCategoryMap(),
		SoftwareSkills:  NewCategoryMap(),
		Certifications:  []string{},
	}
}

// Hierarchy returns the category map backing a hierarchical family, or an
// error for the flat Certifications family. Families resolve through this
// switch only; collection names are never synthesized from family strings.
func (t *Taxonomy) Hierarchy(family SkillFamily) (*CategoryMap, error) {
	switch family {
	case TechnicalSkills:
		return t.TechnicalSkills, nil
	case SoftSkills:
		return t.SoftSkills, nil
	case SoftwareSkills:
		return t.SoftwareSkills, nil
	default:
		return nil, fmt.Errorf("family %s has no category hierarchy", family)
	}
}
