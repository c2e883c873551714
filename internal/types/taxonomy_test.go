package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMap_PreservesInsertionOrder(t *testing.T) {
	m := NewCategoryMap()
	m.Set("Languages", []string{"Python"})
	m.Set("Databases", []string{"Postgres"})
	m.Set("Cloud", nil)

	assert.Equal(t, []string{"Languages", "Databases", "Cloud"}, m.Keys())
}

func TestCategoryMap_DeleteRemovesKeyFromOrder(t *testing.T) {
	m := NewCategoryMap()
	m.Set("A", nil)
	m.Set("B", nil)
	m.Set("C", nil)

	m.Delete("B")

	assert.Equal(t, []string{"A", "C"}, m.Keys())
	assert.False(t, m.Has("B"))
}

func TestCategoryMap_RenamePreservesPositionAndSubskills(t *testing.T) {
	m := NewCategoryMap()
	m.Set("A", []string{"x"})
	m.Set("B", []string{"y", "z"})
	m.Set("C", nil)

	m.Rename("B", "Better")

	assert.Equal(t, []string{"A", "Better", "C"}, m.Keys())
	subskills, ok := m.Get("Better")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "z"}, subskills)
	assert.False(t, m.Has("B"))
}

func TestCategoryMap_GetReturnsCopy(t *testing.T) {
	m := NewCategoryMap()
	m.Set("A", []string{"x", "y"})

	subskills, ok := m.Get("A")
	require.True(t, ok)
	subskills[0] = "mutated"

	fresh, _ := m.Get("A")
	assert.Equal(t, []string{"x", "y"}, fresh)
}

func TestCategoryMap_MarshalKeepsKeyOrder(t *testing.T) {
	m := NewCategoryMap()
	m.Set("Zebra", []string{"z1"})
	m.Set("Alpha", []string{"a1", "a2"})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	// Key order is significant and must survive, not just set equality
	assert.Equal(t, `{"Zebra":["z1"],"Alpha":["a1","a2"]}`, string(data))
}

func TestCategoryMap_UnmarshalKeepsDocumentOrder(t *testing.T) {
	var m CategoryMap
	err := json.Unmarshal([]byte(`{"Second":["b"],"First":["a"]}`), &m)
	require.NoError(t, err)

	assert.Equal(t, []string{"Second", "First"}, m.Keys())
}

func TestCategoryMap_UnmarshalRejectsNonObject(t *testing.T) {
	var m CategoryMap
	err := json.Unmarshal([]byte(`["a","b"]`), &m)
	assert.Error(t, err)
}

func TestTaxonomy_HierarchyResolvesBySwitch(t *testing.T) {
	tax := NewTaxonomy()

	for _, family := range HierarchicalFamilies() {
		hierarchy, err := tax.Hierarchy(family)
		require.NoError(t, err)
		assert.NotNil(t, hierarchy)
	}

	_, err := tax.Hierarchy(Certifications)
	assert.Error(t, err)
}

func TestParseSkillFamily_AcceptsShortForms(t *testing.T) {
	cases := map[string]SkillFamily{
		"Tech":             TechnicalSkills,
		"technical":        TechnicalSkills,
		"Technical Skills": TechnicalSkills,
		"soft":             SoftSkills,
		"Soft Skills":      SoftSkills,
		"software":         SoftwareSkills,
		"Software Skills":  SoftwareSkills,
		"cert":             Certifications,
		"Certifications":   Certifications,
	}
	for input, want := range cases {
		got, err := ParseSkillFamily(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseSkillFamily_RejectsUnknown(t *testing.T) {
	_, err := ParseSkillFamily("hardware")
	assert.Error(t, err)
}

func TestSkillFamily_Hierarchical(t *testing.T) {
	assert.True(t, TechnicalSkills.Hierarchical())
	assert.True(t, SoftSkills.Hierarchical())
	assert.True(t, SoftwareSkills.Hierarchical())
	assert.False(t, Certifications.Hierarchical())
}
