package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ascent-tracker/internal/types"
)

func newTestStore() *Store {
	return NewStore(types.NewTaxonomy())
}

func TestAddCategory_AppearsExactlyOnce(t *testing.T) {
	for _, family := range types.HierarchicalFamilies() {
		store := newTestStore()
		require.NoError(t, store.AddCategory(family, "Languages"))

		categories := store.ListCategories(family)
		count := 0
		for _, c := range categories {
			if c == "Languages" {
				count++
			}
		}
		assert.Equal(t, 1, count, "family %s", family)
	}
}

func TestAddCategory_DuplicateFails(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.TechnicalSkills, "Languages"))

	err := store.AddCategory(types.TechnicalSkills, "Languages")
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
}

func TestAddCategory_EmptyNameFails(t *testing.T) {
	store := newTestStore()
	err := store.AddCategory(types.TechnicalSkills, "   ")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestAddCategory_CertificationsFamilyFails(t *testing.T) {
	store := newTestStore()
	err := store.AddCategory(types.Certifications, "Languages")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestRenameCategory_PreservesOrderAndSubskills(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.SoftSkills, "Communication"))
	require.NoError(t, store.AddCategory(types.SoftSkills, "Leadership"))
	require.NoError(t, store.AddCategory(types.SoftSkills, "Teamwork"))
	require.NoError(t, store.AddSubskill(types.SoftSkills, "Leadership", "Mentoring"))

	require.NoError(t, store.RenameCategory(types.SoftSkills, "Leadership", "People Leadership"))

	assert.Equal(t, []string{"Communication", "People Leadership", "Teamwork"}, store.ListCategories(types.SoftSkills))
	assert.Equal(t, []string{"Mentoring"}, store.ListSubskills(types.SoftSkills, "People Leadership"))
}

func TestRenameCategory_ToExistingFails(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.SoftSkills, "A"))
	require.NoError(t, store.AddCategory(types.SoftSkills, "B"))

	err := store.RenameCategory(types.SoftSkills, "A", "B")
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
}

func TestDeleteCategory_RemovesCategoryAndSubskills(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.TechnicalSkills, "Languages"))
	require.NoError(t, store.AddSubskill(types.TechnicalSkills, "Languages", "Go"))

	require.NoError(t, store.DeleteCategory(types.TechnicalSkills, "Languages"))

	assert.Empty(t, store.ListCategories(types.TechnicalSkills))
	assert.Empty(t, store.ListSubskills(types.TechnicalSkills, "Languages"))
}

func TestDeleteCategory_MissingFails(t *testing.T) {
	store := newTestStore()
	err := store.DeleteCategory(types.TechnicalSkills, "Languages")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAddSubskill_SecondAddIsDuplicateError(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.TechnicalSkills, "Languages"))
	require.NoError(t, store.AddSubskill(types.TechnicalSkills, "Languages", "Python"))

	err := store.AddSubskill(types.TechnicalSkills, "Languages", "Python")
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"Python"}, store.ListSubskills(types.TechnicalSkills, "Languages"))
}

func TestAddSubskill_MissingCategoryFails(t *testing.T) {
	store := newTestStore()
	err := store.AddSubskill(types.TechnicalSkills, "Languages", "Python")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAddSubskillsBulk_SplitsTrimsAndSkipsDuplicates(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.TechnicalSkills, "Languages"))
	require.NoError(t, store.AddSubskill(types.TechnicalSkills, "Languages", "Python"))

	added, err := store.AddSubskillsBulk(types.TechnicalSkills, "Languages", " Go , Python,, Rust ,Go")
	require.NoError(t, err)

	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"Python", "Go", "Rust"}, store.ListSubskills(types.TechnicalSkills, "Languages"))
}

func TestAddSubskillsBulk_AllDuplicatesAddsNothing(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.TechnicalSkills, "Languages"))
	require.NoError(t, store.AddSubskill(types.TechnicalSkills, "Languages", "Go"))

	added, err := store.AddSubskillsBulk(types.TechnicalSkills, "Languages", "Go, Go")
	require.NoError(t, err)

	assert.Equal(t, 0, added)
	assert.Equal(t, []string{"Go"}, store.ListSubskills(types.TechnicalSkills, "Languages"))
}

func TestRenameSubskill_PreservesPosition(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.TechnicalSkills, "Languages"))
	_, err := store.AddSubskillsBulk(types.TechnicalSkills, "Languages", "Python, Go, Rust")
	require.NoError(t, err)

	require.NoError(t, store.RenameSubskill(types.TechnicalSkills, "Languages", "Go", "Golang"))

	assert.Equal(t, []string{"Python", "Golang", "Rust"}, store.ListSubskills(types.TechnicalSkills, "Languages"))
}

func TestDeleteSubskill_MissingSubskillFails(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCategory(types.TechnicalSkills, "Languages"))

	err := store.DeleteSubskill(types.TechnicalSkills, "Languages", "Python")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListSubskills_UnknownCategoryIsEmpty(t *testing.T) {
	store := newTestStore()
	assert.Equal(t, []string{}, store.ListSubskills(types.TechnicalSkills, "Nothing"))
}

func TestAddCertification_DuplicateFails(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCertification("CKA"))

	err := store.AddCertification("CKA")
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"CKA"}, store.Certifications())
}

func TestRemoveCertifications_SkipsMissingNames(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCertification("CKA"))
	require.NoError(t, store.AddCertification("CKAD"))

	removed := store.RemoveCertifications([]string{"CKA", "AWS SA", "CKAD"})

	assert.Equal(t, 2, removed)
	assert.Empty(t, store.Certifications())
}

func TestRenameCertification_ToExistingFails(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCertification("CKA"))
	require.NoError(t, store.AddCertification("CKAD"))

	err := store.RenameCertification("CKA", "CKAD")
	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
}

func TestRenameCertification_PreservesPosition(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.AddCertification("CKA"))
	require.NoError(t, store.AddCertification("CKAD"))
	require.NoError(t, store.AddCertification("CKS"))

	require.NoError(t, store.RenameCertification("CKAD", "CKAD v2"))

	assert.Equal(t, []string{"CKA", "CKAD v2", "CKS"}, store.Certifications())
}
