package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(TeamDataSchemaPath)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("schema file not found at %s: %v", path, err)
	}
	return path
}

const validDocument = `{
	"team_members": {
		"Dana Reeves": {
			"job_title": "Engineer",
			"join_date": "01/03/2022",
			"birthday": "15/07/1990",
			"technical_skills": ["Languages: Go"],
			"goals": ["learn Rust"]
		}
	},
	"skills_data": {
		"Technical Skills": {},
		"Soft Skills": {},
		"Software Skills": [],
		"Certifications": ["CKA"]
	},
	"subskills_data": {
		"Technical Skills": {"Languages": ["Go"]}
	},
	"meetings": [
		{"date": "01/01/2024", "title": "kickoff", "notes": "n"}
	]
}`

func TestValidateDocument_AcceptsWellFormedDocument(t *testing.T) {
	err := ValidateDocument(schemaPath(t), []byte(validDocument))
	assert.NoError(t, err)
}

func TestValidateDocument_AcceptsLegacyNestedSkillMaps(t *testing.T) {
	document := `{
		"team_members": {
			"Dana Reeves": {
				"job_title": "Engineer",
				"join_date": "01/03/2022",
				"birthday": "15/07/1990",
				"technical_skills": {"A": ["x", "y"]}
			}
		},
		"skills_data": {"Technical Skills": []},
		"subskills_data": {},
		"meetings": []
	}`

	err := ValidateDocument(schemaPath(t), []byte(document))
	assert.NoError(t, err)
}

func TestValidateDocument_RejectsMissingTopLevelKey(t *testing.T) {
	document := `{"team_members": {}, "skills_data": {}, "meetings": []}`

	err := ValidateDocument(schemaPath(t), []byte(document))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateDocument_RejectsMemberWithoutJobTitle(t *testing.T) {
	document := `{
		"team_members": {
			"Dana Reeves": {"join_date": "01/03/2022", "birthday": "15/07/1990"}
		},
		"skills_data": {},
		"subskills_data": {},
		"meetings": []
	}`

	err := ValidateDocument(schemaPath(t), []byte(document))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateDocument_RejectsUnknownMemberField(t *testing.T) {
	document := `{
		"team_members": {
			"Dana Reeves": {
				"job_title": "Engineer",
				"join_date": "01/03/2022",
				"birthday": "15/07/1990",
				"salary": 100
			}
		},
		"skills_data": {},
		"subskills_data": {},
		"meetings": []
	}`

	err := ValidateDocument(schemaPath(t), []byte(document))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateDocument_MissingSchemaFile(t *testing.T) {
	err := ValidateDocument(filepath.Join(t.TempDir(), "nope.schema.json"), []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateDocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team_data.json")
	require.NoError(t, os.WriteFile(path, []byte(validDocument), 0o644))

	assert.NoError(t, ValidateDocumentFile(schemaPath(t), path))
}

func TestValidateDocumentFile_MissingDocument(t *testing.T) {
	err := ValidateDocumentFile(schemaPath(t), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
