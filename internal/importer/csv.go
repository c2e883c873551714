// Package importer parses delimited skill tables into taxonomy mutations.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ascent-tracker/internal/taxonomy"
	"github.com/jonathan/ascent-tracker/internal/types"
)

// Result summarizes what a successful import added to the taxonomy.
type Result struct {
	Rows            int
	CategoriesAdded int
	SubskillsAdded  int
}

// row is one staged import line, fully validated before any mutation.
type row struct {
	family   types.SkillFamily
	category string
	subskill string
}

// ImportSkillsCSV reads a delimited skill table and appends its rows to the
// taxonomy. The first row is a header and is skipped. Rows are tab-delimited
// "family, category, skill"; a single-field row is re-split on commas. Every
// row must yield exactly three non-empty trimmed fields or the whole import
// fails with FormatError.
//
// The import is all-or-nothing: rows are staged and validated first, and the
// taxonomy is mutated only once the entire input has parsed. On apply,
// already-present categories and subskills are skipped silently rather than
// raising duplicate errors.
func ImportSkillsCSV(r io.Reader, store *taxonomy.Store) (*Result, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var staged []row
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &FormatError{Line: line, Message: "unreadable row", Cause: err}
		}
		if line == 1 {
			// Header row
			continue
		}
		if len(record) == 1 {
			record = strings.Split(record[0], ",")
		}
		if len(record) != 3 {
			return nil, &FormatError{Line: line, Message: fmt.Sprintf("expected 3 fields, got %d", len(record))}
		}
		familyField := strings.TrimSpace(record[0])
		category := strings.TrimSpace(record[1])
		subskill := strings.TrimSpace(record[2])
		if familyField == "" || category == "" || subskill == "" {
			return nil, &FormatError{Line: line, Message: "row has empty fields"}
		}
		family, err := types.ParseSkillFamily(familyField)
		if err != nil {
			return nil, &FormatError{Line: line, Message: "unknown skill family", Cause: err}
		}
		if !family.Hierarchical() {
			return nil, &FormatError{Line: line, Message: fmt.Sprintf("family %s is not hierarchical", family)}
		}
		staged = append(staged, row{family: family, category: category, subskill: subskill})
	}

	result := &Result{Rows: len(staged)}
	for _, r := range staged {
		if !contains(store.ListCategories(r.family), r.category) {
			if err := store.AddCategory(r.family, r.category); err != nil {
				return nil, err
			}
			result.CategoriesAdded++
		}
		if contains(store.ListSubskills(r.family, r.category), r.subskill) {
			continue
		}
		if err := store.AddSubskill(r.family, r.category, r.subskill); err != nil {
			return nil, err
		}
		result.SubskillsAdded++
	}
	return result, nil
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
