// Package dates provides the canonical date-format check shared by every
// entry point that accepts a date string.
package dates

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ascent-tracker/internal/types"
)

// Valid reports whether text is a real calendar date in the canonical
// DD/MM/YYYY format. Pure predicate, no side effects. It shares the
// validator's datetime rule with the struct-level request validation so both
// paths accept exactly the same strings.
func Valid(text string) bool {
	validate := validator.New()
	return validate.Var(text, "datetime="+types.DateLayout) == nil
}
