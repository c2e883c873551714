// Package types provides type definitions for structured data used throughout the ascent-tracker system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// DateLayout is the canonical date layout (DD/MM/YYYY) accepted at every
// entry point that takes a date string.
const DateLayout = "02/01/2006"

// AddMemberRequest carries the mandatory fields for creating a team member.
type AddMemberRequest struct {
	Name     string `validate:"required"`
	JobTitle string `validate:"required"`
	JoinDate string `validate:"required,datetime=02/01/2006"`
	Birthday string `validate:"required,datetime=02/01/2006"`
}

// UpdateIdentityRequest carries the modify-member dialog fields: the three
// core profile fields, updated without touching the rest of the record.
type UpdateIdentityRequest struct {
	JobTitle string `validate:"required"`
	JoinDate string `validate:"required,datetime=02/01/2006"`
	Birthday string `validate:"required,datetime=02/01/2006"`
}

// UpdateProfileRequest carries the full-replace profile field group. Each
// field wholly replaces its counterpart on the record.
type UpdateProfileRequest struct {
	JobTitle             string `validate:"required"`
	JoinDate             string `validate:"required,datetime=02/01/2006"`
	Birthday             string `validate:"required,datetime=02/01/2006"`
	Hobbies              []string
	Interests            []string
	Family               string
	OtherPersonalDetails string
}

// UpdateProgressionRequest carries the full-replace progression field group:
// the entire goals list, development plan, achievements list and
// issues/concerns text are replaced, not diffed.
type UpdateProgressionRequest struct {
	Goals           []string
	DevelopmentPlan string
	Achievements    []string
	IssuesConcerns  string
}

// AddMeetingRequest carries the fields for creating or replacing a meeting.
type AddMeetingRequest struct {
	Date        string `validate:"required,datetime=02/01/2006"`
	Title       string
	Highlights  string
	Notes       string
	ActionItems string
}

// Validate validates the AddMemberRequest using the validator.
func (r *AddMemberRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateIdentityRequest using the validator.
func (r *UpdateIdentityRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AddMeetingRequest using the validator.
func (r *AddMeetingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
