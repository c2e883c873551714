package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMemberRequest_Valid(t *testing.T) {
	req := &AddMemberRequest{
		Name:     "Dana Reeves",
		JobTitle: "Platform Engineer",
		JoinDate: "01/03/2022",
		Birthday: "15/07/1990",
	}
	require.NoError(t, req.Validate())
}

func TestAddMemberRequest_RejectsDashSeparatedDate(t *testing.T) {
	req := &AddMemberRequest{
		Name:     "Dana Reeves",
		JobTitle: "Platform Engineer",
		JoinDate: "01-03-2022",
		Birthday: "15/07/1990",
	}
	assert.Error(t, req.Validate())
}

func TestAddMemberRequest_RejectsMissingFields(t *testing.T) {
	req := &AddMemberRequest{
		Name:     "",
		JobTitle: "Platform Engineer",
		JoinDate: "01/03/2022",
		Birthday: "15/07/1990",
	}
	assert.Error(t, req.Validate())
}

func TestAddMeetingRequest_RejectsImpossibleDate(t *testing.T) {
	req := &AddMeetingRequest{Date: "32/01/2024", Title: "Retro"}
	assert.Error(t, req.Validate())
}

func TestAddMeetingRequest_AllowsEmptyFreeTextFields(t *testing.T) {
	req := &AddMeetingRequest{Date: "31/01/2024"}
	require.NoError(t, req.Validate())
}

func TestUpdateProfileRequest_RequiresDates(t *testing.T) {
	req := &UpdateProfileRequest{
		JobTitle: "Engineer",
		JoinDate: "31/12/2024",
		Birthday: "29/02/2024", // leap day, valid
		Hobbies:  []string{"climbing"},
	}
	require.NoError(t, req.Validate())

	req.Birthday = "29/02/2023" // not a leap year
	assert.Error(t, req.Validate())
}
