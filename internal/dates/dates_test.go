package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid_AcceptsCanonicalFormat(t *testing.T) {
	assert.True(t, Valid("31/12/2024"))
	assert.True(t, Valid("01/01/1990"))
	assert.True(t, Valid("29/02/2024"))
}

func TestValid_RejectsOtherFormats(t *testing.T) {
	assert.False(t, Valid("31-12-2024"))
	assert.False(t, Valid("2024/12/31"))
	assert.False(t, Valid("12/31/2024")) // month 31 does not exist
	assert.False(t, Valid(""))
	assert.False(t, Valid("yesterday"))
}

func TestValid_RejectsImpossibleDates(t *testing.T) {
	assert.False(t, Valid("32/01/2024"))
	assert.False(t, Valid("29/02/2023"))
	assert.False(t, Valid("00/01/2024"))
}
