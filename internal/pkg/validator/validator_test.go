package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.domain.co", "a+tag@b.io"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "no-at-sign", "user@", "@domain.com", "user@domain"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidClockNumber(t *testing.T) {
	assert.True(t, IsValidClockNumber("1"))
	assert.True(t, IsValidClockNumber("042"))
	assert.True(t, IsValidClockNumber("123456"))

	assert.False(t, IsValidClockNumber(""))
	assert.False(t, IsValidClockNumber("1234567"))
	assert.False(t, IsValidClockNumber("12a"))
	assert.False(t, IsValidClockNumber("12 3"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-18")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("18/06/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "hourly_rate", Message: "must be non-negative"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "is required", m["name"])
	assert.Contains(t, errs.Error(), "hourly_rate: must be non-negative")
}
