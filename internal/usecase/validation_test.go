package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fieldNames(errs []ValidationError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateCreateLeadInputAcceptsValidInput(t *testing.T) {
	assert.Empty(t, ValidateCreateLeadInput(validCreateInput()))
}

func TestValidateCreateLeadInputRequiredFields(t *testing.T) {
	errs := ValidateCreateLeadInput(CreateLeadInput{})

	names := fieldNames(errs)
	assert.Contains(t, names, "firstName")
	assert.Contains(t, names, "lastName")
	assert.Contains(t, names, "phone")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "make")
	assert.Contains(t, names, "model")
	assert.Contains(t, names, "damageDescription")
}

func TestValidateCreateLeadInputPhoneFormats(t *testing.T) {
	valid := []string{"555-123-4567", "5551234567", "+1 555 123 4567", "1-555-123-4567"}
	for _, p := range valid {
		input := validCreateInput()
		input.Phone = p
		assert.Empty(t, ValidateCreateLeadInput(input), p)
	}

	invalid := []string{"123", "555-123-456", "25551234567"}
	for _, p := range invalid {
		input := validCreateInput()
		input.Phone = p
		assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "phone", p)
	}
}

func TestValidateCreateLeadInputEmail(t *testing.T) {
	input := validCreateInput()
	input.Email = "not-an-email"
	assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "email")
}

func TestValidateCreateLeadInputYear(t *testing.T) {
	input := validCreateInput()
	input.Year = "21"
	assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "year")

	// Year is optional.
	input.Year = ""
	assert.Empty(t, ValidateCreateLeadInput(input))
}

func TestValidateCreateLeadInputFirstNameLength(t *testing.T) {
	input := validCreateInput()
	input.FirstName = strings.Repeat("a", 101)
	assert.Contains(t, fieldNames(ValidateCreateLeadInput(input)), "firstName")
}
