package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"firstName", "is required"})
	} else if len(input.FirstName) > 100 {
		errors = append(errors, ValidationError{"firstName", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"lastName", "is required"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid US phone number"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Make) == "" {
		errors = append(errors, ValidationError{"make", "is required"})
	}
	if strings.TrimSpace(input.Model) == "" {
		errors = append(errors, ValidationError{"model", "is required"})
	}
	if input.Year != "" && !isValidYear(input.Year) {
		errors = append(errors, ValidationError{"year", "must be a 4 digit year"})
	}

	if strings.TrimSpace(input.DamageDescription) == "" {
		errors = append(errors, ValidationError{"damageDescription", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) == 10 || (len(cleaned) == 11 && cleaned[0] == '1')
}

func isValidYear(year string) bool {
	return regexp.MustCompile(`^(19|20)\d{2}$`).MatchString(year)
}
