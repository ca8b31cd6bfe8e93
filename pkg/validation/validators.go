package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Loose email shape: something@something.tld with no whitespace and no
	// second @ in the local or domain part. Deliberately more permissive than
	// full RFC 5322; the goal is catching typos, not parsing addresses.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// ContactEmail validates the basic local@domain.tld shape of an email address
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // emptiness is the required tag's concern
	}
	return emailRegex.MatchString(val)
}
