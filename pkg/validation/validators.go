package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	digitsRegex   = regexp.MustCompile(`^[0-9]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("portal_email", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("portal_phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("portal_username", func(fl validator.FieldLevel) bool {
		return ValidUsername(fl.Field().String())
	})
}

// ValidEmail checks the address against the registration email format.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPhone strips whitespace, hyphens and parentheses, then requires
// exactly 10 digits.
func ValidPhone(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')':
			return -1
		}
		return r
	}, phone)
	return len(cleaned) == 10 && digitsRegex.MatchString(cleaned)
}

// ValidPassword requires a minimum length of 6. No complexity rules.
func ValidPassword(password string) bool {
	return len(password) >= 6
}

// ValidUsername requires 3-50 characters from [A-Za-z0-9_].
func ValidUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 50 && usernameRegex.MatchString(username)
}
