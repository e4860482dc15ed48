package newsletter

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a field-level problem shown inline next to the form.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the signup form in field order and reports the first
// problem found.
func Validate(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your name"}
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "Please enter your email"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	return nil
}
