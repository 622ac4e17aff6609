// Package validation contains input validation rules for account and forum content.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxEmailLength    = 254
	minPasswordLength = 6
	maxPasswordLength = 128
	maxNameLength     = 100

	// Content limits for questions and replies.
	MaxTitleLength       = 200
	MaxTagLength         = 50
	MaxDescriptionLength = 10000
	MaxReplyLength       = 10000
)

// ValidateEmail validates email format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must be at most %d characters", maxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if strings.HasSuffix(email, ".") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword validates password length bounds.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if n > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	}
	return nil
}

// ValidateName validates an optional display name. Empty is allowed; the
// account falls back to the default display name.
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidateQuestionInput validates title, description, and tag for a new question.
func ValidateQuestionInput(title, description, tag string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title must be at most %d characters", MaxTitleLength)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters", MaxDescriptionLength)
	}
	if utf8.RuneCountInString(tag) > MaxTagLength {
		return fmt.Errorf("tag must be at most %d characters", MaxTagLength)
	}
	return nil
}

// ValidateReplyText validates reply body text.
func ValidateReplyText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	if utf8.RuneCountInString(text) > MaxReplyLength {
		return fmt.Errorf("text must be at most %d characters", MaxReplyLength)
	}
	return nil
}
