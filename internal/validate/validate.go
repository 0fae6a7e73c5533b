// Package validate holds field-level input rules for catalog entities.
// A validation failure means nothing gets persisted.
package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Error is a field-level validation failure surfaced back to the submitter
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProductInput checks the product fields that gate persistence: required
// name and category, non-negative price, and the forbidden-word filter
// on name and description.
func ProductInput(name, description string, categoryID uint, price decimal.Decimal, forbiddenWords []string) error {
	if strings.TrimSpace(name) == "" {
		return &Error{Field: "name", Message: "name is required"}
	}
	if categoryID == 0 {
		return &Error{Field: "category_id", Message: "category is required"}
	}
	if price.IsNegative() {
		return &Error{Field: "price", Message: "price must not be negative"}
	}
	if word := findForbiddenWord(name, forbiddenWords); word != "" {
		return &Error{Field: "name", Message: fmt.Sprintf("forbidden word: %s", word)}
	}
	if word := findForbiddenWord(description, forbiddenWords); word != "" {
		return &Error{Field: "description", Message: fmt.Sprintf("forbidden word: %s", word)}
	}
	return nil
}

// BlogInput checks the blog post fields required for persistence
func BlogInput(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return &Error{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(content) == "" {
		return &Error{Field: "content", Message: "content is required"}
	}
	return nil
}

// FeedbackInput checks the feedback form fields
func FeedbackInput(name, phone, message string) error {
	if strings.TrimSpace(name) == "" {
		return &Error{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(phone) == "" {
		return &Error{Field: "phone", Message: "phone is required"}
	}
	if strings.TrimSpace(message) == "" {
		return &Error{Field: "message", Message: "message is required"}
	}
	return nil
}

// RegistrationInput checks the account registration fields
func RegistrationInput(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return &Error{Field: "email", Message: "email is required"}
	}
	if !strings.Contains(email, "@") {
		return &Error{Field: "email", Message: "invalid email address"}
	}
	if len(password) < 6 {
		return &Error{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

func findForbiddenWord(text string, words []string) string {
	lowered := strings.ToLower(text)
	for _, w := range words {
		if w != "" && strings.Contains(lowered, strings.ToLower(w)) {
			return w
		}
	}
	return ""
}
