package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yigit/practicum/internal/pkg/apperrors"
)

// Validation limits
var (
	// NameMaxLength matches the widest VARCHAR among reference-table names
	NameMaxLength = 255

	// DateLayout is the calendar date format accepted on input
	DateLayout = "2006-01-02"
)

// StringValidation checks a single text field
type StringValidation struct {
	Field    string
	Value    string
	MaxLen   int
	Required bool
}

// NewStringValidation creates a required text validation for field
func NewStringValidation(field, value string) *StringValidation {
	return &StringValidation{
		Field:    field,
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets the maximum length in runes
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate returns the trimmed value, or a validation error naming the field
func (v *StringValidation) Validate() (string, error) {
	trimmed := strings.TrimSpace(v.Value)

	if trimmed == "" {
		if v.Required {
			return "", apperrors.NewValidationError(fmt.Sprintf("%s is required", v.Field))
		}
		return "", nil
	}

	if v.MaxLen > 0 && utf8.RuneCountInString(trimmed) > v.MaxLen {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s must be at most %d characters", v.Field, v.MaxLen))
	}

	return trimmed, nil
}

// RequireText trims value and rejects it when nothing but whitespace remains
func RequireText(field, value string) (string, error) {
	return NewStringValidation(field, value).Validate()
}

// RequireName is RequireText bounded by NameMaxLength
func RequireName(field, value string) (string, error) {
	return NewStringValidation(field, value).WithMaxLength(NameMaxLength).Validate()
}

// RequirePositiveID rejects identifiers that cannot name a row
func RequirePositiveID(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be a positive integer", field))
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date for field
func ParseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return parsed, nil
}
