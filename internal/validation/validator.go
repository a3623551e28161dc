package validation

import (
	"regexp"
	"strings"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/util"
)

const (
	MaxPageLimit     = 200
	maxSelectionSize = 6
)

var (
	questionIDPattern = regexp.MustCompile(`^[0-9]{1,10}$`)
	letterPattern     = regexp.MustCompile(`^[A-Fa-f]$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionID checks the numeric id taken from a question heading.
func (v *Validator) ValidateQuestionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !questionIDPattern.MatchString(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}

// ValidatePagination validates list paging parameters.
func (v *Validator) ValidatePagination(offset, limit int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if offset < 0 {
		errors = append(errors, domain.ValidationError{Field: "offset", Message: "must not be negative", Value: offset})
	}
	if limit < 1 || limit > MaxPageLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", limit, 1, MaxPageLimit))
	}
	return errors
}

// ValidateSelection validates the shape of submitted option letters. Whether
// the letters exist on the question is checked by the answer service.
func (v *Validator) ValidateSelection(selected []string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(selected) == 0 {
		return append(errors, domain.NewMissingFieldError("selected"))
	}
	if len(selected) > maxSelectionSize {
		errors = append(errors, domain.NewOutOfRangeError("selected", len(selected), 1, maxSelectionSize))
	}
	for _, s := range selected {
		if !letterPattern.MatchString(strings.TrimSpace(s)) {
			errors = append(errors, domain.NewInvalidFormatError("selected", s))
		}
	}
	return errors
}

// ValidateLanguage accepts an empty code (the default) or a supported one.
func (v *Validator) ValidateLanguage(lang string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if lang == "" {
		return errors
	}
	if _, ok := domain.SupportedLanguages[lang]; !ok {
		errors = append(errors, domain.NewInvalidFormatError("lang", lang))
	}
	return errors
}

// ValidateSessionID checks a client supplied session id.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", id))
	}
	return errors
}
