package domain

import "context"

// ContentKind selects which supplementary text is generated for a question.
type ContentKind string

const (
	ContentExplanation ContentKind = "explanation"
	ContentTheory      ContentKind = "theory"
)

// Valid reports whether k is a known content kind.
func (k ContentKind) Valid() bool {
	return k == ContentExplanation || k == ContentTheory
}

// ContentRequest carries the record fields an AI prompt is built from.
type ContentRequest struct {
	Kind          ContentKind
	QuestionID    string
	Question      string
	Options       string
	CorrectAnswer *string
	Language      string
}

// ContentGenerator produces supplementary text for a question.
type ContentGenerator interface {
	Generate(ctx context.Context, req ContentRequest) (string, error)
}

// SupportedLanguages maps language codes accepted by the AI endpoints to the
// language name written into prompts.
var SupportedLanguages = map[string]string{
	"vi": "Vietnamese",
	"en": "English",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
}

// DefaultLanguage is used when a request names no language.
const DefaultLanguage = "vi"
