package domain

import (
	"sort"
	"strings"
)

// UnknownTopic is used when a block carries no "Topic #:" label.
const UnknownTopic = "Unknown"

// Question is one parsed question block of an exam dump.
// Records are produced once per parse and are not mutated afterwards.
type Question struct {
	ID                  string   `json:"id"`
	Topic               string   `json:"topic"`
	Question            string   `json:"question"`
	Options             []string `json:"options"`               // "A. text", document order
	CorrectAnswer       *string  `json:"correct_answer"`        // official letters, e.g. "BC"
	SuggestedAnswerText *string  `json:"suggested_answer_text"` // community vote line, verbatim
	DiscussionLink      *string  `json:"discussion_link"`
	IsMultiselect       bool     `json:"is_multiselect"`
	ExpectedCount       int      `json:"expected_count"`
}

// HasCorrectAnswer reports whether the block had an official answer marker.
func (q *Question) HasCorrectAnswer() bool {
	return q.CorrectAnswer != nil
}

// OptionLetters returns the option letters in document order.
func (q *Question) OptionLetters() []string {
	letters := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if letter := OptionLetter(opt); letter != "" {
			letters = append(letters, letter)
		}
	}
	return letters
}

// HasOption reports whether letter is one of the question's options.
func (q *Question) HasOption(letter string) bool {
	for _, l := range q.OptionLetters() {
		if l == letter {
			return true
		}
	}
	return false
}

// OptionsText joins the options with newlines, the form handed to AI prompts.
func (q *Question) OptionsText() string {
	return strings.Join(q.Options, "\n")
}

// OptionLetter returns the letter before the first period of an option string.
func OptionLetter(option string) string {
	letter, _, found := strings.Cut(option, ".")
	if !found {
		return ""
	}
	return strings.TrimSpace(letter)
}

// NormalizeSelection upper-cases, de-duplicates and sorts the chosen letters
// and concatenates them without separator ("c", "B" -> "BC").
func NormalizeSelection(selected []string) string {
	seen := make(map[string]struct{}, len(selected))
	letters := make([]string, 0, len(selected))
	for _, s := range selected {
		l := strings.ToUpper(strings.TrimSpace(s))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return strings.Join(letters, "")
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
