package parser

import (
	"regexp"
	"strings"

	"quiz-dump/internal/domain"
)

var (
	// ## Exam <name> [topic N] question <N> discussion
	headingPattern = regexp.MustCompile(`^#{1,6}[ \t]*Exam\b.*?\bquestion[ \t]+(\d+)[ \t]+discussion\b`)
	answerPattern  = regexp.MustCompile(`\*\*Answer:\s+([A-Z]+)\s*\*\*`)
	topicPattern   = regexp.MustCompile(`Topic #:\s*(\d+)`)
	linkPattern    = regexp.MustCompile(`\[View on ExamTopics\]\(\s*([^)\s]+)\s*\)`)
	optionPattern  = regexp.MustCompile(`^([A-F])\.[\s\p{Zs}]+(.*)$`)
)

// blockFields holds what the pattern matchers recovered from one block.
type blockFields struct {
	id             string
	topic          string
	correctAnswer  *string
	discussionLink *string
	options        []string
	headingLine    int
	optionStart    int // line index of the first option, -1 when there are none
}

// extractFields reports false when the block has no identifier heading, in
// which case the block is not a question.
func extractFields(block string, lines []string) (blockFields, bool) {
	f := blockFields{
		topic:       domain.UnknownTopic,
		headingLine: -1,
		optionStart: -1,
	}

	for i, line := range lines {
		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			f.id = m[1]
			f.headingLine = i
			break
		}
	}
	if f.id == "" {
		return f, false
	}

	if m := answerPattern.FindStringSubmatch(block); m != nil {
		f.correctAnswer = domain.StringPtr(m[1])
	}
	if m := topicPattern.FindStringSubmatch(block); m != nil {
		f.topic = m[1]
	}
	if m := linkPattern.FindStringSubmatch(block); m != nil {
		f.discussionLink = domain.StringPtr(m[1])
	}

	for i, line := range lines {
		if i == f.headingLine {
			continue
		}
		m := optionPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if f.optionStart < 0 {
			f.optionStart = i
		}
		f.options = append(f.options, m[1]+". "+strings.TrimSpace(m[2]))
	}
	if f.options == nil {
		f.options = []string{}
	}
	return f, true
}
