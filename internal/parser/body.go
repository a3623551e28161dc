package parser

import "strings"

const (
	suggestedAnswerPrefix = "Suggested Answer:"
	examQuestionPrefix    = "Exam question from"
)

var duplicateMetadataPrefixes = []string{"Question #", "Topic #"}

// isolateBody returns the question prose found between the metadata-end
// marker (or the block start) and the first option line (or the block end),
// together with the community "Suggested Answer:" line when one is present.
func (p *Parser) isolateBody(lines []string, f blockFields) (string, *string) {
	end := len(lines)
	if f.optionStart >= 0 {
		end = f.optionStart
	}
	start := 0
	if idx := p.metadataEnd(lines[:end]); idx >= 0 {
		start = idx + 1
	}

	var suggested *string
	kept := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if i == f.headingLine {
			continue
		}
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, suggestedAnswerPrefix) {
			if suggested == nil {
				s := line
				suggested = &s
			}
			continue
		}
		if p.isBoilerplate(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), suggested
}

// metadataEnd returns the index of the line closing the boilerplate header,
// or -1 when the block has none.
func (p *Parser) metadataEnd(lines []string) int {
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if p.opts.metadataEndMarker != "" {
			if strings.Contains(line, p.opts.metadataEndMarker) {
				return i
			}
			continue
		}
		if strings.HasPrefix(line, "[All ") && strings.Contains(line, " Questions]") {
			return i
		}
	}
	return -1
}

func (p *Parser) isBoilerplate(line string) bool {
	for _, prefix := range duplicateMetadataPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	if strings.HasPrefix(line, examQuestionPrefix) {
		return true
	}
	for _, fragment := range p.opts.attributionFragments {
		if line == fragment {
			return true
		}
	}
	for _, phrase := range p.opts.brandPhrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return false
}
