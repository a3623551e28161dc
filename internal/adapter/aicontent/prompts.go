package aicontent

import (
	"fmt"

	"quiz-dump/internal/domain"
)

const explanationPrompt = `You are an AWS certification expert. Analyse this multiple-choice exam question for a student.

**Question:**
%s

**Options:**
%s

**Correct answer:** %s

**Output rules (important):**
- Write the whole answer in %s.
- NO greeting or self introduction at the start.
- NO closing wishes or small talk at the end.
- Focus only on concise technical content.

**Structure:**
1. **Requirement analysis:** the keywords and the goal of the question.
2. **Why the correct answer is right:** why it best meets the requirement (technical, cost, best practice).
3. **Why the other answers are wrong:** one reason per remaining option.
4. **Memory tip:** keyword <-> service mapping.`

const theoryPrompt = `You are a living AWS dictionary. Briefly explain the AWS **services** or **concepts** that appear in the text below.

**Context (question and options):**
%s
%s

**Output rules:**
- Write the whole answer in %s.
- Cover only the CONCEPTS/SERVICES (e.g. AWS Lambda, IOPS, consistency model).
- For each concept: a one-line definition and a one-line main use case.
- Do not explain the question and do not analyse which options are right or wrong.
- Format as a clean Markdown list.`

// languageName resolves a request language code; an empty code means the default.
func languageName(code string) (string, error) {
	if code == "" {
		code = domain.DefaultLanguage
	}
	name, ok := domain.SupportedLanguages[code]
	if !ok {
		return "", domain.NewInvalidInputError(fmt.Sprintf("unsupported language %q", code))
	}
	return name, nil
}

func buildPrompt(req domain.ContentRequest) (string, error) {
	lang, err := languageName(req.Language)
	if err != nil {
		return "", err
	}
	switch req.Kind {
	case domain.ContentExplanation:
		correct := "not provided"
		if req.CorrectAnswer != nil {
			correct = *req.CorrectAnswer
		}
		return fmt.Sprintf(explanationPrompt, req.Question, req.Options, correct, lang), nil
	case domain.ContentTheory:
		return fmt.Sprintf(theoryPrompt, req.Question, req.Options, lang), nil
	default:
		return "", domain.NewInvalidInputError(fmt.Sprintf("unknown content kind %q", req.Kind))
	}
}
