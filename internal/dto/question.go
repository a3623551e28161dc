package dto

import "quiz-dump/internal/domain"

// QuestionSummary is one entry of the question list.
type QuestionSummary struct {
	ID            string `json:"id"`
	Position      int    `json:"position"`
	Topic         string `json:"topic"`
	IsMultiselect bool   `json:"is_multiselect"`
	ExpectedCount int    `json:"expected_count"`
	HasAnswer     bool   `json:"has_answer"`
}

// QuestionListResponse is a page of question summaries.
type QuestionListResponse struct {
	Total  int               `json:"total"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
	Items  []QuestionSummary `json:"items"`
}

// QuestionResponse is a full question record with its 1-based position.
type QuestionResponse struct {
	Position int `json:"position"`
	domain.Question
}

// NavigationResponse drives one-question-at-a-time navigation.
type NavigationResponse struct {
	Position int              `json:"position"`
	Total    int              `json:"total"`
	Prev     *int             `json:"prev"`
	Next     *int             `json:"next"`
	Question QuestionResponse `json:"question"`
}

// SubmitAnswerRequest carries the chosen option letters.
type SubmitAnswerRequest struct {
	Selected []string `json:"selected"`
}

// SubmitAnswerResponse reports how a selection compares to the official answer.
// AnswerKnown is false when the question has no official answer; Correct is
// then always false.
type SubmitAnswerResponse struct {
	QuestionID    string  `json:"question_id"`
	Selected      string  `json:"selected"`
	CorrectAnswer *string `json:"correct_answer"`
	Correct       bool    `json:"correct"`
	AnswerKnown   bool    `json:"answer_known"`
}

// SessionAnswersResponse lists a session's answers with progress counters.
type SessionAnswersResponse struct {
	SessionID string            `json:"session_id"`
	Answers   map[string]string `json:"answers"`
	Total     int               `json:"total"`
	Answered  int               `json:"answered"`
	Correct   int               `json:"correct"`
}

// AIContentResponse is a generated explanation or theory text.
type AIContentResponse struct {
	QuestionID string `json:"question_id"`
	Kind       string `json:"kind"`
	Language   string `json:"language"`
	Content    string `json:"content"`
	Cached     bool   `json:"cached"`
}

// DocumentLoadResponse summarizes an uploaded document.
type DocumentLoadResponse struct {
	Activated bool              `json:"activated"`
	Count     int               `json:"count"`
	Questions []domain.Question `json:"questions"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status    string `json:"status"`
	Questions int    `json:"questions"`
	Cache     string `json:"cache"`
}
