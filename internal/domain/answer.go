package domain

import (
	"context"
	"time"
)

// SessionAnswer is one stored selection of a session.
type SessionAnswer struct {
	SessionID  string
	QuestionID string
	Letters    string
	AnsweredAt time.Time
}

// AnswerRepository persists the answers chosen within a session.
type AnswerRepository interface {
	SaveAnswer(ctx context.Context, answer *SessionAnswer) error
	// GetAnswers returns question id -> letters. An unknown session yields an empty map.
	GetAnswers(ctx context.Context, sessionID string) (map[string]string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
