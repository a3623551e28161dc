package repository

import (
	"context"
	"fmt"
	"time"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// AnswerDatabaseAdapter implements domain.AnswerRepository on the
// user_answers table.
type AnswerDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAnswerDatabaseAdapter creates a new instance of AnswerDatabaseAdapter
func NewAnswerDatabaseAdapter(db *sqlx.DB) domain.AnswerRepository {
	return &AnswerDatabaseAdapter{db: db}
}

// SaveAnswer upserts the session's selection for one question.
func (a *AnswerDatabaseAdapter) SaveAnswer(ctx context.Context, answer *domain.SessionAnswer) error {
	row := toModelUserAnswer(answer)
	query := `MERGE INTO user_answers ua
	USING (SELECT :1 session_id, :2 question_id FROM dual) src
	ON (ua.session_id = src.session_id AND ua.question_id = src.question_id)
	WHEN MATCHED THEN
		UPDATE SET ua.letters = :3, ua.answered_at = :4
	WHEN NOT MATCHED THEN
		INSERT (session_id, question_id, letters, answered_at)
		VALUES (:5, :6, :7, :8)`

	_, err := a.db.ExecContext(ctx, query,
		row.SessionID, row.QuestionID,
		row.Letters, row.AnsweredAt,
		row.SessionID, row.QuestionID, row.Letters, row.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save answer for question %s: %w", row.QuestionID, err)
	}
	return nil
}

// GetAnswers implements domain.AnswerRepository
func (a *AnswerDatabaseAdapter) GetAnswers(ctx context.Context, sessionID string) (map[string]string, error) {
	var rows []models.UserAnswer
	query := `SELECT
		session_id "session_id",
		question_id "question_id",
		letters "letters",
		answered_at "answered_at"
	FROM user_answers
	WHERE session_id = :1`

	if err := a.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get answers for session: %w", err)
	}

	answers := make(map[string]string, len(rows))
	for _, r := range rows {
		answers[r.QuestionID] = r.Letters
	}
	return answers, nil
}

// DeleteSession implements domain.AnswerRepository
func (a *AnswerDatabaseAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	query := `DELETE FROM user_answers WHERE session_id = :1`
	if _, err := a.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete session answers: %w", err)
	}
	return nil
}

func toModelUserAnswer(answer *domain.SessionAnswer) *models.UserAnswer {
	answeredAt := answer.AnsweredAt
	if answeredAt.IsZero() {
		answeredAt = time.Now()
	}
	return &models.UserAnswer{
		SessionID:  answer.SessionID,
		QuestionID: answer.QuestionID,
		Letters:    answer.Letters,
		AnsweredAt: answeredAt,
	}
}
