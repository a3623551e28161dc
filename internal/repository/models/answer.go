package models

import "time"

// UserAnswer is one row of user_answers.
type UserAnswer struct {
	SessionID  string    `db:"session_id"`
	QuestionID string    `db:"question_id"`
	Letters    string    `db:"letters"`
	AnsweredAt time.Time `db:"answered_at"`
}
