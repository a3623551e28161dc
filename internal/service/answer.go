package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/dto"
	"quiz-dump/internal/logger"

	"go.uber.org/zap"
)

// AnswerService records selections per session and grades them against the
// official answer.
type AnswerService interface {
	Submit(ctx context.Context, sessionID, questionID string, selected []string) (*dto.SubmitAnswerResponse, error)
	SessionAnswers(ctx context.Context, sessionID string) (*dto.SessionAnswersResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
}

type answerService struct {
	bank QuestionBankService
	repo domain.AnswerRepository
	now  func() time.Time
}

func NewAnswerService(bank QuestionBankService, repo domain.AnswerRepository) AnswerService {
	return &answerService{bank: bank, repo: repo, now: time.Now}
}

func (s *answerService) Submit(ctx context.Context, sessionID, questionID string, selected []string) (*dto.SubmitAnswerResponse, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("session id is required")
	}
	q, _, err := s.bank.ByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	letters := domain.NormalizeSelection(selected)
	if letters == "" {
		return nil, domain.NewInvalidAnswerError("at least one option must be selected")
	}
	for _, l := range letters {
		if !q.HasOption(string(l)) {
			return nil, domain.NewInvalidAnswerError(fmt.Sprintf("option %c is not available for question %s", l, q.ID))
		}
	}

	answer := &domain.SessionAnswer{
		SessionID:  sessionID,
		QuestionID: q.ID,
		Letters:    letters,
		AnsweredAt: s.now(),
	}
	if err := s.repo.SaveAnswer(ctx, answer); err != nil {
		logger.Get().Error("Failed to save answer",
			zap.String("session_id", sessionID),
			zap.String("question_id", q.ID),
			zap.Error(err))
		return nil, domain.NewInternalError("failed to save answer", err)
	}

	return &dto.SubmitAnswerResponse{
		QuestionID:    q.ID,
		Selected:      letters,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       isCorrect(q, letters),
		AnswerKnown:   q.HasCorrectAnswer(),
	}, nil
}

// isCorrect compares normalized letter sets, so "CB" in the document matches a
// "BC" selection.
func isCorrect(q *domain.Question, letters string) bool {
	if q.CorrectAnswer == nil {
		return false
	}
	official := domain.NormalizeSelection(strings.Split(*q.CorrectAnswer, ""))
	return official != "" && official == domain.NormalizeSelection(strings.Split(letters, ""))
}

func (s *answerService) SessionAnswers(ctx context.Context, sessionID string) (*dto.SessionAnswersResponse, error) {
	if sessionID == "" {
		return nil, domain.NewInvalidInputError("session id is required")
	}
	answers, err := s.repo.GetAnswers(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load session answers", err)
	}

	resp := &dto.SessionAnswersResponse{
		SessionID: sessionID,
		Answers:   answers,
		Answered:  len(answers),
	}

	total, err := s.bank.Count(ctx)
	if err != nil {
		// answers stay readable without a document
		logger.Get().Debug("Question bank unavailable for session summary", zap.Error(err))
		return resp, nil
	}
	resp.Total = total
	for id, letters := range answers {
		q, _, err := s.bank.ByID(ctx, id)
		if err != nil {
			continue
		}
		if isCorrect(q, letters) {
			resp.Correct++
		}
	}
	return resp, nil
}

func (s *answerService) ResetSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.NewInvalidInputError("session id is required")
	}
	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		return domain.NewInternalError("failed to reset session", err)
	}
	return nil
}
