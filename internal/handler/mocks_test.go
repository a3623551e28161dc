package handler_test

import (
	"context"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/dto"
	"quiz-dump/internal/service"
)

// --- Manual Mocks ---

// MockQuestionBankService
type MockQuestionBankService struct {
	CountFunc        func(ctx context.Context) (int, error)
	ListFunc         func(ctx context.Context, search string) ([]service.PositionedQuestion, error)
	ByPositionFunc   func(ctx context.Context, position int) (*domain.Question, int, error)
	ByIDFunc         func(ctx context.Context, id string) (*domain.Question, int, error)
	LoadDocumentFunc func(ctx context.Context, content string, activate bool) ([]domain.Question, error)
}

func (m *MockQuestionBankService) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	panic("MockQuestionBankService.CountFunc not implemented")
}
func (m *MockQuestionBankService) List(ctx context.Context, search string) ([]service.PositionedQuestion, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search)
	}
	panic("MockQuestionBankService.ListFunc not implemented")
}
func (m *MockQuestionBankService) ByPosition(ctx context.Context, position int) (*domain.Question, int, error) {
	if m.ByPositionFunc != nil {
		return m.ByPositionFunc(ctx, position)
	}
	panic("MockQuestionBankService.ByPositionFunc not implemented")
}
func (m *MockQuestionBankService) ByID(ctx context.Context, id string) (*domain.Question, int, error) {
	if m.ByIDFunc != nil {
		return m.ByIDFunc(ctx, id)
	}
	panic("MockQuestionBankService.ByIDFunc not implemented")
}
func (m *MockQuestionBankService) LoadDocument(ctx context.Context, content string, activate bool) ([]domain.Question, error) {
	if m.LoadDocumentFunc != nil {
		return m.LoadDocumentFunc(ctx, content, activate)
	}
	panic("MockQuestionBankService.LoadDocumentFunc not implemented")
}

// MockAnswerService
type MockAnswerService struct {
	SubmitFunc         func(ctx context.Context, sessionID, questionID string, selected []string) (*dto.SubmitAnswerResponse, error)
	SessionAnswersFunc func(ctx context.Context, sessionID string) (*dto.SessionAnswersResponse, error)
	ResetSessionFunc   func(ctx context.Context, sessionID string) error
}

func (m *MockAnswerService) Submit(ctx context.Context, sessionID, questionID string, selected []string) (*dto.SubmitAnswerResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, sessionID, questionID, selected)
	}
	panic("MockAnswerService.SubmitFunc not implemented")
}
func (m *MockAnswerService) SessionAnswers(ctx context.Context, sessionID string) (*dto.SessionAnswersResponse, error) {
	if m.SessionAnswersFunc != nil {
		return m.SessionAnswersFunc(ctx, sessionID)
	}
	panic("MockAnswerService.SessionAnswersFunc not implemented")
}
func (m *MockAnswerService) ResetSession(ctx context.Context, sessionID string) error {
	if m.ResetSessionFunc != nil {
		return m.ResetSessionFunc(ctx, sessionID)
	}
	panic("MockAnswerService.ResetSessionFunc not implemented")
}

// MockAIContentService
type MockAIContentService struct {
	GetFunc        func(ctx context.Context, kind domain.ContentKind, questionID, language string) (*dto.AIContentResponse, error)
	InvalidateFunc func(ctx context.Context, kind domain.ContentKind, questionID, language string) error
}

func (m *MockAIContentService) Get(ctx context.Context, kind domain.ContentKind, questionID, language string) (*dto.AIContentResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, kind, questionID, language)
	}
	panic("MockAIContentService.GetFunc not implemented")
}
func (m *MockAIContentService) Invalidate(ctx context.Context, kind domain.ContentKind, questionID, language string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, kind, questionID, language)
	}
	panic("MockAIContentService.InvalidateFunc not implemented")
}

// MockCache only answers Ping.
type MockCache struct {
	domain.Cache
	PingErr error
}

func (m *MockCache) Ping(ctx context.Context) error { return m.PingErr }
