package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-dump/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAnswerService(t *testing.T) (*answerService, *MockAnswerRepository) {
	t.Helper()
	bank, _ := newTestBank(t, testDump)
	repo := new(MockAnswerRepository)
	svc := NewAnswerService(bank, repo).(*answerService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestAnswerService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("CorrectMultiselect", func(t *testing.T) {
		svc, repo := newTestAnswerService(t)
		repo.On("SaveAnswer", ctx, &domain.SessionAnswer{
			SessionID:  "s1",
			QuestionID: "935",
			Letters:    "BC",
			AnsweredAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		}).Return(nil).Once()

		resp, err := svc.Submit(ctx, "s1", "935", []string{"c", "B"})
		require.NoError(t, err)
		assert.Equal(t, "BC", resp.Selected)
		assert.True(t, resp.Correct)
		assert.True(t, resp.AnswerKnown)
		require.NotNil(t, resp.CorrectAnswer)
		assert.Equal(t, "BC", *resp.CorrectAnswer)
		repo.AssertExpectations(t)
	})

	t.Run("Wrong", func(t *testing.T) {
		svc, repo := newTestAnswerService(t)
		repo.On("SaveAnswer", ctx, mock.AnythingOfType("*domain.SessionAnswer")).Return(nil).Once()

		resp, err := svc.Submit(ctx, "s1", "7", []string{"B"})
		require.NoError(t, err)
		assert.False(t, resp.Correct)
		assert.True(t, resp.AnswerKnown)
		repo.AssertExpectations(t)
	})

	t.Run("NoOfficialAnswer", func(t *testing.T) {
		svc, repo := newTestAnswerService(t)
		repo.On("SaveAnswer", ctx, mock.AnythingOfType("*domain.SessionAnswer")).Return(nil).Once()

		resp, err := svc.Submit(ctx, "s1", "12", []string{"C"})
		require.NoError(t, err)
		assert.False(t, resp.Correct)
		assert.False(t, resp.AnswerKnown)
		assert.Nil(t, resp.CorrectAnswer)
		repo.AssertExpectations(t)
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		svc, repo := newTestAnswerService(t)
		_, err := svc.Submit(ctx, "s1", "404", []string{"A"})
		assertDomainCode(t, err, domain.ErrQuestionNotFound)
		repo.AssertNotCalled(t, "SaveAnswer", mock.Anything, mock.Anything)
	})

	t.Run("EmptySelection", func(t *testing.T) {
		svc, _ := newTestAnswerService(t)
		_, err := svc.Submit(ctx, "s1", "7", []string{" ", ""})
		assertDomainCode(t, err, domain.ErrInvalidAnswer)
	})

	t.Run("LetterNotAnOption", func(t *testing.T) {
		svc, _ := newTestAnswerService(t)
		_, err := svc.Submit(ctx, "s1", "7", []string{"D"})
		assertDomainCode(t, err, domain.ErrInvalidAnswer)
	})

	t.Run("MissingSession", func(t *testing.T) {
		svc, _ := newTestAnswerService(t)
		_, err := svc.Submit(ctx, "", "7", []string{"A"})
		assertDomainCode(t, err, domain.ErrInvalidInput)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		svc, repo := newTestAnswerService(t)
		repo.On("SaveAnswer", ctx, mock.Anything).Return(errors.New("db down")).Once()

		_, err := svc.Submit(ctx, "s1", "7", []string{"A"})
		assertDomainCode(t, err, domain.ErrInternal)
	})
}

func TestAnswerService_SessionAnswers(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAnswerService(t)
	repo.On("GetAnswers", ctx, "s1").Return(map[string]string{
		"935": "BC", // correct
		"7":   "B",  // wrong
		"12":  "C",  // no official answer
		"old": "A",  // no longer in the document
	}, nil).Once()

	resp, err := svc.SessionAnswers(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 4, resp.Answered)
	assert.Equal(t, 1, resp.Correct)
	repo.AssertExpectations(t)
}

func TestAnswerService_SessionAnswers_WithoutDocument(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAnswerRepository)
	svc := NewAnswerService(NewQuestionBankService(nil, nil), repo)
	repo.On("GetAnswers", ctx, "s1").Return(map[string]string{"935": "BC"}, nil).Once()

	resp, err := svc.SessionAnswers(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Answered)
	assert.Equal(t, 0, resp.Total)
}

func TestAnswerService_ResetSession(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestAnswerService(t)

	repo.On("DeleteSession", ctx, "s1").Return(nil).Once()
	require.NoError(t, svc.ResetSession(ctx, "s1"))

	repo.On("DeleteSession", ctx, "s2").Return(errors.New("boom")).Once()
	assertDomainCode(t, svc.ResetSession(ctx, "s2"), domain.ErrInternal)

	assertDomainCode(t, svc.ResetSession(ctx, ""), domain.ErrInvalidInput)
	repo.AssertExpectations(t)
}

func TestAnswerService_Submit_UnsortedOfficialAnswer(t *testing.T) {
	ctx := context.Background()
	bank, _ := newTestBank(t, dump(
		questionBlock("40", "Which two actions? (Choose two.)", "CB",
			"A. Enable MFA.", "B. Rotate keys.", "C. Use roles.", "D. Share the root user."),
	))
	repo := new(MockAnswerRepository)
	svc := NewAnswerService(bank, repo)
	repo.On("SaveAnswer", ctx, mock.AnythingOfType("*domain.SessionAnswer")).Return(nil).Twice()

	resp, err := svc.Submit(ctx, "s1", "40", []string{"B", "C"})
	require.NoError(t, err)
	assert.Equal(t, "BC", resp.Selected)
	assert.True(t, resp.Correct)

	resp, err = svc.Submit(ctx, "s1", "40", []string{"c", "b"})
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	repo.AssertExpectations(t)
}
