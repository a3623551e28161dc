package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quiz-dump/internal/cache"
	"quiz-dump/internal/domain"
)

// AnswerCacheAdapter implements domain.AnswerRepository as one cache hash per
// session (question id -> letters). The hash expiry is refreshed on each save.
type AnswerCacheAdapter struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewAnswerCacheAdapter creates a cache-backed answer store. ttl <= 0 keeps
// sessions until they are deleted.
func NewAnswerCacheAdapter(c domain.Cache, ttl time.Duration) domain.AnswerRepository {
	return &AnswerCacheAdapter{cache: c, ttl: ttl}
}

func (a *AnswerCacheAdapter) SaveAnswer(ctx context.Context, answer *domain.SessionAnswer) error {
	key := cache.SessionAnswersKey(answer.SessionID)
	if err := a.cache.HSet(ctx, key, answer.QuestionID, answer.Letters); err != nil {
		return fmt.Errorf("failed to save answer for question %s: %w", answer.QuestionID, err)
	}
	if a.ttl > 0 {
		if err := a.cache.Expire(ctx, key, a.ttl); err != nil {
			return fmt.Errorf("failed to refresh session expiry: %w", err)
		}
	}
	return nil
}

func (a *AnswerCacheAdapter) GetAnswers(ctx context.Context, sessionID string) (map[string]string, error) {
	answers, err := a.cache.HGetAll(ctx, cache.SessionAnswersKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to get answers for session: %w", err)
	}
	if answers == nil {
		answers = map[string]string{}
	}
	return answers, nil
}

func (a *AnswerCacheAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	if err := a.cache.Delete(ctx, cache.SessionAnswersKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session answers: %w", err)
	}
	return nil
}
