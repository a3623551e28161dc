package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quiz-dump/internal/cache"
	"quiz-dump/internal/domain"
	"quiz-dump/internal/dto"
	"quiz-dump/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AIContentService returns generated explanation/theory texts, cached per
// (kind, question, language).
type AIContentService interface {
	Get(ctx context.Context, kind domain.ContentKind, questionID, language string) (*dto.AIContentResponse, error)
	Invalidate(ctx context.Context, kind domain.ContentKind, questionID, language string) error
}

type aiContentService struct {
	bank      QuestionBankService
	generator domain.ContentGenerator
	cache     domain.Cache
	ttl       time.Duration
	group     singleflight.Group
}

// NewAIContentService wires the generator and its response cache. generator
// may be nil when no LLM is configured; cache may be nil to disable caching.
func NewAIContentService(bank QuestionBankService, generator domain.ContentGenerator, c domain.Cache, ttl time.Duration) AIContentService {
	return &aiContentService{
		bank:      bank,
		generator: generator,
		cache:     c,
		ttl:       ttl,
	}
}

func normalizeLanguage(language string) (string, error) {
	if language == "" {
		return domain.DefaultLanguage, nil
	}
	if _, ok := domain.SupportedLanguages[language]; !ok {
		return "", domain.NewInvalidInputError(fmt.Sprintf("unsupported language %q", language))
	}
	return language, nil
}

func (s *aiContentService) Get(ctx context.Context, kind domain.ContentKind, questionID, language string) (*dto.AIContentResponse, error) {
	if !kind.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown content kind %q", kind))
	}
	lang, err := normalizeLanguage(language)
	if err != nil {
		return nil, err
	}
	q, _, err := s.bank.ByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AIContentResponse{QuestionID: q.ID, Kind: string(kind), Language: lang}
	key := cache.AIContentKey(string(kind), q.ID, lang)
	l := logger.Get().With(zap.String("key", key))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			l.Debug("AI content cache hit")
			resp.Content = cached
			resp.Cached = true
			return resp, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			l.Warn("AI content cache read failed, generating", zap.Error(err))
		}
	}

	if s.generator == nil {
		return nil, domain.NewLLMServiceError(errors.New("AI content generation is not configured"))
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		text, err := s.generator.Generate(ctx, domain.ContentRequest{
			Kind:          kind,
			QuestionID:    q.ID,
			Question:      q.Question,
			Options:       q.OptionsText(),
			CorrectAnswer: q.CorrectAnswer,
			Language:      lang,
		})
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
				l.Warn("Failed to cache AI content", zap.Error(err))
			}
		}
		return text, nil
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewLLMServiceError(err)
	}
	if shared {
		l.Debug("AI content generation shared with a concurrent request")
	}

	resp.Content = v.(string)
	return resp, nil
}

func (s *aiContentService) Invalidate(ctx context.Context, kind domain.ContentKind, questionID, language string) error {
	if !kind.Valid() {
		return domain.NewInvalidInputError(fmt.Sprintf("unknown content kind %q", kind))
	}
	lang, err := normalizeLanguage(language)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, cache.AIContentKey(string(kind), questionID, lang)); err != nil {
		return domain.NewInternalError("failed to invalidate AI content", err)
	}
	return nil
}
