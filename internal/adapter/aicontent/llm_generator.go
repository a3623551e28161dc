// Package aicontent generates explanation and theory texts for exam questions
// through langchaingo models.
package aicontent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"quiz-dump/internal/config"
	"quiz-dump/internal/domain"
	"quiz-dump/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Model is the subset of a langchaingo LLM the generator needs.
type Model interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// LLMGenerator implements domain.ContentGenerator. It holds one model per API
// key and moves to the next key when the provider rate limits the current one.
type LLMGenerator struct {
	models      []Model
	temperature float64
	maxAttempts int

	mu      sync.Mutex
	current int
}

// NewLLMGenerator builds a generator over pre-built models. maxAttempts <= 0
// selects min(len(models)+2, 6).
func NewLLMGenerator(models []Model, temperature float64, maxAttempts int) (*LLMGenerator, error) {
	if len(models) == 0 {
		return nil, errors.New("at least one LLM model is required")
	}
	if maxAttempts <= 0 {
		maxAttempts = min(len(models)+2, 6)
	}
	return &LLMGenerator{
		models:      models,
		temperature: temperature,
		maxAttempts: maxAttempts,
	}, nil
}

// NewFromConfig creates the langchaingo clients described by cfg.
func NewFromConfig(cfg config.LLMConfig) (*LLMGenerator, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	var models []Model
	switch cfg.Provider {
	case "ollama":
		opts := []ollama.Option{
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		models = append(models, llm)
	case "openai", "":
		if len(cfg.APIKeys) == 0 {
			return nil, errors.New("llm.api_keys is empty")
		}
		for i, key := range cfg.APIKeys {
			opts := []openai.Option{
				openai.WithToken(key),
				openai.WithModel(cfg.Model),
				openai.WithHTTPClient(httpClient),
			}
			if cfg.BaseURL != "" {
				opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
			}
			llm, err := openai.New(opts...)
			if err != nil {
				return nil, fmt.Errorf("failed to create openai client for key #%d: %w", i+1, err)
			}
			models = append(models, llm)
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	logger.Get().Info("AI content generator initialized",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.Int("keys", len(models)))

	return NewLLMGenerator(models, cfg.Temperature, cfg.MaxRetries)
}

// Generate implements domain.ContentGenerator.
func (g *LLMGenerator) Generate(ctx context.Context, req domain.ContentRequest) (string, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return "", err
	}

	l := logger.Get().With(
		zap.String("kind", string(req.Kind)),
		zap.String("question_id", req.QuestionID),
		zap.String("language", req.Language))

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		idx, model := g.model()
		text, err := model.Call(ctx, prompt, llms.WithTemperature(g.temperature))
		if err == nil {
			text = cleanResponse(text)
			if text == "" {
				return "", domain.NewLLMServiceError(errors.New("empty response from LLM"))
			}
			l.Debug("AI content generated", zap.Int("attempt", attempt), zap.Int("length", len(text)))
			return text, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return "", domain.NewLLMServiceError(ctx.Err())
		}
		if !isRateLimited(err) {
			l.Error("LLM call failed", zap.Int("attempt", attempt), zap.Error(err))
			return "", domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
		}
		l.Warn("LLM key rate limited, rotating",
			zap.Int("attempt", attempt),
			zap.Int("key_index", idx))
		g.rotate(idx)
	}

	return "", domain.NewLLMServiceError(fmt.Errorf("rate limited after %d attempts: %w", g.maxAttempts, lastErr))
}

func (g *LLMGenerator) model() (int, Model) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current, g.models[g.current]
}

// rotate advances past idx. Concurrent callers that hit the same key rotate once.
func (g *LLMGenerator) rotate(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == idx {
		g.current = (g.current + 1) % len(g.models)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "rate limit")
}

// cleanResponse drops a leading <think>...</think> section some models emit.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "<think>"); start != -1 {
		if end := strings.Index(s, "</think>"); end > start {
			s = s[:start] + s[end+len("</think>"):]
		}
	}
	return strings.TrimSpace(s)
}

var _ domain.ContentGenerator = (*LLMGenerator)(nil)
