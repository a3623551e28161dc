package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/logger"
	"quiz-dump/internal/parser"

	"go.uber.org/zap"
)

// PositionedQuestion pairs a record with its 1-based position in the document.
type PositionedQuestion struct {
	Position int
	Question *domain.Question
}

// QuestionBankService serves the parsed records of the active document.
type QuestionBankService interface {
	Count(ctx context.Context) (int, error)
	// List returns the records in document order, filtered by a case-insensitive
	// search over id, text and options when search is not empty.
	List(ctx context.Context, search string) ([]PositionedQuestion, error)
	// ByPosition returns the record at a 1-based position and the number of
	// records in the same snapshot.
	ByPosition(ctx context.Context, position int) (*domain.Question, int, error)
	// ByID returns the first record carrying id and its position.
	ByID(ctx context.Context, id string) (*domain.Question, int, error)
	// LoadDocument parses an uploaded document. With activate it replaces the
	// bundled document until the process restarts.
	LoadDocument(ctx context.Context, content string, activate bool) ([]domain.Question, error)
}

type questionBank struct {
	source domain.DocumentSource
	parser *parser.Parser

	mu        sync.RWMutex
	questions []domain.Question
	byID      map[string]int
	version   time.Time
	loaded    bool
	uploaded  bool
}

// NewQuestionBankService creates the bank. source may be nil, in which case
// only uploaded documents are served.
func NewQuestionBankService(source domain.DocumentSource, p *parser.Parser) QuestionBankService {
	if p == nil {
		p = parser.New()
	}
	return &questionBank{source: source, parser: p}
}

// snapshot returns the current records, reloading the source when its version
// changed since the last load.
func (b *questionBank) snapshot(ctx context.Context) ([]domain.Question, map[string]int, error) {
	b.mu.RLock()
	questions, byID, loaded, uploaded, version := b.questions, b.byID, b.loaded, b.uploaded, b.version
	b.mu.RUnlock()

	if uploaded || b.source == nil {
		if !loaded {
			return nil, nil, domain.NewDocumentUnavailableError(nil)
		}
		return questions, byID, nil
	}

	current, err := b.source.Version(ctx)
	if err != nil {
		if loaded {
			logger.Get().Warn("Document source unavailable, serving last loaded version", zap.Error(err))
			return questions, byID, nil
		}
		return nil, nil, domain.NewDocumentUnavailableError(err)
	}
	if loaded && current.Equal(version) {
		return questions, byID, nil
	}
	return b.reload(ctx)
}

func (b *questionBank) reload(ctx context.Context) ([]domain.Question, map[string]int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// another request may have reloaded while we waited
	if b.uploaded {
		return b.questions, b.byID, nil
	}

	content, version, err := b.source.Load(ctx)
	if err != nil {
		if b.loaded {
			logger.Get().Warn("Document reload failed, serving last loaded version", zap.Error(err))
			return b.questions, b.byID, nil
		}
		return nil, nil, domain.NewDocumentUnavailableError(err)
	}
	if b.loaded && version.Equal(b.version) {
		return b.questions, b.byID, nil
	}

	questions, err := b.parser.ParseConcurrent(ctx, content)
	if err != nil {
		return nil, nil, err
	}
	b.install(questions, version)
	logger.Get().Info("Document loaded",
		zap.Int("questions", len(questions)),
		zap.Time("version", version))
	return b.questions, b.byID, nil
}

// install replaces the active records. mu must be held for writing.
func (b *questionBank) install(questions []domain.Question, version time.Time) {
	b.questions = questions
	b.byID = indexByID(questions)
	b.version = version
	b.loaded = true
}

// indexByID maps each id to its first position (0-based).
func indexByID(questions []domain.Question) map[string]int {
	idx := make(map[string]int, len(questions))
	for i, q := range questions {
		if _, dup := idx[q.ID]; dup {
			logger.Get().Debug("Duplicate question id, keeping first occurrence", zap.String("id", q.ID))
			continue
		}
		idx[q.ID] = i
	}
	return idx
}

func (b *questionBank) Count(ctx context.Context) (int, error) {
	questions, _, err := b.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return len(questions), nil
}

func (b *questionBank) List(ctx context.Context, search string) ([]PositionedQuestion, error) {
	questions, _, err := b.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]PositionedQuestion, 0, len(questions))
	for i := range questions {
		if needle != "" && !matches(&questions[i], needle) {
			continue
		}
		out = append(out, PositionedQuestion{Position: i + 1, Question: &questions[i]})
	}
	return out, nil
}

func matches(q *domain.Question, needle string) bool {
	if strings.ToLower(q.ID) == needle {
		return true
	}
	if strings.Contains(strings.ToLower(q.Question), needle) {
		return true
	}
	for _, opt := range q.Options {
		if strings.Contains(strings.ToLower(opt), needle) {
			return true
		}
	}
	return false
}

func (b *questionBank) ByPosition(ctx context.Context, position int) (*domain.Question, int, error) {
	questions, _, err := b.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	if position < 1 || position > len(questions) {
		return nil, 0, domain.NewPositionOutOfRangeError(position, len(questions))
	}
	return &questions[position-1], len(questions), nil
}

func (b *questionBank) ByID(ctx context.Context, id string) (*domain.Question, int, error) {
	questions, byID, err := b.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	i, ok := byID[id]
	if !ok {
		return nil, 0, domain.NewQuestionNotFoundError(id)
	}
	return &questions[i], i + 1, nil
}

func (b *questionBank) LoadDocument(ctx context.Context, content string, activate bool) ([]domain.Question, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewInvalidInputError("document is empty")
	}
	questions, err := b.parser.ParseConcurrent(ctx, content)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, domain.NewInternalError("failed to parse document", err)
	}
	if !activate {
		return questions, nil
	}
	if len(questions) == 0 {
		return nil, domain.NewInvalidInputError("document contains no questions")
	}

	b.mu.Lock()
	b.install(questions, time.Now())
	b.uploaded = true
	b.mu.Unlock()

	logger.Get().Info("Uploaded document activated", zap.Int("questions", len(questions)))
	return questions, nil
}
