// Package parser turns exam-dump markdown into question records.
//
// A document is a sequence of blocks separated by a dash line. Every block is
// parsed independently: blocks without a "question <N> discussion" heading
// are dropped, everything else becomes one domain.Question in document order.
// Parsing never fails on malformed content; it degrades by omission.
package parser

import (
	"context"
	"strings"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Parser holds the boundary tokens of one document family. It keeps no state
// between calls and is safe for concurrent use.
type Parser struct {
	opts options
}

// New creates a Parser with the default exam-dump conventions overridden by opts.
func New(opts ...Option) *Parser {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{opts: o}
}

var defaultParser = New()

// Parse parses doc with the default conventions.
func Parse(doc string) []domain.Question {
	return defaultParser.Parse(doc)
}

// Parse returns one record per question block of doc, in document order.
// An empty document yields an empty, non-nil slice.
func (p *Parser) Parse(doc string) []domain.Question {
	blocks := splitBlocks(doc, p.opts.separator)
	questions := make([]domain.Question, 0, len(blocks))
	for _, block := range blocks {
		if q, ok := p.parseBlock(block); ok {
			questions = append(questions, q)
		}
	}
	p.logResult(len(blocks), len(questions))
	return questions
}

// ParseConcurrent parses blocks on up to the configured number of goroutines.
// The result is identical to Parse; only ctx cancellation produces an error.
func (p *Parser) ParseConcurrent(ctx context.Context, doc string) ([]domain.Question, error) {
	blocks := splitBlocks(doc, p.opts.separator)
	results := make([]*domain.Question, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.workers)
	for i, block := range blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if q, ok := p.parseBlock(block); ok {
				results[i] = &q
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(blocks))
	for _, q := range results {
		if q != nil {
			questions = append(questions, *q)
		}
	}
	p.logResult(len(blocks), len(questions))
	return questions, nil
}

func (p *Parser) parseBlock(block string) (domain.Question, bool) {
	lines := strings.Split(block, "\n")
	f, ok := extractFields(block, lines)
	if !ok {
		return domain.Question{}, false
	}

	body, suggested := p.isolateBody(lines, f)
	multi, expected := classify(body)

	return domain.Question{
		ID:                  f.id,
		Topic:               f.topic,
		Question:            body,
		Options:             f.options,
		CorrectAnswer:       f.correctAnswer,
		SuggestedAnswerText: suggested,
		DiscussionLink:      f.discussionLink,
		IsMultiselect:       multi,
		ExpectedCount:       expected,
	}, true
}

func (p *Parser) logResult(blocks, records int) {
	logger.Get().Debug("Parsed exam document",
		zap.Int("blocks", blocks),
		zap.Int("records", records),
		zap.Int("skipped", blocks-records))
}
