package service

import (
	"context"
	"sync"
	"time"

	"quiz-dump/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockAnswerRepository ---
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) SaveAnswer(ctx context.Context, answer *domain.SessionAnswer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetAnswers(ctx context.Context, sessionID string) (map[string]string, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockAnswerRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCache) HSet(ctx context.Context, key string, field string, value string) error {
	args := m.Called(ctx, key, field, value)
	return args.Error(0)
}

func (m *MockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

// --- mockContentGenerator ---
type mockContentGenerator struct {
	mu         sync.Mutex
	calls      int
	requests   []domain.ContentRequest
	GenerateFn func(ctx context.Context, req domain.ContentRequest) (string, error)
}

func (m *mockContentGenerator) Generate(ctx context.Context, req domain.ContentRequest) (string, error) {
	m.mu.Lock()
	m.calls++
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.GenerateFn(ctx, req)
}

func (m *mockContentGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// --- fakeDocumentSource ---
type fakeDocumentSource struct {
	mu        sync.Mutex
	content   string
	version   time.Time
	err       error
	loadCalls int
}

func (f *fakeDocumentSource) set(content string, version time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content, f.version, f.err = content, version, nil
}

func (f *fakeDocumentSource) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeDocumentSource) Version(_ context.Context) (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version, f.err
}

func (f *fakeDocumentSource) Load(_ context.Context) (string, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadCalls++
	return f.content, f.version, f.err
}

var _ domain.AnswerRepository = (*MockAnswerRepository)(nil)
var _ domain.Cache = (*MockCache)(nil)
var _ domain.ContentGenerator = (*mockContentGenerator)(nil)
var _ domain.DocumentSource = (*fakeDocumentSource)(nil)
