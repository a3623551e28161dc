package adapter

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"quiz-dump/internal/domain"
)

// FileDocumentSource reads the bundled exam dump from disk and versions it by
// modification time.
type FileDocumentSource struct {
	path string
}

func NewFileDocumentSource(path string) *FileDocumentSource {
	return &FileDocumentSource{path: path}
}

func (s *FileDocumentSource) Path() string {
	return s.path
}

func (s *FileDocumentSource) Version(_ context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat document %s: %w", s.path, err)
	}
	return info.ModTime(), nil
}

func (s *FileDocumentSource) Load(ctx context.Context) (string, time.Time, error) {
	version, err := s.Version(ctx)
	if err != nil {
		return "", time.Time{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read document %s: %w", s.path, err)
	}
	if !utf8.Valid(data) {
		return "", time.Time{}, fmt.Errorf("document %s is not valid UTF-8", s.path)
	}
	return string(data), version, nil
}

var _ domain.DocumentSource = (*FileDocumentSource)(nil)
