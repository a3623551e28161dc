package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"quiz-dump/internal/domain"
	"quiz-dump/internal/logger"

	"go.uber.org/zap"
)

type fileCacheEntry struct {
	Value     string            `json:"value,omitempty"`
	Hash      map[string]string `json:"hash,omitempty"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
}

func (e *fileCacheEntry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// FileCacheAdapter implements domain.Cache as a single JSON document on disk.
// It is used when no Redis address is configured. Every write rewrites the
// file through a temp file and rename.
type FileCacheAdapter struct {
	path    string
	mu      sync.Mutex
	entries map[string]*fileCacheEntry
	now     func() time.Time
}

// NewFileCacheAdapter loads path if it exists. A missing file starts an empty
// cache; an unreadable one is logged and replaced on the next write.
func NewFileCacheAdapter(path string) (*FileCacheAdapter, error) {
	if path == "" {
		return nil, errors.New("file cache path is empty")
	}
	f := &FileCacheAdapter{
		path:    path,
		entries: make(map[string]*fileCacheEntry),
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("read cache file %s: %w", path, err)
	}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f.entries); err != nil {
		logger.Get().Warn("Discarding unreadable cache file",
			zap.String("path", path), zap.Error(err))
		f.entries = make(map[string]*fileCacheEntry)
	}
	return f, nil
}

// lookup returns the live entry for key, dropping it if expired. mu must be held.
func (f *FileCacheAdapter) lookup(key string) (*fileCacheEntry, bool) {
	e, ok := f.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(f.now()) {
		delete(f.entries, key)
		return nil, false
	}
	return e, true
}

// persist writes the whole cache. mu must be held.
func (f *FileCacheAdapter) persist() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}

func (f *FileCacheAdapter) expiry(expiration time.Duration) *time.Time {
	if expiration <= 0 {
		return nil
	}
	t := f.now().Add(expiration)
	return &t
}

func (f *FileCacheAdapter) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.lookup(key)
	if !ok || e.Hash != nil {
		return "", domain.ErrCacheMiss
	}
	return e.Value, nil
}

func (f *FileCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = &fileCacheEntry{Value: value, ExpiresAt: f.expiry(expiration)}
	return f.persist()
}

func (f *FileCacheAdapter) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[key]; !ok {
		return nil
	}
	delete(f.entries, key)
	return f.persist()
}

// Ping checks that the cache directory is still reachable.
func (f *FileCacheAdapter) Ping(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(f.path))
	return err
}

func (f *FileCacheAdapter) HGetAll(_ context.Context, key string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string)
	if e, ok := f.lookup(key); ok {
		for k, v := range e.Hash {
			out[k] = v
		}
	}
	return out, nil
}

func (f *FileCacheAdapter) HSet(_ context.Context, key string, field string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.lookup(key)
	if !ok || e.Hash == nil {
		var expiresAt *time.Time
		if ok {
			expiresAt = e.ExpiresAt
		}
		e = &fileCacheEntry{Hash: make(map[string]string), ExpiresAt: expiresAt}
		f.entries[key] = e
	}
	e.Hash[field] = value
	return f.persist()
}

// Expire is a no-op for absent keys, matching Redis.
func (f *FileCacheAdapter) Expire(_ context.Context, key string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.lookup(key)
	if !ok {
		return nil
	}
	if expiration <= 0 {
		delete(f.entries, key)
	} else {
		e.ExpiresAt = f.expiry(expiration)
	}
	return f.persist()
}
