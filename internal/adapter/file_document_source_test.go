package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDocumentSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.md")
	require.NoError(t, os.WriteFile(path, []byte("## Exam X topic 1 question 1 discussion\n"), 0o644))
	mtime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	src := NewFileDocumentSource(path)
	content, version, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, content, "question 1 discussion")
	assert.True(t, version.Equal(mtime))

	v, err := src.Version(context.Background())
	require.NoError(t, err)
	assert.True(t, v.Equal(mtime))
}

func TestFileDocumentSource_Missing(t *testing.T) {
	src := NewFileDocumentSource(filepath.Join(t.TempDir(), "absent.md"))
	_, _, err := src.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileDocumentSource_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.md")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644))

	_, _, err := NewFileDocumentSource(path).Load(context.Background())
	assert.Error(t, err)
}
