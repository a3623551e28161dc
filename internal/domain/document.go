package domain

import (
	"context"
	"time"
)

// DocumentSource supplies the raw exam-dump text. The version changes whenever
// the content does (a file's modification time, for instance).
type DocumentSource interface {
	// Version returns the current version without reading the content.
	Version(ctx context.Context) (time.Time, error)
	Load(ctx context.Context) (content string, version time.Time, err error)
}
