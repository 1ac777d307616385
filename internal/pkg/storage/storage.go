package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded employee documents and receipts live.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
