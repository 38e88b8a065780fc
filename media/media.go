// Package media uploads note attachments to object storage. The note row
// stores only the URL the storage hands back.
package media

import (
	"context"
	"io"
)

type Storage interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// Discard accepts uploads and throws them away. Used in tests and when no
// object storage is configured.
type Discard struct{}

func (Discard) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	_, err := io.Copy(io.Discard, body)
	if err != nil {
		return "", err
	}
	return "", nil
}
