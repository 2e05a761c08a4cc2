package media

import (
	"context"
	"errors"
	"io"
)

// Object is a stored media file streamed back to a client.
type Object struct {
	Body          io.ReadCloser
	ContentType   string
	ETag          string
	ContentLength int64
}

var ErrNotFound = errors.New("media object not found")

// Store is the object-store boundary. The production implementation lives
// in internal/storage/s3.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	Get(ctx context.Context, key string) (*Object, error)
}
