package ports

import (
	"context"
	"io"
)

// BlobStore stores uploaded file content under opaque keys.
// Implemented by the local filesystem and S3 adapters.
type BlobStore interface {
	// Put writes size bytes from r under key, replacing any existing blob.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Get opens the blob stored under key. The caller closes the reader.
	// Returns domain.ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the blob under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
