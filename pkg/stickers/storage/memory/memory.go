package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
)

const defaultBaseURL = "memory://stickers"

// Backend is an in-memory implementation of the stickers.BlobStore interface
type Backend struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string][]byte
}

// New creates a new in-memory storage backend
func New() *Backend {
	return &Backend{
		baseURL: defaultBaseURL,
		objects: make(map[string][]byte),
	}
}

// Upload stores content in memory, overwriting any prior content at key
func (b *Backend) Upload(ctx context.Context, key string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return &stickers.StorageError{Backend: "memory", Key: key, Op: "upload", Err: err}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[key] = data
	return nil
}

// Download returns the content stored under key
func (b *Backend) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[key]
	if !exists {
		return nil, &stickers.StorageError{Backend: "memory", Key: key, Op: "download", Err: stickers.ErrBlobNotFound}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes the content stored under key
func (b *Backend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.objects[key]; !exists {
		return &stickers.StorageError{Backend: "memory", Key: key, Op: "delete", Err: stickers.ErrBlobNotFound}
	}

	delete(b.objects, key)
	return nil
}

// URL returns the deterministic URI for key
func (b *Backend) URL(key string) string {
	return b.baseURL + "/" + key
}
