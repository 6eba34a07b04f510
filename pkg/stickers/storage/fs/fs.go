package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
)

// Backend is a filesystem implementation of the stickers.BlobStore interface
type Backend struct {
	baseDir   string
	urlPrefix string
}

// Config options for the filesystem backend
type Config struct {
	BaseDir   string // Base directory for storing blobs
	URLPrefix string // Public URL prefix blobs resolve under
}

// New creates a new filesystem storage backend
func New(config Config) (*Backend, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}
	if config.URLPrefix == "" {
		return nil, errors.New("url prefix is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Backend{
		baseDir:   config.BaseDir,
		urlPrefix: strings.TrimSuffix(config.URLPrefix, "/"),
	}, nil
}

// Upload writes content to the filesystem, replacing any existing blob
func (b *Backend) Upload(ctx context.Context, key string, reader io.Reader) error {
	filePath := filepath.Join(b.baseDir, key)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return &stickers.StorageError{Backend: "fs", Key: key, Op: "upload", Err: err}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return &stickers.StorageError{Backend: "fs", Key: key, Op: "upload", Err: err}
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return &stickers.StorageError{Backend: "fs", Key: key, Op: "upload", Err: err}
	}

	return nil
}

// Download opens the blob stored under key
func (b *Backend) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(b.baseDir, key))
	if os.IsNotExist(err) {
		return nil, &stickers.StorageError{Backend: "fs", Key: key, Op: "download", Err: stickers.ErrBlobNotFound}
	} else if err != nil {
		return nil, &stickers.StorageError{Backend: "fs", Key: key, Op: "download", Err: err}
	}

	return file, nil
}

// Delete removes the blob stored under key
func (b *Backend) Delete(ctx context.Context, key string) error {
	filePath := filepath.Join(b.baseDir, key)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return &stickers.StorageError{Backend: "fs", Key: key, Op: "delete", Err: stickers.ErrBlobNotFound}
	}

	if err := os.Remove(filePath); err != nil {
		return &stickers.StorageError{Backend: "fs", Key: key, Op: "delete", Err: err}
	}

	return nil
}

// URL returns the deterministic public URI for key
func (b *Backend) URL(key string) string {
	return fmt.Sprintf("%s/%s", b.urlPrefix, key)
}
