package stickers

import (
	"context"
	"io"
)

// BlobStore defines the interface for blob storage backends.
//
// Uploads are idempotent by key: uploading to an existing key overwrites
// the prior content. URL is deterministic for a given key and the backend's
// configured base location.
type BlobStore interface {
	// Upload stores the content under the given key, overwriting any
	// prior content at that key
	Upload(ctx context.Context, key string, reader io.Reader) error

	// Download retrieves the content stored under the given key
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the content stored under the given key
	Delete(ctx context.Context, key string) error

	// URL returns the publicly resolvable URI for the given key
	URL(key string) string
}

// Repository defines the interface for sticker metadata persistence.
//
// ListStickers returns records in every lifecycle state; filtering by state
// is the caller's responsibility so that state policy lives in one place.
// UpdateSticker replaces the full record by ID.
type Repository interface {
	CreateSticker(ctx context.Context, sticker *Sticker) error
	GetSticker(ctx context.Context, id string) (*Sticker, error)
	ListStickers(ctx context.Context) ([]*Sticker, error)
	UpdateSticker(ctx context.Context, sticker *Sticker) error
	DeleteSticker(ctx context.Context, id string) error
}

// EventSink defines the interface for lifecycle event handling. Sink
// failures are logged by the service and never fail the originating
// operation.
type EventSink interface {
	// StickerCreated is fired when a sticker is created
	StickerCreated(ctx context.Context, sticker *Sticker) error

	// StickerUpdated is fired when a sticker is edited or soft deleted
	StickerUpdated(ctx context.Context, sticker *Sticker) error

	// StickerDeleted is fired when a sticker is hard deleted
	StickerDeleted(ctx context.Context, stickerID string) error

	// ManifestPublished is fired after a manifest is uploaded
	ManifestPublished(ctx context.Context, manifest *Manifest) error
}
