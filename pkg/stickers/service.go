package stickers

import "context"

// Service defines the main interface for the sticker library
type Service interface {
	// Lifecycle operations
	CreateSticker(ctx context.Context, req CreateStickerRequest) (*Sticker, error)
	GetSticker(ctx context.Context, id string) (*Sticker, error)
	UpdateSticker(ctx context.Context, req UpdateStickerRequest) (*Sticker, error)
	SoftDeleteSticker(ctx context.Context, id string) error
	DeleteSticker(ctx context.Context, id string) error
	ListActiveStickers(ctx context.Context) ([]*Sticker, error)

	// Publish merges active stickers with the built-in catalog and uploads
	// the resulting manifest blob, replacing the current manifest
	Publish(ctx context.Context) (*Manifest, error)
}
