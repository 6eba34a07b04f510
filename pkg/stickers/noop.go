package stickers

import "context"

// NoopEventSink is a no-operation implementation of EventSink.
// Useful for production when you don't need event handling or for testing.
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// StickerCreated does nothing and returns nil
func (n *NoopEventSink) StickerCreated(ctx context.Context, sticker *Sticker) error {
	return nil
}

// StickerUpdated does nothing and returns nil
func (n *NoopEventSink) StickerUpdated(ctx context.Context, sticker *Sticker) error {
	return nil
}

// StickerDeleted does nothing and returns nil
func (n *NoopEventSink) StickerDeleted(ctx context.Context, stickerID string) error {
	return nil
}

// ManifestPublished does nothing and returns nil
func (n *NoopEventSink) ManifestPublished(ctx context.Context, manifest *Manifest) error {
	return nil
}
