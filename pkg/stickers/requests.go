package stickers

import "io"

// Request DTOs

// CreateStickerRequest contains parameters for creating a new sticker.
// Name and Keywords must be non-empty and Image must be non-nil.
type CreateStickerRequest struct {
	Name     string
	Keywords []string
	Image    io.Reader
}

// UpdateStickerRequest contains parameters for editing a sticker. Only the
// name and keywords are replaced; the id, image URI and state of the stored
// record are never touched by an edit.
type UpdateStickerRequest struct {
	ID       string
	Name     string
	Keywords []string
}
