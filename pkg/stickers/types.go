package stickers

import "time"

// StickerState is the domain type for sticker lifecycle states.
type StickerState string

// Sticker state constants (typed).
const (
	StickerStateActive      StickerState = "active"
	StickerStateSoftDeleted StickerState = "soft_deleted"
)

// IsValid reports whether the state is one of the known lifecycle states.
func (s StickerState) IsValid() bool {
	switch s {
	case StickerStateActive, StickerStateSoftDeleted:
		return true
	}
	return false
}

// Sticker represents a persisted sticker record.
//
// ID and ImageURI are assigned at creation and never reassigned. The blob
// referenced by ImageURI is uploaded before the record is created, so a
// persisted Sticker always points at an existing blob.
type Sticker struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Keywords  []string     `json:"keywords"`
	ImageURI  string       `json:"image_uri"`
	State     StickerState `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ManifestEntry is the denormalized projection of a sticker for publication.
// It carries no identifier and no state; manifests are read-only snapshots
// for downstream consumers, not a store of record.
//
// The JSON field names are a wire contract with independently deployed
// consumers and must not change.
type ManifestEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	ImageURI string   `json:"imageUri"`
}

// Manifest is the published snapshot of all distributable stickers.
type Manifest struct {
	Images []ManifestEntry `json:"images"`
}
