package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
)

// Repository implements stickers.Repository using in-memory storage
type Repository struct {
	mu       sync.RWMutex
	stickers map[string]*stickers.Sticker
}

// New creates a new in-memory repository
func New() stickers.Repository {
	return &Repository{
		stickers: make(map[string]*stickers.Sticker),
	}
}

func (r *Repository) CreateSticker(ctx context.Context, sticker *stickers.Sticker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to avoid external modifications
	r.stickers[sticker.ID] = copySticker(sticker)
	return nil
}

func (r *Repository) GetSticker(ctx context.Context, id string) (*stickers.Sticker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sticker, exists := r.stickers[id]
	if !exists {
		return nil, stickers.ErrStickerNotFound
	}
	return copySticker(sticker), nil
}

func (r *Repository) ListStickers(ctx context.Context) ([]*stickers.Sticker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*stickers.Sticker, 0, len(r.stickers))
	for _, sticker := range r.stickers {
		result = append(result, copySticker(sticker))
	}

	// Stable order for a given store snapshot: oldest first, ID as
	// tiebreaker for identical timestamps.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *Repository) UpdateSticker(ctx context.Context, sticker *stickers.Sticker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stickers[sticker.ID]; !exists {
		return stickers.ErrStickerNotFound
	}

	r.stickers[sticker.ID] = copySticker(sticker)
	return nil
}

func (r *Repository) DeleteSticker(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stickers[id]; !exists {
		return stickers.ErrStickerNotFound
	}

	delete(r.stickers, id)
	return nil
}

func copySticker(s *stickers.Sticker) *stickers.Sticker {
	cp := *s
	cp.Keywords = append([]string(nil), s.Keywords...)
	return &cp
}
