package stickers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultManifestKey is the well-known blob key of the current manifest.
const DefaultManifestKey = "stickers.json"

// service implements the Service interface
type service struct {
	repository  Repository
	blobStore   BlobStore
	eventSink   EventSink
	catalog     []ManifestEntry
	manifestKey string
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the metadata repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore sets the blob storage backend for the service
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.blobStore = store
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// WithCatalog sets the built-in catalog merged into every published
// manifest. The slice is used as-is and must not be mutated afterwards.
func WithCatalog(entries []ManifestEntry) Option {
	return func(s *service) {
		s.catalog = entries
	}
}

// WithManifestKey overrides the blob key the manifest is published under
func WithManifestKey(key string) Option {
	return func(s *service) {
		s.manifestKey = key
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		manifestKey: DefaultManifestKey,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.blobStore == nil {
		return nil, fmt.Errorf("blob store is required")
	}

	return s, nil
}

// Lifecycle operations

func (s *service) CreateSticker(ctx context.Context, req CreateStickerRequest) (*Sticker, error) {
	if err := validateNameAndKeywords(req.Name, req.Keywords); err != nil {
		return nil, err
	}
	if req.Image == nil {
		return nil, &ValidationError{Field: "image", Reason: "must not be empty"}
	}

	// The blob must exist before the metadata record does, so a persisted
	// record never points at a missing image. A failed metadata write after
	// a successful upload leaves an orphaned blob, which is never
	// referenced and can be reclaimed out of band.
	id := uuid.New().String()
	if err := s.blobStore.Upload(ctx, id, req.Image); err != nil {
		return nil, &StickerError{StickerID: id, Op: "create", Err: err}
	}

	now := time.Now().UTC()
	sticker := &Sticker{
		ID:        id,
		Name:      req.Name,
		Keywords:  req.Keywords,
		ImageURI:  s.blobStore.URL(id),
		State:     StickerStateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateSticker(ctx, sticker); err != nil {
		return nil, &StickerError{StickerID: id, Op: "create", Err: err}
	}

	s.fireEvent(ctx, "sticker created", func(sink EventSink) error {
		return sink.StickerCreated(ctx, sticker)
	})

	return sticker, nil
}

func (s *service) GetSticker(ctx context.Context, id string) (*Sticker, error) {
	sticker, err := s.repository.GetSticker(ctx, id)
	if err != nil {
		return nil, &StickerError{StickerID: id, Op: "get", Err: err}
	}
	return sticker, nil
}

func (s *service) UpdateSticker(ctx context.Context, req UpdateStickerRequest) (*Sticker, error) {
	if err := validateNameAndKeywords(req.Name, req.Keywords); err != nil {
		return nil, err
	}

	sticker, err := s.repository.GetSticker(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Name and keywords only; id, image URI and state are immutable here.
	sticker.Name = req.Name
	sticker.Keywords = req.Keywords
	sticker.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateSticker(ctx, sticker); err != nil {
		return nil, &StickerError{StickerID: req.ID, Op: "update", Err: err}
	}

	s.fireEvent(ctx, "sticker updated", func(sink EventSink) error {
		return sink.StickerUpdated(ctx, sticker)
	})

	return sticker, nil
}

func (s *service) SoftDeleteSticker(ctx context.Context, id string) error {
	sticker, err := s.repository.GetSticker(ctx, id)
	if err != nil {
		return err
	}

	// Idempotent: soft deleting an already soft-deleted sticker succeeds.
	if sticker.State == StickerStateSoftDeleted {
		return nil
	}

	sticker.State = StickerStateSoftDeleted
	sticker.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateSticker(ctx, sticker); err != nil {
		return &StickerError{StickerID: id, Op: "soft_delete", Err: err}
	}

	s.fireEvent(ctx, "sticker soft deleted", func(sink EventSink) error {
		return sink.StickerUpdated(ctx, sticker)
	})

	return nil
}

func (s *service) DeleteSticker(ctx context.Context, id string) error {
	// The blob is intentionally retained; only the metadata record goes.
	if err := s.repository.DeleteSticker(ctx, id); err != nil {
		return &StickerError{StickerID: id, Op: "delete", Err: err}
	}

	s.fireEvent(ctx, "sticker deleted", func(sink EventSink) error {
		return sink.StickerDeleted(ctx, id)
	})

	return nil
}

func (s *service) ListActiveStickers(ctx context.Context) ([]*Sticker, error) {
	all, err := s.repository.ListStickers(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*Sticker, 0, len(all))
	for _, sticker := range all {
		if sticker.State == StickerStateActive {
			active = append(active, sticker)
		}
	}
	return active, nil
}

func (s *service) fireEvent(ctx context.Context, event string, fire func(EventSink) error) {
	if s.eventSink == nil {
		return
	}
	if err := fire(s.eventSink); err != nil {
		slog.Error("event sink failed", "event", event, "error", err)
	}
}

func validateNameAndKeywords(name string, keywords []string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(keywords) == 0 {
		return &ValidationError{Field: "keywords", Reason: "must not be empty"}
	}
	for _, keyword := range keywords {
		if strings.TrimSpace(keyword) == "" {
			return &ValidationError{Field: "keywords", Reason: "must not contain empty entries"}
		}
	}
	return nil
}
