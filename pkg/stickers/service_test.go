package stickers_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
	repomemory "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/repo/memory"
	memorystorage "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []stickers.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []stickers.Option{},
			expectError: true,
		},
		{
			name: "repository only should fail",
			options: []stickers.Option{
				stickers.WithRepository(repomemory.New()),
			},
			expectError: true,
		},
		{
			name: "with repository and blob store should succeed",
			options: []stickers.Option{
				stickers.WithRepository(repomemory.New()),
				stickers.WithBlobStore(memorystorage.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := stickers.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T, opts ...stickers.Option) stickers.Service {
	t.Helper()

	options := append([]stickers.Option{
		stickers.WithRepository(repomemory.New()),
		stickers.WithBlobStore(memorystorage.New()),
		stickers.WithEventSink(stickers.NewNoopEventSink()),
	}, opts...)

	svc, err := stickers.New(options...)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc
}

func createTestSticker(t *testing.T, svc stickers.Service, name string, keywords []string) *stickers.Sticker {
	t.Helper()

	sticker, err := svc.CreateSticker(context.Background(), stickers.CreateStickerRequest{
		Name:     name,
		Keywords: keywords,
		Image:    bytes.NewReader([]byte("png bytes for " + name)),
	})
	require.NoError(t, err)
	return sticker
}

func TestCreateSticker(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("valid request", func(t *testing.T) {
		sticker := createTestSticker(t, svc, "thumbs-up", []string{"thumbs", "up"})

		assert.NotEmpty(t, sticker.ID)
		assert.Equal(t, "thumbs-up", sticker.Name)
		assert.Equal(t, []string{"thumbs", "up"}, sticker.Keywords)
		assert.Equal(t, stickers.StickerStateActive, sticker.State)
		assert.NotEmpty(t, sticker.ImageURI)
		assert.Contains(t, sticker.ImageURI, sticker.ID)
		assert.False(t, sticker.CreatedAt.IsZero())
		assert.False(t, sticker.UpdatedAt.IsZero())

		retrieved, err := svc.GetSticker(ctx, sticker.ID)
		require.NoError(t, err)
		assert.Equal(t, sticker, retrieved)
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			sticker := createTestSticker(t, svc, "dup-name", []string{"dup"})
			assert.False(t, seen[sticker.ID])
			seen[sticker.ID] = true
		}
	})

	t.Run("id is canonical lowercase", func(t *testing.T) {
		sticker := createTestSticker(t, svc, "case-check", []string{"case"})
		assert.Equal(t, strings.ToLower(sticker.ID), sticker.ID)
		assert.Len(t, sticker.ID, 36)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.CreateSticker(ctx, stickers.CreateStickerRequest{
			Name:     "   ",
			Keywords: []string{"a"},
			Image:    bytes.NewReader([]byte("data")),
		})
		assert.ErrorIs(t, err, stickers.ErrInvalidInput)
	})

	t.Run("missing keywords", func(t *testing.T) {
		_, err := svc.CreateSticker(ctx, stickers.CreateStickerRequest{
			Name:  "no-keywords",
			Image: bytes.NewReader([]byte("data")),
		})
		assert.ErrorIs(t, err, stickers.ErrInvalidInput)
	})

	t.Run("empty keyword entry", func(t *testing.T) {
		_, err := svc.CreateSticker(ctx, stickers.CreateStickerRequest{
			Name:     "bad-keyword",
			Keywords: []string{"ok", " "},
			Image:    bytes.NewReader([]byte("data")),
		})
		assert.ErrorIs(t, err, stickers.ErrInvalidInput)
	})

	t.Run("missing image", func(t *testing.T) {
		_, err := svc.CreateSticker(ctx, stickers.CreateStickerRequest{
			Name:     "no-image",
			Keywords: []string{"a"},
		})
		assert.ErrorIs(t, err, stickers.ErrInvalidInput)
	})

	t.Run("validation failure leaves no record", func(t *testing.T) {
		fresh := setupTestService(t)
		_, err := fresh.CreateSticker(ctx, stickers.CreateStickerRequest{
			Name: "", Keywords: nil, Image: nil,
		})
		require.Error(t, err)

		active, err := fresh.ListActiveStickers(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})
}

func TestCreateStickerStorageFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("blob upload failure aborts before metadata write", func(t *testing.T) {
		store := &failingUploadStore{Backend: memorystorage.New(), fail: true}
		svc := setupTestService(t, stickers.WithBlobStore(store))

		_, err := svc.CreateSticker(ctx, stickers.CreateStickerRequest{
			Name:     "doomed",
			Keywords: []string{"d"},
			Image:    bytes.NewReader([]byte("data")),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, stickers.ErrStorageUnavailable)

		active, err := svc.ListActiveStickers(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("metadata write failure leaves no record", func(t *testing.T) {
		svc := setupTestService(t, stickers.WithRepository(&createFailRepository{
			Repository: repomemory.New(),
		}))

		_, err := svc.CreateSticker(ctx, stickers.CreateStickerRequest{
			Name:     "orphaned",
			Keywords: []string{"o"},
			Image:    bytes.NewReader([]byte("data")),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, stickers.ErrStorageUnavailable)

		active, err := svc.ListActiveStickers(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})
}

// createFailRepository delegates everything except CreateSticker, which
// always reports the store as unavailable.
type createFailRepository struct {
	stickers.Repository
}

func (r *createFailRepository) CreateSticker(ctx context.Context, sticker *stickers.Sticker) error {
	return stickers.ErrStorageUnavailable
}

func TestUpdateSticker(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("replaces name and keywords only", func(t *testing.T) {
		created := createTestSticker(t, svc, "before", []string{"old"})

		updated, err := svc.UpdateSticker(ctx, stickers.UpdateStickerRequest{
			ID:       created.ID,
			Name:     "after",
			Keywords: []string{"new", "words"},
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "after", updated.Name)
		assert.Equal(t, []string{"new", "words"}, updated.Keywords)
		assert.Equal(t, created.ImageURI, updated.ImageURI)
		assert.Equal(t, created.State, updated.State)
	})

	t.Run("does not resurrect soft-deleted state", func(t *testing.T) {
		created := createTestSticker(t, svc, "zombie", []string{"z"})
		require.NoError(t, svc.SoftDeleteSticker(ctx, created.ID))

		updated, err := svc.UpdateSticker(ctx, stickers.UpdateStickerRequest{
			ID:       created.ID,
			Name:     "still-zombie",
			Keywords: []string{"z"},
		})
		require.NoError(t, err)
		assert.Equal(t, stickers.StickerStateSoftDeleted, updated.State)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.UpdateSticker(ctx, stickers.UpdateStickerRequest{
			ID:       "00000000-0000-0000-0000-000000000000",
			Name:     "ghost",
			Keywords: []string{"g"},
		})
		assert.ErrorIs(t, err, stickers.ErrStickerNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		created := createTestSticker(t, svc, "keeps-name", []string{"k"})
		_, err := svc.UpdateSticker(ctx, stickers.UpdateStickerRequest{
			ID: created.ID, Name: "", Keywords: []string{"k"},
		})
		assert.ErrorIs(t, err, stickers.ErrInvalidInput)

		unchanged, err := svc.GetSticker(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "keeps-name", unchanged.Name)
	})
}

func TestGetSticker(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		created := createTestSticker(t, svc, "lookup", []string{"l"})

		retrieved, err := svc.GetSticker(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, retrieved)
	})

	t.Run("not found carries operation context", func(t *testing.T) {
		_, err := svc.GetSticker(ctx, "missing")
		assert.ErrorIs(t, err, stickers.ErrStickerNotFound)

		var opErr *stickers.StickerError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "get", opErr.Op)
		assert.Equal(t, "missing", opErr.StickerID)
	})
}

func TestSoftDeleteSticker(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("transitions to soft deleted", func(t *testing.T) {
		created := createTestSticker(t, svc, "bye", []string{"b"})

		require.NoError(t, svc.SoftDeleteSticker(ctx, created.ID))

		sticker, err := svc.GetSticker(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, stickers.StickerStateSoftDeleted, sticker.State)
	})

	t.Run("idempotent", func(t *testing.T) {
		created := createTestSticker(t, svc, "bye-twice", []string{"b"})

		require.NoError(t, svc.SoftDeleteSticker(ctx, created.ID))
		require.NoError(t, svc.SoftDeleteSticker(ctx, created.ID))

		sticker, err := svc.GetSticker(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, stickers.StickerStateSoftDeleted, sticker.State)
	})

	t.Run("not found", func(t *testing.T) {
		err := svc.SoftDeleteSticker(ctx, "missing")
		assert.ErrorIs(t, err, stickers.ErrStickerNotFound)
	})
}

func TestDeleteSticker(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("removes the record permanently", func(t *testing.T) {
		created := createTestSticker(t, svc, "gone", []string{"g"})

		require.NoError(t, svc.DeleteSticker(ctx, created.ID))

		_, err := svc.GetSticker(ctx, created.ID)
		assert.ErrorIs(t, err, stickers.ErrStickerNotFound)
	})

	t.Run("not found carries operation context", func(t *testing.T) {
		err := svc.DeleteSticker(ctx, "missing")
		assert.ErrorIs(t, err, stickers.ErrStickerNotFound)

		var opErr *stickers.StickerError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "delete", opErr.Op)
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		created := createTestSticker(t, svc, "gone-twice", []string{"g"})

		require.NoError(t, svc.DeleteSticker(ctx, created.ID))
		assert.ErrorIs(t, svc.DeleteSticker(ctx, created.ID), stickers.ErrStickerNotFound)
	})
}

func TestListActiveStickers(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	a := createTestSticker(t, svc, "alpha", []string{"a"})
	b := createTestSticker(t, svc, "beta", []string{"b"})
	c := createTestSticker(t, svc, "gamma", []string{"c"})

	require.NoError(t, svc.SoftDeleteSticker(ctx, b.ID))

	active, err := svc.ListActiveStickers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)

	ids := []string{active[0].ID, active[1].ID}
	assert.Contains(t, ids, a.ID)
	assert.Contains(t, ids, c.ID)
	for _, sticker := range active {
		assert.Equal(t, stickers.StickerStateActive, sticker.State)
	}
}
