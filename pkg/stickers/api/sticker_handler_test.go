package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/api"
	repomemory "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/repo/memory"
	memorystorage "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...stickers.Option) *httptest.Server {
	t.Helper()

	base := []stickers.Option{
		stickers.WithRepository(repomemory.New()),
		stickers.WithBlobStore(memorystorage.New()),
	}
	svc, err := stickers.New(append(base, opts...)...)
	require.NoError(t, err)

	server := httptest.NewServer(api.NewStickerHandler(svc).Routes())
	t.Cleanup(server.Close)
	return server
}

func createStickerRequest(t *testing.T, url, name, keywords string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", name))
	require.NoError(t, writer.WriteField("keywords", keywords))

	part, err := writer.CreateFormFile("image", "sticker.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url+"/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func createTestSticker(t *testing.T, url, name, keywords string) api.StickerResponse {
	t.Helper()

	resp, err := http.DefaultClient.Do(createStickerRequest(t, url, name, keywords))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.StickerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestCreateSticker(t *testing.T) {
	server := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		created := createTestSticker(t, server.URL, "wave", "wave, hello, greeting")

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "wave", created.Name)
		assert.Equal(t, []string{"wave", "hello", "greeting"}, created.Keywords)
		assert.Equal(t, "active", created.State)
		assert.Contains(t, created.ImageURI, created.ID)
	})

	t.Run("missing image file", func(t *testing.T) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("name", "wave"))
		require.NoError(t, writer.WriteField("keywords", "wave"))
		require.NoError(t, writer.Close())

		req, err := http.NewRequest(http.MethodPost, server.URL+"/", &body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing name", func(t *testing.T) {
		resp, err := http.DefaultClient.Do(createStickerRequest(t, server.URL, "", "wave"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not multipart", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetSticker(t *testing.T) {
	server := newTestServer(t)
	created := createTestSticker(t, server.URL, "wave", "wave")

	t.Run("found", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/" + created.ID)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got api.StickerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, created, got)
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/missing")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListActiveStickers(t *testing.T) {
	server := newTestServer(t)

	t.Run("empty store returns empty array", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var listed []api.StickerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
		assert.NotNil(t, listed)
		assert.Empty(t, listed)
	})

	t.Run("soft deleted stickers are hidden", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			createTestSticker(t, server.URL, fmt.Sprintf("sticker-%d", i), "test")
		}
		victim := createTestSticker(t, server.URL, "victim", "test")

		req, err := http.NewRequest(http.MethodDelete, server.URL+"/"+victim.ID, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = http.Get(server.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		var listed []api.StickerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
		require.Len(t, listed, 3)
		for _, s := range listed {
			assert.NotEqual(t, victim.ID, s.ID)
		}
	})
}

func TestUpdateSticker(t *testing.T) {
	server := newTestServer(t)
	created := createTestSticker(t, server.URL, "original", "old")

	t.Run("success", func(t *testing.T) {
		body, err := json.Marshal(api.UpdateStickerRequest{
			Name:     "renamed",
			Keywords: []string{"new", "fresh"},
		})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPut, server.URL+"/"+created.ID, bytes.NewReader(body))
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated api.StickerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, []string{"new", "fresh"}, updated.Keywords)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.ImageURI, updated.ImageURI)
	})

	t.Run("invalid body", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, server.URL+"/"+created.ID, strings.NewReader("not json"))
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		body, err := json.Marshal(api.UpdateStickerRequest{Name: "x", Keywords: []string{"x"}})
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPut, server.URL+"/missing", bytes.NewReader(body))
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("soft delete keeps the record", func(t *testing.T) {
		created := createTestSticker(t, server.URL, "soft-target", "test")

		req, err := http.NewRequest(http.MethodDelete, server.URL+"/"+created.ID, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = http.Get(server.URL + "/" + created.ID)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got api.StickerResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "soft_deleted", got.State)
	})

	t.Run("permanent delete removes the record", func(t *testing.T) {
		created := createTestSticker(t, server.URL, "hard-target", "test")

		req, err := http.NewRequest(http.MethodDelete, server.URL+"/"+created.ID+"/permanent", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = http.Get(server.URL + "/" + created.ID)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete missing sticker", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, server.URL+"/missing", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPublish(t *testing.T) {
	testCatalog := []stickers.ManifestEntry{
		{Name: "builtin", Keywords: []string{"builtin"}, ImageURI: "https://cdn.example.com/builtin.png"},
	}
	server := newTestServer(t, stickers.WithCatalog(testCatalog))

	createTestSticker(t, server.URL, "wave", "wave")

	resp, err := http.Post(server.URL+"/publish", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var published api.PublishResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&published))
	assert.Equal(t, 2, published.ManifestEntries)
}

func TestPublishFailure(t *testing.T) {
	server := newTestServer(t, stickers.WithBlobStore(&rejectingStore{Backend: memorystorage.New()}))

	resp, err := http.Post(server.URL+"/publish", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

// rejectingStore fails every upload, for exercising the error mapping.
type rejectingStore struct {
	*memorystorage.Backend
}

func (s *rejectingStore) Upload(ctx context.Context, key string, reader io.Reader) error {
	return &stickers.StorageError{Backend: "memory", Key: key, Op: "upload", Err: errors.New("write refused")}
}
