package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"
)

// Transport is a thin adapter over stickers.Service: request decoding and
// status mapping only, no lifecycle policy. Callers are assumed to be
// authenticated and authorized upstream.

// StickerResponse is the response body for a sticker
type StickerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Keywords  []string  `json:"keywords"`
	ImageURI  string    `json:"image_uri"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStickerRequest is the request body for editing a sticker
type UpdateStickerRequest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// PublishResponse is the response body for a publish run
type PublishResponse struct {
	ManifestEntries int `json:"manifest_entries"`
}

// StickerHandler handles HTTP requests for stickers
type StickerHandler struct {
	service stickers.Service
}

// NewStickerHandler creates a new sticker handler
func NewStickerHandler(service stickers.Service) *StickerHandler {
	return &StickerHandler{service: service}
}

// Routes returns the routes for stickers
func (h *StickerHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateSticker)
	r.Get("/", h.ListActiveStickers)
	r.Get("/{id}", h.GetSticker)
	r.Put("/{id}", h.UpdateSticker)
	r.Delete("/{id}", h.SoftDeleteSticker)
	r.Delete("/{id}/permanent", h.DeleteSticker)
	r.Post("/publish", h.Publish)

	return r
}

// CreateSticker creates a new sticker from a multipart form with fields
// "name", "keywords" (comma separated) and "image" (the file).
func (h *StickerHandler) CreateSticker(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	sticker, err := h.service.CreateSticker(r.Context(), stickers.CreateStickerRequest{
		Name:     r.FormValue("name"),
		Keywords: splitKeywords(r.FormValue("keywords")),
		Image:    file,
	})
	if err != nil {
		h.renderError(w, r, "create sticker", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toStickerResponse(sticker))
}

// GetSticker returns a single sticker by id
func (h *StickerHandler) GetSticker(w http.ResponseWriter, r *http.Request) {
	sticker, err := h.service.GetSticker(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, "get sticker", err)
		return
	}

	render.JSON(w, r, toStickerResponse(sticker))
}

// ListActiveStickers returns all active stickers
func (h *StickerHandler) ListActiveStickers(w http.ResponseWriter, r *http.Request) {
	active, err := h.service.ListActiveStickers(r.Context())
	if err != nil {
		h.renderError(w, r, "list stickers", err)
		return
	}

	resp := make([]StickerResponse, 0, len(active))
	for _, sticker := range active {
		resp = append(resp, toStickerResponse(sticker))
	}
	render.JSON(w, r, resp)
}

// UpdateSticker replaces a sticker's name and keywords
func (h *StickerHandler) UpdateSticker(w http.ResponseWriter, r *http.Request) {
	var req UpdateStickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sticker, err := h.service.UpdateSticker(r.Context(), stickers.UpdateStickerRequest{
		ID:       chi.URLParam(r, "id"),
		Name:     req.Name,
		Keywords: req.Keywords,
	})
	if err != nil {
		h.renderError(w, r, "update sticker", err)
		return
	}

	render.JSON(w, r, toStickerResponse(sticker))
}

// SoftDeleteSticker soft deletes a sticker, hiding it from listings and
// future manifests
func (h *StickerHandler) SoftDeleteSticker(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SoftDeleteSticker(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "soft delete sticker", err)
		return
	}

	render.JSON(w, r, map[string]string{"status": "soft_deleted"})
}

// DeleteSticker permanently removes a sticker's metadata record
func (h *StickerHandler) DeleteSticker(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSticker(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "delete sticker", err)
		return
	}

	render.JSON(w, r, map[string]string{"status": "deleted"})
}

// Publish merges active stickers with the built-in catalog and uploads the
// manifest blob
func (h *StickerHandler) Publish(w http.ResponseWriter, r *http.Request) {
	manifest, err := h.service.Publish(r.Context())
	if err != nil {
		h.renderError(w, r, "publish", err)
		return
	}

	render.JSON(w, r, PublishResponse{ManifestEntries: len(manifest.Images)})
}

func (h *StickerHandler) renderError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, stickers.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, stickers.ErrStickerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, stickers.ErrPublishFailed), errors.Is(err, stickers.ErrStorageUnavailable):
		slog.Error("storage failure", "op", op, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		slog.Error("request failed", "op", op, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toStickerResponse(s *stickers.Sticker) StickerResponse {
	return StickerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Keywords:  s.Keywords,
		ImageURI:  s.ImageURI,
		State:     string(s.State),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
