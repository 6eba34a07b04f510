package stickers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Publish produces the current manifest and uploads it under the manifest
// key, replacing the previously published manifest in a single write.
//
// The manifest is a pure function of the active sticker snapshot and the
// built-in catalog: the same snapshot always serializes to byte-identical
// output. Any failure before the upload leaves the previous manifest
// untouched; an upload failure is reported as ErrPublishFailed and the
// previous manifest blob remains authoritative.
func (s *service) Publish(ctx context.Context) (*Manifest, error) {
	active, err := s.ListActiveStickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active stickers: %w", err)
	}

	manifest := buildManifest(active, s.catalog)

	data, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	if err := s.blobStore.Upload(ctx, s.manifestKey, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: upload %s: %v", ErrPublishFailed, s.manifestKey, err)
	}

	s.fireEvent(ctx, "manifest published", func(sink EventSink) error {
		return sink.ManifestPublished(ctx, manifest)
	})

	return manifest, nil
}

// buildManifest merges active stickers with the built-in catalog into a
// fresh ordered slice. Entries are compared by exact name; on collision the
// user-managed sticker wins and the built-in entry is dropped. User-managed
// entries come first in snapshot order, then the remaining built-ins in
// catalog order.
func buildManifest(active []*Sticker, catalog []ManifestEntry) *Manifest {
	images := make([]ManifestEntry, 0, len(active)+len(catalog))
	taken := make(map[string]struct{}, len(active))

	for _, sticker := range active {
		images = append(images, ManifestEntry{
			Name:     sticker.Name,
			Keywords: sticker.Keywords,
			ImageURI: sticker.ImageURI,
		})
		taken[sticker.Name] = struct{}{}
	}

	for _, entry := range catalog {
		if _, exists := taken[entry.Name]; exists {
			continue
		}
		images = append(images, entry)
	}

	return &Manifest{Images: images}
}
