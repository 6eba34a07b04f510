package catalog_test

import (
	"strings"
	"testing"

	"github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries(t *testing.T) {
	entries := catalog.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, catalog.Len(), len(entries))

	t.Run("entries are well formed", func(t *testing.T) {
		seen := make(map[string]bool, len(entries))
		for _, entry := range entries {
			assert.NotEmpty(t, entry.Name)
			assert.NotEmpty(t, entry.Keywords)
			assert.True(t, strings.HasPrefix(entry.ImageURI, "https://"))
			assert.False(t, seen[entry.Name], "duplicate name %q", entry.Name)
			seen[entry.Name] = true
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		entries := catalog.Entries()
		original := entries[0].Name
		entries[0].Name = "mutated"

		fresh := catalog.Entries()
		assert.Equal(t, original, fresh[0].Name)
	})

	t.Run("order is stable", func(t *testing.T) {
		assert.Equal(t, catalog.Entries(), catalog.Entries())
	})
}
