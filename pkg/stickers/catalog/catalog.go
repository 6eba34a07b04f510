// Package catalog holds the built-in sticker catalog: a fixed set of
// externally hosted stickers that is merged into every published manifest
// alongside the user-managed set.
package catalog

import "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"

// Entries returns a copy of the built-in catalog, in publication order.
// Callers may mutate the returned slice freely.
func Entries() []stickers.ManifestEntry {
	out := make([]stickers.ManifestEntry, len(entries))
	copy(out, entries)
	for i := range out {
		out[i].Keywords = append([]string(nil), entries[i].Keywords...)
	}
	return out
}

// Len returns the number of built-in catalog entries.
func Len() int {
	return len(entries)
}
