// Package stickers provides a library for managing a curated set of sticker
// image assets with pluggable metadata repository and blob storage backends.
//
// It exposes a single Service interface that orchestrates the sticker
// lifecycle (create, edit, soft delete, hard delete, listing) and the
// publish pipeline that merges user-managed stickers with the built-in
// catalog into a single client-consumable manifest blob. Implementations of
// repositories (memory, Postgres) and blob stores (memory, filesystem, S3)
// are provided under subpackages.
//
// Lifecycle
//
// A sticker is Active from creation until it is soft deleted. Soft-deleted
// stickers keep their metadata record and blob but are excluded from
// listings and from published manifests. Hard deletion removes the metadata
// record permanently; the underlying blob is intentionally left in place and
// can be reclaimed out of band.
package stickers
