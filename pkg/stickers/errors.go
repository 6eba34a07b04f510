package stickers

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrStickerNotFound indicates a sticker was not found
	ErrStickerNotFound = errors.New("sticker not found")

	// ErrBlobNotFound indicates a blob was not found in storage
	ErrBlobNotFound = errors.New("blob not found")

	// ErrInvalidInput indicates a request failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageUnavailable indicates a metadata or blob store is
	// unreachable or erroring
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrPublishFailed indicates the final manifest upload failed; the
	// previously published manifest remains authoritative
	ErrPublishFailed = errors.New("publish failed")
)

// ValidationError reports which request field failed validation. It
// satisfies errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// StickerError represents an error related to sticker lifecycle operations
type StickerError struct {
	StickerID string
	Op        string
	Err       error
}

func (e *StickerError) Error() string {
	return fmt.Sprintf("sticker operation %s failed for sticker %s: %v", e.Op, e.StickerID, e.Err)
}

func (e *StickerError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to blob storage operations. It
// satisfies errors.Is(err, ErrStorageUnavailable) unless the wrapped error
// is itself a not-found.
type StorageError struct {
	Backend string
	Key     string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets callers match a StorageError against ErrStorageUnavailable without
// inspecting the wrapped cause, while not-found causes stay distinguishable.
func (e *StorageError) Is(target error) bool {
	if target == ErrStorageUnavailable {
		return !errors.Is(e.Err, ErrBlobNotFound)
	}
	return false
}
