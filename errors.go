package ytcomments

import (
	"ytcomments/retry"
	"ytcomments/storage"
	"ytcomments/youtube"
)

// Type aliases for convenient error handling.
type (
	// FetchError wraps errors from API fetch operations.
	FetchError = youtube.FetchError
	// StorageError wraps errors from registry operations.
	StorageError = storage.StorageError
	// ExhaustedError wraps errors that persisted past the retry ceiling.
	ExhaustedError = retry.ExhaustedError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrMissingAPIKey indicates no API credential was provided.
	ErrMissingAPIKey = youtube.ErrMissingAPIKey
	// ErrMissingChannel indicates an empty channel identifier.
	ErrMissingChannel = youtube.ErrMissingChannel
	// ErrChannelNotResolved indicates no resolution strategy produced a channel ID.
	ErrChannelNotResolved = youtube.ErrChannelNotResolved
	// ErrChannelNotFound indicates the channel does not exist.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrNoUploads indicates the channel has no uploads playlist.
	ErrNoUploads = youtube.ErrNoUploads
	// ErrLimitOutOfRange indicates a per-video comment limit outside [100, 500].
	ErrLimitOutOfRange = youtube.ErrLimitOutOfRange

	// ErrNoChannels indicates an empty channel registry.
	ErrNoChannels = storage.ErrNoChannels
	// ErrRegistryCorrupt indicates an unreadable registry file.
	ErrRegistryCorrupt = storage.ErrRegistryCorrupt
)
