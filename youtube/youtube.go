// Package youtube collects channel, video, and comment data from the
// YouTube Data API v3.
package youtube

import (
	"errors"

	"google.golang.org/api/googleapi"
)

// Sentinel errors for collection operations.
var (
	// ErrMissingAPIKey indicates no API credential was provided.
	ErrMissingAPIKey = errors.New("youtube: missing API key")
	// ErrMissingChannel indicates an empty channel identifier.
	ErrMissingChannel = errors.New("youtube: missing channel identifier")
	// ErrChannelNotResolved indicates no resolution strategy produced a channel ID.
	ErrChannelNotResolved = errors.New("youtube: channel not resolvable")
	// ErrChannelNotFound indicates the channel does not exist.
	ErrChannelNotFound = errors.New("youtube: channel not found")
	// ErrNoUploads indicates the channel has no uploads playlist.
	ErrNoUploads = errors.New("youtube: uploads playlist not available")
	// ErrLimitOutOfRange indicates a per-video comment limit outside [100, 500].
	ErrLimitOutOfRange = errors.New("youtube: per-video limit must be between 100 and 500")
)

// FetchError wraps API errors with context about what was being fetched.
// Use errors.As() to extract it:
//
//	var fetchErr *youtube.FetchError
//	if errors.As(err, &fetchErr) {
//		fmt.Printf("%s %s failed: %v\n", fetchErr.Op, fetchErr.ID, fetchErr.Err)
//	}
type FetchError struct {
	// Op is the operation that failed ("resolve", "videos", "comments", "title").
	Op string
	// ID is the channel or video identifier involved.
	ID string
	// Err is the underlying error.
	Err error
}

func (e *FetchError) Error() string {
	return "youtube: " + e.Op + " " + e.ID + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// statusCode extracts the HTTP status from an API error, or 0.
func statusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

// IsTransient reports whether an API error is worth retrying: rate limiting
// or server-side failures. Everything else, including access errors, is
// permanent.
func IsTransient(err error) bool {
	switch statusCode(err) {
	case 429, 500, 503:
		return true
	}
	return false
}

// IsAccessError reports whether an API error means the resource is
// forbidden or gone (comments disabled, video deleted or private).
func IsAccessError(err error) bool {
	switch statusCode(err) {
	case 403, 404:
		return true
	}
	return false
}
