package youtube

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	yt "google.golang.org/api/youtube/v3"
)

const (
	// MinPerVideoLimit and MaxPerVideoLimit bound the per-video comment cap.
	MinPerVideoLimit = 100
	MaxPerVideoLimit = 500

	// commentPageSize is the largest page the commentThreads API serves.
	commentPageSize = 100
)

// CommentRecord is one top-level comment, flattened for tabular output.
// Records are immutable values; the author identity is stored only as a
// one-way digest.
type CommentRecord struct {
	VideoTitle   string
	CommentText  string
	CommentDate  string // RFC 3339 publish timestamp, verbatim from the API
	LikeCount    int64
	UsernameHash string
}

// FetchTopLevelComments retrieves up to limit top-level comments for one
// video in relevance order. limit must be within [MinPerVideoLimit,
// MaxPerVideoLimit]; out-of-range limits are rejected before any request.
//
// An access error (comments disabled, video gone) terminates retrieval for
// this video only: the records collected so far are returned with a nil
// error and no retry. Transient failures are retried with backoff; any
// other failure is fatal for the video.
func (c *Client) FetchTopLevelComments(ctx context.Context, videoID, videoTitle string, limit int) ([]CommentRecord, error) {
	if limit < MinPerVideoLimit || limit > MaxPerVideoLimit {
		return nil, fmt.Errorf("%w: got %d", ErrLimitOutOfRange, limit)
	}

	var records []CommentRecord
	pageToken := ""
	for len(records) < limit {
		pageSize := limit - len(records)
		if pageSize > commentPageSize {
			pageSize = commentPageSize
		}

		var resp *yt.CommentThreadListResponse
		err := c.execute(ctx, func(ctx context.Context) error {
			call := c.service.CommentThreads.List([]string{"snippet"}).
				VideoId(videoID).
				MaxResults(int64(pageSize)).
				TextFormat("plainText").
				Order("relevance").
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			r, err := call.Do()
			if err != nil {
				return err
			}
			resp = r
			return nil
		})
		if err != nil {
			if IsAccessError(err) {
				log.Printf("youtube: video %s: comments unavailable, keeping %d collected", videoID, len(records))
				return records, nil
			}
			return nil, &FetchError{Op: "comments", ID: videoID, Err: err}
		}

		for _, item := range resp.Items {
			rec, ok := newCommentRecord(videoTitle, item)
			if !ok {
				continue
			}
			records = append(records, rec)
			if len(records) >= limit {
				return records, nil
			}
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}
	return records, nil
}

// FetchCommentsForVideos collects comments for a sequence of videos,
// looking up each video's title first. The limit is validated once before
// any request is issued.
func (c *Client) FetchCommentsForVideos(ctx context.Context, videoIDs []string, limit int) ([]CommentRecord, error) {
	if limit < MinPerVideoLimit || limit > MaxPerVideoLimit {
		return nil, fmt.Errorf("%w: got %d", ErrLimitOutOfRange, limit)
	}

	var all []CommentRecord
	for _, videoID := range videoIDs {
		title, err := c.VideoTitle(ctx, videoID)
		if err != nil {
			return nil, err
		}
		records, err := c.FetchTopLevelComments(ctx, videoID, title, limit)
		if err != nil {
			return nil, err
		}
		log.Printf("youtube: video %s: %d comments", videoID, len(records))
		all = append(all, records...)
	}
	return all, nil
}

// newCommentRecord maps one API comment thread to a flat record. The like
// count is coerced to non-negative; the author display name is replaced by
// its digest.
func newCommentRecord(videoTitle string, item *yt.CommentThread) (CommentRecord, bool) {
	if item == nil || item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
		return CommentRecord{}, false
	}
	snippet := item.Snippet.TopLevelComment.Snippet

	likes := snippet.LikeCount
	if likes < 0 {
		likes = 0
	}

	return CommentRecord{
		VideoTitle:   videoTitle,
		CommentText:  snippet.TextDisplay,
		CommentDate:  snippet.PublishedAt,
		LikeCount:    likes,
		UsernameHash: HashAuthor(snippet.AuthorDisplayName),
	}, true
}

// HashAuthor returns the hex SHA-256 digest of an author display name.
// The digest is deterministic; the plaintext name is never retained.
func HashAuthor(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
