package youtube

import (
	"context"
	"log"
)

// playlistPageSize is the page size for uploads playlist listing, the
// maximum the API allows.
const playlistPageSize = 50

// ListChannelVideoIDs enumerates a channel's uploads, newest first as the
// API provides them. maxVideos caps the result; zero means all uploads.
func (c *Client) ListChannelVideoIDs(ctx context.Context, channelID string, maxVideos int) ([]string, error) {
	playlistID, err := c.uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, &FetchError{Op: "videos", ID: channelID, Err: err}
	}

	var ids []string
	pageToken := ""
	for {
		var (
			pageIDs []string
			next    string
		)
		err := c.execute(ctx, func(ctx context.Context) error {
			call := c.service.PlaylistItems.List([]string{"contentDetails"}).
				PlaylistId(playlistID).
				MaxResults(playlistPageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			resp, err := call.Do()
			if err != nil {
				return err
			}
			pageIDs = pageIDs[:0]
			for _, item := range resp.Items {
				if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
					pageIDs = append(pageIDs, item.ContentDetails.VideoId)
				}
			}
			next = resp.NextPageToken
			return nil
		})
		if err != nil {
			return nil, &FetchError{Op: "videos", ID: channelID, Err: err}
		}

		for _, id := range pageIDs {
			ids = append(ids, id)
			if maxVideos > 0 && len(ids) >= maxVideos {
				log.Printf("youtube: channel %s: %d videos (capped)", channelID, len(ids))
				return ids, nil
			}
		}

		if next == "" {
			log.Printf("youtube: channel %s: %d videos", channelID, len(ids))
			return ids, nil
		}
		pageToken = next
	}
}

// uploadsPlaylistID looks up the channel's uploads playlist. A channel
// without one is not usable for enumeration.
func (c *Client) uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	var playlistID string
	err := c.execute(ctx, func(ctx context.Context) error {
		resp, err := c.service.Channels.List([]string{"contentDetails"}).
			Id(channelID).
			MaxResults(1).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		if len(resp.Items) == 0 {
			return ErrChannelNotFound
		}
		details := resp.Items[0].ContentDetails
		if details == nil || details.RelatedPlaylists == nil || details.RelatedPlaylists.Uploads == "" {
			return ErrNoUploads
		}
		playlistID = details.RelatedPlaylists.Uploads
		return nil
	})
	if err != nil {
		return "", err
	}
	return playlistID, nil
}
