package youtube

import (
	"context"
)

// VideoTitle returns the title of a video, or an empty string if the video
// is unavailable. A single non-paginated request.
func (c *Client) VideoTitle(ctx context.Context, videoID string) (string, error) {
	var title string
	err := c.execute(ctx, func(ctx context.Context) error {
		resp, err := c.service.Videos.List([]string{"snippet"}).
			Id(videoID).
			MaxResults(1).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		if len(resp.Items) > 0 && resp.Items[0].Snippet != nil {
			title = resp.Items[0].Snippet.Title
		}
		return nil
	})
	if err != nil {
		if IsAccessError(err) {
			return "", nil
		}
		return "", &FetchError{Op: "title", ID: videoID, Err: err}
	}
	return title, nil
}
