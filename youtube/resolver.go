package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	channelIDPattern = regexp.MustCompile(`(?i)youtube\.com/channel/(UC[0-9A-Za-z_-]{20,})`)
	handlePattern    = regexp.MustCompile(`(?i)youtube\.com/(@[^/?#]+)`)
)

// ResolveChannelID turns a human-supplied identifier into a canonical
// channel ID. Strategies are tried in priority order: a canonical-ID token
// embedded in the input, then a handle lookup, then a free-text channel
// search. A strategy that yields nothing falls through to the next;
// exhausting all of them returns ErrChannelNotResolved.
func (c *Client) ResolveChannelID(ctx context.Context, input string) (string, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", ErrMissingChannel
	}

	if id := extractChannelID(raw); id != "" {
		return id, nil
	}

	if handle := extractHandle(raw); handle != "" {
		id, err := c.resolveHandle(ctx, handle)
		if err != nil {
			return "", &FetchError{Op: "resolve", ID: raw, Err: err}
		}
		if id != "" {
			return id, nil
		}
	}

	id, err := c.searchChannel(ctx, raw)
	if err != nil {
		return "", &FetchError{Op: "resolve", ID: raw, Err: err}
	}
	if id != "" {
		return id, nil
	}

	return "", fmt.Errorf("%w: %q", ErrChannelNotResolved, input)
}

// extractChannelID pulls a canonical UC… ID out of a channel URL, or
// accepts a bare string already shaped like one.
func extractChannelID(raw string) string {
	if m := channelIDPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if strings.HasPrefix(raw, "UC") && len(raw) >= 20 && !strings.ContainsAny(raw, " /?#") {
		return raw
	}
	return ""
}

// extractHandle pulls an @handle out of a channel URL or bare input.
func extractHandle(raw string) string {
	if m := handlePattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if strings.HasPrefix(raw, "@") && len(raw) > 1 {
		return raw
	}
	return ""
}

// resolveHandle looks a handle up via channels.list forHandle. An empty
// result is not an error; the caller falls through to search.
func (c *Client) resolveHandle(ctx context.Context, handle string) (string, error) {
	h := strings.TrimSpace(strings.TrimPrefix(handle, "@"))
	if h == "" {
		return "", nil
	}

	var id string
	err := c.execute(ctx, func(ctx context.Context) error {
		resp, err := c.service.Channels.List([]string{"id"}).
			ForHandle(h).
			MaxResults(1).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		if len(resp.Items) > 0 {
			id = strings.TrimSpace(resp.Items[0].Id)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// searchChannel runs a free-text search restricted to channels and takes
// the first hit.
func (c *Client) searchChannel(ctx context.Context, query string) (string, error) {
	var id string
	err := c.execute(ctx, func(ctx context.Context) error {
		resp, err := c.service.Search.List([]string{"id"}).
			Q(query).
			Type("channel").
			MaxResults(1).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		if len(resp.Items) > 0 && resp.Items[0].Id != nil {
			id = strings.TrimSpace(resp.Items[0].Id.ChannelId)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
