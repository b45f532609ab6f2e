package youtube

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"ytcomments/retry"
)

// Client wraps the YouTube Data API v3 service with request pacing and
// bounded retry. All calls are sequential: one outstanding request at a
// time, each preceded by a rate-limiter wait.
type Client struct {
	service *yt.Service
	limiter *rate.Limiter
	retry   retry.Config
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// RequestsPerSecond paces outbound API calls. Zero or negative
	// disables pacing.
	RequestsPerSecond float64
	// Retry overrides the default backoff schedule.
	Retry *retry.Config
}

// NewClient creates a Client authenticated with the given API key.
// Extra options are passed through to the underlying service; tests use
// option.WithEndpoint to target a fake server.
func NewClient(ctx context.Context, apiKey string, opts *ClientOptions, extra ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	svcOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, extra...)
	service, err := yt.NewService(ctx, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	c := &Client{
		service: service,
		retry:   retry.DefaultConfig(),
	}
	if opts != nil {
		if opts.RequestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		}
		if opts.Retry != nil {
			c.retry = *opts.Retry
		}
	}
	return c, nil
}

// pace blocks until the rate limiter allows the next request.
func (c *Client) pace(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// execute runs one API call with pacing and transient-error retry.
// The pacing delay applies to every attempt, retries included.
func (c *Client) execute(ctx context.Context, fn func(context.Context) error) error {
	return retry.Do(ctx, c.retry, IsTransient, func(ctx context.Context) error {
		if err := c.pace(ctx); err != nil {
			return err
		}
		return fn(ctx)
	})
}
