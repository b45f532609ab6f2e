package ytcomments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"ytcomments/config"
	"ytcomments/export"
	"ytcomments/label"
	"ytcomments/storage"
	"ytcomments/youtube"
)

// Collector runs the per-channel pipeline: resolve, enumerate, fetch,
// label, export. It owns the API client and a single reusable Labeler.
type Collector struct {
	Client  *youtube.Client
	Labeler *label.Labeler

	PerVideoLimit int
	MaxVideos     int
	TopLiked      int
	OutputDir     string
}

// NewCollector builds a Collector from loaded configuration.
func NewCollector(ctx context.Context, cfg *config.Config) (*Collector, error) {
	rc := cfg.Retry()
	client, err := youtube.NewClient(ctx, cfg.APIKey, &youtube.ClientOptions{
		RequestsPerSecond: cfg.RequestsPerSecond,
		Retry:             &rc,
	})
	if err != nil {
		return nil, err
	}

	return &Collector{
		Client:        client,
		Labeler:       label.NewLabeler(),
		PerVideoLimit: cfg.PerVideoLimit,
		MaxVideos:     cfg.MaxVideos,
		TopLiked:      cfg.TopLiked,
		OutputDir:     cfg.OutputDir,
	}, nil
}

// ChannelRequest identifies what to collect for one channel. Either
// ChannelID (or a resolvable Name) or an explicit VideoIDs list must be
// set.
type ChannelRequest struct {
	// Name is the human-facing channel name, used for resolution when
	// ChannelID is empty and for artifact file naming.
	Name string
	// ChannelID is the canonical channel ID, skipping resolution if set.
	ChannelID string
	// VideoIDs, when non-empty, bypasses channel enumeration entirely.
	VideoIDs []string
}

// ChannelResult summarizes one collected channel.
type ChannelResult struct {
	// RunID uniquely identifies this collection run.
	RunID string
	// ChannelName is the requested channel name.
	ChannelName string
	// ChannelID is the canonical ID used, empty for explicit video lists.
	ChannelID string
	// Videos is the number of videos comments were fetched for.
	Videos int
	// Comments is the number of records collected.
	Comments int
	// Artifacts lists the files written.
	Artifacts export.Artifacts
}

// CollectChannel runs the full pipeline for one channel. A video whose
// comments are inaccessible contributes whatever was collected before the
// failure; any other per-video failure aborts this channel.
func (c *Collector) CollectChannel(ctx context.Context, req ChannelRequest) (*ChannelResult, error) {
	result := &ChannelResult{
		RunID:       uuid.NewString(),
		ChannelName: req.Name,
		ChannelID:   req.ChannelID,
	}

	videoIDs := req.VideoIDs
	if len(videoIDs) == 0 {
		if result.ChannelID == "" {
			id, err := c.Client.ResolveChannelID(ctx, req.Name)
			if err != nil {
				return nil, err
			}
			log.Printf("collect: resolved %q to %s", req.Name, id)
			result.ChannelID = id
		}

		ids, err := c.Client.ListChannelVideoIDs(ctx, result.ChannelID, c.MaxVideos)
		if err != nil {
			return nil, err
		}
		videoIDs = ids
	}
	if len(videoIDs) == 0 {
		return nil, fmt.Errorf("collect: no videos found for %q", req.Name)
	}

	records, err := c.Client.FetchCommentsForVideos(ctx, videoIDs, c.PerVideoLimit)
	if err != nil {
		return nil, err
	}

	rows := c.labelRecords(records)

	name := req.Name
	if name == "" {
		name = result.ChannelID
	}
	artifacts, err := export.WriteChannel(c.OutputDir, name, rows, c.TopLiked)
	if err != nil {
		return nil, err
	}

	result.Videos = len(videoIDs)
	result.Comments = len(rows)
	result.Artifacts = artifacts
	log.Printf("collect: run %s: %q: %d comments from %d videos -> %s",
		result.RunID, name, result.Comments, result.Videos, artifacts.CSV)
	return result, nil
}

// labelRecords cleans each comment and derives its labels. Labels are
// computed on the cleaned text, which is also what the output table
// carries.
func (c *Collector) labelRecords(records []youtube.CommentRecord) []export.Row {
	rows := make([]export.Row, 0, len(records))
	for _, rec := range records {
		cleaned := label.Clean(rec.CommentText)
		score := c.Labeler.SentimentScore(cleaned)
		rows = append(rows, export.Row{
			VideoTitle:     rec.VideoTitle,
			CommentText:    cleaned,
			CommentDate:    rec.CommentDate,
			LikeCount:      rec.LikeCount,
			Language:       label.Language(cleaned),
			SentimentScore: score,
			SentimentLabel: label.SentimentLabel(score),
			NatureAligned:  label.Alignment(cleaned),
		})
	}
	return rows
}

// ChannelReport pairs a registry entry with its outcome in a batch run.
type ChannelReport struct {
	Channel storage.Channel
	Result  *ChannelResult
	Err     error
}

// CollectAll collects every channel in the registry. One channel's failure
// never aborts its siblings; failures are reported, not propagated. Newly
// resolved channel IDs are written back to the registry so later runs skip
// resolution. Only context cancellation stops the batch early.
func (c *Collector) CollectAll(ctx context.Context, registry *storage.Registry) []ChannelReport {
	reports := make([]ChannelReport, 0, len(registry.Channels))
	updated := false

	for _, ch := range registry.Channels {
		if ctx.Err() != nil {
			reports = append(reports, ChannelReport{Channel: ch, Err: ctx.Err()})
			continue
		}

		result, err := c.CollectChannel(ctx, ChannelRequest{
			Name:      ch.Name,
			ChannelID: ch.ChannelID,
		})
		if err != nil {
			log.Printf("collect: channel %q failed: %v", ch.Name, err)
			reports = append(reports, ChannelReport{Channel: ch, Err: err})
			continue
		}

		if result.ChannelID != "" && result.ChannelID != ch.ChannelID {
			if registry.SetChannelID(ch.Name, result.ChannelID) {
				updated = true
			}
		}
		reports = append(reports, ChannelReport{Channel: ch, Result: result})
	}

	if updated {
		if err := registry.Save(); err != nil {
			log.Printf("collect: saving registry: %v", err)
		}
	}
	return reports
}

// Failed returns the reports that ended in error, excluding context
// cancellation of channels never attempted.
func Failed(reports []ChannelReport) []ChannelReport {
	var failed []ChannelReport
	for _, r := range reports {
		if r.Err != nil && !errors.Is(r.Err, context.Canceled) {
			failed = append(failed, r)
		}
	}
	return failed
}
