// Package ytcomments collects, labels, and exports YouTube comments for a
// set of channels.
//
// Overview
//
// The pipeline per channel is linear: resolve the channel identifier,
// enumerate its uploads, fetch up to a bounded number of top-level comments
// per video, label each comment (language, sentiment, nature-alignment),
// and write per-channel CSV and Excel artifacts.
//
// Quick Start
//
// Collect one channel:
//
//	ctx := context.Background()
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	collector, err := ytcomments.NewCollector(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := collector.CollectChannel(ctx, ytcomments.ChannelRequest{
//		Name: "https://www.youtube.com/@somechannel",
//	})
//
// Batch mode reads a channel registry file and isolates failures per
// channel:
//
//	registry, err := storage.LoadRegistry("channels.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	reports := collector.CollectAll(ctx, registry)
//
// Configuration
//
// Configuration loads from a .env file, environment variables, and an
// optional ytcomments.json config file. The API credential is required:
//
//   - YOUTUBE_API_KEY (also YOUTUBE_APIKEY, YT_API_KEY): Data API credential
//   - YTCOMMENTS_PER_VIDEO: per-video comment cap (100-500)
//   - YTCOMMENTS_MAX_VIDEOS: maximum videos per channel (0 = all)
//   - YTCOMMENTS_OUTPUT_DIR: artifact directory
//   - YTCOMMENTS_CHANNELS_FILE: registry file for batch runs
//   - YTCOMMENTS_REQUESTS_PER_SECOND: API pacing
//   - YTCOMMENTS_MAX_RETRIES, YTCOMMENTS_INITIAL_BACKOFF,
//     YTCOMMENTS_MAX_BACKOFF: retry schedule
//
// Error Handling
//
// All operations return errors supporting errors.Is / errors.As:
//
//	if errors.Is(err, ytcomments.ErrChannelNotResolved) {
//		fmt.Println("no resolution strategy matched")
//	}
//
//	var fetchErr *ytcomments.FetchError
//	if errors.As(err, &fetchErr) {
//		fmt.Printf("%s %s failed: %v\n", fetchErr.Op, fetchErr.ID, fetchErr.Err)
//	}
//
// Sub-packages:
//
//   - youtube: channel resolution, video enumeration, comment fetching
//   - label: text cleaning and labeling
//   - export: CSV and Excel artifacts
//   - storage: channel registry persistence
//   - config: configuration management
//   - retry: exponential backoff
package ytcomments
