package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"ytcomments"
	"ytcomments/config"
	"ytcomments/storage"
	"ytcomments/youtube"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "collect":
		cmdCollect(args)
	case "batch":
		cmdBatch(args)
	case "resolve":
		cmdResolve(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytcomments - YouTube comment collection and labeling

Usage:
  ytcomments collect [flags]      Collect one channel or explicit videos
  ytcomments batch [flags]        Collect every channel in a registry file
  ytcomments resolve <channel>    Print the canonical channel ID
  ytcomments help                 Show this help message

Examples:
  ytcomments collect -channel https://www.youtube.com/@somechannel
  ytcomments collect -channel "Channel Name" -per-video 300 -max-videos 20
  ytcomments collect -name mychannel -videos dQw4w9WgXcQ,abc123def45
  ytcomments batch -channels channels.json -out data
  ytcomments resolve @somechannel

The YouTube API key comes from YOUTUBE_API_KEY (environment or .env file).

For help on a specific command: ytcomments <command> -h
`)
}

// loadConfig loads configuration and applies common flag overrides.
func loadConfig(perVideo, maxVideos int, outDir string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if perVideo > 0 {
		cfg.PerVideoLimit = perVideo
	}
	if maxVideos > 0 {
		cfg.MaxVideos = maxVideos
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func cmdCollect(args []string) {
	fs := flag.NewFlagSet("collect", flag.ExitOnError)
	channel := fs.String("channel", "", "Channel URL, @handle, name, or UC… ID")
	name := fs.String("name", "", "Channel name for output files (defaults to -channel)")
	videos := fs.String("videos", "", "Comma-separated video IDs, bypassing channel enumeration")
	perVideo := fs.Int("per-video", 0, "Top-level comments per video (100-500)")
	maxVideos := fs.Int("max-videos", 0, "Maximum videos to enumerate (0 = all)")
	outDir := fs.String("out", "", "Output directory")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcomments collect [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if *channel == "" && *videos == "" {
		fmt.Fprintf(os.Stderr, "Error: provide -channel or -videos\n")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*perVideo, *maxVideos, *outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	collector, err := ytcomments.NewCollector(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	req := ytcomments.ChannelRequest{Name: *name}
	if req.Name == "" {
		req.Name = *channel
	}
	if *videos != "" {
		for _, id := range strings.Split(*videos, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.VideoIDs = append(req.VideoIDs, id)
			}
		}
	} else if id := *channel; strings.HasPrefix(id, "UC") && !strings.ContainsAny(id, " /?#@") {
		req.ChannelID = id
	}

	result, err := collector.CollectChannel(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting %q: %v\n", req.Name, err)
		os.Exit(1)
	}

	fmt.Printf("Collected %d comments from %d videos\n", result.Comments, result.Videos)
	fmt.Printf("  %s\n  %s\n  %s\n", result.Artifacts.CSV, result.Artifacts.TopCSV, result.Artifacts.Workbook)
}

func cmdBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	channelsFile := fs.String("channels", "", "Channel registry file (default from config)")
	perVideo := fs.Int("per-video", 0, "Top-level comments per video (100-500)")
	maxVideos := fs.Int("max-videos", 0, "Maximum videos per channel (0 = all)")
	outDir := fs.String("out", "", "Output directory")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcomments batch [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	cfg, err := loadConfig(*perVideo, *maxVideos, *outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *channelsFile != "" {
		cfg.ChannelsFile = *channelsFile
	}

	registry, err := storage.LoadRegistry(cfg.ChannelsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading registry: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	collector, err := ytcomments.NewCollector(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reports := collector.CollectAll(ctx, registry)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL\tCOMMENTS\tVIDEOS\tSTATUS")
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\tfailed: %v\n", r.Channel.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\tok\n", r.Channel.Name, r.Result.Comments, r.Result.Videos)
	}
	w.Flush()

	if failed := ytcomments.Failed(reports); len(failed) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d channels failed\n", len(failed), len(reports))
		os.Exit(1)
	}
}

func cmdResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytcomments resolve <channel-url-or-name>\n")
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel identifier\n")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(0, 0, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := youtube.NewClient(ctx, cfg.APIKey, &youtube.ClientOptions{
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	id, err := client.ResolveChannelID(ctx, argv[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving %q: %v\n", argv[0], err)
		os.Exit(1)
	}
	fmt.Println(id)
}
