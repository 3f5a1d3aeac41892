package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oddlyoptic/admedia/internal/config"
	"github.com/oddlyoptic/admedia/internal/gcs"
	"github.com/oddlyoptic/admedia/internal/syncer"
)

func main() {
	// Command line flags
	var (
		configFlag     = flag.String("config", "", "Path to config file")
		bucketFlag     = flag.String("bucket", "", "Bucket name (overrides config)")
		videosOnlyFlag = flag.Bool("videos-only", false, "Sync only the video prefix")
		jsonOnlyFlag   = flag.Bool("json-only", false, "Sync only the metadata JSON prefix")
		postersFlag    = flag.Bool("posters", false, "Render poster images next to mirrored videos")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *bucketFlag != "" {
		settings.Bucket = *bucketFlag
	}
	if *postersFlag {
		settings.GeneratePosters = true
	}

	// Positional args are base keys to sync, e.g. "ad_02 ad_05".
	bases := flag.Args()

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager := syncer.NewManager(settings, gcs.NewClient(settings.Bucket), func(event syncer.ProgressEvent) {
		if event.Level == syncer.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case syncer.LevelError:
			prefix = "❌ "
		case syncer.LevelWarning:
			prefix = "⚠️  "
		case syncer.LevelSuccess:
			prefix = "✅ "
		case syncer.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎬 admedia sync")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	err := manager.Sync(ctx, syncer.Options{
		VideosOnly: *videosOnlyFlag,
		JSONOnly:   *jsonOnlyFlag,
		Bases:      bases,
	})
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nSync cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during sync: %v\n", err)
		os.Exit(1)
	}

	received, filesDone, filesTotal := manager.Progress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Mirrored %d/%d files (%.2f MB)\n", filesDone, filesTotal, float64(received)/1024/1024)
}
