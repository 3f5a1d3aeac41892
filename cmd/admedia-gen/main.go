package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oddlyoptic/admedia/internal/config"
	"github.com/oddlyoptic/admedia/internal/generate"
)

func main() {
	// Command line flags
	var (
		configFlag      = flag.String("config", "", "Path to config file")
		transcriptsFlag = flag.String("transcripts", "", "Transcripts directory (overrides config)")
		outFlag         = flag.String("out", "", "Metadata output directory (overrides config)")
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
	if *transcriptsFlag != "" {
		settings.TranscriptsDir = *transcriptsFlag
	}
	if *outFlag != "" {
		settings.MetadataDir = *outFlag
	}

	// Positional args are base keys, e.g. "ad_01 ad_04". Empty means all.
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

	generator := generate.New(settings.TranscriptsDir, settings.MetadataDir, func(message string) {
		fmt.Println("   " + message)
	})

	fmt.Println("📝 admedia generate")
	fmt.Println()

	written, err := generator.Run(ctx, bases)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nGeneration cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error generating metadata: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n✨ Wrote %d metadata record(s) to %s\n", written, settings.MetadataDir)
}
