package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oddlyoptic/admedia/internal/config"
	"github.com/oddlyoptic/admedia/internal/tui"
)

func main() {
	var (
		configFlag        = flag.String("config", "", "Path to config file")
		reducedMotionFlag = flag.Bool("reduced-motion", false, "Disable autoplay; playback is gesture-driven")
	)

	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *reducedMotionFlag {
		settings.ReducedMotion = true
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
