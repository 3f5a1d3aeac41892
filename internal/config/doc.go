// Package config provides configuration management for the admedia
// tools.
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Public bucket oddlyoptic-portfolio-media
//	// Videos mirrored to gcs-upload/ai-ads/videos
//	// Metadata JSON mirrored to public/ai-ads-json
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist
//
// # Configuration Options
//
// Settings covers the bucket and prefixes, local mirror and generator
// directories, concurrency and retry behavior, the optional download
// rate limit, poster generation, and the gallery's reduced-motion
// preference.
package config
