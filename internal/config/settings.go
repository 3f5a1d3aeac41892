package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Bucket settings
	Bucket      string `json:"bucket"`
	VideoPrefix string `json:"video_prefix"`
	JSONPrefix  string `json:"json_prefix"`

	// Local mirror locations
	VideosDir string `json:"videos_dir"`
	JSONDir   string `json:"json_dir"`

	// Generator locations
	TranscriptsDir string `json:"transcripts_dir"`
	MetadataDir    string `json:"metadata_dir"`

	// Download settings
	MaxConcurrentDownloads    int     `json:"max_concurrent_downloads"`
	DownloadMaxRetries        int     `json:"download_max_retries"`
	DownloadRetryCooldown     float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent     float64 `json:"download_retry_exponent"`
	AllowedFileSizeDifference float64 `json:"allowed_file_size_difference"`

	// DownloadRateLimit caps download throughput in bytes per second.
	// Zero means unlimited.
	DownloadRateLimit int64 `json:"download_rate_limit"`

	// Poster settings
	GeneratePosters bool `json:"generate_posters"`
	PosterMaxSize   int  `json:"poster_max_size"`

	// Gallery settings
	ReducedMotion bool `json:"reduced_motion"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Bucket:      "oddlyoptic-portfolio-media",
		VideoPrefix: "ai-ads/videos",
		JSONPrefix:  "ai-ads/json",

		VideosDir: filepath.Join("gcs-upload", "ai-ads", "videos"),
		JSONDir:   filepath.Join("public", "ai-ads-json"),

		TranscriptsDir: "transcripts",
		MetadataDir:    "video-metadata",

		MaxConcurrentDownloads:    4,
		DownloadMaxRetries:        7,
		DownloadRetryCooldown:     0.2,
		DownloadRetryExponent:     4.0,
		AllowedFileSizeDifference: 0.05,
		DownloadRateLimit:         0,

		GeneratePosters: false,
		PosterMaxSize:   1000,

		ReducedMotion: false,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
