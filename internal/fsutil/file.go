// Package fsutil provides file system utilities for the admedia tools.
//
// This package contains functions for:
//   - Directory creation
//   - File writing
//   - Extension-filtered directory cleanup
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("gcs-upload/ai-ads/videos")
//	// Creates gcs-upload, gcs-upload/ai-ads, and .../videos if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Parent directories are created
// as needed.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	metadata := []byte(`{"title":"Glow Serum"}`)
//	err := WriteFile(ctx, "video-metadata/ad_01.json", metadata)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CleanDir removes regular files from a directory, keeping subdirectories
// untouched.
//
// When exts is non-empty, only files whose extension (lowercased)
// appears in exts are removed; everything else survives. When exts is
// empty, every regular file in the directory is removed. A missing
// directory is not an error.
//
// This is used by the sync tool to drop stale mirror files before a
// full re-download, so renamed or deleted bucket objects don't linger
// locally.
//
// Example:
//
//	// Remove stale video files but leave README.md alone.
//	err := CleanDir("gcs-upload/ai-ads/videos", []string{".mp4", ".webm", ".mov", ".m4v"})
func CleanDir(dir string, exts []string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if len(exts) > 0 && !hasExt(entry.Name(), exts) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
