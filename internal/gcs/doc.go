// Package gcs provides a read-only client for a public Google Cloud
// Storage bucket.
//
// The bucket is treated as a key-value blob store with two operations:
// list-by-prefix (paginated via nextPageToken) and fetch-by-key. No
// authentication is performed; objects must be publicly readable.
//
// # Basic Usage
//
//	client := gcs.NewClient("oddlyoptic-portfolio-media")
//
//	// List every object under a prefix
//	objects, err := client.ListAll(ctx, "ai-ads/videos")
//
//	// Fetch a small object into memory
//	data, err := client.Fetch(ctx, "ai-ads/json/ad_01.json")
//
//	// Stream a large object to disk with progress
//	client.DownloadFile(ctx, name, "/out/ad_01.mp4", func(written, total int64) {
//	    fmt.Printf("%d / %d bytes\n", written, total)
//	})
package gcs
