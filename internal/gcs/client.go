package gcs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultListBase   = "https://storage.googleapis.com/storage/v1/b"
	defaultObjectBase = "https://storage.googleapis.com"

	listFields = "items(name,contentType),nextPageToken"
)

// Object describes one blob returned by a list call.
type Object struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
}

type listResponse struct {
	Items         []Object `json:"items"`
	NextPageToken string   `json:"nextPageToken"`
}

// Client reads from a public object-storage bucket.
//
// The bucket must be publicly readable; no credentials are sent. Client
// supports list-by-prefix (paginated) and fetch-by-key, plus streaming
// downloads with progress tracking.
//
// Example usage:
//
//	client := gcs.NewClient("oddlyoptic-portfolio-media")
//
//	objects, err := client.ListAll(ctx, "ai-ads/videos")
//
//	err = client.DownloadFile(ctx, objects[0].Name, "/out/ad_01.mp4", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
type Client struct {
	httpClient *http.Client
	bucket     string
	listBase   string
	objectBase string
	userAgent  string
}

// NewClient creates a Client for the given bucket.
//
// The client is configured with a 60 second timeout and the default
// public storage endpoints.
func NewClient(bucket string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		bucket:     bucket,
		listBase:   defaultListBase,
		objectBase: defaultObjectBase,
		userAgent:  "admedia",
	}
}

// SetEndpoints overrides the list and object endpoints. Used by tests and
// by deployments fronted by a proxy.
func (c *Client) SetEndpoints(listBase, objectBase string) {
	c.listBase = strings.TrimRight(listBase, "/")
	c.objectBase = strings.TrimRight(objectBase, "/")
}

// ObjectURL returns the public fetch URL for a blob key.
//
// Each path segment is URL-encoded individually so keys containing
// spaces or reserved characters stay addressable.
func (c *Client) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.objectBase, c.bucket, encodeKey(key))
}

// ListAll lists every object under the given prefix, following
// nextPageToken until the listing is exhausted.
func (c *Client) ListAll(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	pageToken := ""

	for {
		u, err := url.Parse(fmt.Sprintf("%s/%s/o", c.listBase, c.bucket))
		if err != nil {
			return nil, err
		}
		q := u.Query()
		q.Set("prefix", prefix)
		q.Set("fields", listFields)
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		u.RawQuery = q.Encode()

		page, err := c.listPage(ctx, u.String())
		if err != nil {
			return nil, err
		}

		objects = append(objects, page.Items...)
		if page.NextPageToken == "" {
			return objects, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) listPage(ctx context.Context, listURL string) (*listResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list failed: HTTP %d", resp.StatusCode)
	}

	var page listResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return &page, nil
}

// Fetch returns the raw bytes of a blob.
//
// Use this for small objects like metadata JSON. For videos, use
// DownloadFile to stream directly to disk.
func (c *Client) Fetch(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ObjectURL(key), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, key)
	}

	return io.ReadAll(resp.Body)
}

// FetchJSON fetches a blob and unmarshals it into v.
func (c *Client) FetchJSON(ctx context.Context, key string, v any) error {
	data, err := c.Fetch(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// ObjectSize returns the size of a blob via a HEAD request.
//
// Returns an error if the server does not report a Content-Length.
func (c *Client) ObjectSize(ctx context.Context, key string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.ObjectURL(key), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d for %s", resp.StatusCode, key)
	}
	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("no Content-Length for %s", key)
	}
	return resp.ContentLength, nil
}

// DownloadFile streams a blob to destPath, creating parent directories as
// needed. onProgress, when non-nil, receives (bytesWritten, totalBytes)
// after each write; total is -1 when the server omits Content-Length.
func (c *Client) DownloadFile(ctx context.Context, key, destPath string, onProgress func(written, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ObjectURL(key), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d downloading %s", resp.StatusCode, key)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}
	file, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	_, err = io.Copy(writer, resp.Body)
	return err
}

// ProgressWriter wraps a writer to track download progress.
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with (written, total).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// encodeKey URL-encodes each path segment of a blob key.
func encodeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
