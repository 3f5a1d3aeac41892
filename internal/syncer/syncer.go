// Package syncer mirrors portfolio media from the public bucket into
// the local repository layout.
//
// Videos land under the configured videos dir and metadata JSON under
// the JSON dir, matching what the site serves. Syncs are resumable:
// files already present at the expected size are skipped, and a full
// unfiltered sync cleans stale files of the managed extensions first.
package syncer

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/oddlyoptic/admedia/internal/config"
	"github.com/oddlyoptic/admedia/internal/fsutil"
	"github.com/oddlyoptic/admedia/internal/gcs"
	"github.com/oddlyoptic/admedia/internal/model"
	"github.com/oddlyoptic/admedia/internal/poster"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a sync progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// allowedExts are the video extensions the mirror manages.
var allowedExts = []string{".mp4", ".webm", ".mov", ".m4v"}

// Store is the bucket surface the syncer needs.
type Store interface {
	ListAll(ctx context.Context, prefix string) ([]gcs.Object, error)
	ObjectSize(ctx context.Context, key string) (int64, error)
	DownloadFile(ctx context.Context, key, destPath string, onProgress func(written, total int64)) error
}

// Options selects what a sync run covers.
type Options struct {
	// VideosOnly skips the metadata JSON prefix.
	VideosOnly bool

	// JSONOnly skips the video prefix.
	JSONOnly bool

	// Bases restricts the video sync to objects whose name (relative
	// to the prefix) starts with one of these keys, e.g. "ad_02".
	// Matching is case-insensitive. An empty list syncs everything.
	Bases []string
}

// Manager coordinates mirror syncs.
type Manager struct {
	settings *config.Settings
	store    Store
	renderer *poster.Renderer
	limiter  *rate.Limiter

	receivedBytes   int64
	downloadedFiles int32
	totalFiles      int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new sync Manager.
//
// When settings carry a download rate limit, transfers are throttled
// to that many bytes per second across all concurrent downloads.
func NewManager(settings *config.Settings, store Store, onProgress func(ProgressEvent)) *Manager {
	m := &Manager{
		settings:   settings,
		store:      store,
		renderer:   poster.NewRenderer(),
		onProgress: onProgress,
	}
	if settings.DownloadRateLimit > 0 {
		burst := int(settings.DownloadRateLimit)
		if burst < 64*1024 {
			burst = 64 * 1024
		}
		m.limiter = rate.NewLimiter(rate.Limit(settings.DownloadRateLimit), burst)
	}
	return m
}

// Progress returns current transfer progress.
func (m *Manager) Progress() (receivedBytes int64, filesDone, filesTotal int32) {
	return atomic.LoadInt64(&m.receivedBytes),
		atomic.LoadInt32(&m.downloadedFiles),
		atomic.LoadInt32(&m.totalFiles)
}

// Sync mirrors the selected prefixes.
//
// A listing failure aborts the run with an error. Individual object
// failures are reported as error events and do not stop the remaining
// downloads.
func (m *Manager) Sync(ctx context.Context, opts Options) error {
	if !opts.JSONOnly {
		if err := m.syncVideos(ctx, opts.Bases); err != nil {
			return err
		}
	}
	if !opts.VideosOnly {
		if err := m.syncJSON(ctx); err != nil {
			return err
		}
	}
	m.progress(ProgressEvent{Message: "Sync complete.", Level: LevelSuccess})
	return nil
}

func (m *Manager) syncVideos(ctx context.Context, bases []string) error {
	if err := fsutil.EnsureDir(m.settings.VideosDir); err != nil {
		return err
	}

	objects, err := m.store.ListAll(ctx, m.settings.VideoPrefix)
	if err != nil {
		return fmt.Errorf("list %s: %w", m.settings.VideoPrefix, err)
	}

	videos := filterVideos(objects, m.settings.VideoPrefix, bases)
	if len(videos) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No video objects found under %s", m.settings.VideoPrefix), Level: LevelInfo})
		return nil
	}

	// A full sync owns the directory; drop stale mirror files so
	// renamed or deleted bucket objects don't linger. A filtered sync
	// touches only what it downloads.
	if len(bases) == 0 {
		if err := fsutil.CleanDir(m.settings.VideosDir, allowedExts); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error cleaning %s: %v", m.settings.VideosDir, err), Level: LevelWarning})
		}
	}

	atomic.AddInt32(&m.totalFiles, int32(len(videos)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	for _, obj := range videos {
		obj := obj // capture
		g.Go(func() error {
			filename := strings.TrimPrefix(obj.Name, m.settings.VideoPrefix+"/")
			dest := filepath.Join(m.settings.VideosDir, filename)

			if err := m.downloadObject(ctx, obj.Name, dest); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", obj.Name, err), Level: LevelError})
				return nil // continue with other objects
			}

			if m.settings.GeneratePosters {
				if err := m.emitPoster(ctx, filename); err != nil {
					m.progress(ProgressEvent{Message: fmt.Sprintf("Error rendering poster for %s: %v", filename, err), Level: LevelWarning})
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (m *Manager) syncJSON(ctx context.Context) error {
	if err := fsutil.EnsureDir(m.settings.JSONDir); err != nil {
		return err
	}

	objects, err := m.store.ListAll(ctx, m.settings.JSONPrefix)
	if err != nil {
		return fmt.Errorf("list %s: %w", m.settings.JSONPrefix, err)
	}

	var jsons []gcs.Object
	for _, obj := range objects {
		if strings.HasSuffix(strings.ToLower(obj.Name), ".json") {
			jsons = append(jsons, obj)
		}
	}
	if len(jsons) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No JSON objects found under %s", m.settings.JSONPrefix), Level: LevelInfo})
		return nil
	}

	if err := fsutil.CleanDir(m.settings.JSONDir, []string{".json"}); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error cleaning %s: %v", m.settings.JSONDir, err), Level: LevelWarning})
	}

	atomic.AddInt32(&m.totalFiles, int32(len(jsons)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	for _, obj := range jsons {
		obj := obj // capture
		g.Go(func() error {
			filename := strings.TrimPrefix(obj.Name, m.settings.JSONPrefix+"/")
			dest := filepath.Join(m.settings.JSONDir, filename)

			if err := m.downloadObject(ctx, obj.Name, dest); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", obj.Name, err), Level: LevelError})
			}
			return nil
		})
	}

	return g.Wait()
}

// downloadObject fetches one blob with skip-existing and retry handling.
func (m *Manager) downloadObject(ctx context.Context, key, dest string) error {
	// Skip files already present at (close to) the expected size.
	if info, err := os.Stat(dest); err == nil {
		expected, err := m.store.ObjectSize(ctx, key)
		if err == nil && expected > 0 {
			sizeDiff := float64(info.Size()-expected) / float64(expected)
			if math.Abs(sizeDiff) <= m.settings.AllowedFileSizeDifference {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(dest)), Level: LevelVerbose})
				atomic.AddInt32(&m.downloadedFiles, 1)
				return nil
			}
		}
	}

	var lastWritten int64
	onProgress := func(written, total int64) {
		delta := written - lastWritten
		lastWritten = written
		atomic.AddInt64(&m.receivedBytes, delta)
		if m.limiter != nil && delta > 0 {
			// Blocking here back-pressures the copy loop.
			_ = m.limiter.WaitN(ctx, int(delta))
		}
	}

	var err error
	for tries := 0; tries < m.settings.DownloadMaxRetries; tries++ {
		lastWritten = 0
		err = m.store.DownloadFile(ctx, key, dest, onProgress)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, key), Level: LevelWarning})
		m.waitForRetry(ctx, tries)
	}
	if err != nil {
		return err
	}

	atomic.AddInt32(&m.downloadedFiles, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", filepath.Base(dest)), Level: LevelVerbose})
	return nil
}

// emitPoster renders card artwork next to a mirrored video.
//
// The poster inherits the seed project's hue and monogram when the
// video's base key matches one; otherwise it gets the neutral palette.
func (m *Manager) emitPoster(ctx context.Context, videoFilename string) error {
	base := model.BaseKey(videoFilename)

	opts := poster.Options{Initials: "AI", ShowText: true}
	for _, p := range model.BuiltinProjects() {
		if p.VideoBase == base {
			opts.Initials = model.Initials(p.Title)
			opts.Hue = float64(p.Hue)
			break
		}
	}

	data, err := m.renderer.Render(ctx, opts)
	if err != nil {
		return err
	}
	if m.settings.PosterMaxSize > 0 && m.settings.PosterMaxSize < poster.Width {
		data, err = m.renderer.Resize(ctx, data, m.settings.PosterMaxSize, m.settings.PosterMaxSize)
		if err != nil {
			return err
		}
	}

	stem := strings.TrimSuffix(videoFilename, filepath.Ext(videoFilename))
	dest := filepath.Join(m.settings.VideosDir, stem+".jpg")
	return fsutil.WriteFile(ctx, dest, data)
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

// filterVideos keeps list entries with a managed video extension, and
// applies the optional base-key allow-list.
func filterVideos(objects []gcs.Object, prefix string, bases []string) []gcs.Object {
	lowered := make([]string, len(bases))
	for i, b := range bases {
		lowered[i] = strings.ToLower(b)
	}

	var out []gcs.Object
	for _, obj := range objects {
		ext := strings.ToLower(filepath.Ext(obj.Name))
		keep := false
		for _, e := range allowedExts {
			if ext == e {
				keep = true
				break
			}
		}
		if !keep {
			continue
		}
		if len(lowered) > 0 {
			name := strings.ToLower(strings.TrimPrefix(obj.Name, prefix+"/"))
			matched := false
			for _, b := range lowered {
				if strings.HasPrefix(name, b) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, obj)
	}
	return out
}
