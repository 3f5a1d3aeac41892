// Package generate builds metadata JSON records from ad transcripts.
//
// Each transcripts/<base>.txt becomes video-metadata/<base>.json with
// the classified title, tags, blurb, description, and the normalized
// transcript itself. The output files are what gets uploaded under the
// bucket's JSON prefix and later merged into the seed projects.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oddlyoptic/admedia/internal/classify"
	"github.com/oddlyoptic/admedia/internal/fsutil"
)

// Generator runs the transcript-to-metadata batch.
type Generator struct {
	transcriptsDir string
	metadataDir    string

	onProgress func(message string)
}

// New creates a Generator reading from transcriptsDir and writing JSON
// records into metadataDir.
func New(transcriptsDir, metadataDir string, onProgress func(message string)) *Generator {
	return &Generator{
		transcriptsDir: transcriptsDir,
		metadataDir:    metadataDir,
		onProgress:     onProgress,
	}
}

// Run processes every *.txt transcript, or only the named bases when
// bases is non-empty. It returns the number of records written.
//
// A missing transcripts directory is not an error; it just yields zero
// records.
func (g *Generator) Run(ctx context.Context, bases []string) (int, error) {
	if err := fsutil.EnsureDir(g.metadataDir); err != nil {
		return 0, err
	}

	items, err := g.listTranscripts(bases)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		g.progress(fmt.Sprintf("No transcripts found in %s", g.transcriptsDir))
		return 0, nil
	}

	written := 0
	for _, base := range items {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(g.transcriptsDir, base+".txt")
		raw, err := os.ReadFile(path)
		if err != nil {
			return written, fmt.Errorf("read %s: %w", path, err)
		}

		record := classify.Classify(base, normalize(string(raw)))
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return written, err
		}

		out := filepath.Join(g.metadataDir, base+".json")
		if err := fsutil.WriteFile(ctx, out, data); err != nil {
			return written, err
		}
		written++
		g.progress(fmt.Sprintf("Wrote %s", out))
	}
	return written, nil
}

// listTranscripts returns the base names of transcript files, filtered
// by the optional allow-list of exact bases.
func (g *Generator) listTranscripts(bases []string) ([]string, error) {
	entries, err := os.ReadDir(g.transcriptsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	allow := map[string]bool{}
	for _, b := range bases {
		allow[b] = true
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".txt") {
			continue
		}
		base := name[:len(name)-len(".txt")]
		if len(allow) > 0 && !allow[base] {
			continue
		}
		out = append(out, base)
	}
	return out, nil
}

// normalize converts line endings to LF and trims surrounding space.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}

func (g *Generator) progress(message string) {
	if g.onProgress != nil {
		g.onProgress(message)
	}
}
