package generate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeTranscript(t *testing.T, dir, base, text string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, base+".txt"), []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_WritesClassifiedRecords(t *testing.T) {
	root := t.TempDir()
	transcripts := filepath.Join(root, "transcripts")
	metadata := filepath.Join(root, "video-metadata")
	writeTranscript(t, transcripts, "ad_01", "This foundation blends so easily, no cakey finish.\r\n")

	var messages []string
	g := New(transcripts, metadata, func(m string) { messages = append(messages, m) })

	n, err := g.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("wrote %d records, want 1", n)
	}

	data, err := os.ReadFile(filepath.Join(metadata, "ad_01.json"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}

	var record struct {
		Title      string   `json:"title"`
		Tags       []string `json:"tags"`
		Transcript string   `json:"transcript"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if record.Title != "Makeup — Light, Fast, Effortless" {
		t.Errorf("Title = %q", record.Title)
	}
	if len(record.Tags) == 0 || record.Tags[0] != "Beauty" {
		t.Errorf("Tags = %v, want Beauty first", record.Tags)
	}
	// CRLF normalized, surrounding space trimmed.
	if record.Transcript != "This foundation blends so easily, no cakey finish." {
		t.Errorf("Transcript = %q", record.Transcript)
	}

	if len(messages) != 1 {
		t.Errorf("progress messages = %v, want one Wrote line", messages)
	}
}

func TestRun_BaseFilter(t *testing.T) {
	root := t.TempDir()
	transcripts := filepath.Join(root, "transcripts")
	metadata := filepath.Join(root, "video-metadata")
	writeTranscript(t, transcripts, "ad_01", "makeup")
	writeTranscript(t, transcripts, "ad_02", "spreadsheets")

	g := New(transcripts, metadata, nil)
	n, err := g.Run(context.Background(), []string{"ad_02"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 1 {
		t.Errorf("wrote %d records, want 1", n)
	}

	if _, err := os.Stat(filepath.Join(metadata, "ad_02.json")); err != nil {
		t.Error("filtered base should be written")
	}
	if _, err := os.Stat(filepath.Join(metadata, "ad_01.json")); err == nil {
		t.Error("non-matching base should be skipped")
	}
}

func TestRun_MissingTranscriptsDir(t *testing.T) {
	root := t.TempDir()
	g := New(filepath.Join(root, "nope"), filepath.Join(root, "out"), nil)

	n, err := g.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 0 {
		t.Errorf("wrote %d records, want 0", n)
	}
}

func TestRun_NonTxtFilesIgnored(t *testing.T) {
	root := t.TempDir()
	transcripts := filepath.Join(root, "transcripts")
	metadata := filepath.Join(root, "out")
	writeTranscript(t, transcripts, "ad_01", "makeup")
	if err := os.WriteFile(filepath.Join(transcripts, "notes.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	g := New(transcripts, metadata, nil)
	n, err := g.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 1 {
		t.Errorf("wrote %d records, want 1", n)
	}
}
