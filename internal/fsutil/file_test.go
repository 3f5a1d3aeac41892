package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.json")

	if err := WriteFile(context.Background(), path, []byte(`{}`)); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("content = %q", data)
	}
}

func TestCleanDir_RemovesOnlyMatchingExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ad_01.mp4", "ad_02.WEBM", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := CleanDir(dir, []string{".mp4", ".webm"}); err != nil {
		t.Fatalf("CleanDir failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 || names[0] != "notes.txt" || names[1] != "sub" {
		t.Errorf("surviving entries = %v, want [notes.txt sub]", names)
	}
}

func TestCleanDir_EmptyFilterRemovesAllFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ad_01.json"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := CleanDir(dir, nil); err != nil {
		t.Fatalf("CleanDir failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dir not emptied: %d entries left", len(entries))
	}
}

func TestCleanDir_MissingDirIsNotAnError(t *testing.T) {
	if err := CleanDir(filepath.Join(t.TempDir(), "nope"), nil); err != nil {
		t.Errorf("CleanDir on missing dir = %v, want nil", err)
	}
}
