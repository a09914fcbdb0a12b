package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanDir_MissingRoot(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing root should not error, got %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty corpus, got %d files", len(files))
	}
}

func TestScanDir_TagsProjectAndSession(t *testing.T) {
	root := t.TempDir()
	projDir := filepath.Join(root, "projects", "-home-me-alpha")
	if err := os.MkdirAll(projDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"abc-123.jsonl", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(projDir, name), []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ScanDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1 (non-jsonl skipped)", len(files))
	}
	if files[0].Project != "-home-me-alpha" {
		t.Errorf("Project = %q, want enclosing dir name", files[0].Project)
	}
	if files[0].SessionID != "abc-123" {
		t.Errorf("SessionID = %q, want abc-123", files[0].SessionID)
	}
}

func TestCountProjects(t *testing.T) {
	files := []DiscoveredFile{
		{Project: "a"}, {Project: "a"}, {Project: "b"},
	}
	if got := CountProjects(files); got != 2 {
		t.Errorf("CountProjects = %d, want 2", got)
	}
}
