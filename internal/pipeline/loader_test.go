package pipeline

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

// writeCorpus lays out a projects tree under a temp Claude dir.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, "projects", rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLoad_EmptyRoot(t *testing.T) {
	result, err := Load(filepath.Join(t.TempDir(), "nope"), nil)
	if err != nil {
		t.Fatalf("missing root should yield an empty corpus, got %v", err)
	}
	if result.TotalFiles != 0 || len(result.Sessions) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestLoad_EndToEnd(t *testing.T) {
	// Two projects, one file each. File A has one assistant turn of
	// 500K input + 100K output on sonnet ($3/$15 per MTok) = $3.00.
	// File B has no assistant turns and must stay out of cost aggregation.
	root := writeCorpus(t, map[string]string{
		"proj-a/aaa.jsonl": `{"type":"summary","summary":"expensive work"}
{"type":"assistant","timestamp":"2025-06-01T10:00:00Z","message":{"model":"claude-3-5-sonnet-20241022","usage":{"input_tokens":500000,"output_tokens":100000}}}
`,
		"proj-b/bbb.jsonl": `{"type":"user","timestamp":"2025-06-02T09:00:00Z","text":"just chatting"}
`,
	})

	result, err := Load(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.ParsedFiles != 2 || result.ProjectCount != 2 {
		t.Fatalf("parsed %d files across %d projects, want 2/2", result.ParsedFiles, result.ProjectCount)
	}
	// Zero-turn sessions are retained in the corpus...
	if len(result.Sessions) != 2 {
		t.Fatalf("corpus has %d sessions, want 2", len(result.Sessions))
	}

	// ...but excluded from ranking and totals.
	ranked := Rank(result.Sessions)
	if len(ranked) != 1 {
		t.Fatalf("ranking length = %d, want 1", len(ranked))
	}
	if ranked[0].SessionID != "aaa" {
		t.Errorf("top session = %s, want aaa", ranked[0].SessionID)
	}
	if ranked[0].TotalCost != 3.00 {
		t.Errorf("top session cost = %v, want 3.00", ranked[0].TotalCost)
	}
	if ranked[0].Title != "expensive work" {
		t.Errorf("Title = %q, want %q", ranked[0].Title, "expensive work")
	}

	stats := Overview(result.Sessions)
	if stats.TotalCost != 3.00 {
		t.Errorf("TotalCost = %v, want 3.00", stats.TotalCost)
	}
	if stats.TotalSessions != 2 || stats.CostBearing != 1 {
		t.Errorf("counts = %d/%d, want 2/1", stats.TotalSessions, stats.CostBearing)
	}
}

func TestLoad_ReportsProgress(t *testing.T) {
	root := writeCorpus(t, map[string]string{
		"p/a.jsonl": `{"type":"user","text":"x"}` + "\n",
		"p/b.jsonl": `{"type":"user","text":"y"}` + "\n",
	})

	var calls atomic.Int64
	_, err := Load(root, func(current, total int) {
		if total != 2 {
			t.Errorf("progress total = %d, want 2", total)
		}
		calls.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("progress callback ran %d times, want 2", calls.Load())
	}
}
