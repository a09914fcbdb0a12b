package report

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/wcvb13/claude-code-costs/internal/model"
)

func makeSessions(n int) []model.SessionSummary {
	start := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	sessions := make([]model.SessionSummary, 0, n)
	for i := 0; i < n; i++ {
		sessions = append(sessions, model.SessionSummary{
			SessionID: fmt.Sprintf("s-%02d", i),
			Project:   "proj",
			Title:     fmt.Sprintf("conversation %d", i),
			TotalCost: float64(i+1) * 0.25,
			Turns:     1,
			StartTime: start,
			EndTime:   start,
		})
	}
	return sessions
}

func TestBuild_CapsRankingAt20(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	data := Build(makeSessions(35), now)

	if len(data.TopSessions) != 20 {
		t.Errorf("TopSessions length = %d, want 20", len(data.TopSessions))
	}
	if len(data.Days) != 30 {
		t.Errorf("Days length = %d, want 30", len(data.Days))
	}
	// Most expensive first.
	if data.TopSessions[0].SessionID != "s-34" {
		t.Errorf("top session = %s, want s-34", data.TopSessions[0].SessionID)
	}
}

func TestBuild_MaxDayCost(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	data := Build(makeSessions(4), now)

	want := 0.25 + 0.5 + 0.75 + 1.0 // all on the same day
	if data.MaxDayCost != want {
		t.Errorf("MaxDayCost = %v, want %v", data.MaxDayCost, want)
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	data := Build(nil, now)

	if len(data.Days) != 30 {
		t.Errorf("Days length = %d, want 30 even for an empty corpus", len(data.Days))
	}
	if data.Overview.AvgCostPerConvo != 0 {
		t.Errorf("AvgCostPerConvo = %v, want 0", data.Overview.AvgCostPerConvo)
	}
}

func TestWrite_ProducesSelfContainedHTML(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	data := Build(makeSessions(3), now)

	path, err := Write(data)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(path)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	html := string(content)
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("report missing doctype")
	}
	if !strings.Contains(html, "conversation 2") {
		t.Error("report missing session titles")
	}
	if strings.Contains(html, "http://") || strings.Contains(html, "https://") {
		t.Error("report must not reference external assets")
	}
}

func TestWrite_EscapesTitles(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	sessions := makeSessions(1)
	sessions[0].Title = `<script>alert("x")</script>`

	path, err := Write(Build(sessions, now))
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(path)

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "<script>alert") {
		t.Error("session title not escaped in report")
	}
}
