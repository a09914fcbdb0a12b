// Package source discovers and parses Claude Code JSONL session files.
package source

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wcvb13/claude-code-costs/internal/config"
	"github.com/wcvb13/claude-code-costs/internal/model"
)

// maxTitleLen caps the resolved display title length in runes.
const maxTitleLen = 100

// ParseResult holds the output of parsing a single JSONL file.
type ParseResult struct {
	Summary model.SessionSummary
	Err     error
}

// titleCandidates accumulates the possible display titles seen during one
// file pass. Candidates are collected in log order and resolved once at
// end of file, so precedence never depends on which line came last.
type titleCandidates struct {
	metaTitle string // metadata thread_summary / summary, highest precedence
	summary   string // free-text summary field
	firstUser string // first user message, captured once, lowest precedence
}

func (tc titleCandidates) resolve() string {
	title := tc.metaTitle
	if title == "" {
		title = tc.summary
	}
	if title == "" {
		title = tc.firstUser
	}
	if title == "" {
		return model.UntitledConversation
	}
	return singleLine(title)
}

// ParseFile reads a JSONL session file and produces one session summary.
//
// Lines are processed strictly in file order. A line that fails to decode
// is skipped and parsing continues; logs may contain noise or partial
// writes and that is not an error. Routing by top-level "type":
//
//   - "summary"   → title candidates and working directory
//   - "user"      → first-message title fallback (first occurrence wins)
//   - "assistant" → cost computation and turn count
//   - anything else → ignored beyond timestamp tracking
//
// Every decodable line with a parseable timestamp, whatever its type,
// moves the earliest/latest timestamp extremes.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	var (
		titles    titleCandidates
		cwd       string
		totalCost float64
		turns     int
		minTime   time.Time
		maxTime   time.Time
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256*1024), 2*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()

		var entry logEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}

		if entry.Timestamp != "" {
			if ts, err := time.Parse(time.RFC3339Nano, entry.Timestamp); err == nil {
				updateTimeRange(&minTime, &maxTime, ts)
			}
		}

		switch entry.Type {
		case "summary":
			if entry.Summary != "" {
				titles.summary = entry.Summary
			}
			if md := entry.Metadata; md != nil {
				if md.ThreadSummary != "" {
					titles.metaTitle = md.ThreadSummary
				} else if md.Summary != "" {
					titles.metaTitle = md.Summary
				}
				if cwd == "" {
					if md.WorkingDirectory != "" {
						cwd = md.WorkingDirectory
					} else if md.Cwd != "" {
						cwd = md.Cwd
					}
				}
			}

		case "user":
			if titles.firstUser == "" && entry.Text != "" {
				titles.firstUser = truncateRunes(entry.Text, maxTitleLen)
			}

		case "assistant":
			// Either a pre-computed cost or raw usage counts makes the
			// turn cost-bearing; a direct costUSD value wins as-is.
			switch {
			case entry.CostUSD != nil:
				totalCost += *entry.CostUSD
				turns++
			case entry.Message != nil && entry.Message.Usage != nil:
				u := entry.Message.Usage
				totalCost += config.CalculateCost(
					entry.Message.Model,
					u.InputTokens,
					u.OutputTokens,
					u.CacheCreationInputTokens,
					u.CacheReadInputTokens,
				)
				turns++
			}
		}

		if cwd == "" && entry.Cwd != "" {
			cwd = entry.Cwd
		}
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{Err: err}
	}

	return ParseResult{
		Summary: model.SessionSummary{
			SessionID:   df.SessionID,
			Project:     df.Project,
			ProjectPath: cwd,
			FilePath:    df.Path,
			Title:       titles.resolve(),
			TotalCost:   totalCost,
			Turns:       turns,
			StartTime:   minTime,
			EndTime:     maxTime,
		},
	}
}

// singleLine collapses newlines to spaces and enforces the title cap.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	return truncateRunes(s, maxTitleLen)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func updateTimeRange(minTime, maxTime *time.Time, ts time.Time) {
	if minTime.IsZero() || ts.Before(*minTime) {
		*minTime = ts
	}
	if maxTime.IsZero() || ts.After(*maxTime) {
		*maxTime = ts
	}
}
