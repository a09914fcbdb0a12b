// Package model defines domain types for session costs and aggregates.
package model

import "time"

// UntitledConversation is the display title for sessions where no title
// candidate was found in the log.
const UntitledConversation = "Untitled conversation"

// SessionSummary holds the accumulated cost analysis for a single session file.
// It is built by one full pass over the file and never mutated afterwards.
type SessionSummary struct {
	SessionID   string // file base name without extension, unique in the corpus
	Project     string // enclosing directory name, the grouping key
	ProjectPath string // working directory from log metadata, if any
	FilePath    string
	Title       string // resolved display title, single line, max 100 chars

	TotalCost float64 // USD, accumulated without rounding
	Turns     int     // cost-bearing assistant turns

	StartTime time.Time // earliest timestamp in the file; zero if none
	EndTime   time.Time // latest timestamp in the file; zero if none
}

// DurationMinutes returns the session length in whole minutes, or zero
// when either timestamp extreme is missing.
func (s SessionSummary) DurationMinutes() int64 {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return 0
	}
	return int64(s.EndTime.Sub(s.StartTime).Minutes())
}

// CostBearing reports whether the session participates in cost aggregation.
// Zero-turn and zero-cost sessions are kept in the corpus for bookkeeping
// but never charted or ranked.
func (s SessionSummary) CostBearing() bool {
	return s.Turns > 0 && s.TotalCost > 0
}
