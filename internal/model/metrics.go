package model

import "time"

// DailyBucket holds the cost aggregate for one UTC calendar date.
// Buckets are derived from the session collection on every run.
type DailyBucket struct {
	Date     time.Time // midnight UTC
	Cost     float64
	Count    int              // contributing sessions
	Sessions []SessionSummary // kept for report drill-down
}

// DateKey returns the ISO 8601 date string the bucket is keyed by.
func (b DailyBucket) DateKey() string {
	return b.Date.Format("2006-01-02")
}

// OverviewStats holds the corpus-wide console summary values.
type OverviewStats struct {
	TotalCost       float64
	TotalSessions   int     // every parsed session, zero-turn included
	CostBearing     int     // sessions with positive cost
	AvgCostPerConvo float64 // over cost-bearing sessions only; zero when none
}

// ProjectStats holds the cost rollup for one project grouping key.
type ProjectStats struct {
	Project  string
	Sessions int
	Cost     float64
}
