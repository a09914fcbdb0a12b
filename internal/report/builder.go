// Package report shapes aggregated cost data and renders the static HTML
// report artifact.
package report

import (
	"time"

	"github.com/wcvb13/claude-code-costs/internal/model"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"
)

// topSessionsLimit caps the ranking slice embedded in the report.
const topSessionsLimit = 20

// Data is the presentation contract: everything a renderer needs to
// reproduce the full analysis.
type Data struct {
	GeneratedAt time.Time
	Overview    model.OverviewStats
	Days        []model.DailyBucket // fixed 30-entry series, ascending
	MaxDayCost  float64             // for chart scaling
	TopSessions []model.SessionSummary
	Projects    []model.ProjectStats
}

// Build packages the session collection for presentation. now anchors the
// 30-day series; passing it in keeps the result deterministic.
func Build(sessions []model.SessionSummary, now time.Time) Data {
	days := pipeline.DailySeries(sessions, now)

	var maxCost float64
	for _, d := range days {
		if d.Cost > maxCost {
			maxCost = d.Cost
		}
	}

	top := pipeline.Rank(sessions)
	if len(top) > topSessionsLimit {
		top = top[:topSessionsLimit]
	}

	return Data{
		GeneratedAt: now,
		Overview:    pipeline.Overview(sessions),
		Days:        days,
		MaxDayCost:  maxCost,
		TopSessions: top,
		Projects:    pipeline.AggregateProjects(sessions),
	}
}
