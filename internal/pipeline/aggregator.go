package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/wcvb13/claude-code-costs/internal/model"
)

// seriesDays is the fixed length of the daily cost series: today plus the
// 29 preceding UTC days.
const seriesDays = 30

// AggregateDays groups cost-bearing sessions by the UTC calendar date of
// their earliest timestamp. Sessions with non-positive cost or no
// timestamp never contribute. Buckets are returned sorted ascending by
// date.
func AggregateDays(sessions []model.SessionSummary) []model.DailyBucket {
	dayMap := make(map[string]*model.DailyBucket)

	for _, s := range sessions {
		if !s.CostBearing() || s.StartTime.IsZero() {
			continue
		}
		day := s.StartTime.UTC()
		key := day.Format("2006-01-02")
		b, ok := dayMap[key]
		if !ok {
			b = &model.DailyBucket{
				Date: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			}
			dayMap[key] = b
		}
		b.Cost += s.TotalCost
		b.Count++
		b.Sessions = append(b.Sessions, s)
	}

	days := make([]model.DailyBucket, 0, len(dayMap))
	for _, b := range dayMap {
		days = append(days, *b)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].DateKey() < days[j].DateKey()
	})

	return days
}

// DailySeries expands daily buckets into a fixed 30-entry series covering
// today and the preceding 29 days (UTC, inclusive, ascending). Dates with
// no bucket get a zero-cost, empty entry so the series length never
// depends on corpus sparsity. Deterministic given the same sessions and
// the same today reference.
func DailySeries(sessions []model.SessionSummary, today time.Time) []model.DailyBucket {
	byKey := make(map[string]model.DailyBucket)
	for _, b := range AggregateDays(sessions) {
		byKey[b.DateKey()] = b
	}

	t := today.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(seriesDays - 1))

	series := make([]model.DailyBucket, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		day := start.AddDate(0, 0, i)
		if b, ok := byKey[day.Format("2006-01-02")]; ok {
			series = append(series, b)
		} else {
			series = append(series, model.DailyBucket{Date: day})
		}
	}

	return series
}

// Rank returns the cost-bearing sessions sorted descending by total cost.
// The sort is stable: equal-cost sessions keep their original collection
// order. Callers take whatever prefix they need (5 for console, 20 for
// report tables).
func Rank(sessions []model.SessionSummary) []model.SessionSummary {
	var ranked []model.SessionSummary
	for _, s := range sessions {
		if s.CostBearing() {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCost > ranked[j].TotalCost
	})
	return ranked
}

// Overview computes the corpus-wide console summary. The average is taken
// over cost-bearing sessions only and guarded against an empty corpus.
func Overview(sessions []model.SessionSummary) model.OverviewStats {
	var stats model.OverviewStats
	stats.TotalSessions = len(sessions)

	for _, s := range sessions {
		if !s.CostBearing() {
			continue
		}
		stats.TotalCost += s.TotalCost
		stats.CostBearing++
	}

	if stats.CostBearing > 0 {
		stats.AvgCostPerConvo = stats.TotalCost / float64(stats.CostBearing)
	}

	return stats
}

// AggregateProjects computes per-project cost rollups, sorted descending
// by cost. Only cost-bearing sessions contribute.
func AggregateProjects(sessions []model.SessionSummary) []model.ProjectStats {
	projMap := make(map[string]*model.ProjectStats)

	for _, s := range sessions {
		if !s.CostBearing() {
			continue
		}
		ps, ok := projMap[s.Project]
		if !ok {
			ps = &model.ProjectStats{Project: s.Project}
			projMap[s.Project] = ps
		}
		ps.Sessions++
		ps.Cost += s.TotalCost
	}

	projects := make([]model.ProjectStats, 0, len(projMap))
	for _, ps := range projMap {
		projects = append(projects, *ps)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Cost > projects[j].Cost
	})

	return projects
}

// FilterByProject returns sessions matching the project substring.
func FilterByProject(sessions []model.SessionSummary, project string) []model.SessionSummary {
	if project == "" {
		return sessions
	}
	var result []model.SessionSummary
	for _, s := range sessions {
		if strings.Contains(strings.ToLower(s.Project), strings.ToLower(project)) {
			result = append(result, s)
		}
	}
	return result
}
