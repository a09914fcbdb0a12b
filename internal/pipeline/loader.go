// Package pipeline orchestrates session loading and cost aggregation.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/wcvb13/claude-code-costs/internal/model"
	"github.com/wcvb13/claude-code-costs/internal/source"
)

// LoadResult holds the output of the full data loading pipeline.
type LoadResult struct {
	Sessions     []model.SessionSummary
	TotalFiles   int
	ParsedFiles  int
	FileErrors   int
	ProjectCount int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and parses all session files under the Claude data
// directory. Files are parsed by a bounded worker pool — each file is
// independent, so ordering between files does not matter. Sessions with
// zero cost-bearing turns are retained in the corpus; cost-bearing
// filtering happens in the aggregation functions, where that semantics
// is actually enforced.
func Load(claudeDir string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(claudeDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", claudeDir, err)
	}

	result := &LoadResult{
		TotalFiles:   len(files),
		ProjectCount: source.CountProjects(files),
	}

	if len(files) == 0 {
		return result, nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]source.ParseResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = source.ParseFile(files[idx])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(files))
				}
			}
		}()
	}

	wg.Wait()

	// Collection order follows discovery order so ranking ties stay stable
	// run to run.
	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.Sessions = append(result.Sessions, pr.Summary)
	}

	return result, nil
}
