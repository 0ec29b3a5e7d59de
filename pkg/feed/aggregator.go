package feed

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osohub/cli/pkg/api"
	"github.com/osohub/cli/pkg/logger"
)

// DefaultBatchSize bounds how many day-bucket requests are in flight at
// once. Batch N+1 is not issued until every request in batch N settles.
const DefaultBatchSize = 5

// DefaultBatchPause is the pause inserted between batches. Backpressure
// for the backend, not a correctness requirement.
const DefaultBatchPause = 50 * time.Millisecond

// FetchDayFunc fetches the raw image records for one calendar day,
// formatted YYYY-MM-DD. A failed day is treated as an empty day.
type FetchDayFunc func(dayBucket string) ([]api.RawImage, error)

// Aggregator assembles a complete, deduplicated, reverse-chronological
// feed from a backend that only answers day-bucket queries. It holds no
// state between runs; refresh means running Load again.
type Aggregator struct {
	fetchDay FetchDayFunc

	// BatchSize and Pause tune the scatter-gather; Now is injectable for
	// deterministic tests.
	BatchSize int
	Pause     time.Duration
	Now       func() time.Time
}

// NewAggregator creates an aggregator over the given day fetcher
func NewAggregator(fetchDay FetchDayFunc) *Aggregator {
	return &Aggregator{
		fetchDay:  fetchDay,
		BatchSize: DefaultBatchSize,
		Pause:     DefaultBatchPause,
		Now:       time.Now,
	}
}

// Load scans the most recent windowDays calendar days and returns every
// image found, deduplicated by id (first occurrence wins) and sorted by
// upload time descending. Individual day failures are absorbed; the only
// error Load returns is an invalid window, which is a caller bug.
func (a *Aggregator) Load(windowDays int) ([]Post, error) {
	if windowDays < 1 {
		return nil, fmt.Errorf("feed window must be at least 1 day, got %d", windowDays)
	}
	if a.BatchSize < 1 {
		return nil, fmt.Errorf("feed batch size must be at least 1, got %d", a.BatchSize)
	}

	days := a.dayWindow(windowDays)

	type dayResult struct {
		day    string
		images []api.RawImage
	}

	var results []dayResult

	for start := 0; start < len(days); start += a.BatchSize {
		end := start + a.BatchSize
		if end > len(days) {
			end = len(days)
		}
		batch := days[start:end]

		batchResults := make([]dayResult, len(batch))

		var wg sync.WaitGroup
		for i, day := range batch {
			wg.Add(1)
			go func(i int, day string) {
				defer wg.Done()
				images, err := a.fetchDay(day)
				if err != nil {
					// A missing day is indistinguishable from an empty
					// day; never abort the whole load over one bucket.
					logger.Warn("Day fetch failed, treating as empty", "day_bucket", day, "error", err)
					return
				}
				batchResults[i] = dayResult{day: day, images: images}
			}(i, day)
		}
		wg.Wait()

		results = append(results, batchResults...)

		if end < len(days) && a.Pause > 0 {
			time.Sleep(a.Pause)
		}
	}

	seen := make(map[string]bool)
	var posts []Post

	for _, result := range results {
		for _, raw := range result.images {
			if raw.ImageID == "" {
				logger.Debug("Skipping image record without id", "day_bucket", result.day)
				continue
			}
			if seen[raw.ImageID] {
				continue
			}
			seen[raw.ImageID] = true
			posts = append(posts, NewPost(raw, result.day))
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	logger.Debug("Feed assembled", "days", len(days), "posts", len(posts))
	return posts, nil
}

// dayWindow returns the calendar dates from today back windowDays-1 days,
// newest first, formatted as day-bucket keys.
func (a *Aggregator) dayWindow(windowDays int) []string {
	now := a.Now()
	days := make([]string, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		days = append(days, now.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return days
}
