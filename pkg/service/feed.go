package service

import (
	"fmt"

	"github.com/osohub/cli/pkg/api"
	"github.com/osohub/cli/pkg/config"
	"github.com/osohub/cli/pkg/feed"
	"github.com/osohub/cli/pkg/formatter"
	"github.com/osohub/cli/pkg/output"
	"github.com/osohub/cli/pkg/session"
)

// FeedService assembles and displays the home feed
type FeedService struct {
	sess       *session.Context
	aggregator *feed.Aggregator
}

// NewFeedService creates a feed service bound to the given session
func NewFeedService(sess *session.Context) *FeedService {
	agg := feed.NewAggregator(api.GetFeedDay)
	if batch := config.GetInt("feed.batch_size"); batch > 0 {
		agg.BatchSize = batch
	}
	return &FeedService{
		sess:       sess,
		aggregator: agg,
	}
}

// Show loads the feed over the given day window and prints it. A window
// of 0 uses the configured default.
func (s *FeedService) Show(windowDays int) error {
	if windowDays == 0 {
		windowDays = config.GetInt("feed.window_days")
	}

	formatter.PrintInfo("Loading feed (%d days)...", windowDays)

	posts, err := s.aggregator.Load(windowDays)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		formatter.PrintInfo("No posts in the last %d days.", windowDays)
		return nil
	}

	columns := []string{"ID", "TITLE", "OWNER", "LIKES", "LIKED", "POSTED"}
	rows := make([][]string, 0, len(posts))
	for _, post := range posts {
		liked := ""
		if post.IsLiked {
			liked = "yes"
		}
		posted := ""
		if !post.CreatedAt.IsZero() {
			posted = post.CreatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			post.ID,
			truncate(post.Title, 40),
			post.Owner.Username,
			fmt.Sprintf("%d", post.LikeCount),
			liked,
			posted,
		})
	}

	if err := output.PrintList(posts, columns, rows); err != nil {
		return err
	}

	fmt.Printf("\n%d posts\n", len(posts))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
