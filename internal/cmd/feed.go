package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osohub/cli/pkg/service"
	"github.com/osohub/cli/pkg/session"
)

var feedDays int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the home feed",
	Long: `Assemble and display the feed from the most recent days of
uploads, newest first. The backend serves the feed one calendar day at
a time; this command queries the whole window and merges the results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		feedSvc := service.NewFeedService(sess)
		return feedSvc.Show(feedDays)
	},
}

func init() {
	feedCmd.Flags().IntVar(&feedDays, "days", 0, "How many days back to scan (default from config, 30)")
}
