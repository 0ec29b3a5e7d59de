package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osohub/cli/pkg/service"
	"github.com/osohub/cli/pkg/session"
)

var (
	reportCategory string
	reportReason   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report commands",
	Long:  "Report images for moderation and inspect report data",
}

var reportFileCmd = &cobra.Command{
	Use:   "file <image-id>",
	Short: "Report an image",
	Long:  "File a moderation report against an image. Prompts for category and reason when not given as flags.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		reportSvc := service.NewReportService(sess)
		return reportSvc.Report(args[0], reportCategory, reportReason)
	},
}

var reportCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List valid report categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		reportSvc := service.NewReportService(sess)
		return reportSvc.Categories()
	},
}

var reportByCategoryCmd = &cobra.Command{
	Use:   "by-category",
	Short: "Show report totals per category (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		reportSvc := service.NewReportService(sess)
		return reportSvc.ByCategory()
	},
}

var reportCountCmd = &cobra.Command{
	Use:   "count <image-id>",
	Short: "Show the number of reports against an image (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Current()
		if err != nil {
			return err
		}
		reportSvc := service.NewReportService(sess)
		return reportSvc.Count(args[0])
	},
}

func init() {
	reportFileCmd.Flags().StringVarP(&reportCategory, "category", "c", "", "Report category")
	reportFileCmd.Flags().StringVarP(&reportReason, "reason", "r", "", "Report reason (at least 10 characters)")

	reportCmd.AddCommand(reportFileCmd)
	reportCmd.AddCommand(reportCategoriesCmd)
	reportCmd.AddCommand(reportByCategoryCmd)
	reportCmd.AddCommand(reportCountCmd)
}
