package service

import (
	"fmt"
	"strings"

	"github.com/osohub/cli/pkg/api"
	"github.com/osohub/cli/pkg/errors"
	"github.com/osohub/cli/pkg/formatter"
	"github.com/osohub/cli/pkg/output"
	"github.com/osohub/cli/pkg/prompter"
	"github.com/osohub/cli/pkg/session"
)

// MinReportReasonLength matches the backend's validation; checking it
// client-side saves a round trip.
const MinReportReasonLength = 10

// ReportService handles image reporting and moderation queries
type ReportService struct {
	sess *session.Context
}

// NewReportService creates a report service bound to the given session
func NewReportService(sess *session.Context) *ReportService {
	return &ReportService{sess: sess}
}

// Report files a moderation report against an image. Empty category or
// reason prompt interactively.
func (s *ReportService) Report(imageID, category, reason string) error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	if category == "" {
		categories, err := api.GetReportCategories()
		if err != nil {
			return err
		}

		formatter.PrintInfo("Report categories:")
		for i, c := range categories {
			fmt.Printf("  %d. %s\n", i+1, c)
		}

		category, err = prompter.PromptString("Category: ")
		if err != nil {
			return err
		}
	}
	if category == "" {
		return errors.ValidationError("category", "cannot be empty")
	}

	if reason == "" {
		var err error
		reason, err = prompter.PromptString(fmt.Sprintf("Reason (at least %d characters): ", MinReportReasonLength))
		if err != nil {
			return err
		}
	}
	if len(strings.TrimSpace(reason)) < MinReportReasonLength {
		return errors.ValidationError("reason",
			fmt.Sprintf("must be at least %d characters", MinReportReasonLength))
	}

	if err := api.ReportImage(imageID, category, reason); err != nil {
		if api.IsNotFound(err) {
			return errors.NotFoundError("Image", imageID)
		}
		formatter.PrintError("Report failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Report submitted. Thank you.")
	return nil
}

// Categories displays the valid report categories
func (s *ReportService) Categories() error {
	categories, err := api.GetReportCategories()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c})
	}

	return output.PrintList(categories, []string{"CATEGORY"}, rows)
}

// ByCategory displays report totals grouped by category (admin only)
func (s *ReportService) ByCategory() error {
	reports, err := api.GetReportsByCategory()
	if err != nil {
		if api.IsForbidden(err) {
			formatter.PrintError("Admin access required.")
		}
		return err
	}

	if len(reports) == 0 {
		formatter.PrintInfo("No reports.")
		return nil
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{r.Category, fmt.Sprintf("%d", r.Count)})
	}

	return output.PrintList(reports, []string{"CATEGORY", "REPORTS"}, rows)
}

// Count displays the number of reports filed against an image (admin only)
func (s *ReportService) Count(imageID string) error {
	count, err := api.GetReportCount(imageID)
	if err != nil {
		if api.IsForbidden(err) {
			formatter.PrintError("Admin access required.")
		}
		return err
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Image ID": imageID,
		"Reports":  count,
	})
	return nil
}
