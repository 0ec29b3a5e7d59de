package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/logger"
)

// ReportImage reports an image for moderation
func ReportImage(imageID, category, reason string) error {
	logger.Debug("Reporting image", "image_id", imageID, "category", category)

	req := ReportRequest{
		Category: category,
		Reason:   reason,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(fmt.Sprintf("/images/%s/report", imageID))

	return CheckResponse(resp, err)
}

// GetReportCount fetches the number of reports filed against an image
func GetReportCount(imageID string) (int, error) {
	logger.Debug("Fetching report count", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/images/%s/reports/count", imageID))

	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	var count ReportCountResponse
	if err := json.Unmarshal(resp.Body(), &count); err != nil {
		return 0, err
	}

	return count.Count, nil
}

// GetReportCategories fetches the valid report categories
func GetReportCategories() ([]string, error) {
	logger.Debug("Fetching report categories")

	resp, err := client.GetClient().
		R().
		Get("/reports/categories")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var categories ReportCategoriesResponse
	if err := json.Unmarshal(resp.Body(), &categories); err != nil {
		return nil, err
	}

	return categories.Categories, nil
}

// GetReportsByCategory fetches report totals grouped by category
func GetReportsByCategory() ([]CategoryReportCount, error) {
	logger.Debug("Fetching reports by category")

	resp, err := client.GetClient().
		R().
		Get("/reports/by-category")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var reports ReportsByCategoryResponse
	if err := json.Unmarshal(resp.Body(), &reports); err != nil {
		return nil, err
	}

	return reports.Reports, nil
}
