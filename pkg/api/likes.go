package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/logger"
)

// LikeImage likes an image as the current user. Repeat calls are not
// guaranteed to be safe; callers should track their own liked state.
func LikeImage(imageID string) error {
	logger.Debug("Liking image", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/images/%s/like", imageID))

	return CheckResponse(resp, err)
}

// UnlikeImage removes the current user's like from an image
func UnlikeImage(imageID string) error {
	logger.Debug("Unliking image", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/images/%s/like", imageID))

	return CheckResponse(resp, err)
}

// GetLikeCount fetches the authoritative like count for an image
func GetLikeCount(imageID string) (int, error) {
	logger.Debug("Fetching like count", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/images/%s/likes/count", imageID))

	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	var count LikeCountResponse
	if err := json.Unmarshal(resp.Body(), &count); err != nil {
		return 0, err
	}

	return count.Count, nil
}

// GetLikeStatus reports whether the current user has liked an image.
// Requires an authenticated session.
func GetLikeStatus(imageID string) (bool, error) {
	logger.Debug("Fetching like status", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/images/%s/like/status", imageID))

	if err := CheckResponse(resp, err); err != nil {
		return false, err
	}

	var status LikeStatusResponse
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return false, err
	}

	return status.Liked, nil
}
