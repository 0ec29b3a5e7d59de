package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/logger"
)

// GetFeedDay fetches the image records uploaded on one calendar day. The
// backend only supports day-bucket queries; assembling a full feed is the
// caller's job (see pkg/feed). An empty day returns an empty list, not an
// error.
func GetFeedDay(dayBucket string) ([]RawImage, error) {
	logger.Debug("Fetching feed day", "day_bucket", dayBucket)

	resp, err := client.GetClient().
		R().
		SetQueryParam("day_bucket", dayBucket).
		Get("/feed")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var images []RawImage
	if err := json.Unmarshal(resp.Body(), &images); err != nil {
		return nil, err
	}

	logger.Debug("Feed day fetched", "day_bucket", dayBucket, "count", len(images))
	return images, nil
}

// UploadImage uploads an image file with an optional title
func UploadImage(filePath, title string) (*RawImage, error) {
	logger.Debug("Uploading image", "file", filePath)

	resp, err := client.GetClient().
		R().
		SetFile("image", filePath).
		SetFormData(map[string]string{"title": title}).
		Post("/images")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var image RawImage
	if err := json.Unmarshal(resp.Body(), &image); err != nil {
		return nil, err
	}

	logger.Debug("Image uploaded", "image_id", image.ImageID)
	return &image, nil
}

// GetImage fetches a single image record by id
func GetImage(imageID string) (*RawImage, error) {
	logger.Debug("Fetching image", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/images/byid/%s", imageID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var image RawImage
	if err := json.Unmarshal(resp.Body(), &image); err != nil {
		return nil, err
	}

	return &image, nil
}

// GetUserImages fetches all images uploaded by a user
func GetUserImages(userID string) ([]RawImage, error) {
	logger.Debug("Fetching user images", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/users/%s/images", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var images []RawImage
	if err := json.Unmarshal(resp.Body(), &images); err != nil {
		return nil, err
	}

	return images, nil
}

// DeleteImage deletes an image owned by the current user
func DeleteImage(imageID string) error {
	logger.Debug("Deleting image", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/images/%s", imageID))

	return CheckResponse(resp, err)
}
