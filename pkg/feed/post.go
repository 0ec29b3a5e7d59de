package feed

import (
	"time"

	"github.com/osohub/cli/pkg/api"
)

// PlaceholderImageURL is shown when the backend has no usable URL for an
// image. Some rows come back with the literal strings "null" or
// "undefined" instead of an empty field.
const PlaceholderImageURL = "https://via.placeholder.com/400x400?text=No+Image"

// UntitledTitle is the display title for images uploaded without one.
const UntitledTitle = "Untitled"

// Owner is a denormalized snapshot of the uploading user, captured at
// fetch time. It is not a live reference and may go stale.
type Owner struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Post is the client-side view model for one image, normalized from the
// backend's raw record. Posts are rebuilt from scratch on every feed load
// and never persisted.
type Post struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Title     string    `json:"title"`
	OwnerID   string    `json:"owner_id"`
	Owner     Owner     `json:"owner"`
	LikeCount int       `json:"like_count"`
	IsLiked   bool      `json:"is_liked"`
	CreatedAt time.Time `json:"created_at"`

	// dayBucket records which day-bucket query returned this post. Used
	// only for aggregation bookkeeping, never displayed.
	dayBucket string
}

// DayBucket returns the partition key this post was fetched under.
func (p Post) DayBucket() string {
	return p.dayBucket
}

// NewPost normalizes a raw backend record into a Post, applying the
// placeholder and untitled fallbacks. It never fails: malformed fields
// degrade to safe defaults.
func NewPost(raw api.RawImage, dayBucket string) Post {
	imageURL := raw.ImageURL
	if imageURL == "" || imageURL == "null" || imageURL == "undefined" {
		imageURL = PlaceholderImageURL
	}

	title := raw.Title
	if title == "" {
		title = UntitledTitle
	}

	likeCount := raw.LikeCount
	if likeCount < 0 {
		likeCount = 0
	}

	return Post{
		ID:       raw.ImageID,
		ImageURL: imageURL,
		Title:    title,
		OwnerID:  raw.UserID,
		Owner: Owner{
			Username:  raw.Username,
			AvatarURL: raw.UserProfilePictureURL,
		},
		LikeCount: likeCount,
		IsLiked:   raw.IsLiked,
		CreatedAt: parseUploadedAt(raw.UploadedAt),
		dayBucket: dayBucket,
	}
}

// parseUploadedAt parses the backend's timestamp, tolerating the formats
// observed in the wild. Unparseable values sort to the end of the feed.
func parseUploadedAt(value string) time.Time {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t
		}
	}

	return time.Time{}
}
