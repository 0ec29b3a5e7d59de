package feed

import (
	"testing"
	"time"

	"github.com/osohub/cli/pkg/api"
)

// TestNewPostTransformsFields maps the wire record onto the view model
func TestNewPostTransformsFields(t *testing.T) {
	raw := api.RawImage{
		ImageID:               "img-1",
		ImageURL:              "https://cdn.example.com/img-1.jpg",
		Title:                 "Sunset",
		UserID:                "user-9",
		Username:              "photographer1",
		UserProfilePictureURL: "https://cdn.example.com/avatar.jpg",
		LikeCount:             15,
		IsLiked:               true,
		UploadedAt:            "2024-06-01T10:00:00Z",
	}

	post := NewPost(raw, "2024-06-01")

	if post.ID != "img-1" {
		t.Errorf("Expected id img-1, got %s", post.ID)
	}
	if post.ImageURL != raw.ImageURL {
		t.Errorf("Expected original URL, got %s", post.ImageURL)
	}
	if post.Title != "Sunset" {
		t.Errorf("Expected title Sunset, got %s", post.Title)
	}
	if post.OwnerID != "user-9" {
		t.Errorf("Expected owner user-9, got %s", post.OwnerID)
	}
	if post.Owner.Username != "photographer1" {
		t.Errorf("Expected owner username photographer1, got %s", post.Owner.Username)
	}
	if post.LikeCount != 15 {
		t.Errorf("Expected like count 15, got %d", post.LikeCount)
	}
	if !post.IsLiked {
		t.Error("Expected IsLiked true")
	}

	expected := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	if !post.CreatedAt.Equal(expected) {
		t.Errorf("Expected CreatedAt %v, got %v", expected, post.CreatedAt)
	}

	if post.DayBucket() != "2024-06-01" {
		t.Errorf("Expected day bucket 2024-06-01, got %s", post.DayBucket())
	}
}

// TestNewPostImageURLFallback replaces unusable URLs with the placeholder
func TestNewPostImageURLFallback(t *testing.T) {
	testCases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"literal null", "null"},
		{"literal undefined", "undefined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			post := NewPost(api.RawImage{ImageID: "x", ImageURL: tc.url}, "2024-06-01")
			if post.ImageURL != PlaceholderImageURL {
				t.Errorf("Expected placeholder URL, got %s", post.ImageURL)
			}
		})
	}
}

// TestNewPostUntitledFallback defaults a missing title
func TestNewPostUntitledFallback(t *testing.T) {
	post := NewPost(api.RawImage{ImageID: "x"}, "2024-06-01")
	if post.Title != UntitledTitle {
		t.Errorf("Expected %q, got %q", UntitledTitle, post.Title)
	}
}

// TestNewPostClampsNegativeLikeCount keeps the count non-negative even
// for a bad server value
func TestNewPostClampsNegativeLikeCount(t *testing.T) {
	post := NewPost(api.RawImage{ImageID: "x", LikeCount: -4}, "2024-06-01")
	if post.LikeCount != 0 {
		t.Errorf("Expected like count 0, got %d", post.LikeCount)
	}
}

// TestParseUploadedAtFormats accepts the timestamp shapes the backend
// emits and degrades to the zero time otherwise
func TestParseUploadedAtFormats(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		zeroOK  bool
	}{
		{"rfc3339", "2024-06-01T10:00:00Z", false},
		{"no zone", "2024-06-01T10:00:00", false},
		{"date only", "2024-06-01", false},
		{"garbage", "yesterday", true},
		{"empty", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := parseUploadedAt(tc.value)
			if parsed.IsZero() != tc.zeroOK {
				t.Errorf("parseUploadedAt(%q) zero=%v, expected zero=%v", tc.value, parsed.IsZero(), tc.zeroOK)
			}
		})
	}
}
