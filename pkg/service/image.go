package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osohub/cli/pkg/api"
	"github.com/osohub/cli/pkg/errors"
	"github.com/osohub/cli/pkg/feed"
	"github.com/osohub/cli/pkg/formatter"
	"github.com/osohub/cli/pkg/prompter"
	"github.com/osohub/cli/pkg/session"
)

// MaxImageSizeMB is the upload size limit enforced client-side before the
// file ever leaves the machine.
const MaxImageSizeMB = 10

var supportedImageFormats = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// ImageService handles image upload, viewing and deletion
type ImageService struct {
	sess *session.Context
}

// NewImageService creates an image service bound to the given session
func NewImageService(sess *session.Context) *ImageService {
	return &ImageService{sess: sess}
}

// Upload validates and uploads an image file
func (s *ImageService) Upload(filePath, title string) error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return errors.FileNotFoundError(filePath)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	if !supportedImageFormats[ext] {
		return errors.ImageFormatError(ext)
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	if sizeMB > MaxImageSizeMB {
		return errors.ImageSizeError(sizeMB, MaxImageSizeMB)
	}

	formatter.PrintInfo("Uploading %s (%.1f MB)...", filepath.Base(filePath), sizeMB)

	image, err := api.UploadImage(filePath, title)
	if err != nil {
		formatter.PrintError("Upload failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Image uploaded!")
	formatter.PrintKeyValue(map[string]interface{}{
		"Image ID": image.ImageID,
		"Title":    displayTitle(image.Title),
		"URL":      image.ImageURL,
	})

	return nil
}

// View fetches and displays a single image
func (s *ImageService) View(imageID string) error {
	raw, err := api.GetImage(imageID)
	if err != nil {
		if api.IsNotFound(err) {
			return errors.NotFoundError("Image", imageID)
		}
		return err
	}

	post := feed.NewPost(*raw, "")

	liked := "no"
	if post.IsLiked {
		liked = "yes"
	}
	posted := "unknown"
	if !post.CreatedAt.IsZero() {
		posted = post.CreatedAt.Format("2006-01-02 15:04")
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"ID":     post.ID,
		"Title":  post.Title,
		"Owner":  post.Owner.Username,
		"URL":    post.ImageURL,
		"Likes":  post.LikeCount,
		"Liked":  liked,
		"Posted": posted,
	})

	return nil
}

// List displays all images uploaded by a user. An empty userID means the
// current user.
func (s *ImageService) List(userID string) error {
	if userID == "" {
		if s.sess.Anonymous() {
			formatter.PrintError("Not logged in. Pass a user id or run 'osohub auth login'.")
			return errors.AuthError("authentication required")
		}
		userID = s.sess.UserID
	}

	raws, err := api.GetUserImages(userID)
	if err != nil {
		return err
	}

	if len(raws) == 0 {
		formatter.PrintInfo("No images.")
		return nil
	}

	posts := make([]feed.Post, 0, len(raws))
	for _, raw := range raws {
		posts = append(posts, feed.NewPost(raw, ""))
	}

	for i, post := range posts {
		posted := ""
		if !post.CreatedAt.IsZero() {
			posted = post.CreatedAt.Format("2006-01-02")
		}
		fmt.Printf("%d. %s  %s  %d likes  %s\n", i+1, post.ID, displayTitle(post.Title), post.LikeCount, posted)
	}

	return nil
}

// Delete removes an image owned by the current user after confirmation
func (s *ImageService) Delete(imageID string, skipConfirm bool) error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	if !skipConfirm {
		confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete image %s? This cannot be undone.", imageID))
		if err != nil {
			return err
		}
		if !confirm {
			formatter.PrintInfo("Cancelled.")
			return nil
		}
	}

	if err := api.DeleteImage(imageID); err != nil {
		if api.IsNotFound(err) {
			return errors.NotFoundError("Image", imageID)
		}
		formatter.PrintError("Delete failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Image %s deleted", imageID)
	return nil
}

// Stats displays the like and report counts for an image
func (s *ImageService) Stats(imageID string) error {
	likeCount, err := api.GetLikeCount(imageID)
	if err != nil {
		return err
	}

	stats := map[string]interface{}{
		"Image ID": imageID,
		"Likes":    likeCount,
	}

	// Report counts are restricted; skip them quietly for non-admins.
	if reportCount, err := api.GetReportCount(imageID); err == nil {
		stats["Reports"] = reportCount
	}

	formatter.PrintKeyValue(stats)
	return nil
}

func displayTitle(title string) string {
	if title == "" {
		return feed.UntitledTitle
	}
	return title
}
