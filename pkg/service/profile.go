package service

import (
	"fmt"

	"github.com/osohub/cli/pkg/api"
	"github.com/osohub/cli/pkg/errors"
	"github.com/osohub/cli/pkg/feed"
	"github.com/osohub/cli/pkg/formatter"
	"github.com/osohub/cli/pkg/session"
)

// ProfileService handles profile viewing and editing
type ProfileService struct {
	sess *session.Context
}

// NewProfileService creates a profile service bound to the given session
func NewProfileService(sess *session.Context) *ProfileService {
	return &ProfileService{sess: sess}
}

// ShowMe displays the current user's own profile
func (s *ProfileService) ShowMe() error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	user, err := api.GetCurrentUser()
	if err != nil {
		return err
	}

	printUser(user)
	return nil
}

// Update changes the current user's profile fields. Empty values are left
// untouched by the backend.
func (s *ProfileService) Update(username, bio, profilePictureURL string) error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	if username == "" && bio == "" && profilePictureURL == "" {
		formatter.PrintInfo("Nothing to update.")
		return nil
	}

	user, err := api.UpdateProfile(api.UpdateProfileRequest{
		Username:          username,
		Bio:               bio,
		ProfilePictureURL: profilePictureURL,
	})
	if err != nil {
		formatter.PrintError("Update failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Profile updated")
	printUser(user)
	return nil
}

// ShowPublic displays another user's public profile and their images
func (s *ProfileService) ShowPublic(username string) error {
	profile, err := api.GetPublicProfile(username)
	if err != nil {
		if api.IsNotFound(err) {
			return errors.NotFoundError("User", username)
		}
		return err
	}

	printUser(&profile.User)

	if len(profile.Images) == 0 {
		formatter.PrintInfo("No images yet.")
		return nil
	}

	fmt.Printf("\nImages:\n")
	for i, raw := range profile.Images {
		post := feed.NewPost(raw, "")
		posted := ""
		if !post.CreatedAt.IsZero() {
			posted = post.CreatedAt.Format("2006-01-02")
		}
		fmt.Printf("%d. %s  %s  %d likes  %s\n", i+1, post.ID, post.Title, post.LikeCount, posted)
	}

	return nil
}

// ShareLink displays the current user's public profile link
func (s *ProfileService) ShareLink() error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	link, err := api.GetShareLink()
	if err != nil {
		return err
	}

	formatter.PrintInfo("Share your profile:")
	fmt.Println(link)
	return nil
}

// Ban sets a user's banned flag. Admin only; the backend enforces it.
func (s *ProfileService) Ban(userID string, banned bool) error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	if err := api.BanUser(userID, banned); err != nil {
		if api.IsForbidden(err) {
			formatter.PrintError("Admin access required.")
		}
		return err
	}

	if banned {
		formatter.PrintSuccess("User %s banned", userID)
	} else {
		formatter.PrintSuccess("User %s unbanned", userID)
	}
	return nil
}

func printUser(user *api.User) {
	record := map[string]interface{}{
		"User ID":  user.UserID,
		"Username": user.Username,
	}
	if user.Email != "" {
		record["Email"] = user.Email
	}
	if user.Bio != "" {
		record["Bio"] = user.Bio
	}
	if user.ProfilePictureURL != "" {
		record["Avatar"] = user.ProfilePictureURL
	}
	if user.Banned {
		record["Banned"] = true
	}
	formatter.PrintKeyValue(record)
}
