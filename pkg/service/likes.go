package service

import (
	"github.com/osohub/cli/pkg/api"
	"github.com/osohub/cli/pkg/errors"
	"github.com/osohub/cli/pkg/formatter"
	"github.com/osohub/cli/pkg/likes"
	"github.com/osohub/cli/pkg/session"
)

// LikeService toggles likes with optimistic local feedback
type LikeService struct {
	sess *session.Context
}

// NewLikeService creates a like service bound to the given session
func NewLikeService(sess *session.Context) *LikeService {
	return &LikeService{sess: sess}
}

// controllerFor builds the toggle controller for one image. The
// authoritative re-fetch corrects the count for likes from other
// sessions that arrived while ours was in flight.
func (s *LikeService) controllerFor(imageID string) *likes.Controller {
	return &likes.Controller{
		Like:   func() error { return api.LikeImage(imageID) },
		Unlike: func() error { return api.UnlikeImage(imageID) },
		FetchAuthoritative: func() (bool, int, error) {
			liked, err := api.GetLikeStatus(imageID)
			if err != nil {
				return false, 0, err
			}
			count, err := api.GetLikeCount(imageID)
			if err != nil {
				return false, 0, err
			}
			return liked, count, nil
		},
	}
}

// Toggle flips the current user's like on an image and prints the result
func (s *LikeService) Toggle(imageID string) error {
	if s.sess.Anonymous() {
		formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
		return errors.AuthError("authentication required")
	}

	liked, err := api.GetLikeStatus(imageID)
	if err != nil {
		if api.IsNotFound(err) {
			return errors.NotFoundError("Image", imageID)
		}
		return err
	}
	count, err := api.GetLikeCount(imageID)
	if err != nil {
		return err
	}

	state := likes.NewState(liked, count)
	controller := s.controllerFor(imageID)

	if err := controller.Toggle(state); err != nil {
		formatter.PrintError("Like failed, nothing changed: %v", err)
		return err
	}

	nowLiked, nowCount := state.Snapshot()
	if nowLiked {
		formatter.PrintSuccess("Liked (%d likes)", nowCount)
	} else {
		formatter.PrintSuccess("Unliked (%d likes)", nowCount)
	}

	return nil
}

// Status displays the current user's like status and the like count
func (s *LikeService) Status(imageID string) error {
	count, err := api.GetLikeCount(imageID)
	if err != nil {
		if api.IsNotFound(err) {
			return errors.NotFoundError("Image", imageID)
		}
		return err
	}

	status := map[string]interface{}{
		"Image ID": imageID,
		"Likes":    count,
	}

	if !s.sess.Anonymous() {
		liked, err := api.GetLikeStatus(imageID)
		if err != nil {
			return err
		}
		status["Liked by you"] = liked
	}

	formatter.PrintKeyValue(status)
	return nil
}
