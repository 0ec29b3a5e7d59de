// Package likes implements optimistic like toggling: the local state
// changes immediately, the network call follows, and a failed call rolls
// the state back to exactly what it was.
package likes

import (
	"sync"

	"github.com/osohub/cli/pkg/logger"
)

// State is one view's like interaction state for a single image. Each
// rendering of an image owns its own State; two views of the same image
// may transiently disagree until a reconciling fetch.
type State struct {
	mu      sync.Mutex
	liked   bool
	count   int
	pending bool
}

// NewState creates interaction state from the last known liked/count pair
func NewState(liked bool, count int) *State {
	if count < 0 {
		count = 0
	}
	return &State{liked: liked, count: count}
}

// Snapshot returns the current liked flag and count
func (s *State) Snapshot() (liked bool, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked, s.count
}

// Pending reports whether a mutation is in flight
func (s *State) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Controller toggles a like with immediate local feedback. Like and
// Unlike perform the mutation; FetchAuthoritative, when set, re-fetches
// the server's view after a successful mutation to correct for concurrent
// changes by other sessions.
type Controller struct {
	Like               func() error
	Unlike             func() error
	FetchAuthoritative func() (liked bool, count int, err error)
}

// Toggle flips the liked state. The optimistic delta is applied before
// the network call and rolled back exactly if the call fails. A toggle
// requested while another is still pending is dropped: no queuing, no
// second network call. The count never goes below zero, even transiently.
func (c *Controller) Toggle(s *State) error {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		logger.Debug("Toggle ignored, mutation already pending")
		return nil
	}
	s.pending = true

	originalLiked := s.liked
	originalCount := s.count

	var mutate func() error
	if s.liked {
		s.liked = false
		if s.count > 0 {
			s.count--
		}
		mutate = c.Unlike
	} else {
		s.liked = true
		s.count++
		mutate = c.Like
	}
	s.mu.Unlock()

	if err := mutate(); err != nil {
		s.mu.Lock()
		s.liked = originalLiked
		s.count = originalCount
		s.pending = false
		s.mu.Unlock()
		return err
	}

	if c.FetchAuthoritative != nil {
		liked, count, err := c.FetchAuthoritative()
		if err != nil {
			// The mutation itself succeeded; keep the optimistic values
			// rather than rolling back over a failed re-fetch.
			logger.Debug("Reconciliation fetch failed, keeping optimistic state", "error", err)
		} else {
			if count < 0 {
				count = 0
			}
			s.mu.Lock()
			s.liked = liked
			s.count = count
			s.mu.Unlock()
		}
	}

	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
	return nil
}
