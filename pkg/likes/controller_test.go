package likes

import (
	"errors"
	"sync"
	"testing"
)

// counter tracks how many times each collaborator ran
type counter struct {
	mu      sync.Mutex
	likes   int
	unlikes int
}

func (c *counter) like() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.likes++
	return nil
}

func (c *counter) unlike() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unlikes++
	return nil
}

// TestToggleLikeOptimistic flips to liked and bumps the count
func TestToggleLikeOptimistic(t *testing.T) {
	calls := &counter{}
	ctrl := &Controller{Like: calls.like, Unlike: calls.unlike}
	state := NewState(false, 5)

	if err := ctrl.Toggle(state); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	liked, count := state.Snapshot()
	if !liked || count != 6 {
		t.Errorf("Expected {liked:true, count:6}, got {%v, %d}", liked, count)
	}
	if calls.likes != 1 || calls.unlikes != 0 {
		t.Errorf("Expected one like call, got likes=%d unlikes=%d", calls.likes, calls.unlikes)
	}
	if state.Pending() {
		t.Error("Pending should clear after settle")
	}
}

// TestToggleUnlikeOptimistic flips to unliked and decrements
func TestToggleUnlikeOptimistic(t *testing.T) {
	calls := &counter{}
	ctrl := &Controller{Like: calls.like, Unlike: calls.unlike}
	state := NewState(true, 5)

	if err := ctrl.Toggle(state); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	liked, count := state.Snapshot()
	if liked || count != 4 {
		t.Errorf("Expected {liked:false, count:4}, got {%v, %d}", liked, count)
	}
	if calls.unlikes != 1 {
		t.Errorf("Expected one unlike call, got %d", calls.unlikes)
	}
}

// TestRollbackRestoresExactState verifies a failed mutation restores the
// snapshot bit for bit
func TestRollbackRestoresExactState(t *testing.T) {
	ctrl := &Controller{
		Like:   func() error { return errors.New("network down") },
		Unlike: func() error { return nil },
	}
	state := NewState(false, 5)

	err := ctrl.Toggle(state)
	if err == nil {
		t.Fatal("Expected mutation error to propagate")
	}

	liked, count := state.Snapshot()
	if liked != false || count != 5 {
		t.Errorf("Expected exact rollback to {false, 5}, got {%v, %d}", liked, count)
	}
	if state.Pending() {
		t.Error("Pending should clear after a failed mutation")
	}
}

// TestCountNeverNegative verifies unliking at zero doesn't underflow
func TestCountNeverNegative(t *testing.T) {
	calls := &counter{}
	ctrl := &Controller{Like: calls.like, Unlike: calls.unlike}

	// Server said liked but count zero; the decrement must clamp.
	state := NewState(true, 0)

	if err := ctrl.Toggle(state); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	liked, count := state.Snapshot()
	if liked || count != 0 {
		t.Errorf("Expected {false, 0}, got {%v, %d}", liked, count)
	}
}

// TestCountNonNegativeUnderToggleSequences runs alternating toggles with
// intermittent failures and checks the count never dips below zero
func TestCountNonNegativeUnderToggleSequences(t *testing.T) {
	fail := false
	ctrl := &Controller{
		Like: func() error {
			if fail {
				return errors.New("boom")
			}
			return nil
		},
		Unlike: func() error {
			if fail {
				return errors.New("boom")
			}
			return nil
		},
	}

	state := NewState(false, 0)

	for i := 0; i < 50; i++ {
		fail = i%3 == 0
		_ = ctrl.Toggle(state)

		_, count := state.Snapshot()
		if count < 0 {
			t.Fatalf("Count went negative (%d) at step %d", count, i)
		}
	}
}

// TestPendingGuardSingleFlight verifies a toggle issued while another is
// in flight is dropped without a second network call
func TestPendingGuardSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	calls := &counter{}

	ctrl := &Controller{
		Like: func() error {
			close(started)
			<-release
			return calls.like()
		},
		Unlike: calls.unlike,
	}
	state := NewState(false, 5)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Toggle(state)
	}()

	<-started
	if !state.Pending() {
		t.Error("Expected pending while mutation in flight")
	}

	// Second toggle while the first is still pending: must be a no-op.
	if err := ctrl.Toggle(state); err != nil {
		t.Errorf("Dropped toggle should not error: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("First toggle failed: %v", err)
	}

	if calls.likes != 1 || calls.unlikes != 0 {
		t.Errorf("Expected exactly one network call, got likes=%d unlikes=%d", calls.likes, calls.unlikes)
	}

	liked, count := state.Snapshot()
	if !liked || count != 6 {
		t.Errorf("Expected {true, 6}, got {%v, %d}", liked, count)
	}
}

// TestReconciliationOverwritesOptimisticState applies the authoritative
// values after a successful mutation
func TestReconciliationOverwritesOptimisticState(t *testing.T) {
	calls := &counter{}
	ctrl := &Controller{
		Like:   calls.like,
		Unlike: calls.unlike,
		FetchAuthoritative: func() (bool, int, error) {
			// Other sessions liked the image concurrently.
			return true, 42, nil
		},
	}
	state := NewState(false, 5)

	if err := ctrl.Toggle(state); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	liked, count := state.Snapshot()
	if !liked || count != 42 {
		t.Errorf("Expected reconciled {true, 42}, got {%v, %d}", liked, count)
	}
}

// TestReconciliationFailureKeepsOptimisticState does not roll back when
// only the re-fetch fails
func TestReconciliationFailureKeepsOptimisticState(t *testing.T) {
	calls := &counter{}
	ctrl := &Controller{
		Like:   calls.like,
		Unlike: calls.unlike,
		FetchAuthoritative: func() (bool, int, error) {
			return false, 0, errors.New("fetch failed")
		},
	}
	state := NewState(false, 5)

	if err := ctrl.Toggle(state); err != nil {
		t.Fatalf("Toggle should succeed when only reconciliation fails: %v", err)
	}

	liked, count := state.Snapshot()
	if !liked || count != 6 {
		t.Errorf("Expected optimistic {true, 6} kept, got {%v, %d}", liked, count)
	}
}

// TestReconciliationClampsNegativeServerCount guards against a bad
// authoritative value
func TestReconciliationClampsNegativeServerCount(t *testing.T) {
	calls := &counter{}
	ctrl := &Controller{
		Like:   calls.like,
		Unlike: calls.unlike,
		FetchAuthoritative: func() (bool, int, error) {
			return true, -3, nil
		},
	}
	state := NewState(false, 0)

	if err := ctrl.Toggle(state); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	_, count := state.Snapshot()
	if count != 0 {
		t.Errorf("Expected clamped count 0, got %d", count)
	}
}

// TestNewStateClampsNegativeCount guards the initial value too
func TestNewStateClampsNegativeCount(t *testing.T) {
	state := NewState(false, -10)
	_, count := state.Snapshot()
	if count != 0 {
		t.Errorf("Expected initial count 0, got %d", count)
	}
}
