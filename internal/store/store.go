package store

import (
	"time"

	"github.com/primalhq/primal/internal/model"
)

// Clock supplies wall time for activity log entries. Injected so tests
// can drive deterministic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall time.
func (SystemClock) Now() time.Time { return time.Now() }

// Store owns the canonical in-memory state and is its only mutator.
//
// A Store is explicitly constructed per session and passed by handle to
// command handlers and projectors. It is not safe for concurrent use:
// the design assumes exactly one logical writer at a time.
type Store struct {
	state model.State
	clock Clock

	// lastLogID guards log-entry ID monotonicity when two entries land
	// within the same millisecond.
	lastLogID int64
}

// New creates a store seeded with the default first-run state.
func New(clock Clock) *Store {
	return FromState(model.DefaultState(), clock)
}

// FromState creates a store around an existing state snapshot.
// Session and transient fields are reset: the session starts logged out,
// the view cursor returns to the dashboard, and the selection set starts
// empty.
func FromState(st model.State, clock Clock) *Store {
	s := st.Clone()
	s.LoggedIn = false
	s.View = model.ViewDashboard
	s.Selected = nil
	if s.Theme != model.ThemeDark {
		s.Theme = model.ThemeLight
	}
	store := &Store{state: s, clock: clock}
	for _, e := range s.Logs {
		if e.ID > store.lastLogID {
			store.lastLogID = e.ID
		}
	}
	return store
}

// Snapshot returns a deep copy of the current state. Callers may read and
// mutate the copy freely; the store's own state is unaffected.
func (s *Store) Snapshot() model.State {
	return s.state.Clone()
}

// Replace swaps in a whole new state, used by import. The session flag is
// preserved: restoring a backup does not log the user out. Transient
// selection and view state reset.
func (s *Store) Replace(st model.State) {
	loggedIn := s.state.LoggedIn
	s.state = st.Clone()
	s.state.LoggedIn = loggedIn
	s.state.View = model.ViewDashboard
	s.state.Selected = nil
	s.lastLogID = 0
	for _, e := range s.state.Logs {
		if e.ID > s.lastLogID {
			s.lastLogID = e.ID
		}
	}
}

// LoggedIn reports whether this session has authenticated.
func (s *Store) LoggedIn() bool { return s.state.LoggedIn }

// FirstRun reports whether no master password has been set yet.
func (s *Store) FirstRun() bool { return s.state.Password == "" }

// Login authenticates the session.
//
// If no password is set (first-run setup), the candidate becomes the new
// master password and the session is logged in immediately. Otherwise the
// candidate must match the stored password exactly.
func (s *Store) Login(candidate string) error {
	if candidate == "" {
		return NewValidationError("password", "password must not be empty")
	}
	if s.state.Password == "" {
		s.state.Password = candidate
		s.state.LoggedIn = true
		return nil
	}
	if candidate != s.state.Password {
		return NewAuthError()
	}
	s.state.LoggedIn = true
	return nil
}

// Logout clears the session flag. The stored password is untouched.
func (s *Store) Logout() {
	s.state.LoggedIn = false
}

// SetPassword replaces the master password.
func (s *Store) SetPassword(newValue string) error {
	if newValue == "" {
		return NewValidationError("password", "password must not be empty")
	}
	s.state.Password = newValue
	return nil
}
