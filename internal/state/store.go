package state

import "sync"

// Store owns the application state. Dispatch is the only writer: it
// runs the reducer under the lock, so actions apply strictly in
// dispatch order even though Bubble Tea commands complete on arbitrary
// goroutines.
type Store struct {
	mu       sync.RWMutex
	state    State
	watchers []func(State)
}

// NewStore seeds a store with an initial state.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// Dispatch applies the action and returns the resulting snapshot.
// Watchers run synchronously, still ordered with the dispatch; they
// must not dispatch back into the store.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	snap := s.snapshotLocked()
	for _, watch := range s.watchers {
		watch(snap)
	}
	return snap
}

// Snapshot returns a copy of the current state. Containers are copied
// at the top level; element data is shared and treated as read-only by
// convention, the reducer copies before writing.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Watch registers a listener invoked after every dispatch with the new
// snapshot. Used by the persistence bridge.
func (s *Store) Watch(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.Feed = clonePosts(s.state.Feed)
	snap.Announcements = append([]string(nil), s.state.Announcements...)
	snap.SavedPosts = cloneStringSet(s.state.SavedPosts)
	snap.Connections = cloneStringSet(s.state.Connections)
	snap.CommentsByPost = cloneCommentMap(s.state.CommentsByPost)
	snap.OpenComments = cloneStringSet(s.state.OpenComments)
	snap.MessagesByConversation = cloneMessageMap(s.state.MessagesByConversation)
	return snap
}
