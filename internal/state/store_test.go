package state

import (
	"sync"
	"testing"

	"github.com/linkuplabs/linkup/internal/api"
)

func TestStore_DispatchReturnsSnapshot(t *testing.T) {
	s := NewStore(baseState())

	snap := s.Dispatch(FeedLoaded{Posts: []api.Post{post("p1")}, Page: 1, HasMore: false})
	if len(snap.Feed) != 1 || snap.Feed[0].ID != "p1" {
		t.Fatalf("dispatch snapshot feed = %v, want [p1]", feedIDs(snap))
	}

	// Returned snapshot is independent of the stored state.
	snap.Feed[0].ID = "mangled"
	if got := s.Snapshot().Feed[0].ID; got != "p1" {
		t.Fatalf("store feed head = %q, want p1", got)
	}
}

func TestStore_SnapshotClonesContainers(t *testing.T) {
	s := NewStore(baseState())
	s.Dispatch(ToggleBookmark{PostID: "p1"})

	snap := s.Snapshot()
	snap.SavedPosts["p2"] = true
	delete(snap.SavedPosts, "p1")

	fresh := s.Snapshot()
	if !fresh.SavedPosts["p1"] || fresh.SavedPosts["p2"] {
		t.Fatalf("saved set = %v, want only p1", fresh.SavedPosts)
	}
}

func TestStore_WatchersSeeEveryDispatch(t *testing.T) {
	s := NewStore(baseState())

	var seen []string
	s.Watch(func(snap State) {
		seen = append(seen, snap.LastAnnouncement())
	})

	s.Dispatch(Announce{Message: "one"})
	s.Dispatch(Announce{Message: "two"})

	if len(seen) != 2 || seen[0] != "one" || seen[1] != "two" {
		t.Fatalf("watcher saw %v, want [one two]", seen)
	}
}

func TestStore_ConcurrentDispatches(t *testing.T) {
	s := NewStore(baseState())
	s.Dispatch(FeedLoaded{Posts: []api.Post{post("p1")}, Page: 1, HasMore: false})

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Dispatch(PostReacted{PostID: "p1", Kind: api.ReactionLike})
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Feed[0].Reactions[api.ReactionLike]; got != n {
		t.Fatalf("like count = %d, want %d", got, n)
	}
}
