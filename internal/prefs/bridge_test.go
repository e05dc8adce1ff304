package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/linkuplabs/linkup/internal/api"
	"github.com/linkuplabs/linkup/internal/state"
)

func newBridgeStore() *state.Store {
	return state.NewStore(state.New(api.User{ID: "u1", Name: "Sarah Chen"}))
}

// waitForFile polls until the prefs file appears or the deadline hits.
func waitForFile(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("prefs file %s never appeared", path)
}

func TestBridge_DebouncedWrite(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "prefs.toml")

	store := newBridgeStore()
	b := NewBridge(path, WithQuietPeriod(20*time.Millisecond))
	b.Attach(store)
	defer b.Close()

	// A burst of toggles collapses into one write of the final value.
	store.Dispatch(state.ToggleBookmark{PostID: "p1"})
	store.Dispatch(state.ToggleBookmark{PostID: "p2"})
	store.Dispatch(state.ToggleBookmark{PostID: "p1"})

	waitForFile(t, path)
	p := Load(path)
	if len(p.SavedPosts) != 1 || p.SavedPosts[0] != "p2" {
		t.Fatalf("SavedPosts = %v, want [p2]", p.SavedPosts)
	}
}

func TestBridge_IgnoresUnwatchedChanges(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "prefs.toml")

	store := newBridgeStore()
	b := NewBridge(path, WithQuietPeriod(10*time.Millisecond))
	b.Attach(store)
	defer b.Close()

	// Announcements are not part of the persisted projection.
	store.Dispatch(state.Announce{Message: "hello"})
	store.Dispatch(state.FeedLoading{})

	time.Sleep(60 * time.Millisecond)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("prefs file written for unwatched change, stat err = %v", err)
	}
}

func TestBridge_AttachDoesNotWriteBaseline(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "prefs.toml")

	store := newBridgeStore()
	// State restored from disk at startup: theme already light.
	store.Dispatch(state.SetTheme{Theme: state.ThemeLight})

	b := NewBridge(path, WithQuietPeriod(10*time.Millisecond))
	b.Attach(store)
	defer b.Close()

	// Re-dispatching the same theme changes nothing; no write happens.
	store.Dispatch(state.SetTheme{Theme: state.ThemeLight})

	time.Sleep(60 * time.Millisecond)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("prefs file written with no effective change, stat err = %v", err)
	}
}

func TestBridge_CloseFlushesPending(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "prefs.toml")

	store := newBridgeStore()
	// Long quiet period: the timer will not fire during the test.
	b := NewBridge(path, WithQuietPeriod(time.Hour))
	b.Attach(store)

	store.Dispatch(state.SetTheme{Theme: state.ThemeLight})
	b.Close()

	p := Load(path)
	if p.Theme != "light" {
		t.Fatalf("Theme = %q after Close, want light", p.Theme)
	}
}

func TestFromStateApply_RoundTrip(t *testing.T) {
	s := state.New(api.User{ID: "u1"})
	s = state.Reduce(s, state.SetTheme{Theme: state.ThemeLight})
	s = state.Reduce(s, state.ToggleBookmark{PostID: "p3"})
	s = state.Reduce(s, state.ToggleBookmark{PostID: "p1"})
	s = state.Reduce(s, state.ConnectionsLoaded{IDs: []string{"u5", "u2"}})

	p := FromState(s)
	if p.Theme != "light" {
		t.Fatalf("Theme = %q, want light", p.Theme)
	}
	// Sets come out sorted so the file is stable.
	if len(p.SavedPosts) != 2 || p.SavedPosts[0] != "p1" || p.SavedPosts[1] != "p3" {
		t.Fatalf("SavedPosts = %v, want [p1 p3]", p.SavedPosts)
	}
	if len(p.Connections) != 2 || p.Connections[0] != "u2" {
		t.Fatalf("Connections = %v, want [u2 u5]", p.Connections)
	}

	restored := p.Apply(state.New(api.User{ID: "u1"}))
	if restored.Theme != state.ThemeLight {
		t.Fatalf("Theme = %q after Apply, want light", restored.Theme)
	}
	if !restored.SavedPosts["p3"] || !restored.SavedPosts["p1"] {
		t.Fatalf("SavedPosts = %v after Apply", restored.SavedPosts)
	}
	if !restored.Connections["u5"] {
		t.Fatalf("Connections = %v after Apply", restored.Connections)
	}
}
