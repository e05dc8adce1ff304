package ui

import (
	"testing"
	"time"

	"github.com/linkuplabs/linkup/internal/api"
	"github.com/linkuplabs/linkup/internal/state"
)

func testModel(t *testing.T) Model {
	t.Helper()
	store := state.NewStore(state.New(api.User{ID: "u1", Name: "Sarah Chen"}))
	return New(Options{Store: store})
}

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Sarah Chen", "SC"},
		{"Marcus Johnson", "MJ"},
		{"Cher", "CH"},
		{"X", "X"},
		{"", "??"},
		{"Ada Byron Lovelace", "AL"},
	}
	for _, tc := range cases {
		if got := initials(tc.name); got != tc.want {
			t.Fatalf("initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate(short, 10) = %q", got)
	}
	if got := truncate("somewhat longer text", 9); got != "somewhat…" {
		t.Fatalf("truncate = %q, want somewhat…", got)
	}
	if got := truncate("abc", 1); got != "…" {
		t.Fatalf("truncate(abc, 1) = %q, want …", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
		{time.Time{}, "just now"},
	}
	for _, tc := range cases {
		if got := relativeTime(tc.at); got != tc.want {
			t.Fatalf("relativeTime(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestWrap(t *testing.T) {
	got := wrap("alpha beta gamma delta", 11)
	want := "alpha beta\ngamma delta"
	if got != want {
		t.Fatalf("wrap = %q, want %q", got, want)
	}

	// Existing newlines are preserved.
	got = wrap("one\ntwo", 40)
	if got != "one\ntwo" {
		t.Fatalf("wrap = %q, want newlines kept", got)
	}
}

func TestReactionLine(t *testing.T) {
	p := api.Post{Reactions: api.Reactions{api.ReactionLike: 3, api.ReactionInsightful: 1}}
	if got := reactionLine(p); got != "3 like · 1 insightful" {
		t.Fatalf("reactionLine = %q", got)
	}
	if got := reactionLine(api.Post{}); got != "no reactions" {
		t.Fatalf("reactionLine(empty) = %q", got)
	}
}

func TestSavedFeed(t *testing.T) {
	m := testModel(t)
	m.dispatch(state.FeedLoaded{Posts: []api.Post{
		{ID: "p1"}, {ID: "p2"}, {ID: "p3"},
	}, Page: 1})
	m.dispatch(state.ToggleBookmark{PostID: "p3"})
	m.dispatch(state.ToggleBookmark{PostID: "p1"})

	saved := m.savedFeed()
	if len(saved) != 2 || saved[0].ID != "p1" || saved[1].ID != "p3" {
		t.Fatalf("savedFeed = %v, want feed order [p1 p3]", saved)
	}
}

func TestNetworkRows(t *testing.T) {
	m := testModel(t)
	m.people = []api.User{
		{ID: "u2", Name: "Marcus Johnson"},
		{ID: "u3", Name: "Priya Sharma"},
		{ID: "u4", Name: "Alex Rivera"},
	}
	m.dispatch(state.ConnectionsLoaded{IDs: []string{"u2"}})
	m.dispatch(state.RequestsLoaded{Requests: []api.ConnectionRequest{
		{ID: "r1", FromUserID: "u3", ToUserID: "u1"},
	}})

	rows := m.networkRows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].kind != rowRequest || rows[0].user.ID != "u3" || rows[0].requestID != "r1" {
		t.Fatalf("rows[0] = %+v, want the pending request first", rows[0])
	}
	if rows[1].kind != rowConnection || rows[1].user.ID != "u2" {
		t.Fatalf("rows[1] = %+v, want connection u2", rows[1])
	}
	if rows[2].kind != rowSuggestion || rows[2].user.ID != "u4" {
		t.Fatalf("rows[2] = %+v, want suggestion u4", rows[2])
	}
}

func TestUserByID(t *testing.T) {
	m := testModel(t)
	m.people = []api.User{{ID: "u2", Name: "Marcus Johnson"}}

	if got := m.userByID("u1").Name; got != "Sarah Chen" {
		t.Fatalf("userByID(u1) = %q, want the viewer", got)
	}
	if got := m.userByID("u2").Name; got != "Marcus Johnson" {
		t.Fatalf("userByID(u2) = %q", got)
	}
	// Unknown ids degrade to a placeholder instead of blank rows.
	if got := m.userByID("u9").Name; got != "u9" {
		t.Fatalf("userByID(u9) = %q, want id placeholder", got)
	}
}
