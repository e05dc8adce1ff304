package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linkuplabs/linkup/internal/api"
	"github.com/linkuplabs/linkup/internal/state"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// threadModel builds a model with one post selected, its thread open,
// and two top-level comments (the second with a seed reply).
func threadModel(t *testing.T) Model {
	m := testModel(t)
	m.ready = true
	m.dispatch(state.FeedLoaded{Posts: []api.Post{{ID: "p1", AuthorID: "u2"}}, Page: 1})
	m.dispatch(state.ToggleComments{PostID: "p1"})
	m.dispatch(state.CommentsLoaded{PostID: "p1", Comments: []api.Comment{
		{ID: "c1", PostID: "p1", AuthorID: "u2", Content: "first"},
		{ID: "c2", PostID: "p1", AuthorID: "u3", Content: "second"},
		{ID: "c3", PostID: "p1", AuthorID: "u2", ParentID: "c2", Content: "seed reply"},
	}})
	return m
}

func TestReplyKey_TargetsSelectedComment(t *testing.T) {
	m := threadModel(t)

	// Move the comment cursor to the second top-level comment; the seed
	// reply under it is not a cursor stop.
	next, _ := m.Update(keyMsg("J"))
	m = next.(Model)
	if m.commentIndex != 1 {
		t.Fatalf("commentIndex = %d after J, want 1", m.commentIndex)
	}
	next, _ = m.Update(keyMsg("J"))
	m = next.(Model)
	if m.commentIndex != 1 {
		t.Fatalf("commentIndex = %d at thread end, want 1", m.commentIndex)
	}

	next, _ = m.Update(keyMsg("R"))
	m = next.(Model)
	if m.mode != modeComment {
		t.Fatalf("mode = %d after R, want comment input", m.mode)
	}
	if m.commentTarget != "p1" || m.commentParent != "c2" {
		t.Fatalf("target=%q parent=%q, want p1/c2", m.commentTarget, m.commentParent)
	}
}

func TestReplyKey_RequiresOpenThread(t *testing.T) {
	m := threadModel(t)
	m.dispatch(state.ToggleComments{PostID: "p1"}) // close it again

	next, _ := m.Update(keyMsg("R"))
	m = next.(Model)
	if m.mode != modeBrowse || m.commentParent != "" {
		t.Fatalf("mode=%d parent=%q, want browse with no parent", m.mode, m.commentParent)
	}
}

func TestCommentKey_TopLevelClearsParent(t *testing.T) {
	m := threadModel(t)

	// Start a reply, abandon it, then open a plain comment: the stale
	// parent must not leak into the new comment.
	next, _ := m.Update(keyMsg("R"))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.commentParent != "" {
		t.Fatalf("parent = %q after esc, want cleared", m.commentParent)
	}

	next, _ = m.Update(keyMsg("C"))
	m = next.(Model)
	if m.mode != modeComment || m.commentParent != "" {
		t.Fatalf("mode=%d parent=%q after C, want comment input with no parent", m.mode, m.commentParent)
	}
}
