package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/linkuplabs/linkup/internal/api"
)

// rowKind tags the three sections of the network view.
type rowKind int

const (
	rowRequest rowKind = iota
	rowConnection
	rowSuggestion
)

// networkRow is one selectable line in the network view.
type networkRow struct {
	kind      rowKind
	user      api.User
	requestID string // set for rowRequest
}

// userByID resolves a user from the member directory. Unknown ids get
// a placeholder so rendering never depends on the directory load.
func (m Model) userByID(id string) api.User {
	if id == m.snap.CurrentUser.ID {
		return m.snap.CurrentUser
	}
	for _, u := range m.people {
		if u.ID == id {
			return u
		}
	}
	return api.User{ID: id, Name: id}
}

// savedFeed filters the loaded feed down to bookmarked posts.
func (m Model) savedFeed() []api.Post {
	var out []api.Post
	for _, p := range m.snap.Feed {
		if m.snap.SavedPosts[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// networkRows assembles invitations, connections, and suggestions into
// one selectable list, in that order.
func (m Model) networkRows() []networkRow {
	var rows []networkRow
	for _, r := range m.snap.PendingRequests {
		rows = append(rows, networkRow{kind: rowRequest, user: m.userByID(r.FromUserID), requestID: r.ID})
	}

	connected := make([]string, 0, len(m.snap.Connections))
	for id := range m.snap.Connections {
		connected = append(connected, id)
	}
	sort.Strings(connected)
	for _, id := range connected {
		rows = append(rows, networkRow{kind: rowConnection, user: m.userByID(id)})
	}

	for _, u := range m.people {
		if m.snap.Connections[u.ID] || m.hasPendingFrom(u.ID) {
			continue
		}
		rows = append(rows, networkRow{kind: rowSuggestion, user: u})
	}
	return rows
}

// topLevelComments returns the loaded thread for a post with replies
// filtered out; the reply cursor moves over these.
func (m Model) topLevelComments(postID string) []api.Comment {
	var out []api.Comment
	for _, c := range m.snap.CommentsByPost[postID] {
		if c.ParentID == "" {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) hasPendingFrom(userID string) bool {
	for _, r := range m.snap.PendingRequests {
		if r.FromUserID == userID {
			return true
		}
	}
	return false
}

// initials derives a two-letter avatar fallback from a display name.
func initials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "??"
	case 1:
		r := []rune(fields[0])
		if len(r) == 1 {
			return strings.ToUpper(string(r[0]))
		}
		return strings.ToUpper(string(r[:2]))
	default:
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// relativeTime renders a timestamp the way the feed shows it: coarse
// buckets, no clock math the user has to do.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "just now"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// reactionLine summarizes a post's nonzero reaction tallies.
func reactionLine(p api.Post) string {
	kinds := []api.ReactionKind{api.ReactionLike, api.ReactionCelebrate, api.ReactionSupport, api.ReactionInsightful}
	var parts []string
	for _, k := range kinds {
		if n := p.Reactions[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}
	if len(parts) == 0 {
		return "no reactions"
	}
	return strings.Join(parts, " · ")
}
