package state

import (
	"github.com/linkuplabs/linkup/internal/api"
)

// Route identifies the active top-level view.
type Route string

const (
	RouteFeed          Route = "feed"
	RouteProfile       Route = "profile"
	RouteNetwork       Route = "network"
	RouteNotifications Route = "notifications"
	RouteSaved         Route = "saved"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// State is the single authoritative record everything the UI renders is
// drawn from. It only changes through Reduce; readers get value copies.
type State struct {
	// Feed
	Feed        []api.Post
	FeedPage    int
	FeedLoading bool
	FeedHasMore bool

	// Identity and navigation
	CurrentUser     api.User
	SelectedProfile *api.User // nil means the viewer's own profile
	ActiveRoute     Route
	ComposerOpen    bool
	Theme           Theme

	// Accessible announcement log, oldest first.
	Announcements []string

	// Search
	SearchQuery   string
	SearchOpen    bool
	SearchResults api.SearchResults

	// Messaging
	MessagingOpen          bool
	ActiveConversation     string
	Conversations          []api.Conversation
	MessagesByConversation map[string][]api.Message

	// Comment threads, keyed by post id.
	CommentsByPost map[string][]api.Comment
	OpenComments   map[string]bool

	// Network
	Connections     map[string]bool
	PendingRequests []api.ConnectionRequest

	// Bookmarks
	SavedPosts map[string]bool

	Notifications []api.Notification
}

// New returns the initial state for a session: empty feed primed for a
// first page load, dark theme, feed route.
func New(currentUser api.User) State {
	return State{
		FeedPage:               1,
		FeedHasMore:            true,
		CurrentUser:            currentUser,
		ActiveRoute:            RouteFeed,
		Theme:                  ThemeDark,
		MessagesByConversation: map[string][]api.Message{},
		CommentsByPost:         map[string][]api.Comment{},
		OpenComments:           map[string]bool{},
		Connections:            map[string]bool{},
		SavedPosts:             map[string]bool{},
	}
}

// ProfileUser resolves the profile under view, defaulting to the
// viewer's own.
func (s State) ProfileUser() api.User {
	if s.SelectedProfile != nil {
		return *s.SelectedProfile
	}
	return s.CurrentUser
}

// UnreadNotifications counts notifications not yet marked read.
func (s State) UnreadNotifications() int {
	n := 0
	for _, notif := range s.Notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// LastAnnouncement returns the most recent announcement, if any.
func (s State) LastAnnouncement() string {
	if len(s.Announcements) == 0 {
		return ""
	}
	return s.Announcements[len(s.Announcements)-1]
}

// clone container helpers. Snapshots share element data with the store;
// the reducer copies before writing, so shared reads stay safe.

func clonePosts(posts []api.Post) []api.Post {
	if len(posts) == 0 {
		return nil
	}
	dup := make([]api.Post, len(posts))
	copy(dup, posts)
	return dup
}

func cloneStringSet(set map[string]bool) map[string]bool {
	dup := make(map[string]bool, len(set))
	for k, v := range set {
		dup[k] = v
	}
	return dup
}

func cloneMessageMap(m map[string][]api.Message) map[string][]api.Message {
	dup := make(map[string][]api.Message, len(m))
	for k, v := range m {
		dup[k] = v
	}
	return dup
}

func cloneCommentMap(m map[string][]api.Comment) map[string][]api.Comment {
	dup := make(map[string][]api.Comment, len(m))
	for k, v := range m {
		dup[k] = v
	}
	return dup
}
