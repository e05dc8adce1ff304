package state

import "github.com/linkuplabs/linkup/internal/api"

// Action is the closed set of state transitions. A sum type instead of
// a string tag keeps the dispatch surface exhaustive and typo-proof.
type Action interface {
	isAction()
}

// FeedLoading marks a feed fetch in flight. The existing feed is kept
// so load-more keeps rendering.
type FeedLoading struct{}

// FeedLoaded lands a fetched page. Page 1 replaces the feed; any later
// page appends. That distinction carries pull-to-refresh vs
// infinite-scroll semantics.
type FeedLoaded struct {
	Posts   []api.Post
	Page    int
	HasMore bool
}

// FeedLoadFailed clears the in-flight flag after a failed fetch. The
// feed already on screen is kept.
type FeedLoadFailed struct{}

// PostCreated prepends an optimistic post and closes the composer. The
// post carries a local id and the Optimistic flag until the service
// confirms it.
type PostCreated struct {
	Post api.Post
}

// PostConfirmed swaps the optimistic entry for the server copy.
type PostConfirmed struct {
	LocalID string
	Post    api.Post
}

// PostFailed rolls an unconfirmed optimistic post back out of the feed.
type PostFailed struct {
	LocalID string
}

// PostReacted applies the viewer's reaction locally: tally +1 and the
// chosen kind recorded on the client copy. The server-side count is
// never read back; divergence after a refetch is accepted.
type PostReacted struct {
	PostID string
	Kind   api.ReactionKind
}

// PostDeleted removes a post and scrubs every slice referencing it:
// bookmarks, loaded comments, and the open-thread flag.
type PostDeleted struct {
	PostID string
}

// CommentsLoaded caches a post's comment thread.
type CommentsLoaded struct {
	PostID   string
	Comments []api.Comment
}

// CommentAdded appends to a post's thread and bumps the denormalized
// comment count on the feed copy.
type CommentAdded struct {
	PostID  string
	Comment api.Comment
}

// ToggleComments opens or closes a post's comment thread.
type ToggleComments struct {
	PostID string
}

// Navigate switches routes. Search UI resets as part of the same
// transition so presentation code never duplicates that logic. A nil
// Profile clears the selection back to the viewer's own profile.
type Navigate struct {
	Route   Route
	Profile *api.User
}

// ToggleComposer flips the post composer.
type ToggleComposer struct{}

// SetTheme selects the color scheme.
type SetTheme struct {
	Theme Theme
}

// Announce appends to the accessible announcement log.
type Announce struct {
	Message string
}

// ToggleMessaging flips the messaging panel. Closing also clears the
// active conversation; opening does not.
type ToggleMessaging struct{}

// OpenChat selects a conversation and clears its unread counter.
type OpenChat struct {
	ConversationID string
}

// CloseChat returns from a chat to the conversation list.
type CloseChat struct{}

// ConversationsLoaded lands the conversation list.
type ConversationsLoaded struct {
	Conversations []api.Conversation
}

// MessagesLoaded caches a conversation's messages.
type MessagesLoaded struct {
	ConversationID string
	Messages       []api.Message
}

// MessageSent appends a sent message and refreshes the conversation's
// last-message preview.
type MessageSent struct {
	ConversationID string
	Message        api.Message
}

// SetSearchQuery records typing. The results surface opens only once
// the query is non-empty; the debounced fetch lives outside the
// reducer.
type SetSearchQuery struct {
	Query string
}

// SearchLoaded lands search results.
type SearchLoaded struct {
	Results api.SearchResults
}

// CloseSearch clears query, results, and the open flag atomically.
type CloseSearch struct{}

// ToggleBookmark flips set membership for a post id. Two toggles net to
// identity.
type ToggleBookmark struct {
	PostID string
}

// ConnectionsLoaded replaces the connections set.
type ConnectionsLoaded struct {
	IDs []string
}

// RequestsLoaded replaces the pending request list.
type RequestsLoaded struct {
	Requests []api.ConnectionRequest
}

// ConnectionRequestAccepted removes the pending request and adds the
// requester to the connections set. Connections are one-sided from the
// accepter's point of view; the other party has no state here.
type ConnectionRequestAccepted struct {
	RequestID  string
	FromUserID string
}

// ConnectionRemoved drops a user from the connections set.
type ConnectionRemoved struct {
	UserID string
}

// NotificationsLoaded replaces the notification list.
type NotificationsLoaded struct {
	Notifications []api.Notification
}

// NotificationAdded prepends a notification.
type NotificationAdded struct {
	Notification api.Notification
}

// NotificationRead marks one notification read.
type NotificationRead struct {
	ID string
}

// AllNotificationsRead marks every notification read.
type AllNotificationsRead struct{}

// AboutUpdated edits the viewer's About text. Client-local only; the
// mock service never sees it.
type AboutUpdated struct {
	Text string
}

func (FeedLoading) isAction()               {}
func (FeedLoaded) isAction()                {}
func (FeedLoadFailed) isAction()            {}
func (PostCreated) isAction()               {}
func (PostConfirmed) isAction()             {}
func (PostFailed) isAction()                {}
func (PostReacted) isAction()               {}
func (PostDeleted) isAction()               {}
func (CommentsLoaded) isAction()            {}
func (CommentAdded) isAction()              {}
func (ToggleComments) isAction()            {}
func (Navigate) isAction()                  {}
func (ToggleComposer) isAction()            {}
func (SetTheme) isAction()                  {}
func (Announce) isAction()                  {}
func (ToggleMessaging) isAction()           {}
func (OpenChat) isAction()                  {}
func (CloseChat) isAction()                 {}
func (ConversationsLoaded) isAction()       {}
func (MessagesLoaded) isAction()            {}
func (MessageSent) isAction()               {}
func (SetSearchQuery) isAction()            {}
func (SearchLoaded) isAction()              {}
func (CloseSearch) isAction()               {}
func (ToggleBookmark) isAction()            {}
func (ConnectionsLoaded) isAction()         {}
func (RequestsLoaded) isAction()            {}
func (ConnectionRequestAccepted) isAction() {}
func (ConnectionRemoved) isAction()         {}
func (NotificationsLoaded) isAction()       {}
func (NotificationAdded) isAction()         {}
func (NotificationRead) isAction()          {}
func (AllNotificationsRead) isAction()      {}
func (AboutUpdated) isAction()              {}
