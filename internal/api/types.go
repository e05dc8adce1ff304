package api

import "time"

// ReactionKind enumerates the reactions a post can receive.
type ReactionKind string

const (
	ReactionLike       ReactionKind = "like"
	ReactionCelebrate  ReactionKind = "celebrate"
	ReactionSupport    ReactionKind = "support"
	ReactionInsightful ReactionKind = "insightful"
)

// Reactions maps a reaction kind to its tally. Kinds with no reactions
// may be absent from the map.
type Reactions map[ReactionKind]int

// Total sums every tally.
func (r Reactions) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Clone returns an independent copy of the tally map.
func (r Reactions) Clone() Reactions {
	if r == nil {
		return nil
	}
	dup := make(Reactions, len(r))
	for k, v := range r {
		dup[k] = v
	}
	return dup
}

// Experience is a single entry on a user's profile. It has no lifecycle
// of its own; it lives and dies with its User.
type Experience struct {
	Title    string
	Company  string
	Duration string
	Logo     string
}

// User is a member profile. Seeded users are immutable except for the
// About text, which the profile owner may edit in client state only.
type User struct {
	ID          string
	Name        string
	Headline    string
	Avatar      string // empty means no avatar uploaded
	CoverColor  string
	Location    string
	Connections int
	About       string
	Experience  []Experience
	Skills      []string
}

// Post is a feed entry. Author is a denormalized snapshot attached at
// read time and may be nil when the author id does not resolve.
type Post struct {
	ID           string
	AuthorID     string
	Author       *User
	Content      string
	CreatedAt    time.Time
	Reactions    Reactions
	Comments     int
	Reposts      int
	UserReaction ReactionKind // viewer's own reaction, client-local
	Optimistic   bool         // client-created, awaiting confirmation
}

// Comment belongs to a post. A non-empty ParentID makes it a reply;
// chains of ParentID values can nest arbitrarily deep.
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Author    *User
	ParentID  string
	Content   string
	CreatedAt time.Time
}

// Message is one entry in a conversation. Append-only.
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	Content        string
	SentAt         time.Time
}

// Conversation is a direct-message thread between exactly two users.
// At most one conversation exists per unordered participant pair.
type Conversation struct {
	ID             string
	ParticipantIDs [2]string
	LastMessage    *Message
	Unread         int
}

// Other returns the participant that is not userID, or empty when
// userID is not a participant.
func (c Conversation) Other(userID string) string {
	if c.ParticipantIDs[0] == userID {
		return c.ParticipantIDs[1]
	}
	if c.ParticipantIDs[1] == userID {
		return c.ParticipantIDs[0]
	}
	return ""
}

// Has reports whether userID participates in the conversation.
func (c Conversation) Has(userID string) bool {
	return c.ParticipantIDs[0] == userID || c.ParticipantIDs[1] == userID
}

// NotificationKind enumerates notification types.
type NotificationKind string

const (
	NotifyReaction           NotificationKind = "reaction"
	NotifyComment            NotificationKind = "comment"
	NotifyConnectionRequest  NotificationKind = "connection_request"
	NotifyConnectionAccepted NotificationKind = "connection_accepted"
	NotifyMention            NotificationKind = "mention"
)

// Notification is an event addressed to the viewer. Only the Read flag
// mutates after creation.
type Notification struct {
	ID         string
	Kind       NotificationKind
	FromUserID string
	From       *User
	CreatedAt  time.Time
	Read       bool
	PostID     string // set for reaction/comment/mention kinds
	Message    string
}

// ConnectionRequest is a pending invitation. Accepting removes it and
// adds the requester to the accepter's connections.
type ConnectionRequest struct {
	ID         string
	FromUserID string
	ToUserID   string
	SentAt     time.Time
}

// PageMeta reports pagination bookkeeping for list endpoints.
type PageMeta struct {
	Page    int
	Limit   int
	Total   int
	HasMore bool
}

// Page wraps a paginated response the way a REST envelope would.
type Page[T any] struct {
	Data []T
	Meta PageMeta
}

// SearchResults carries both halves of a search response. Post matches
// are capped by the service; user matches are not.
type SearchResults struct {
	Users []User
	Posts []Post
}

// ReactionReceipt confirms a reaction write with the server-side count.
type ReactionReceipt struct {
	PostID string
	Kind   ReactionKind
	Count  int
}

// CommentReceipt reports a post's comment total after an add.
type CommentReceipt struct {
	PostID   string
	Comments int
}
