package api

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Lookup failures. Mutating calls that target a missing entity do NOT
// return these; they degrade to a benign zero result instead (the
// optimistic UI has usually moved on already). Only resolving a primary
// id rejects.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrConversationNotFound = errors.New("conversation not found")
)

// Backend is the full mock API surface. Implemented by *Service; UI
// code depends on this interface so tests can substitute fakes.
type Backend interface {
	FetchFeed(ctx context.Context, page, limit int) (Page[Post], error)
	FetchUser(ctx context.Context, userID string) (User, error)
	FetchPeople(ctx context.Context) ([]User, error)
	CreatePost(ctx context.Context, content, authorID string) (Post, error)
	DeletePost(ctx context.Context, postID string) error
	ReactToPost(ctx context.Context, postID string, kind ReactionKind) (ReactionReceipt, error)
	FetchComments(ctx context.Context, postID string) ([]Comment, error)
	AddComment(ctx context.Context, postID, content, authorID, parentID string) (Comment, error)
	Search(ctx context.Context, query string) (SearchResults, error)
	FetchConversations(ctx context.Context) ([]Conversation, error)
	FetchMessages(ctx context.Context, conversationID string) ([]Message, error)
	SendMessage(ctx context.Context, conversationID, content, senderID string) (Message, error)
	EnsureConversation(ctx context.Context, userA, userB string) (Conversation, error)
	SendConnectionRequest(ctx context.Context, fromID, toID string) (ConnectionRequest, error)
	AcceptConnectionRequest(ctx context.Context, requestID string) (string, error)
	RemoveConnection(ctx context.Context, userID string) error
	FetchConnections(ctx context.Context) ([]string, error)
	PendingRequests(ctx context.Context) ([]ConnectionRequest, error)
	FetchNotifications(ctx context.Context) ([]Notification, error)
	AddNotification(ctx context.Context, n Notification) (Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// Ensure Service implements Backend at compile time.
var _ Backend = (*Service)(nil)

// Service simulates a remote REST backend over a Dataset: jittered
// latency per call, envelope-shaped responses, and direct mutation of
// the in-memory collections at resolution time.
//
// Bubble Tea runs commands on their own goroutines, so a mutex
// serializes every call; each mutation is atomic from the caller's
// point of view.
type Service struct {
	mu      sync.Mutex
	data    *Dataset
	log     *zap.Logger
	latency bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithoutLatency disables the simulated network delays. Used by tests
// and the "latency = none" config setting.
func WithoutLatency() Option {
	return func(s *Service) { s.latency = false }
}

// NewService wraps the dataset with the mock API surface.
func NewService(data *Dataset, opts ...Option) *Service {
	s := &Service{
		data:    data,
		log:     zap.NewNop(),
		latency: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sleep simulates network jitter within [min, max). It returns early
// when the context is cancelled; there is no other cancellation path.
func (s *Service) sleep(ctx context.Context, min, max time.Duration) error {
	if !s.latency {
		return nil
	}
	d := min
	if max > min {
		d += rand.N(max - min)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// FetchFeed returns one page of the feed, most recent first, with
// author snapshots attached. Pagination slices the live collection:
// HasMore compares against the total at call time, so a page fetched
// after an insert can repeat or skip items. Known consistency gap,
// kept on purpose.
func (s *Service) FetchFeed(ctx context.Context, page, limit int) (Page[Post], error) {
	if err := s.sleep(ctx, 400*time.Millisecond, 700*time.Millisecond); err != nil {
		return Page[Post]{}, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 3
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.data.Posts)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]Post, 0, end-start)
	for _, p := range s.data.Posts[start:end] {
		items = append(items, s.withAuthor(p))
	}

	s.log.Debug("feed fetched",
		zap.Int("page", page),
		zap.Int("limit", limit),
		zap.Int("total", total))

	return Page[Post]{
		Data: items,
		Meta: PageMeta{Page: page, Limit: limit, Total: total, HasMore: end < total},
	}, nil
}

// FetchUser resolves a single user.
func (s *Service) FetchUser(ctx context.Context, userID string) (User, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 400*time.Millisecond); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.data.UserByID(userID)
	if u == nil {
		return User{}, fmt.Errorf("fetch user %q: %w", userID, ErrUserNotFound)
	}
	return *u, nil
}

// FetchPeople returns the member directory, everyone except the viewer.
// It backs the "people you may know" listing.
func (s *Service) FetchPeople(ctx context.Context) ([]User, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 400*time.Millisecond); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]User, 0, len(s.data.Users))
	for _, u := range s.data.Users {
		if u.ID == ViewerID {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// CreatePost assigns the next post id and prepends the post to the
// feed. The returned copy carries the author snapshot.
func (s *Service) CreatePost(ctx context.Context, content, authorID string) (Post, error) {
	if err := s.sleep(ctx, 300*time.Millisecond, 500*time.Millisecond); err != nil {
		return Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := Post{
		ID:        s.data.postID(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
		Reactions: Reactions{ReactionLike: 0, ReactionCelebrate: 0, ReactionInsightful: 0},
	}
	s.data.Posts = append([]Post{post}, s.data.Posts...)

	s.log.Debug("post created", zap.String("id", post.ID), zap.String("author", authorID))
	return s.withAuthor(post), nil
}

// DeletePost removes the post from the feed. Deleting an unknown id is
// a no-op.
func (s *Service) DeletePost(ctx context.Context, postID string) error {
	if err := s.sleep(ctx, 200*time.Millisecond, 350*time.Millisecond); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Posts {
		if s.data.Posts[i].ID == postID {
			s.data.Posts = append(s.data.Posts[:i], s.data.Posts[i+1:]...)
			s.log.Debug("post deleted", zap.String("id", postID))
			return nil
		}
	}
	return nil
}

// ReactToPost increments the given reaction kind by one. Reacting to a
// missing post returns a zero count rather than an error; nothing at
// this layer stops a caller from reacting repeatedly.
func (s *Service) ReactToPost(ctx context.Context, postID string, kind ReactionKind) (ReactionReceipt, error) {
	if err := s.sleep(ctx, 150*time.Millisecond, 150*time.Millisecond); err != nil {
		return ReactionReceipt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt := ReactionReceipt{PostID: postID, Kind: kind}
	if post := s.data.postByID(postID); post != nil {
		if post.Reactions == nil {
			post.Reactions = Reactions{}
		}
		post.Reactions[kind]++
		receipt.Count = post.Reactions[kind]
	}
	return receipt, nil
}

// FetchComments returns a post's comments in creation order with author
// snapshots attached. Replies are included flat; ParentID links them.
func (s *Service) FetchComments(ctx context.Context, postID string) ([]Comment, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 400*time.Millisecond); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Comment
	for _, c := range s.data.Comments {
		if c.PostID != postID {
			continue
		}
		if u := s.data.UserByID(c.AuthorID); u != nil {
			clone := *u
			c.Author = &clone
		}
		out = append(out, c)
	}
	return out, nil
}

// AddComment appends a comment (parentID may be empty for a top-level
// comment) and bumps the post's denormalized comment counter. The
// counter bump is a no-op when the post is gone.
func (s *Service) AddComment(ctx context.Context, postID, content, authorID, parentID string) (Comment, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 200*time.Millisecond); err != nil {
		return Comment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := Comment{
		ID:        s.data.commentID(),
		PostID:    postID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if u := s.data.UserByID(authorID); u != nil {
		clone := *u
		comment.Author = &clone
	}
	s.data.Comments = append(s.data.Comments, comment)

	if post := s.data.postByID(postID); post != nil {
		post.Comments++
	}
	return comment, nil
}

// Search matches the query case-insensitively against user names,
// headlines and skills, and against post content. Post matches are
// capped at five; user matches are not. An empty query matches nothing.
func (s *Service) Search(ctx context.Context, query string) (SearchResults, error) {
	if err := s.sleep(ctx, 250*time.Millisecond, 450*time.Millisecond); err != nil {
		return SearchResults{}, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return SearchResults{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var results SearchResults
	for _, u := range s.data.Users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Headline), q) ||
			containsFold(u.Skills, q) {
			results.Users = append(results.Users, u)
		}
	}
	for _, p := range s.data.Posts {
		if len(results.Posts) == 5 {
			break
		}
		if strings.Contains(strings.ToLower(p.Content), q) {
			results.Posts = append(results.Posts, s.withAuthor(p))
		}
	}
	return results, nil
}

// FetchConversations returns the viewer's conversations.
func (s *Service) FetchConversations(ctx context.Context) ([]Conversation, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 400*time.Millisecond); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Conversation, 0, len(s.data.Conversations))
	for _, c := range s.data.Conversations {
		if c.Has(ViewerID) {
			out = append(out, c)
		}
	}
	return out, nil
}

// FetchMessages returns a conversation's messages in send order.
func (s *Service) FetchMessages(ctx context.Context, conversationID string) ([]Message, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 350*time.Millisecond); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conversationByID(conversationID) == nil {
		return nil, fmt.Errorf("fetch messages %q: %w", conversationID, ErrConversationNotFound)
	}
	var out []Message
	for _, m := range s.data.Messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

// SendMessage appends to the conversation and refreshes its cached last
// message.
func (s *Service) SendMessage(ctx context.Context, conversationID, content, senderID string) (Message, error) {
	if err := s.sleep(ctx, 150*time.Millisecond, 300*time.Millisecond); err != nil {
		return Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.conversationByID(conversationID)
	if conv == nil {
		return Message{}, fmt.Errorf("send message %q: %w", conversationID, ErrConversationNotFound)
	}

	msg := Message{
		ID:             s.data.messageID(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		SentAt:         time.Now(),
	}
	s.data.Messages = append(s.data.Messages, msg)
	last := msg
	conv.LastMessage = &last

	s.log.Debug("message sent", zap.String("conversation", conversationID))
	return msg, nil
}

// EnsureConversation returns the conversation between the two users,
// creating it on first contact. The pair is unordered: swapping the
// arguments yields the same conversation.
func (s *Service) EnsureConversation(ctx context.Context, userA, userB string) (Conversation, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 300*time.Millisecond); err != nil {
		return Conversation{}, err
	}
	if userA == userB {
		return Conversation{}, fmt.Errorf("conversation requires two distinct users")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.UserByID(userA) == nil || s.data.UserByID(userB) == nil {
		return Conversation{}, fmt.Errorf("ensure conversation: %w", ErrUserNotFound)
	}
	for _, c := range s.data.Conversations {
		if c.Has(userA) && c.Has(userB) {
			return c, nil
		}
	}

	conv := Conversation{
		ID:             s.data.conversationID(),
		ParticipantIDs: [2]string{userA, userB},
	}
	s.data.Conversations = append(s.data.Conversations, conv)
	s.log.Debug("conversation created", zap.String("id", conv.ID))
	return conv, nil
}

// SendConnectionRequest appends a pending request.
func (s *Service) SendConnectionRequest(ctx context.Context, fromID, toID string) (ConnectionRequest, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 350*time.Millisecond); err != nil {
		return ConnectionRequest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.UserByID(fromID) == nil || s.data.UserByID(toID) == nil {
		return ConnectionRequest{}, fmt.Errorf("send connection request: %w", ErrUserNotFound)
	}

	req := ConnectionRequest{
		ID:         s.data.requestID(),
		FromUserID: fromID,
		ToUserID:   toID,
		SentAt:     time.Now(),
	}
	s.data.Requests = append(s.data.Requests, req)
	return req, nil
}

// AcceptConnectionRequest removes the pending request, adds the
// requester to the viewer's connections, and records a notification.
// It returns the requester's user id.
//
// Only the requester lands in the connections set. With a single
// client there is no "other side" to record; this one-sidedness is a
// modeling simplification, not a bug.
func (s *Service) AcceptConnectionRequest(ctx context.Context, requestID string) (string, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 350*time.Millisecond); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, req := range s.data.Requests {
		if req.ID != requestID {
			continue
		}
		s.data.Requests = append(s.data.Requests[:i], s.data.Requests[i+1:]...)
		s.data.Connections[req.FromUserID] = true

		n := Notification{
			ID:         s.data.notificationID(),
			Kind:       NotifyConnectionAccepted,
			FromUserID: req.FromUserID,
			CreatedAt:  time.Now(),
			Message:    s.displayName(req.FromUserID) + " is now a connection",
		}
		s.data.Notifications = append([]Notification{n}, s.data.Notifications...)

		s.log.Debug("connection request accepted",
			zap.String("request", requestID),
			zap.String("from", req.FromUserID))
		return req.FromUserID, nil
	}
	return "", fmt.Errorf("accept %q: %w", requestID, ErrRequestNotFound)
}

// RemoveConnection drops the user from the connections set. Any
// residual pending request is left alone. Idempotent.
func (s *Service) RemoveConnection(ctx context.Context, userID string) error {
	if err := s.sleep(ctx, 200*time.Millisecond, 350*time.Millisecond); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data.Connections, userID)
	return nil
}

// FetchConnections returns the viewer's accepted network as a sorted
// id list.
func (s *Service) FetchConnections(ctx context.Context) ([]string, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 350*time.Millisecond); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.data.Connections))
	for id := range s.data.Connections {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// PendingRequests returns connection requests addressed to the viewer.
func (s *Service) PendingRequests(ctx context.Context) ([]ConnectionRequest, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 350*time.Millisecond); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ConnectionRequest
	for _, req := range s.data.Requests {
		if req.ToUserID == ViewerID {
			out = append(out, req)
		}
	}
	return out, nil
}

// FetchNotifications returns notifications most recent first with
// sender snapshots attached.
func (s *Service) FetchNotifications(ctx context.Context) ([]Notification, error) {
	if err := s.sleep(ctx, 200*time.Millisecond, 400*time.Millisecond); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.data.Notifications))
	for i, n := range s.data.Notifications {
		if u := s.data.UserByID(n.FromUserID); u != nil {
			clone := *u
			n.From = &clone
		}
		out[i] = n
	}
	return out, nil
}

// AddNotification assigns an id and timestamp and prepends.
func (s *Service) AddNotification(ctx context.Context, n Notification) (Notification, error) {
	if err := s.sleep(ctx, 100*time.Millisecond, 200*time.Millisecond); err != nil {
		return Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.data.notificationID()
	n.CreatedAt = time.Now()
	s.data.Notifications = append([]Notification{n}, s.data.Notifications...)
	return n, nil
}

// MarkNotificationRead flips the read flag. Idempotent; unknown ids are
// ignored.
func (s *Service) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if err := s.sleep(ctx, 100*time.Millisecond, 150*time.Millisecond); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Notifications {
		if s.data.Notifications[i].ID == notificationID {
			s.data.Notifications[i].Read = true
			return nil
		}
	}
	return nil
}

// MarkAllNotificationsRead flips every read flag. Idempotent.
func (s *Service) MarkAllNotificationsRead(ctx context.Context) error {
	if err := s.sleep(ctx, 100*time.Millisecond, 150*time.Millisecond); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Notifications {
		s.data.Notifications[i].Read = true
	}
	return nil
}

// withAuthor attaches a copied author snapshot. Callers must tolerate a
// nil Author when the id does not resolve.
func (s *Service) withAuthor(p Post) Post {
	p.Reactions = p.Reactions.Clone()
	if u := s.data.UserByID(p.AuthorID); u != nil {
		clone := *u
		p.Author = &clone
	}
	return p
}

func (s *Service) conversationByID(id string) *Conversation {
	for i := range s.data.Conversations {
		if s.data.Conversations[i].ID == id {
			return &s.data.Conversations[i]
		}
	}
	return nil
}

func (s *Service) displayName(userID string) string {
	if u := s.data.UserByID(userID); u != nil {
		return u.Name
	}
	return userID
}

func containsFold(values []string, loweredQuery string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), loweredQuery) {
			return true
		}
	}
	return false
}
