package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewDataset(), WithoutLatency())
}

func TestFetchFeed_Pagination(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	page1, err := svc.FetchFeed(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, page1.Data, 3)
	assert.Equal(t, "p1", page1.Data[0].ID)
	assert.Equal(t, "p3", page1.Data[2].ID)
	assert.Equal(t, 8, page1.Meta.Total)
	assert.True(t, page1.Meta.HasMore)

	page3, err := svc.FetchFeed(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, page3.Data, 2)
	assert.Equal(t, "p8", page3.Data[1].ID)
	assert.False(t, page3.Meta.HasMore)

	// Past the end: empty page, never an error.
	page9, err := svc.FetchFeed(ctx, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, page9.Data)
	assert.False(t, page9.Meta.HasMore)
}

func TestFetchFeed_AttachesAuthorSnapshots(t *testing.T) {
	svc := newTestService()

	page, err := svc.FetchFeed(context.Background(), 1, 3)
	require.NoError(t, err)
	require.NotNil(t, page.Data[0].Author)
	assert.Equal(t, "Sarah Chen", page.Data[0].Author.Name)

	// The snapshot is a copy; editing it must not touch the dataset.
	page.Data[0].Author.Name = "mangled"
	assert.Equal(t, "Sarah Chen", svc.data.UserByID("u1").Name)
}

func TestCreatePost_PrependsWithGeneratedID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "Hello from the terminal", ViewerID)
	require.NoError(t, err)
	assert.Equal(t, "p100", post.ID)
	require.NotNil(t, post.Author)
	assert.Equal(t, ViewerID, post.Author.ID)

	page, err := svc.FetchFeed(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "p100", page.Data[0].ID)
	assert.Equal(t, 9, page.Meta.Total)
}

func TestDeletePost(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.DeletePost(ctx, "p1"))
	page, err := svc.FetchFeed(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, page.Meta.Total)
	assert.Equal(t, "p2", page.Data[0].ID)

	// Unknown id is a silent no-op.
	require.NoError(t, svc.DeletePost(ctx, "p1"))
}

func TestReactToPost(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	receipt, err := svc.ReactToPost(ctx, "p4", ReactionSupport)
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Count)

	receipt, err = svc.ReactToPost(ctx, "p4", ReactionSupport)
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.Count)

	// Missing post: zero receipt, no error.
	receipt, err = svc.ReactToPost(ctx, "nope", ReactionLike)
	require.NoError(t, err)
	assert.Zero(t, receipt.Count)
}

func TestComments(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	comments, err := svc.FetchComments(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.NotNil(t, comments[0].Author)
	assert.Equal(t, "Marcus Johnson", comments[0].Author.Name)
	assert.Equal(t, "c2", comments[2].ParentID, "reply keeps its parent link")

	added, err := svc.AddComment(ctx, "p1", "Great write-up", "u4", "")
	require.NoError(t, err)
	assert.Equal(t, "c100", added.ID)
	require.NotNil(t, added.Author)

	comments, err = svc.FetchComments(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, comments, 4)
	assert.Equal(t, 19, svc.data.postByID("p1").Comments, "denormalized counter bumps")

	// Commenting on a missing post still returns the comment; only the
	// counter bump is skipped.
	orphan, err := svc.AddComment(ctx, "ghost", "anyone here?", "u4", "")
	require.NoError(t, err)
	assert.Equal(t, "ghost", orphan.PostID)
}

func TestAddComment_Reply(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	reply, err := svc.AddComment(ctx, "p1", "Agreed on all points", "u3", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c100", reply.ID)
	assert.Equal(t, "c1", reply.ParentID)

	// A reply counts toward the post total the same as a top-level
	// comment, whatever its depth.
	assert.Equal(t, 19, svc.data.postByID("p1").Comments)

	comments, err := svc.FetchComments(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, comments, 4)
	last := comments[len(comments)-1]
	assert.Equal(t, "c1", last.ParentID)
	require.NotNil(t, last.Author)
	assert.Equal(t, "Priya Sharma", last.Author.Name)
}

func TestSearch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	empty, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty.Users)
	assert.Empty(t, empty.Posts)

	res, err := svc.Search(ctx, "SARAH")
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "u1", res.Users[0].ID)

	// Skills match too, and post hits are capped at five.
	res, err = svc.Search(ctx, "react")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Users)
	assert.LessOrEqual(t, len(res.Posts), 5)
}

func TestConversations(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	convs, err := svc.FetchConversations(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 2)

	msgs, err := svc.FetchMessages(ctx, "cv1")
	require.NoError(t, err)
	assert.Len(t, msgs, 3)

	_, err = svc.FetchMessages(ctx, "cv999")
	require.ErrorIs(t, err, ErrConversationNotFound)

	sent, err := svc.SendMessage(ctx, "cv1", "See you Thursday", ViewerID)
	require.NoError(t, err)
	assert.Equal(t, "m100", sent.ID)

	convs, err = svc.FetchConversations(ctx)
	require.NoError(t, err)
	require.NotNil(t, convs[0].LastMessage)
	assert.Equal(t, "See you Thursday", convs[0].LastMessage.Content)
}

func TestEnsureConversation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// The pair is unordered: both argument orders find cv1.
	conv, err := svc.EnsureConversation(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "cv1", conv.ID)

	conv, err = svc.EnsureConversation(ctx, "u2", "u1")
	require.NoError(t, err)
	assert.Equal(t, "cv1", conv.ID)

	// First contact creates.
	conv, err = svc.EnsureConversation(ctx, "u1", "u3")
	require.NoError(t, err)
	assert.Equal(t, "cv100", conv.ID)

	again, err := svc.EnsureConversation(ctx, "u3", "u1")
	require.NoError(t, err)
	assert.Equal(t, conv.ID, again.ID)

	_, err = svc.EnsureConversation(ctx, "u1", "u1")
	require.Error(t, err)

	_, err = svc.EnsureConversation(ctx, "u1", "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestConnectionRequests(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	pending, err := svc.PendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "r1", pending[0].ID)

	fromID, err := svc.AcceptConnectionRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "u3", fromID)

	pending, err = svc.PendingRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	ids, err := svc.FetchConnections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u3", "u5"}, ids)

	// Acceptance records a notification at the head.
	notifs, err := svc.FetchNotifications(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, notifs)
	assert.Equal(t, NotifyConnectionAccepted, notifs[0].Kind)
	assert.Equal(t, "u3", notifs[0].FromUserID)

	_, err = svc.AcceptConnectionRequest(ctx, "r1")
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestSendConnectionRequest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req, err := svc.SendConnectionRequest(ctx, ViewerID, "u4")
	require.NoError(t, err)
	assert.Equal(t, "r100", req.ID)
	assert.Equal(t, "u4", req.ToUserID)

	_, err = svc.SendConnectionRequest(ctx, ViewerID, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveConnection_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RemoveConnection(ctx, "u2"))
	require.NoError(t, svc.RemoveConnection(ctx, "u2"))

	ids, err := svc.FetchConnections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u5"}, ids)
}

func TestNotifications(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	notifs, err := svc.FetchNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifs, 5)
	require.NotNil(t, notifs[0].From)
	assert.Equal(t, "Marcus Johnson", notifs[0].From.Name)

	require.NoError(t, svc.MarkNotificationRead(ctx, "n1"))
	require.NoError(t, svc.MarkNotificationRead(ctx, "n1"))
	require.NoError(t, svc.MarkNotificationRead(ctx, "ghost"))

	require.NoError(t, svc.MarkAllNotificationsRead(ctx))
	notifs, err = svc.FetchNotifications(ctx)
	require.NoError(t, err)
	for _, n := range notifs {
		assert.True(t, n.Read)
	}
}

func TestAddNotification(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	added, err := svc.AddNotification(ctx, Notification{
		Kind:       NotifyReaction,
		FromUserID: "u2",
		PostID:     "p3",
		Message:    "Marcus Johnson reacted to your post",
	})
	require.NoError(t, err)
	assert.Equal(t, "n100", added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	// New notifications land at the head of the list.
	notifs, err := svc.FetchNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifs, 6)
	assert.Equal(t, "n100", notifs[0].ID)
	assert.Equal(t, NotifyReaction, notifs[0].Kind)
}

func TestFetchUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.FetchUser(ctx, "u5")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Kim", u.Name)

	_, err = svc.FetchUser(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFetchPeople_ExcludesViewer(t *testing.T) {
	svc := newTestService()

	people, err := svc.FetchPeople(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 4)
	for _, u := range people {
		assert.NotEqual(t, ViewerID, u.ID)
	}
}

func TestLatency_CancelledContext(t *testing.T) {
	svc := NewService(NewDataset()) // simulated latency on

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchFeed(ctx, 1, 3)
	require.ErrorIs(t, err, context.Canceled)
}
