package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linkuplabs/linkup/internal/api"
)

// Messages carry service results back into Update. Each command runs on
// its own goroutine with its own simulated delay, so results from
// unrelated handlers interleave freely; Update never assumes arrival
// order.

type feedLoadedMsg struct {
	page api.Page[api.Post]
	err  error
}

type postCreatedMsg struct {
	localID string
	post    api.Post
	err     error
}

type postDeletedMsg struct {
	postID string
	err    error
}

type reactedMsg struct {
	receipt api.ReactionReceipt
	err     error
}

type commentsLoadedMsg struct {
	postID   string
	comments []api.Comment
	err      error
}

type commentAddedMsg struct {
	postID  string
	comment api.Comment
	err     error
}

type searchDebounceMsg struct {
	query string
}

type searchResultsMsg struct {
	query   string
	results api.SearchResults
	err     error
}

type conversationsLoadedMsg struct {
	conversations []api.Conversation
	err           error
}

type messagesLoadedMsg struct {
	conversationID string
	messages       []api.Message
	err            error
}

type messageSentMsg struct {
	conversationID string
	message        api.Message
	err            error
}

type chatOpenedMsg struct {
	conversation api.Conversation
	err          error
}

type peopleLoadedMsg struct {
	users []api.User
	err   error
}

type connectionsLoadedMsg struct {
	ids []string
	err error
}

type requestsLoadedMsg struct {
	requests []api.ConnectionRequest
	err      error
}

type requestAcceptedMsg struct {
	requestID  string
	fromUserID string
	err        error
}

type requestSentMsg struct {
	request api.ConnectionRequest
	err     error
}

type connectionRemovedMsg struct {
	userID string
	err    error
}

type notificationsLoadedMsg struct {
	notifications []api.Notification
	err           error
}

type notificationReadMsg struct {
	id  string
	err error
}

type allNotificationsReadMsg struct {
	err error
}

const searchDebounce = 300 * time.Millisecond

func (m Model) loadFeedCmd(page int) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.backend.FetchFeed(m.ctx, page, m.feedLimit)
		return feedLoadedMsg{page: resp, err: err}
	}
}

func (m Model) createPostCmd(localID, content string) tea.Cmd {
	return func() tea.Msg {
		post, err := m.backend.CreatePost(m.ctx, content, m.snap.CurrentUser.ID)
		return postCreatedMsg{localID: localID, post: post, err: err}
	}
}

func (m Model) deletePostCmd(postID string) tea.Cmd {
	return func() tea.Msg {
		err := m.backend.DeletePost(m.ctx, postID)
		return postDeletedMsg{postID: postID, err: err}
	}
}

func (m Model) reactCmd(postID string, kind api.ReactionKind) tea.Cmd {
	return func() tea.Msg {
		receipt, err := m.backend.ReactToPost(m.ctx, postID, kind)
		return reactedMsg{receipt: receipt, err: err}
	}
}

func (m Model) loadCommentsCmd(postID string) tea.Cmd {
	return func() tea.Msg {
		comments, err := m.backend.FetchComments(m.ctx, postID)
		return commentsLoadedMsg{postID: postID, comments: comments, err: err}
	}
}

func (m Model) addCommentCmd(postID, content, parentID string) tea.Cmd {
	return func() tea.Msg {
		comment, err := m.backend.AddComment(m.ctx, postID, content, m.snap.CurrentUser.ID, parentID)
		return commentAddedMsg{postID: postID, comment: comment, err: err}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.backend.Search(m.ctx, query)
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

func debounceSearchCmd(query string) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{query: query}
	})
}

func (m Model) loadConversationsCmd() tea.Cmd {
	return func() tea.Msg {
		conversations, err := m.backend.FetchConversations(m.ctx)
		return conversationsLoadedMsg{conversations: conversations, err: err}
	}
}

func (m Model) loadMessagesCmd(conversationID string) tea.Cmd {
	return func() tea.Msg {
		messages, err := m.backend.FetchMessages(m.ctx, conversationID)
		return messagesLoadedMsg{conversationID: conversationID, messages: messages, err: err}
	}
}

func (m Model) sendMessageCmd(conversationID, content string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.backend.SendMessage(m.ctx, conversationID, content, m.snap.CurrentUser.ID)
		return messageSentMsg{conversationID: conversationID, message: message, err: err}
	}
}

func (m Model) ensureConversationCmd(otherUserID string) tea.Cmd {
	return func() tea.Msg {
		conversation, err := m.backend.EnsureConversation(m.ctx, m.snap.CurrentUser.ID, otherUserID)
		return chatOpenedMsg{conversation: conversation, err: err}
	}
}

func (m Model) loadPeopleCmd() tea.Cmd {
	return func() tea.Msg {
		users, err := m.backend.FetchPeople(m.ctx)
		return peopleLoadedMsg{users: users, err: err}
	}
}

func (m Model) loadConnectionsCmd() tea.Cmd {
	return func() tea.Msg {
		ids, err := m.backend.FetchConnections(m.ctx)
		return connectionsLoadedMsg{ids: ids, err: err}
	}
}

func (m Model) loadRequestsCmd() tea.Cmd {
	return func() tea.Msg {
		requests, err := m.backend.PendingRequests(m.ctx)
		return requestsLoadedMsg{requests: requests, err: err}
	}
}

func (m Model) acceptRequestCmd(requestID string) tea.Cmd {
	return func() tea.Msg {
		fromUserID, err := m.backend.AcceptConnectionRequest(m.ctx, requestID)
		return requestAcceptedMsg{requestID: requestID, fromUserID: fromUserID, err: err}
	}
}

func (m Model) sendRequestCmd(toUserID string) tea.Cmd {
	return func() tea.Msg {
		request, err := m.backend.SendConnectionRequest(m.ctx, m.snap.CurrentUser.ID, toUserID)
		return requestSentMsg{request: request, err: err}
	}
}

func (m Model) removeConnectionCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		err := m.backend.RemoveConnection(m.ctx, userID)
		return connectionRemovedMsg{userID: userID, err: err}
	}
}

func (m Model) loadNotificationsCmd() tea.Cmd {
	return func() tea.Msg {
		notifications, err := m.backend.FetchNotifications(m.ctx)
		return notificationsLoadedMsg{notifications: notifications, err: err}
	}
}

func (m Model) markNotificationReadCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.backend.MarkNotificationRead(m.ctx, id)
		return notificationReadMsg{id: id, err: err}
	}
}

func (m Model) markAllNotificationsReadCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.backend.MarkAllNotificationsRead(m.ctx)
		return allNotificationsReadMsg{err: err}
	}
}
