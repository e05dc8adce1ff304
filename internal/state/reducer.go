package state

import "github.com/linkuplabs/linkup/internal/api"

// Reduce computes the next state from the current one and an action. It
// is pure: no side effects, no mutation of the input (touched
// containers are copied first), and total: an action kind it does not
// recognize returns the state unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case FeedLoading:
		s.FeedLoading = true
		return s

	case FeedLoaded:
		if a.Page == 1 {
			s.Feed = clonePosts(a.Posts)
		} else {
			s.Feed = append(clonePosts(s.Feed), a.Posts...)
		}
		s.FeedPage = a.Page
		s.FeedHasMore = a.HasMore
		s.FeedLoading = false
		return s

	case FeedLoadFailed:
		s.FeedLoading = false
		return s

	case PostCreated:
		s.Feed = append([]api.Post{a.Post}, s.Feed...)
		s.ComposerOpen = false
		return s

	case PostConfirmed:
		feed := clonePosts(s.Feed)
		for i := range feed {
			if feed[i].ID == a.LocalID {
				feed[i] = a.Post
				break
			}
		}
		s.Feed = feed
		return s

	case PostFailed:
		s = removePost(s, a.LocalID)
		return s

	case PostReacted:
		feed := clonePosts(s.Feed)
		for i := range feed {
			if feed[i].ID != a.PostID {
				continue
			}
			reactions := feed[i].Reactions.Clone()
			if reactions == nil {
				reactions = api.Reactions{}
			}
			reactions[a.Kind]++
			feed[i].Reactions = reactions
			feed[i].UserReaction = a.Kind
			break
		}
		s.Feed = feed
		return s

	case PostDeleted:
		return removePost(s, a.PostID)

	case CommentsLoaded:
		comments := cloneCommentMap(s.CommentsByPost)
		comments[a.PostID] = a.Comments
		s.CommentsByPost = comments
		return s

	case CommentAdded:
		comments := cloneCommentMap(s.CommentsByPost)
		comments[a.PostID] = append(append([]api.Comment(nil), comments[a.PostID]...), a.Comment)
		s.CommentsByPost = comments

		feed := clonePosts(s.Feed)
		for i := range feed {
			if feed[i].ID == a.PostID {
				feed[i].Comments++
				break
			}
		}
		s.Feed = feed
		return s

	case ToggleComments:
		open := cloneStringSet(s.OpenComments)
		if open[a.PostID] {
			delete(open, a.PostID)
		} else {
			open[a.PostID] = true
		}
		s.OpenComments = open
		return s

	case Navigate:
		s.ActiveRoute = a.Route
		s.SelectedProfile = a.Profile
		s.SearchQuery = ""
		s.SearchOpen = false
		s.SearchResults = api.SearchResults{}
		return s

	case ToggleComposer:
		s.ComposerOpen = !s.ComposerOpen
		return s

	case SetTheme:
		s.Theme = a.Theme
		return s

	case Announce:
		s.Announcements = append(append([]string(nil), s.Announcements...), a.Message)
		return s

	case ToggleMessaging:
		s.MessagingOpen = !s.MessagingOpen
		if !s.MessagingOpen {
			s.ActiveConversation = ""
		}
		return s

	case OpenChat:
		s.ActiveConversation = a.ConversationID
		conversations := append([]api.Conversation(nil), s.Conversations...)
		for i := range conversations {
			if conversations[i].ID == a.ConversationID {
				conversations[i].Unread = 0
				break
			}
		}
		s.Conversations = conversations
		return s

	case CloseChat:
		s.ActiveConversation = ""
		return s

	case ConversationsLoaded:
		s.Conversations = a.Conversations
		return s

	case MessagesLoaded:
		messages := cloneMessageMap(s.MessagesByConversation)
		messages[a.ConversationID] = a.Messages
		s.MessagesByConversation = messages
		return s

	case MessageSent:
		messages := cloneMessageMap(s.MessagesByConversation)
		messages[a.ConversationID] = append(append([]api.Message(nil), messages[a.ConversationID]...), a.Message)
		s.MessagesByConversation = messages

		conversations := append([]api.Conversation(nil), s.Conversations...)
		for i := range conversations {
			if conversations[i].ID == a.ConversationID {
				msg := a.Message
				conversations[i].LastMessage = &msg
				break
			}
		}
		s.Conversations = conversations
		return s

	case SetSearchQuery:
		s.SearchQuery = a.Query
		s.SearchOpen = a.Query != ""
		if a.Query == "" {
			s.SearchResults = api.SearchResults{}
		}
		return s

	case SearchLoaded:
		s.SearchResults = a.Results
		return s

	case CloseSearch:
		s.SearchQuery = ""
		s.SearchOpen = false
		s.SearchResults = api.SearchResults{}
		return s

	case ToggleBookmark:
		saved := cloneStringSet(s.SavedPosts)
		if saved[a.PostID] {
			delete(saved, a.PostID)
		} else {
			saved[a.PostID] = true
		}
		s.SavedPosts = saved
		return s

	case ConnectionsLoaded:
		set := make(map[string]bool, len(a.IDs))
		for _, id := range a.IDs {
			set[id] = true
		}
		s.Connections = set
		return s

	case RequestsLoaded:
		s.PendingRequests = a.Requests
		return s

	case ConnectionRequestAccepted:
		requests := make([]api.ConnectionRequest, 0, len(s.PendingRequests))
		for _, req := range s.PendingRequests {
			if req.ID != a.RequestID {
				requests = append(requests, req)
			}
		}
		s.PendingRequests = requests

		connections := cloneStringSet(s.Connections)
		connections[a.FromUserID] = true
		s.Connections = connections
		return s

	case ConnectionRemoved:
		connections := cloneStringSet(s.Connections)
		delete(connections, a.UserID)
		s.Connections = connections
		return s

	case NotificationsLoaded:
		s.Notifications = a.Notifications
		return s

	case NotificationAdded:
		s.Notifications = append([]api.Notification{a.Notification}, s.Notifications...)
		return s

	case NotificationRead:
		notifications := append([]api.Notification(nil), s.Notifications...)
		for i := range notifications {
			if notifications[i].ID == a.ID {
				notifications[i].Read = true
				break
			}
		}
		s.Notifications = notifications
		return s

	case AllNotificationsRead:
		notifications := append([]api.Notification(nil), s.Notifications...)
		for i := range notifications {
			notifications[i].Read = true
		}
		s.Notifications = notifications
		return s

	case AboutUpdated:
		s.CurrentUser.About = a.Text
		if s.SelectedProfile != nil && s.SelectedProfile.ID == s.CurrentUser.ID {
			profile := *s.SelectedProfile
			profile.About = a.Text
			s.SelectedProfile = &profile
		}
		return s
	}

	return s
}

// removePost drops the post from the feed and cascades to every slice
// that references it, so nothing dangles afterwards.
func removePost(s State, postID string) State {
	feed := make([]api.Post, 0, len(s.Feed))
	for _, p := range s.Feed {
		if p.ID != postID {
			feed = append(feed, p)
		}
	}
	s.Feed = feed

	if s.SavedPosts[postID] {
		saved := cloneStringSet(s.SavedPosts)
		delete(saved, postID)
		s.SavedPosts = saved
	}
	if _, ok := s.CommentsByPost[postID]; ok {
		comments := cloneCommentMap(s.CommentsByPost)
		delete(comments, postID)
		s.CommentsByPost = comments
	}
	if s.OpenComments[postID] {
		open := cloneStringSet(s.OpenComments)
		delete(open, postID)
		s.OpenComments = open
	}
	return s
}
