package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linkuplabs/linkup/internal/api"
	"github.com/linkuplabs/linkup/internal/state"
)

// handleKey routes keyboard input by input mode. Browse is the default;
// each input surface captures typing until submitted or dismissed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeComposer:
		return m.handleComposerKey(msg)
	case modeComment:
		return m.handleCommentKey(msg)
	case modeMessage:
		return m.handleMessageKey(msg)
	case modeAbout:
		return m.handleAboutKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Messaging panel captures list navigation while open.
	if m.snap.MessagingOpen {
		return m.handleMessagingListKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "t":
		next := state.ThemeLight
		if m.snap.Theme == state.ThemeLight {
			next = state.ThemeDark
		}
		m.dispatch(state.SetTheme{Theme: next})
		m.theme = themeFor(next)
		m.styles = m.theme.Styles()
		m.announce(fmt.Sprintf("Theme: %s", next))
		return m, nil

	case "f":
		m.dispatch(state.Navigate{Route: state.RouteFeed})
		return m, nil

	case "p":
		m.dispatch(state.Navigate{Route: state.RouteProfile})
		return m, nil

	case "n":
		m.dispatch(state.Navigate{Route: state.RouteNetwork})
		return m, nil

	case "i":
		m.dispatch(state.Navigate{Route: state.RouteNotifications})
		return m, nil

	case "s":
		m.dispatch(state.Navigate{Route: state.RouteSaved})
		return m, nil

	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.dispatch(state.SetSearchQuery{Query: ""})
		return m, textinput.Blink

	case "m":
		m.dispatch(state.ToggleMessaging{})
		if m.snap.MessagingOpen && len(m.snap.Conversations) == 0 {
			return m, m.loadConversationsCmd()
		}
		return m, nil

	case "c":
		m.mode = modeComposer
		m.composer.SetValue("")
		m.composer.Focus()
		if !m.snap.ComposerOpen {
			m.dispatch(state.ToggleComposer{})
		}
		return m, nil

	case "esc":
		if m.snap.SearchOpen {
			m.dispatch(state.CloseSearch{})
			return m, nil
		}
		m.dispatch(state.Navigate{Route: state.RouteFeed})
		return m, nil
	}

	switch m.snap.ActiveRoute {
	case state.RouteProfile:
		return m.handleProfileKey(msg)
	case state.RouteNetwork:
		return m.handleNetworkKey(msg)
	case state.RouteNotifications:
		return m.handleNotificationsKey(msg)
	case state.RouteSaved:
		return m.handleFeedListKey(msg, m.savedFeed(), &m.savedIndex)
	default:
		return m.handleFeedKey(msg)
	}
}

func (m Model) handleFeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "L" {
		if m.snap.FeedHasMore && !m.snap.FeedLoading {
			m.dispatch(state.FeedLoading{})
			return m, m.loadFeedCmd(m.snap.FeedPage + 1)
		}
		return m, nil
	}
	return m.handleFeedListKey(msg, m.snap.Feed, &m.feedIndex)
}

// handleFeedListKey serves both the feed and the saved view; they share
// post-level bindings and differ only in the backing list. Pointer
// receiver: index aliases a cursor field on this same model value.
func (m *Model) handleFeedListKey(msg tea.KeyMsg, posts []api.Post, index *int) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if *index < len(posts)-1 {
			*index++
		}
		return *m, nil
	case "k", "up":
		if *index > 0 {
			*index--
		}
		return *m, nil
	case "g", "home":
		*index = 0
		return *m, nil
	case "G", "end":
		*index = clamp(len(posts)-1, len(posts))
		return *m, nil
	}

	if len(posts) == 0 {
		return *m, nil
	}
	post := posts[clamp(*index, len(posts))]

	switch msg.String() {
	case "r", "1":
		return m.react(post, api.ReactionLike)
	case "2":
		return m.react(post, api.ReactionCelebrate)
	case "3":
		return m.react(post, api.ReactionSupport)
	case "4":
		return m.react(post, api.ReactionInsightful)

	case "b":
		m.dispatch(state.ToggleBookmark{PostID: post.ID})
		if m.snap.SavedPosts[post.ID] {
			m.announce("Post saved")
		} else {
			m.announce("Removed from saved")
		}
		m.clampCursors()
		return *m, nil

	case "o":
		m.dispatch(state.ToggleComments{PostID: post.ID})
		m.commentIndex = 0
		if m.snap.OpenComments[post.ID] && m.snap.CommentsByPost[post.ID] == nil {
			return *m, m.loadCommentsCmd(post.ID)
		}
		return *m, nil

	case "C":
		m.mode = modeComment
		m.commentTarget = post.ID
		m.commentParent = ""
		m.commentInput.SetValue("")
		m.commentInput.Focus()
		return *m, textinput.Blink

	case "J":
		if m.snap.OpenComments[post.ID] {
			if n := len(m.topLevelComments(post.ID)); m.commentIndex < n-1 {
				m.commentIndex++
			}
		}
		return *m, nil

	case "K":
		if m.snap.OpenComments[post.ID] && m.commentIndex > 0 {
			m.commentIndex--
		}
		return *m, nil

	case "R":
		if !m.snap.OpenComments[post.ID] {
			return *m, nil
		}
		thread := m.topLevelComments(post.ID)
		if len(thread) == 0 {
			m.announce("No comment to reply to")
			return *m, nil
		}
		parent := thread[clamp(m.commentIndex, len(thread))]
		m.mode = modeComment
		m.commentTarget = post.ID
		m.commentParent = parent.ID
		m.commentInput.SetValue("")
		m.commentInput.Focus()
		return *m, textinput.Blink

	case "D":
		if post.AuthorID != m.snap.CurrentUser.ID {
			m.announce("Only your own posts can be deleted")
			return *m, nil
		}
		if post.Optimistic {
			m.announce("Post is still publishing")
			return *m, nil
		}
		return *m, m.deletePostCmd(post.ID)

	case "enter":
		if post.Author == nil {
			m.announce("Profile unavailable")
			return *m, nil
		}
		m.dispatch(state.Navigate{Route: state.RouteProfile, Profile: post.Author})
		return *m, nil
	}

	return *m, nil
}

// react applies the optimistic local tally and fires the confirming
// call; the confirmation count is never read back.
func (m *Model) react(post api.Post, kind api.ReactionKind) (tea.Model, tea.Cmd) {
	m.dispatch(state.PostReacted{PostID: post.ID, Kind: kind})
	return *m, m.reactCmd(post.ID, kind)
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	profile := m.snap.ProfileUser()
	own := profile.ID == m.snap.CurrentUser.ID

	switch msg.String() {
	case "e":
		if !own {
			return m, nil
		}
		m.mode = modeAbout
		m.aboutEditor.SetValue(m.snap.CurrentUser.About)
		m.aboutEditor.Focus()
		return m, nil

	case "+":
		if own {
			return m, nil
		}
		if m.snap.Connections[profile.ID] {
			m.announce("Already connected")
			return m, nil
		}
		return m, m.sendRequestCmd(profile.ID)

	case "M":
		if own {
			return m, nil
		}
		return m, m.ensureConversationCmd(profile.ID)

	case "x":
		if own || !m.snap.Connections[profile.ID] {
			return m, nil
		}
		return m, m.removeConnectionCmd(profile.ID)
	}
	return m, nil
}

func (m Model) handleNetworkKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.networkRows()

	switch msg.String() {
	case "j", "down":
		if m.networkIndex < len(rows)-1 {
			m.networkIndex++
		}
		return m, nil
	case "k", "up":
		if m.networkIndex > 0 {
			m.networkIndex--
		}
		return m, nil
	}

	if len(rows) == 0 {
		return m, nil
	}
	row := rows[clamp(m.networkIndex, len(rows))]

	switch msg.String() {
	case "a":
		if row.kind != rowRequest {
			return m, nil
		}
		return m, m.acceptRequestCmd(row.requestID)

	case "x":
		if row.kind != rowConnection {
			return m, nil
		}
		return m, m.removeConnectionCmd(row.user.ID)

	case "+":
		if row.kind != rowSuggestion {
			return m, nil
		}
		return m, m.sendRequestCmd(row.user.ID)

	case "M":
		if row.kind == rowRequest {
			return m, nil
		}
		return m, m.ensureConversationCmd(row.user.ID)

	case "enter":
		user := row.user
		m.dispatch(state.Navigate{Route: state.RouteProfile, Profile: &user})
		return m, nil
	}
	return m, nil
}

func (m Model) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.notifIndex < len(m.snap.Notifications)-1 {
			m.notifIndex++
		}
		return m, nil
	case "k", "up":
		if m.notifIndex > 0 {
			m.notifIndex--
		}
		return m, nil

	case "enter":
		if len(m.snap.Notifications) == 0 {
			return m, nil
		}
		n := m.snap.Notifications[clamp(m.notifIndex, len(m.snap.Notifications))]
		if n.Read {
			return m, nil
		}
		return m, m.markNotificationReadCmd(n.ID)

	case "A":
		return m, m.markAllNotificationsReadCmd()
	}
	return m, nil
}

func (m Model) handleMessagingListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "m":
		m.dispatch(state.ToggleMessaging{})
		return m, nil

	case "j", "down":
		if m.convIndex < len(m.snap.Conversations)-1 {
			m.convIndex++
		}
		return m, nil
	case "k", "up":
		if m.convIndex > 0 {
			m.convIndex--
		}
		return m, nil

	case "enter":
		if len(m.snap.Conversations) == 0 {
			return m, nil
		}
		conv := m.snap.Conversations[clamp(m.convIndex, len(m.snap.Conversations))]
		cmd := m.enterChat(conv)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.searchInput.Blur()
		m.dispatch(state.CloseSearch{})
		return m, nil

	case "enter":
		if len(m.snap.SearchResults.Users) > 0 {
			user := m.snap.SearchResults.Users[0]
			m.mode = modeBrowse
			m.searchInput.Blur()
			m.dispatch(state.Navigate{Route: state.RouteProfile, Profile: &user})
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	query := strings.TrimSpace(m.searchInput.Value())
	if query != m.snap.SearchQuery {
		m.dispatch(state.SetSearchQuery{Query: query})
		if query != "" {
			return m, tea.Batch(cmd, debounceSearchCmd(query))
		}
	}
	return m, cmd
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.composer.Blur()
		if m.snap.ComposerOpen {
			m.dispatch(state.ToggleComposer{})
		}
		return m, nil

	case "ctrl+s":
		content := strings.TrimSpace(m.composer.Value())
		if content == "" {
			m.announce("Nothing to post")
			return m, nil
		}
		m.mode = modeBrowse
		m.composer.Blur()
		cmd := m.submitPost(content)
		return m, cmd
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// submitPost runs the optimistic half of the two-phase create: a
// placeholder with a local id lands in the feed immediately, then the
// service call confirms it or rolls it back.
func (m *Model) submitPost(content string) tea.Cmd {
	m.localSeq++
	localID := fmt.Sprintf("local-%d", m.localSeq)

	author := m.snap.CurrentUser
	m.dispatch(state.PostCreated{Post: api.Post{
		ID:         localID,
		AuthorID:   author.ID,
		Author:     &author,
		Content:    content,
		Reactions:  api.Reactions{},
		Optimistic: true,
	}})
	m.feedIndex = 0
	return m.createPostCmd(localID, content)
}

func (m Model) handleCommentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.commentInput.Blur()
		m.commentTarget = ""
		m.commentParent = ""
		return m, nil

	case "enter":
		content := strings.TrimSpace(m.commentInput.Value())
		target := m.commentTarget
		parent := m.commentParent
		m.mode = modeBrowse
		m.commentInput.Blur()
		m.commentTarget = ""
		m.commentParent = ""
		if content == "" || target == "" {
			return m, nil
		}
		return m, m.addCommentCmd(target, content, parent)
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m Model) handleMessageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.messageInput.Blur()
		m.messageInput.SetValue("")
		m.dispatch(state.CloseChat{})
		return m, nil

	case "enter":
		content := strings.TrimSpace(m.messageInput.Value())
		if content == "" || m.snap.ActiveConversation == "" {
			return m, nil
		}
		m.messageInput.SetValue("")
		return m, m.sendMessageCmd(m.snap.ActiveConversation, content)
	}

	var cmd tea.Cmd
	m.messageInput, cmd = m.messageInput.Update(msg)
	return m, cmd
}

func (m Model) handleAboutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.aboutEditor.Blur()
		return m, nil

	case "ctrl+s":
		m.mode = modeBrowse
		m.aboutEditor.Blur()
		m.dispatch(state.AboutUpdated{Text: strings.TrimSpace(m.aboutEditor.Value())})
		m.announce("About updated")
		return m, nil
	}

	var cmd tea.Cmd
	m.aboutEditor, cmd = m.aboutEditor.Update(msg)
	return m, cmd
}

// enterChat opens the messaging panel on a conversation, loading its
// messages on first open.
func (m *Model) enterChat(conv api.Conversation) tea.Cmd {
	if !m.snap.MessagingOpen {
		m.dispatch(state.ToggleMessaging{})
	}
	known := false
	for _, c := range m.snap.Conversations {
		if c.ID == conv.ID {
			known = true
			break
		}
	}
	m.dispatch(state.OpenChat{ConversationID: conv.ID})
	m.mode = modeMessage
	m.messageInput.Focus()

	cmds := []tea.Cmd{textinput.Blink}
	if !known {
		cmds = append(cmds, m.loadConversationsCmd())
	}
	if _, ok := m.snap.MessagesByConversation[conv.ID]; !ok {
		cmds = append(cmds, m.loadMessagesCmd(conv.ID))
	}
	return tea.Batch(cmds...)
}
