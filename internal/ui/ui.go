package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/linkuplabs/linkup/internal/api"
	"github.com/linkuplabs/linkup/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Backend   api.Backend
	Store     *state.Store
	FeedLimit int
	Logger    *zap.Logger
}

// inputMode routes keystrokes: browse is the default, the rest capture
// typing for one of the input surfaces.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeComposer
	modeComment
	modeMessage
	modeAbout
)

// Model is the root application state for Bubble Tea. All domain state
// lives in the store; the model holds only presentation concerns
// (selection indices, input widgets, the latest snapshot).
type Model struct {
	ctx       context.Context
	backend   api.Backend
	store     *state.Store
	log       *zap.Logger
	feedLimit int

	snap   state.State
	theme  Theme
	styles Styles

	// Member directory, loaded once at startup. Backs the network
	// suggestions and name lookups for bare user ids.
	people []api.User

	width  int
	height int
	ready  bool

	mode     inputMode
	showHelp bool

	// Per-view selection cursors.
	feedIndex    int
	savedIndex   int
	networkIndex int
	notifIndex   int
	convIndex    int
	commentIndex int // top-level comment cursor within the open thread

	searchInput  textinput.Model
	messageInput textinput.Model
	commentInput textinput.Model
	composer     textarea.Model
	aboutEditor  textarea.Model

	commentTarget string // post receiving the comment being typed
	commentParent string // parent comment id when typing a reply, else empty

	spin spinner.Model

	localSeq int // optimistic post id counter, session-local
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	feedLimit := opts.FeedLimit
	if feedLimit <= 0 {
		feedLimit = 3
	}

	snap := opts.Store.Snapshot()
	theme := themeFor(snap.Theme)

	search := textinput.New()
	search.Placeholder = "Search people and posts"
	search.CharLimit = 120

	message := textinput.New()
	message.Placeholder = "Write a message"
	message.CharLimit = 500

	comment := textinput.New()
	comment.Placeholder = "Add a comment"
	comment.CharLimit = 500

	composer := textarea.New()
	composer.Placeholder = "Share an update"
	composer.CharLimit = 2000
	composer.SetHeight(5)

	about := textarea.New()
	about.Placeholder = "Tell people about yourself"
	about.CharLimit = 1000
	about.SetHeight(4)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:          ctx,
		backend:      opts.Backend,
		store:        opts.Store,
		log:          log,
		feedLimit:    feedLimit,
		snap:         snap,
		theme:        theme,
		styles:       theme.Styles(),
		searchInput:  search,
		messageInput: message,
		commentInput: comment,
		composer:     composer,
		aboutEditor:  about,
		spin:         spin,
	}
}

// Init implements tea.Model. The first feed page and the network,
// notification, and conversation lists load immediately.
func (m Model) Init() tea.Cmd {
	m.store.Dispatch(state.FeedLoading{})
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		m.loadFeedCmd(1),
		m.loadPeopleCmd(),
		m.loadConnectionsCmd(),
		m.loadRequestsCmd(),
		m.loadNotificationsCmd(),
		m.loadConversationsCmd(),
	)
}

// dispatch runs the action through the store and refreshes the local
// snapshot.
func (m *Model) dispatch(action state.Action) {
	m.snap = m.store.Dispatch(action)
}

// announce surfaces a short transient message through the accessible
// announcement log.
func (m *Model) announce(message string) {
	m.dispatch(state.Announce{Message: message})
}

// fail logs a service error and converts it into an announcement.
// Service rejections are recoverable: state stays as it is, the user
// sees a line in the status bar, nothing crashes.
func (m *Model) fail(what string, err error) {
	m.log.Warn(what, zap.Error(err))
	m.announce(fmt.Sprintf("Couldn't %s", what))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.composer.SetWidth(min(m.width-8, 72))
		m.aboutEditor.SetWidth(min(m.width-8, 72))
		m.searchInput.Width = min(m.width-12, 60)
		m.messageInput.Width = min(m.width-16, 44)
		m.commentInput.Width = min(m.width-12, 60)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case feedLoadedMsg:
		if msg.err != nil {
			m.dispatch(state.FeedLoadFailed{})
			m.fail("load the feed", msg.err)
			return m, nil
		}
		m.dispatch(state.FeedLoaded{Posts: msg.page.Data, Page: msg.page.Meta.Page, HasMore: msg.page.Meta.HasMore})
		m.clampCursors()
		return m, nil

	case postCreatedMsg:
		if msg.err != nil {
			m.dispatch(state.PostFailed{LocalID: msg.localID})
			m.fail("publish the post", msg.err)
			return m, nil
		}
		m.dispatch(state.PostConfirmed{LocalID: msg.localID, Post: msg.post})
		m.announce("Post published")
		return m, nil

	case postDeletedMsg:
		if msg.err != nil {
			m.fail("delete the post", msg.err)
			return m, nil
		}
		m.dispatch(state.PostDeleted{PostID: msg.postID})
		m.clampCursors()
		m.announce("Post deleted")
		return m, nil

	case reactedMsg:
		// The optimistic tally already applied; the confirmed count is
		// deliberately not reconciled. Only failures surface.
		if msg.err != nil {
			m.fail("send the reaction", msg.err)
		}
		return m, nil

	case commentsLoadedMsg:
		if msg.err != nil {
			m.fail("load comments", msg.err)
			return m, nil
		}
		m.dispatch(state.CommentsLoaded{PostID: msg.postID, Comments: msg.comments})
		return m, nil

	case commentAddedMsg:
		if msg.err != nil {
			m.fail("add the comment", msg.err)
			return m, nil
		}
		m.dispatch(state.CommentAdded{PostID: msg.postID, Comment: msg.comment})
		m.announce("Comment added")
		return m, nil

	case searchDebounceMsg:
		// Fetch only if the query is still what the user last typed.
		if msg.query != "" && msg.query == m.snap.SearchQuery {
			return m, m.searchCmd(msg.query)
		}
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.fail("search", msg.err)
			return m, nil
		}
		if msg.query == m.snap.SearchQuery {
			m.dispatch(state.SearchLoaded{Results: msg.results})
		}
		return m, nil

	case conversationsLoadedMsg:
		if msg.err != nil {
			m.fail("load conversations", msg.err)
			return m, nil
		}
		m.dispatch(state.ConversationsLoaded{Conversations: msg.conversations})
		return m, nil

	case messagesLoadedMsg:
		if msg.err != nil {
			m.fail("load messages", msg.err)
			return m, nil
		}
		m.dispatch(state.MessagesLoaded{ConversationID: msg.conversationID, Messages: msg.messages})
		return m, nil

	case messageSentMsg:
		if msg.err != nil {
			m.fail("send the message", msg.err)
			return m, nil
		}
		m.dispatch(state.MessageSent{ConversationID: msg.conversationID, Message: msg.message})
		m.announce("Message sent")
		return m, nil

	case chatOpenedMsg:
		if msg.err != nil {
			m.fail("open the conversation", msg.err)
			return m, nil
		}
		cmd := m.enterChat(msg.conversation)
		return m, cmd

	case peopleLoadedMsg:
		if msg.err != nil {
			m.fail("load the member directory", msg.err)
			return m, nil
		}
		m.people = msg.users
		return m, nil

	case connectionsLoadedMsg:
		if msg.err != nil {
			m.fail("load connections", msg.err)
			return m, nil
		}
		m.dispatch(state.ConnectionsLoaded{IDs: msg.ids})
		return m, nil

	case requestsLoadedMsg:
		if msg.err != nil {
			m.fail("load invitations", msg.err)
			return m, nil
		}
		m.dispatch(state.RequestsLoaded{Requests: msg.requests})
		return m, nil

	case requestAcceptedMsg:
		if msg.err != nil {
			m.fail("accept the invitation", msg.err)
			return m, nil
		}
		m.dispatch(state.ConnectionRequestAccepted{RequestID: msg.requestID, FromUserID: msg.fromUserID})
		m.clampCursors()
		m.announce("Invitation accepted")
		return m, m.loadNotificationsCmd()

	case requestSentMsg:
		if msg.err != nil {
			m.fail("send the invitation", msg.err)
			return m, nil
		}
		m.announce("Invitation sent")
		return m, nil

	case connectionRemovedMsg:
		if msg.err != nil {
			m.fail("remove the connection", msg.err)
			return m, nil
		}
		m.dispatch(state.ConnectionRemoved{UserID: msg.userID})
		m.clampCursors()
		m.announce("Connection removed")
		return m, nil

	case notificationsLoadedMsg:
		if msg.err != nil {
			m.fail("load notifications", msg.err)
			return m, nil
		}
		m.dispatch(state.NotificationsLoaded{Notifications: msg.notifications})
		return m, nil

	case notificationReadMsg:
		if msg.err != nil {
			m.fail("mark the notification read", msg.err)
			return m, nil
		}
		m.dispatch(state.NotificationRead{ID: msg.id})
		return m, nil

	case allNotificationsReadMsg:
		if msg.err != nil {
			m.fail("mark notifications read", msg.err)
			return m, nil
		}
		m.dispatch(state.AllNotificationsRead{})
		m.announce("All notifications read")
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.mode == modeComposer:
		sections = append(sections, m.renderComposer())
	case m.mode == modeAbout:
		sections = append(sections, m.renderAboutEditor())
	case m.snap.MessagingOpen:
		sections = append(sections, m.renderMessaging())
	case m.mode == modeSearch || m.snap.SearchOpen:
		sections = append(sections, m.renderSearch())
	default:
		sections = append(sections, m.renderRoute())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRoute() string {
	switch m.snap.ActiveRoute {
	case state.RouteProfile:
		return m.renderProfile()
	case state.RouteNetwork:
		return m.renderNetwork()
	case state.RouteNotifications:
		return m.renderNotifications()
	case state.RouteSaved:
		return m.renderSaved()
	default:
		return m.renderFeed()
	}
}

// clampCursors keeps selection indices valid after list mutations.
func (m *Model) clampCursors() {
	m.feedIndex = clamp(m.feedIndex, len(m.snap.Feed))
	m.savedIndex = clamp(m.savedIndex, len(m.savedFeed()))
	if len(m.snap.Feed) > 0 {
		post := m.snap.Feed[m.feedIndex]
		m.commentIndex = clamp(m.commentIndex, len(m.topLevelComments(post.ID)))
	}
	m.networkIndex = clamp(m.networkIndex, len(m.networkRows()))
	m.notifIndex = clamp(m.notifIndex, len(m.snap.Notifications))
	m.convIndex = clamp(m.convIndex, len(m.snap.Conversations))
}

func clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
