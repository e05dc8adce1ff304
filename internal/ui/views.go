package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linkuplabs/linkup/internal/api"
)

func (m Model) renderProfile() string {
	user := m.snap.ProfileUser()
	own := user.ID == m.snap.CurrentUser.ID
	cw := m.contentWidth()

	var b strings.Builder
	cover := lipgloss.NewStyle().Background(lipgloss.Color(user.CoverColor)).Width(cw)
	b.WriteString(cover.Render(strings.Repeat(" ", cw)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		m.styles.Badge.Render(" "+initials(user.Name)+" "),
		m.styles.AccentText.Render(user.Name)))
	if user.Headline != "" {
		b.WriteString(m.styles.Text.Render(user.Headline) + "\n")
	}

	var meta []string
	if user.Location != "" {
		meta = append(meta, user.Location)
	}
	meta = append(meta, fmt.Sprintf("%d connections", user.Connections))
	b.WriteString(m.styles.FaintText.Render(strings.Join(meta, " · ")) + "\n")

	switch {
	case own:
		b.WriteString(m.styles.FaintText.Render("e edit about") + "\n")
	case m.snap.Connections[user.ID]:
		b.WriteString(m.styles.Success.Render("Connected") + m.styles.FaintText.Render("  ·  M message · x remove") + "\n")
	default:
		b.WriteString(m.styles.FaintText.Render("+ connect · M message") + "\n")
	}

	if user.About != "" {
		b.WriteString("\n" + m.styles.MutedText.Render("About") + "\n")
		b.WriteString(m.styles.Text.Render(wrap(user.About, cw-2)) + "\n")
	}

	if len(user.Experience) > 0 {
		b.WriteString("\n" + m.styles.MutedText.Render("Experience") + "\n")
		for _, e := range user.Experience {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.Text.Render(e.Title),
				m.styles.FaintText.Render("· "+e.Company+" · "+e.Duration)))
		}
	}

	if len(user.Skills) > 0 {
		b.WriteString("\n" + m.styles.MutedText.Render("Skills") + "\n")
		b.WriteString("  " + m.styles.AccentText.Render(strings.Join(user.Skills, " · ")) + "\n")
	}

	return b.String()
}

func (m Model) renderAboutEditor() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Edit about") + "\n\n")
	b.WriteString(m.aboutEditor.View() + "\n\n")
	b.WriteString(m.styles.FaintText.Render("ctrl+s save · esc cancel"))
	return m.styles.Overlay.Render(b.String())
}

func (m Model) renderComposer() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("New post") + "\n\n")
	b.WriteString(m.composer.View() + "\n\n")
	b.WriteString(m.styles.FaintText.Render("ctrl+s publish · esc discard"))
	return m.styles.Overlay.Render(b.String())
}

func (m Model) renderNetwork() string {
	rows := m.networkRows()
	if len(rows) == 0 {
		return m.styles.MutedText.Render("\n  Nobody here yet.")
	}

	var b strings.Builder
	var prev rowKind = -1
	for i, row := range rows {
		if row.kind != prev {
			if prev != -1 {
				b.WriteString("\n")
			}
			b.WriteString(m.styles.MutedText.Render("  "+networkSection(row.kind)) + "\n")
			prev = row.kind
		}
		b.WriteString(m.renderNetworkRow(row, i == m.networkIndex))
	}
	return b.String()
}

func networkSection(kind rowKind) string {
	switch kind {
	case rowRequest:
		return "Invitations"
	case rowConnection:
		return "Connections"
	default:
		return "People you may know"
	}
}

func (m Model) renderNetworkRow(row networkRow, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.AccentText.Render("> ")
	}

	line := fmt.Sprintf("%s %s  %s",
		m.styles.Badge.Render(initials(row.user.Name)),
		m.styles.Text.Render(row.user.Name),
		m.styles.FaintText.Render(truncate(row.user.Headline, 40)))

	var hint string
	switch row.kind {
	case rowRequest:
		hint = m.styles.Warning.Render("a accept")
	case rowConnection:
		hint = m.styles.FaintText.Render("M message · x remove")
	default:
		hint = m.styles.FaintText.Render("+ connect")
	}
	return fmt.Sprintf("%s%s  %s\n", cursor, line, hint)
}

func (m Model) renderNotifications() string {
	if len(m.snap.Notifications) == 0 {
		return m.styles.MutedText.Render("\n  No notifications.")
	}

	var b strings.Builder
	b.WriteString(m.styles.FaintText.Render("  enter mark read · A mark all read") + "\n\n")
	for i, n := range m.snap.Notifications {
		cursor := "  "
		if i == m.notifIndex {
			cursor = m.styles.AccentText.Render("> ")
		}
		marker := m.styles.AccentText.Render("●")
		text := m.styles.Text
		if n.Read {
			marker = " "
			text = m.styles.MutedText
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			cursor, marker,
			text.Render(truncate(m.notificationText(n), m.contentWidth()-14)),
			m.styles.FaintText.Render(relativeTime(n.CreatedAt))))
	}
	return b.String()
}

func (m Model) notificationText(n api.Notification) string {
	if n.Message != "" {
		return n.Message
	}
	name := n.FromUserID
	if n.From != nil {
		name = n.From.Name
	}
	switch n.Kind {
	case api.NotifyReaction:
		return name + " reacted to your post"
	case api.NotifyComment:
		return name + " commented on your post"
	case api.NotifyConnectionRequest:
		return name + " wants to connect"
	case api.NotifyConnectionAccepted:
		return name + " accepted your invitation"
	case api.NotifyMention:
		return name + " mentioned you"
	default:
		return name + " sent an update"
	}
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString("  " + m.searchInput.View() + "\n\n")

	res := m.snap.SearchResults
	if m.snap.SearchQuery == "" {
		b.WriteString(m.styles.FaintText.Render("  Type to search people and posts."))
		return b.String()
	}
	if len(res.Users) == 0 && len(res.Posts) == 0 {
		b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("  No results for %q.", m.snap.SearchQuery)))
		return b.String()
	}

	if len(res.Users) > 0 {
		b.WriteString(m.styles.MutedText.Render("  People") + "\n")
		for _, u := range res.Users {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				m.styles.Badge.Render(initials(u.Name)),
				m.styles.Text.Render(u.Name),
				m.styles.FaintText.Render(truncate(u.Headline, 44))))
		}
		b.WriteString(m.styles.FaintText.Render("  enter opens the first person") + "\n")
	}

	if len(res.Posts) > 0 {
		b.WriteString("\n" + m.styles.MutedText.Render("  Posts") + "\n")
		for _, p := range res.Posts {
			name := p.AuthorID
			if p.Author != nil {
				name = p.Author.Name
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.AccentText.Render(name+":"),
				m.styles.Text.Render(truncate(p.Content, m.contentWidth()-len(name)-8))))
		}
	}
	return b.String()
}

func (m Model) renderMessaging() string {
	if m.snap.ActiveConversation != "" {
		return m.renderChat()
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("  Messages") + "\n\n")
	if len(m.snap.Conversations) == 0 {
		b.WriteString(m.styles.MutedText.Render("  No conversations yet. Press M on a person to start one."))
		return b.String()
	}

	for i, conv := range m.snap.Conversations {
		cursor := "  "
		if i == m.convIndex {
			cursor = m.styles.AccentText.Render("> ")
		}
		other := m.userByID(conv.Other(m.snap.CurrentUser.ID))
		preview := ""
		if conv.LastMessage != nil {
			preview = truncate(conv.LastMessage.Content, 44)
		}
		badge := ""
		if conv.Unread > 0 {
			badge = "  " + m.styles.Badge.Render(fmt.Sprintf("%d", conv.Unread))
		}
		b.WriteString(fmt.Sprintf("%s%s%s  %s\n",
			cursor, m.styles.Text.Render(other.Name), badge,
			m.styles.FaintText.Render(preview)))
	}
	b.WriteString("\n" + m.styles.FaintText.Render("  enter open · esc close"))
	return b.String()
}

func (m Model) renderChat() string {
	convID := m.snap.ActiveConversation
	var other api.User
	for _, c := range m.snap.Conversations {
		if c.ID == convID {
			other = m.userByID(c.Other(m.snap.CurrentUser.ID))
			break
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("  "+other.Name) + "\n\n")

	msgs, ok := m.snap.MessagesByConversation[convID]
	switch {
	case !ok:
		b.WriteString(m.styles.MutedText.Render("  " + m.spin.View() + " loading messages"))
	case len(msgs) == 0:
		b.WriteString(m.styles.MutedText.Render("  Say hello."))
	default:
		for _, msg := range msgs {
			name := "You"
			style := m.styles.AccentText
			if msg.SenderID != m.snap.CurrentUser.ID {
				name = other.Name
				style = m.styles.Text
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				style.Render(name+":"),
				m.styles.Text.Render(wrap(msg.Content, m.contentWidth()-len(name)-14)),
				m.styles.FaintText.Render(relativeTime(msg.SentAt))))
		}
	}

	b.WriteString("\n\n  " + m.messageInput.View() + "\n")
	b.WriteString(m.styles.FaintText.Render("  enter send · esc back"))
	return b.String()
}
