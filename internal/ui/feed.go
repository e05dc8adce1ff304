package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linkuplabs/linkup/internal/api"
)

func (m Model) contentWidth() int {
	return min(m.width-4, 76)
}

func (m Model) renderFeed() string {
	if len(m.snap.Feed) == 0 {
		if m.snap.FeedLoading {
			return m.styles.MutedText.Render("\n  " + m.spin.View() + " Loading your feed...")
		}
		return m.styles.MutedText.Render("\n  Nothing here yet. Press c to share an update.")
	}

	var b strings.Builder
	for i, post := range m.snap.Feed {
		b.WriteString(m.renderPost(post, i == m.feedIndex))
		b.WriteString("\n")
	}

	switch {
	case m.snap.FeedLoading:
		b.WriteString(m.styles.MutedText.Render("  " + m.spin.View() + " loading more"))
	case m.snap.FeedHasMore:
		b.WriteString(m.styles.FaintText.Render("  L load more"))
	default:
		b.WriteString(m.styles.FaintText.Render("  you're all caught up"))
	}
	return b.String()
}

func (m Model) renderSaved() string {
	saved := m.savedFeed()
	if len(saved) == 0 {
		return m.styles.MutedText.Render("\n  No saved posts. Press b on a post to save it.")
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(fmt.Sprintf("  Saved posts (%d)", len(saved))))
	b.WriteString("\n\n")
	for i, post := range saved {
		b.WriteString(m.renderPost(post, i == m.savedIndex))
		b.WriteString("\n")
	}
	return b.String()
}

// renderPost draws one post card, including its comment thread when
// expanded.
func (m Model) renderPost(post api.Post, selected bool) string {
	cw := m.contentWidth()

	author := "Unknown"
	headline := ""
	if post.Author != nil {
		author = post.Author.Name
		headline = post.Author.Headline
	}

	var b strings.Builder
	head := fmt.Sprintf("%s  %s", m.styles.Text.Render(author), m.styles.FaintText.Render(relativeTime(post.CreatedAt)))
	if post.Optimistic {
		head += "  " + m.styles.Warning.Render("publishing…")
	}
	if m.snap.SavedPosts[post.ID] {
		head += "  " + m.styles.AccentText.Render("saved")
	}
	b.WriteString(head)
	b.WriteString("\n")
	if headline != "" {
		b.WriteString(m.styles.FaintText.Render(truncate(headline, cw-4)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render(wrap(post.Content, cw-4)))
	b.WriteString("\n\n")

	mine := ""
	if kind := post.UserReaction; kind != "" {
		mine = "  ·  " + m.styles.AccentText.Render("you: "+string(kind))
	}
	b.WriteString(m.styles.MutedText.Render(reactionLine(post)) + mine)
	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("%d comments · %d reposts", post.Comments, post.Reposts)))

	if m.snap.OpenComments[post.ID] {
		b.WriteString("\n")
		b.WriteString(m.renderComments(post.ID, selected))
	}

	card := m.styles.Card
	if selected {
		card = m.styles.CardHot
	}
	return card.Width(cw).Render(b.String())
}

// renderComments draws the thread for one post: top-level comments in
// order, replies indented beneath their parent. On the selected post
// the comment cursor marks which top-level comment R replies to.
func (m Model) renderComments(postID string, selected bool) string {
	comments, ok := m.snap.CommentsByPost[postID]
	if !ok {
		return m.styles.FaintText.Render("  " + m.spin.View() + " loading comments")
	}
	if len(comments) == 0 {
		return m.styles.FaintText.Render("  no comments yet · C to add one")
	}

	replies := make(map[string][]api.Comment)
	for _, c := range comments {
		if c.ParentID != "" {
			replies[c.ParentID] = append(replies[c.ParentID], c)
		}
	}

	var b strings.Builder
	top := 0
	for _, c := range comments {
		if c.ParentID != "" {
			continue
		}
		cursor := selected && top == clamp(m.commentIndex, len(m.topLevelComments(postID)))
		b.WriteString(m.renderComment(c, 1, cursor))
		top++
		for _, r := range replies[c.ID] {
			b.WriteString(m.renderComment(r, 2, false))
		}
	}
	if selected {
		b.WriteString(m.styles.FaintText.Render("  J/K pick · R reply"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderComment(c api.Comment, depth int, selected bool) string {
	indent := strings.Repeat("  ", depth)
	marker := " "
	if selected {
		marker = m.styles.AccentText.Render(">")
	}
	name := c.AuthorID
	if c.Author != nil {
		name = c.Author.Name
	}
	line := fmt.Sprintf("%s%s%s %s  %s",
		marker,
		indent,
		m.styles.AccentText.Render(name+":"),
		m.styles.MutedText.Render(truncate(c.Content, m.contentWidth()-len(indent)-len(name)-12)),
		m.styles.FaintText.Render(relativeTime(c.CreatedAt)))
	return line + "\n"
}

// wrap folds text at width columns, preserving existing newlines.
func wrap(s string, width int) string {
	if width < 8 {
		width = 8
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var wrapped []string
	cur := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(cur)+1+lipgloss.Width(w) > width {
			wrapped = append(wrapped, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(wrapped, cur)
}
