package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linkuplabs/linkup/internal/state"
)

var navTabs = []struct {
	route state.Route
	label string
	key   string
}{
	{state.RouteFeed, "Feed", "f"},
	{state.RouteProfile, "Profile", "p"},
	{state.RouteNetwork, "Network", "n"},
	{state.RouteNotifications, "Alerts", "i"},
	{state.RouteSaved, "Saved", "s"},
}

func (m Model) renderHeader() string {
	parts := []string{m.styles.Logo.Render(" LinkUp ")}

	for _, tab := range navTabs {
		label := fmt.Sprintf("%s %s", tab.key, tab.label)
		if tab.route == state.RouteNotifications {
			if n := m.snap.UnreadNotifications(); n > 0 {
				label = fmt.Sprintf("%s %s", label, m.styles.Badge.Render(fmt.Sprintf("%d", n)))
			}
		}
		if tab.route == m.snap.ActiveRoute && !m.snap.MessagingOpen && !m.snap.SearchOpen {
			parts = append(parts, m.styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, m.styles.MutedText.Render(" "+label+" "))
		}
	}

	if m.snap.MessagingOpen {
		parts = append(parts, m.styles.Selected.Render(" m Messages "))
	} else {
		parts = append(parts, m.styles.MutedText.Render(" m Messages "))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return m.styles.Header.Width(m.width).Render(row)
}

func (m Model) renderFooter() string {
	left := m.styles.FaintText.Render("? help · q quit")
	if m.snap.FeedLoading {
		left = m.spin.View() + " " + m.styles.MutedText.Render("loading feed")
	}

	right := ""
	if msg := m.snap.LastAnnouncement(); msg != "" {
		right = m.styles.AccentText.Render(truncate(msg, 60))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Navigate", [][2]string{
			{"f / p / n / i / s", "feed, profile, network, alerts, saved"},
			{"j / k", "move selection"},
			{"enter", "open selected item"},
			{"esc", "close panel, back to feed"},
		}},
		{"Feed", [][2]string{
			{"1-4", "react: like, celebrate, support, insightful"},
			{"b", "save / unsave post"},
			{"o", "show comments"},
			{"C", "comment on selected post"},
			{"J / K, R", "pick a comment, reply to it"},
			{"c", "compose a post (ctrl+s to publish)"},
			{"D", "delete your own post"},
			{"L", "load more posts"},
		}},
		{"People", [][2]string{
			{"a", "accept invitation"},
			{"+", "send invitation"},
			{"x", "remove connection"},
			{"M", "message person"},
			{"e", "edit your about section"},
		}},
		{"Everywhere", [][2]string{
			{"/", "search"},
			{"m", "messages"},
			{"t", "switch theme"},
			{"q", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Keyboard reference"))
	b.WriteString("\n\n")
	for _, sec := range sections {
		b.WriteString(m.styles.Text.Render(sec.title))
		b.WriteString("\n")
		for _, row := range sec.rows {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.styles.AccentText.Render(fmt.Sprintf("%-18s", row[0])),
				m.styles.MutedText.Render(row[1])))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.FaintText.Render("press any key to close"))
	return m.styles.Overlay.Render(b.String())
}
