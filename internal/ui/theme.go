package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/linkuplabs/linkup/internal/state"
)

// Theme defines the colors for one scheme. The palette mirrors the
// app's design tokens: dark is the default, light is the alternative.
type Theme struct {
	Name string

	Background string
	Surface    string
	SurfaceAlt string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
	CardHot  lipgloss.Style
	Badge    lipgloss.Style
	Overlay  lipgloss.Style
}

// Styles builds the style set for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardHot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Padding(1, 2),
	}
}

func darkTheme() Theme {
	return Theme{
		Name:          "dark",
		Background:    "#0f1117",
		Surface:       "#181b24",
		SurfaceAlt:    "#1f2330",
		SelectionBg:   "#2d3348",
		SelectionText: "#f8f8f2",
		Border:        "#2a2f3d",
		BorderFocus:   "#6366f1",
		Text:          "#e6e8ee",
		Muted:         "#9aa2b5",
		Faint:         "#596175",
		Accent:        "#818cf8",
		Success:       "#34d399",
		Warning:       "#fbbf24",
		Danger:        "#f87171",
	}
}

func lightTheme() Theme {
	return Theme{
		Name:          "light",
		Background:    "#f6f7fb",
		Surface:       "#ffffff",
		SurfaceAlt:    "#eef0f7",
		SelectionBg:   "#dfe3f5",
		SelectionText: "#1a1d29",
		Border:        "#d4d8e4",
		BorderFocus:   "#6366f1",
		Text:          "#1a1d29",
		Muted:         "#555d73",
		Faint:         "#9aa2b5",
		Accent:        "#4f46e5",
		Success:       "#059669",
		Warning:       "#b45309",
		Danger:        "#dc2626",
	}
}

// themeFor maps the persisted theme setting to a palette.
func themeFor(t state.Theme) Theme {
	if t == state.ThemeLight {
		return lightTheme()
	}
	return darkTheme()
}
