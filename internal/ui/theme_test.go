package ui

import (
	"testing"

	"github.com/linkuplabs/linkup/internal/state"
)

func TestThemeFor(t *testing.T) {
	if got := themeFor(state.ThemeDark).Name; got != "dark" {
		t.Fatalf("themeFor(dark).Name = %q", got)
	}
	if got := themeFor(state.ThemeLight).Name; got != "light" {
		t.Fatalf("themeFor(light).Name = %q", got)
	}
	// Unknown values fall back to the default scheme.
	if got := themeFor(state.Theme("sepia")).Name; got != "dark" {
		t.Fatalf("themeFor(sepia).Name = %q, want dark", got)
	}
}

func TestThemes_DistinctPalettes(t *testing.T) {
	dark := darkTheme()
	light := lightTheme()
	if dark.Background == light.Background {
		t.Fatal("dark and light share a background color")
	}
	if dark.Text == light.Text {
		t.Fatal("dark and light share a text color")
	}
}
