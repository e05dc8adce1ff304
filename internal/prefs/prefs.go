// Package prefs handles LinkUp user preference persistence.
// Preferences are stored in ~/.config/linkup/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the state slices mirrored to disk: theme, saved-post ids,
// and connection ids.
type Prefs struct {
	Theme       string   `toml:"theme"`
	SavedPosts  []string `toml:"saved_posts"`
	Connections []string `toml:"connections"`
}

const (
	defaultPrefsPath = "~/.config/linkup/prefs.toml"
	defaultTheme     = "dark"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the documented fallback preferences.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from the given path. Corrupt or missing
// storage must never crash startup, so every failure falls back
// silently to defaults.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default()
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Default()
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Default()
	}

	p := Default()
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Default()
	}

	if p.Theme != "dark" && p.Theme != "light" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to the given path, creating directories as
// needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
