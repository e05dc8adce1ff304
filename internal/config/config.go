// Package config loads the LinkUp application config.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the knobs LinkUp reads at startup.
type Config struct {
	FeedLimit int    // posts per feed page
	Latency   string // "normal" or "none"
	PrefsPath string // empty uses the prefs package default
	LogPath   string // debug log sink
}

const (
	defaultConfigPath = "~/.config/linkup/config.toml"
	defaultLogPath    = "~/.local/state/linkup/linkup.log"
	defaultFeedLimit  = 3
	defaultLatency    = "normal"
)

// Load locates and parses the config, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		FeedLimit: defaultFeedLimit,
		Latency:   defaultLatency,
		LogPath:   mustExpand(defaultLogPath),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FeedLimit int    `toml:"feed_limit"`
		Latency   string `toml:"latency"`
		PrefsPath string `toml:"prefs_path"`
		LogPath   string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.FeedLimit > 0 {
		cfg.FeedLimit = raw.FeedLimit
	}
	if latency := strings.TrimSpace(raw.Latency); latency != "" {
		cfg.Latency = latency
	}
	if cfg.Latency != "normal" && cfg.Latency != "none" {
		cfg.Latency = defaultLatency
	}
	cfg.PrefsPath = strings.TrimSpace(raw.PrefsPath)
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}

	return cfg, nil
}

// SimulateLatency reports whether the mock service should sleep.
func (c Config) SimulateLatency() bool {
	return c.Latency != "none"
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
