package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// newLogger builds a debug-level file logger. A terminal UI owns
// stdout, so logs go to a file; when the sink cannot be opened the
// logger degrades to a nop rather than failing startup.
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
