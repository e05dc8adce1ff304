package app

import (
	"context"
	"fmt"

	"github.com/linkuplabs/linkup/internal/api"
	"github.com/linkuplabs/linkup/internal/config"
	"github.com/linkuplabs/linkup/internal/prefs"
	"github.com/linkuplabs/linkup/internal/state"
	"github.com/linkuplabs/linkup/internal/ui"
)

// Options configure the LinkUp application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses config, then ~/.config/linkup/prefs.toml
	NoLatency  bool   // disable simulated network delays
}

// Run boots the LinkUp TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = cfg.PrefsPath
	}
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	log := newLogger(cfg.LogPath)
	defer func() { _ = log.Sync() }()

	// One dataset per session; the service is the only thing touching it.
	data := api.NewDataset()
	viewer := data.UserByID(api.ViewerID)
	if viewer == nil {
		return fmt.Errorf("dataset is missing the viewer %q", api.ViewerID)
	}

	svcOpts := []api.Option{api.WithLogger(log.Named("api"))}
	if opts.NoLatency || !cfg.SimulateLatency() {
		svcOpts = append(svcOpts, api.WithoutLatency())
	}
	svc := api.NewService(data, svcOpts...)

	// Persisted slices seed the initial state before the store owns it.
	initial := prefs.Load(prefsPath).Apply(state.New(*viewer))
	store := state.NewStore(initial)

	bridge := prefs.NewBridge(prefsPath, prefs.WithBridgeLogger(log.Named("prefs")))
	bridge.Attach(store)
	defer bridge.Close()

	return ui.Run(ui.Options{
		Context:   ctx,
		Backend:   svc,
		Store:     store,
		FeedLimit: cfg.FeedLimit,
		Logger:    log.Named("ui"),
	})
}
