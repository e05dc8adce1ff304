package prefs

import (
	"slices"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/linkuplabs/linkup/internal/state"
)

const defaultQuiet = 500 * time.Millisecond

// Bridge mirrors the watched state slices (theme, saved posts,
// connections) to the preferences file. Writes are debounced: each
// change re-arms a quiet-period timer, so a burst of bookmark toggles
// collapses into one write of the final value. Write failures are
// logged and otherwise ignored; persistence is best-effort.
type Bridge struct {
	path  string
	quiet time.Duration
	log   *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending Prefs
	dirty   bool
	last    Prefs
	seeded  bool
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithQuietPeriod overrides the debounce window. Tests shorten it.
func WithQuietPeriod(d time.Duration) BridgeOption {
	return func(b *Bridge) {
		if d > 0 {
			b.quiet = d
		}
	}
}

// WithBridgeLogger attaches a logger for write failures.
func WithBridgeLogger(log *zap.Logger) BridgeOption {
	return func(b *Bridge) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBridge creates a bridge writing to path.
func NewBridge(path string, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		path:  path,
		quiet: defaultQuiet,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach subscribes the bridge to the store. The first observed
// snapshot seeds the comparison baseline without writing, so startup
// state restored from disk does not immediately write itself back.
func (b *Bridge) Attach(store *state.Store) {
	baseline := FromState(store.Snapshot())

	b.mu.Lock()
	b.last = baseline
	b.seeded = true
	b.mu.Unlock()

	store.Watch(b.observe)
}

// Close cancels any pending timer and flushes an outstanding write.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	dirty := b.dirty
	pending := b.pending
	b.dirty = false
	b.mu.Unlock()

	if dirty {
		b.write(pending)
	}
}

// FromState projects the watched slices out of a snapshot. Sets are
// serialized as sorted lists so the file is stable across runs.
func FromState(s state.State) Prefs {
	return Prefs{
		Theme:       string(s.Theme),
		SavedPosts:  sortedKeys(s.SavedPosts),
		Connections: sortedKeys(s.Connections),
	}
}

// Apply copies the persisted slices onto an initial state.
func (p Prefs) Apply(s state.State) state.State {
	if p.Theme == "light" {
		s.Theme = state.ThemeLight
	} else {
		s.Theme = state.ThemeDark
	}
	s.SavedPosts = toSet(p.SavedPosts)
	s.Connections = toSet(p.Connections)
	return s
}

func (b *Bridge) observe(snap state.State) {
	next := FromState(snap)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.seeded && next.equal(b.last) {
		return
	}
	b.last = next
	b.seeded = true
	b.pending = next
	b.dirty = true

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.quiet, b.flush)
}

func (b *Bridge) flush() {
	b.mu.Lock()
	if !b.dirty {
		b.mu.Unlock()
		return
	}
	pending := b.pending
	b.dirty = false
	b.mu.Unlock()

	b.write(pending)
}

func (b *Bridge) write(p Prefs) {
	if err := Save(b.path, p); err != nil {
		b.log.Warn("prefs write failed", zap.Error(err))
	}
}

func (p Prefs) equal(other Prefs) bool {
	return p.Theme == other.Theme &&
		slices.Equal(p.SavedPosts, other.SavedPosts) &&
		slices.Equal(p.Connections, other.Connections)
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
