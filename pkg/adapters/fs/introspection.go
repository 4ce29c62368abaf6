package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Worktree      string     `json:"worktree"`
	ControlDir    string     `json:"control_dir"`
	ControlRoot   string     `json:"control_root"`
	DefaultBranch string     `json:"default_branch"`
	ReadOnly      bool       `json:"read_only"`
	WatcherActive bool       `json:"watcher_active"`
	Upserts       int64      `json:"upserts"`
	LastUpsert    *time.Time `json:"last_upsert,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Worktree:      s.handle.Worktree(),
		ControlDir:    s.handle.ControlDir(),
		ControlRoot:   s.handle.ControlRoot(),
		DefaultBranch: s.config.DefaultBranch,
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		Upserts:       s.upserts,
		LastUpsert:    s.lastUpsert,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordUpsert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	now := time.Now()
	s.lastUpsert = &now
}
