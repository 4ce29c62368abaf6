package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/gitrs/pkg/core"
	"gopkg.in/yaml.v3"
)

// Store implements core.Store against the local filesystem. One Store binds
// one worktree; all resolution happens under worktree/ControlDir.
type Store struct {
	handle core.Handle
	config Config

	mu            sync.RWMutex
	watcherActive bool
	upserts       int64
	lastUpsert    *time.Time
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Worktree      string
	ControlDir    string // e.g. ".gitrs"
	DefaultBranch string // branch HEAD points at after init
	Description   string // content seeded into the description file
	EventBuffer   int    // capacity of Watch event channels
	ReadOnly      bool   // reject every mutating operation
	Logger        *slog.Logger
	ErrorHandler  func(error) // invoked for async watcher failures
}

// NewStore creates a new filesystem-backed store. Construction never
// touches the disk; Initialize does.
func NewStore(config Config) *Store {
	if config.DefaultBranch == "" {
		config.DefaultBranch = core.DefaultBranch
	}
	if config.Description == "" {
		config.Description = core.DefaultDescription
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 100
	}
	return &Store{
		handle: core.NewHandle(config.Worktree, config.ControlDir),
		config: config,
	}
}

// Handle returns the worktree/control-root binding of this store.
func (s *Store) Handle() core.Handle {
	return s.handle
}

// Initialize materializes the control-directory skeleton.
//
// Workflow:
//  1. Check the worktree location. A file in the way is fatal; a missing
//     worktree is created along with the control root.
//  2. Guard against double-init: a non-empty control directory is refused.
//  3. Read-only stores never initialize.
//  4. Create the skeleton directories (branches, objects, refs/tags,
//     refs/heads).
//  5. Seed description, HEAD and config atomically.
//
// There is no rollback. A failure mid-way leaves a partial tree behind,
// and the error reports which step broke.
func (s *Store) Initialize(ctx context.Context) error {
	// 1. Worktree check.
	info, err := os.Stat(s.handle.Worktree())
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", core.ErrNotADirectory, s.handle.Worktree())
		}
	case os.IsNotExist(err):
		// Created below together with the control root.
	default:
		return fmt.Errorf("%w: failed to stat worktree: %w", core.ErrInitFailed, err)
	}

	// 2. Double-init guard.
	ctrlInfo, err := os.Stat(s.handle.ControlRoot())
	switch {
	case err == nil:
		if !ctrlInfo.IsDir() {
			return fmt.Errorf("%w: %s", core.ErrNotADirectory, s.handle.ControlRoot())
		}
		entries, err := os.ReadDir(s.handle.ControlRoot())
		if err != nil {
			return fmt.Errorf("%w: failed to inspect control directory: %w", core.ErrInitFailed, err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("%w: %s is not empty", core.ErrRepositoryExists, s.handle.ControlRoot())
		}
	case os.IsNotExist(err):
		// Normal case, created below.
	default:
		return fmt.Errorf("%w: failed to stat control directory: %w", core.ErrInitFailed, err)
	}

	// 3. Read-only stores never initialize.
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	// 4. Control root and skeleton directories.
	if err := os.MkdirAll(s.handle.ControlRoot(), 0755); err != nil {
		return fmt.Errorf("%w: failed to create control directory: %w", core.ErrInitFailed, err)
	}
	for _, segments := range core.SkeletonDirs() {
		if _, _, err := s.resolveDir(true, segments...); err != nil {
			return fmt.Errorf("%w: %w", core.ErrInitFailed, err)
		}
	}

	// 5. Seed files.
	if err := s.seedFile(core.DescriptionFile, []byte(s.config.Description)); err != nil {
		return err
	}
	if err := s.seedFile(core.HeadFile, []byte(core.HeadRef(s.config.DefaultBranch))); err != nil {
		return err
	}
	cfg, err := yaml.Marshal(core.DefaultRepoConfig())
	if err != nil {
		return fmt.Errorf("%w: failed to serialize config: %w", core.ErrInitFailed, err)
	}
	if err := s.seedFile(core.ConfigFile, cfg); err != nil {
		return err
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("initialized control store",
			"path", s.handle.ControlRoot(),
			"branch", s.config.DefaultBranch)
	}

	return nil
}

// seedFile writes one top-level seed file of the skeleton.
func (s *Store) seedFile(name string, data []byte) error {
	if err := writeFileAtomic(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("%w: failed to seed %s: %w", core.ErrInitFailed, name, err)
	}
	return nil
}

// ReadConfig loads the repository configuration seed file.
func (s *Store) ReadConfig(ctx context.Context) (core.RepoConfig, error) {
	data, err := os.ReadFile(s.path(core.ConfigFile))
	if err != nil {
		return core.RepoConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg core.RepoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return core.RepoConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

var _ core.Store = (*Store)(nil)
