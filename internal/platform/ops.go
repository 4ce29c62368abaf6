package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/gitrs/pkg/adapters/fs"
	"github.com/aretw0/gitrs/pkg/core"
)

// Init initializes a new repository at the given worktree and returns the
// configured core.Store with the skeleton on disk.
// The worktree argument is adapter-specific (a directory path for 'fs').
func Init(worktree string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected store
	if o.store != nil {
		return o.store, nil
	}

	// 2. Build based on adapter
	var store core.Store
	var err error

	switch o.adapter {
	case "fs":
		store, err = buildFS(worktree, o, true)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err != nil {
		return nil, err
	}

	// 3. Run initialization
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// buildFS constructs the filesystem store from the option map. sandbox
// controls whether dev-run safety re-rooting may kick in; Open binds to an
// already-discovered worktree and must not be re-rooted.
func buildFS(worktree string, o *options, sandbox bool) (core.Store, error) {
	controlDir, _ := o.config["control_dir"].(string)
	defaultBranch, _ := o.config["default_branch"].(string)
	description, _ := o.config["description"].(string)
	eventBuffer, _ := o.config["event_buffer"].(int)
	tempDir, _ := o.config["temp_dir"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))
	isReadOnly, _ := o.config["read_only"].(bool)

	// Check if dev_safety is explicitly set. Use boolean assertion AND check
	// existence. Default to true (safe) if not present.
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	resolved := worktree
	if sandbox {
		// Bypass Safety if:
		// 1. ReadOnly is active (inherently safe)
		// 2. User explicitly disabled DevSafety
		bypassSafety := isReadOnly || !devSafety

		useTemp := tempDir || (IsDevRun() && !bypassSafety)
		resolved = ResolveWorktreePath(worktree, useTemp)

		// Log dev safety mode for clarity
		if IsDevRun() && o.logger != nil {
			if bypassSafety {
				if isReadOnly {
					o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "worktree", resolved)
				} else {
					o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "worktree", resolved)
				}
			} else {
				o.logger.Debug("running in SAFE mode (dev sandbox enabled)", "worktree", resolved)
			}
		}

		if o.logger != nil && useTemp && resolved != worktree {
			o.logger.Warn("worktree re-rooted into sandbox", "original", worktree, "resolved", resolved)
		}
	}

	return fs.NewStore(fs.Config{
		Worktree:      resolved,
		ControlDir:    controlDir,
		DefaultBranch: defaultBranch,
		Description:   description,
		EventBuffer:   eventBuffer,
		ReadOnly:      isReadOnly,
		Logger:        o.logger,
		ErrorHandler:  errorHandler,
	}), nil
}
