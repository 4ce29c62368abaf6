package platform

import (
	"log/slog"

	"github.com/aretw0/gitrs/pkg/core"
)

// options holds the internal configuration for the gitrs platform layer.
type options struct {
	store   core.Store
	logger  *slog.Logger
	adapter string
	config  map[string]interface{}
}

// Option defines a functional option for configuring gitrs.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:   nil,
		logger:  nil,
		adapter: "fs",
		config:  make(map[string]interface{}),
	}
}

// WithControlDir overrides the hidden control directory name.
// Defaults to ".gitrs" if not set (handled by adapter).
func WithControlDir(name string) Option {
	return func(o *options) {
		o.config["control_dir"] = name
	}
}

// WithDefaultBranch sets the branch HEAD points at after initialization.
// Defaults to "master".
func WithDefaultBranch(branch string) Option {
	return func(o *options) {
		o.config["default_branch"] = branch
	}
}

// WithDescription sets the content seeded into the description file.
func WithDescription(text string) Option {
	return func(o *options) {
		o.config["description"] = text
	}
}

// WithEventBuffer allows specifying the size of Watch event channels.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithForceTemp forces the worktree into a temporary directory (useful for
// testing and examples).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Mutating operations (Initialize, Upsert, EnsureDir, EnsureParent) return ErrReadOnly.
// 2. Dev Safety Lock (go run temp dir) is BYPASSED (uses real path).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the "Sandbox" safety mechanism when running via `go run`.
// By default (true), gitrs forces a temporary directory to prevent accidental
// writes into a real workspace. Setting this to false allows operating on the
// real filesystem even during `go run`.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithWatcherErrorHandler registers a callback to handle errors occurring during the Watch loop.
// This allows applications to log or react to runtime watcher failures (e.g. permission denied)
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithLogger sets the logger for the platform and the store it builds.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. mock, s3).
// If provided, the default filesystem adapter will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}
