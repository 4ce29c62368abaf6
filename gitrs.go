package gitrs

import (
	"log/slog"

	"github.com/aretw0/gitrs/internal/platform"
	"github.com/aretw0/gitrs/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Configuration ---

// Option defines a functional option for configuring gitrs.
type Option = platform.Option

// WithControlDir overrides the hidden control directory name (default ".gitrs").
func WithControlDir(name string) Option {
	return platform.WithControlDir(name)
}

// WithDefaultBranch sets the branch HEAD points at after initialization (default "master").
func WithDefaultBranch(branch string) Option {
	return platform.WithDefaultBranch(branch)
}

// WithDescription sets the content seeded into the description file.
func WithDescription(text string) Option {
	return platform.WithDescription(text)
}

// WithEventBuffer allows specifying the size of Watch event channels.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithForceTemp forces the worktree into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithReadOnly enables read-only mode: mutating operations return ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety controls the sandbox safety mechanism for `go run` sessions.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// --- Factory ---

// New initializes a repository at the worktree and returns the Service bound to it.
func New(worktree string, opts ...Option) (*core.Service, error) {
	return platform.New(worktree, opts...)
}

// Init initializes a repository explicitly and returns the raw Store.
func Init(worktree string, opts ...Option) (core.Store, error) {
	return platform.Init(worktree, opts...)
}

// Open binds to the repository enclosing start without creating anything.
// It walks upward from start; no enclosing repository means ErrNoRepository.
func Open(start string, opts ...Option) (*core.Service, error) {
	return platform.Open(start, opts...)
}

// --- Discovery ---

// Discover walks upward from start looking for an enclosing repository.
// Not finding one is reported as found=false, not as an error.
func Discover(start string, opts ...Option) (core.Handle, bool, error) {
	return platform.Discover(start, opts...)
}

// --- Safety & Utils ---

// ResolveWorktreePath determines the actual worktree path based on safety rules.
func ResolveWorktreePath(userPath string, forceTemp bool) string {
	return platform.ResolveWorktreePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
