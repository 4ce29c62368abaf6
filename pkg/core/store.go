package core

import "context"

// Resolution reports how a directory or parent lookup concluded. Modeling
// the outcome as a tri-state (instead of a bare bool) keeps read call sites
// ("is it there?") and write call sites ("did I just create it?")
// unambiguous.
type Resolution string

const (
	ResolutionAbsent  Resolution = "absent"
	ResolutionPresent Resolution = "present"
	ResolutionCreated Resolution = "created"
)

// Store defines the contract for a repository control store. Adhering to
// this interface keeps the core independent of the underlying storage
// mechanism; the default adapter persists to the local filesystem.
//
// Absence is always a normal result (false / ResolutionAbsent), never an
// error. Callers branch on presence, not on a failure value.
type Store interface {
	// Handle returns the worktree/control-root binding this store operates
	// on.
	Handle() Handle

	// Initialize materializes the standard skeleton for a brand-new
	// repository (directories, seed files), enforcing the precondition
	// checks on the target location.
	Initialize(ctx context.Context) error

	// PathToFile resolves segments to an absolute file path under the
	// control root and reports whether the file exists. It never creates
	// anything. A directory sitting at the path is ErrNotADirectory.
	PathToFile(ctx context.Context, segments ...string) (string, bool, error)

	// PathToDir resolves segments to an absolute directory path under the
	// control root and reports whether the directory exists. It never
	// creates anything. A file sitting at the path is ErrNotADirectory.
	PathToDir(ctx context.Context, segments ...string) (string, bool, error)

	// EnsureDir resolves a directory, creating the full chain when absent.
	// The Resolution tells whether it was already present or just created.
	EnsureDir(ctx context.Context, segments ...string) (string, Resolution, error)

	// EnsureParent resolves a file path, creating ancestor directories when
	// absent. The file itself is never created.
	EnsureParent(ctx context.Context, segments ...string) (string, Resolution, error)

	// Upsert compresses payload and persists it at the resolved path,
	// creating intermediate directories as needed and truncating any
	// previous content. Returns the absolute path written.
	Upsert(ctx context.Context, payload []byte, segments ...string) (string, error)

	// Retrieve reads a previously upserted payload back, decompressed.
	Retrieve(ctx context.Context, segments ...string) ([]byte, error)

	// ReadConfig loads the repository configuration seed file.
	ReadConfig(ctx context.Context) (RepoConfig, error)
}

// Watchable is implemented by stores that can observe external changes to
// the control directory.
type Watchable interface {
	// Watch emits events for control-directory entries matching pattern
	// (doublestar syntax, relative to the control root) until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Globber is implemented by stores that can enumerate control-directory
// entries by pattern without reading their content.
type Globber interface {
	// Glob returns the control-root-relative paths of files matching
	// pattern (doublestar syntax), sorted.
	Glob(ctx context.Context, pattern string) ([]string, error)
}
