package core

import "path/filepath"

// Handle binds a worktree to the control directory that stores its
// repository state. It is a plain value: construction never touches the
// disk, and a Handle is read-only for its lifetime, so it can be shared
// freely across goroutines.
type Handle struct {
	worktree    string
	controlDir  string
	controlRoot string
}

// NewHandle builds a Handle for the given worktree. controlDir is the name
// of the hidden control directory (e.g. ".gitrs"); when empty the default
// is used. The control root is always worktree/controlDir, computed once
// here and never mutated afterward.
func NewHandle(worktree, controlDir string) Handle {
	if controlDir == "" {
		controlDir = DefaultControlDir
	}
	return Handle{
		worktree:    worktree,
		controlDir:  controlDir,
		controlRoot: filepath.Join(worktree, controlDir),
	}
}

// Worktree returns the directory holding the user-visible, tracked files.
func (h Handle) Worktree() string { return h.worktree }

// ControlDir returns the control directory name (e.g. ".gitrs").
func (h Handle) ControlDir() string { return h.controlDir }

// ControlRoot returns the absolute path of the control directory.
func (h Handle) ControlRoot() string { return h.controlRoot }

// IsZero reports whether the handle was never constructed. Discover returns
// a zero Handle together with found=false.
func (h Handle) IsZero() bool { return h.worktree == "" && h.controlRoot == "" }
