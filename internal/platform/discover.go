package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/gitrs/pkg/core"
)

// Discover walks upward from start looking for a directory containing the
// control directory. start is canonicalized first (absolute, symlinks
// resolved), so the returned handle is anchored at the canonical worktree
// and stays valid if the process later changes its working directory.
//
// Not finding a repository is a normal outcome (found=false), not an error.
// Errors mean the walk itself could not proceed: a start path that does not
// exist, a broken symlink, a permission wall.
func Discover(start string, opts ...Option) (core.Handle, bool, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	controlDir, _ := o.config["control_dir"].(string)
	if controlDir == "" {
		controlDir = core.DefaultControlDir
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return core.Handle{}, false, fmt.Errorf("%w: %s: %w", core.ErrPathResolution, start, err)
	}
	dir, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return core.Handle{}, false, fmt.Errorf("%w: %s: %w", core.ErrPathResolution, abs, err)
	}

	for {
		candidate := filepath.Join(dir, controlDir)
		info, err := os.Stat(candidate)
		switch {
		case err == nil:
			// A plain file named like the control dir does not count as a
			// repository marker.
			if info.IsDir() {
				return core.NewHandle(dir, controlDir), true, nil
			}
		case !os.IsNotExist(err):
			return core.Handle{}, false, fmt.Errorf("%w: failed to stat %s: %w", core.ErrPathResolution, candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root reached.
			return core.Handle{}, false, nil
		}
		dir = parent
	}
}
