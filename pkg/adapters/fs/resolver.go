package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/gitrs/pkg/core"
)

// path joins segments under the control root. Pure computation, no disk
// access. Segments are validated by the public methods before they land
// here.
func (s *Store) path(segments ...string) string {
	return filepath.Join(append([]string{s.handle.ControlRoot()}, segments...)...)
}

// resolveDir maps segments to a directory under the control root. An empty
// segment list addresses the control root itself.
//
// Behavior:
//   - exists, is a directory -> (path, present, nil)
//   - exists, not a directory -> ErrNotADirectory
//   - absent, create -> MkdirAll -> (path, created, nil)
//   - absent, no create -> (path, absent, nil)
func (s *Store) resolveDir(create bool, segments ...string) (string, core.Resolution, error) {
	p := s.path(segments...)

	info, err := os.Stat(p)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", core.ResolutionAbsent, fmt.Errorf("%w: %s", core.ErrNotADirectory, p)
		}
		return p, core.ResolutionPresent, nil
	case os.IsNotExist(err):
		if !create {
			return p, core.ResolutionAbsent, nil
		}
	default:
		return "", core.ResolutionAbsent, fmt.Errorf("%w: failed to stat %s: %w", core.ErrPathResolution, p, err)
	}

	if s.config.ReadOnly {
		return "", core.ResolutionAbsent, core.ErrReadOnly
	}
	if err := os.MkdirAll(p, 0755); err != nil {
		return "", core.ResolutionAbsent, fmt.Errorf("failed to create directory %s: %w", p, err)
	}
	return p, core.ResolutionCreated, nil
}

// resolveFile maps segments to a file path under the control root. Only the
// ancestor directories are ever touched; the file itself is left alone.
// segments[:len-1] name the parent chain (empty chain is the control root,
// which create=true will materialize too).
func (s *Store) resolveFile(createParent bool, segments ...string) (string, core.Resolution, error) {
	_, res, err := s.resolveDir(createParent, segments[:len(segments)-1]...)
	if err != nil {
		return "", core.ResolutionAbsent, err
	}
	return s.path(segments...), res, nil
}

// PathToFile resolves segments to an absolute file path and reports whether
// a file is there. Nothing is created. A directory sitting at the path is
// an error, not a miss, so callers cannot mistake it for a readable file.
func (s *Store) PathToFile(ctx context.Context, segments ...string) (string, bool, error) {
	if err := core.ValidateSegments(segments); err != nil {
		return "", false, err
	}

	p := s.path(segments...)
	info, err := os.Stat(p)
	switch {
	case err == nil:
		if info.IsDir() {
			return "", false, fmt.Errorf("%w: %s", core.ErrNotADirectory, p)
		}
		return p, true, nil
	case os.IsNotExist(err):
		return p, false, nil
	default:
		return "", false, fmt.Errorf("%w: failed to stat %s: %w", core.ErrPathResolution, p, err)
	}
}

// PathToDir resolves segments to an absolute directory path and reports
// whether the directory exists. Nothing is created.
func (s *Store) PathToDir(ctx context.Context, segments ...string) (string, bool, error) {
	if err := core.ValidateSegments(segments); err != nil {
		return "", false, err
	}

	p, res, err := s.resolveDir(false, segments...)
	if err != nil {
		return "", false, err
	}
	return p, res == core.ResolutionPresent, nil
}

// EnsureDir resolves a directory, creating the full chain when absent.
func (s *Store) EnsureDir(ctx context.Context, segments ...string) (string, core.Resolution, error) {
	if err := core.ValidateSegments(segments); err != nil {
		return "", core.ResolutionAbsent, err
	}
	return s.resolveDir(true, segments...)
}

// EnsureParent resolves a file path, creating ancestor directories when
// absent. The file itself is never created.
func (s *Store) EnsureParent(ctx context.Context, segments ...string) (string, core.Resolution, error) {
	if err := core.ValidateSegments(segments); err != nil {
		return "", core.ResolutionAbsent, err
	}
	return s.resolveFile(true, segments...)
}
