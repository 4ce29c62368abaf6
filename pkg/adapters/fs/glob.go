package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/gitrs/pkg/core"
)

// Glob returns the control-root-relative paths of files matching pattern
// (doublestar syntax, e.g. "refs/**" or "objects/*/*"), sorted. Directories
// and in-flight temp files are skipped; only stored entries are reported.
func (s *Store) Glob(ctx context.Context, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	var matches []string
	root := s.handle.ControlRoot()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), TempFilePrefix) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrNoRepository, root)
		}
		return nil, fmt.Errorf("failed to scan control directory: %w", err)
	}

	sort.Strings(matches)
	return matches, nil
}

var _ core.Globber = (*Store)(nil)
