package platform

import (
	"fmt"

	"github.com/aretw0/gitrs/pkg/core"
)

// New initializes a repository at the worktree and wires the domain service
// on top, e.g.:
//
//	svc, err := gitrs.New("./path/to/worktree", gitrs.WithDefaultBranch("trunk"))
//
// The worktree argument is adapter-specific (a directory path for 'fs').
func New(worktree string, opts ...Option) (*core.Service, error) {
	store, err := Init(worktree, opts...)
	if err != nil {
		return nil, err
	}
	return core.NewService(store), nil
}

// Open binds to the repository enclosing start (start itself or any
// ancestor). Unlike New it never creates anything: no enclosing repository
// means ErrNoRepository.
func Open(start string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return core.NewService(o.store), nil
	}

	handle, found, err := Discover(start, opts...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: searched from %s upward", core.ErrNoRepository, start)
	}

	switch o.adapter {
	case "fs":
		store, err := buildFS(handle.Worktree(), o, false)
		if err != nil {
			return nil, err
		}
		return core.NewService(store), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}
