package core

import (
	"context"
	"errors"
)

// Service handles the business logic for control-store access. It owns
// input validation and capability negotiation; persistence details belong
// to the Store implementation behind it.
type Service struct {
	store Store
}

// NewService creates a new Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Handle exposes the worktree/control-root binding of the backing store.
func (s *Service) Handle() Handle {
	return s.store.Handle()
}

// Initialize materializes the repository skeleton via the backing store.
func (s *Service) Initialize(ctx context.Context) error {
	return s.store.Initialize(ctx)
}

// UpsertFile validates the target segments, then compresses and persists
// payload at the resolved path. Returns the absolute path written.
func (s *Service) UpsertFile(ctx context.Context, payload []byte, segments ...string) (string, error) {
	if err := ValidateSegments(segments); err != nil {
		return "", err
	}
	return s.store.Upsert(ctx, payload, segments...)
}

// RetrieveFile reads back a previously upserted payload, decompressed.
func (s *Service) RetrieveFile(ctx context.Context, segments ...string) ([]byte, error) {
	if err := ValidateSegments(segments); err != nil {
		return nil, err
	}
	return s.store.Retrieve(ctx, segments...)
}

// PathToFile resolves segments to an absolute file path and reports whether
// the file exists. Nothing is created.
func (s *Service) PathToFile(ctx context.Context, segments ...string) (string, bool, error) {
	if err := ValidateSegments(segments); err != nil {
		return "", false, err
	}
	return s.store.PathToFile(ctx, segments...)
}

// PathToDir resolves segments to an absolute directory path and reports
// whether the directory exists. Nothing is created.
func (s *Service) PathToDir(ctx context.Context, segments ...string) (string, bool, error) {
	if err := ValidateSegments(segments); err != nil {
		return "", false, err
	}
	return s.store.PathToDir(ctx, segments...)
}

// EnsureDir resolves a directory, creating the chain when absent.
func (s *Service) EnsureDir(ctx context.Context, segments ...string) (string, Resolution, error) {
	if err := ValidateSegments(segments); err != nil {
		return "", ResolutionAbsent, err
	}
	return s.store.EnsureDir(ctx, segments...)
}

// EnsureParent resolves a file path, creating ancestor directories when
// absent. The file itself is never created.
func (s *Service) EnsureParent(ctx context.Context, segments ...string) (string, Resolution, error) {
	if err := ValidateSegments(segments); err != nil {
		return "", ResolutionAbsent, err
	}
	return s.store.EnsureParent(ctx, segments...)
}

// Config loads the repository configuration seed.
func (s *Service) Config(ctx context.Context) (RepoConfig, error) {
	return s.store.ReadConfig(ctx)
}

// Glob enumerates control-directory entries by pattern if the store
// supports it.
func (s *Service) Glob(ctx context.Context, pattern string) ([]string, error) {
	g, ok := s.store.(Globber)
	if !ok {
		return nil, errors.New("store does not support globbing")
	}
	return g.Glob(ctx, pattern)
}

// Watch observes changes in the control directory if the store supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}
