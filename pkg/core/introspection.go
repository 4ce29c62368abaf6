package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	StoreType string `json:"store_type"`
	Worktree  string `json:"worktree"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	storeType := "unknown"
	worktree := ""
	if s.store != nil {
		storeType = "store"
		// Prefer the adapter's own component type when it exposes one.
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
		worktree = s.store.Handle().Worktree()
	}

	return ServiceState{
		StoreType: storeType,
		Worktree:  worktree,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
