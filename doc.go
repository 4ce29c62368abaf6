// Package gitrs is the Composition Root for the gitrs library.
//
// It connects the core control-store logic (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// gitrs is the storage heart of a version-control system. It manages the
// hidden control directory of a repository: discovering it from anywhere
// inside a worktree, materializing its skeleton, resolving paths beneath it,
// and persisting compressed content into it. While the default implementation
// uses the local filesystem, the core is agnostic, allowing for future
// adapters behind core.Store.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Atomic Writes**: Content lands via temp-file-and-rename, never half-written.
//   - **Compressed Content**: Payloads are zlib-encoded on disk, like classic object stores.
//   - **Upward Discovery**: Find the enclosing repository from any nested directory.
//   - **Reactive**: Watch the control directory for external changes with debounced events.
//   - **Extensible**: Designed to support other backends via core.Store.
//
// Usage:
//
//	// Initialize a repository with functional options
//	svc, err := gitrs.New("./project",
//		gitrs.WithDefaultBranch("master"),
//		gitrs.WithLogger(logger),
//	)
//
//	// Persist compressed content under the control directory
//	path, err := svc.UpsertFile(ctx, payload, "objects", "ab", "cdef0123")
package gitrs
