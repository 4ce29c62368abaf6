package core

import "errors"

// Common errors. Callers branch with errors.Is; adapters wrap these with
// path context via fmt.Errorf("...: %w", ...).
var (
	// ErrNotADirectory signals that a path expected to be a directory is a
	// file, or vice versa.
	ErrNotADirectory = errors.New("not a directory")

	// ErrRepositoryExists signals that the initialization target already
	// holds a non-empty control directory.
	ErrRepositoryExists = errors.New("repository already exists")

	// ErrInitFailed signals that a skeleton-creation step failed after the
	// preconditions passed. Partial trees may remain on disk (no rollback).
	ErrInitFailed = errors.New("repository initialization failed")

	// ErrPathResolution signals that canonicalization or ancestor traversal
	// failed (broken symlink, missing start path, permission denied).
	// Distinct from "no repository found", which is not an error.
	ErrPathResolution = errors.New("path resolution failed")

	// ErrWriteFailed signals an I/O or compression failure while persisting
	// content into the control directory.
	ErrWriteFailed = errors.New("write failed")

	// ErrInvalidSegment signals a path segment that would escape the control
	// directory (absolute, empty, "..", or containing a separator).
	ErrInvalidSegment = errors.New("invalid path segment")

	// ErrNoRepository is returned by Open when no enclosing repository
	// exists. Discover reports the same condition as a plain false.
	ErrNoRepository = errors.New("no gitrs repository found")

	// ErrReadOnly rejects mutating operations on a read-only store.
	ErrReadOnly = errors.New("store is in read-only mode")
)
