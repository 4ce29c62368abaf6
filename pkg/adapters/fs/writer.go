package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/gitrs/pkg/core"
)

// Upsert compresses payload and persists it at the resolved path.
//
// Workflow:
//  1. Validate the target segments.
//  2. Resolve the path, creating missing ancestor directories.
//  3. Compress the payload (zlib).
//  4. Write atomically, truncating any previous content.
func (s *Store) Upsert(ctx context.Context, payload []byte, segments ...string) (string, error) {
	if err := core.ValidateSegments(segments); err != nil {
		return "", err
	}
	if s.config.ReadOnly {
		return "", core.ErrReadOnly
	}

	p, _, err := s.resolveFile(true, segments...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrWriteFailed, err)
	}

	data, err := deflate(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrWriteFailed, err)
	}

	if err := writeFileAtomic(p, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrWriteFailed, err)
	}

	s.recordUpsert()
	if s.config.Logger != nil {
		s.config.Logger.Debug("upserted content",
			"path", p,
			"raw_bytes", len(payload),
			"stored_bytes", len(data))
	}

	return p, nil
}

// Retrieve reads a previously upserted payload back, decompressed. A
// missing file surfaces as the underlying os.IsNotExist error so callers
// can distinguish absence from corruption.
func (s *Store) Retrieve(ctx context.Context, segments ...string) ([]byte, error) {
	if err := core.ValidateSegments(segments); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(segments...))
	if err != nil {
		return nil, err
	}

	payload, err := inflate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path(segments...), err)
	}
	return payload, nil
}
