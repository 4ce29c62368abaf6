package core

import (
	"fmt"
	"strings"
)

// ValidateSegments checks a control-root-relative path segment list.
// Resolution assumes segments strictly descend from the control root.
// Anything that could escape it (an empty list, an empty component, ".",
// "..", or a component carrying its own separator) is rejected with
// ErrInvalidSegment.
func ValidateSegments(segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty segment list", ErrInvalidSegment)
	}
	for _, s := range segments {
		switch {
		case s == "":
			return fmt.Errorf("%w: empty component", ErrInvalidSegment)
		case s == "." || s == "..":
			return fmt.Errorf("%w: %q", ErrInvalidSegment, s)
		case strings.ContainsAny(s, `/\`):
			return fmt.Errorf("%w: %q contains a separator (split it into components)", ErrInvalidSegment, s)
		}
	}
	return nil
}

// SplitTarget converts a slash-separated target like "refs/heads/master"
// into a segment list. It is a convenience for front ends (the CLI accepts
// slash targets); the result still goes through ValidateSegments.
func SplitTarget(target string) []string {
	target = strings.Trim(target, "/")
	if target == "" {
		return nil
	}
	return strings.Split(target, "/")
}
